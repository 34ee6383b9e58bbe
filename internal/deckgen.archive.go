package internal

import (
	"archive/zip"
	"bytes"
	"io"

	"go.uber.org/zap"
)

// ArchiveError represents a package-level failure with optional part context
type ArchiveError struct {
	Message string
	Part    string
}

func (e *ArchiveError) Error() string {
	if e.Part == "" {
		return e.Message
	}
	return e.Message + ": " + e.Part
}

// Archive is an in-memory view of an OPC zip package. Parts can be
// replaced or removed without touching the remaining entries; WriteTo
// copies untouched entries with their original compressed bytes so the
// rest of the package survives unchanged.
type Archive struct {
	files    []*zip.File // original entry order
	index    map[string]*zip.File
	replaced map[string][]byte
	removed  map[string]bool
	appended []string // parts added that were not in the original package
	logger   *zap.Logger
}

// OpenArchive opens a zip package from raw bytes.
func OpenArchive(data []byte, logger *zap.Logger) (*Archive, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ArchiveError{Message: ErrMsgNotZip}
	}
	a := &Archive{
		files:    zr.File,
		index:    make(map[string]*zip.File, len(zr.File)),
		replaced: make(map[string][]byte),
		removed:  make(map[string]bool),
		logger:   logger,
	}
	for _, f := range zr.File {
		a.index[f.Name] = f
	}
	logger.Debug(LogMsgArchiveOpened, zap.Int(LogFieldPartCount, len(zr.File)))
	return a, nil
}

// HasPart reports whether the named part exists and has not been removed.
func (a *Archive) HasPart(name string) bool {
	if a.removed[name] {
		return false
	}
	if _, ok := a.replaced[name]; ok {
		return true
	}
	_, ok := a.index[name]
	return ok
}

// Part returns the current content of the named part.
func (a *Archive) Part(name string) ([]byte, error) {
	if a.removed[name] {
		return nil, &ArchiveError{Message: ErrMsgPartMissing, Part: name}
	}
	if data, ok := a.replaced[name]; ok {
		return data, nil
	}
	f, ok := a.index[name]
	if !ok {
		return nil, &ArchiveError{Message: ErrMsgPartMissing, Part: name}
	}
	rc, err := f.Open()
	if err != nil {
		return nil, &ArchiveError{Message: ErrMsgPartRead, Part: name}
	}
	defer func() { _ = rc.Close() }()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, &ArchiveError{Message: ErrMsgPartRead, Part: name}
	}
	return data, nil
}

// SetPart replaces the content of a part. A part that did not exist in
// the original package is appended after the original entries.
func (a *Archive) SetPart(name string, data []byte) {
	delete(a.removed, name)
	if _, exists := a.index[name]; !exists {
		if _, pending := a.replaced[name]; !pending {
			a.appended = append(a.appended, name)
		}
	}
	a.replaced[name] = data
	a.logger.Debug(LogMsgPartReplaced,
		zap.String(LogFieldPart, name),
		zap.Int(LogFieldBytes, len(data)))
}

// RemovePart drops a part from the package and reports whether it existed.
func (a *Archive) RemovePart(name string) bool {
	if !a.HasPart(name) {
		return false
	}
	delete(a.replaced, name)
	a.removed[name] = true
	a.logger.Debug(LogMsgPartRemoved, zap.String(LogFieldPart, name))
	return true
}

// PartNames returns the names of all live parts in package order.
func (a *Archive) PartNames() []string {
	names := make([]string, 0, len(a.files)+len(a.appended))
	for _, f := range a.files {
		if !a.removed[f.Name] {
			names = append(names, f.Name)
		}
	}
	for _, name := range a.appended {
		if !a.removed[name] {
			names = append(names, name)
		}
	}
	return names
}

// WriteTo serializes the package. Untouched entries are copied with
// their original compressed bytes; replaced entries are re-deflated
// with a zeroed timestamp. Equal inputs therefore produce equal output
// bytes.
func (a *Archive) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)
	for _, f := range a.files {
		if a.removed[f.Name] {
			continue
		}
		if data, ok := a.replaced[f.Name]; ok {
			if err := writeDeflated(zw, f.Name, data); err != nil {
				return cw.n, err
			}
			continue
		}
		if err := zw.Copy(f); err != nil {
			return cw.n, &ArchiveError{Message: ErrMsgZipWrite, Part: f.Name}
		}
	}
	for _, name := range a.appended {
		if a.removed[name] {
			continue
		}
		if err := writeDeflated(zw, name, a.replaced[name]); err != nil {
			return cw.n, err
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, &ArchiveError{Message: ErrMsgZipWrite}
	}
	a.logger.Debug(LogMsgArchiveWritten, zap.Int64(LogFieldBytes, cw.n))
	return cw.n, nil
}

// writeDeflated writes one entry with a deterministic header.
func writeDeflated(zw *zip.Writer, name string, data []byte) error {
	hdr := &zip.FileHeader{Name: name, Method: zip.Deflate}
	pw, err := zw.CreateHeader(hdr)
	if err != nil {
		return &ArchiveError{Message: ErrMsgZipWrite, Part: name}
	}
	if _, err := pw.Write(data); err != nil {
		return &ArchiveError{Message: ErrMsgZipWrite, Part: name}
	}
	return nil
}

// countingWriter tracks bytes written for the io.WriterTo contract
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

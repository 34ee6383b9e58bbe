package deckgen

import (
	"bytes"
	"errors"
	"regexp"

	"go.uber.org/zap"

	"github.com/siliconcp/go-deckgen/internal"
)

// placeholderTokenRe finds token-shaped strings anywhere in text.
var placeholderTokenRe = regexp.MustCompile(PlaceholderPattern)

// SlideInfo describes one slide of a loaded template.
type SlideInfo struct {
	// Index is the 1-based position of the slide in the source deck.
	Index int `json:"index"`
	// PartName is the archive part holding the slide.
	PartName string `json:"part"`
	// Tags lists the gating tags found in the slide's speaker notes.
	Tags []string `json:"tags,omitempty"`
	// Tokens lists the placeholder tokens found in the slide body.
	Tokens []string `json:"tokens,omitempty"`
}

// Template is a loaded presentation package. It is immutable: renders
// read from it and never write to it, so one Template is safe to share
// across concurrent renders.
type Template struct {
	source []byte
	name   string
	refs   []internal.SlideRef
	notes  map[string]string
	slides []SlideInfo
}

// Name returns the origin the template was loaded from.
func (t *Template) Name() string {
	return t.name
}

// SlideCount returns the number of slides in the source deck.
func (t *Template) SlideCount() int {
	return len(t.refs)
}

// Slides returns ordered metadata for every slide of the source deck.
func (t *Template) Slides() []SlideInfo {
	out := make([]SlideInfo, len(t.slides))
	copy(out, t.slides)
	return out
}

// buildTemplate parses a presentation package into a Template. The
// input bytes are cloned so later caller mutations cannot reach the
// loaded template.
func buildTemplate(data []byte, name string, logger *zap.Logger) (*Template, error) {
	source := bytes.Clone(data)
	archive, err := internal.OpenArchive(source, logger)
	if err != nil {
		return nil, templateError(err)
	}
	presXML, err := archive.Part(internal.PartPresentation)
	if err != nil {
		return nil, templateError(err)
	}
	relsXML, err := archive.Part(internal.PartPresentationRels)
	if err != nil {
		return nil, templateError(err)
	}
	refs, err := internal.ParseSlideRefs(presXML, relsXML)
	if err != nil {
		return nil, templateError(err)
	}
	if len(refs) == 0 {
		return nil, NewTemplateCorruptError(ErrMsgTemplateNoSlides, internal.PartPresentation, nil)
	}

	t := &Template{
		source: source,
		name:   name,
		refs:   refs,
		notes:  make(map[string]string, len(refs)),
		slides: make([]SlideInfo, 0, len(refs)),
	}
	for i, ref := range refs {
		slideXML, err := archive.Part(ref.PartName)
		if err != nil {
			return nil, templateError(err)
		}
		info := SlideInfo{
			Index:    i + 1,
			PartName: ref.PartName,
			Tokens:   scanTokens(internal.ExtractText(slideXML)),
		}
		if notesName, ok := notesPartName(archive, ref.PartName); ok {
			notesXML, err := archive.Part(notesName)
			if err != nil {
				return nil, templateError(err)
			}
			t.notes[ref.PartName] = notesName
			info.Tags = ParseTags(internal.ExtractText(notesXML))
		}
		t.slides = append(t.slides, info)
	}
	return t, nil
}

// notesPartName resolves the notes part related to a slide, if any.
func notesPartName(archive *internal.Archive, slidePart string) (string, bool) {
	relsName := internal.RelsPartFor(slidePart)
	if !archive.HasPart(relsName) {
		return "", false
	}
	relsXML, err := archive.Part(relsName)
	if err != nil {
		return "", false
	}
	name, ok := internal.NotesPartFor(slidePart, relsXML)
	if !ok || !archive.HasPart(name) {
		return "", false
	}
	return name, true
}

// scanTokens lists the token-shaped strings in a slide's text, in
// order of first appearance, without duplicates.
func scanTokens(text string) []string {
	found := placeholderTokenRe.FindAllString(text, -1)
	if len(found) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(found))
	tokens := make([]string, 0, len(found))
	for _, tok := range found {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		tokens = append(tokens, tok)
	}
	return tokens
}

// templateError classifies a package-level parse failure as an
// operator-facing template error.
func templateError(err error) error {
	var ae *internal.ArchiveError
	if errors.As(err, &ae) {
		return NewTemplateCorruptError(ae.Message, ae.Part, err)
	}
	return NewTemplateCorruptError(ErrMsgTemplateCorrupt, "", err)
}

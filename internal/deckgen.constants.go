package internal

// Fixed part names of the OPC package structure
const (
	PartContentTypes     = "[Content_Types].xml"
	PartPresentation     = "ppt/presentation.xml"
	PartPresentationRels = "ppt/_rels/presentation.xml.rels"
)

// Part name prefixes for slide and notes parts
const (
	PrefixSlides      = "ppt/slides/"
	PrefixNotesSlides = "ppt/notesSlides/"
)

// Relationship type URIs used to resolve slide and notes parts
const (
	RelTypeSlide      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	RelTypeNotesSlide = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide"
)

// DrawingML element names scanned in slide and notes parts
const (
	ElemParagraph = "a:p"
	ElemRun       = "a:r"
	ElemText      = "a:t"
)

// Log message constants
const (
	LogMsgArchiveOpened  = "archive opened"
	LogMsgArchiveWritten = "archive written"
	LogMsgPartReplaced   = "part replaced"
	LogMsgPartRemoved    = "part removed"
)

// Log field names
const (
	LogFieldPart      = "part"
	LogFieldPartCount = "part_count"
	LogFieldBytes     = "bytes"
)

// Error message constants for archive handling
const (
	ErrMsgNotZip      = "not a valid zip package"
	ErrMsgPartMissing = "part not found in archive"
	ErrMsgPartRead    = "part content read failed"
	ErrMsgZipWrite    = "zip write failed"
)

// Error message constants for presentation structure
const (
	ErrMsgNoSlideList = "presentation has no slide id list"
	ErrMsgRelsParse   = "relationship part parse failed"
	ErrMsgRelMissing  = "slide relationship not found"
)

package deckgen

// Version is the current library version
const Version = "1.0.0"

// Default configuration values
const (
	DefaultCurrencySymbol   = "€"
	DefaultFilenamePrefix   = "SiliconCP_Proposal"
	DefaultDateInputFormat  = "2006-01-02"
	DefaultDateOutputFormat = "02/01/2006"
)

// Placeholder token delimiters as they appear in slide text
const (
	TokenOpen  = "{"
	TokenClose = "}"
)

// Output document constants
const (
	OutputExtension = ".pptx"
	ContentTypePPTX = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

// Declared placeholder names of the built-in proposal catalog
const (
	PlaceholderCompanyName  = "COMPANY_NAME"
	PlaceholderContactName  = "CONTACT_NAME"
	PlaceholderContactEmail = "CONTACT_EMAIL"
	PlaceholderProgram      = "PROGRAM"
	PlaceholderDate         = "DATE"
	PlaceholderSetupFee     = "SETUP_FEE"
	PlaceholderShortFee     = "SHORT_FEE"
	PlaceholderFullFee      = "FULL_FEE"
	PlaceholderGrantFee     = "GRANT_FEE"
	PlaceholderEquityFee    = "EQUITY_FEE"
)

// Request source keys a catalog entry can bind to
const (
	SourceCompanyName   = "company_name"
	SourceContactName   = "contact_name"
	SourceContactEmail  = "contact_email"
	SourceProgram       = "program"
	SourceProposalDate  = "proposal_date"
	SourcePricingPrefix = "pricing_overrides."
)

// Marker syntax patterns
const (
	// TagMarkerPattern matches slide gating markers in speaker notes,
	// capturing the tag name. Malformed markers simply fail to match.
	TagMarkerPattern = `\[\[tag:([a-zA-Z0-9_]+)\]\]`

	// PlaceholderPattern matches anything shaped like a placeholder
	// token, whether or not the catalog declares it.
	PlaceholderPattern = `\{[A-Z][A-Z0-9_]*\}`
)

// RenderState tracks the pipeline stage of one render.
type RenderState int

// Render pipeline states
const (
	StateLoaded RenderState = iota
	StateFiltered
	StateSubstituted
	StateSerialized
	StateFailed
)

// Render state string names
const (
	StateNameLoaded      = "loaded"
	StateNameFiltered    = "filtered"
	StateNameSubstituted = "substituted"
	StateNameSerialized  = "serialized"
	StateNameFailed      = "failed"
)

// String returns the string representation of the render state.
func (s RenderState) String() string {
	switch s {
	case StateLoaded:
		return StateNameLoaded
	case StateFiltered:
		return StateNameFiltered
	case StateSubstituted:
		return StateNameSubstituted
	case StateSerialized:
		return StateNameSerialized
	case StateFailed:
		return StateNameFailed
	default:
		return StateNameFailed
	}
}

// Log message constants
const (
	LogMsgEngineCreated   = "engine created"
	LogMsgTemplateLoaded  = "template loaded"
	LogMsgCatalogLoaded   = "catalog loaded"
	LogMsgRenderStart     = "render started"
	LogMsgValuesResolved  = "placeholder values resolved"
	LogMsgSlidesFiltered  = "slides filtered"
	LogMsgTextSubstituted = "placeholders substituted"
	LogMsgDeckSerialized  = "deck serialized"
	LogMsgRenderFailed    = "render failed"
	LogMsgUnresolvedToken = "unresolved placeholder left in place"
)

// Log field names
const (
	LogFieldTemplate     = "template"
	LogFieldSlideCount   = "slide_count"
	LogFieldRemoved      = "removed_slides"
	LogFieldWarnings     = "warning_count"
	LogFieldToken        = "token"
	LogFieldPart         = "part"
	LogFieldState        = "state"
	LogFieldBytes        = "bytes"
	LogFieldDuration     = "duration"
	LogFieldPlaceholders = "placeholder_count"
)

// Metadata keys attached to classified errors
const (
	MetaKeyErrorKind = "error_kind"
	MetaKeyField     = "field"
	MetaKeyKind      = "kind"
	MetaKeyValue     = "value"
	MetaKeyPart      = "part"
	MetaKeyPath      = "path"
)

// Error kind metadata values used for classification
const (
	ErrorKindMissingField = "missing_field"
	ErrorKindFormat       = "format"
	ErrorKindTemplate     = "template_corrupt"
	ErrorKindRequest      = "request"
	ErrorKindCatalog      = "catalog"
	ErrorKindInternal     = "internal"
)

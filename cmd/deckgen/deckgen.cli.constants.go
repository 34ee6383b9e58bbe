package main

// Flag names
const (
	FlagTemplate = "template"
	FlagRequest  = "request"
	FlagOut      = "out"
	FlagCatalog  = "catalog"
	FlagFormat   = "format"
)

// Flag shorthands
const (
	FlagTemplateShort = "t"
	FlagRequestShort  = "r"
	FlagOutShort      = "o"
	FlagCatalogShort  = "c"
	FlagFormatShort   = "F"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// StdStream marks a flag value that means stdin or stdout.
const StdStream = "-"

// Configuration keys (DECKGEN_ env prefix, dots become underscores)
const (
	CfgKeyHTTPAddr       = "http.addr"
	CfgKeyTemplatePath   = "template.path"
	CfgKeyCatalogPath    = "catalog.path"
	CfgKeyCORSOrigins    = "cors.origins"
	CfgKeyFilenamePrefix = "output.filename_prefix"
	CfgKeyLogLevel       = "log.level"
	CfgKeyLogDev         = "log.dev"
)

// Configuration defaults
const (
	CfgEnvPrefix     = "DECKGEN"
	CfgFileName      = "deckgen"
	CfgFileType      = "yaml"
	CfgDefaultAddr   = ":8080"
	CfgDefaultLogLvl = "info"
)

// API routes
const (
	APIPathRender   = "/api/v1/render"
	APIPathHealth   = "/api/v1/health"
	APIPathTemplate = "/api/v1/template"
	APIPathOpenAPI  = "/api/openapi.json"
)

// HTTP headers and content types
const (
	HeaderContentType        = "Content-Type"
	HeaderContentDisposition = "Content-Disposition"
	HeaderRequestID          = "X-Request-Id"
	HeaderWarnings           = "X-Deckgen-Warnings"

	ContentTypeJSON = "application/json"
	ContentTypePPTX = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

	CORSAllowMethods = "POST, OPTIONS"
	CORSAllowHeaders = "Content-Type"
)

// MaxRequestBytes caps render request bodies. Requests carry a handful
// of strings and numbers; anything near this limit is not a proposal.
const MaxRequestBytes = 1 << 20

// FilePermissions for files written by the CLI
const FilePermissions = 0644

// API error codes returned in the JSON error body
const (
	ErrCodeMissingField = "missing_field"
	ErrCodeFormat       = "format"
	ErrCodeRequest      = "request"
	ErrCodeTemplate     = "template"
	ErrCodeInternal     = "internal"
)

// Error messages - ALL must be constants
const (
	ErrMsgTemplateRequired = "template path required (flag --template or DECKGEN_TEMPLATE_PATH)"
	ErrMsgRequestRequired  = "request file required (flag --request)"
	ErrMsgInvalidLogLevel  = "invalid log level"
	ErrMsgInvalidFormat    = "invalid output format (want text or json)"
	ErrMsgBodyRead         = "failed to read request body"
	ErrMsgReadRequest      = "failed to read request file"
	ErrMsgReadStdin        = "failed to read from stdin"
	ErrMsgWriteOutput      = "failed to write output file"
)

// Log messages for the server
const (
	LogMsgServerStarting  = "deckgen server starting"
	LogMsgRequestHandled  = "request handled"
	LogMsgRenderRejected  = "render rejected"
	LogMsgCatalogFromFile = "catalog loaded from file"
)

// Log field names for the server
const (
	LogFieldAddr      = "addr"
	LogFieldTemplate  = "template"
	LogFieldSlides    = "slides"
	LogFieldMethod    = "method"
	LogFieldPath      = "path"
	LogFieldStatus    = "status"
	LogFieldDuration  = "duration"
	LogFieldRequestID = "request_id"
	LogFieldCode      = "code"
	LogFieldCatalog   = "catalog"
)

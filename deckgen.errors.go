package deckgen

import (
	"errors"

	"github.com/itsatony/go-cuserr"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Resolver errors
	ErrMsgMissingField = "required field missing"
	ErrMsgFormatFailed = "value formatting failed"

	// Template errors
	ErrMsgTemplateCorrupt  = "template structure invalid"
	ErrMsgTemplateRead     = "template read failed"
	ErrMsgTemplateNoSlides = "template contains no slides"

	// Request errors
	ErrMsgNilTemplate     = "template must not be nil"
	ErrMsgNilRequest      = "render request must not be nil"
	ErrMsgRequestDecode   = "render request decode failed"
	ErrMsgRenderCancelled = "render cancelled"

	// Catalog errors
	ErrMsgCatalogRead      = "catalog read failed"
	ErrMsgCatalogParse     = "catalog parse failed"
	ErrMsgCatalogEmpty     = "catalog declares no placeholders"
	ErrMsgCatalogName      = "invalid placeholder name"
	ErrMsgCatalogKind      = "unknown placeholder kind"
	ErrMsgCatalogDuplicate = "duplicate placeholder name"
	ErrMsgCatalogSource    = "placeholder source missing"

	// Serialization errors
	ErrMsgSerializeFailed = "deck serialization failed"
)

// Error code constants for categorization
const (
	ErrCodeField    = "DECKGEN_FIELD"
	ErrCodeFormat   = "DECKGEN_FORMAT"
	ErrCodeTemplate = "DECKGEN_TEMPLATE"
	ErrCodeRequest  = "DECKGEN_REQUEST"
	ErrCodeCatalog  = "DECKGEN_CATALOG"
	ErrCodeInternal = "DECKGEN_INTERNAL"
)

// NewMissingFieldError creates an error for a required field absent
// from the render request. These abort before any document mutation.
func NewMissingFieldError(field string) error {
	return cuserr.NewValidationError(ErrCodeField, ErrMsgMissingField).
		WithMetadata(MetaKeyErrorKind, ErrorKindMissingField).
		WithMetadata(MetaKeyField, field)
}

// NewFormatError creates an error for a value that cannot be rendered
// for its declared placeholder kind.
func NewFormatError(field string, kind PlaceholderKind, value string) error {
	return cuserr.NewValidationError(ErrCodeFormat, ErrMsgFormatFailed).
		WithMetadata(MetaKeyErrorKind, ErrorKindFormat).
		WithMetadata(MetaKeyField, field).
		WithMetadata(MetaKeyKind, string(kind)).
		WithMetadata(MetaKeyValue, value)
}

// NewTemplateCorruptError creates an operator-facing error for a
// template that fails structural validation.
func NewTemplateCorruptError(msg string, part string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeTemplate, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeTemplate, msg)
	}
	err = err.WithMetadata(MetaKeyErrorKind, ErrorKindTemplate)
	if part != "" {
		err = err.WithMetadata(MetaKeyPart, part)
	}
	return err
}

// NewRequestError creates an error for an unusable render request.
func NewRequestError(msg string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeRequest, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeRequest, msg)
	}
	return err.WithMetadata(MetaKeyErrorKind, ErrorKindRequest)
}

// NewCatalogError creates an error for an invalid placeholder catalog.
func NewCatalogError(msg string, name string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeCatalog, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeCatalog, msg)
	}
	err = err.WithMetadata(MetaKeyErrorKind, ErrorKindCatalog)
	if name != "" {
		err = err.WithMetadata(MetaKeyField, name)
	}
	return err
}

// NewCancelledError wraps a context cancellation observed between
// pipeline stages.
func NewCancelledError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeInternal, ErrMsgRenderCancelled).
		WithMetadata(MetaKeyErrorKind, ErrorKindInternal)
}

// NewSerializeError wraps a failure while writing the output package.
func NewSerializeError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeInternal, ErrMsgSerializeFailed).
		WithMetadata(MetaKeyErrorKind, ErrorKindInternal)
}

// errorKind extracts the classification metadata from an error chain.
func errorKind(err error) string {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return ""
	}
	kind, _ := customErr.GetMetadata(MetaKeyErrorKind)
	return kind
}

// IsMissingFieldError reports whether err is a missing required field
// error. These are user-correctable.
func IsMissingFieldError(err error) bool {
	return errorKind(err) == ErrorKindMissingField
}

// IsFormatError reports whether err is a value formatting error.
// These are user-correctable.
func IsFormatError(err error) bool {
	return errorKind(err) == ErrorKindFormat
}

// IsTemplateCorruptError reports whether err indicates a structurally
// broken template. These are operator-facing.
func IsTemplateCorruptError(err error) bool {
	return errorKind(err) == ErrorKindTemplate
}

// IsRequestError reports whether err indicates an unusable request.
func IsRequestError(err error) bool {
	return errorKind(err) == ErrorKindRequest
}

// IsCatalogError reports whether err indicates an invalid catalog.
func IsCatalogError(err error) bool {
	return errorKind(err) == ErrorKindCatalog
}

// ErrorField extracts the offending field name from a classified
// error, if one was recorded.
func ErrorField(err error) (string, bool) {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return "", false
	}
	return customErr.GetMetadata(MetaKeyField)
}

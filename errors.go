package canonjson

import (
	"errors"

	"github.com/reoring/canonjson/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeNonFiniteNumber  = "non_finite_number"
	CodeNumberOutOfRange = "number_out_of_range"
	CodeInvalidSurrogate = "invalid_surrogate"
	CodeInvalidUTF8      = "invalid_utf8"
	CodeInvalidValue     = "invalid_value"
	CodeDepthExceeded    = "depth_exceeded"
	CodeDuplicateKey     = "duplicate_key"
	CodeParseError       = "parse_error"
)

// Issue is the single error produced by this package. Serialization is
// fail-fast: the first offending node aborts the whole operation, so issues
// never aggregate and no partial canonical text escapes.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/price). "/" is the root.
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

// Error renders "code at path: message".
func (e *Issue) Error() string {
	path := e.Path
	if path == "" {
		path = "/"
	}
	if e.Message == "" {
		return e.Code + " at " + path
	}
	return e.Code + " at " + path + ": " + e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As chains.
func (e *Issue) Unwrap() error { return e.Cause }

// AsIssue extracts an *Issue from an error using errors.As internally.
func AsIssue(err error) (*Issue, bool) {
	if err == nil {
		return nil, false
	}
	var iss *Issue
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// newIssue builds an Issue with its message resolved through i18n. Path is
// left empty; whoever detects the failure knows where it happened and fills
// it in.
func newIssue(code string, data map[string]string) *Issue {
	return &Issue{Code: code, Message: i18n.T(code, data)}
}

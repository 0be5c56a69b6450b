package lenientjson

import (
	"fmt"

	"github.com/unkn0wn-root/lenientjson/charset"
	"github.com/unkn0wn-root/lenientjson/dispatch"
)

// Errors raised by the decode and dispatch layers, re-exported so callers
// can errors.As against this package alone.
type (
	// UnknownEncodingError: the explicit encoding names no registered or
	// IANA-resolvable charset.
	UnknownEncodingError = charset.UnknownEncodingError
	// DecodeError: bytes invalid in the selected charset under the
	// Strict policy.
	DecodeError = charset.DecodeError
	// UnsupportedTypeError: a value (or a fallback converter's result)
	// cannot be made JSON-serializable.
	UnsupportedTypeError = dispatch.UnsupportedTypeError
)

// NotFoundError reports a Path input that does not name an existing file.
// Plain string inputs never produce it; a string that is not an existing
// file is literal JSON text by contract.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("lenientjson: no such file: %q", e.Path)
}

// SyntaxError reports malformed JSON with enough position context to
// reproduce: byte offset plus the derived line and column.
type SyntaxError struct {
	Msg    string
	Offset int64
	Line   int
	Col    int

	err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("lenientjson: invalid JSON at line %d column %d (offset %d): %s",
		e.Line, e.Col, e.Offset, e.Msg)
}

// Unwrap returns the engine's original error.
func (e *SyntaxError) Unwrap() error { return e.err }

package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the document source text has zero
	// length. It is distinct from a document that matches nothing.
	ErrEmptyInput = errors.New("document input length must be > 0")
	// ErrNoExpander is returned when a mapping with a dynamic right-hand
	// side is evaluated but no expander was configured.
	ErrNoExpander = errors.New("dynamic mapping requires an expander")
	// ErrNilSink is returned when an evaluation is started without an
	// output sink.
	ErrNilSink = errors.New("value sink is nil")
	// ErrCacheMismatch is returned when the compiled-expression cache was
	// not built from the mapping sequence being evaluated.
	ErrCacheMismatch = errors.New("expression cache does not match mapping sequence")
)

// ErrSyntax is a path-query expression syntax error. Offset is the byte
// offset into the expression source where parsing stopped.
type ErrSyntax struct {
	Expr    string
	Offset  int
	Message string
}

// Error implements [error].
func (e ErrSyntax) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Message)
}

// ErrDocParse is a document parse error. Offset is the byte offset into the
// document source where the decoder failed.
type ErrDocParse struct {
	Offset int
	Err    error
}

// Error implements [error].
func (e ErrDocParse) Error() string {
	return fmt.Sprintf("parse error at offset %d: %v", e.Offset, e.Err)
}

// Unwrap exposes the decoder error.
func (e ErrDocParse) Unwrap() error { return e.Err }

// ErrCoerce is returned when a matched value cannot be represented in the
// mapping's target type. It is fatal for the whole evaluation call.
type ErrCoerce struct {
	Value any
	Type  Type
	Err   error
}

// Error implements [error].
func (e ErrCoerce) Error() string {
	return fmt.Sprintf("value %v (%T) is not representable as %s: %v", e.Value, e.Value, e.Type, e.Err)
}

// Unwrap exposes the underlying conversion error.
func (e ErrCoerce) Unwrap() error { return e.Err }

// ErrUnknownMode is returned when an output mode name is not in the fixed
// set of supported modes.
type ErrUnknownMode struct {
	Mode string
}

// Error implements [error].
func (e ErrUnknownMode) Error() string {
	return fmt.Sprintf("output_mode value %q is invalid", e.Mode)
}

// ErrUnknownType is returned when a type name is not in the fixed set of
// supported target types.
type ErrUnknownType struct {
	Name string
}

// Error implements [error].
func (e ErrUnknownType) Error() string {
	return fmt.Sprintf("unknown type %q", e.Name)
}

// ErrWideInteger is returned at configuration time when a mapping targets a
// 64-bit unsigned integer but the configured encoder has no 64-bit integer
// support.
type ErrWideInteger struct {
	Name string
}

// Error implements [error].
func (e ErrWideInteger) Error() string {
	return fmt.Sprintf("attribute %q: 64bit integers are not supported by the configured encoder, upgrade required", e.Name)
}

// ErrBadToken is returned when a selector token fails to resolve as a
// reference expression.
type ErrBadToken struct {
	Token string
}

// Error implements [error].
func (e ErrBadToken) Error() string {
	return fmt.Sprintf("invalid attribute reference %q", e.Token)
}

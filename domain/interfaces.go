// Package domain contains the interfaces, entities and typed errors shared
// by the jsonmap adapters.
//
// This package defines the contracts the mapping core consumes: the
// path-query compiler and evaluator, the document parser, the document
// encoder, the value coercer, the runtime expander and the named-value
// provider. Default implementations live under adapter, one package per
// concern.
package domain

import "context"

// Expression is an opaque compiled path-query expression. It owns no
// document data and is safe to reuse across many evaluations of different
// documents. Compilation is deterministic.
type Expression interface {
	// String returns the canonical re-printed form of the expression.
	String() string
}

// Compiler parses path-query expression text.
type Compiler interface {
	// Compile parses text and returns the compiled expression and the
	// number of bytes consumed. Malformed text returns an [ErrSyntax]
	// carrying the byte offset where parsing stopped.
	Compile(text string) (Expression, int, error)
}

// Evaluator evaluates a compiled expression against a parsed document.
type Evaluator interface {
	// Evaluate walks the document root and returns every leaf matched
	// by the expression, in document order. Zero matches is not an
	// error. The hint is the target type the caller will coerce
	// matches to.
	Evaluate(expr Expression, root any, hint Type) ([]any, error)
}

// DocumentParser builds an in-memory tree from document text.
type DocumentParser interface {
	// Parse decodes data into a tree of map[string]any, []any and
	// scalars. Malformed input returns an [ErrDocParse] carrying the
	// byte offset where decoding failed.
	Parse(data []byte) (any, error)
}

// Encoder converts a name→value list into document bytes.
type Encoder interface {
	// Encode renders values, in order, using the given format options.
	Encode(values []Value, format Format) ([]byte, error)
	// Supports64Bit reports whether the encoder can represent 64-bit
	// integers without loss.
	Supports64Bit() bool
}

// Coercer converts a matched leaf into the representation of a target
// type.
type Coercer interface {
	// Coerce converts value to the Go representation of t, or returns
	// an [ErrCoerce] when the value is not representable.
	Coerce(value any, t Type) (any, error)
}

// Expander performs runtime string expansion of dynamic right-hand-side
// templates. The escape function must be applied to every substituted
// value so the result stays parseable as a path-query expression.
type Expander interface {
	Expand(ctx context.Context, template string, escape func(string) string) (string, error)
}

// ValueProvider resolves a reference token to the current group of named
// values. Resolving a name that holds no values is not an error and yields
// an empty group.
type ValueProvider interface {
	Resolve(ctx context.Context, ref string) ([]Value, error)
}

// ValueSink receives the values produced by a mapping evaluation, in match
// order. An evaluation delivers either all of its values or none.
type ValueSink interface {
	Append(values ...Value) error
}

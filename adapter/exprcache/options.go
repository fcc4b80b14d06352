package exprcache

import "github.com/attrkit/jsonmap/domain"

// WithCompiler sets the expression compiler used for static and literal
// right-hand sides.
func WithCompiler(c domain.Compiler) Option {
	return func(b *Builder) {
		b.compiler = c
	}
}

// WithEncoder sets the encoder whose capabilities are checked during
// validation.
func WithEncoder(e domain.Encoder) Option {
	return func(b *Builder) {
		b.encoder = e
	}
}

// Option configures builder behavior through the functional options
// pattern.
type Option func(*Builder)

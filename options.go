package jsonmap

import (
	"log/slog"

	"github.com/attrkit/jsonmap/adapter/encoder"
	"github.com/attrkit/jsonmap/domain"
)

type moduleOptions struct {
	name      string
	format    domain.Format
	compiler  domain.Compiler
	evaluator domain.Evaluator
	parser    domain.DocumentParser
	encoder   domain.Encoder
	coercer   domain.Coercer
	expander  domain.Expander
	provider  domain.ValueProvider
	log       *slog.Logger
	err       error
}

// WithName sets the instance name used to key the encoding function in
// [Module.Funcs].
func WithName(name string) Option {
	return func(o *moduleOptions) {
		o.name = name
	}
}

// WithFormat sets the output format options for the encoding path.
func WithFormat(f domain.Format) Option {
	return func(o *moduleOptions) {
		o.format = f
	}
}

// WithFormatSection decodes a raw configuration section into the output
// format options. An unrecognized output_mode fails [New].
func WithFormatSection(section map[string]any) Option {
	return func(o *moduleOptions) {
		f, err := encoder.ParseFormat(section)
		if err != nil {
			o.err = err
			return
		}
		o.format = f
	}
}

// WithLogger sets the logger for diagnostics. The default discards
// everything.
func WithLogger(log *slog.Logger) Option {
	return func(o *moduleOptions) {
		o.log = log
	}
}

// WithCompiler sets the path-query expression compiler.
func WithCompiler(c domain.Compiler) Option {
	return func(o *moduleOptions) {
		o.compiler = c
	}
}

// WithEvaluator sets the path-query expression evaluator.
func WithEvaluator(e domain.Evaluator) Option {
	return func(o *moduleOptions) {
		o.evaluator = e
	}
}

// WithParser sets the document parser.
func WithParser(p domain.DocumentParser) Option {
	return func(o *moduleOptions) {
		o.parser = p
	}
}

// WithEncoder sets the document encoder.
func WithEncoder(e domain.Encoder) Option {
	return func(o *moduleOptions) {
		o.encoder = e
	}
}

// WithCoercer sets the coercer converting matched leaves to target types.
func WithCoercer(c domain.Coercer) Option {
	return func(o *moduleOptions) {
		o.coercer = c
	}
}

// WithExpander sets the runtime expander for dynamic right-hand-side
// templates.
func WithExpander(e domain.Expander) Option {
	return func(o *moduleOptions) {
		o.expander = e
	}
}

// WithProvider sets the named-value provider used by [Module.Encode].
func WithProvider(p domain.ValueProvider) Option {
	return func(o *moduleOptions) {
		o.provider = p
	}
}

// Option configures module behavior through the functional options
// pattern.
type Option func(*moduleOptions)

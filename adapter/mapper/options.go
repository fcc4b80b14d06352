package mapper

import (
	"log/slog"

	"github.com/attrkit/jsonmap/domain"
)

// WithParser sets the document parser.
func WithParser(p domain.DocumentParser) Option {
	return func(m *Mapper) {
		m.parser = p
	}
}

// WithCompiler sets the expression compiler used for dynamic right-hand
// sides.
func WithCompiler(c domain.Compiler) Option {
	return func(m *Mapper) {
		m.compiler = c
	}
}

// WithEvaluator sets the expression evaluator.
func WithEvaluator(e domain.Evaluator) Option {
	return func(m *Mapper) {
		m.evaluator = e
	}
}

// WithCoercer sets the coercer converting matched leaves to target types.
func WithCoercer(c domain.Coercer) Option {
	return func(m *Mapper) {
		m.coercer = c
	}
}

// WithExpander sets the expander for dynamic right-hand-side templates.
func WithExpander(e domain.Expander) Option {
	return func(m *Mapper) {
		m.expander = e
	}
}

// WithEscape sets the escape function handed to the expander.
func WithEscape(escape func(string) string) Option {
	return func(m *Mapper) {
		m.escape = escape
	}
}

// WithLogger sets the logger for evaluation diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(m *Mapper) {
		m.log = log
	}
}

// Option configures mapper behavior through the functional options
// pattern.
type Option func(*Mapper)

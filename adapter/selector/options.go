package selector

import (
	"log/slog"

	"github.com/attrkit/jsonmap/domain"
)

// WithEncoder sets the document encoder.
func WithEncoder(e domain.Encoder) Option {
	return func(b *Builder) {
		b.encoder = e
	}
}

// WithFormat sets the output format options.
func WithFormat(f domain.Format) Option {
	return func(b *Builder) {
		b.format = f
	}
}

// WithLogger sets the logger for build diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(b *Builder) {
		b.log = log
	}
}

// Option configures builder behavior through the functional options
// pattern.
type Option func(*Builder)

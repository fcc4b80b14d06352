package jsonmap

import (
	"context"

	"github.com/attrkit/jsonmap/adapter/exprcache"
	"github.com/attrkit/jsonmap/domain"
)

// QuoteFunc escapes one string for embedding in a JSON document.
type QuoteFunc func(string) (string, error)

// ValidateFunc compiles an expression and returns a diagnostic string.
type ValidateFunc func(string) string

// EncodeFunc resolves space-separated inclusion/exclusion tokens and
// returns the encoded document text.
type EncodeFunc func(context.Context, string) (string, error)

// Funcs returns the module's expansion functions keyed by their
// registration names: [QuoteFunc] under "jsonquote", [ValidateFunc] under
// "jpathvalidate" and [EncodeFunc] under "<name>_encode". A surrounding
// expansion framework mounts these under the returned names.
func (m *Module) Funcs() map[string]any {
	return map[string]any{
		"jsonquote":        QuoteFunc(m.Quote),
		"jpathvalidate":    ValidateFunc(m.Validate),
		m.name + "_encode": EncodeFunc(m.Encode),
	}
}

// Processor is the mapping-set processor a surrounding request framework
// registers under Name: an instantiation hook run once per mapping set at
// configuration time, and an evaluation hook run per request.
type Processor struct {
	Name        string
	Instantiate func(mappings []domain.Mapping) (*exprcache.Cache, error)
	Evaluate    func(ctx context.Context, cache *exprcache.Cache, source string, mappings []domain.Mapping, sink domain.ValueSink) domain.Result
}

// Processor returns the module's mapping-set processor, keyed with the
// instance name.
func (m *Module) Processor() Processor {
	return Processor{
		Name:        m.name,
		Instantiate: m.Instantiate,
		Evaluate:    m.Evaluate,
	}
}

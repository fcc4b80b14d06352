// Package jsonmap maps JSON documents to typed named values and back.
//
// Given a set of declarative mappings (target name, path-query expression,
// combination operator), it extracts zero or more typed values per mapping
// from a parsed document. In the reverse direction, given named values and
// a list of inclusion/exclusion selector tokens, it builds a filtered JSON
// document.
//
// The basic usage starts with creating a [Module] via [New], instantiating
// a mapping set once with [Module.Instantiate], and evaluating documents
// against it with [Module.Evaluate]:
//
//	m, err := jsonmap.New()
//	cache, err := m.Instantiate(mappings)
//	sink, err := attrstore.NewStore()
//	result := m.Evaluate(ctx, cache, `{"msg":"hello"}`, mappings, sink)
//
// Every collaborator (expression engine, document parser, encoder,
// coercer, expander, value provider) is a [domain] interface with a
// default adapter, replaceable through functional options.
package jsonmap

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/attrkit/jsonmap/adapter/encoder"
	"github.com/attrkit/jsonmap/adapter/exprcache"
	"github.com/attrkit/jsonmap/adapter/jpath"
	"github.com/attrkit/jsonmap/adapter/mapper"
	"github.com/attrkit/jsonmap/adapter/selector"
	"github.com/attrkit/jsonmap/domain"
)

var (
	// ErrEmptyInput is returned when the document source has zero
	// length, distinct from a document that matches nothing.
	ErrEmptyInput = domain.ErrEmptyInput
	// ErrNoExpander is returned when a dynamic mapping is evaluated but
	// no expander was configured.
	ErrNoExpander = domain.ErrNoExpander
)

// ErrSyntax is a path-query expression syntax error with a byte offset.
type ErrSyntax = domain.ErrSyntax

// ErrDocParse is a document parse error with a byte offset.
type ErrDocParse = domain.ErrDocParse

// ErrCoerce is returned when a matched value cannot be represented in a
// mapping's target type.
type ErrCoerce = domain.ErrCoerce

// ErrUnknownMode is returned by [New] for an unrecognized output mode.
type ErrUnknownMode = domain.ErrUnknownMode

// ErrBadToken is returned when a selector token is not a valid attribute
// reference.
type ErrBadToken = domain.ErrBadToken

// Module is the configured mapping core. Immutable after [New]; safe for
// concurrent use as long as every call gets its own sink and provider.
type Module struct {
	name     string
	format   domain.Format
	compiler domain.Compiler
	encoder  domain.Encoder
	provider domain.ValueProvider
	log      *slog.Logger

	mapper  *mapper.Mapper
	builder *selector.Builder
	cache   *exprcache.Builder
}

// New creates a new Module with the provided configuration options:
//
// - [WithName]: sets the instance name used in [Module.Funcs] keys.
//
// - [WithFormat]: sets the output format options for the encoding path.
//
// - [WithFormatSection]: like WithFormat, decoded from a raw config map.
//
// - [WithLogger]: sets the logger for diagnostics.
//
// - [WithCompiler]: sets the path-query expression compiler.
//
// - [WithEvaluator]: sets the path-query expression evaluator.
//
// - [WithParser]: sets the document parser.
//
// - [WithEncoder]: sets the document encoder.
//
// - [WithCoercer]: sets the leaf-to-target-type coercer.
//
// - [WithExpander]: sets the runtime expander for dynamic mappings.
//
// - [WithProvider]: sets the named-value provider for [Module.Encode].
//
// The output mode is validated here; an unrecognized mode is a hard
// configuration error.
func New(options ...Option) (*Module, error) {
	engine := jpath.NewEngine()
	o := &moduleOptions{
		name:     "json",
		compiler: engine,
		encoder:  encoder.NewEncoder(),
		log:      slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !o.format.Mode.Valid() {
		return nil, domain.ErrUnknownMode{Mode: o.format.Mode.String()}
	}

	mapperOpts := []mapper.Option{
		mapper.WithCompiler(o.compiler),
		mapper.WithLogger(o.log),
	}
	if o.evaluator != nil {
		mapperOpts = append(mapperOpts, mapper.WithEvaluator(o.evaluator))
	}
	if o.parser != nil {
		mapperOpts = append(mapperOpts, mapper.WithParser(o.parser))
	}
	if o.coercer != nil {
		mapperOpts = append(mapperOpts, mapper.WithCoercer(o.coercer))
	}
	if o.expander != nil {
		mapperOpts = append(mapperOpts, mapper.WithExpander(o.expander))
	}

	return &Module{
		name:     o.name,
		format:   o.format,
		compiler: o.compiler,
		encoder:  o.encoder,
		provider: o.provider,
		log:      o.log,
		mapper:   mapper.NewMapper(mapperOpts...),
		builder: selector.NewBuilder(
			selector.WithEncoder(o.encoder),
			selector.WithFormat(o.format),
			selector.WithLogger(o.log),
		),
		cache: exprcache.NewBuilder(
			exprcache.WithCompiler(o.compiler),
			exprcache.WithEncoder(o.encoder),
		),
	}, nil
}

// Instantiate validates a mapping set and compiles its static expressions
// into a read-only cache. Call it once per mapping set; the cache lives as
// long as the set and is shared by every evaluation of it.
func (m *Module) Instantiate(mappings []domain.Mapping) (*exprcache.Cache, error) {
	return m.cache.Build(mappings)
}

// Evaluate extracts values from source using the mapping set and its
// cache, delivering them to sink. See [mapper.Mapper.Map] for the result
// semantics.
func (m *Module) Evaluate(ctx context.Context, cache *exprcache.Cache, source string, mappings []domain.Mapping, sink domain.ValueSink) domain.Result {
	return m.mapper.Map(ctx, cache, mappings, sink, strings.NewReader(source))
}

// EvaluateReaders is like [Module.Evaluate] for document text supplied in
// fragments; the fragments are concatenated before parsing.
func (m *Module) EvaluateReaders(ctx context.Context, cache *exprcache.Cache, mappings []domain.Mapping, sink domain.ValueSink, fragments ...io.Reader) domain.Result {
	return m.mapper.Map(ctx, cache, mappings, sink, fragments...)
}

// Quote escapes a single string value for safe inclusion in a JSON
// document. Empty input is valid and yields empty output.
func (m *Module) Quote(s string) (string, error) {
	return encoder.Quote(s), nil
}

// Validate compiles an expression and reports the outcome. Valid text
// yields "<bytes consumed>:<canonical form>"; malformed text yields
// "<offset>:<message>". Malformed input is a reportable outcome, not an
// error.
func (m *Module) Validate(expr string) string {
	return jpath.Diagnose(m.compiler, expr)
}

// Encode resolves the space-separated inclusion/exclusion tokens against
// the provider configured with [WithProvider] and encodes the resulting
// values using the module's format options.
func (m *Module) Encode(ctx context.Context, tokens string) (string, error) {
	return m.EncodeWith(ctx, tokens, m.provider)
}

// EncodeWith is like [Module.Encode] with an explicit provider.
func (m *Module) EncodeWith(ctx context.Context, tokens string, provider domain.ValueProvider) (string, error) {
	out, err := m.builder.Build(ctx, tokens, provider)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

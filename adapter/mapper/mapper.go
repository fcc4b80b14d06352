// Package mapper contains the mapping evaluator: it parses a document
// once, walks a mapping sequence in step with its compiled-expression
// cache, and converts every matched leaf into a typed value delivered to
// the output sink.
package mapper

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/dolmen-go/contextio"

	"github.com/attrkit/jsonmap/adapter/coercer"
	"github.com/attrkit/jsonmap/adapter/data"
	"github.com/attrkit/jsonmap/adapter/exprcache"
	"github.com/attrkit/jsonmap/adapter/jpath"
	"github.com/attrkit/jsonmap/domain"
	"github.com/attrkit/jsonmap/pkg/marker"
)

// Mapper implements the evaluation side of a mapping set. It holds no
// per-call state; one Mapper may serve concurrent evaluations as long as
// each call gets its own source and sink.
type Mapper struct {
	parser    domain.DocumentParser
	compiler  domain.Compiler
	evaluator domain.Evaluator
	coercer   domain.Coercer
	expander  domain.Expander
	escape    func(string) string
	log       *slog.Logger
}

// NewMapper returns a new [Mapper]. Without [WithExpander], mappings with
// dynamic right-hand sides fail evaluation.
func NewMapper(options ...Option) *Mapper {
	engine := jpath.NewEngine()
	m := &Mapper{
		parser:    data.NewParser(),
		compiler:  engine,
		evaluator: engine,
		coercer:   coercer.NewCoercer(),
		escape:    jpath.Escape,
		log:       slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Map evaluates mappings against the document supplied in fragments,
// delivering the produced values to sink. The result is
// [domain.ResultNoop] when no mapping matched anything,
// [domain.ResultUpdated] when at least one value was delivered, and
// [domain.ResultFail] when any step aborted. On failure nothing is
// delivered: values are buffered and flushed to the sink only after the
// whole walk succeeds.
func (m *Mapper) Map(ctx context.Context, cache *exprcache.Cache, mappings []domain.Mapping, sink domain.ValueSink, fragments ...io.Reader) domain.Result {
	log := m.log
	if cache != nil {
		log = log.With("instance", cache.ID())
	}

	if sink == nil {
		log.Error("evaluation aborted", "error", domain.ErrNilSink)
		return domain.ResultFail
	}
	if cache == nil || cache.Len() != len(mappings) {
		log.Error("evaluation aborted", "error", domain.ErrCacheMismatch)
		return domain.ResultFail
	}

	source, err := io.ReadAll(contextio.NewReader(ctx, io.MultiReader(fragments...)))
	if err != nil {
		log.Error("failed collecting input", "error", err)
		return domain.ResultFail
	}
	if len(source) == 0 {
		log.Error("evaluation aborted", "error", domain.ErrEmptyInput)
		return domain.ResultFail
	}

	root, err := m.parser.Parse(source)
	if err != nil {
		var perr domain.ErrDocParse
		if errors.As(err, &perr) {
			log.Error("failed parsing document",
				"error", err,
				"marker", marker.Format(string(source), perr.Offset, perr.Err.Error()))
		} else {
			log.Error("failed parsing document", "error", err)
		}
		return domain.ResultFail
	}

	var out []domain.Value
	for n, mp := range mappings {
		expr, ok, err := m.expression(ctx, cache.Entry(n), mp, log)
		if err != nil {
			return domain.ResultFail
		}
		if !ok {
			continue
		}

		leaves, err := m.evaluator.Evaluate(expr, root, mp.Type)
		if err != nil {
			log.Error("failed evaluating expression", "mapping", mp.Name, "error", err)
			return domain.ResultFail
		}

		for _, leaf := range leaves {
			coerced, err := m.coercer.Coerce(leaf, mp.Type)
			if err != nil {
				log.Error("failed coercing value", "mapping", mp.Name, "error", err)
				return domain.ResultFail
			}
			out = append(out, domain.Value{
				Name: mp.Name,
				Type: mp.Type,
				Op:   mp.Op,
				Data: coerced,
			})
		}
	}

	if len(out) == 0 {
		return domain.ResultNoop
	}
	if err := sink.Append(out...); err != nil {
		log.Error("failed delivering values", "error", err)
		return domain.ResultFail
	}
	return domain.ResultUpdated
}

// expression resolves the compiled expression for one mapping: cached for
// static and literal kinds, expanded and compiled fresh for dynamic kinds,
// absent for anything else. Dynamically compiled expressions never outlive
// the mapping that created them.
func (m *Mapper) expression(ctx context.Context, entry exprcache.Entry, mp domain.Mapping, log *slog.Logger) (domain.Expression, bool, error) {
	switch entry.Kind {
	case domain.RHSStatic, domain.RHSLiteral:
		return entry.Expr, true, nil

	case domain.RHSDynamic:
		if m.expander == nil {
			log.Error("failed expanding expression", "mapping", mp.Name, "error", domain.ErrNoExpander)
			return nil, false, domain.ErrNoExpander
		}
		text, err := m.expander.Expand(ctx, mp.RHS.Text, m.escape)
		if err != nil {
			log.Error("failed expanding expression", "mapping", mp.Name, "error", err)
			return nil, false, err
		}
		expr, _, err := m.compiler.Compile(text)
		if err != nil {
			var serr domain.ErrSyntax
			if errors.As(err, &serr) {
				log.Error("failed compiling expression",
					"mapping", mp.Name,
					"error", err,
					"marker", marker.Format(text, serr.Offset, serr.Message))
			} else {
				log.Error("failed compiling expression", "mapping", mp.Name, "error", err)
			}
			return nil, false, err
		}
		return expr, true, nil

	default:
		// Unsupported right-hand kinds are skipped, not failed.
		return nil, false, nil
	}
}

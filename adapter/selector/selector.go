// Package selector builds a filtered document from selector tokens: each
// token references a named group of values and is either included or, when
// prefixed with '!', excluded from the working list handed to the encoder.
package selector

import (
	"context"
	"log/slog"
	"strings"

	"github.com/attrkit/jsonmap/adapter/encoder"
	"github.com/attrkit/jsonmap/domain"
)

// Builder implements the selector scan and document encoding. The working
// accumulator is call-local; one Builder may serve concurrent calls.
type Builder struct {
	encoder domain.Encoder
	format  domain.Format
	log     *slog.Logger
}

// NewBuilder returns a new [Builder].
func NewBuilder(options ...Option) *Builder {
	b := &Builder{
		encoder: encoder.NewEncoder(),
		log:     slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// Build scans tokens left to right, accumulating the values each inclusion
// token resolves to and removing, for each exclusion token, every
// already-accumulated value whose name matches the resolved group. A later
// inclusion re-adds what an earlier exclusion removed. The final
// accumulator is encoded in accumulation order.
//
// A token that fails to resolve aborts the build; a token that resolves to
// zero values simply contributes nothing.
func (b *Builder) Build(ctx context.Context, tokens string, provider domain.ValueProvider) ([]byte, error) {
	var acc []domain.Value

	for _, token := range strings.Fields(tokens) {
		negate := false
		if ref, ok := strings.CutPrefix(token, "!"); ok {
			negate = true
			token = ref
		}
		if token == "" {
			b.log.Error("failed resolving token", "error", domain.ErrBadToken{Token: "!"})
			return nil, domain.ErrBadToken{Token: "!"}
		}

		group, err := provider.Resolve(ctx, token)
		if err != nil {
			b.log.Error("failed resolving token", "token", token, "error", err)
			return nil, err
		}

		if negate {
			acc = exclude(acc, group)
		} else {
			acc = append(acc, group...)
		}
	}

	out, err := b.encoder.Encode(acc, b.format)
	if err != nil {
		b.log.Error("failed encoding document", "error", err)
		return nil, err
	}
	return out, nil
}

// exclude removes from acc every value whose name appears in group. Only
// values accumulated so far are affected.
func exclude(acc []domain.Value, group []domain.Value) []domain.Value {
	if len(group) == 0 || len(acc) == 0 {
		return acc
	}
	names := make(map[string]struct{}, len(group))
	for _, v := range group {
		names[v.Name] = struct{}{}
	}

	kept := acc[:0]
	for _, v := range acc {
		if _, ok := names[v.Name]; !ok {
			kept = append(kept, v)
		}
	}
	return kept
}

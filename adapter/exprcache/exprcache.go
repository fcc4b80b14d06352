// Package exprcache builds the per-mapping-set cache of compiled
// path-query expressions. The cache holds one tagged entry per mapping, in
// mapping order, so evaluation never needs a separate cursor: static and
// literal entries carry their compiled expression, dynamic and unsupported
// entries carry none.
package exprcache

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/attrkit/jsonmap/adapter/encoder"
	"github.com/attrkit/jsonmap/adapter/jpath"
	"github.com/attrkit/jsonmap/domain"
	"github.com/attrkit/jsonmap/pkg/marker"
)

// Entry pairs one mapping position with its compiled expression, when the
// mapping's right-hand side is known at configuration time.
type Entry struct {
	Kind domain.RHSKind
	// Expr is set for static and literal entries, nil otherwise.
	Expr domain.Expression
}

// Cache is the compiled-expression cache for one mapping set. Built once,
// read-only afterwards, safe to share across concurrent evaluations.
type Cache struct {
	id      string
	entries []Entry
}

// ID returns the instance ID assigned at build time, used to correlate log
// records.
func (c *Cache) ID() string { return c.id }

// Len returns the number of entries. It always equals the length of the
// mapping sequence the cache was built from.
func (c *Cache) Len() int { return len(c.entries) }

// Entry returns the entry aligned with the mapping at position n.
func (c *Cache) Entry(n int) Entry { return c.entries[n] }

// Compiled returns how many entries hold a compiled expression, one per
// static-or-literal mapping.
func (c *Cache) Compiled() int {
	compiled := 0
	for _, e := range c.entries {
		if e.Expr != nil {
			compiled++
		}
	}
	return compiled
}

// Builder validates mapping sets and compiles their static expressions.
type Builder struct {
	compiler domain.Compiler
	encoder  domain.Encoder
}

// NewBuilder returns a new [Builder].
func NewBuilder(options ...Option) *Builder {
	b := &Builder{
		compiler: jpath.NewEngine(),
		encoder:  encoder.NewEncoder(),
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// Build compiles every static and literal right-hand side in mapping
// order. A single bad expression invalidates the whole mapping set; the
// returned error carries a caret-pointed rendering of the offending text.
// Mappings targeting uint64 are rejected up front when the encoder has no
// 64-bit integer support.
func (b *Builder) Build(mappings []domain.Mapping) (*Cache, error) {
	entries := make([]Entry, len(mappings))

	for n, m := range mappings {
		if m.Type == domain.TypeUint64 && !b.encoder.Supports64Bit() {
			return nil, domain.ErrWideInteger{Name: m.Name}
		}

		entries[n].Kind = m.RHS.Kind
		switch m.RHS.Kind {
		case domain.RHSStatic, domain.RHSLiteral:
			expr, _, err := b.compiler.Compile(m.RHS.Text)
			if err != nil {
				return nil, buildError(m, err)
			}
			entries[n].Expr = expr
		default:
			// Dynamic templates are compiled fresh on every
			// evaluation; anything else is skipped there.
		}
	}

	return &Cache{id: uuid.NewString(), entries: entries}, nil
}

func buildError(m domain.Mapping, err error) error {
	var serr domain.ErrSyntax
	if errors.As(err, &serr) {
		return fmt.Errorf("mapping %q: %w\n%s",
			m.Name, err, marker.Format(m.RHS.Text, serr.Offset, serr.Message))
	}
	return fmt.Errorf("mapping %q: %w", m.Name, err)
}

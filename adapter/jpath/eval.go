package jpath

import (
	"errors"
	"slices"

	"github.com/attrkit/jsonmap/domain"
)

var (
	// ErrForeignExpression is returned when an expression compiled by a
	// different engine is passed to [Engine.Evaluate].
	ErrForeignExpression = errors.New("expression was not compiled by this engine")
)

// Evaluate implements [domain.Evaluator]. Matches are returned in document
// order; object members are visited in key order so results are stable.
// The type hint does not change which leaves match, conversion is the
// caller's concern.
func (e *Engine) Evaluate(expr domain.Expression, root any, _ domain.Type) ([]any, error) {
	ex, ok := expr.(*Expr)
	if !ok {
		return nil, ErrForeignExpression
	}
	var out []any
	walk(ex.nodes, root, &out)
	return out, nil
}

func walk(nodes []node, v any, out *[]any) {
	if len(nodes) == 0 {
		collect(v, out)
		return
	}

	n := nodes[0]
	switch n.kind {
	case nodeChild:
		if m, ok := v.(map[string]any); ok {
			if c, ok := m[n.name]; ok {
				walk(nodes[1:], c, out)
			}
		}
	case nodeWildcard:
		if m, ok := v.(map[string]any); ok {
			for _, k := range sortedKeys(m) {
				walk(nodes[1:], m[k], out)
			}
		}
	case nodeIndex:
		if a, ok := v.([]any); ok {
			i := n.index
			if i < 0 {
				i += len(a)
			}
			if i >= 0 && i < len(a) {
				walk(nodes[1:], a[i], out)
			}
		}
	case nodeIndexAll:
		if a, ok := v.([]any); ok {
			for _, c := range a {
				walk(nodes[1:], c, out)
			}
		}
	case nodeDescend, nodeDescendWild:
		descend(nodes, v, out)
	}
}

// descend matches nodes[0] against v and every container below it, in
// document order.
func descend(nodes []node, v any, out *[]any) {
	n := nodes[0]
	switch t := v.(type) {
	case map[string]any:
		for _, k := range sortedKeys(t) {
			if n.kind == nodeDescendWild || k == n.name {
				walk(nodes[1:], t[k], out)
			}
			descend(nodes, t[k], out)
		}
	case []any:
		for _, c := range t {
			descend(nodes, c, out)
		}
	}
}

// collect appends the leaves reachable from v once the expression is
// exhausted: a scalar is a leaf, an array contributes its scalar elements
// and an object contributes nothing.
func collect(v any, out *[]any) {
	switch t := v.(type) {
	case map[string]any:
	case []any:
		for _, c := range t {
			switch c.(type) {
			case map[string]any, []any:
			default:
				*out = append(*out, c)
			}
		}
	default:
		*out = append(*out, t)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

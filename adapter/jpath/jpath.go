// Package jpath contains the default [domain.Compiler] and
// [domain.Evaluator] implementations: a path-query dialect over parsed JSON
// trees supporting the root marker, named children, wildcards, array
// indexes and recursive descent.
//
//	$.msg            the "msg" member of the root object
//	$.users[0].name  indexing, negative indexes count from the end
//	$.attrs.*        every member value
//	$.list[*]        every element
//	$..id            "id" at any depth
package jpath

import (
	"strconv"
	"strings"

	"github.com/attrkit/jsonmap/domain"
)

// Engine compiles and evaluates path-query expressions.
type Engine struct{}

// NewEngine returns a new [Engine].
func NewEngine() *Engine {
	return &Engine{}
}

// Compile implements [domain.Compiler].
func (e *Engine) Compile(text string) (domain.Expression, int, error) {
	p := &parser{data: text, n: len(text)}
	expr, err := p.parse()
	if err != nil {
		return nil, p.i, err
	}
	return expr, p.i, nil
}

// Escape prefixes every structural character in s with a backslash so the
// result can be substituted into a name position of an expression without
// changing its shape.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '.', '[', ']', '*', '\\', '$':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

type nodeKind uint8

const (
	nodeChild nodeKind = iota
	nodeWildcard
	nodeIndex
	nodeIndexAll
	nodeDescend
	nodeDescendWild
)

type node struct {
	kind  nodeKind
	name  string
	index int
}

// Expr is a compiled expression. It implements [domain.Expression].
type Expr struct {
	nodes []node
}

// String returns the canonical re-printed form of the expression.
// Recompiling the result yields an equivalent expression.
func (e *Expr) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, n := range e.nodes {
		switch n.kind {
		case nodeChild:
			b.WriteByte('.')
			b.WriteString(Escape(n.name))
		case nodeWildcard:
			b.WriteString(".*")
		case nodeIndex:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(n.index))
			b.WriteByte(']')
		case nodeIndexAll:
			b.WriteString("[*]")
		case nodeDescend:
			b.WriteString("..")
			b.WriteString(Escape(n.name))
		case nodeDescendWild:
			b.WriteString("..*")
		}
	}
	return b.String()
}

package jpath

import (
	"strconv"
	"strings"

	"github.com/attrkit/jsonmap/domain"
)

type parser struct {
	data string
	i    int
	n    int
}

func (p *parser) errorf(msg string) error {
	return domain.ErrSyntax{Expr: p.data, Offset: p.i, Message: msg}
}

func (p *parser) parse() (*Expr, error) {
	if p.n == 0 {
		return nil, p.errorf("empty expression")
	}
	if p.data[0] != '$' {
		return nil, p.errorf("expected '$'")
	}
	p.i++

	var nodes []node
	for p.i < p.n {
		switch p.data[p.i] {
		case '.':
			n, err := p.child()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
		case '[':
			n, err := p.index()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
		default:
			return nil, p.errorf("expected '.' or '['")
		}
	}
	return &Expr{nodes: nodes}, nil
}

func (p *parser) child() (node, error) {
	p.i++ // skip '.'
	descend := false
	if p.i < p.n && p.data[p.i] == '.' {
		descend = true
		p.i++
	}
	if p.i >= p.n {
		return node{}, p.errorf("expected name after '.'")
	}
	if p.data[p.i] == '*' {
		p.i++
		if descend {
			return node{kind: nodeDescendWild}, nil
		}
		return node{kind: nodeWildcard}, nil
	}

	name, err := p.name()
	if err != nil {
		return node{}, err
	}
	if descend {
		return node{kind: nodeDescend, name: name}, nil
	}
	return node{kind: nodeChild, name: name}, nil
}

func (p *parser) name() (string, error) {
	var b strings.Builder
	for p.i < p.n {
		c := p.data[p.i]
		switch c {
		case '.', '[':
			if b.Len() == 0 {
				return "", p.errorf("expected name")
			}
			return b.String(), nil
		case '\\':
			p.i++
			if p.i >= p.n {
				return "", p.errorf("unfinished escape sequence")
			}
			b.WriteByte(p.data[p.i])
			p.i++
		case ']', '*', '$':
			return "", p.errorf("unescaped special char in name")
		default:
			b.WriteByte(c)
			p.i++
		}
	}
	if b.Len() == 0 {
		return "", p.errorf("expected name")
	}
	return b.String(), nil
}

func (p *parser) index() (node, error) {
	p.i++ // skip '['
	if p.i >= p.n {
		return node{}, p.errorf("unterminated index")
	}
	if p.data[p.i] == '*' {
		p.i++
		if p.i >= p.n || p.data[p.i] != ']' {
			return node{}, p.errorf("expected ']'")
		}
		p.i++
		return node{kind: nodeIndexAll}, nil
	}

	start := p.i
	if p.data[p.i] == '-' {
		p.i++
	}
	for p.i < p.n && p.data[p.i] >= '0' && p.data[p.i] <= '9' {
		p.i++
	}
	if p.i == start || (p.i == start+1 && p.data[start] == '-') {
		p.i = start
		return node{}, p.errorf("expected array index")
	}
	if p.i >= p.n || p.data[p.i] != ']' {
		return node{}, p.errorf("expected ']'")
	}
	idx, err := strconv.Atoi(p.data[start:p.i])
	if err != nil {
		p.i = start
		return node{}, p.errorf("invalid array index")
	}
	p.i++ // skip ']'
	return node{kind: nodeIndex, index: idx}, nil
}

// Copyright 2026 The gocypher Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"github.com/cyphergraph/gocypher/ast"
	"github.com/cyphergraph/gocypher/ast/operator"
	"github.com/cyphergraph/gocypher/internal/exprstate"
)

// chainable is the set of operators that can participate in a comparison
// chain: `a < b <= c` becomes one Comparison node.
var chainable = map[*operator.Descriptor]bool{
	operator.Equal: true, operator.NotEqual: true,
	operator.LessThan: true, operator.GreaterThan: true,
	operator.LessThanOrEqual: true, operator.GreaterThanOrEqual: true,
}

// parseExpression implements precedence climbing over ast/operator's
// interned table, using an exprstate.PrecedenceStack to gate recursive
// descent by the ambient minimum precedence.
func (p *parserState) parseExpression(minPrec int) (*ast.Node, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	for {
		start := p.s.mark()
		op, ok := p.matchBinaryOperator(minPrec)
		if !ok {
			p.s.reset(start)
			return left, true
		}
		if chainable[op] {
			if chain, ok := p.continueComparisonChain(left, op); ok {
				left = chain
				continue
			}
			return nil, false
		}
		p.prec.PushForOperator(op)
		right, ok := p.parseExpression(p.prec.Top())
		p.prec.Pop()
		if !ok {
			return nil, false
		}
		n, err := ast.NewBinaryOp(op, left, right, spanOf(left, right))
		if err != nil {
			return nil, false
		}
		left = n
	}
}

// continueComparisonChain accumulates `a OP1 b OP2 c ...` into one
// Comparison node via an exprstate.OperatorStack.
func (p *parserState) continueComparisonChain(first *ast.Node, firstOp *operator.Descriptor) (*ast.Node, bool) {
	var ops exprstate.OperatorStack
	args := []*ast.Node{first}
	ops.Push(firstOp)
	for {
		p.prec.PushForOperator(firstOp)
		rhs, ok := p.parseExpression(p.prec.Top())
		p.prec.Pop()
		if !ok {
			return nil, false
		}
		args = append(args, rhs)
		start := p.s.mark()
		nextOp, ok := p.matchBinaryOperator(firstOp.Precedence)
		if !ok || !chainable[nextOp] {
			p.s.reset(start)
			break
		}
		ops.Push(nextOp)
		firstOp = nextOp
	}
	n, err := ast.NewComparison(ops.Take(), args, spanOf(args[0], args[len(args)-1]))
	if err != nil {
		return nil, false
	}
	return n, true
}

// matchBinaryOperator tries every binary-or-comparison-precedence operator
// descriptor eligible at minPrec, longest-symbol-first so `<=`/`<>` are not
// shadowed by `<`/`=`.
func (p *parserState) matchBinaryOperator(minPrec int) (*operator.Descriptor, bool) {
	s := p.s
	try := func(d *operator.Descriptor, matcher func() bool) (*operator.Descriptor, bool) {
		if d.Precedence < minPrec {
			return nil, false
		}
		m := s.mark()
		if matcher() {
			return d, true
		}
		s.reset(m)
		return nil, false
	}
	candidates := []struct {
		d *operator.Descriptor
		m func() bool
	}{
		{operator.Or, func() bool { return s.matchKeyword("OR") }},
		{operator.Xor, func() bool { return s.matchKeyword("XOR") }},
		{operator.And, func() bool { return s.matchKeyword("AND") }},
		{operator.LessThanOrEqual, func() bool { return matchSymbol(s, "<=") }},
		{operator.GreaterThanOrEqual, func() bool { return matchSymbol(s, ">=") }},
		{operator.NotEqual, func() bool { return matchSymbol(s, "<>") }},
		{operator.Regex, func() bool { return matchSymbol(s, "=~") }},
		{operator.Equal, func() bool { return matchSymbol(s, "=") }},
		{operator.LessThan, func() bool { return matchSymbol(s, "<") }},
		{operator.GreaterThan, func() bool { return matchSymbol(s, ">") }},
		{operator.Pow, func() bool { return matchSymbol(s, "^") }},
		{operator.Mult, func() bool { return matchSymbol(s, "*") }},
		{operator.Div, func() bool { return matchSymbol(s, "/") }},
		{operator.Mod, func() bool { return matchSymbol(s, "%") }},
		{operator.Plus, func() bool { return matchSymbol(s, "+") }},
		{operator.Minus, func() bool { return matchSymbol(s, "-") }},
		{operator.StartsWith, func() bool { return s.matchKeyword("STARTS") && s.matchKeyword("WITH") }},
		{operator.EndsWith, func() bool { return s.matchKeyword("ENDS") && s.matchKeyword("WITH") }},
		{operator.Contains, func() bool { return s.matchKeyword("CONTAINS") }},
		{operator.In, func() bool { return s.matchKeyword("IN") }},
	}
	for _, c := range candidates {
		if d, ok := try(c.d, c.m); ok {
			return d, true
		}
	}
	return nil, false
}

// matchSymbol consumes an exact punctuation symbol (no keyword word
// boundary rule applies).
func matchSymbol(s *state, sym string) bool {
	s.skipWS()
	m := s.mark()
	for i := 0; i < len(sym); i++ {
		b, ok := s.peekAt(i)
		if !ok || b != sym[i] {
			s.reset(m)
			return false
		}
	}
	for i := 0; i < len(sym); i++ {
		s.next()
	}
	return true
}

// parseUnary handles the prefix unary operators (NOT, unary +/-) then
// delegates to parsePostfix for the primary expression and its postfix
// chain.
func (p *parserState) parseUnary() (*ast.Node, bool) {
	start := p.s.c.CurrentPosition()
	if p.s.matchKeyword("NOT") {
		arg, ok := p.parseExpression(operator.Not.Precedence)
		if !ok {
			return nil, false
		}
		n, err := ast.NewUnaryOp(operator.Not, arg, ast.Range{Start: start, End: arg.Range.End})
		if err != nil {
			return nil, false
		}
		return n, true
	}
	if matchSymbol(p.s, "-") {
		arg, ok := p.parseExpression(operator.UnaryMinus.Precedence)
		if !ok {
			return nil, false
		}
		n, err := ast.NewUnaryOp(operator.UnaryMinus, arg, ast.Range{Start: start, End: arg.Range.End})
		if err != nil {
			return nil, false
		}
		return n, true
	}
	if matchSymbol(p.s, "+") {
		arg, ok := p.parseExpression(operator.UnaryPlus.Precedence)
		if !ok {
			return nil, false
		}
		n, err := ast.NewUnaryOp(operator.UnaryPlus, arg, ast.Range{Start: start, End: arg.Range.End})
		if err != nil {
			return nil, false
		}
		return n, true
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression, then a chain of property
// access, subscript/slice, map projection, label test, and IS [NOT] NULL
// postfix operators.
func (p *parserState) parsePostfix() (*ast.Node, bool) {
	expr, ok := p.parseAtom()
	if !ok {
		return nil, false
	}
	for {
		switch {
		case matchSymbol(p.s, "."):
			name, rng, ok := p.s.scanIdentifier()
			if !ok {
				return nil, false
			}
			propName, err := ast.NewPropName(name, rng)
			if err != nil {
				return nil, false
			}
			n, err := ast.NewProperty(expr, propName, ast.Range{Start: expr.Range.Start, End: rng.End})
			if err != nil {
				return nil, false
			}
			expr = n
		case matchSymbol(p.s, "["):
			n, ok := p.parseSubscriptOrSlice(expr)
			if !ok {
				return nil, false
			}
			expr = n
		case matchSymbol(p.s, "{"):
			n, ok := p.parseMapProjectionTail(expr)
			if !ok {
				return nil, false
			}
			expr = n
		case p.s.peekByte(':'):
			labels, ok := p.parseLabelList()
			if !ok {
				return nil, false
			}
			n, err := ast.NewLabels(expr, labels, ast.Range{Start: expr.Range.Start, End: p.s.c.CurrentPosition()})
			if err != nil {
				return nil, false
			}
			expr = n
		case p.s.peekKeyword("IS"):
			n, ok := p.tryParseIsNull(expr)
			if !ok {
				return expr, true
			}
			expr = n
		default:
			return expr, true
		}
	}
}

func (p *parserState) tryParseIsNull(expr *ast.Node) (*ast.Node, bool) {
	m := p.s.mark()
	if !p.s.matchKeyword("IS") {
		return nil, false
	}
	negated := p.s.matchKeyword("NOT")
	if !p.s.matchKeyword("NULL") {
		p.s.reset(m)
		return nil, false
	}
	op := operator.IsNull
	if negated {
		op = operator.IsNotNull
	}
	n, err := ast.NewUnaryOp(op, expr, ast.Range{Start: expr.Range.Start, End: p.s.c.CurrentPosition()})
	if err != nil {
		return nil, false
	}
	return n, true
}

func (p *parserState) parseLabelList() ([]*ast.Node, bool) {
	var labels []*ast.Node
	for p.s.matchByte(':') {
		name, rng, ok := p.s.scanIdentifier()
		if !ok {
			return nil, false
		}
		l, err := ast.NewLabel(name, rng)
		if err != nil {
			return nil, false
		}
		labels = append(labels, l)
	}
	if len(labels) == 0 {
		return nil, false
	}
	return labels, true
}

func (p *parserState) parseSubscriptOrSlice(expr *ast.Node) (*ast.Node, bool) {
	var start *ast.Node
	if !p.s.peekByte(']') && !p.s.peekByte('.') {
		s, ok := p.parseExpression(0)
		if !ok {
			return nil, false
		}
		start = s
	}
	if matchSymbol(p.s, "..") {
		var end *ast.Node
		if !p.s.peekByte(']') {
			e, ok := p.parseExpression(0)
			if !ok {
				return nil, false
			}
			end = e
		}
		if !p.s.matchByte(']') {
			return nil, false
		}
		n, err := ast.NewSlice(expr, start, end, ast.Range{Start: expr.Range.Start, End: p.s.c.CurrentPosition()})
		if err != nil {
			return nil, false
		}
		return n, true
	}
	if start == nil || !p.s.matchByte(']') {
		return nil, false
	}
	n, err := ast.NewSubscript(expr, start, ast.Range{Start: expr.Range.Start, End: p.s.c.CurrentPosition()})
	if err != nil {
		return nil, false
	}
	return n, true
}

func (p *parserState) parseMapProjectionTail(identifier *ast.Node) (*ast.Node, bool) {
	var selectors []*ast.Node
	if !p.s.peekByte('}') {
		for {
			sel, ok := p.parseMapProjectionSelector()
			if !ok {
				return nil, false
			}
			selectors = append(selectors, sel)
			if !p.s.matchByte(',') {
				break
			}
		}
	}
	if !p.s.matchByte('}') {
		return nil, false
	}
	n, err := ast.NewMapProjection(identifier, selectors, ast.Range{Start: identifier.Range.Start, End: p.s.c.CurrentPosition()})
	if err != nil {
		return nil, false
	}
	return n, true
}

func (p *parserState) parseMapProjectionSelector() (*ast.Node, bool) {
	start := p.s.c.CurrentPosition()
	if matchSymbol(p.s, ".*") {
		return ast.NewMapProjectionAllProperties(ast.Range{Start: start, End: p.s.c.CurrentPosition()})
	}
	if matchSymbol(p.s, ".") {
		name, rng, ok := p.s.scanIdentifier()
		if !ok {
			return nil, false
		}
		propName, err := ast.NewPropName(name, rng)
		if err != nil {
			return nil, false
		}
		n, err := ast.NewMapProjectionProperty(propName, ast.Range{Start: start, End: rng.End})
		if err != nil {
			return nil, false
		}
		return n, true
	}
	if p.s.matchByte('$') {
		return nil, false
	}
	name, rng, ok := p.s.scanIdentifier()
	if !ok {
		return nil, false
	}
	if p.s.matchByte(':') {
		expr, ok := p.parseExpression(0)
		if !ok {
			return nil, false
		}
		propName, err := ast.NewPropName(name, rng)
		if err != nil {
			return nil, false
		}
		n, err := ast.NewMapProjectionLiteral(propName, expr, ast.Range{Start: start, End: expr.Range.End})
		if err != nil {
			return nil, false
		}
		return n, true
	}
	id, err := ast.NewIdentifier(name, rng)
	if err != nil {
		return nil, false
	}
	n, err := ast.NewMapProjectionIdentifier(id, ast.Range{Start: start, End: rng.End})
	if err != nil {
		return nil, false
	}
	return n, true
}

func spanOf(a, b *ast.Node) ast.Range {
	return ast.Range{Start: a.Range.Start, End: b.Range.End}
}

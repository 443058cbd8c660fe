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
	"github.com/cyphergraph/gocypher/internal/exprstate"
)

// parserState is the receiver every grammar rule function hangs off: the
// lexical scanner state plus the precedence stack expression rules share.
// Grammar rules build *ast.Node values directly through ordinary Go calls
// and returns; only the segment loop (driver.go) uses internal/block to
// collect top-level roots between segments, so rule bodies below this
// layer never touch a block.Stack.
type parserState struct {
	s    *state
	prec exprstate.PrecedenceStack
}

func newParserState(s *state) *parserState {
	return &parserState{s: s}
}

// parseAtom parses a primary expression: literals, identifiers, parameters,
// parenthesized expressions, list/map literals, CASE, list comprehension
// forms, and function application.
func (p *parserState) parseAtom() (*ast.Node, bool) {
	s := p.s
	start := s.c.CurrentPosition()

	if s.matchKeyword("TRUE") {
		return ast.NewTrue(ast.Range{Start: start, End: s.c.CurrentPosition()})
	}
	if s.matchKeyword("FALSE") {
		return ast.NewFalse(ast.Range{Start: start, End: s.c.CurrentPosition()})
	}
	if s.matchKeyword("NULL") {
		return ast.NewNull(ast.Range{Start: start, End: s.c.CurrentPosition()})
	}
	if n, ok := p.tryParseComprehensionKeyword(); ok {
		return n, true
	}
	if s.matchKeyword("CASE") {
		return p.parseCase(start)
	}
	if matchSymbol(s, "$") {
		return p.parseParameter(start)
	}
	if matchSymbol(s, "(") {
		return p.parseParenOrPattern(start)
	}
	if matchSymbol(s, "[") {
		return p.parseListLiteralOrComprehension(start)
	}
	if s.peekByte('{') {
		s.matchByte('{')
		return p.parseMapLiteral(start)
	}
	if b, ok := s.peek(); ok && (isDigit(b)) {
		return s.scanNumber()
	}
	if b, ok := s.peek(); ok && (b == '\'' || b == '"') {
		return s.scanString()
	}
	return p.parseIdentifierOrApply(start)
}

func (p *parserState) parseParameter(start ast.Position) (*ast.Node, bool) {
	s := p.s
	name, _, ok := s.scanIdentifier()
	if !ok {
		var numText []byte
		for {
			b, ok := s.peek()
			if !ok || !isDigit(b) {
				break
			}
			numText = append(numText, b)
			s.next()
		}
		if len(numText) == 0 {
			return nil, false
		}
		name = string(numText)
	}
	return ast.NewParameter(name, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

func (p *parserState) parseIdentifierOrApply(start ast.Position) (*ast.Node, bool) {
	s := p.s
	name, rng, ok := s.scanIdentifier()
	if !ok {
		return nil, false
	}
	if isReserved(name) {
		s.reset(s.mark())
	}
	if matchSymbol(s, "(") {
		return p.parseApplyTail(name, rng, start)
	}
	return ast.NewIdentifier(name, rng)
}

func (p *parserState) parseApplyTail(name string, nameRng ast.Range, start ast.Position) (*ast.Node, bool) {
	s := p.s
	funcName, err := ast.NewFunctionName(name, nameRng)
	if err != nil {
		return nil, false
	}
	distinct := s.matchKeyword("DISTINCT")
	if matchSymbol(s, "*") {
		if !s.matchByte(')') {
			return nil, false
		}
		n, err := ast.NewApplyAll(funcName, distinct, ast.Range{Start: start, End: s.c.CurrentPosition()})
		if err != nil {
			return nil, false
		}
		return n, true
	}
	var args []*ast.Node
	if !s.peekByte(')') {
		for {
			arg, ok := p.parseExpression(0)
			if !ok {
				return nil, false
			}
			args = append(args, arg)
			if !s.matchByte(',') {
				break
			}
		}
	}
	if !s.matchByte(')') {
		return nil, false
	}
	n, err := ast.NewApply(funcName, distinct, args, ast.Range{Start: start, End: s.c.CurrentPosition()})
	if err != nil {
		return nil, false
	}
	return n, true
}

// parseParenOrPattern parses a parenthesized expression. Node patterns that
// begin with `(` are handled by the pattern grammar before expression
// parsing is attempted at clause level; the ambiguity is resolved by rule
// ordering, not backtracking here.
func (p *parserState) parseParenOrPattern(start ast.Position) (*ast.Node, bool) {
	inner, ok := p.parseExpression(0)
	if !ok {
		return nil, false
	}
	if !p.s.matchByte(')') {
		return nil, false
	}
	inner.Range = ast.Range{Start: start, End: p.s.c.CurrentPosition()}
	return inner, true
}

// comprehensionBuilders maps a leading keyword to the two- or three-arg
// comprehension constructor it introduces.
var comprehensionBuilders = map[string]func(id, expr, pred *ast.Node, rng ast.Range) (*ast.Node, error){
	"ALL":    ast.NewAll,
	"ANY":    ast.NewAny,
	"SINGLE": ast.NewSingle,
	"NONE":   ast.NewNone,
	"FILTER": ast.NewFilter,
}

// tryParseComprehensionKeyword recognizes `all/any/single/none/filter(x IN
// list WHERE pred)`, `extract(x IN list | eval)`, and
// `reduce(acc = init, x IN list | eval)`.
func (p *parserState) tryParseComprehensionKeyword() (*ast.Node, bool) {
	s := p.s
	start := s.c.CurrentPosition()
	for word, build := range comprehensionBuilders {
		m := s.mark()
		if !s.matchKeyword(word) {
			continue
		}
		if !matchSymbol(s, "(") {
			s.reset(m)
			continue
		}
		id, expr, ok := p.parseIdentifierInExpr()
		if !ok {
			return nil, false
		}
		var pred *ast.Node
		if s.matchKeyword("WHERE") {
			pr, ok := p.parseExpression(0)
			if !ok {
				return nil, false
			}
			pred = pr
		}
		if !s.matchByte(')') {
			return nil, false
		}
		n, err := build(id, expr, pred, ast.Range{Start: start, End: s.c.CurrentPosition()})
		if err != nil {
			return nil, false
		}
		return n, true
	}
	m := s.mark()
	if s.matchKeyword("EXTRACT") {
		if !matchSymbol(s, "(") {
			s.reset(m)
			return nil, false
		}
		id, expr, ok := p.parseIdentifierInExpr()
		if !ok {
			return nil, false
		}
		if !matchSymbol(s, "|") {
			return nil, false
		}
		eval, ok := p.parseExpression(0)
		if !ok {
			return nil, false
		}
		if !s.matchByte(')') {
			return nil, false
		}
		n, err := ast.NewExtract(id, expr, eval, ast.Range{Start: start, End: s.c.CurrentPosition()})
		if err != nil {
			return nil, false
		}
		return n, true
	}
	if s.matchKeyword("REDUCE") {
		if !matchSymbol(s, "(") {
			return nil, false
		}
		accName, accRng, ok := s.scanIdentifier()
		if !ok {
			return nil, false
		}
		acc, err := ast.NewIdentifier(accName, accRng)
		if err != nil {
			return nil, false
		}
		if !matchSymbol(s, "=") {
			return nil, false
		}
		init, ok := p.parseExpression(0)
		if !ok {
			return nil, false
		}
		if !s.matchByte(',') {
			return nil, false
		}
		id, expr, ok := p.parseIdentifierInExpr()
		if !ok {
			return nil, false
		}
		if !matchSymbol(s, "|") {
			return nil, false
		}
		eval, ok := p.parseExpression(0)
		if !ok {
			return nil, false
		}
		if !s.matchByte(')') {
			return nil, false
		}
		n, err := ast.NewReduce(acc, init, id, expr, eval, ast.Range{Start: start, End: s.c.CurrentPosition()})
		if err != nil {
			return nil, false
		}
		return n, true
	}
	return nil, false
}

// parseIdentifierInExpr parses the common `x IN listExpr` head shared by
// every comprehension form.
func (p *parserState) parseIdentifierInExpr() (*ast.Node, *ast.Node, bool) {
	s := p.s
	name, rng, ok := s.scanIdentifier()
	if !ok {
		return nil, nil, false
	}
	id, err := ast.NewIdentifier(name, rng)
	if err != nil {
		return nil, nil, false
	}
	if !s.matchKeyword("IN") {
		return nil, nil, false
	}
	expr, ok := p.parseExpression(0)
	if !ok {
		return nil, nil, false
	}
	return id, expr, true
}

// parseCase parses `CASE [test] WHEN w THEN t ... [ELSE d] END`.
func (p *parserState) parseCase(start ast.Position) (*ast.Node, bool) {
	s := p.s
	var testExpr *ast.Node
	if !s.peekKeyword("WHEN") {
		e, ok := p.parseExpression(0)
		if !ok {
			return nil, false
		}
		testExpr = e
	}
	var alts []ast.CaseAlternative
	for s.matchKeyword("WHEN") {
		when, ok := p.parseExpression(0)
		if !ok {
			return nil, false
		}
		if !s.matchKeyword("THEN") {
			return nil, false
		}
		then, ok := p.parseExpression(0)
		if !ok {
			return nil, false
		}
		alts = append(alts, ast.CaseAlternative{When: when, Then: then})
	}
	if len(alts) == 0 {
		return nil, false
	}
	var deflt *ast.Node
	if s.matchKeyword("ELSE") {
		d, ok := p.parseExpression(0)
		if !ok {
			return nil, false
		}
		deflt = d
	}
	if !s.matchKeyword("END") {
		return nil, false
	}
	n, err := ast.NewCase(testExpr, alts, deflt, ast.Range{Start: start, End: s.c.CurrentPosition()})
	if err != nil {
		return nil, false
	}
	return n, true
}

// parseListLiteralOrComprehension parses the content after a consumed `[`:
// a list literal `[e1, e2, ...]` or a list comprehension
// `[x IN list WHERE pred | eval]`.
func (p *parserState) parseListLiteralOrComprehension(start ast.Position) (*ast.Node, bool) {
	s := p.s
	if s.matchByte(']') {
		return ast.NewCollection(nil, ast.Range{Start: start, End: s.c.CurrentPosition()})
	}
	m := s.mark()
	if id, expr, ok := p.parseIdentifierInExpr(); ok {
		var pred, eval *ast.Node
		if s.matchKeyword("WHERE") {
			pr, ok := p.parseExpression(0)
			if !ok {
				return nil, false
			}
			pred = pr
		}
		if matchSymbol(s, "|") {
			ev, ok := p.parseExpression(0)
			if !ok {
				return nil, false
			}
			eval = ev
		}
		if s.matchByte(']') {
			n, err := ast.NewListComprehension(id, expr, pred, eval, ast.Range{Start: start, End: s.c.CurrentPosition()})
			if err != nil {
				return nil, false
			}
			return n, true
		}
	}
	s.reset(m)
	var elements []*ast.Node
	for {
		e, ok := p.parseExpression(0)
		if !ok {
			return nil, false
		}
		elements = append(elements, e)
		if !s.matchByte(',') {
			break
		}
	}
	if !s.matchByte(']') {
		return nil, false
	}
	return ast.NewCollection(elements, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

func (p *parserState) parseMapLiteral(start ast.Position) (*ast.Node, bool) {
	s := p.s
	var keys, values []*ast.Node
	if !s.peekByte('}') {
		for {
			name, rng, ok := s.scanIdentifier()
			if !ok {
				return nil, false
			}
			key, err := ast.NewPropName(name, rng)
			if err != nil {
				return nil, false
			}
			if !s.matchByte(':') {
				return nil, false
			}
			val, ok := p.parseExpression(0)
			if !ok {
				return nil, false
			}
			keys = append(keys, key)
			values = append(values, val)
			if !s.matchByte(',') {
				break
			}
		}
	}
	if !s.matchByte('}') {
		return nil, false
	}
	return ast.NewMap(keys, values, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

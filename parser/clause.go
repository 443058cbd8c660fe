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
	"strings"

	"github.com/cyphergraph/gocypher/ast"
)

// parseStatement parses one full statement: the leading statement options
// (CYPHER/EXPLAIN/PROFILE), then either a schema command or a query body,
// then an optional trailing `;` separator (consumed but not part of the
// node's own range).
func (p *parserState) parseStatement() (*ast.Node, bool) {
	s := p.s
	start := s.c.CurrentPosition()
	opts, ok := p.parseStatementOptions()
	if !ok {
		return nil, false
	}
	body, ok := p.parseStatementBody()
	if !ok {
		return nil, false
	}
	stmt, err := ast.NewStatement(opts, body, ast.Range{Start: start, End: s.c.CurrentPosition()})
	if err != nil {
		return nil, false
	}
	s.matchByte(';')
	return stmt, true
}

// parseStatementBody tries a schema command first, falling back to an
// ordinary query (possibly preceded by USING PERIODIC COMMIT).
func (p *parserState) parseStatementBody() (*ast.Node, bool) {
	if schema, ok := p.parseSchemaCommand(); ok {
		return schema, true
	}
	qopts, ok := p.parseQueryOptions()
	if !ok {
		return nil, false
	}
	return p.parseQuery(qopts)
}

// parseStatementOptions parses the leading `CYPHER ... EXPLAIN|PROFILE`
// option sequence, any or all of which may be absent.
func (p *parserState) parseStatementOptions() ([]*ast.Node, bool) {
	s := p.s
	var opts []*ast.Node
	if c, ok := p.parseCypherOption(); ok {
		opts = append(opts, c)
	}
	start := s.c.CurrentPosition()
	switch {
	case s.matchKeyword("EXPLAIN"):
		o, err := ast.NewExplainOption(ast.Range{Start: start, End: s.c.CurrentPosition()})
		if err != nil {
			return nil, false
		}
		opts = append(opts, o)
	case s.matchKeyword("PROFILE"):
		o, err := ast.NewProfileOption(ast.Range{Start: start, End: s.c.CurrentPosition()})
		if err != nil {
			return nil, false
		}
		opts = append(opts, o)
	}
	return opts, true
}

// parseCypherOption parses a leading `CYPHER [version] [name=value ...]`
// option, returning ok=false (without consuming) if the statement doesn't
// start with CYPHER.
func (p *parserState) parseCypherOption() (*ast.Node, bool) {
	s := p.s
	start := s.c.CurrentPosition()
	if !s.matchKeyword("CYPHER") {
		return nil, false
	}
	var version *ast.Node
	if b, ok := s.peek(); ok && isDigit(b) {
		vstart := s.c.CurrentPosition()
		s.buf.Reset()
		for {
			b, ok := s.peek()
			if !ok || !(isDigit(b) || b == '.') {
				break
			}
			s.buf.AppendByte(b)
			s.next()
		}
		text := s.buf.String()
		vrng := ast.Range{Start: vstart, End: s.c.CurrentPosition()}
		v, err := ast.NewString(text, text, vrng)
		if err != nil {
			return nil, false
		}
		version = v
	}
	var params []*ast.Node
	for {
		m := s.mark()
		name, rng, ok := s.scanIdentifierIfPresent()
		if !ok {
			s.reset(m)
			break
		}
		if !matchSymbol(s, "=") {
			s.reset(m)
			break
		}
		value, ok := p.parseExpression(0)
		if !ok {
			return nil, false
		}
		id, err := ast.NewIdentifier(name, rng)
		if err != nil {
			return nil, false
		}
		param, err := ast.NewCypherOptionParam(id, value, ast.Range{Start: rng.Start, End: value.Range.End})
		if err != nil {
			return nil, false
		}
		params = append(params, param)
	}
	return ast.NewCypherOption(version, params, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

// parseQueryOptions parses the `USING PERIODIC COMMIT [limit]` option that
// precedes a LOAD CSV-driven query; absence is success with a nil slice.
func (p *parserState) parseQueryOptions() ([]*ast.Node, bool) {
	s := p.s
	start := s.c.CurrentPosition()
	m := s.mark()
	if !s.matchKeyword("USING") {
		return nil, true
	}
	if !s.matchKeyword("PERIODIC") {
		s.reset(m)
		return nil, true
	}
	if !s.matchKeyword("COMMIT") {
		return nil, false
	}
	var limit *ast.Node
	if n, ok := s.scanNumber(); ok {
		limit = n
	}
	opt, err := ast.NewUsingPeriodicCommit(limit, ast.Range{Start: start, End: s.c.CurrentPosition()})
	if err != nil {
		return nil, false
	}
	return []*ast.Node{opt}, true
}

// parseQuery parses a clause sequence, splicing in Union markers whenever
// `UNION [ALL]` introduces another query body.
func (p *parserState) parseQuery(options []*ast.Node) (*ast.Node, bool) {
	s := p.s
	start := s.c.CurrentPosition()
	var clauses []*ast.Node
	for {
		c, ok := p.parseQueryClause()
		if !ok {
			break
		}
		clauses = append(clauses, c)
	}
	if len(clauses) == 0 {
		return nil, false
	}
	for {
		unionStart := s.c.CurrentPosition()
		if !s.matchKeyword("UNION") {
			break
		}
		all := s.matchKeyword("ALL")
		u, err := ast.NewUnion(all, ast.Range{Start: unionStart, End: s.c.CurrentPosition()})
		if err != nil {
			return nil, false
		}
		clauses = append(clauses, u)
		for {
			c, ok := p.parseQueryClause()
			if !ok {
				break
			}
			clauses = append(clauses, c)
		}
	}
	return ast.NewQuery(options, clauses, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

// parseQueryClause dispatches to the individual query-clause rule by leading
// keyword; returns ok=false without consuming if nothing recognized starts
// here, which is how parseQuery detects the end of a clause run.
func (p *parserState) parseQueryClause() (*ast.Node, bool) {
	s := p.s
	start := s.c.CurrentPosition()
	m := s.mark()
	optional := s.matchKeyword("OPTIONAL")
	if s.peekKeyword("MATCH") {
		return p.parseMatch(start, optional)
	}
	if optional {
		s.reset(m)
		return nil, false
	}
	switch {
	case s.peekKeyword("MERGE"):
		return p.parseMerge(start)
	case s.peekKeyword("CREATE"):
		return p.parseCreate(start)
	case s.peekKeyword("DETACH"):
		s.matchKeyword("DETACH")
		return p.parseDelete(start, true)
	case s.peekKeyword("DELETE"):
		return p.parseDelete(start, false)
	case s.peekKeyword("REMOVE"):
		return p.parseRemove(start)
	case s.peekKeyword("SET"):
		return p.parseSet(start)
	case s.peekKeyword("RETURN"):
		return p.parseReturn(start)
	case s.peekKeyword("WITH"):
		return p.parseWith(start)
	case s.peekKeyword("UNWIND"):
		return p.parseUnwind(start)
	case s.peekKeyword("CALL"):
		return p.parseCall(start)
	case s.peekKeyword("FOREACH"):
		return p.parseForeach(start)
	case s.peekKeyword("LOAD"):
		return p.parseLoadCSV(start)
	case s.peekKeyword("START"):
		return p.parseStart(start)
	default:
		return nil, false
	}
}

func (p *parserState) parseMatch(start ast.Position, optional bool) (*ast.Node, bool) {
	s := p.s
	if !s.matchKeyword("MATCH") {
		return nil, false
	}
	pattern, ok := p.parsePattern()
	if !ok {
		return nil, false
	}
	var hints []*ast.Node
	for {
		h, ok := p.tryParseMatchHint()
		if !ok {
			break
		}
		hints = append(hints, h)
	}
	var predicate *ast.Node
	if s.matchKeyword("WHERE") {
		pr, ok := p.parseExpression(0)
		if !ok {
			return nil, false
		}
		predicate = pr
	}
	return ast.NewMatch(optional, pattern, hints, predicate, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

// tryParseMatchHint parses one `USING INDEX|JOIN|SCAN` hint following a
// MATCH clause's pattern; returns ok=false without consuming if no hint
// starts here.
func (p *parserState) tryParseMatchHint() (*ast.Node, bool) {
	s := p.s
	start := s.c.CurrentPosition()
	m := s.mark()
	if !s.matchKeyword("USING") {
		return nil, false
	}
	switch {
	case s.matchKeyword("INDEX"):
		name, rng, ok := s.scanIdentifier()
		if !ok {
			return nil, false
		}
		id, err := ast.NewIdentifier(name, rng)
		if err != nil {
			return nil, false
		}
		if !s.matchByte(':') {
			return nil, false
		}
		lname, lrng, ok := s.scanIdentifier()
		if !ok {
			return nil, false
		}
		label, err := ast.NewLabel(lname, lrng)
		if err != nil {
			return nil, false
		}
		if !matchSymbol(s, "(") {
			return nil, false
		}
		pname, prng, ok := s.scanIdentifier()
		if !ok {
			return nil, false
		}
		propName, err := ast.NewPropName(pname, prng)
		if err != nil {
			return nil, false
		}
		if !s.matchByte(')') {
			return nil, false
		}
		return ast.NewUsingIndex(id, label, propName, ast.Range{Start: start, End: s.c.CurrentPosition()})
	case s.matchKeyword("JOIN"):
		if !s.matchKeyword("ON") {
			return nil, false
		}
		var ids []*ast.Node
		for {
			name, rng, ok := s.scanIdentifier()
			if !ok {
				return nil, false
			}
			id, err := ast.NewIdentifier(name, rng)
			if err != nil {
				return nil, false
			}
			ids = append(ids, id)
			if !s.matchByte(',') {
				break
			}
		}
		return ast.NewUsingJoin(ids, ast.Range{Start: start, End: s.c.CurrentPosition()})
	case s.matchKeyword("SCAN"):
		name, rng, ok := s.scanIdentifier()
		if !ok {
			return nil, false
		}
		id, err := ast.NewIdentifier(name, rng)
		if err != nil {
			return nil, false
		}
		if !s.matchByte(':') {
			return nil, false
		}
		lname, lrng, ok := s.scanIdentifier()
		if !ok {
			return nil, false
		}
		label, err := ast.NewLabel(lname, lrng)
		if err != nil {
			return nil, false
		}
		return ast.NewUsingScan(id, label, ast.Range{Start: start, End: s.c.CurrentPosition()})
	default:
		s.reset(m)
		return nil, false
	}
}

func (p *parserState) parseMerge(start ast.Position) (*ast.Node, bool) {
	s := p.s
	if !s.matchKeyword("MERGE") {
		return nil, false
	}
	path, ok := p.parsePatternPath()
	if !ok {
		return nil, false
	}
	var actions []*ast.Node
	for {
		m := s.mark()
		if !s.matchKeyword("ON") {
			break
		}
		switch {
		case s.matchKeyword("MATCH"):
			if !s.matchKeyword("SET") {
				return nil, false
			}
			items, ok := p.parseSetItemList()
			if !ok {
				return nil, false
			}
			act, err := ast.NewOnMatch(items, ast.Range{Start: start, End: s.c.CurrentPosition()})
			if err != nil {
				return nil, false
			}
			actions = append(actions, act)
		case s.matchKeyword("CREATE"):
			if !s.matchKeyword("SET") {
				return nil, false
			}
			items, ok := p.parseSetItemList()
			if !ok {
				return nil, false
			}
			act, err := ast.NewOnCreate(items, ast.Range{Start: start, End: s.c.CurrentPosition()})
			if err != nil {
				return nil, false
			}
			actions = append(actions, act)
		default:
			s.reset(m)
			return ast.NewMerge(path, actions, ast.Range{Start: start, End: s.c.CurrentPosition()})
		}
	}
	return ast.NewMerge(path, actions, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

func (p *parserState) parseCreate(start ast.Position) (*ast.Node, bool) {
	s := p.s
	if !s.matchKeyword("CREATE") {
		return nil, false
	}
	pattern, ok := p.parsePattern()
	if !ok {
		return nil, false
	}
	return ast.NewCreate(pattern, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

func (p *parserState) parseDelete(start ast.Position, detach bool) (*ast.Node, bool) {
	s := p.s
	if !s.matchKeyword("DELETE") {
		return nil, false
	}
	var exprs []*ast.Node
	for {
		e, ok := p.parseExpression(0)
		if !ok {
			return nil, false
		}
		exprs = append(exprs, e)
		if !s.matchByte(',') {
			break
		}
	}
	return ast.NewDelete(detach, exprs, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

func (p *parserState) parseRemove(start ast.Position) (*ast.Node, bool) {
	s := p.s
	if !s.matchKeyword("REMOVE") {
		return nil, false
	}
	var items []*ast.Node
	for {
		item, ok := p.parseRemoveItem()
		if !ok {
			return nil, false
		}
		items = append(items, item)
		if !s.matchByte(',') {
			break
		}
	}
	return ast.NewRemove(items, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

// parseRemoveItem parses `identifier:Label1:Label2` or `expr.propName`.
func (p *parserState) parseRemoveItem() (*ast.Node, bool) {
	s := p.s
	start := s.c.CurrentPosition()
	m := s.mark()
	if name, rng, ok := s.scanIdentifierIfPresent(); ok && s.peekByte(':') {
		id, err := ast.NewIdentifier(name, rng)
		if err != nil {
			return nil, false
		}
		labels, ok := p.parseLabelList()
		if !ok {
			return nil, false
		}
		return ast.NewRemoveLabels(id, labels, ast.Range{Start: start, End: s.c.CurrentPosition()})
	}
	s.reset(m)
	expr, ok := p.parseExpression(0)
	if !ok {
		return nil, false
	}
	if expr.Kind != ast.KindProperty {
		return nil, false
	}
	return ast.NewRemoveProperty(expr, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

func (p *parserState) parseSet(start ast.Position) (*ast.Node, bool) {
	s := p.s
	if !s.matchKeyword("SET") {
		return nil, false
	}
	items, ok := p.parseSetItemList()
	if !ok {
		return nil, false
	}
	return ast.NewSet(items, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

func (p *parserState) parseSetItemList() ([]*ast.Node, bool) {
	var items []*ast.Node
	for {
		item, ok := p.parseSetItem()
		if !ok {
			return nil, false
		}
		items = append(items, item)
		if !p.s.matchByte(',') {
			break
		}
	}
	return items, true
}

// parseSetItem parses one of `identifier:Label...`, `identifier += expr`,
// `identifier = expr`, or `expr.propName = expr`.
func (p *parserState) parseSetItem() (*ast.Node, bool) {
	s := p.s
	start := s.c.CurrentPosition()
	m := s.mark()
	if name, rng, ok := s.scanIdentifierIfPresent(); ok {
		id, err := ast.NewIdentifier(name, rng)
		if err != nil {
			return nil, false
		}
		switch {
		case s.peekByte(':'):
			labels, ok := p.parseLabelList()
			if !ok {
				return nil, false
			}
			return ast.NewSetLabels(id, labels, ast.Range{Start: start, End: s.c.CurrentPosition()})
		case matchSymbol(s, "+="):
			expr, ok := p.parseExpression(0)
			if !ok {
				return nil, false
			}
			return ast.NewMergeProperties(id, expr, ast.Range{Start: start, End: s.c.CurrentPosition()})
		case matchSymbol(s, "="):
			expr, ok := p.parseExpression(0)
			if !ok {
				return nil, false
			}
			return ast.NewSetAllProperties(id, expr, ast.Range{Start: start, End: s.c.CurrentPosition()})
		}
		s.reset(m)
	}
	expr, ok := p.parseExpression(0)
	if !ok {
		return nil, false
	}
	if expr.Kind != ast.KindProperty {
		return nil, false
	}
	if !matchSymbol(s, "=") {
		return nil, false
	}
	value, ok := p.parseExpression(0)
	if !ok {
		return nil, false
	}
	return ast.NewSetProperty(expr, value, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

func (p *parserState) parseProjectionClause() (ast.ProjectionClause, bool) {
	s := p.s
	var pc ast.ProjectionClause
	pc.Distinct = s.matchKeyword("DISTINCT")
	if matchSymbol(s, "*") {
		pc.IncludeExisting = true
		if s.matchByte(',') {
			projs, ok := p.parseProjectionList()
			if !ok {
				return pc, false
			}
			pc.Projections = projs
		}
	} else {
		projs, ok := p.parseProjectionList()
		if !ok {
			return pc, false
		}
		pc.Projections = projs
	}
	if s.matchKeyword("ORDER") {
		if !s.matchKeyword("BY") {
			return pc, false
		}
		ob, ok := p.parseOrderBy()
		if !ok {
			return pc, false
		}
		pc.OrderBy = ob
	}
	if s.matchKeyword("SKIP") {
		n, ok := s.scanNumber()
		if !ok {
			return pc, false
		}
		pc.Skip = n
	}
	if s.matchKeyword("LIMIT") {
		n, ok := s.scanNumber()
		if !ok {
			return pc, false
		}
		pc.Limit = n
	}
	return pc, true
}

func (p *parserState) parseProjectionList() ([]*ast.Node, bool) {
	var projs []*ast.Node
	for {
		proj, ok := p.parseProjection()
		if !ok {
			return nil, false
		}
		projs = append(projs, proj)
		if !p.s.matchByte(',') {
			break
		}
	}
	return projs, true
}

func (p *parserState) parseProjection() (*ast.Node, bool) {
	s := p.s
	start := s.c.CurrentPosition()
	expr, ok := p.parseExpression(0)
	if !ok {
		return nil, false
	}
	var alias *ast.Node
	if s.matchKeyword("AS") {
		name, rng, ok := s.scanIdentifier()
		if !ok {
			return nil, false
		}
		a, err := ast.NewIdentifier(name, rng)
		if err != nil {
			return nil, false
		}
		alias = a
	}
	return ast.NewProjection(expr, alias, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

func (p *parserState) parseOrderBy() (*ast.Node, bool) {
	s := p.s
	start := s.c.CurrentPosition()
	var items []*ast.Node
	for {
		itemStart := s.c.CurrentPosition()
		expr, ok := p.parseExpression(0)
		if !ok {
			return nil, false
		}
		ascending := true
		switch {
		case s.matchKeyword("DESC"), s.matchKeyword("DESCENDING"):
			ascending = false
		default:
			s.matchKeyword("ASC")
			s.matchKeyword("ASCENDING")
		}
		item, err := ast.NewSortItem(expr, ascending, ast.Range{Start: itemStart, End: s.c.CurrentPosition()})
		if err != nil {
			return nil, false
		}
		items = append(items, item)
		if !s.matchByte(',') {
			break
		}
	}
	return ast.NewOrderBy(items, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

func (p *parserState) parseReturn(start ast.Position) (*ast.Node, bool) {
	s := p.s
	if !s.matchKeyword("RETURN") {
		return nil, false
	}
	pc, ok := p.parseProjectionClause()
	if !ok {
		return nil, false
	}
	return ast.NewReturn(pc, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

func (p *parserState) parseWith(start ast.Position) (*ast.Node, bool) {
	s := p.s
	if !s.matchKeyword("WITH") {
		return nil, false
	}
	pc, ok := p.parseProjectionClause()
	if !ok {
		return nil, false
	}
	var predicate *ast.Node
	if s.matchKeyword("WHERE") {
		pr, ok := p.parseExpression(0)
		if !ok {
			return nil, false
		}
		predicate = pr
	}
	return ast.NewWith(pc, predicate, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

func (p *parserState) parseUnwind(start ast.Position) (*ast.Node, bool) {
	s := p.s
	if !s.matchKeyword("UNWIND") {
		return nil, false
	}
	expr, ok := p.parseExpression(0)
	if !ok {
		return nil, false
	}
	if !s.matchKeyword("AS") {
		return nil, false
	}
	name, rng, ok := s.scanIdentifier()
	if !ok {
		return nil, false
	}
	alias, err := ast.NewIdentifier(name, rng)
	if err != nil {
		return nil, false
	}
	return ast.NewUnwind(expr, alias, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

func (p *parserState) parseCall(start ast.Position) (*ast.Node, bool) {
	s := p.s
	if !s.matchKeyword("CALL") {
		return nil, false
	}
	name, rng, ok := s.scanIdentifier()
	if !ok {
		return nil, false
	}
	parts := []string{name}
	fullRng := rng
	for matchSymbol(s, ".") {
		n2, r2, ok := s.scanIdentifier()
		if !ok {
			return nil, false
		}
		parts = append(parts, n2)
		fullRng.End = r2.End
	}
	procName, err := ast.NewFunctionName(strings.Join(parts, "."), fullRng)
	if err != nil {
		return nil, false
	}
	var args []*ast.Node
	if matchSymbol(s, "(") {
		if !s.peekByte(')') {
			for {
				a, ok := p.parseExpression(0)
				if !ok {
					return nil, false
				}
				args = append(args, a)
				if !s.matchByte(',') {
					break
				}
			}
		}
		if !s.matchByte(')') {
			return nil, false
		}
	}
	var yield []*ast.Node
	if s.matchKeyword("YIELD") {
		projs, ok := p.parseProjectionList()
		if !ok {
			return nil, false
		}
		yield = projs
	}
	return ast.NewCall(procName, args, yield, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

func (p *parserState) parseForeach(start ast.Position) (*ast.Node, bool) {
	s := p.s
	if !s.matchKeyword("FOREACH") {
		return nil, false
	}
	if !matchSymbol(s, "(") {
		return nil, false
	}
	name, rng, ok := s.scanIdentifier()
	if !ok {
		return nil, false
	}
	id, err := ast.NewIdentifier(name, rng)
	if err != nil {
		return nil, false
	}
	if !s.matchKeyword("IN") {
		return nil, false
	}
	expr, ok := p.parseExpression(0)
	if !ok {
		return nil, false
	}
	if !matchSymbol(s, "|") {
		return nil, false
	}
	var clauses []*ast.Node
	for {
		c, ok := p.parseQueryClause()
		if !ok {
			break
		}
		clauses = append(clauses, c)
	}
	if !s.matchByte(')') {
		return nil, false
	}
	return ast.NewForeach(id, expr, clauses, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

func (p *parserState) parseLoadCSV(start ast.Position) (*ast.Node, bool) {
	s := p.s
	if !s.matchKeyword("LOAD") {
		return nil, false
	}
	if !s.matchKeyword("CSV") {
		return nil, false
	}
	withHeaders := false
	if s.matchKeyword("WITH") {
		if !s.matchKeyword("HEADERS") {
			return nil, false
		}
		withHeaders = true
	}
	if !s.matchKeyword("FROM") {
		return nil, false
	}
	url, ok := p.parseExpression(0)
	if !ok {
		return nil, false
	}
	if !s.matchKeyword("AS") {
		return nil, false
	}
	name, rng, ok := s.scanIdentifier()
	if !ok {
		return nil, false
	}
	id, err := ast.NewIdentifier(name, rng)
	if err != nil {
		return nil, false
	}
	var term *ast.Node
	if s.matchKeyword("FIELDTERMINATOR") {
		t, ok := s.scanString()
		if !ok {
			return nil, false
		}
		term = t
	}
	return ast.NewLoadCSV(withHeaders, url, id, term, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

// parseStart parses the legacy `START point1, point2 [WHERE predicate]`
// clause, superseded in modern Cypher by MATCH but still a QueryClause kind
// the grammar recognizes.
func (p *parserState) parseStart(start ast.Position) (*ast.Node, bool) {
	s := p.s
	if !s.matchKeyword("START") {
		return nil, false
	}
	var points []*ast.Node
	for {
		pt, ok := p.parseStartPoint()
		if !ok {
			return nil, false
		}
		points = append(points, pt)
		if !s.matchByte(',') {
			break
		}
	}
	var predicate *ast.Node
	if s.matchKeyword("WHERE") {
		pred, ok := p.parseExpression(0)
		if !ok {
			return nil, false
		}
		predicate = pred
	}
	return ast.NewStart(points, predicate, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

// parseStartPoint parses one `identifier = node|relationship( ... )` binding,
// in its three shapes: an id lookup (`node(1, 2)`), an index key lookup
// (`node:idx(key = value)`), or a raw index query (`node:idx(query)`).
func (p *parserState) parseStartPoint() (*ast.Node, bool) {
	s := p.s
	start := s.c.CurrentPosition()
	name, rng, ok := s.scanIdentifier()
	if !ok {
		return nil, false
	}
	identifier, err := ast.NewIdentifier(name, rng)
	if err != nil {
		return nil, false
	}
	if !s.matchByte('=') {
		return nil, false
	}
	var isRel bool
	switch {
	case s.matchKeyword("NODE"):
		isRel = false
	case s.matchKeyword("RELATIONSHIP"):
		isRel = true
	default:
		return nil, false
	}
	if s.matchByte(':') {
		return p.parseStartIndexPoint(identifier, isRel, start)
	}
	if !matchSymbol(s, "(") {
		return nil, false
	}
	var ids []*ast.Node
	for {
		id, ok := s.scanNumber()
		if !ok {
			return nil, false
		}
		ids = append(ids, id)
		if !s.matchByte(',') {
			break
		}
	}
	if !s.matchByte(')') {
		return nil, false
	}
	rng = ast.Range{Start: start, End: s.c.CurrentPosition()}
	if isRel {
		return ast.NewRelIdLookup(identifier, ids, rng)
	}
	return ast.NewNodeIdLookup(identifier, ids, rng)
}

// parseStartIndexPoint parses the `:indexName( ... )` tail of a start point,
// disambiguating a `key = value` lookup from a raw index query by
// speculatively trying the key form first.
func (p *parserState) parseStartIndexPoint(identifier *ast.Node, isRel bool, start ast.Position) (*ast.Node, bool) {
	s := p.s
	iname, irng, ok := s.scanIdentifier()
	if !ok {
		return nil, false
	}
	indexName, err := ast.NewString(iname, iname, irng)
	if err != nil {
		return nil, false
	}
	if !matchSymbol(s, "(") {
		return nil, false
	}
	m := s.mark()
	if pname, prng, pok := s.scanIdentifier(); pok && s.matchByte('=') {
		propName, err := ast.NewPropName(pname, prng)
		if err != nil {
			return nil, false
		}
		value, ok := p.parseExpression(0)
		if !ok {
			return nil, false
		}
		if !s.matchByte(')') {
			return nil, false
		}
		rng := ast.Range{Start: start, End: s.c.CurrentPosition()}
		if isRel {
			return ast.NewRelIndexLookup(identifier, indexName, propName, value, rng)
		}
		return ast.NewNodeIndexLookup(identifier, indexName, propName, value, rng)
	}
	s.reset(m)
	query, ok := p.parseExpression(0)
	if !ok {
		return nil, false
	}
	if !s.matchByte(')') {
		return nil, false
	}
	rng := ast.Range{Start: start, End: s.c.CurrentPosition()}
	if isRel {
		return ast.NewRelIndexQuery(identifier, indexName, query, rng)
	}
	return ast.NewNodeIndexQuery(identifier, indexName, query, rng)
}

// parseSchemaCommand parses `CREATE|DROP INDEX ON :Label(prop)` and
// `CREATE|DROP CONSTRAINT ON (id:Label)|()-[id:Type]-() ASSERT ...`; returns
// ok=false (without consuming) when neither form starts here, letting the
// caller fall back to an ordinary query.
func (p *parserState) parseSchemaCommand() (*ast.Node, bool) {
	s := p.s
	start := s.c.CurrentPosition()
	m := s.mark()
	var create bool
	switch {
	case s.matchKeyword("CREATE"):
		create = true
	case s.matchKeyword("DROP"):
		create = false
	default:
		return nil, false
	}

	if s.matchKeyword("INDEX") {
		if !s.matchKeyword("ON") {
			return nil, false
		}
		if !s.matchByte(':') {
			return nil, false
		}
		lname, lrng, ok := s.scanIdentifier()
		if !ok {
			return nil, false
		}
		label, err := ast.NewLabel(lname, lrng)
		if err != nil {
			return nil, false
		}
		if !matchSymbol(s, "(") {
			return nil, false
		}
		pname, prng, ok := s.scanIdentifier()
		if !ok {
			return nil, false
		}
		propName, err := ast.NewPropName(pname, prng)
		if err != nil {
			return nil, false
		}
		if !s.matchByte(')') {
			return nil, false
		}
		rng := ast.Range{Start: start, End: s.c.CurrentPosition()}
		if create {
			return ast.NewCreateNodePropIndex(label, propName, rng)
		}
		return ast.NewDropNodePropIndex(label, propName, rng)
	}

	if s.matchKeyword("CONSTRAINT") {
		if !s.matchKeyword("ON") {
			return nil, false
		}
		switch {
		case matchSymbol(s, "("):
			name, rng, ok := s.scanIdentifier()
			if !ok {
				return nil, false
			}
			id, err := ast.NewIdentifier(name, rng)
			if err != nil {
				return nil, false
			}
			if !s.matchByte(':') {
				return nil, false
			}
			lname, lrng, ok := s.scanIdentifier()
			if !ok {
				return nil, false
			}
			label, err := ast.NewLabel(lname, lrng)
			if err != nil {
				return nil, false
			}
			if !s.matchByte(')') {
				return nil, false
			}
			if !s.matchKeyword("ASSERT") {
				return nil, false
			}
			propName, unique, ok := p.parseUniqueAssertion()
			if !ok {
				return nil, false
			}
			rng := ast.Range{Start: start, End: s.c.CurrentPosition()}
			if create {
				return ast.NewCreateNodePropConstraint(id, label, propName, unique, rng)
			}
			return ast.NewDropNodePropConstraint(id, label, propName, unique, rng)
		case matchSymbol(s, "()-["):
			name, rng, ok := s.scanIdentifier()
			if !ok {
				return nil, false
			}
			id, err := ast.NewIdentifier(name, rng)
			if err != nil {
				return nil, false
			}
			if !s.matchByte(':') {
				return nil, false
			}
			tname, trng, ok := s.scanIdentifier()
			if !ok {
				return nil, false
			}
			relType, err := ast.NewRelType(tname, trng)
			if err != nil {
				return nil, false
			}
			if !matchSymbol(s, "]-()") {
				return nil, false
			}
			if !s.matchKeyword("ASSERT") {
				return nil, false
			}
			propName, unique, ok := p.parseUniqueAssertion()
			if !ok {
				return nil, false
			}
			rng := ast.Range{Start: start, End: s.c.CurrentPosition()}
			if create {
				return ast.NewCreateRelPropConstraint(id, relType, propName, unique, rng)
			}
			return ast.NewDropRelPropConstraint(id, relType, propName, unique, rng)
		default:
			return nil, false
		}
	}

	s.reset(m)
	return nil, false
}

// parseUniqueAssertion parses the `identifier.propName IS UNIQUE` tail of a
// CONSTRAINT's ASSERT clause.
func (p *parserState) parseUniqueAssertion() (*ast.Node, bool, bool) {
	s := p.s
	if _, _, ok := s.scanIdentifier(); !ok {
		return nil, false, false
	}
	if !matchSymbol(s, ".") {
		return nil, false, false
	}
	pname, prng, ok := s.scanIdentifier()
	if !ok {
		return nil, false, false
	}
	propName, err := ast.NewPropName(pname, prng)
	if err != nil {
		return nil, false, false
	}
	if !s.matchKeyword("IS") {
		return nil, false, false
	}
	if !s.matchKeyword("UNIQUE") {
		return nil, false, false
	}
	return propName, true, true
}

// parseCommand parses the client-command form: a leading `:` sigil, a
// whitespace-delimited name, and zero or more whitespace-delimited raw
// argument tokens running to end of line or `;`.
func (p *parserState) parseCommand() (*ast.Node, bool) {
	s := p.s
	start := s.c.CurrentPosition()
	if !s.matchByte(':') {
		return nil, false
	}
	nstart := s.c.CurrentPosition()
	s.buf.Reset()
	for {
		b, ok := s.peek()
		if !ok || isSpace(b) {
			break
		}
		s.buf.AppendByte(b)
		s.next()
	}
	nameText := s.buf.String()
	if nameText == "" {
		return nil, false
	}
	nrng := ast.Range{Start: nstart, End: s.c.CurrentPosition()}
	name, err := ast.NewString(nameText, nameText, nrng)
	if err != nil {
		return nil, false
	}
	var args []*ast.Node
	for {
		s.skipInlineSpace()
		b, ok := s.peek()
		if !ok || b == '\n' || b == ';' {
			break
		}
		astart := s.c.CurrentPosition()
		s.buf.Reset()
		for {
			b, ok := s.peek()
			if !ok || isSpace(b) || b == ';' {
				break
			}
			s.buf.AppendByte(b)
			s.next()
		}
		text := s.buf.String()
		if text == "" {
			break
		}
		arng := ast.Range{Start: astart, End: s.c.CurrentPosition()}
		arg, err := ast.NewString(text, text, arng)
		if err != nil {
			return nil, false
		}
		args = append(args, arg)
	}
	return ast.NewCommand(name, args, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

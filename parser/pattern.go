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

import "github.com/cyphergraph/gocypher/ast"

// parsePattern parses the comma-separated path list of a MATCH/CREATE/MERGE
// clause.
func (p *parserState) parsePattern() (*ast.Node, bool) {
	start := p.s.c.CurrentPosition()
	var paths []*ast.Node
	for {
		path, ok := p.parsePatternPath()
		if !ok {
			return nil, false
		}
		paths = append(paths, path)
		if !p.s.matchByte(',') {
			break
		}
	}
	return ast.NewPattern(paths, ast.Range{Start: start, End: p.s.c.CurrentPosition()})
}

// parsePatternPath parses one path: an optional `identifier =` binding,
// then either `shortestPath(...)`/`allShortestPaths(...)` or a plain
// alternating node/relationship chain.
func (p *parserState) parsePatternPath() (*ast.Node, bool) {
	s := p.s
	start := s.c.CurrentPosition()
	var ident *ast.Node
	m := s.mark()
	if name, rng, ok := s.scanIdentifier(); ok && !isReserved(name) {
		if matchSymbol(s, "=") {
			id, err := ast.NewIdentifier(name, rng)
			if err != nil {
				return nil, false
			}
			ident = id
		} else {
			s.reset(m)
		}
	} else {
		s.reset(m)
	}

	if sp, ok := p.tryParseShortestPath(); ok {
		if ident != nil {
			return ast.NewNamedPath(ident, []*ast.Node{sp}, ast.Range{Start: start, End: s.c.CurrentPosition()})
		}
		return sp, true
	}

	elements, ok := p.parsePathElements()
	if !ok {
		return nil, false
	}
	if ident != nil {
		return ast.NewNamedPath(ident, elements, ast.Range{Start: start, End: s.c.CurrentPosition()})
	}
	return ast.NewAnonPatternPath(elements, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

func (p *parserState) tryParseShortestPath() (*ast.Node, bool) {
	s := p.s
	start := s.c.CurrentPosition()
	m := s.mark()
	var single bool
	switch {
	case s.matchKeyword("SHORTESTPATH"):
		single = true
	case s.matchKeyword("ALLSHORTESTPATHS"):
		single = false
	default:
		return nil, false
	}
	if !matchSymbol(s, "(") {
		s.reset(m)
		return nil, false
	}
	elements, ok := p.parsePathElements()
	if !ok {
		return nil, false
	}
	if !s.matchByte(')') {
		return nil, false
	}
	n, err := ast.NewShortestPath(single, elements, ast.Range{Start: start, End: s.c.CurrentPosition()})
	if err != nil {
		return nil, false
	}
	return n, true
}

// parsePathElements parses an alternating NodePattern/RelPattern chain,
// `(a)-[r]->(b)-[:T]-(c)`.
func (p *parserState) parsePathElements() ([]*ast.Node, bool) {
	first, ok := p.parseNodePattern()
	if !ok {
		return nil, false
	}
	elements := []*ast.Node{first}
	for {
		rel, ok := p.tryParseRelPattern()
		if !ok {
			break
		}
		node, ok := p.parseNodePattern()
		if !ok {
			return nil, false
		}
		elements = append(elements, rel, node)
	}
	return elements, true
}

func (p *parserState) parseNodePattern() (*ast.Node, bool) {
	s := p.s
	start := s.c.CurrentPosition()
	if !s.matchByte('(') {
		return nil, false
	}
	var identifier *ast.Node
	if name, rng, ok := s.scanIdentifierIfPresent(); ok {
		id, err := ast.NewIdentifier(name, rng)
		if err != nil {
			return nil, false
		}
		identifier = id
	}
	labels, ok := p.parseOptionalLabelList()
	if !ok {
		return nil, false
	}
	var properties *ast.Node
	if s.peekByte('{') {
		s.matchByte('{')
		props, ok := p.parseMapLiteral(s.c.CurrentPosition())
		if !ok {
			return nil, false
		}
		properties = props
	} else if matchSymbol(s, "$") {
		name, rng, ok := s.scanIdentifier()
		if !ok {
			return nil, false
		}
		param, err := ast.NewParameter(name, rng)
		if err != nil {
			return nil, false
		}
		properties = param
	}
	if !s.matchByte(')') {
		return nil, false
	}
	return ast.NewNodePattern(identifier, labels, properties, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

// parseOptionalLabelList parses zero or more `:Label` markers, distinct
// from parseLabelList (expr.go) in that zero matches is success here.
func (p *parserState) parseOptionalLabelList() ([]*ast.Node, bool) {
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
	return labels, true
}

// tryParseRelPattern parses `-[...]-`, `-[...]->`, or `<-[...]-`; returns
// ok=false (without consuming) if no relationship pattern starts here.
func (p *parserState) tryParseRelPattern() (*ast.Node, bool) {
	s := p.s
	start := s.c.CurrentPosition()
	m := s.mark()
	inward := matchSymbol(s, "<-")
	if !inward && !matchSymbol(s, "-") {
		return nil, false
	}
	var identifier *ast.Node
	var relTypes []*ast.Node
	var properties *ast.Node
	var varLength *ast.Node
	if s.matchByte('[') {
		if name, rng, ok := s.scanIdentifierIfPresent(); ok {
			id, err := ast.NewIdentifier(name, rng)
			if err != nil {
				s.reset(m)
				return nil, false
			}
			identifier = id
		}
		if s.matchByte(':') {
			for {
				name, rng, ok := s.scanIdentifier()
				if !ok {
					s.reset(m)
					return nil, false
				}
				rt, err := ast.NewRelType(name, rng)
				if err != nil {
					s.reset(m)
					return nil, false
				}
				relTypes = append(relTypes, rt)
				if !matchSymbol(s, "|") {
					break
				}
			}
		}
		if matchSymbol(s, "*") {
			vl, ok := p.parseRangeBound()
			if !ok {
				s.reset(m)
				return nil, false
			}
			varLength = vl
		}
		if s.peekByte('{') {
			s.matchByte('{')
			props, ok := p.parseMapLiteral(s.c.CurrentPosition())
			if !ok {
				s.reset(m)
				return nil, false
			}
			properties = props
		}
		if !s.matchByte(']') {
			s.reset(m)
			return nil, false
		}
	}
	outward := matchSymbol(s, "->")
	if !outward && !matchSymbol(s, "-") {
		s.reset(m)
		return nil, false
	}
	direction := ast.RelEither
	switch {
	case inward:
		direction = ast.RelInward
	case outward:
		direction = ast.RelOutward
	}
	return ast.NewRelPattern(direction, identifier, relTypes, properties, varLength, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

// parseRangeBound parses the `min..max`/`min..`/`..max`/`` tail following a
// consumed `*` variable-length marker.
func (p *parserState) parseRangeBound() (*ast.Node, bool) {
	s := p.s
	start := s.c.CurrentPosition()
	var min, max *ast.Node
	if n, ok := s.scanNumber(); ok {
		min = n
	}
	if matchSymbol(s, "..") {
		if n, ok := s.scanNumber(); ok {
			max = n
		}
	} else {
		max = min
	}
	return ast.NewRangeBound(min, max, ast.Range{Start: start, End: s.c.CurrentPosition()})
}

// scanIdentifierIfPresent scans an identifier if one is present without
// failing (recording a note) when it is not — used where an identifier is
// genuinely optional, unlike scanIdentifier's required-match contract.
func (s *state) scanIdentifierIfPresent() (string, ast.Range, bool) {
	m := s.mark()
	s.skipWS()
	b, ok := s.peek()
	if !ok || !isAlpha(b) {
		s.reset(m)
		return "", ast.Range{}, false
	}
	name, rng, ok := s.scanIdentifier()
	if !ok || isReserved(name) {
		s.reset(m)
		return "", ast.Range{}, false
	}
	return name, rng, true
}

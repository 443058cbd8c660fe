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

// Package parser implements the streaming PEG driver over the grammar rule
// functions in the rest of the package: the segment loop that repeatedly
// parses one statement or client command, recovers from a failed attempt by
// advancing a single byte, and hands the caller one Segment at a time.
package parser

import (
	"io"

	"github.com/cyphergraph/gocypher/ast"
	"github.com/cyphergraph/gocypher/cperr"
	"github.com/cyphergraph/gocypher/internal/block"
	"github.com/cyphergraph/gocypher/internal/cursor"
)

// Parser drives a single input stream to completion (or to WithSingle's
// first segment). It is not safe for concurrent use; each goroutine parsing
// a distinct stream needs its own Parser.
type Parser struct {
	s           *state
	ps          *parserState
	blocks      *block.Stack
	cfg         Config
	nextOrdinal int
}

// SegmentFunc is invoked once per segment the driver produces. Returning a
// non-nil error stops the segment loop early and that error propagates out
// of Segments/ParseSegments/ParseSegmentsReader.
type SegmentFunc func(seg *Segment) error

func newParser(c *cursor.Cursor, cfg Config) *Parser {
	tracker := cperr.NewTracker()
	tracker.ContextWindow = func(pos ast.Position) (string, int) {
		return contextLine(c, pos)
	}
	s := &state{c: c, tracker: tracker}
	return &Parser{s: s, ps: newParserState(s), blocks: block.NewStack(), cfg: cfg, nextOrdinal: cfg.InitialOrdinal}
}

// New builds a Parser reading from r, applying the given options over
// NewConfig's defaults.
func New(r io.Reader, opts ...Option) *Parser {
	cfg := NewConfig(opts...)
	c := cursor.New(r).WithInitialPosition(cfg.InitialPosition)
	return newParser(c, cfg)
}

// FromBytes builds a Parser over a fixed in-memory span.
func FromBytes(src []byte, opts ...Option) *Parser {
	cfg := NewConfig(opts...)
	c := cursor.FromBytes(src).WithInitialPosition(cfg.InitialPosition)
	return newParser(c, cfg)
}

// contextLine finds the source line containing pos within c's currently
// buffered window and the caret offset into that line, the shape
// cperr.Tracker.ContextWindow needs to render a diagnostic's context slice.
func contextLine(c *cursor.Cursor, pos ast.Position) (string, int) {
	rel := pos.Offset - c.OriginOffset()
	if rel < 0 {
		rel = 0
	}
	full := c.Window(0, 1<<30)
	if rel > len(full) {
		rel = len(full)
	}
	lineStart := rel
	for lineStart > 0 && full[lineStart-1] != '\n' {
		lineStart--
	}
	lineEnd := rel
	for lineEnd < len(full) && full[lineEnd] != '\n' {
		lineEnd++
	}
	return string(full[lineStart:lineEnd]), rel - lineStart
}

// Segments drives the segment loop: skip leading trivia, try a client
// command (unless WithOnlyStatements) or a statement, recover from a failed
// attempt by reifying whatever the tracker has and consuming one byte so
// the loop always makes forward progress, and invoke fn once per produced
// segment. Stops at end of input, after the first segment if WithSingle was
// given, or as soon as fn returns a non-nil error.
func (p *Parser) Segments(fn SegmentFunc) error {
	emittedAny := false
	for {
		beforePos := p.s.c.CurrentPosition()
		p.s.skipWS()

		if p.s.atEnd() {
			if !emittedAny {
				seg := newSegment(ast.Range{Start: beforePos, End: p.s.c.CurrentPosition()}, nil, nil, nil, true)
				emittedAny = true
				p.logSegment(seg)
				if err := fn(seg); err != nil {
					return err
				}
			}
			if ioErr := p.s.c.ReadErr(); ioErr != nil {
				return cperr.ErrInput.New(ioErr)
			}
			return nil
		}

		var directive *ast.Node
		var roots []*ast.Node
		var ok bool
		if !p.cfg.onlyStatements && p.s.peekByte(':') {
			node, cok := p.ps.parseCommand()
			ok = cok
			if cok {
				directive = node
				p.blocks.Install(node)
				roots = p.blocks.RootChildren()
			}
		} else {
			node, sok := p.ps.parseStatement()
			ok = sok
			if sok {
				directive = node
				p.blocks.Install(node)
				roots = p.blocks.RootChildren()
			}
		}

		if !ok {
			b, peeked := p.s.peek()
			atEOF := !peeked
			p.s.tracker.Reify(b, atEOF)
			diags := p.s.tracker.TakeDiagnostics()
			p.blocks.ResetRoot()
			p.blocks.AssertClean()
			end := p.s.c.CurrentPosition()
			seg := newSegment(ast.Range{Start: beforePos, End: end}, nil, nil, diags, atEOF)
			consumed := p.s.c.Mark()
			p.s.c.AdvanceOrigin(consumed)
			emittedAny = true
			p.logSegment(seg)
			if err := fn(seg); err != nil {
				return err
			}
			if atEOF {
				if ioErr := p.s.c.ReadErr(); ioErr != nil {
					return cperr.ErrInput.New(ioErr)
				}
				return nil
			}
			if p.cfg.single {
				return nil
			}
			p.s.next()
			continue
		}

		p.s.tracker.ClearPotentials()
		diags := p.s.tracker.TakeDiagnostics()
		p.blocks.ResetRoot()
		p.blocks.AssertClean()
		p.nextOrdinal = ast.AssignOrdinals(roots, p.nextOrdinal)
		eof := p.s.atEnd()
		end := p.s.c.CurrentPosition()
		seg := newSegment(ast.Range{Start: beforePos, End: end}, roots, directive, diags, eof)
		consumed := p.s.c.Mark()
		p.s.c.AdvanceOrigin(consumed)
		emittedAny = true
		p.logSegment(seg)
		if err := fn(seg); err != nil {
			return err
		}
		if p.cfg.single {
			return nil
		}
		if eof {
			if ioErr := p.s.c.ReadErr(); ioErr != nil {
				return cperr.ErrInput.New(ioErr)
			}
			return nil
		}
	}
}

func (p *Parser) logSegment(seg *Segment) {
	p.cfg.Logger.WithFields(map[string]interface{}{
		"roots":  len(seg.Roots),
		"errors": len(seg.Errors),
		"eof":    seg.EOF,
	}).Debug("parsed segment")
}

// Parse parses src in full, coalescing every segment into one Result.
func Parse(src []byte, opts ...Option) (*Result, error) {
	var res Result
	err := ParseSegments(src, func(seg *Segment) error {
		res.Merge(seg)
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ParseReader parses everything r produces, coalescing every segment into
// one Result.
func ParseReader(r io.Reader, opts ...Option) (*Result, error) {
	var res Result
	err := ParseSegmentsReader(r, func(seg *Segment) error {
		res.Merge(seg)
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ParseSegments drives a streaming parse of src, invoking fn once per
// segment without ever materializing a whole-input Result.
func ParseSegments(src []byte, fn SegmentFunc, opts ...Option) error {
	return FromBytes(src, opts...).Segments(fn)
}

// ParseSegmentsReader drives a streaming parse of r, invoking fn once per
// segment as soon as it is available.
func ParseSegmentsReader(r io.Reader, fn SegmentFunc, opts ...Option) error {
	return New(r, opts...).Segments(fn)
}

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
	"io"

	"github.com/cyphergraph/gocypher/ast"
	"github.com/cyphergraph/gocypher/cperr"
	"github.com/cyphergraph/gocypher/internal/cursor"
)

// QuickSegment is one boundary QuickParse finds: the raw text of a statement
// up to and including its terminating `;` (or of an entire command line),
// with no AST built for it.
type QuickSegment struct {
	IsStatement  bool
	Text         string
	Range        ast.Range
	EOF          bool
	NextPosition ast.Position
}

// QuickParseFunc receives each boundary QuickParse finds; returning false
// stops the scan early.
type QuickParseFunc func(QuickSegment) bool

// QuickParse scans r for statement (`;`-terminated) and client-command
// (`:`-sigil, newline-terminated) boundaries without running the grammar at
// all — string and quoted-identifier literals are tracked just enough that
// a `;` inside one doesn't end the statement early. Useful for a caller that
// only needs to split input into segments cheaply, e.g. a REPL's line
// editor deciding whether to keep reading continuation lines.
func QuickParse(r io.Reader, cfg Config, fn QuickParseFunc) error {
	c := cursor.New(r).WithInitialPosition(cfg.InitialPosition)
	s := &state{c: c, tracker: cperr.NewTracker()}

	for {
		beforePos := s.c.CurrentPosition()
		s.skipWS()

		if s.atEnd() {
			seg := QuickSegment{
				Range:        ast.Range{Start: beforePos, End: s.c.CurrentPosition()},
				EOF:          true,
				NextPosition: s.c.CurrentPosition(),
			}
			fn(seg)
			if ioErr := s.c.ReadErr(); ioErr != nil {
				return cperr.ErrInput.New(ioErr)
			}
			return nil
		}

		contentMark := s.c.Mark()
		isCommand := false
		if b, ok := s.peek(); ok && b == ':' {
			isCommand = true
			scanToLineEnd(s)
		} else {
			scanToStatementEnd(s)
		}
		contentEnd := s.c.Mark()
		text := string(s.c.Window(contentMark, contentEnd))
		eof := s.atEnd()
		next := s.c.CurrentPosition()

		seg := QuickSegment{
			IsStatement:  !isCommand,
			Text:         text,
			Range:        ast.Range{Start: beforePos, End: next},
			EOF:          eof,
			NextPosition: next,
		}
		consumed := s.c.Mark()
		s.c.AdvanceOrigin(consumed)

		if !fn(seg) {
			return nil
		}
		if cfg.single {
			return nil
		}
		if eof {
			if ioErr := s.c.ReadErr(); ioErr != nil {
				return cperr.ErrInput.New(ioErr)
			}
			return nil
		}
	}
}

// scanToLineEnd consumes through the next newline (or EOF), the boundary
// rule for a client command.
func scanToLineEnd(s *state) {
	for {
		b, ok := s.peek()
		if !ok || b == '\n' {
			return
		}
		s.next()
	}
}

// scanToStatementEnd consumes through the next top-level `;` (or EOF),
// skipping over quoted string contents so a `;` inside a literal doesn't
// end the statement early.
func scanToStatementEnd(s *state) {
	for {
		b, ok := s.peek()
		if !ok {
			return
		}
		if b == '\'' || b == '"' || b == '`' {
			s.next()
			skipQuoted(s, b)
			continue
		}
		s.next()
		if b == ';' {
			return
		}
	}
}

func skipQuoted(s *state, quote byte) {
	for {
		b, ok := s.peek()
		if !ok {
			return
		}
		if b == '\\' {
			s.next()
			if _, ok := s.peek(); ok {
				s.next()
			}
			continue
		}
		s.next()
		if b == quote {
			return
		}
	}
}

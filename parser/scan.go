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
	"strconv"
	"strings"

	"github.com/cyphergraph/gocypher/ast"
	"github.com/cyphergraph/gocypher/cperr"
	"github.com/cyphergraph/gocypher/internal/cursor"
	"github.com/cyphergraph/gocypher/internal/strbuf"
)

// state is the mutable parse state threaded through every grammar rule
// function: the buffered cursor, the error tracker, and a scratch string
// buffer reused across string/identifier scans.
type state struct {
	c       *cursor.Cursor
	tracker *cperr.Tracker
	buf     strbuf.Buffer
}

// note records a potential error at the cursor's current position.
func (s *state) note(label string) {
	s.tracker.Note(s.c.CurrentPosition(), label)
}

func (s *state) mark() int { return s.c.Mark() }

func (s *state) reset(m int) { s.c.Reset(m) }

func (s *state) peek() (byte, bool) {
	b, ok, _ := s.c.Peek(0)
	return b, ok
}

func (s *state) peekAt(n int) (byte, bool) {
	b, ok, _ := s.c.Peek(n)
	return b, ok
}

func (s *state) next() (byte, bool) {
	b, ok, _ := s.c.Next()
	return b, ok
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAlnum(b byte) bool { return isAlpha(b) || isDigit(b) }

// skipSpace consumes whitespace, `//` line comments, and `/* ... */` block
// comments, accumulating them into the given comment slice.
func (s *state) skipSpace(comments *[]*ast.Node) {
	for {
		b, ok := s.peek()
		if !ok {
			return
		}
		switch {
		case isSpace(b):
			s.next()
		case b == '/' && peekEquals(s, 1, '/'):
			start := s.c.CurrentPosition()
			s.next()
			s.next()
			s.buf.Reset()
			for {
				b, ok := s.peek()
				if !ok || b == '\n' {
					break
				}
				s.buf.AppendByte(b)
				s.next()
			}
			if comments != nil {
				if n, err := ast.NewLineComment(s.buf.String(), ast.Range{Start: start, End: s.c.CurrentPosition()}); err == nil {
					*comments = append(*comments, n)
				}
			}
		case b == '/' && peekEquals(s, 1, '*'):
			start := s.c.CurrentPosition()
			s.next()
			s.next()
			s.buf.Reset()
			for {
				b, ok := s.peek()
				if !ok {
					break
				}
				if b == '*' && peekEquals(s, 1, '/') {
					s.next()
					s.next()
					break
				}
				s.buf.AppendByte(b)
				s.next()
			}
			if comments != nil {
				if n, err := ast.NewBlockComment(s.buf.String(), ast.Range{Start: start, End: s.c.CurrentPosition()}); err == nil {
					*comments = append(*comments, n)
				}
			}
		default:
			return
		}
	}
}

func peekEquals(s *state, n int, want byte) bool {
	b, ok := s.peekAt(n)
	return ok && b == want
}

// skipWS is skipSpace without comment collection, for call sites that don't
// need trivia.
func (s *state) skipWS() { s.skipSpace(nil) }

// skipInlineSpace consumes spaces and tabs only, leaving a line-terminating
// newline in place; used by the client-command grammar where a bare `\n`
// ends the command instead of being ordinary whitespace.
func (s *state) skipInlineSpace() {
	for {
		b, ok := s.peek()
		if !ok || (b != ' ' && b != '\t') {
			return
		}
		s.next()
	}
}

// matchKeyword consumes word (case-insensitively) if it appears at the
// current position followed by a non-identifier byte, after skipping
// leading whitespace. Reports whether it matched; on failure the cursor is
// left at the pre-whitespace-skip position is NOT guaranteed — callers that
// need strict backtracking wrap the call in mark/reset themselves.
func (s *state) matchKeyword(word string) bool {
	s.skipWS()
	m := s.mark()
	for i := 0; i < len(word); i++ {
		b, ok := s.peekAt(i)
		if !ok || lower(b) != lower(word[i]) {
			s.reset(m)
			s.note(word)
			return false
		}
	}
	if b, ok := s.peekAt(len(word)); ok && isAlnum(b) {
		s.reset(m)
		s.note(word)
		return false
	}
	for i := 0; i < len(word); i++ {
		s.next()
	}
	return true
}

// peekKeyword reports whether word matches at the current position without
// consuming it.
func (s *state) peekKeyword(word string) bool {
	m := s.mark()
	ok := s.matchKeyword(word)
	s.reset(m)
	return ok
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// matchByte consumes b if it is next (after skipping whitespace).
func (s *state) matchByte(b byte) bool {
	s.skipWS()
	m := s.mark()
	got, ok := s.peek()
	if !ok || got != b {
		s.reset(m)
		s.note(string(b))
		return false
	}
	s.next()
	return true
}

func (s *state) peekByte(b byte) bool {
	m := s.mark()
	ok := s.matchByte(b)
	s.reset(m)
	return ok
}

// scanIdentifier scans a Cypher identifier (letter/underscore start,
// alnum/underscore continuation) after skipping whitespace. Returns ok=
// false (with a note recorded) if no identifier starts here.
func (s *state) scanIdentifier() (string, ast.Range, bool) {
	s.skipWS()
	start := s.c.CurrentPosition()
	b, ok := s.peek()
	if !ok || !isAlpha(b) {
		s.note("identifier")
		return "", ast.Range{}, false
	}
	s.buf.Reset()
	for {
		b, ok := s.peek()
		if !ok || !isAlnum(b) {
			break
		}
		s.buf.AppendByte(b)
		s.next()
	}
	return s.buf.String(), ast.Range{Start: start, End: s.c.CurrentPosition()}, true
}

// scanNumber scans an integer or float literal.
func (s *state) scanNumber() (*ast.Node, bool) {
	s.skipWS()
	start := s.c.CurrentPosition()
	m := s.mark()
	b, ok := s.peek()
	if !ok || !isDigit(b) {
		s.note("number")
		return nil, false
	}
	s.buf.Reset()
	for {
		b, ok := s.peek()
		if !ok || !isDigit(b) {
			break
		}
		s.buf.AppendByte(b)
		s.next()
	}
	isFloat := false
	if b, ok := s.peek(); ok && b == '.' {
		if nb, nok := s.peekAt(1); nok && isDigit(nb) {
			isFloat = true
			s.buf.AppendByte('.')
			s.next()
			for {
				b, ok := s.peek()
				if !ok || !isDigit(b) {
					break
				}
				s.buf.AppendByte(b)
				s.next()
			}
		}
	}
	if b, ok := s.peek(); ok && (b == 'e' || b == 'E') {
		isFloat = true
		s.buf.AppendByte(b)
		s.next()
		if b, ok := s.peek(); ok && (b == '+' || b == '-') {
			s.buf.AppendByte(b)
			s.next()
		}
		for {
			b, ok := s.peek()
			if !ok || !isDigit(b) {
				break
			}
			s.buf.AppendByte(b)
			s.next()
		}
	}
	text := s.buf.String()
	rng := ast.Range{Start: start, End: s.c.CurrentPosition()}
	if isFloat {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			s.reset(m)
			return nil, false
		}
		n, err := ast.NewFloat(text, v, rng)
		if err != nil {
			return nil, false
		}
		return n, true
	}
	v, err := strconv.ParseInt(text, 10, 64)
	n, nerr := ast.NewInteger(text, v, err == nil, rng)
	if nerr != nil {
		return nil, false
	}
	return n, true
}

// scanString scans a single- or double-quoted string literal with a small
// set of backslash escapes.
func (s *state) scanString() (*ast.Node, bool) {
	s.skipWS()
	start := s.c.CurrentPosition()
	quote, ok := s.peek()
	if !ok || (quote != '\'' && quote != '"') {
		s.note("string")
		return nil, false
	}
	rawStart := s.mark()
	s.next()
	s.buf.Reset()
	for {
		b, ok := s.peek()
		if !ok {
			s.note("closing quote")
			return nil, false
		}
		if b == quote {
			s.next()
			break
		}
		if b == '\\' {
			s.next()
			eb, eok := s.peek()
			if !eok {
				s.note("escape sequence")
				return nil, false
			}
			s.buf.AppendByte(unescape(eb))
			s.next()
			continue
		}
		s.buf.AppendByte(b)
		s.next()
	}
	rawEnd := s.mark()
	raw := string(s.c.Window(rawStart, rawEnd))
	rng := ast.Range{Start: start, End: s.c.CurrentPosition()}
	n, err := ast.NewString(s.buf.String(), raw, rng)
	if err != nil {
		return nil, false
	}
	return n, true
}

func unescape(b byte) byte {
	switch b {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return b
	}
}

// atEnd reports whether only whitespace/comments/EOF remain.
func (s *state) atEnd() bool {
	m := s.mark()
	s.skipWS()
	eof := s.c.AtEOF()
	s.reset(m)
	return eof
}

var reservedWords = map[string]bool{}

func init() {
	for _, w := range strings.Fields(`MATCH OPTIONAL WHERE WITH RETURN CREATE MERGE DELETE DETACH
		REMOVE SET UNWIND FOREACH CALL YIELD UNION ALL DISTINCT ORDER BY ASC DESC SKIP LIMIT
		AS ON START LOAD CSV HEADERS FROM FIELDTERMINATOR CASE WHEN THEN ELSE END AND OR XOR NOT
		IN IS NULL TRUE FALSE STARTS ENDS CONTAINS CYPHER EXPLAIN PROFILE USING INDEX JOIN SCAN
		PERIODIC COMMIT CONSTRAINT ASSERT UNIQUE DROP`) {
		reservedWords[strings.ToLower(w)] = true
	}
}

func isReserved(name string) bool { return reservedWords[strings.ToLower(name)] }

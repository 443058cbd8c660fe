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

// Package cperr is the two-phase error tracker the PEG driver uses to turn
// failed expectations into a single diagnostic per offending offset, plus
// the sentinel error kinds for the three non-syntax error categories.
package cperr

import (
	"fmt"
	"strings"

	"gopkg.in/src-d/go-errors.v1"

	"github.com/cyphergraph/gocypher/ast"
)

// Sentinel error kinds for the non-syntax error categories. Syntax errors
// never surface as one of these; they accumulate as Error values on a
// segment instead.
var (
	// ErrOOM marks an allocation failure. Practically unreachable under the
	// Go runtime's own allocator, kept for interface completeness and so a
	// fault-injecting allocator can be tested against it.
	ErrOOM = errors.NewKind("out of memory")
	// ErrInput marks a failure reading from the underlying io.Reader, other
	// than a clean io.EOF.
	ErrInput = errors.NewKind("input error: %s")
	// ErrProgramming marks a caller-constructed AST node whose payload child
	// violates the kind lattice. Nothing in this module returns it: the ast
	// constructors report such violations with ast.ErrInvalidChildKind.
	ErrProgramming = errors.NewKind("programming error: %s")
)

// Error is a single syntax diagnostic.
type Error struct {
	Position      ast.Position
	Message       string
	Context       string
	ContextOffset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

// Format renders e the way a command-line caller prints a diagnostic:
// "<file>:<line>:<col>: <message>", followed by the context line and a
// caret line padded out to ContextOffset, when a context was captured.
func (e *Error) Format(file string) string {
	head := fmt.Sprintf("%s:%d:%d: %s", file, e.Position.Line, e.Position.Column, e.Message)
	if e.Context == "" {
		return head
	}
	return head + "\n" + e.Context + "\n" + strings.Repeat(" ", e.ContextOffset) + "^"
}

// note is one still-live expected-construct label at the farthest position
// reached so far.
type note struct {
	label string
}

// Tracker implements a two-phase design: Note records potential errors at
// the farthest position reached, discarding anything behind it; Reify mints
// at most one diagnostic per offset from whatever labels survived.
type Tracker struct {
	farthest ast.Position
	farSet   bool
	labels   []string
	seen     map[string]bool

	lastReifiedOffset int
	reifiedAny        bool
	diagnostics       []*Error

	// ContextWindow, when set, supplies the input bytes used to render a
	// diagnostic's context slice; callers set it from the cursor's buffered
	// window before calling Reify.
	ContextWindow func(pos ast.Position) (line string, caretOffset int)
}

// NewTracker returns a ready-to-use Tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[string]bool), lastReifiedOffset: -1}
}

// Note records a potential error: an expectation of label failed at pos. Notes behind the farthest position reached so far are discarded;
// a strictly farther position resets the label set.
func (t *Tracker) Note(pos ast.Position, label string) {
	switch {
	case !t.farSet || pos.Offset > t.farthest.Offset:
		t.farthest = pos
		t.farSet = true
		t.labels = t.labels[:0]
		t.seen = make(map[string]bool)
		t.addLabel(label)
	case pos.Offset == t.farthest.Offset:
		t.addLabel(label)
	default:
		// Behind the farthest position reached; discarded.
	}
}

func (t *Tracker) addLabel(label string) {
	if t.seen[label] {
		return
	}
	t.seen[label] = true
	t.labels = append(t.labels, label)
}

// ClearPotentials discards all recorded notes without reifying them, used
// when an alternation backtracks past the point where the notes could still
// matter (e.g. a higher-level choice that ultimately succeeds elsewhere).
func (t *Tracker) ClearPotentials() {
	t.farSet = false
	t.labels = nil
	t.seen = make(map[string]bool)
}

// offendingChar renders the character found at pos (or "at end of input")
// per the chardesc table in original_source's errors.c: common escapes
// first, then a quoted literal, with NUL/EOF as a special case.
func offendingChar(c byte, atEOF bool) string {
	if atEOF {
		return "at end of input"
	}
	switch c {
	case '\a':
		return "'\\a'"
	case '\b':
		return "'\\b'"
	case '\f':
		return "'\\f'"
	case '\n':
		return "'\\n'"
	case '\r':
		return "'\\r'"
	case '\t':
		return "'\\t'"
	case '\v':
		return "'\\v'"
	case '\'':
		return "'\\''"
	case 0:
		return "at end of input"
	default:
		return fmt.Sprintf("'%c'", c)
	}
}

// Reify mints a diagnostic from the currently recorded labels, if any, at
// the tracker's farthest-reached position. atEOF and offendingByte describe
// the character that failed to match there. A subsequent Reify at the same
// offset as the last-reified diagnostic is a no-op, enforcing at most one
// diagnostic per input offset. Reports whether a new diagnostic was minted.
func (t *Tracker) Reify(offendingByte byte, atEOF bool) bool {
	if !t.farSet || len(t.labels) == 0 {
		return false
	}
	if t.reifiedAny && t.farthest.Offset == t.lastReifiedOffset {
		return false
	}
	msg := formatExpected(offendingChar(offendingByte, atEOF), t.labels)
	e := &Error{Position: t.farthest, Message: msg}
	if t.ContextWindow != nil {
		line, caret := t.ContextWindow(t.farthest)
		e.Context, e.ContextOffset = truncateContext(line, caret)
	}
	t.diagnostics = append(t.diagnostics, e)
	t.lastReifiedOffset = t.farthest.Offset
	t.reifiedAny = true
	return true
}

func formatExpected(offending string, labels []string) string {
	switch len(labels) {
	case 0:
		return fmt.Sprintf("Invalid input %s", offending)
	case 1:
		return fmt.Sprintf("Invalid input %s: expected %s", offending, labels[0])
	case 2:
		return fmt.Sprintf("Invalid input %s: expected %s or %s", offending, labels[0], labels[1])
	default:
		head := strings.Join(labels[:len(labels)-1], ", ")
		return fmt.Sprintf("Invalid input %s: expected %s, or %s", offending, head, labels[len(labels)-1])
	}
}

// contextWidth and minDetail implement §3.7's 80-char cap and 7-char
// minimum detail width around the caret.
const (
	contextWidth = 80
	minDetail    = 7
)

func truncateContext(line string, caret int) (string, int) {
	if len(line) <= contextWidth {
		return line, caret
	}
	start := caret - contextWidth/2
	if start < 0 {
		start = 0
	}
	end := start + contextWidth
	if end > len(line) {
		end = len(line)
		start = end - contextWidth
		if start < 0 {
			start = 0
		}
	}
	prefix, suffix := "", ""
	if start > 0 {
		prefix = "…"
		start += len(prefix)
		if start > caret-minDetail {
			start = caret - minDetail
			if start < 0 {
				start = 0
			}
		}
	}
	if end < len(line) {
		suffix = "…"
	}
	slice := line[start:end]
	newCaret := caret - start + len(prefix)
	return prefix + slice + suffix, newCaret
}

// Diagnostics returns all diagnostics reified so far.
func (t *Tracker) Diagnostics() []*Error { return t.diagnostics }

// TakeDiagnostics returns every diagnostic reified so far and clears the
// tracker's list, used by the segment loop to hand one segment its own
// errors without re-delivering them to the next.
func (t *Tracker) TakeDiagnostics() []*Error {
	d := t.diagnostics
	t.diagnostics = nil
	return d
}

// HasDiagnostics reports whether any diagnostic has been reified.
func (t *Tracker) HasDiagnostics() bool { return len(t.diagnostics) > 0 }

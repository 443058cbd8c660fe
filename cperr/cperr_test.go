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

package cperr

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/cyphergraph/gocypher/ast"
)

func at(offset int) ast.Position { return ast.Position{Line: 1, Column: offset + 1, Offset: offset} }

func TestNoteDiscardsLabelsBehindFarthest(t *testing.T) {
	tr := NewTracker()
	tr.Note(at(5), "MATCH")
	tr.Note(at(2), "RETURN") // behind the farthest position; discarded
	require.True(t, tr.Reify('x', false))
	require.Len(t, tr.Diagnostics(), 1)
	require.Contains(t, tr.Diagnostics()[0].Message, "MATCH")
	require.NotContains(t, tr.Diagnostics()[0].Message, "RETURN")
}

func TestNoteResetsLabelsOnStrictlyFartherPosition(t *testing.T) {
	tr := NewTracker()
	tr.Note(at(2), "RETURN")
	tr.Note(at(5), "MATCH")
	tr.Reify('x', false)
	msg := tr.Diagnostics()[0].Message
	require.Contains(t, msg, "MATCH")
	require.NotContains(t, msg, "RETURN")
}

func TestNoteDeduplicatesSameLabelAtSamePosition(t *testing.T) {
	tr := NewTracker()
	tr.Note(at(5), "MATCH")
	tr.Note(at(5), "MATCH")
	tr.Note(at(5), "RETURN")
	tr.Reify('x', false)
	require.Equal(t, "Invalid input 'x': expected MATCH or RETURN", tr.Diagnostics()[0].Message)
}

func TestReifyWithNoLabelsProducesNothing(t *testing.T) {
	tr := NewTracker()
	require.False(t, tr.Reify('x', false))
	require.Empty(t, tr.Diagnostics())
}

func TestReifyAtMostOncePerOffset(t *testing.T) {
	tr := NewTracker()
	tr.Note(at(5), "MATCH")
	require.True(t, tr.Reify('x', false))
	// A second Reify at the same farthest offset (nothing new noted) is a
	// no-op.
	require.False(t, tr.Reify('x', false))
	require.Len(t, tr.Diagnostics(), 1)
}

// TestDiagnosticOffsetsStrictlyIncreasing checks that the set of emitted
// diagnostics has strictly increasing offsets.
func TestDiagnosticOffsetsStrictlyIncreasing(t *testing.T) {
	tr := NewTracker()
	tr.Note(at(5), "A")
	tr.Reify('x', false)
	tr.Note(at(9), "B")
	tr.Reify('y', false)
	diags := tr.Diagnostics()
	require.Len(t, diags, 2)
	require.Less(t, diags[0].Position.Offset, diags[1].Position.Offset)
}

func TestClearPotentialsDiscardsNotesWithoutReifying(t *testing.T) {
	tr := NewTracker()
	tr.Note(at(5), "MATCH")
	tr.ClearPotentials()
	require.False(t, tr.Reify('x', false))
}

func TestFormatExpectedMessageShapes(t *testing.T) {
	require.Equal(t, "Invalid input 'x'", formatExpected("'x'", nil))
	require.Equal(t, "Invalid input 'x': expected A", formatExpected("'x'", []string{"A"}))
	require.Equal(t, "Invalid input 'x': expected A or B", formatExpected("'x'", []string{"A", "B"}))
	require.Equal(t, "Invalid input 'x': expected A, B, or C", formatExpected("'x'", []string{"A", "B", "C"}))
}

func TestOffendingCharRendersControlCharsAndEOF(t *testing.T) {
	require.Equal(t, "'\\n'", offendingChar('\n', false))
	require.Equal(t, "'\\t'", offendingChar('\t', false))
	require.Equal(t, "at end of input", offendingChar(0, true))
	require.Equal(t, "'a'", offendingChar('a', false))
}

func TestTakeDiagnosticsClearsTracker(t *testing.T) {
	tr := NewTracker()
	tr.Note(at(5), "MATCH")
	tr.Reify('x', false)
	require.True(t, tr.HasDiagnostics())
	got := tr.TakeDiagnostics()
	require.Len(t, got, 1)
	require.False(t, tr.HasDiagnostics())
	require.Empty(t, tr.TakeDiagnostics())
}

func TestTruncateContextShortLinePassesThrough(t *testing.T) {
	line, caret := truncateContext("RETURN 1", 7)
	require.Equal(t, "RETURN 1", line)
	require.Equal(t, 7, caret)
}

func TestTruncateContextLongLineEllipses(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}
	line, caret := truncateContext(string(long), 100)
	require.LessOrEqual(t, utf8.RuneCountInString(line), contextWidth+2)
	require.True(t, caret >= 0 && caret < len(line))
}

func TestErrorStringIncludesPositionAndMessage(t *testing.T) {
	e := &Error{Position: ast.Position{Line: 3, Column: 9}, Message: "boom"}
	require.Equal(t, "3:9: boom", e.Error())
	var target error = e
	require.True(t, errors.As(target, &e))
}

func TestFormatRendersFileLineColContextAndCaret(t *testing.T) {
	e := &Error{
		Position:      ast.Position{Line: 2, Column: 8},
		Message:       "Invalid input 'x': expected RETURN",
		Context:       "MATCH (n) x",
		ContextOffset: 7,
	}
	require.Equal(t, "query.cypher:2:8: Invalid input 'x': expected RETURN\nMATCH (n) x\n       ^", e.Format("query.cypher"))
}

func TestFormatOmitsContextLinesWhenNoneCaptured(t *testing.T) {
	e := &Error{Position: ast.Position{Line: 1, Column: 1}, Message: "boom"}
	require.Equal(t, "<stdin>:1:1: boom", e.Format("<stdin>"))
}

func TestSentinelKindsWrapUnderlyingError(t *testing.T) {
	err := ErrInput.New(errors.New("broken pipe"))
	require.True(t, ErrInput.Is(err))
	require.Contains(t, err.Error(), "broken pipe")
}

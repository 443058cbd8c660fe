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

package cursor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cyphergraph/gocypher/ast"
)

func drain(t *testing.T, c *Cursor, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, ok, err := c.Next()
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestPositionDefaultOrigin(t *testing.T) {
	c := FromBytes([]byte("RETURN 1"))
	require.Equal(t, ast.Position{Line: 1, Column: 1, Offset: 0}, c.CurrentPosition())
	drain(t, c, 7)
	require.Equal(t, ast.Position{Line: 1, Column: 8, Offset: 7}, c.CurrentPosition())
}

func TestPositionAcrossNewlines(t *testing.T) {
	c := FromBytes([]byte("ab\ncd\nef"))
	drain(t, c, 4) // consumes "ab\nc"
	require.Equal(t, ast.Position{Line: 2, Column: 2, Offset: 4}, c.CurrentPosition())
	drain(t, c, 2) // consumes "d\n"
	require.Equal(t, ast.Position{Line: 3, Column: 1, Offset: 6}, c.CurrentPosition())
}

// TestPositionOffsetEqualsNewlineCount checks that for any consumed offset
// O, position(O).line equals 1 + count of '\n' bytes in input[0..O).
func TestPositionOffsetEqualsNewlineCount(t *testing.T) {
	input := "a\nbb\nccc\nd"
	c := FromBytes([]byte(input))
	drain(t, c, len(input))
	for offset := 0; offset <= len(input); offset++ {
		want := 1
		for i := 0; i < offset; i++ {
			if input[i] == '\n' {
				want++
			}
		}
		require.Equal(t, want, c.Position(offset).Line, "offset %d", offset)
	}
}

func TestResetRewindsAndPopsLineStarts(t *testing.T) {
	c := FromBytes([]byte("a\nb\nc"))
	m := c.Mark()
	drain(t, c, 4) // past both newlines
	require.Equal(t, 3, c.CurrentPosition().Line)
	c.Reset(m)
	require.Equal(t, 1, c.CurrentPosition().Line)
	require.Equal(t, 0, c.Offset())
	// Re-walking forward from the rewound mark reproduces the same line.
	drain(t, c, 4)
	require.Equal(t, 3, c.CurrentPosition().Line)
}

func TestPeekDoesNotConsume(t *testing.T) {
	c := FromBytes([]byte("xy"))
	b, ok, err := c.Peek(0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, byte('x'), b)
	require.Equal(t, 0, c.Offset())
}

func TestPeekPastEndOfStream(t *testing.T) {
	c := FromBytes([]byte("x"))
	_, ok, err := c.Peek(1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAtEOF(t *testing.T) {
	c := FromBytes([]byte("x"))
	require.False(t, c.AtEOF())
	drain(t, c, 1)
	require.True(t, c.AtEOF())
}

func TestEmptyInputIsAtEOFImmediately(t *testing.T) {
	c := FromBytes(nil)
	require.True(t, c.AtEOF())
}

func TestAdvanceOriginRebasesWindowAndPosition(t *testing.T) {
	c := FromBytes([]byte("ab\ncd"))
	drain(t, c, 4) // "ab\nc"
	before := c.CurrentPosition()
	c.AdvanceOrigin(4)
	require.Equal(t, 0, c.Offset())
	require.Equal(t, before, c.CurrentPosition())
	// The remaining byte is still readable after rebasing.
	b, ok, err := c.Peek(0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, byte('d'), b)
}

func TestWithInitialPositionShiftsAllPositions(t *testing.T) {
	plain := FromBytes([]byte("a\nb"))
	shifted := FromBytes([]byte("a\nb")).WithInitialPosition(ast.Position{Line: 10, Column: 5, Offset: 100})

	drain(t, plain, 2)
	drain(t, shifted, 2)

	p1 := plain.CurrentPosition()
	p2 := shifted.CurrentPosition()
	require.Equal(t, p1.Line+9, p2.Line)
	require.Equal(t, p1.Offset+100, p2.Offset)
}

type erroringReader struct{}

func (erroringReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestReadErrSurfacesNonEOFFailure(t *testing.T) {
	c := New(erroringReader{})
	require.False(t, c.AtEOF())
	require.Error(t, c.ReadErr())
}

func TestZeroReadWithNilErrorTreatedAsEOF(t *testing.T) {
	c := New(&zeroThenNothing{})
	require.True(t, c.AtEOF())
}

type zeroThenNothing struct{}

func (*zeroThenNothing) Read([]byte) (int, error) { return 0, nil }

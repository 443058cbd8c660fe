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

package block

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cyphergraph/gocypher/ast"
)

func leaf(t *testing.T, name string) *ast.Node {
	t.Helper()
	n, err := ast.NewIdentifier(name, ast.Range{})
	require.NoError(t, err)
	return n
}

func TestNewStackStartsClean(t *testing.T) {
	s := NewStack()
	require.True(t, s.Clean())
	require.Equal(t, 1, s.Depth())
	require.Empty(t, s.RootChildren())
}

func TestStartEndInstallRoundTrip(t *testing.T) {
	s := NewStack()
	s.Start(0, ast.Position{Line: 1, Column: 1, Offset: 0})
	require.Equal(t, 2, s.Depth())
	s.End(1, ast.Position{Line: 1, Column: 2, Offset: 1})
	require.Equal(t, 1, s.Depth())

	prev := s.TakePrevious()
	require.NotNil(t, prev)
	require.Nil(t, s.Previous())

	n := leaf(t, "n")
	s.Install(n)
	require.Equal(t, []*ast.Node{n}, s.RootChildren())
	require.True(t, s.Clean())
}

func TestMergeHoistsChildrenToParent(t *testing.T) {
	s := NewStack()
	s.Start(0, ast.Position{})
	a := leaf(t, "a")
	s.Append(a)
	s.Start(0, ast.Position{})
	b := leaf(t, "b")
	s.Install(b)
	s.Merge(0, ast.Position{})
	// Merge ends the inner block (whose only content was Install'd child b)
	// and hoists it into the block now on top (the outer block opened by the
	// first Start), which already held a in its auxiliary sequence from
	// Append.
	require.Equal(t, 2, s.Depth())
	s.End(0, ast.Position{})
	prev := s.TakePrevious()
	require.Equal(t, []*ast.Node{a}, prev.Sequence)
	require.Equal(t, []*ast.Node{b}, prev.Children)
}

func TestReplaceIsEndThenStartAtSameOffset(t *testing.T) {
	s := NewStack()
	s.Start(0, ast.Position{Offset: 0})
	s.Replace(5, ast.Position{Offset: 5})
	require.Equal(t, 2, s.Depth())
	prev := s.Previous()
	require.Equal(t, 5, prev.EndOffset)
}

func TestAssertCleanPanicsOnResidualSequence(t *testing.T) {
	s := NewStack()
	s.Append(leaf(t, "stray"))
	require.False(t, s.Clean())
	require.Panics(t, func() { s.AssertClean() })
}

func TestAssertCleanPanicsOnDanglingPreviousBlock(t *testing.T) {
	s := NewStack()
	s.Start(0, ast.Position{})
	s.End(0, ast.Position{})
	require.False(t, s.Clean())
	require.Panics(t, func() { s.AssertClean() })
}

func TestResetRootClearsChildrenAndSequenceForNextSegment(t *testing.T) {
	s := NewStack()
	s.Install(leaf(t, "a"))
	s.Append(leaf(t, "b"))
	require.NotEmpty(t, s.RootChildren())
	s.ResetRoot()
	require.Empty(t, s.RootChildren())
	require.True(t, s.Clean())
}

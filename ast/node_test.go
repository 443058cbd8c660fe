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

package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func pos(offset int) Position { return Position{Line: 1, Column: offset + 1, Offset: offset} }

func rng(start, end int) Range { return Range{Start: pos(start), End: pos(end)} }

func TestNewRejectsUnknownKind(t *testing.T) {
	_, err := New(Kind(12345), IdentifierPayload{Name: "x"}, nil)
	require.Error(t, err)
}

func TestNewRejectsNilChild(t *testing.T) {
	_, err := New(KindCollection, CollectionPayload{}, []*Node{nil})
	require.Error(t, err)
}

func TestRequireKindAcceptsSubkind(t *testing.T) {
	id, err := NewIdentifier("n", rng(0, 1))
	require.NoError(t, err)
	require.NoError(t, RequireKind(id, KindExpression, false))
	require.NoError(t, RequireKind(id, KindIdentifier, false))
}

func TestRequireKindRejectsWrongKind(t *testing.T) {
	id, err := NewIdentifier("n", rng(0, 1))
	require.NoError(t, err)
	err = RequireKind(id, KindPatternPath, false)
	require.Error(t, err)
	require.True(t, ErrInvalidChildKind.Is(err))
}

func TestRequireKindNilOptionalVsRequired(t *testing.T) {
	require.NoError(t, RequireKind(nil, KindExpression, true))
	require.Error(t, RequireKind(nil, KindExpression, false))
}

func TestRequireKindAnyUnionTyping(t *testing.T) {
	// A payload slot that accepts MAP or PARAMETER interchangeably.
	param, err := NewParameter("props", rng(0, 6))
	require.NoError(t, err)
	require.NoError(t, RequireKindAny(param, false, KindMap, KindParameter))

	m, err := NewMap(nil, nil, rng(0, 2))
	require.NoError(t, err)
	require.NoError(t, RequireKindAny(m, false, KindMap, KindParameter))

	id, err := NewIdentifier("n", rng(0, 1))
	require.NoError(t, err)
	require.Error(t, RequireKindAny(id, false, KindMap, KindParameter))
}

func TestRequireKindAllStopsAtFirstViolation(t *testing.T) {
	id, _ := NewIdentifier("n", rng(0, 1))
	label, _ := NewLabel("Person", rng(2, 8))
	require.NoError(t, RequireKindAll([]*Node{label}, KindLabel))
	require.Error(t, RequireKindAll([]*Node{label, id}, KindLabel))
}

// TestNodeAccessorsOnNil exercises the nil-receiver conveniences every
// accessor on *Node provides, mirroring the source's NULL-safe getters.
func TestNodeAccessorsOnNil(t *testing.T) {
	var n *Node
	require.Equal(t, 0, n.NChildren())
	require.Nil(t, n.Child(0))
	require.False(t, n.InstanceOf(KindExpression))
	require.Equal(t, "nil", n.TypeName())
}

func TestChildOutOfRangeReturnsNil(t *testing.T) {
	id, _ := NewIdentifier("n", rng(0, 1))
	coll, err := NewCollection([]*Node{id}, rng(0, 3))
	require.NoError(t, err)
	require.Equal(t, 1, coll.NChildren())
	require.Nil(t, coll.Child(-1))
	require.Nil(t, coll.Child(1))
	require.Same(t, id, coll.Child(0))
}

// TestRangeCoversChildren checks that a node's range contains the union
// of its children's ranges.
func TestRangeCoversChildren(t *testing.T) {
	id, _ := NewIdentifier("n", rng(1, 2))
	coll, err := NewCollection([]*Node{id}, rng(0, 3))
	require.NoError(t, err)
	require.True(t, CoversChildren(coll))

	coll.Range = rng(2, 3)
	require.False(t, CoversChildren(coll))
}

// TestAssignOrdinalsPreOrderDense checks that pre-order ordinals are dense
// and strictly increasing starting from the given base.
func TestAssignOrdinalsPreOrderDense(t *testing.T) {
	a, _ := NewIdentifier("a", rng(0, 1))
	b, _ := NewIdentifier("b", rng(2, 3))
	coll, err := NewCollection([]*Node{a, b}, rng(0, 4))
	require.NoError(t, err)

	next := AssignOrdinals([]*Node{coll}, 5)
	require.Equal(t, 8, next)
	require.Equal(t, 5, coll.Ordinal)
	require.Equal(t, 6, a.Ordinal)
	require.Equal(t, 7, b.Ordinal)
}

func TestWalkVisitsPreOrderAndStopsEarly(t *testing.T) {
	a, _ := NewIdentifier("a", rng(0, 1))
	b, _ := NewIdentifier("b", rng(2, 3))
	coll, err := NewCollection([]*Node{a, b}, rng(0, 4))
	require.NoError(t, err)

	var visited []*Node
	Walk(coll, func(n *Node) bool {
		visited = append(visited, n)
		return true
	})
	require.Equal(t, []*Node{coll, a, b}, visited)

	visited = nil
	Walk(coll, func(n *Node) bool {
		visited = append(visited, n)
		return false
	})
	require.Equal(t, []*Node{coll}, visited)
}

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

func TestInstanceOfReflexive(t *testing.T) {
	require.True(t, InstanceOf(KindIdentifier, KindIdentifier))
	require.True(t, InstanceOf(KindMatch, KindMatch))
}

func TestInstanceOfTransitiveClosure(t *testing.T) {
	// Identifier -> Expression, directly.
	require.True(t, InstanceOf(KindIdentifier, KindExpression))
	// All/Any/Single/None are both Expression and ListComprehensionNode.
	require.True(t, InstanceOf(KindAll, KindExpression))
	require.True(t, InstanceOf(KindAll, KindListComprehensionNode))
	// NamedPath/ShortestPath are both Expression (via PatternPath) and
	// PatternPath.
	require.True(t, InstanceOf(KindNamedPath, KindPatternPath))
	require.True(t, InstanceOf(KindNamedPath, KindExpression))
	require.True(t, InstanceOf(KindShortestPath, KindPatternPath))
}

func TestInstanceOfRejectsUnrelatedKinds(t *testing.T) {
	require.False(t, InstanceOf(KindMatch, KindExpression))
	require.False(t, InstanceOf(KindInteger, KindQueryClause))
	require.False(t, InstanceOf(KindString, KindPatternPath))
}

func TestInstanceOfBooleanSubkinds(t *testing.T) {
	require.True(t, InstanceOf(KindTrue, KindBoolean))
	require.True(t, InstanceOf(KindFalse, KindBoolean))
	require.True(t, InstanceOf(KindTrue, KindExpression))
}

func TestTypeNameKnownAndUnknown(t *testing.T) {
	require.Equal(t, "Identifier", TypeName(KindIdentifier))
	require.Equal(t, "Match", TypeName(KindMatch))
	require.Equal(t, "Unknown", TypeName(Kind(99999)))
}

func TestValidKind(t *testing.T) {
	require.True(t, validKind(KindIdentifier))
	require.False(t, validKind(invalidKind))
	require.False(t, validKind(Kind(-1)))
}

// Every concrete (non-abstract) kind used as a QueryClause subkind must
// report InstanceOf(KindQueryClause) true.
func TestQueryClauseMembers(t *testing.T) {
	members := []Kind{
		KindMatch, KindMerge, KindCreate, KindDelete, KindRemove, KindSet,
		KindReturn, KindWith, KindUnwind, KindCall, KindForeach, KindLoadCSV,
		KindStart,
	}
	for _, k := range members {
		require.Truef(t, InstanceOf(k, KindQueryClause), "%s should be a QueryClause", TypeName(k))
	}
	// Union is spliced in among ordinary clauses in a Query's children list
	// (see ast.NewUnion / parser.parseQuery), so it shares the QueryClause
	// kind too.
	require.True(t, InstanceOf(KindUnion, KindQueryClause))
}

func TestStartPointMembers(t *testing.T) {
	members := []Kind{
		KindNodeIdLookup, KindNodeIndexLookup, KindNodeIndexQuery,
		KindRelIdLookup, KindRelIndexLookup, KindRelIndexQuery,
	}
	for _, k := range members {
		require.Truef(t, InstanceOf(k, KindStartPoint), "%s should be a StartPoint", TypeName(k))
	}
}

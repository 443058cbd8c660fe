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

package operator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrecedenceOrderingLooseToTight(t *testing.T) {
	require.Less(t, Or.Precedence, Xor.Precedence)
	require.Less(t, Xor.Precedence, And.Precedence)
	require.Less(t, And.Precedence, Not.Precedence)
	require.Less(t, Not.Precedence, Equal.Precedence)
	require.Less(t, Equal.Precedence, LessThan.Precedence)
	require.Less(t, LessThan.Precedence, Plus.Precedence)
	require.Less(t, Plus.Precedence, Mult.Precedence)
	require.Less(t, Mult.Precedence, Pow.Precedence)
	require.Less(t, Pow.Precedence, UnaryPlus.Precedence)
	require.Less(t, UnaryPlus.Precedence, Subscript.Precedence)
	require.Less(t, Subscript.Precedence, Property.Precedence)
	require.Equal(t, 1, Or.Precedence)
	require.Equal(t, 12, Property.Precedence)
}

func TestComparisonOperatorsShareOnePrecedence(t *testing.T) {
	require.Equal(t, LessThan.Precedence, GreaterThan.Precedence)
	require.Equal(t, LessThan.Precedence, LessThanOrEqual.Precedence)
	require.Equal(t, LessThan.Precedence, GreaterThanOrEqual.Precedence)
	require.Equal(t, Equal.Precedence, NotEqual.Precedence)
}

func TestNextMinPrecedenceLeftAssociativeAddsOne(t *testing.T) {
	require.Equal(t, Plus.Precedence+1, Plus.NextMinPrecedence())
}

func TestNextMinPrecedenceRightAssociativeKeepsSame(t *testing.T) {
	require.Equal(t, Pow.Precedence, Pow.NextMinPrecedence())
}

func TestNextMinPrecedenceUnaryKeepsSame(t *testing.T) {
	require.Equal(t, Not.Precedence, Not.NextMinPrecedence())
	require.Equal(t, UnaryMinus.Precedence, UnaryMinus.NextMinPrecedence())
}

func TestDescriptorsAreInternedByIdentity(t *testing.T) {
	require.True(t, Plus == Plus)
	require.False(t, Plus == Minus)
	a, b := Equal, Equal
	require.Same(t, a, b)
}

func TestAllListsEveryDescriptorExactlyOnce(t *testing.T) {
	seen := make(map[*Descriptor]bool)
	for _, d := range All {
		require.False(t, seen[d], "duplicate descriptor %s in All", d.Symbol)
		seen[d] = true
	}
	require.Len(t, All, 29)
	require.Contains(t, All, Or)
	require.Contains(t, All, Property)
}

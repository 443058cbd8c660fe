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

package exprstate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cyphergraph/gocypher/ast/operator"
)

func TestOperatorStackPushTakeOrderAndClear(t *testing.T) {
	var s OperatorStack
	require.Equal(t, 0, s.Len())
	s.Push(operator.LessThan)
	s.Push(operator.LessThanOrEqual)
	require.Equal(t, 2, s.Len())

	ops := s.Take()
	require.Equal(t, []*operator.Descriptor{operator.LessThan, operator.LessThanOrEqual}, ops)
	require.Equal(t, 0, s.Len())
	require.Empty(t, s.Take())
}

func TestPrecedenceStackTopIsZeroWhenEmpty(t *testing.T) {
	var s PrecedenceStack
	require.Equal(t, 0, s.Top())
	require.True(t, s.Allows(0))
	require.True(t, s.Allows(100))
}

func TestPrecedenceStackPushTopPop(t *testing.T) {
	var s PrecedenceStack
	s.Push(5)
	require.Equal(t, 5, s.Top())
	require.Equal(t, 1, s.Len())
	s.Push(8)
	require.Equal(t, 8, s.Top())
	s.Pop()
	require.Equal(t, 5, s.Top())
	s.Pop()
	require.Equal(t, 0, s.Top())
	require.Equal(t, 0, s.Len())
}

func TestPrecedenceStackPopOnEmptyIsNoOp(t *testing.T) {
	var s PrecedenceStack
	s.Pop()
	require.Equal(t, 0, s.Len())
}

func TestPrecedenceStackAllowsGatesByTop(t *testing.T) {
	var s PrecedenceStack
	s.Push(7)
	require.True(t, s.Allows(7))
	require.True(t, s.Allows(8))
	require.False(t, s.Allows(6))
}

func TestPushForOperatorLeftAssociativeRaisesFloor(t *testing.T) {
	var s PrecedenceStack
	s.PushForOperator(operator.Plus)
	require.Equal(t, operator.Plus.Precedence+1, s.Top())
	require.False(t, s.Allows(operator.Plus.Precedence))
}

func TestPushForOperatorRightAssociativeKeepsFloor(t *testing.T) {
	var s PrecedenceStack
	s.PushForOperator(operator.Pow)
	require.Equal(t, operator.Pow.Precedence, s.Top())
	require.True(t, s.Allows(operator.Pow.Precedence))
}

func TestPushForOperatorUnaryKeepsFloor(t *testing.T) {
	var s PrecedenceStack
	s.PushForOperator(operator.Not)
	require.Equal(t, operator.Not.Precedence, s.Top())
}

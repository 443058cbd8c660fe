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

// Package exprstate holds the two small stacks the expression-precedence
// grammar rules share: an operator stack recording a comparison chain's
// operators in order, and a precedence stack gating recursive expansion by
// an ambient minimum precedence.
package exprstate

import "github.com/cyphergraph/gocypher/ast/operator"

// OperatorStack records the sequence of comparison operators seen in a
// chain (`a < b <= c`) so a single Comparison node can be built with all of
// them in order.
type OperatorStack struct {
	ops []*operator.Descriptor
}

// Push appends an operator to the chain.
func (s *OperatorStack) Push(op *operator.Descriptor) { s.ops = append(s.ops, op) }

// Take returns the accumulated operators and clears the stack, for a
// Comparison node constructor to consume.
func (s *OperatorStack) Take() []*operator.Descriptor {
	ops := s.ops
	s.ops = nil
	return ops
}

// Len reports the number of operators currently recorded.
func (s *OperatorStack) Len() int { return len(s.ops) }

// PrecedenceStack gates recursive expression parses: an attempted expansion
// at precedence p succeeds only if p is at least the ambient minimum.
type PrecedenceStack struct {
	min []int
}

// Push records a new ambient minimum precedence, computed from the operator
// just entered via its NextMinPrecedence.
func (s *PrecedenceStack) Push(minPrecedence int) { s.min = append(s.min, minPrecedence) }

// PushForOperator pushes the next minimum precedence for descending into
// op's right-hand operand: p+1 for LEFT associativity, p for RIGHT/UNARY.
func (s *PrecedenceStack) PushForOperator(op *operator.Descriptor) {
	s.Push(op.NextMinPrecedence())
}

// Top returns the current ambient minimum precedence, or 0 if the stack is
// empty (no restriction).
func (s *PrecedenceStack) Top() int {
	if len(s.min) == 0 {
		return 0
	}
	return s.min[len(s.min)-1]
}

// Allows reports whether an operator of the given precedence may be
// consumed under the current ambient minimum.
func (s *PrecedenceStack) Allows(precedence int) bool {
	return precedence >= s.Top()
}

// Pop removes the most recently pushed minimum precedence.
func (s *PrecedenceStack) Pop() {
	if len(s.min) > 0 {
		s.min = s.min[:len(s.min)-1]
	}
}

// Len reports the stack depth.
func (s *PrecedenceStack) Len() int { return len(s.min) }

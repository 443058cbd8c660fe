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

// ComprehensionPayload backs every list-comprehension-shaped kind: All,
// Any, Single, None, Filter, Extract, ListComprehension. Which fields are
// populated depends on the concrete kind: All/Any/Single/
// None/Filter carry no Eval; Extract carries no Predicate; only
// ListComprehension itself may carry both.
type ComprehensionPayload struct {
	IdentifierNode *Node
	ExpressionNode *Node
	PredicateNode  *Node
	EvalNode       *Node
}

func (ComprehensionPayload) isPayload() {}

func (p ComprehensionPayload) Identifier() *Node { return p.IdentifierNode }
func (p ComprehensionPayload) Expression() *Node { return p.ExpressionNode }
func (p ComprehensionPayload) Predicate() *Node  { return p.PredicateNode }
func (p ComprehensionPayload) Eval() *Node       { return p.EvalNode }

func newComprehension(kind Kind, identifier, expression, predicate, eval *Node, rng Range) (*Node, error) {
	if err := RequireKind(identifier, KindIdentifier, false); err != nil {
		return nil, err
	}
	if err := RequireKind(expression, KindExpression, false); err != nil {
		return nil, err
	}
	if err := RequireKind(predicate, KindExpression, true); err != nil {
		return nil, err
	}
	if err := RequireKind(eval, KindExpression, true); err != nil {
		return nil, err
	}
	children := []*Node{identifier, expression}
	if predicate != nil {
		children = append(children, predicate)
	}
	if eval != nil {
		children = append(children, eval)
	}
	p := ComprehensionPayload{IdentifierNode: identifier, ExpressionNode: expression, PredicateNode: predicate, EvalNode: eval}
	n, err := New(kind, p, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// NewAll builds `all(x IN list WHERE pred)`.
func NewAll(identifier, expression, predicate *Node, rng Range) (*Node, error) {
	return newComprehension(KindAll, identifier, expression, predicate, nil, rng)
}

// NewAny builds `any(x IN list WHERE pred)`.
func NewAny(identifier, expression, predicate *Node, rng Range) (*Node, error) {
	return newComprehension(KindAny, identifier, expression, predicate, nil, rng)
}

// NewSingle builds `single(x IN list WHERE pred)`.
func NewSingle(identifier, expression, predicate *Node, rng Range) (*Node, error) {
	return newComprehension(KindSingle, identifier, expression, predicate, nil, rng)
}

// NewNone builds `none(x IN list WHERE pred)`.
func NewNone(identifier, expression, predicate *Node, rng Range) (*Node, error) {
	return newComprehension(KindNone, identifier, expression, predicate, nil, rng)
}

// NewFilter builds `filter(x IN list WHERE pred)`.
func NewFilter(identifier, expression, predicate *Node, rng Range) (*Node, error) {
	return newComprehension(KindFilter, identifier, expression, predicate, nil, rng)
}

// NewExtract builds `extract(x IN list | eval)`.
func NewExtract(identifier, expression, eval *Node, rng Range) (*Node, error) {
	return newComprehension(KindExtract, identifier, expression, nil, eval, rng)
}

// NewListComprehension builds `[x IN list WHERE pred | eval]`, where both
// predicate and eval are independently optional.
func NewListComprehension(identifier, expression, predicate, eval *Node, rng Range) (*Node, error) {
	return newComprehension(KindListComprehension, identifier, expression, predicate, eval, rng)
}

// ReducePayload is `reduce(acc = init, x IN list | eval)`.
type ReducePayload struct {
	Accumulator *Node
	Init        *Node
	Identifier  *Node
	Expression  *Node
	Eval        *Node
}

func (ReducePayload) isPayload() {}

func NewReduce(accumulator, init, identifier, expression, eval *Node, rng Range) (*Node, error) {
	if err := RequireKind(accumulator, KindIdentifier, false); err != nil {
		return nil, err
	}
	if err := RequireKind(init, KindExpression, false); err != nil {
		return nil, err
	}
	if err := RequireKind(identifier, KindIdentifier, false); err != nil {
		return nil, err
	}
	if err := RequireKind(expression, KindExpression, false); err != nil {
		return nil, err
	}
	if err := RequireKind(eval, KindExpression, false); err != nil {
		return nil, err
	}
	children := []*Node{accumulator, init, identifier, expression, eval}
	p := ReducePayload{Accumulator: accumulator, Init: init, Identifier: identifier, Expression: expression, Eval: eval}
	n, err := New(KindReduce, p, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// PatternComprehensionPayload is `[pattern WHERE pred | eval]`, optionally
// binding the path to Identifier (`p = (a)-->(b)`).
type PatternComprehensionPayload struct {
	Identifier *Node
	Pattern    *Node
	Predicate  *Node
	Eval       *Node
}

func (PatternComprehensionPayload) isPayload() {}

func NewPatternComprehension(identifier, pattern, predicate, eval *Node, rng Range) (*Node, error) {
	if err := RequireKind(identifier, KindIdentifier, true); err != nil {
		return nil, err
	}
	if err := RequireKind(pattern, KindPatternPath, false); err != nil {
		return nil, err
	}
	if err := RequireKind(predicate, KindExpression, true); err != nil {
		return nil, err
	}
	if err := RequireKind(eval, KindExpression, false); err != nil {
		return nil, err
	}
	var children []*Node
	if identifier != nil {
		children = append(children, identifier)
	}
	children = append(children, pattern)
	if predicate != nil {
		children = append(children, predicate)
	}
	children = append(children, eval)
	p := PatternComprehensionPayload{Identifier: identifier, Pattern: pattern, Predicate: predicate, Eval: eval}
	n, err := New(KindPatternComprehension, p, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

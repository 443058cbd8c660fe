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

import "github.com/cyphergraph/gocypher/ast/operator"

// UnaryOpPayload is `op arg`, e.g. `-x`, `NOT b`.
type UnaryOpPayload struct {
	Op  *operator.Descriptor
	Arg *Node
}

func (UnaryOpPayload) isPayload() {}

func NewUnaryOp(op *operator.Descriptor, arg *Node, rng Range) (*Node, error) {
	if err := RequireKind(arg, KindExpression, false); err != nil {
		return nil, err
	}
	n, err := New(KindUnaryOp, UnaryOpPayload{Op: op, Arg: arg}, []*Node{arg})
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// BinaryOpPayload is `left op right`, e.g. `a + b`.
type BinaryOpPayload struct {
	Op    *operator.Descriptor
	Left  *Node
	Right *Node
}

func (BinaryOpPayload) isPayload() {}

func NewBinaryOp(op *operator.Descriptor, left, right *Node, rng Range) (*Node, error) {
	if err := RequireKind(left, KindExpression, false); err != nil {
		return nil, err
	}
	if err := RequireKind(right, KindExpression, false); err != nil {
		return nil, err
	}
	n, err := New(KindBinaryOp, BinaryOpPayload{Op: op, Left: left, Right: right}, []*Node{left, right})
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// ComparisonPayload is a chain of comparisons sharing one node, e.g.
// `a < b <= c` becomes Arguments=[a,b,c], Operators=[<, <=]: the operator
// stack captures the sequence of comparison operators in a chain so a
// single node can hold all of them in order.
type ComparisonPayload struct {
	Operators []*operator.Descriptor
	Arguments []*Node
}

func (ComparisonPayload) isPayload() {}

func NewComparison(ops []*operator.Descriptor, args []*Node, rng Range) (*Node, error) {
	if len(args) != len(ops)+1 {
		return nil, ErrInvalidChildKind.New("argument/operator count mismatch", "k+1 arguments for k operators")
	}
	if err := RequireKindAll(args, KindExpression); err != nil {
		return nil, err
	}
	n, err := New(KindComparison, ComparisonPayload{Operators: ops, Arguments: args}, args)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// ApplyPayload is a function call `name(args...)`, optionally DISTINCT.
type ApplyPayload struct {
	FuncName *Node
	Distinct bool
	Args     []*Node
}

func (ApplyPayload) isPayload() {}

func NewApply(funcName *Node, distinct bool, args []*Node, rng Range) (*Node, error) {
	if err := RequireKind(funcName, KindFunctionName, false); err != nil {
		return nil, err
	}
	if err := RequireKindAll(args, KindExpression); err != nil {
		return nil, err
	}
	children := append([]*Node{funcName}, args...)
	n, err := New(KindApply, ApplyPayload{FuncName: funcName, Distinct: distinct, Args: args}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// ApplyAllPayload is `name(*)`, e.g. `count(*)`.
type ApplyAllPayload struct {
	FuncName *Node
	Distinct bool
}

func (ApplyAllPayload) isPayload() {}

func NewApplyAll(funcName *Node, distinct bool, rng Range) (*Node, error) {
	if err := RequireKind(funcName, KindFunctionName, false); err != nil {
		return nil, err
	}
	n, err := New(KindApplyAll, ApplyAllPayload{FuncName: funcName, Distinct: distinct}, []*Node{funcName})
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// PropertyPayload is `expr.propName`.
type PropertyPayload struct {
	Expression *Node
	PropName   *Node
}

func (PropertyPayload) isPayload() {}

func NewProperty(expr, propName *Node, rng Range) (*Node, error) {
	if err := RequireKind(expr, KindExpression, false); err != nil {
		return nil, err
	}
	if err := RequireKind(propName, KindPropName, false); err != nil {
		return nil, err
	}
	n, err := New(KindProperty, PropertyPayload{Expression: expr, PropName: propName}, []*Node{expr, propName})
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// SubscriptPayload is `expr[index]`.
type SubscriptPayload struct {
	Expression *Node
	Index      *Node
}

func (SubscriptPayload) isPayload() {}

func NewSubscript(expr, index *Node, rng Range) (*Node, error) {
	if err := RequireKind(expr, KindExpression, false); err != nil {
		return nil, err
	}
	if err := RequireKind(index, KindExpression, false); err != nil {
		return nil, err
	}
	n, err := New(KindSubscript, SubscriptPayload{Expression: expr, Index: index}, []*Node{expr, index})
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// SlicePayload is `expr[start..end]`; Start and End are each optionally nil
// (an open-ended slice bound).
type SlicePayload struct {
	Expression *Node
	Start      *Node
	End        *Node
}

func (SlicePayload) isPayload() {}

func NewSlice(expr, start, end *Node, rng Range) (*Node, error) {
	if err := RequireKind(expr, KindExpression, false); err != nil {
		return nil, err
	}
	if err := RequireKind(start, KindExpression, true); err != nil {
		return nil, err
	}
	if err := RequireKind(end, KindExpression, true); err != nil {
		return nil, err
	}
	children := []*Node{expr}
	if start != nil {
		children = append(children, start)
	}
	if end != nil {
		children = append(children, end)
	}
	n, err := New(KindSlice, SlicePayload{Expression: expr, Start: start, End: end}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// LabelsPayload is `expr:Label1:Label2`, a label-set test/attachment.
type LabelsPayload struct {
	Expression *Node
	Labels     []*Node
}

func (LabelsPayload) isPayload() {}

func NewLabels(expr *Node, labels []*Node, rng Range) (*Node, error) {
	if err := RequireKind(expr, KindExpression, false); err != nil {
		return nil, err
	}
	if err := RequireKindAll(labels, KindLabel); err != nil {
		return nil, err
	}
	children := append([]*Node{expr}, labels...)
	n, err := New(KindLabels, LabelsPayload{Expression: expr, Labels: labels}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

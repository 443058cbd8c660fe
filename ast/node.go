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
	"fmt"

	"gopkg.in/src-d/go-errors.v1"
)

// ErrInvalidChildKind is the programming-error sentinel raised when a node
// is constructed with a payload child whose kind is not a subkind of the
// kind the payload slot requires.
var ErrInvalidChildKind = errors.NewKind("invalid child kind: %s is not an instance of %s")

// Position is a (line, column, offset) triple. Line and column are 1-based;
// offset is a 0-based byte count.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Range is a half-open [Start, End) pair of positions.
type Range struct {
	Start Position
	End   Position
}

// Payload is implemented by every per-kind payload struct. It carries no
// behavior of its own; it exists so the compiler can catch a caller passing
// the wrong payload type into New.
type Payload interface {
	isPayload()
}

// Node is the tagged-sum AST node: a common header (Kind, owning Children
// slice, source Range, pre-order Ordinal) plus a Payload carrying the
// kind-specific fields, replacing an embedded-base-struct-plus-vtable
// pattern with a single concrete type.
type Node struct {
	Kind     Kind
	Payload  Payload
	Children []*Node
	Range    Range
	Ordinal  int
}

// NChildren returns the number of direct children.
func (n *Node) NChildren() int {
	if n == nil {
		return 0
	}
	return len(n.Children)
}

// Child returns the child at index i, or nil if i is out of range.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// InstanceOf reports whether n's kind is an instance of ancestor.
func (n *Node) InstanceOf(ancestor Kind) bool {
	if n == nil {
		return false
	}
	return InstanceOf(n.Kind, ancestor)
}

// TypeName returns the human-readable name of n's kind.
func (n *Node) TypeName() string {
	if n == nil {
		return "nil"
	}
	return TypeName(n.Kind)
}

// New constructs a node of the given kind from its payload and an ordered
// slice of extra children (children produced by the grammar but not exposed
// through a named payload accessor). Every pointer-valued field embedded in
// payload MUST also appear in children, per spec
// §3.2 — callers assemble the full children slice (payload children in
// source order, interleaved with extra children) and pass it as children;
// New validates it is non-nil-clean and delegates kind-lattice checks to the
// payload-specific constructors in this package, which call RequireKind
// before invoking New.
func New(kind Kind, payload Payload, children []*Node) (*Node, error) {
	if !validKind(kind) {
		return nil, fmt.Errorf("ast: unknown kind %d", int(kind))
	}
	for i, c := range children {
		if c == nil {
			return nil, fmt.Errorf("ast: nil child at index %d constructing %s", i, TypeName(kind))
		}
	}
	return &Node{Kind: kind, Payload: payload, Children: children}, nil
}

// RequireKind validates that child (which may be nil only when optional is
// true) is an instance of want, returning ErrInvalidChildKind.New(...)
// otherwise. Per-kind constructors call this before building their payload,
// giving the strict validation a single shared implementation instead of
// one hand-rolled check per kind.
func RequireKind(child *Node, want Kind, optional bool) error {
	if child == nil {
		if optional {
			return nil
		}
		return ErrInvalidChildKind.New("nil", TypeName(want))
	}
	if !child.InstanceOf(want) {
		return ErrInvalidChildKind.New(child.TypeName(), TypeName(want))
	}
	return nil
}

// RequireKindAny validates that child is an instance of at least one of
// wants; used for union-typed payload slots (e.g. node/relationship
// properties accept MAP or PARAMETER).
func RequireKindAny(child *Node, optional bool, wants ...Kind) error {
	if child == nil {
		if optional {
			return nil
		}
		return ErrInvalidChildKind.New("nil", "one of the allowed kinds")
	}
	for _, w := range wants {
		if child.InstanceOf(w) {
			return nil
		}
	}
	names := make([]string, len(wants))
	for i, w := range wants {
		names[i] = TypeName(w)
	}
	return ErrInvalidChildKind.New(child.TypeName(), fmt.Sprint(names))
}

// RequireKindAll validates that every element of children is an instance of
// want, e.g. a label array that must contain only Label nodes.
func RequireKindAll(children []*Node, want Kind) error {
	for _, c := range children {
		if err := RequireKind(c, want, false); err != nil {
			return err
		}
	}
	return nil
}

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

// Package block is the semantic-action substrate the PEG driver's grammar
// rules build AST nodes against: a stack of in-progress rule spans, each
// accumulating auxiliary nodes and nested-block children, plus a
// single-slot "previous block" cache that node constructors drain.
package block

import "github.com/cyphergraph/gocypher/ast"

// Block is one live rule body's working state: the byte span and source
// range it covers, an ordered sequence of auxiliary nodes built during the
// rule (e.g. the labels of a node pattern), and the ordered children
// contributed by directly nested blocks.
type Block struct {
	StartOffset int
	EndOffset   int
	Range       ast.Range
	Sequence    []*ast.Node
	Children    []*ast.Node
}

// Stack is an explicit block-stack value owned by one parser, in place of a
// hidden global. The parser's segment loop uses it to collect each
// segment's top-level roots; grammar rules do not touch it.
type Stack struct {
	blocks []*Block
	prev   *Block
}

// NewStack returns a stack with a single root block open at offset 0,
// matching the "exactly one residual block" end-of-parse invariant this
// type enforces.
func NewStack() *Stack {
	return &Stack{blocks: []*Block{{}}}
}

// Start pushes a fresh block at the given offset/position.
func (s *Stack) Start(offset int, pos ast.Position) {
	s.blocks = append(s.blocks, &Block{StartOffset: offset, Range: ast.Range{Start: pos}})
}

// End pops the top block, closes its range/offset at the given
// offset/position, and moves it into the previous-block cache for a
// node-construction action to consume.
func (s *Stack) End(offset int, pos ast.Position) {
	top := s.top()
	top.EndOffset = offset
	top.Range.End = pos
	s.blocks = s.blocks[:len(s.blocks)-1]
	s.prev = top
}

// Replace is End immediately followed by Start at the same offset, used
// when a rule emits several sibling nodes from one span.
func (s *Stack) Replace(offset int, pos ast.Position) {
	s.End(offset, pos)
	s.Start(offset, pos)
}

// Merge ends the top block and hoists its sequence and children into the
// new top block's children, without producing a node. The ended block is
// not placed in the previous-block cache.
func (s *Stack) Merge(offset int, pos ast.Position) {
	top := s.top()
	s.blocks = s.blocks[:len(s.blocks)-1]
	parent := s.top()
	parent.Children = append(parent.Children, top.Sequence...)
	parent.Children = append(parent.Children, top.Children...)
}

// Append adds n to the current top block's auxiliary sequence (e.g. a
// label or SET item built inline during the rule).
func (s *Stack) Append(n *ast.Node) {
	top := s.top()
	top.Sequence = append(top.Sequence, n)
}

// Previous returns the previous-block cache without clearing it.
func (s *Stack) Previous() *Block { return s.prev }

// TakePrevious returns the previous-block cache and clears it. Node
// constructors call this to read the consumed block's children and range.
func (s *Stack) TakePrevious() *Block {
	p := s.prev
	s.prev = nil
	return p
}

// Install appends n as a child of the (now) top block; called by a node
// constructor immediately after TakePrevious, per the block-stack
// discipline that every new node becomes a child of the block that was
// current when its span opened.
func (s *Stack) Install(n *ast.Node) {
	top := s.top()
	top.Children = append(top.Children, n)
}

// RootChildren returns the accumulated children of the root block — the
// parse's top-level result roots — once the stack is back down to one
// block.
func (s *Stack) RootChildren() []*ast.Node {
	return s.blocks[0].Children
}

// ResetRoot clears the root block's children and sequence after they have
// been collected into a segment, so the stack is ready for the next
// segment in a streaming parse.
func (s *Stack) ResetRoot() {
	s.blocks[0].Children = nil
	s.blocks[0].Sequence = nil
}

func (s *Stack) top() *Block { return s.blocks[len(s.blocks)-1] }

// Depth returns the number of open blocks, root included.
func (s *Stack) Depth() int { return len(s.blocks) }

// Clean reports whether the stack currently satisfies the end-of-parse
// invariant: exactly one residual (root) block, its sequence empty, and no
// pending previous-block cache entry.
func (s *Stack) Clean() bool {
	return len(s.blocks) == 1 && len(s.blocks[0].Sequence) == 0 && s.prev == nil
}

// AssertClean panics if the stack does not satisfy Clean; grammar rules
// that fail to pair every Start with an End/Replace/Merge are a driver bug,
// and this check is meant to be called from the segment loop after every
// successful top-level parse in debug builds/tests.
func (s *Stack) AssertClean() {
	if !s.Clean() {
		panic("block: stack invariant violated: residual blocks, pending sequence, or dangling previous-block cache")
	}
}

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

package parser

import (
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/cyphergraph/gocypher/ast"
	"github.com/cyphergraph/gocypher/cperr"
)

// Segment is one top-level parse unit handed to the per-segment callback:
// the byte range it covers, its roots (normally exactly one Statement, but
// a slice since the root block can in principle collect more than one),
// the distinguished directive (the segment's Statement or Command root),
// accumulated syntax errors, and
// whether the stream was at EOF when the segment was produced.
type Segment struct {
	ID        uuid.UUID
	Range     ast.Range
	Roots     []*ast.Node
	Directive *ast.Node
	Errors    []*cperr.Error
	EOF       bool

	refCount int32
}

// newSegment mints a Segment with a fresh id and a single outstanding
// reference.
func newSegment(rng ast.Range, roots []*ast.Node, directive *ast.Node, errs []*cperr.Error, eof bool) *Segment {
	return &Segment{
		ID:        uuid.New(),
		Range:     rng,
		Roots:     roots,
		Directive: directive,
		Errors:    errs,
		EOF:       eof,
		refCount:  1,
	}
}

// Retain increments the segment's reference count.
func (s *Segment) Retain() { atomic.AddInt32(&s.refCount, 1) }

// Release decrements the segment's reference count; once it drops to or
// below zero the segment's owned roots and errors are released (set to nil)
// so callers holding a stale reference cannot observe half-freed state,
// the idiomatic Go rendition of the source's manual refcounted free.
func (s *Segment) Release() {
	if atomic.AddInt32(&s.refCount, -1) <= 0 {
		s.Roots = nil
		s.Errors = nil
		s.Directive = nil
	}
}

// Result coalesces segments from a whole-input parse into one value: all
// roots and errors in order, a running node count, all directives
// encountered, and an EOF flag that becomes true once an EOF segment has
// contributed at least one directive or error.
type Result struct {
	Roots      []*ast.Node
	Errors     []*cperr.Error
	Directives []*ast.Node
	NodeCount  int
	EOF        bool
}

// Merge coalesces seg into r: errors and roots are appended, the node count
// is added, and a non-nil directive is appended to Directives.
func (r *Result) Merge(seg *Segment) {
	r.Roots = append(r.Roots, seg.Roots...)
	r.Errors = append(r.Errors, seg.Errors...)
	if seg.Directive != nil {
		r.Directives = append(r.Directives, seg.Directive)
	}
	for _, root := range seg.Roots {
		r.NodeCount += countNodes(root)
	}
	if seg.EOF && (len(seg.Directives()) > 0 || len(seg.Errors) > 0) {
		r.EOF = true
	}
}

// Directives returns the directive list for a single segment, always of
// length 0 or 1; named to mirror Result.Directives when computing EOF.
func (s *Segment) Directives() []*ast.Node {
	if s.Directive == nil {
		return nil
	}
	return []*ast.Node{s.Directive}
}

func countNodes(n *ast.Node) int {
	if n == nil {
		return 0
	}
	count := 1
	for i := 0; i < n.NChildren(); i++ {
		count += countNodes(n.Child(i))
	}
	return count
}

// Err folds every accumulated syntax diagnostic into one error via
// hashicorp/go-multierror, returning nil if there were none.
func (r *Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	var merr *multierror.Error
	for _, e := range r.Errors {
		merr = multierror.Append(merr, e)
	}
	return merr.ErrorOrNil()
}

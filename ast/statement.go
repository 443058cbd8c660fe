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

// LineCommentPayload is a `//` end-of-line comment attached to the segment
// it trails.
type LineCommentPayload struct{ Text string }

func (LineCommentPayload) isPayload() {}

func NewLineComment(text string, rng Range) (*Node, error) {
	n, err := New(KindLineComment, LineCommentPayload{Text: text}, nil)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// BlockCommentPayload is a `/* ... */` comment, possibly spanning multiple
// lines.
type BlockCommentPayload struct{ Text string }

func (BlockCommentPayload) isPayload() {}

func NewBlockComment(text string, rng Range) (*Node, error) {
	n, err := New(KindBlockComment, BlockCommentPayload{Text: text}, nil)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// StatementPayload is the outermost per-segment node: an optional leading
// set of statement options (CYPHER, EXPLAIN, PROFILE) wrapping exactly one
// Query or SchemaCommand body.
type StatementPayload struct {
	Options []*Node
	Body    *Node
}

func (StatementPayload) isPayload() {}

func NewStatement(options []*Node, body *Node, rng Range) (*Node, error) {
	if err := RequireKindAll(options, KindStatementOption); err != nil {
		return nil, err
	}
	if err := RequireKindAny(body, false, KindQuery, KindSchemaCommand); err != nil {
		return nil, err
	}
	children := append([]*Node{}, options...)
	children = append(children, body)
	n, err := New(KindStatement, StatementPayload{Options: options, Body: body}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// QueryPayload is an ordered sequence of query clauses, possibly spliced
// with Union markers when the query combines multiple bodies with UNION
// [ALL].
type QueryPayload struct {
	Options []*Node
	Clauses []*Node
}

func (QueryPayload) isPayload() {}

func NewQuery(options, clauses []*Node, rng Range) (*Node, error) {
	if err := RequireKindAll(options, KindQueryOption); err != nil {
		return nil, err
	}
	if len(clauses) == 0 {
		return nil, ErrInvalidChildKind.New("empty clause list", "at least one query clause or union")
	}
	for _, c := range clauses {
		if err := RequireKindAny(c, false, KindQueryClause, KindUnion); err != nil {
			return nil, err
		}
	}
	children := append([]*Node{}, options...)
	children = append(children, clauses...)
	n, err := New(KindQuery, QueryPayload{Options: options, Clauses: clauses}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// CommandPayload is a client command: a leading `:` directive such as
// `:help` or `:param name => value`, tokenized as a name plus raw argument
// nodes rather than parsed as Cypher.
type CommandPayload struct {
	Name *Node
	Args []*Node
}

func (CommandPayload) isPayload() {}

func NewCommand(name *Node, args []*Node, rng Range) (*Node, error) {
	if err := RequireKind(name, KindString, false); err != nil {
		return nil, err
	}
	if err := RequireKindAll(args, KindString); err != nil {
		return nil, err
	}
	children := append([]*Node{name}, args...)
	n, err := New(KindCommand, CommandPayload{Name: name, Args: args}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

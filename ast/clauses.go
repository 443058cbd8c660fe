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

// MatchPayload is a `[OPTIONAL] MATCH pattern [hints] [WHERE predicate]`
// clause.
type MatchPayload struct {
	Optional  bool
	Pattern   *Node
	Hints     []*Node
	Predicate *Node
}

func (MatchPayload) isPayload() {}

func NewMatch(optional bool, pattern *Node, hints []*Node, predicate *Node, rng Range) (*Node, error) {
	if err := RequireKind(pattern, KindPattern, false); err != nil {
		return nil, err
	}
	if err := RequireKindAll(hints, KindMatchHint); err != nil {
		return nil, err
	}
	if err := RequireKind(predicate, KindExpression, true); err != nil {
		return nil, err
	}
	children := append([]*Node{pattern}, hints...)
	if predicate != nil {
		children = append(children, predicate)
	}
	n, err := New(KindMatch, MatchPayload{Optional: optional, Pattern: pattern, Hints: hints, Predicate: predicate}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// MergePayload is `MERGE path [ON MATCH SET ...] [ON CREATE SET ...]`.
type MergePayload struct {
	Path    *Node
	Actions []*Node
}

func (MergePayload) isPayload() {}

func NewMerge(path *Node, actions []*Node, rng Range) (*Node, error) {
	if err := RequireKind(path, KindPatternPath, false); err != nil {
		return nil, err
	}
	if err := RequireKindAll(actions, KindMergeAction); err != nil {
		return nil, err
	}
	children := append([]*Node{path}, actions...)
	n, err := New(KindMerge, MergePayload{Path: path, Actions: actions}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// onActionPayload backs both OnMatch and OnCreate: an ordered list of SET
// items to apply when the merge path was matched/created respectively.
type onActionPayload struct{ Items []*Node }

func (onActionPayload) isPayload() {}

func newOnAction(kind Kind, items []*Node, rng Range) (*Node, error) {
	if len(items) == 0 {
		return nil, ErrInvalidChildKind.New("empty item list", "at least one SET item")
	}
	if err := RequireKindAll(items, KindSetItem); err != nil {
		return nil, err
	}
	n, err := New(kind, onActionPayload{Items: items}, items)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

func NewOnMatch(items []*Node, rng Range) (*Node, error)  { return newOnAction(KindOnMatch, items, rng) }
func NewOnCreate(items []*Node, rng Range) (*Node, error) { return newOnAction(KindOnCreate, items, rng) }

// CreatePayload is `CREATE pattern`.
type CreatePayload struct{ Pattern *Node }

func (CreatePayload) isPayload() {}

func NewCreate(pattern *Node, rng Range) (*Node, error) {
	if err := RequireKind(pattern, KindPattern, false); err != nil {
		return nil, err
	}
	n, err := New(KindCreate, CreatePayload{Pattern: pattern}, []*Node{pattern})
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// DeletePayload is `[DETACH] DELETE expr1, expr2, ...`.
type DeletePayload struct {
	Detach      bool
	Expressions []*Node
}

func (DeletePayload) isPayload() {}

func NewDelete(detach bool, expressions []*Node, rng Range) (*Node, error) {
	if len(expressions) == 0 {
		return nil, ErrInvalidChildKind.New("empty expression list", "at least one expression")
	}
	if err := RequireKindAll(expressions, KindExpression); err != nil {
		return nil, err
	}
	n, err := New(KindDelete, DeletePayload{Detach: detach, Expressions: expressions}, expressions)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// RemovePayload is `REMOVE item1, item2, ...`.
type RemovePayload struct{ Items []*Node }

func (RemovePayload) isPayload() {}

func NewRemove(items []*Node, rng Range) (*Node, error) {
	if len(items) == 0 {
		return nil, ErrInvalidChildKind.New("empty item list", "at least one REMOVE item")
	}
	if err := RequireKindAll(items, KindRemoveItem); err != nil {
		return nil, err
	}
	n, err := New(KindRemove, RemovePayload{Items: items}, items)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// RemoveLabelsPayload is `identifier:Label1:Label2` inside REMOVE.
type RemoveLabelsPayload struct {
	Identifier *Node
	Labels     []*Node
}

func (RemoveLabelsPayload) isPayload() {}

func NewRemoveLabels(identifier *Node, labels []*Node, rng Range) (*Node, error) {
	if err := RequireKind(identifier, KindIdentifier, false); err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, ErrInvalidChildKind.New("empty label list", "at least one label")
	}
	if err := RequireKindAll(labels, KindLabel); err != nil {
		return nil, err
	}
	children := append([]*Node{identifier}, labels...)
	n, err := New(KindRemoveLabels, RemoveLabelsPayload{Identifier: identifier, Labels: labels}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// RemovePropertyPayload is `expr.propName` inside REMOVE.
type RemovePropertyPayload struct{ Property *Node }

func (RemovePropertyPayload) isPayload() {}

func NewRemoveProperty(property *Node, rng Range) (*Node, error) {
	if err := RequireKind(property, KindProperty, false); err != nil {
		return nil, err
	}
	n, err := New(KindRemoveProperty, RemovePropertyPayload{Property: property}, []*Node{property})
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// SetPayload is `SET item1, item2, ...`.
type SetPayload struct{ Items []*Node }

func (SetPayload) isPayload() {}

func NewSet(items []*Node, rng Range) (*Node, error) {
	if len(items) == 0 {
		return nil, ErrInvalidChildKind.New("empty item list", "at least one SET item")
	}
	if err := RequireKindAll(items, KindSetItem); err != nil {
		return nil, err
	}
	n, err := New(KindSet, SetPayload{Items: items}, items)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// SetPropertyPayload is `expr.propName = value` inside SET.
type SetPropertyPayload struct {
	Property   *Node
	Expression *Node
}

func (SetPropertyPayload) isPayload() {}

func NewSetProperty(property, expr *Node, rng Range) (*Node, error) {
	if err := RequireKind(property, KindProperty, false); err != nil {
		return nil, err
	}
	if err := RequireKind(expr, KindExpression, false); err != nil {
		return nil, err
	}
	n, err := New(KindSetProperty, SetPropertyPayload{Property: property, Expression: expr}, []*Node{property, expr})
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// SetAllPropertiesPayload is `identifier = expr` inside SET (replaces all
// properties).
type SetAllPropertiesPayload struct {
	Identifier *Node
	Expression *Node
}

func (SetAllPropertiesPayload) isPayload() {}

func NewSetAllProperties(identifier, expr *Node, rng Range) (*Node, error) {
	if err := RequireKind(identifier, KindIdentifier, false); err != nil {
		return nil, err
	}
	if err := RequireKind(expr, KindExpression, false); err != nil {
		return nil, err
	}
	n, err := New(KindSetAllProperties, SetAllPropertiesPayload{Identifier: identifier, Expression: expr}, []*Node{identifier, expr})
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// MergePropertiesPayload is `identifier += expr` inside SET (merges
// properties instead of replacing).
type MergePropertiesPayload struct {
	Identifier *Node
	Expression *Node
}

func (MergePropertiesPayload) isPayload() {}

func NewMergeProperties(identifier, expr *Node, rng Range) (*Node, error) {
	if err := RequireKind(identifier, KindIdentifier, false); err != nil {
		return nil, err
	}
	if err := RequireKind(expr, KindExpression, false); err != nil {
		return nil, err
	}
	n, err := New(KindMergeProperties, MergePropertiesPayload{Identifier: identifier, Expression: expr}, []*Node{identifier, expr})
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// SetLabelsPayload is `identifier:Label1:Label2` inside SET.
type SetLabelsPayload struct {
	Identifier *Node
	Labels     []*Node
}

func (SetLabelsPayload) isPayload() {}

func NewSetLabels(identifier *Node, labels []*Node, rng Range) (*Node, error) {
	if err := RequireKind(identifier, KindIdentifier, false); err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, ErrInvalidChildKind.New("empty label list", "at least one label")
	}
	if err := RequireKindAll(labels, KindLabel); err != nil {
		return nil, err
	}
	children := append([]*Node{identifier}, labels...)
	n, err := New(KindSetLabels, SetLabelsPayload{Identifier: identifier, Labels: labels}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// ProjectionPayload is `expression [AS alias]` inside RETURN/WITH.
type ProjectionPayload struct {
	Expression *Node
	Alias      *Node
}

func (ProjectionPayload) isPayload() {}

func NewProjection(expr, alias *Node, rng Range) (*Node, error) {
	if err := RequireKind(expr, KindExpression, false); err != nil {
		return nil, err
	}
	if err := RequireKind(alias, KindIdentifier, true); err != nil {
		return nil, err
	}
	children := []*Node{expr}
	if alias != nil {
		children = append(children, alias)
	}
	n, err := New(KindProjection, ProjectionPayload{Expression: expr, Alias: alias}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// SortItemPayload is `expression [ASC|DESC]` inside ORDER BY.
type SortItemPayload struct {
	Expression *Node
	Ascending  bool
}

func (SortItemPayload) isPayload() {}

func NewSortItem(expr *Node, ascending bool, rng Range) (*Node, error) {
	if err := RequireKind(expr, KindExpression, false); err != nil {
		return nil, err
	}
	n, err := New(KindSortItem, SortItemPayload{Expression: expr, Ascending: ascending}, []*Node{expr})
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// OrderByPayload is `ORDER BY item1, item2, ...`.
type OrderByPayload struct{ Items []*Node }

func (OrderByPayload) isPayload() {}

func NewOrderBy(items []*Node, rng Range) (*Node, error) {
	if len(items) == 0 {
		return nil, ErrInvalidChildKind.New("empty item list", "at least one sort item")
	}
	if err := RequireKindAll(items, KindSortItem); err != nil {
		return nil, err
	}
	n, err := New(KindOrderBy, OrderByPayload{Items: items}, items)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// ProjectionClause is shared layout for RETURN and WITH: a projection list
// plus the optional ORDER BY/SKIP/LIMIT tail.
type ProjectionClause struct {
	Distinct        bool
	IncludeExisting bool
	Projections     []*Node
	OrderBy         *Node
	Skip            *Node
	Limit           *Node
}

// ReturnPayload is `RETURN [DISTINCT] [*,] proj1, proj2 [ORDER BY ...]
// [SKIP n] [LIMIT n]`.
type ReturnPayload struct{ ProjectionClause }

func (ReturnPayload) isPayload() {}

func projectionChildren(p ProjectionClause) ([]*Node, error) {
	if err := RequireKindAll(p.Projections, KindProjection); err != nil {
		return nil, err
	}
	if err := RequireKind(p.OrderBy, KindOrderBy, true); err != nil {
		return nil, err
	}
	if err := RequireKind(p.Skip, KindExpression, true); err != nil {
		return nil, err
	}
	if err := RequireKind(p.Limit, KindExpression, true); err != nil {
		return nil, err
	}
	children := append([]*Node{}, p.Projections...)
	if p.OrderBy != nil {
		children = append(children, p.OrderBy)
	}
	if p.Skip != nil {
		children = append(children, p.Skip)
	}
	if p.Limit != nil {
		children = append(children, p.Limit)
	}
	return children, nil
}

func NewReturn(p ProjectionClause, rng Range) (*Node, error) {
	children, err := projectionChildren(p)
	if err != nil {
		return nil, err
	}
	n, err := New(KindReturn, ReturnPayload{p}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// WithPayload is `WITH [DISTINCT] proj1, ... [ORDER BY ...] [SKIP n]
// [LIMIT n] [WHERE predicate]`.
type WithPayload struct {
	ProjectionClause
	Predicate *Node
}

func (WithPayload) isPayload() {}

func NewWith(p ProjectionClause, predicate *Node, rng Range) (*Node, error) {
	children, err := projectionChildren(p)
	if err != nil {
		return nil, err
	}
	if err := RequireKind(predicate, KindExpression, true); err != nil {
		return nil, err
	}
	if predicate != nil {
		children = append(children, predicate)
	}
	n, err := New(KindWith, WithPayload{ProjectionClause: p, Predicate: predicate}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// UnwindPayload is `UNWIND expression AS alias`.
type UnwindPayload struct {
	Expression *Node
	Alias      *Node
}

func (UnwindPayload) isPayload() {}

func NewUnwind(expr, alias *Node, rng Range) (*Node, error) {
	if err := RequireKind(expr, KindExpression, false); err != nil {
		return nil, err
	}
	if err := RequireKind(alias, KindIdentifier, false); err != nil {
		return nil, err
	}
	n, err := New(KindUnwind, UnwindPayload{Expression: expr, Alias: alias}, []*Node{expr, alias})
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// CallPayload is `CALL procName(args...) [YIELD proj1, proj2]`.
type CallPayload struct {
	ProcName *Node
	Args     []*Node
	Yield    []*Node
}

func (CallPayload) isPayload() {}

func NewCall(procName *Node, args, yield []*Node, rng Range) (*Node, error) {
	if err := RequireKind(procName, KindFunctionName, false); err != nil {
		return nil, err
	}
	if err := RequireKindAll(args, KindExpression); err != nil {
		return nil, err
	}
	if err := RequireKindAll(yield, KindProjection); err != nil {
		return nil, err
	}
	children := append([]*Node{procName}, args...)
	children = append(children, yield...)
	n, err := New(KindCall, CallPayload{ProcName: procName, Args: args, Yield: yield}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// ForeachPayload is `FOREACH (identifier IN expression | clause1 clause2 ...)`.
type ForeachPayload struct {
	Identifier *Node
	Expression *Node
	Clauses    []*Node
}

func (ForeachPayload) isPayload() {}

func NewForeach(identifier, expr *Node, clauses []*Node, rng Range) (*Node, error) {
	if err := RequireKind(identifier, KindIdentifier, false); err != nil {
		return nil, err
	}
	if err := RequireKind(expr, KindExpression, false); err != nil {
		return nil, err
	}
	if len(clauses) == 0 {
		return nil, ErrInvalidChildKind.New("empty clause list", "at least one query clause")
	}
	if err := RequireKindAll(clauses, KindQueryClause); err != nil {
		return nil, err
	}
	children := append([]*Node{identifier, expr}, clauses...)
	n, err := New(KindForeach, ForeachPayload{Identifier: identifier, Expression: expr, Clauses: clauses}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// LoadCSVPayload is `LOAD CSV [WITH HEADERS] FROM url AS identifier
// [FIELDTERMINATOR term]`.
type LoadCSVPayload struct {
	WithHeaders     bool
	URL             *Node
	Identifier      *Node
	FieldTerminator *Node
}

func (LoadCSVPayload) isPayload() {}

func NewLoadCSV(withHeaders bool, url, identifier, fieldTerminator *Node, rng Range) (*Node, error) {
	if err := RequireKind(url, KindExpression, false); err != nil {
		return nil, err
	}
	if err := RequireKind(identifier, KindIdentifier, false); err != nil {
		return nil, err
	}
	if err := RequireKind(fieldTerminator, KindString, true); err != nil {
		return nil, err
	}
	children := []*Node{url, identifier}
	if fieldTerminator != nil {
		children = append(children, fieldTerminator)
	}
	p := LoadCSVPayload{WithHeaders: withHeaders, URL: url, Identifier: identifier, FieldTerminator: fieldTerminator}
	n, err := New(KindLoadCSV, p, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// UnionPayload is the `UNION [ALL]` separator between two query bodies.
type UnionPayload struct{ All bool }

func (UnionPayload) isPayload() {}

func NewUnion(all bool, rng Range) (*Node, error) {
	n, err := New(KindUnion, UnionPayload{All: all}, nil)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

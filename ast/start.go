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

// StartPayload is the legacy `START point1, point2 [WHERE predicate]`
// clause.
type StartPayload struct {
	Points    []*Node
	Predicate *Node
}

func (StartPayload) isPayload() {}

func NewStart(points []*Node, predicate *Node, rng Range) (*Node, error) {
	if len(points) == 0 {
		return nil, ErrInvalidChildKind.New("empty start point list", "at least one start point")
	}
	if err := RequireKindAll(points, KindStartPoint); err != nil {
		return nil, err
	}
	if err := RequireKind(predicate, KindExpression, true); err != nil {
		return nil, err
	}
	children := append([]*Node{}, points...)
	if predicate != nil {
		children = append(children, predicate)
	}
	n, err := New(KindStart, StartPayload{Points: points, Predicate: predicate}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// NodeIdLookupPayload is `identifier = node(id1, id2, ...)`.
type NodeIdLookupPayload struct {
	Identifier *Node
	Ids        []*Node
}

func (NodeIdLookupPayload) isPayload() {}

func NewNodeIdLookup(identifier *Node, ids []*Node, rng Range) (*Node, error) {
	if err := RequireKind(identifier, KindIdentifier, false); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ErrInvalidChildKind.New("empty id list", "at least one node id")
	}
	if err := RequireKindAll(ids, KindInteger); err != nil {
		return nil, err
	}
	children := append([]*Node{identifier}, ids...)
	n, err := New(KindNodeIdLookup, NodeIdLookupPayload{Identifier: identifier, Ids: ids}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// NodeIndexLookupPayload is `identifier = node:indexName(propName = lookup)`.
type NodeIndexLookupPayload struct {
	Identifier *Node
	IndexName  *Node
	PropName   *Node
	Lookup     *Node
}

func (NodeIndexLookupPayload) isPayload() {}

func NewNodeIndexLookup(identifier, indexName, propName, lookup *Node, rng Range) (*Node, error) {
	if err := requireStartLookupFields(identifier, indexName, propName, lookup); err != nil {
		return nil, err
	}
	children := []*Node{identifier, indexName, propName, lookup}
	p := NodeIndexLookupPayload{Identifier: identifier, IndexName: indexName, PropName: propName, Lookup: lookup}
	n, err := New(KindNodeIndexLookup, p, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// NodeIndexQueryPayload is `identifier = node:indexName(query)`.
type NodeIndexQueryPayload struct {
	Identifier *Node
	IndexName  *Node
	Query      *Node
}

func (NodeIndexQueryPayload) isPayload() {}

func NewNodeIndexQuery(identifier, indexName, query *Node, rng Range) (*Node, error) {
	if err := requireStartQueryFields(identifier, indexName, query); err != nil {
		return nil, err
	}
	children := []*Node{identifier, indexName, query}
	p := NodeIndexQueryPayload{Identifier: identifier, IndexName: indexName, Query: query}
	n, err := New(KindNodeIndexQuery, p, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// RelIdLookupPayload is `identifier = relationship(id1, id2, ...)`.
type RelIdLookupPayload struct {
	Identifier *Node
	Ids        []*Node
}

func (RelIdLookupPayload) isPayload() {}

func NewRelIdLookup(identifier *Node, ids []*Node, rng Range) (*Node, error) {
	if err := RequireKind(identifier, KindIdentifier, false); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ErrInvalidChildKind.New("empty id list", "at least one relationship id")
	}
	if err := RequireKindAll(ids, KindInteger); err != nil {
		return nil, err
	}
	children := append([]*Node{identifier}, ids...)
	n, err := New(KindRelIdLookup, RelIdLookupPayload{Identifier: identifier, Ids: ids}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// RelIndexLookupPayload is `identifier = relationship:indexName(propName =
// lookup)`.
type RelIndexLookupPayload struct {
	Identifier *Node
	IndexName  *Node
	PropName   *Node
	Lookup     *Node
}

func (RelIndexLookupPayload) isPayload() {}

func NewRelIndexLookup(identifier, indexName, propName, lookup *Node, rng Range) (*Node, error) {
	if err := requireStartLookupFields(identifier, indexName, propName, lookup); err != nil {
		return nil, err
	}
	children := []*Node{identifier, indexName, propName, lookup}
	p := RelIndexLookupPayload{Identifier: identifier, IndexName: indexName, PropName: propName, Lookup: lookup}
	n, err := New(KindRelIndexLookup, p, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// RelIndexQueryPayload is `identifier = relationship:indexName(query)`.
type RelIndexQueryPayload struct {
	Identifier *Node
	IndexName  *Node
	Query      *Node
}

func (RelIndexQueryPayload) isPayload() {}

func NewRelIndexQuery(identifier, indexName, query *Node, rng Range) (*Node, error) {
	if err := requireStartQueryFields(identifier, indexName, query); err != nil {
		return nil, err
	}
	children := []*Node{identifier, indexName, query}
	p := RelIndexQueryPayload{Identifier: identifier, IndexName: indexName, Query: query}
	n, err := New(KindRelIndexQuery, p, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

func requireStartLookupFields(identifier, indexName, propName, lookup *Node) error {
	if err := RequireKind(identifier, KindIdentifier, false); err != nil {
		return err
	}
	if err := RequireKind(indexName, KindString, false); err != nil {
		return err
	}
	if err := RequireKind(propName, KindString, false); err != nil {
		return err
	}
	return RequireKind(lookup, KindExpression, false)
}

func requireStartQueryFields(identifier, indexName, query *Node) error {
	if err := RequireKind(identifier, KindIdentifier, false); err != nil {
		return err
	}
	if err := RequireKind(indexName, KindString, false); err != nil {
		return err
	}
	return RequireKind(query, KindExpression, false)
}

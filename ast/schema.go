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

// NodePropIndexPayload backs `CREATE/DROP INDEX ON :Label(propName)`.
type NodePropIndexPayload struct {
	Label    *Node
	PropName *Node
}

func (NodePropIndexPayload) isPayload() {}

func newNodePropIndex(kind Kind, label, propName *Node, rng Range) (*Node, error) {
	if err := RequireKind(label, KindLabel, false); err != nil {
		return nil, err
	}
	if err := RequireKind(propName, KindPropName, false); err != nil {
		return nil, err
	}
	n, err := New(kind, NodePropIndexPayload{Label: label, PropName: propName}, []*Node{label, propName})
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

func NewCreateNodePropIndex(label, propName *Node, rng Range) (*Node, error) {
	return newNodePropIndex(KindCreateNodePropIndex, label, propName, rng)
}

func NewDropNodePropIndex(label, propName *Node, rng Range) (*Node, error) {
	return newNodePropIndex(KindDropNodePropIndex, label, propName, rng)
}

// NodePropConstraintPayload backs `CREATE/DROP CONSTRAINT ON (identifier
// :Label) ASSERT identifier.propName IS UNIQUE`.
type NodePropConstraintPayload struct {
	Identifier *Node
	Label      *Node
	PropName   *Node
	Unique     bool
}

func (NodePropConstraintPayload) isPayload() {}

func newNodePropConstraint(kind Kind, identifier, label, propName *Node, unique bool, rng Range) (*Node, error) {
	if err := RequireKind(identifier, KindIdentifier, false); err != nil {
		return nil, err
	}
	if err := RequireKind(label, KindLabel, false); err != nil {
		return nil, err
	}
	if err := RequireKind(propName, KindPropName, false); err != nil {
		return nil, err
	}
	p := NodePropConstraintPayload{Identifier: identifier, Label: label, PropName: propName, Unique: unique}
	n, err := New(kind, p, []*Node{identifier, label, propName})
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

func NewCreateNodePropConstraint(identifier, label, propName *Node, unique bool, rng Range) (*Node, error) {
	return newNodePropConstraint(KindCreateNodePropConstraint, identifier, label, propName, unique, rng)
}

func NewDropNodePropConstraint(identifier, label, propName *Node, unique bool, rng Range) (*Node, error) {
	return newNodePropConstraint(KindDropNodePropConstraint, identifier, label, propName, unique, rng)
}

// RelPropConstraintPayload backs `CREATE/DROP CONSTRAINT ON ()-[identifier
// :RelType]-() ASSERT identifier.propName IS UNIQUE`.
type RelPropConstraintPayload struct {
	Identifier *Node
	RelType    *Node
	PropName   *Node
	Unique     bool
}

func (RelPropConstraintPayload) isPayload() {}

func newRelPropConstraint(kind Kind, identifier, relType, propName *Node, unique bool, rng Range) (*Node, error) {
	if err := RequireKind(identifier, KindIdentifier, false); err != nil {
		return nil, err
	}
	if err := RequireKind(relType, KindRelType, false); err != nil {
		return nil, err
	}
	if err := RequireKind(propName, KindPropName, false); err != nil {
		return nil, err
	}
	p := RelPropConstraintPayload{Identifier: identifier, RelType: relType, PropName: propName, Unique: unique}
	n, err := New(kind, p, []*Node{identifier, relType, propName})
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

func NewCreateRelPropConstraint(identifier, relType, propName *Node, unique bool, rng Range) (*Node, error) {
	return newRelPropConstraint(KindCreateRelPropConstraint, identifier, relType, propName, unique, rng)
}

func NewDropRelPropConstraint(identifier, relType, propName *Node, unique bool, rng Range) (*Node, error) {
	return newRelPropConstraint(KindDropRelPropConstraint, identifier, relType, propName, unique, rng)
}

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

// CypherOptionPayload is the leading `CYPHER [version] [param=value ...]`
// statement option.
type CypherOptionPayload struct {
	Version *Node
	Params  []*Node
}

func (CypherOptionPayload) isPayload() {}

func NewCypherOption(version *Node, params []*Node, rng Range) (*Node, error) {
	if err := RequireKind(version, KindString, true); err != nil {
		return nil, err
	}
	if err := RequireKindAll(params, KindCypherOptionParam); err != nil {
		return nil, err
	}
	var children []*Node
	if version != nil {
		children = append(children, version)
	}
	children = append(children, params...)
	n, err := New(KindCypherOption, CypherOptionPayload{Version: version, Params: params}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// CypherOptionParamPayload is a single `name=value` pair inside CYPHER.
type CypherOptionParamPayload struct {
	Name  *Node
	Value *Node
}

func (CypherOptionParamPayload) isPayload() {}

func NewCypherOptionParam(name, value *Node, rng Range) (*Node, error) {
	if err := RequireKind(name, KindIdentifier, false); err != nil {
		return nil, err
	}
	if err := RequireKind(value, KindExpression, false); err != nil {
		return nil, err
	}
	n, err := New(KindCypherOptionParam, CypherOptionParamPayload{Name: name, Value: value}, []*Node{name, value})
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// ExplainOptionPayload marks a statement as `EXPLAIN`; it has no fields.
type ExplainOptionPayload struct{}

func (ExplainOptionPayload) isPayload() {}

func NewExplainOption(rng Range) (*Node, error) {
	n, err := New(KindExplainOption, ExplainOptionPayload{}, nil)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// ProfileOptionPayload marks a statement as `PROFILE`; it has no fields.
type ProfileOptionPayload struct{}

func (ProfileOptionPayload) isPayload() {}

func NewProfileOption(rng Range) (*Node, error) {
	n, err := New(KindProfileOption, ProfileOptionPayload{}, nil)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// UsingIndexPayload is the `USING INDEX identifier:Label(propName)` match
// hint.
type UsingIndexPayload struct {
	Identifier *Node
	Label      *Node
	PropName   *Node
}

func (UsingIndexPayload) isPayload() {}

func NewUsingIndex(identifier, label, propName *Node, rng Range) (*Node, error) {
	if err := RequireKind(identifier, KindIdentifier, false); err != nil {
		return nil, err
	}
	if err := RequireKind(label, KindLabel, false); err != nil {
		return nil, err
	}
	if err := RequireKind(propName, KindPropName, false); err != nil {
		return nil, err
	}
	p := UsingIndexPayload{Identifier: identifier, Label: label, PropName: propName}
	n, err := New(KindUsingIndex, p, []*Node{identifier, label, propName})
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// UsingJoinPayload is the `USING JOIN ON identifier1, identifier2, ...`
// match hint.
type UsingJoinPayload struct{ Identifiers []*Node }

func (UsingJoinPayload) isPayload() {}

func NewUsingJoin(identifiers []*Node, rng Range) (*Node, error) {
	if len(identifiers) == 0 {
		return nil, ErrInvalidChildKind.New("empty identifier list", "at least one identifier")
	}
	if err := RequireKindAll(identifiers, KindIdentifier); err != nil {
		return nil, err
	}
	n, err := New(KindUsingJoin, UsingJoinPayload{Identifiers: identifiers}, identifiers)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// UsingScanPayload is the `USING SCAN identifier:Label` match hint.
type UsingScanPayload struct {
	Identifier *Node
	Label      *Node
}

func (UsingScanPayload) isPayload() {}

func NewUsingScan(identifier, label *Node, rng Range) (*Node, error) {
	if err := RequireKind(identifier, KindIdentifier, false); err != nil {
		return nil, err
	}
	if err := RequireKind(label, KindLabel, false); err != nil {
		return nil, err
	}
	n, err := New(KindUsingScan, UsingScanPayload{Identifier: identifier, Label: label}, []*Node{identifier, label})
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// UsingPeriodicCommitPayload is the `USING PERIODIC COMMIT [limit]` query
// option preceding a LOAD CSV statement.
type UsingPeriodicCommitPayload struct{ Limit *Node }

func (UsingPeriodicCommitPayload) isPayload() {}

func NewUsingPeriodicCommit(limit *Node, rng Range) (*Node, error) {
	if err := RequireKind(limit, KindInteger, true); err != nil {
		return nil, err
	}
	var children []*Node
	if limit != nil {
		children = append(children, limit)
	}
	n, err := New(KindUsingPeriodicCommit, UsingPeriodicCommitPayload{Limit: limit}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

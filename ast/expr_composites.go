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

// CollectionPayload is a list literal `[e1, e2, ...]`.
type CollectionPayload struct {
	Elements []*Node
}

func (CollectionPayload) isPayload() {}

func NewCollection(elements []*Node, rng Range) (*Node, error) {
	if err := RequireKindAll(elements, KindExpression); err != nil {
		return nil, err
	}
	n, err := New(KindCollection, CollectionPayload{Elements: elements}, elements)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// MapPayload is a map literal `{k1: v1, k2: v2}`; Keys[i] pairs with
// Values[i].
type MapPayload struct {
	Keys   []*Node
	Values []*Node
}

func (MapPayload) isPayload() {}

func NewMap(keys, values []*Node, rng Range) (*Node, error) {
	if len(keys) != len(values) {
		return nil, ErrInvalidChildKind.New("key/value count mismatch", "equal-length key and value lists")
	}
	if err := RequireKindAll(keys, KindPropName); err != nil {
		return nil, err
	}
	if err := RequireKindAll(values, KindExpression); err != nil {
		return nil, err
	}
	children := make([]*Node, 0, len(keys)+len(values))
	for i := range keys {
		children = append(children, keys[i], values[i])
	}
	n, err := New(KindMap, MapPayload{Keys: keys, Values: values}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// MapProjectionPayload is `identifier{.prop, .*, lit: expr}`.
type MapProjectionPayload struct {
	Identifier *Node
	Selectors  []*Node
}

func (MapProjectionPayload) isPayload() {}

func NewMapProjection(identifier *Node, selectors []*Node, rng Range) (*Node, error) {
	if err := RequireKind(identifier, KindIdentifier, false); err != nil {
		return nil, err
	}
	if err := RequireKindAll(selectors, KindMapProjectionSelector); err != nil {
		return nil, err
	}
	children := append([]*Node{identifier}, selectors...)
	n, err := New(KindMapProjection, MapProjectionPayload{Identifier: identifier, Selectors: selectors}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// MapProjectionLiteralPayload is the `lit: expr` selector form.
type MapProjectionLiteralPayload struct {
	PropName   *Node
	Expression *Node
}

func (MapProjectionLiteralPayload) isPayload() {}

func NewMapProjectionLiteral(propName, expr *Node, rng Range) (*Node, error) {
	if err := RequireKind(propName, KindPropName, false); err != nil {
		return nil, err
	}
	if err := RequireKind(expr, KindExpression, false); err != nil {
		return nil, err
	}
	n, err := New(KindMapProjectionLiteral, MapProjectionLiteralPayload{PropName: propName, Expression: expr}, []*Node{propName, expr})
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// MapProjectionPropertyPayload is the `.prop` selector form.
type MapProjectionPropertyPayload struct{ PropName *Node }

func (MapProjectionPropertyPayload) isPayload() {}

func NewMapProjectionProperty(propName *Node, rng Range) (*Node, error) {
	if err := RequireKind(propName, KindPropName, false); err != nil {
		return nil, err
	}
	n, err := New(KindMapProjectionProperty, MapProjectionPropertyPayload{PropName: propName}, []*Node{propName})
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// MapProjectionIdentifierPayload is the `.identifier` shorthand selector
// form (project a variable of the same name as the map entry).
type MapProjectionIdentifierPayload struct{ Identifier *Node }

func (MapProjectionIdentifierPayload) isPayload() {}

func NewMapProjectionIdentifier(identifier *Node, rng Range) (*Node, error) {
	if err := RequireKind(identifier, KindIdentifier, false); err != nil {
		return nil, err
	}
	n, err := New(KindMapProjectionIdentifier, MapProjectionIdentifierPayload{Identifier: identifier}, []*Node{identifier})
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// MapProjectionAllPropertiesPayload is the `.*` selector form; it has no
// fields of its own.
type MapProjectionAllPropertiesPayload struct{}

func (MapProjectionAllPropertiesPayload) isPayload() {}

func NewMapProjectionAllProperties(rng Range) (*Node, error) {
	n, err := New(KindMapProjectionAllProperties, MapProjectionAllPropertiesPayload{}, nil)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// CaseAlternative is a single WHEN/THEN pair inside a Case expression.
type CaseAlternative struct {
	When *Node
	Then *Node
}

// CasePayload is a `CASE [test] WHEN w1 THEN t1 ... [ELSE default] END`
// expression. Expression is nil for the generic (no test value) form.
type CasePayload struct {
	Expression   *Node
	Alternatives []CaseAlternative
	Default      *Node
}

func (CasePayload) isPayload() {}

func NewCase(expr *Node, alts []CaseAlternative, deflt *Node, rng Range) (*Node, error) {
	if err := RequireKind(expr, KindExpression, true); err != nil {
		return nil, err
	}
	var children []*Node
	if expr != nil {
		children = append(children, expr)
	}
	for _, a := range alts {
		if err := RequireKind(a.When, KindExpression, false); err != nil {
			return nil, err
		}
		if err := RequireKind(a.Then, KindExpression, false); err != nil {
			return nil, err
		}
		children = append(children, a.When, a.Then)
	}
	if err := RequireKind(deflt, KindExpression, true); err != nil {
		return nil, err
	}
	if deflt != nil {
		children = append(children, deflt)
	}
	n, err := New(KindCase, CasePayload{Expression: expr, Alternatives: alts, Default: deflt}, children)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

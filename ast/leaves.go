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

// IdentifierPayload names a variable reference, e.g. `n` in `MATCH (n)`.
type IdentifierPayload struct{ Name string }

func (IdentifierPayload) isPayload() {}

// NewIdentifier builds a KindIdentifier leaf.
func NewIdentifier(name string, rng Range) (*Node, error) {
	n, err := New(KindIdentifier, IdentifierPayload{Name: name}, nil)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// IdentifierName returns the identifier text of n, or "" if n is not a KindIdentifier.
func (n *Node) IdentifierName() string {
	if n == nil || n.Kind != KindIdentifier {
		return ""
	}
	return n.Payload.(IdentifierPayload).Name
}

// ParameterPayload names a query parameter reference, e.g. `$name`.
type ParameterPayload struct{ Name string }

func (ParameterPayload) isPayload() {}

func NewParameter(name string, rng Range) (*Node, error) {
	n, err := New(KindParameter, ParameterPayload{Name: name}, nil)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

func (n *Node) ParameterName() string {
	if n == nil || n.Kind != KindParameter {
		return ""
	}
	return n.Payload.(ParameterPayload).Name
}

// StringPayload carries an already escape-processed string literal value
// plus the original source text (quoted, with escapes intact) for
// round-tripping diagnostics and pretty-printing.
type StringPayload struct {
	Value string
	Raw   string
}

func (StringPayload) isPayload() {}

func NewString(value, raw string, rng Range) (*Node, error) {
	n, err := New(KindString, StringPayload{Value: value, Raw: raw}, nil)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

func (n *Node) StringValue() string {
	if n == nil || n.Kind != KindString {
		return ""
	}
	return n.Payload.(StringPayload).Value
}

// IntegerPayload carries the literal digit text and its parsed value.
// ValueOK is false when the text overflows int64 (the literal is still kept
// verbatim in Text for round-tripping).
type IntegerPayload struct {
	Text    string
	Value   int64
	ValueOK bool
}

func (IntegerPayload) isPayload() {}

func NewInteger(text string, value int64, valueOK bool, rng Range) (*Node, error) {
	n, err := New(KindInteger, IntegerPayload{Text: text, Value: value, ValueOK: valueOK}, nil)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

func (n *Node) IntegerText() string {
	if n == nil || n.Kind != KindInteger {
		return ""
	}
	return n.Payload.(IntegerPayload).Text
}

// FloatPayload carries the literal digit text and its parsed value.
type FloatPayload struct {
	Text  string
	Value float64
}

func (FloatPayload) isPayload() {}

func NewFloat(text string, value float64, rng Range) (*Node, error) {
	n, err := New(KindFloat, FloatPayload{Text: text, Value: value}, nil)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

func (n *Node) FloatText() string {
	if n == nil || n.Kind != KindFloat {
		return ""
	}
	return n.Payload.(FloatPayload).Text
}

// booleanPayload is shared by True and False; the concrete Kind (KindTrue
// or KindFalse) is what distinguishes them. Boolean itself is an abstract
// supertype with no payload of its own.
type booleanPayload struct{}

func (booleanPayload) isPayload() {}

func NewTrue(rng Range) (*Node, error) {
	n, err := New(KindTrue, booleanPayload{}, nil)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

func NewFalse(rng Range) (*Node, error) {
	n, err := New(KindFalse, booleanPayload{}, nil)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// NullPayload marks a Cypher NULL literal; it has no fields of its own.
type NullPayload struct{}

func (NullPayload) isPayload() {}

func NewNull(rng Range) (*Node, error) {
	n, err := New(KindNull, NullPayload{}, nil)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

// nameLeafPayload is shared by FunctionName, Label, PropName and RelType:
// four distinct kinds that are all, structurally, an interned name string
// with no children of their own.
type nameLeafPayload struct{ Name string }

func (nameLeafPayload) isPayload() {}

func newNameLeaf(kind Kind, name string, rng Range) (*Node, error) {
	n, err := New(kind, nameLeafPayload{Name: name}, nil)
	if err != nil {
		return nil, err
	}
	n.Range = rng
	return n, nil
}

func NewFunctionName(name string, rng Range) (*Node, error) { return newNameLeaf(KindFunctionName, name, rng) }
func NewLabel(name string, rng Range) (*Node, error)        { return newNameLeaf(KindLabel, name, rng) }
func NewPropName(name string, rng Range) (*Node, error)     { return newNameLeaf(KindPropName, name, rng) }
func NewRelType(name string, rng Range) (*Node, error)      { return newNameLeaf(KindRelType, name, rng) }

// NameLeafValue returns the interned name text for any of the four name-leaf
// kinds, or "" if n is not one of them.
func (n *Node) NameLeafValue() string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case KindFunctionName, KindLabel, KindPropName, KindRelType:
		return n.Payload.(nameLeafPayload).Name
	default:
		return ""
	}
}

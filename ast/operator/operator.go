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

// Package operator holds the interned, process-lifetime operator
// descriptor table. Higher precedence binds tighter; descriptors are
// compared by identity (pointer equality), never by value.
package operator

// Associativity distinguishes how a binary operator nests with itself, or
// marks a unary operator.
type Associativity int

const (
	Left Associativity = iota
	Right
	Unary
)

// Descriptor is an interned operator: a symbol, its precedence (higher
// binds tighter), and its associativity. AST BinaryOp/UnaryOp/Comparison
// nodes hold a *Descriptor by reference rather than copying the struct.
type Descriptor struct {
	Symbol        string
	Precedence    int
	Associativity Associativity
}

// NextMinPrecedence returns the minimum precedence a recursive expression
// parse must satisfy when descending into this operator's right-hand
// operand: LEFT associative operators push p+1 (so a same-precedence
// operator to the right doesn't also bind), RIGHT and UNARY push p (so
// same-precedence operators do nest to the right).
func (d *Descriptor) NextMinPrecedence() int {
	if d.Associativity == Left {
		return d.Precedence + 1
	}
	return d.Precedence
}

// The interned table, in increasing precedence order (loosest first),
// exactly as operators.c defines it.
var (
	Or  = &Descriptor{"OR", 1, Left}
	Xor = &Descriptor{"XOR", 2, Left}
	And = &Descriptor{"AND", 3, Left}
	Not = &Descriptor{"NOT", 4, Unary}

	Equal    = &Descriptor{"=", 5, Left}
	NotEqual = &Descriptor{"<>", 5, Left}

	LessThan           = &Descriptor{"<", 6, Left}
	GreaterThan        = &Descriptor{">", 6, Left}
	LessThanOrEqual    = &Descriptor{"<=", 6, Left}
	GreaterThanOrEqual = &Descriptor{">=", 6, Left}

	Plus  = &Descriptor{"+", 7, Left}
	Minus = &Descriptor{"-", 7, Left}

	Mult = &Descriptor{"*", 8, Left}
	Div  = &Descriptor{"/", 8, Left}
	Mod  = &Descriptor{"%", 8, Left}

	Pow = &Descriptor{"^", 9, Right}

	UnaryPlus  = &Descriptor{"+", 10, Unary}
	UnaryMinus = &Descriptor{"-", 10, Unary}

	Subscript      = &Descriptor{"[", 11, Left}
	MapProjection  = &Descriptor{"{", 11, Left}
	Regex          = &Descriptor{"=~", 11, Left}
	In             = &Descriptor{"IN", 11, Left}
	StartsWith     = &Descriptor{"STARTS WITH", 11, Left}
	EndsWith       = &Descriptor{"ENDS WITH", 11, Left}
	Contains       = &Descriptor{"CONTAINS", 11, Left}
	IsNull         = &Descriptor{"IS NULL", 11, Unary}
	IsNotNull      = &Descriptor{"IS NOT NULL", 11, Unary}

	Property = &Descriptor{".", 12, Left}
	Label    = &Descriptor{":", 12, Left}
)

// All lists every interned descriptor, in the table order above. Exposed so
// the driver's label-free scan for "which operator matches this prefix" has
// a single authoritative source to range over.
var All = []*Descriptor{
	Or, Xor, And, Not,
	Equal, NotEqual,
	LessThan, GreaterThan, LessThanOrEqual, GreaterThanOrEqual,
	Plus, Minus,
	Mult, Div, Mod,
	Pow,
	UnaryPlus, UnaryMinus,
	Subscript, MapProjection, Regex, In, StartsWith, EndsWith, Contains, IsNull, IsNotNull,
	Property, Label,
}

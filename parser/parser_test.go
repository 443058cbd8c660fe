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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cyphergraph/gocypher/ast"
)

func TestReturnLiteralStatement(t *testing.T) {
	res, err := Parse([]byte("RETURN 1;"))
	require.NoError(t, err)
	require.Empty(t, res.Errors)
	require.True(t, res.EOF)
	require.Len(t, res.Roots, 1)

	stmt := res.Roots[0]
	require.Equal(t, ast.KindStatement, stmt.Kind)
	body := stmt.Payload.(ast.StatementPayload).Body
	require.Equal(t, ast.KindQuery, body.Kind)

	clauses := body.Payload.(ast.QueryPayload).Clauses
	require.Len(t, clauses, 1)
	ret := clauses[0]
	require.Equal(t, ast.KindReturn, ret.Kind)

	proj := ret.Payload.(ast.ReturnPayload).Projections
	require.Len(t, proj, 1)
	expr := proj[0].Payload.(ast.ProjectionPayload).Expression
	require.Equal(t, ast.KindInteger, expr.Kind)
	require.Equal(t, "1", expr.IntegerText())
}

func TestMatchNodeReturnIdentifier(t *testing.T) {
	res, err := Parse([]byte("MATCH (n) RETURN n"))
	require.NoError(t, err)
	require.Empty(t, res.Errors)
	require.Len(t, res.Roots, 1)

	body := res.Roots[0].Payload.(ast.StatementPayload).Body
	clauses := body.Payload.(ast.QueryPayload).Clauses
	require.Len(t, clauses, 2)

	match := clauses[0]
	require.Equal(t, ast.KindMatch, match.Kind)
	pattern := match.Payload.(ast.MatchPayload).Pattern
	require.Equal(t, ast.KindPattern, pattern.Kind)
	paths := pattern.Payload.(ast.PatternPayload).Paths
	require.Len(t, paths, 1)

	path, ok := ast.AsPatternPathLike(paths[0])
	require.True(t, ok)
	require.Equal(t, 1, path.NElements())
	nodePattern := path.Element(0)
	require.Equal(t, ast.KindNodePattern, nodePattern.Kind)
	id := nodePattern.Payload.(ast.NodePatternPayload).Identifier
	require.Equal(t, "n", id.IdentifierName())

	ret := clauses[1]
	require.Equal(t, ast.KindReturn, ret.Kind)
	proj := ret.Payload.(ast.ReturnPayload).Projections
	require.Len(t, proj, 1)
	expr := proj[0].Payload.(ast.ProjectionPayload).Expression
	require.Equal(t, ast.KindIdentifier, expr.Kind)
	require.Equal(t, "n", expr.IdentifierName())
}

func TestWithWherePredicateThenReturn(t *testing.T) {
	res, err := Parse([]byte("WITH 1 AS x WHERE x > 0 RETURN x"))
	require.NoError(t, err)
	require.Empty(t, res.Errors)
	require.Len(t, res.Roots, 1)

	body := res.Roots[0].Payload.(ast.StatementPayload).Body
	clauses := body.Payload.(ast.QueryPayload).Clauses
	require.Len(t, clauses, 2)

	with := clauses[0]
	require.Equal(t, ast.KindWith, with.Kind)
	withPayload := with.Payload.(ast.WithPayload)
	require.Len(t, withPayload.Projections, 1)
	proj := withPayload.Projections[0].Payload.(ast.ProjectionPayload)
	require.Equal(t, ast.KindInteger, proj.Expression.Kind)
	require.Equal(t, "1", proj.Expression.IntegerText())
	require.Equal(t, "x", proj.Alias.IdentifierName())

	require.NotNil(t, withPayload.Predicate)
	require.Equal(t, ast.KindComparison, withPayload.Predicate.Kind)
	cmp := withPayload.Predicate.Payload.(ast.ComparisonPayload)
	require.Len(t, cmp.Operators, 1)
	require.Equal(t, "x", cmp.Arguments[0].IdentifierName())
	require.Equal(t, "0", cmp.Arguments[1].IntegerText())

	ret := clauses[1]
	require.Equal(t, ast.KindReturn, ret.Kind)
}

func TestMisspelledKeywordProducesPositionedDiagnostic(t *testing.T) {
	res, err := Parse([]byte("RETRN 1;"))
	require.NoError(t, err)
	require.Empty(t, res.Roots)
	require.NotEmpty(t, res.Errors)

	first := res.Errors[0]
	require.Equal(t, 1, first.Position.Line)
	require.Equal(t, 1, first.Position.Column)
	require.Contains(t, first.Message, "Invalid input 'R'")
	require.Contains(t, first.Message, "expected")
}

func TestStreamingTwoStatementsWithoutSingle(t *testing.T) {
	var segs []*Segment
	err := ParseSegments([]byte("RETURN 1;\nRETURN 2;"), func(seg *Segment) error {
		segs = append(segs, seg)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, segs, 2)

	require.False(t, segs[0].EOF)
	require.NotNil(t, segs[0].Directive)
	require.True(t, segs[1].EOF)
	require.NotNil(t, segs[1].Directive)

	firstMax := maxOrdinal(segs[0].Directive, 0)
	secondMin := segs[1].Directive.Ordinal
	require.Greater(t, secondMin, firstMax)
}

func maxOrdinal(n *ast.Node, acc int) int {
	if n == nil {
		return acc
	}
	if n.Ordinal > acc {
		acc = n.Ordinal
	}
	for i := 0; i < n.NChildren(); i++ {
		acc = maxOrdinal(n.Child(i), acc)
	}
	return acc
}

func TestStreamingTwoStatementsWithSingleStopsAfterFirst(t *testing.T) {
	var segs []*Segment
	err := ParseSegments([]byte("RETURN 1;\nRETURN 2;"), func(seg *Segment) error {
		segs = append(segs, seg)
		return nil
	}, WithSingle())
	require.NoError(t, err)
	require.Len(t, segs, 1)
	require.False(t, segs[0].EOF)
}

func TestCreateIndexOnLabelProperty(t *testing.T) {
	res, err := Parse([]byte("CREATE INDEX ON :Person(name)"))
	require.NoError(t, err)
	require.Empty(t, res.Errors)
	require.Len(t, res.Roots, 1)

	body := res.Roots[0].Payload.(ast.StatementPayload).Body
	require.Equal(t, ast.KindCreateNodePropIndex, body.Kind)
	require.True(t, body.InstanceOf(ast.KindSchemaCommand))
}

func TestEmptyInputProducesNoRootsAndEOF(t *testing.T) {
	res, err := Parse([]byte(""))
	require.NoError(t, err)
	require.Empty(t, res.Roots)
	require.Empty(t, res.Errors)
}

func TestWhitespaceAndCommentOnlyInputProducesNoRoots(t *testing.T) {
	res, err := Parse([]byte("  \n// just a comment\n  "))
	require.NoError(t, err)
	require.Empty(t, res.Roots)
	require.Empty(t, res.Errors)
}

func TestUnterminatedStatementProducesErrorAtOrBeforeEOF(t *testing.T) {
	res, err := Parse([]byte("MATCH (n"))
	require.NoError(t, err)
	require.NotEmpty(t, res.Errors)
	last := res.Errors[len(res.Errors)-1]
	require.LessOrEqual(t, last.Position.Offset, len("MATCH (n"))
}

func TestComparisonChainAccumulatesIntoOneNode(t *testing.T) {
	res, err := Parse([]byte("RETURN 1 < 2 <= 3"))
	require.NoError(t, err)
	require.Empty(t, res.Errors)
	require.Len(t, res.Roots, 1)

	body := res.Roots[0].Payload.(ast.StatementPayload).Body
	ret := body.Payload.(ast.QueryPayload).Clauses[0]
	expr := ret.Payload.(ast.ReturnPayload).Projections[0].Payload.(ast.ProjectionPayload).Expression
	require.Equal(t, ast.KindComparison, expr.Kind)
	cmp := expr.Payload.(ast.ComparisonPayload)
	require.Len(t, cmp.Operators, 2)
	require.Len(t, cmp.Arguments, 3)
}

func TestNodeRangeCoversEveryChildAcrossParsedTree(t *testing.T) {
	res, err := Parse([]byte("MATCH (n) WHERE n.name = 'a' RETURN n.name AS name ORDER BY name LIMIT 5"))
	require.NoError(t, err)
	require.Empty(t, res.Errors)
	require.Len(t, res.Roots, 1)
	ast.Walk(res.Roots[0], func(n *ast.Node) bool {
		require.True(t, ast.CoversChildren(n), "node %s range does not cover its children", n.TypeName())
		return true
	})
}

func TestWholeInputParseMatchesStreamingParseRootCount(t *testing.T) {
	src := []byte("RETURN 1;\nMATCH (n) RETURN n;\nRETURN 3;")

	whole, err := Parse(src)
	require.NoError(t, err)

	var streamed []*ast.Node
	err = ParseSegments(src, func(seg *Segment) error {
		streamed = append(streamed, seg.Roots...)
		return nil
	})
	require.NoError(t, err)

	require.Equal(t, len(whole.Roots), len(streamed))
	for i := range whole.Roots {
		require.Equal(t, whole.Roots[i].Kind, streamed[i].Kind)
		require.Equal(t, whole.Roots[i].Ordinal, streamed[i].Ordinal)
	}
}

func TestCommandIsParsedAsDistinctDirective(t *testing.T) {
	res, err := Parse([]byte(":help"))
	require.NoError(t, err)
	require.Empty(t, res.Errors)
	require.Len(t, res.Roots, 1)
	require.Equal(t, ast.KindCommand, res.Roots[0].Kind)
	name := res.Roots[0].Payload.(ast.CommandPayload).Name
	require.Equal(t, "help", name.StringValue())
}

func TestOnlyStatementsRejectsCommandForm(t *testing.T) {
	res, err := Parse([]byte(":help"), WithOnlyStatements())
	require.NoError(t, err)
	require.Empty(t, res.Roots)
	require.NotEmpty(t, res.Errors)
}

func TestInitialPositionAndOrdinalAreHonored(t *testing.T) {
	cfg := NewConfig()
	cfg.InitialPosition = ast.Position{Line: 5, Column: 3, Offset: 100}
	cfg.InitialOrdinal = 42

	var got *Segment
	p := FromBytes([]byte("RETURN 1;"), func(c *Config) { *c = cfg })
	err := p.Segments(func(seg *Segment) error {
		got = seg
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 5, got.Range.Start.Line)
	require.Equal(t, 100, got.Range.Start.Offset)
	require.Equal(t, 42, got.Directive.Ordinal)
}

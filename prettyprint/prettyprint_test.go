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

package prettyprint

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cyphergraph/gocypher/ast"
)

func tree(t *testing.T) []*ast.Node {
	t.Helper()
	a, err := ast.NewIdentifier("a", ast.Range{})
	require.NoError(t, err)
	b, err := ast.NewIdentifier("b", ast.Range{})
	require.NoError(t, err)
	coll, err := ast.NewCollection([]*ast.Node{a, b}, ast.Range{End: ast.Position{Offset: 4}})
	require.NoError(t, err)
	ast.AssignOrdinals([]*ast.Node{coll}, 0)
	return []*ast.Node{coll}
}

func TestFprintIsDeterministicForIdenticalInput(t *testing.T) {
	roots := tree(t)
	var a, b bytes.Buffer
	require.NoError(t, Fprint(&a, roots, Config{}))
	require.NoError(t, Fprint(&b, roots, Config{}))
	require.Equal(t, a.String(), b.String())
	require.NotEmpty(t, a.String())
}

func TestFprintAppliesColorsAroundEachColumn(t *testing.T) {
	roots := tree(t)
	var plain, colored bytes.Buffer
	require.NoError(t, Fprint(&plain, roots, Config{}))
	require.NoError(t, Fprint(&colored, roots, Config{Colors: Colors{Type: "<T>", Reset: "</>"}}))
	require.NotEqual(t, plain.String(), colored.String())
	require.Contains(t, colored.String(), "<T>")
	require.Contains(t, colored.String(), "</>")
}

func TestFprintRenderWidthFloorsAtTen(t *testing.T) {
	roots := tree(t)
	var narrow, zero bytes.Buffer
	require.NoError(t, Fprint(&narrow, roots, Config{RenderWidth: wrapFloor}))
	require.NoError(t, Fprint(&zero, roots, Config{RenderWidth: 0}))
	require.Equal(t, narrow.String(), zero.String())
}

func TestEscapeControlsRewritesNewlinesAndTabs(t *testing.T) {
	require.Equal(t, `a\nb\tc\rd`, escapeControls("a\nb\tc\rd"))
}

func TestWrapSplitsAtWidthAndKeepsRemainder(t *testing.T) {
	lines := wrap("abcdefghij", 4)
	require.Equal(t, []string{"abcd", "efgh", "ij"}, lines)
}

func TestWrapShortStringIsSingleLine(t *testing.T) {
	require.Equal(t, []string{"short"}, wrap("short", 80))
}

func TestColorizeNoOpOnEmptyColor(t *testing.T) {
	require.Equal(t, "x", colorize("", "", "x"))
	require.Equal(t, "<x>", colorize("<", ">", "x"))
}

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

// Package prettyprint renders a parsed AST as one indented, column-aligned
// line per node, with a per-kind short-form detail renderer dispatched
// through the same kind-indexed table design ast.New uses for validation.
package prettyprint

import (
	"fmt"
	"io"
	"strings"

	"github.com/cyphergraph/gocypher/ast"
)

// Colors holds the (default empty) ANSI-or-whatever escape sequences
// wrapping each rendered column. A non-empty Reset is appended after each
// non-empty color segment.
type Colors struct {
	Ordinal string
	Range   string
	Indent  string
	Type    string
	Detail  string
	Reset   string
}

// Config controls Fprint's layout.
type Config struct {
	Colors Colors
	// RenderWidth caps the detail column before wrapping to a continuation
	// line; values below the 10-column floor are raised to it.
	RenderWidth int
}

const wrapFloor = 10

// Fprint writes one line per node in roots (and their descendants,
// pre-order) to w.
func Fprint(w io.Writer, roots []*ast.Node, cfg Config) error {
	if cfg.RenderWidth < wrapFloor {
		cfg.RenderWidth = wrapFloor
	}
	pass := &columnPass{}
	for _, r := range roots {
		ast.Walk(r, func(n *ast.Node) bool {
			pass.observe(n)
			return true
		})
	}
	p := &printer{w: w, cfg: cfg, cols: pass}
	for _, r := range roots {
		if err := p.print(r, 0); err != nil {
			return err
		}
	}
	return nil
}

// columnPass precomputes the widths Fprint aligns every line to.
type columnPass struct {
	maxOrdinalWidth int
	maxRangeWidth   int
	maxIndentType   int
	depthByNode     map[*ast.Node]int
}

func (c *columnPass) observe(n *ast.Node) {
	if c.depthByNode == nil {
		c.depthByNode = make(map[*ast.Node]int)
	}
	depth := c.computeDepth(n)
	if w := len(fmt.Sprintf("%d", n.Ordinal)); w > c.maxOrdinalWidth {
		c.maxOrdinalWidth = w
	}
	if w := len(rangeText(n.Range)); w > c.maxRangeWidth {
		c.maxRangeWidth = w
	}
	if w := depth*2 + len(n.TypeName()); w > c.maxIndentType {
		c.maxIndentType = w
	}
}

// computeDepth derives depth from a cache populated by a prior Walk,
// falling back to 0 for the root call (Fprint always visits parents before
// children, so the parent's depth is already cached).
func (c *columnPass) computeDepth(n *ast.Node) int {
	d, ok := c.depthByNode[n]
	if !ok {
		d = 0
		c.depthByNode[n] = d
	}
	for i := 0; i < n.NChildren(); i++ {
		c.depthByNode[n.Child(i)] = d + 1
	}
	return d
}

func rangeText(r ast.Range) string {
	return fmt.Sprintf("%d..%d", r.Start.Offset, r.End.Offset)
}

type printer struct {
	w    io.Writer
	cfg  Config
	cols *columnPass
	err  error
}

func (p *printer) print(n *ast.Node, depth int) error {
	var err error
	ast.Walk(n, func(cur *ast.Node) bool {
		if err != nil {
			return false
		}
		d := p.cols.depthByNode[cur]
		err = p.printOne(cur, d)
		return err == nil
	})
	return err
}

func (p *printer) printOne(n *ast.Node, depth int) error {
	ord := colorize(p.cfg.Colors.Ordinal, p.cfg.Colors.Reset, fmt.Sprintf("@%-*d", p.cols.maxOrdinalWidth, n.Ordinal))
	rng := colorize(p.cfg.Colors.Range, p.cfg.Colors.Reset, fmt.Sprintf("%-*s", p.cols.maxRangeWidth, rangeText(n.Range)))
	indent := strings.Repeat("  ", depth)
	typePad := p.cols.maxIndentType + 2 - len(indent) - len(n.TypeName())
	if typePad < 1 {
		typePad = 1
	}
	typeColored := colorize(p.cfg.Colors.Indent, p.cfg.Colors.Reset, indent) + "> " + colorize(p.cfg.Colors.Type, p.cfg.Colors.Reset, n.TypeName())

	detail := escapeControls(renderDetail(n))
	lines := wrap(detail, p.cfg.RenderWidth)

	detailPrefixWidth := len("@") + p.cols.maxOrdinalWidth + 2 /*spacing*/ + p.cols.maxRangeWidth + 2 /*spacing*/ + len("> ") + p.cols.maxIndentType + 1 /*type pad*/ + 2 /*spacing*/
	for i, line := range lines {
		var out string
		if i == 0 {
			out = fmt.Sprintf("%s  %s  %s%s  %s\n", ord, rng, typeColored, strings.Repeat(" ", typePad-1), colorize(p.cfg.Colors.Detail, p.cfg.Colors.Reset, line))
		} else {
			out = fmt.Sprintf("%s%s\n", strings.Repeat(" ", detailPrefixWidth), colorize(p.cfg.Colors.Detail, p.cfg.Colors.Reset, line))
		}
		if _, err := io.WriteString(p.w, out); err != nil {
			return err
		}
	}
	return nil
}

func colorize(color, reset, s string) string {
	if color == "" {
		return s
	}
	return color + s + reset
}

func escapeControls(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func wrap(s string, width int) []string {
	if len(s) <= width {
		return []string{s}
	}
	var lines []string
	for len(s) > width {
		lines = append(lines, s[:width])
		s = s[width:]
	}
	if len(s) > 0 {
		lines = append(lines, s)
	}
	return lines
}

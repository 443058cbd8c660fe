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

// Command cypherfmt parses a Cypher file (or stdin) and prints either its
// full AST, one indented line per node via prettyprint, or a cheap
// quick-parse listing of its statement/command boundaries.
//
// For a query.cypher holding `RETURN 1;`:
//
// > cypherfmt query.cypher
// @1  0..8  > Statement
// @2  0..8    > Query
// ...
//
// > cypherfmt --quick query.cypher
// statement 1:1-1:10  RETURN 1;
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/cyphergraph/gocypher/internal/logging"
	"github.com/cyphergraph/gocypher/parser"
	"github.com/cyphergraph/gocypher/prettyprint"
)

// stdinDisplayName is the file label used in diagnostics when input comes
// from stdin rather than a named file, matching common CLI convention.
const stdinDisplayName = "<stdin>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run implements the CLI against injected streams so it can be exercised by
// tests without touching the real process stdio.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("cypherfmt", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: cypherfmt [flags] [file]")
		fs.PrintDefaults()
	}

	quick := fs.BoolP("quick", "q", false, "list statement/command boundaries instead of printing the AST")
	single := fs.Bool("single", false, "stop after the first segment")
	onlyStatements := fs.Bool("only-statements", false, "reject the client-command form")
	width := fs.Int("width", 0, "pretty-printer detail column width (0 uses the package default)")
	color := fs.Bool("color", false, "colorize pretty-printed output")
	configPath := fs.String("config", "", "YAML file overriding the initial position and color palette")
	verbose := fs.BoolP("verbose", "v", false, "log each segment as it is produced")

	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	fileCfg, err := loadFileConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "cypherfmt:", err)
		return 1
	}

	var opts []parser.Option
	if *single {
		opts = append(opts, parser.WithSingle())
	}
	if *onlyStatements {
		opts = append(opts, parser.WithOnlyStatements())
	}
	if *verbose {
		opts = append(opts, parser.WithLogger(logging.Default()))
	}

	cfg := parser.NewConfig(opts...)
	fileCfg.applyTo(&cfg)

	in, file, closeIn, err := openInput(args, fs, stdin)
	if err != nil {
		fmt.Fprintln(stderr, "cypherfmt:", err)
		return 1
	}
	if closeIn != nil {
		defer closeIn()
	}

	ppColors := prettyprint.Colors{}
	if *color {
		ppColors = fileCfg.colorsOrDefault()
	}
	ppCfg := prettyprint.Config{Colors: ppColors, RenderWidth: *width}

	if *quick {
		return runQuick(in, cfg, stdout, stderr)
	}
	return runAST(in, file, opts, ppCfg, stdout, stderr)
}

// openInput resolves the single positional argument as a file path, falling
// back to stdin (reported to diagnostics as stdinDisplayName) when none was
// given.
func openInput(args []string, fs *pflag.FlagSet, stdin io.Reader) (r io.Reader, file string, closeFn func() error, err error) {
	rest := fs.Args()
	if len(rest) == 0 {
		return stdin, stdinDisplayName, nil, nil
	}
	f, err := os.Open(rest[0])
	if err != nil {
		return nil, "", nil, err
	}
	return f, rest[0], f.Close, nil
}

func runAST(in io.Reader, file string, opts []parser.Option, ppCfg prettyprint.Config, stdout, stderr io.Writer) int {
	res, err := parser.ParseReader(in, opts...)
	if err != nil {
		fmt.Fprintln(stderr, "cypherfmt:", err)
		return 1
	}
	if err := prettyprint.Fprint(stdout, res.Roots, ppCfg); err != nil {
		fmt.Fprintln(stderr, "cypherfmt:", err)
		return 1
	}
	for _, e := range res.Errors {
		fmt.Fprintln(stderr, e.Format(file))
	}
	if len(res.Errors) > 0 {
		return 1
	}
	return 0
}

func runQuick(in io.Reader, cfg parser.Config, stdout, stderr io.Writer) int {
	err := parser.QuickParse(in, cfg, func(seg parser.QuickSegment) bool {
		kind := "statement"
		if !seg.IsStatement {
			kind = "command"
		}
		fmt.Fprintf(stdout, "%-9s %d:%d-%d:%d  %s\n",
			kind, seg.Range.Start.Line, seg.Range.Start.Column,
			seg.Range.End.Line, seg.Range.End.Column, seg.Text)
		return true
	})
	if err != nil {
		fmt.Fprintln(stderr, "cypherfmt:", err)
		return 1
	}
	return 0
}

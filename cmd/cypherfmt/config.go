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

package main

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/cyphergraph/gocypher/ast"
	"github.com/cyphergraph/gocypher/parser"
	"github.com/cyphergraph/gocypher/prettyprint"
)

// fileConfig is the optional --config YAML shape: an initial position
// override for resuming a parse mid-stream, and a color palette for
// pretty-printed output. Both are optional ambient tooling around the CLI,
// not parser-core settings, so a zero fileConfig changes nothing.
type fileConfig struct {
	InitialLine   int `yaml:"initial_line"`
	InitialColumn int `yaml:"initial_column"`
	InitialOffset int `yaml:"initial_offset"`

	Colors struct {
		Ordinal string `yaml:"ordinal"`
		Range   string `yaml:"range"`
		Indent  string `yaml:"indent"`
		Type    string `yaml:"type"`
		Detail  string `yaml:"detail"`
		Reset   string `yaml:"reset"`
	} `yaml:"colors"`
}

// loadFileConfig reads and parses path if non-empty, returning a zero
// fileConfig (no overrides) when path is empty.
func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// applyTo overrides cfg's initial position when the file set a non-zero
// line, leaving cfg's other fields (including any options already applied)
// untouched.
func (fc fileConfig) applyTo(cfg *parser.Config) {
	if fc.InitialLine == 0 {
		return
	}
	cfg.InitialPosition = ast.Position{
		Line:   fc.InitialLine,
		Column: fc.InitialColumn,
		Offset: fc.InitialOffset,
	}
}

// colorsOrDefault returns the file-configured color palette, or a small
// built-in default when the file didn't set one (or wasn't given).
func (fc fileConfig) colorsOrDefault() prettyprint.Colors {
	c := prettyprint.Colors{
		Ordinal: fc.Colors.Ordinal,
		Range:   fc.Colors.Range,
		Indent:  fc.Colors.Indent,
		Type:    fc.Colors.Type,
		Detail:  fc.Colors.Detail,
		Reset:   fc.Colors.Reset,
	}
	if c == (prettyprint.Colors{}) {
		return prettyprint.Colors{
			Ordinal: "\x1b[2m",
			Type:    "\x1b[36m",
			Detail:  "\x1b[33m",
			Reset:   "\x1b[0m",
		}
	}
	return c
}

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
	"github.com/cyphergraph/gocypher/ast"
	"github.com/cyphergraph/gocypher/internal/logging"
	"github.com/cyphergraph/gocypher/prettyprint"
)

// Config carries the per-parse settings: the position/ordinal a streaming
// parse resumes from, colorization for any diagnostic rendering that reuses
// the pretty-printer's color table shape, and the ambient logger.
type Config struct {
	InitialPosition ast.Position
	InitialOrdinal  int
	Colorization    prettyprint.Colors
	Logger          *logging.Logger

	single         bool
	onlyStatements bool
}

// Option is a functional option configuring flags that other parser
// implementations often represent as a bitmask (SINGLE, ONLY_STATEMENTS);
// idiomatic Go prefers composable option funcs here instead.
type Option func(*Config)

// WithSingle stops the segment loop after the first segment.
func WithSingle() Option { return func(c *Config) { c.single = true } }

// WithOnlyStatements selects the statement-only start rule, rejecting the
// client-command form.
func WithOnlyStatements() Option { return func(c *Config) { c.onlyStatements = true } }

// WithLogger overrides the default discard logger, e.g. so cmd/cypherfmt
// can route parser diagnostics through its own configured logrus instance.
func WithLogger(l *logging.Logger) Option { return func(c *Config) { c.Logger = l } }

// NewConfig builds a Config with the default initial position (1,1,0), a
// no-op logger, and the given options applied.
func NewConfig(opts ...Option) Config {
	c := Config{
		InitialPosition: ast.Position{Line: 1, Column: 1, Offset: 0},
		InitialOrdinal:  1,
		Logger:          logging.Discard(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

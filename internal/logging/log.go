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

// Package logging is the thin logrus adapter shared by the parser and its
// cmd/cypherfmt front end, so call sites log through a small named type
// instead of importing logrus directly.
package logging

import "github.com/sirupsen/logrus"

// Logger wraps a *logrus.Logger, re-exporting the handful of methods the
// parser and CLI actually call.
type Logger struct {
	*logrus.Logger
}

// New wraps an existing logrus.Logger, e.g. one a host application already
// configured with its own formatter and hooks.
func New(l *logrus.Logger) *Logger {
	if l == nil {
		l = logrus.New()
	}
	return &Logger{Logger: l}
}

// Default returns a Logger writing text-formatted entries to its default
// output (stderr) at logrus's default level.
func Default() *Logger {
	return New(logrus.New())
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// Discard returns a Logger that drops everything, the default for a Config
// that hasn't been given an explicit logger.
func Discard() *Logger {
	l := logrus.New()
	l.SetOutput(discard{})
	return New(l)
}

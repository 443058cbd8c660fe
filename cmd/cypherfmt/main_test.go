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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunPrintsASTFromStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader("RETURN 1;"), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Empty(t, stderr.String())
	require.Contains(t, stdout.String(), "Statement")
	require.Contains(t, stdout.String(), "Return")
}

func TestRunQuickModeListsSegments(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--quick"}, strings.NewReader("RETURN 1;\nRETURN 2;"), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Empty(t, stderr.String())
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "statement")
	require.Contains(t, lines[0], "RETURN 1;")
}

func TestRunReadsFromNamedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "q.cypher")
	require.NoError(t, os.WriteFile(path, []byte("RETURN 1;"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, nil, &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "Statement")
}

func TestRunReportsSyntaxErrorsAndNonZeroExit(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader("RETRN 1;"), &stdout, &stderr)
	require.Equal(t, 1, code)
	require.NotEmpty(t, stderr.String())
	require.Contains(t, stderr.String(), "<stdin>:1:1:")
}

func TestRunReportsSyntaxErrorsWithFileNameFromNamedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.cypher")
	require.NoError(t, os.WriteFile(path, []byte("RETRN 1;"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, nil, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), path+":1:1:")
}

func TestRunMissingFileReturnsError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"/no/such/file.cypher"}, nil, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "cypherfmt:")
}

func TestRunAppliesConfigFileInitialPosition(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("initial_line: 5\ninitial_column: 3\ninitial_offset: 100\n"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"--quick", "--config", cfgPath}, strings.NewReader("RETURN 1;"), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "5:3")
}

func TestRunOnlyStatementsRejectsCommandForm(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--only-statements"}, strings.NewReader(":help"), &stdout, &stderr)
	require.Equal(t, 1, code)
}

func TestRunColorFlagAddsEscapeSequences(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--color"}, strings.NewReader("RETURN 1;"), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "\x1b[")
}

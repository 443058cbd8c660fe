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

package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestDiscardDropsEverything(t *testing.T) {
	l := Discard()
	require.NotNil(t, l)
	require.NotPanics(t, func() {
		l.WithFields(map[string]interface{}{"k": "v"}).Info("should be dropped")
	})
}

func TestNewWrapsGivenLogger(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	l := New(base)
	l.WithFields(map[string]interface{}{"roots": 1}).Debug("parsed segment")

	require.Empty(t, buf.String(), "Debug below the default Info level should not be written")

	l.Info("hello")
	require.Contains(t, buf.String(), "hello")
}

func TestNewWithNilBuildsADefaultLogger(t *testing.T) {
	l := New(nil)
	require.NotNil(t, l)
	require.NotNil(t, l.Logger)
}

func TestDefaultReturnsAUsableLogger(t *testing.T) {
	l := Default()
	require.NotNil(t, l)
	require.NotPanics(t, func() { l.Info("default logger works") })
}

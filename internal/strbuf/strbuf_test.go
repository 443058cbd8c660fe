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

package strbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroValueIsReadyToUse(t *testing.T) {
	var b Buffer
	b.AppendString("hi")
	require.Equal(t, "hi", b.String())
	require.Equal(t, 2, b.Len())
}

func TestAppendVariants(t *testing.T) {
	var b Buffer
	b.AppendByte('a')
	b.Append([]byte("bc"))
	b.AppendRune('☃')
	b.AppendString("!")
	require.Equal(t, "abc☃!", b.String())
}

func TestResetEmptiesWithoutReallocating(t *testing.T) {
	var b Buffer
	b.AppendString("hello world this is a longer string")
	data := b.Data()
	cap0 := cap(data)
	b.Reset()
	require.Equal(t, 0, b.Len())
	require.Equal(t, "", b.String())
	b.AppendString("x")
	// The backing array is reused: a short refill keeps the same capacity.
	require.Equal(t, cap0, cap(b.Data()))
}

func TestStringCopySurvivesReset(t *testing.T) {
	var b Buffer
	b.AppendString("abc")
	s := b.String()
	b.Reset()
	b.AppendString("xyz")
	require.Equal(t, "abc", s)
	require.Equal(t, "xyz", b.String())
}

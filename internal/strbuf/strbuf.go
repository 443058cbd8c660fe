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

// Package strbuf is a growable append-only byte buffer used to assemble
// string literals, symbolic names, and digit runs during a grammar rule
// body before the result is copied into an AST node.
//
// Growth rides on Go's native slice-append amortized doubling; there is no
// third-party library in the example pack offering a better fit for a
// private per-parse scratch buffer than the language's own slice growth.
package strbuf

import "unicode/utf8"

// Buffer is a reusable append-only byte buffer. The zero value is ready to
// use.
type Buffer struct {
	data []byte
}

// Reset empties the buffer without releasing its backing storage, so the
// next rule body can reuse the allocation.
func (b *Buffer) Reset() { b.data = b.data[:0] }

// Append appends raw bytes to the buffer.
func (b *Buffer) Append(p []byte) { b.data = append(b.data, p...) }

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) { b.data = append(b.data, c) }

// AppendRune appends the UTF-8 encoding of r.
func (b *Buffer) AppendRune(r rune) { b.data = utf8.AppendRune(b.data, r) }

// AppendString appends a string's bytes.
func (b *Buffer) AppendString(s string) { b.data = append(b.data, s...) }

// Data returns the buffer's current contents. The slice is only valid until
// the next Reset or Append call.
func (b *Buffer) Data() []byte { return b.data }

// String copies the buffer's current contents into a new string, safe to
// retain across a Reset.
func (b *Buffer) String() string { return string(b.data) }

// Len returns the number of buffered bytes.
func (b *Buffer) Len() int { return len(b.data) }

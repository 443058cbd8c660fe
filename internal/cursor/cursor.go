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

// Package cursor presents a forward byte stream to the PEG driver and maps
// any offset within the currently buffered window to a (line, column,
// offset) position, supporting the unbounded backtracking the driver needs.
package cursor

import (
	"bytes"
	"io"
	"sort"

	"github.com/cyphergraph/gocypher/ast"
)

// Cursor buffers everything read since the last call to AdvanceOrigin so the
// driver can rewind to any earlier offset within the window. The window is
// dropped only when the driver explicitly advances the origin past a
// consumed segment boundary.
type Cursor struct {
	r      io.Reader
	buf    []byte
	pos    int
	origin ast.Position
	// lineStarts holds, in increasing order, the buffered offsets of every
	// newline-following line start seen so far. It is popped whenever Reset
	// rewinds pos below a recorded start, matching the PEG driver's free
	// backtracking over consumed newlines.
	lineStarts []int
	eof        bool
	readErr    error
}

// New wraps an io.Reader. Most callers driving a live stream use this
// constructor; FromBytes is the span-based sibling for in-memory input.
func New(r io.Reader) *Cursor {
	return &Cursor{r: r, origin: ast.Position{Line: 1, Column: 1, Offset: 0}}
}

// FromBytes wraps a fixed in-memory span, mirroring the "slice vs. stream"
// constructor pairing used for in-memory inputs elsewhere.
func FromBytes(b []byte) *Cursor {
	c := New(bytes.NewReader(b))
	return c
}

// WithInitialPosition overrides the position assigned to the first buffered
// byte; used when a parse resumes from a prior segment's end position.
func (c *Cursor) WithInitialPosition(p ast.Position) *Cursor {
	c.origin = p
	return c
}

// Mark returns the current buffered offset, to be passed back to Reset for
// backtracking.
func (c *Cursor) Mark() int { return c.pos }

// Reset rewinds the cursor to a previously obtained Mark, popping any line
// starts recorded past that offset.
func (c *Cursor) Reset(mark int) {
	c.pos = mark
	for len(c.lineStarts) > 0 && c.lineStarts[len(c.lineStarts)-1] >= mark {
		c.lineStarts = c.lineStarts[:len(c.lineStarts)-1]
	}
}

// Offset returns the current buffered offset (equivalent to Mark(), named
// separately for call-site clarity when not paired with a later Reset).
func (c *Cursor) Offset() int { return c.pos }

// OriginOffset returns the absolute input offset of the start of the
// currently buffered window, used by the segment loop to translate a
// buffered Mark into an absolute byte count for Window-based context slicing
// after several AdvanceOrigin calls have rebased the window.
func (c *Cursor) OriginOffset() int { return c.origin.Offset }

// fill ensures at least n bytes are buffered past c.pos, short of EOF.
func (c *Cursor) fill(n int) error {
	for !c.eof && len(c.buf)-c.pos < n {
		chunk := make([]byte, 4096)
		read, err := c.r.Read(chunk)
		if read > 0 {
			c.buf = append(c.buf, chunk[:read]...)
		}
		if err != nil {
			if err == io.EOF {
				c.eof = true
				break
			}
			c.readErr = err
			return err
		}
		if read == 0 {
			// A non-conforming io.Reader returning (0, nil); treat as EOF to
			// avoid spinning.
			c.eof = true
			break
		}
	}
	return nil
}

// Peek returns the byte at the given lookahead offset from the current
// position (0 = the next unread byte) without consuming it. ok is false at
// end of stream.
func (c *Cursor) Peek(lookahead int) (b byte, ok bool, err error) {
	if err := c.fill(lookahead + 1); err != nil {
		return 0, false, err
	}
	if c.pos+lookahead >= len(c.buf) {
		return 0, false, nil
	}
	return c.buf[c.pos+lookahead], true, nil
}

// Next consumes and returns the next byte, advancing the line-start index
// when it is a newline. ok is false at end of stream.
func (c *Cursor) Next() (b byte, ok bool, err error) {
	b, ok, err = c.Peek(0)
	if err != nil || !ok {
		return b, ok, err
	}
	c.pos++
	if b == '\n' {
		c.lineStarts = append(c.lineStarts, c.pos)
	}
	return b, true, nil
}

// AtEOF reports whether the stream is exhausted with no more bytes
// buffered past the current position.
func (c *Cursor) AtEOF() bool {
	if err := c.fill(1); err != nil {
		return false
	}
	return c.eof && c.pos >= len(c.buf)
}

// ReadErr returns the last non-EOF error observed from the underlying
// reader, if any.
func (c *Cursor) ReadErr() error { return c.readErr }

// Position computes the (line, column, offset) of a buffered offset
// relative to the cursor's current origin and line-start index. offset must
// be within [0, len(buf)]. lineStarts is kept sorted ascending (appended to
// in increasing order by Next, only ever truncated from the end by Reset),
// so the line containing offset is found by binary search, O(log n) in the
// number of lines.
func (c *Cursor) Position(offset int) ast.Position {
	// idx is the count of line starts <= offset, i.e. how many newlines
	// precede offset within the buffered window.
	idx := sort.Search(len(c.lineStarts), func(i int) bool {
		return c.lineStarts[i] > offset
	})
	line := c.origin.Line + idx
	lineStart := 0
	if idx > 0 {
		lineStart = c.lineStarts[idx-1]
	}
	col := offset - lineStart + 1
	if lineStart == 0 {
		col = c.origin.Column + offset
	}
	return ast.Position{Line: line, Column: col, Offset: c.origin.Offset + offset}
}

// CurrentPosition is shorthand for Position(Offset()).
func (c *Cursor) CurrentPosition() ast.Position { return c.Position(c.pos) }

// Window returns the buffered bytes from start to end (buffered offsets),
// used to slice error-context text.
func (c *Cursor) Window(start, end int) []byte {
	if start < 0 {
		start = 0
	}
	if end > len(c.buf) {
		end = len(c.buf)
	}
	if start > end {
		start = end
	}
	return c.buf[start:end]
}

// AdvanceOrigin drops the buffered window up to consumed bytes, rebases the
// origin position to the end of that span, and resets the line-start index
// for the new window. Called by the segment loop after a segment is
// finalized so backtracking within the next segment cannot see past it.
func (c *Cursor) AdvanceOrigin(consumed int) {
	end := c.Position(consumed)
	c.buf = append([]byte(nil), c.buf[consumed:]...)
	c.pos -= consumed
	if c.pos < 0 {
		c.pos = 0
	}
	newLineStarts := make([]int, 0, len(c.lineStarts))
	for _, ls := range c.lineStarts {
		if ls > consumed {
			newLineStarts = append(newLineStarts, ls-consumed)
		}
	}
	c.lineStarts = newLineStarts
	c.origin = end
}

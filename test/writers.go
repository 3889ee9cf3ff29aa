// This file is part of VM2600.
//
// VM2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// VM2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VM2600.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"fmt"
	"strings"
)

// CompareWriter is an implementation of the io.Writer interface. It should be
// used to capture output and to compare with predefined strings.
type CompareWriter struct {
	buffer []byte
}

func (tw *CompareWriter) Write(p []byte) (n int, err error) {
	tw.buffer = append(tw.buffer, p...)
	return len(p), nil
}

// Clear string empties the write buffer.
func (tw *CompareWriter) Clear() {
	tw.buffer = tw.buffer[:0]
}

// Compare buffered output with predefined/example string.
func (tw *CompareWriter) Compare(s string) bool {
	return s == string(tw.buffer)
}

// Lines returns the buffered output split into lines. A trailing newline
// does not produce an empty final line.
func (tw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(string(tw.buffer), "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}

func (tw *CompareWriter) String() string {
	return string(tw.buffer)
}

// RingWriter is an implementation of the io.Writer interface that keeps only
// the most recent bytes written to it. Useful for capturing the tail of very
// long output, such as an execution trace.
type RingWriter struct {
	buffer []byte
	size   int
}

// NewRingWriter is the preferred method of initialisation for the RingWriter type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("ring writer: invalid size (%d)", size)
	}
	return &RingWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

func (r *RingWriter) String() string {
	return string(r.buffer)
}

// Reset empties the ring.
func (r *RingWriter) Reset() {
	r.buffer = r.buffer[:0]
}

func (r *RingWriter) Write(p []byte) (n int, err error) {
	if len(p) >= r.size {
		r.buffer = append(r.buffer[:0], p[len(p)-r.size:]...)
		return len(p), nil
	}

	if over := len(r.buffer) + len(p) - r.size; over > 0 {
		copy(r.buffer, r.buffer[over:])
		r.buffer = r.buffer[:len(r.buffer)-over]
	}
	r.buffer = append(r.buffer, p...)

	return len(p), nil
}

// CappedWriter is an implementation of the io.Writer interface that stops
// accepting bytes once a limit has been reached. Writes past the limit are
// silently dropped.
type CappedWriter struct {
	buffer []byte
	limit  int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(limit int) (*CappedWriter, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("capped writer: invalid limit (%d)", limit)
	}
	return &CappedWriter{
		limit:  limit,
		buffer: make([]byte, 0, limit),
	}, nil
}

func (c *CappedWriter) String() string {
	return string(c.buffer)
}

// Reset empties the buffer.
func (c *CappedWriter) Reset() {
	c.buffer = c.buffer[:0]
}

func (c *CappedWriter) Write(p []byte) (n int, err error) {
	room := c.limit - len(c.buffer)
	c.buffer = append(c.buffer, p[:min(room, len(p))]...)
	return len(p), nil
}

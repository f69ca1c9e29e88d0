// Package cursor implements the source cursor the parser scans through: a
// byte position over an in-memory buffer, with CRLF collapsed to a single
// newline transition and on-demand (line, column) conversion for error
// reporting.
package cursor

// Cursor tracks a byte position within buf. buf may be the caller's
// immutable source (owned-mode parse) or a mutable buffer the parser
// rewrites in place (view-mode parse); Cursor itself never writes to buf.
type Cursor struct {
	buf []byte
	pos int
}

// New returns a Cursor positioned at the start of buf.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current zero-based byte position.
func (c *Cursor) Pos() int { return c.pos }

// Eof reports whether the cursor has consumed the entire buffer.
func (c *Cursor) Eof() bool { return c.pos >= len(c.buf) }

// Current returns the byte at the cursor, or NUL at EOF.
func (c *Cursor) Current() byte {
	if c.Eof() {
		return 0
	}
	return c.buf[c.pos]
}

// PeekNext returns the byte one past the cursor, or NUL if that would be
// past EOF.
func (c *Cursor) PeekNext() byte {
	if c.pos+1 >= len(c.buf) {
		return 0
	}
	return c.buf[c.pos+1]
}

// Advance moves the cursor forward one byte. A CR immediately followed by
// LF is treated as a single newline transition: advancing past the CR also
// consumes the LF.
func (c *Cursor) Advance() {
	if c.Eof() {
		return
	}
	wasCR := c.buf[c.pos] == '\r'
	c.pos++
	if wasCR && c.pos < len(c.buf) && c.buf[c.pos] == '\n' {
		c.pos++
	}
}

// PositionToLineColumn converts a byte offset into the buffer's current
// contents to a 1-based (line, column) pair, counting LF bytes from the
// start of the buffer. CR alone does not advance the line; a CRLF pair
// does, because the LF is counted.
//
// This is only ever called to format an error location, so a linear scan
// per call is acceptable. In view-mode parses the buffer may already have
// been rewritten in place ahead of p by earlier escape/base64 decoding;
// this walks whatever bytes currently occupy [0, p), by design (see
// DESIGN.md).
func (c *Cursor) PositionToLineColumn(p int) (line, column int) {
	line = 1
	lineStart := 0
	if p > len(c.buf) {
		p = len(c.buf)
	}
	for i := 0; i < p; i++ {
		if c.buf[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, p - lineStart + 1
}

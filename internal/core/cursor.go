package core

import "strings"

// LineCursor walks the trimmed lines of a descriptor. Parse functions
// receive the cursor positioned on their keyword line and report how many
// lines they consumed; only the main loop moves the cursor.
type LineCursor struct {
	lines []string
	pos   int
}

// NewLineCursor creates a cursor over lines, trimming each of them.
func NewLineCursor(lines []string) *LineCursor {
	trimmed := make([]string, len(lines))
	for i, l := range lines {
		trimmed[i] = strings.TrimSpace(l)
	}
	return &LineCursor{lines: trimmed}
}

// Done reports whether all lines were consumed.
func (c *LineCursor) Done() bool {
	return c.pos >= len(c.lines)
}

// Current returns the line under the cursor.
func (c *LineCursor) Current() string {
	if c.Done() {
		return ""
	}
	return c.lines[c.pos]
}

// LineNo returns the 1-based number of the current line.
func (c *LineCursor) LineNo() int {
	return c.pos + 1
}

// Lookahead returns the n-th line after the current one.
func (c *LineCursor) Lookahead(n int) (string, bool) {
	i := c.pos + n
	if n < 0 || i >= len(c.lines) {
		return "", false
	}
	return c.lines[i], true
}

// Advance moves the cursor n lines forward.
func (c *LineCursor) Advance(n int) {
	c.pos += n
	if c.pos > len(c.lines) {
		c.pos = len(c.lines)
	}
}

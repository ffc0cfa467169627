// Package scan provides the byte-level primitives the block and inline
// packages build their recognizers on: a position-tracking cursor plus
// small bounded-repeat and classification helpers. Nothing here allocates
// per call; recognizers compose these into larger ones by hand instead of
// through a combinator/regexp layer.
package scan

// Cursor tracks a read position into a fixed source buffer along with the
// run of plain spaces most recently consumed but not yet committed to the
// container spine. Block-level container matching needs to know how many
// of those spaces it is allowed to claim for indentation before handing
// the rest to the next leaf recognizer, hence Spaces is tracked separately
// from Pos rather than being folded back into it immediately.
type Cursor struct {
	Src    []byte
	Pos    int
	Spaces int
}

// New returns a cursor positioned at the start of src.
func New(src []byte) *Cursor {
	return &Cursor{Src: src}
}

// Bytes returns the unread remainder of the source.
func (c *Cursor) Bytes() []byte {
	return c.Src[c.Pos:]
}

// Len returns the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.Src) - c.Pos
}

// AtEOF reports whether the cursor has consumed the whole source.
func (c *Cursor) AtEOF() bool {
	return c.Pos >= len(c.Src)
}

// Start returns the current absolute byte offset.
func (c *Cursor) Start() int {
	return c.Pos
}

// Forward advances the cursor by n bytes and clears any pending space count.
func (c *Cursor) Forward(n int) {
	c.Pos += n
	c.Spaces = 0
}

// ForwardTo sets the cursor to the absolute offset pos and clears pending spaces.
func (c *Cursor) ForwardTo(pos int) {
	c.Pos = pos
	c.Spaces = 0
}

// ConsumeSpaces advances past up to max leading spaces (not tabs) and
// records how many were actually consumed in Spaces, for a caller that
// needs to know how much indentation remains available after a container
// marker claimed some of it.
func (c *Cursor) ConsumeSpaces(max int) int {
	n := 0
	b := c.Bytes()
	for n < max && n < len(b) && b[n] == ' ' {
		n++
	}
	c.Pos += n
	c.Spaces = n
	return n
}

// ResetSpaces clears the pending space count without moving Pos.
func (c *Cursor) ResetSpaces() {
	c.Spaces = 0
}

// Peek returns the byte at offset i past the cursor, or 0 if out of range.
func (c *Cursor) Peek(i int) byte {
	p := c.Pos + i
	if p < 0 || p >= len(c.Src) {
		return 0
	}
	return c.Src[p]
}

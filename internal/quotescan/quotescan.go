// Package quotescan provides a byte-cursor that tracks single- and
// double-quote state while scanning a shell input line. It factors out the
// "am I inside a quote right now" bookkeeping that the lexer, the expander,
// and the heredoc collector would otherwise each reimplement.
package quotescan

// Cursor iterates byte-by-byte over a line, tracking whether the current
// position lies inside a single-quoted or double-quoted run. Unlike a
// generic string scanner, Cursor understands shell quoting rules
// specifically: inside single quotes nothing is special, inside double
// quotes only '$' keeps meaning.
type Cursor struct {
	src    string
	pos    int
	inSgl  bool
	inDbl  bool
	closed quoteKind
}

type quoteKind byte

const (
	noQuote quoteKind = iota
	closedSingle
	closedDouble
)

// New creates a Cursor over src. Call Next to advance to the first byte.
func New(src string) *Cursor {
	return &Cursor{src: src, pos: -1}
}

// Next advances to the next byte, updating quote state. Returns the byte
// and true, or (0, false) at end of input.
func (c *Cursor) Next() (byte, bool) {
	c.closed = noQuote
	c.pos++
	if c.pos >= len(c.src) {
		return 0, false
	}
	ch := c.src[c.pos]

	switch {
	case ch == '\'' && !c.inDbl:
		if c.inSgl {
			c.closed = closedSingle
		}
		c.inSgl = !c.inSgl
	case ch == '"' && !c.inSgl:
		if c.inDbl {
			c.closed = closedDouble
		}
		c.inDbl = !c.inDbl
	}

	return ch, true
}

// InSingle reports whether the current position is inside a single-quoted
// run, including the closing quote itself.
func (c *Cursor) InSingle() bool { return c.inSgl || c.closed == closedSingle }

// InDouble reports whether the current position is inside a double-quoted
// run, including the closing quote itself.
func (c *Cursor) InDouble() bool { return c.inDbl || c.closed == closedDouble }

// InQuote reports whether the current position is inside any quoting.
func (c *Cursor) InQuote() bool { return c.InSingle() || c.InDouble() }

// Pos returns the current byte offset. Returns -1 before the first Next.
func (c *Cursor) Pos() int { return c.pos }

// Peek returns the next byte without advancing, or (0, false) at end.
func (c *Cursor) Peek() (byte, bool) {
	if c.pos+1 >= len(c.src) {
		return 0, false
	}
	return c.src[c.pos+1], true
}

// LookingAt reports whether src[pos:] starts with prefix, used to detect
// two-character operators like "<<" and ">>" before falling back to their
// one-character forms.
func (c *Cursor) LookingAt(prefix string) bool {
	if c.pos < 0 || c.pos >= len(c.src) {
		return false
	}
	end := c.pos + len(prefix)
	if end > len(c.src) {
		return false
	}
	return c.src[c.pos:end] == prefix
}

// IsNameByte reports whether b can appear in a shell variable name
// (alphanumeric or underscore).
func IsNameByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// IsNameStart reports whether b can start a shell variable name
// (alphabetic or underscore).
func IsNameStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

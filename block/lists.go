package block

import "github.com/mdxor/compiler/internal/scan"

// listMarker describes a recognized list item marker at the start of a line.
type listMarker struct {
	ordered    bool
	ch         byte // bullet char, or the ordered terminator '.'/')'
	start      int  // parsed numeric value for ordered markers
	markerLen  int  // bytes consumed by the marker itself (digits+terminator, or the bullet byte)
	indent     int  // leading spaces before the marker (0-3)
	afterWS    int  // whitespace bytes consumed after the marker, up to 4
	contentCol int  // total column the item's content begins at
}

// scanListMarker recognizes a bullet ("-", "+", "*") or ordered ("12." /
// "3)") list marker at the start of b, requiring it to be followed by a
// space, a tab, or the end of the line (an otherwise-empty list item).
// Ordered markers carry at most 9 digits, matching the reference grammar.
func scanListMarker(b []byte) (listMarker, bool) {
	indent := leadingSpaces(b)
	rest := b[indent:]
	if len(rest) == 0 {
		return listMarker{}, false
	}

	var m listMarker
	m.indent = indent

	switch {
	case rest[0] == '-' || rest[0] == '+' || rest[0] == '*':
		m.ch = rest[0]
		m.markerLen = 1
		rest = rest[1:]
	default:
		digits, n := scan.TakeWhile(rest, scan.IsASCIIDigit)
		_ = digits
		if n == 0 || n > 9 {
			return listMarker{}, false
		}
		if len(rest) <= n || (rest[n] != '.' && rest[n] != ')') {
			return listMarker{}, false
		}
		value := 0
		for _, c := range rest[:n] {
			value = value*10 + int(c-'0')
		}
		m.ordered = true
		m.ch = rest[n]
		m.start = value
		m.markerLen = n + 1
		rest = rest[n+1:]
	}

	// Marker must be followed by whitespace or be alone on the line
	// (an empty list item), never directly by other content.
	if len(rest) > 0 && rest[0] != ' ' && rest[0] != '\t' {
		return listMarker{}, false
	}

	ws := leadingSpaceLen(rest)
	if ws > 4 {
		ws = 1 // a very wide gap just means "one space" of indent, rest is its own indented content
	}
	if ws == 0 && len(rest) == 0 {
		// marker alone on the line: item content starts one column past marker
		ws = 1
	}
	m.afterWS = ws
	m.contentCol = indent + m.markerLen + ws
	return m, true
}

// blockQuoteMarker reports whether b opens/continues a block quote: up to
// 3 leading spaces, then '>', optionally followed by one space which is
// also consumed.
func blockQuoteMarker(b []byte) (contentStart int, ok bool) {
	indent := leadingSpaces(b)
	rest := b[indent:]
	if len(rest) == 0 || rest[0] != '>' {
		return 0, false
	}
	n := indent + 1
	if len(rest) > 1 && rest[1] == ' ' {
		n++
	}
	return n, true
}

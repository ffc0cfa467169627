package scan

// Tag reports whether bytes starts with tag, returning the remainder and ok.
func Tag(b []byte, tag []byte) ([]byte, bool) {
	if len(tag) > len(b) {
		return nil, false
	}
	for i := range tag {
		if b[i] != tag[i] {
			return nil, false
		}
	}
	return b[len(tag):], true
}

// SingleChar reports whether b starts with ch, returning the remainder and ok.
func SingleChar(b []byte, ch byte) ([]byte, bool) {
	if len(b) > 0 && b[0] == ch {
		return b[1:], true
	}
	return nil, false
}

// ChRepeat consumes a run of ch at the start of b, returning the remainder
// and the run length (which may be zero).
func ChRepeat(b []byte, ch byte) ([]byte, int) {
	n := 0
	for n < len(b) && b[n] == ch {
		n++
	}
	return b[n:], n
}

// TakeWhile consumes bytes satisfying f, returning the remainder and count.
func TakeWhile(b []byte, f func(byte) bool) ([]byte, int) {
	n := 0
	for n < len(b) && f(b[n]) {
		n++
	}
	return b[n:], n
}

// ChRepeatMin consumes a run of ch, requiring at least min repeats.
func ChRepeatMin(b []byte, ch byte, min int) ([]byte, int, bool) {
	rest, n := ChRepeat(b, ch)
	if n < min {
		return nil, 0, false
	}
	return rest, n, true
}

// ChRepeatMax consumes a run of ch, failing if more than max repeats appear.
func ChRepeatMax(b []byte, ch byte, max int) ([]byte, int, bool) {
	n := 0
	for n < len(b) && b[n] == ch {
		n++
		if n > max {
			return nil, 0, false
		}
	}
	return b[n:], n, true
}

// ChRepeatMinMax consumes a run of ch bounded on both ends.
func ChRepeatMinMax(b []byte, ch byte, min, max int) ([]byte, int, bool) {
	rest, n, ok := ChRepeatMax(b, ch, max)
	if !ok || n < min {
		return nil, 0, false
	}
	return rest, n, true
}

// Spaces0 consumes zero or more spaces, always succeeding.
func Spaces0(b []byte) ([]byte, int) {
	return TakeWhile(b, func(c byte) bool { return c == ' ' })
}

// EOL consumes a single line ending ("\r\n", "\n", or "\r"), or succeeds
// with zero length at end of input.
func EOL(b []byte) ([]byte, int, bool) {
	if len(b) == 0 {
		return b, 0, true
	}
	switch b[0] {
	case '\n':
		return b[1:], 1, true
	case '\r':
		if len(b) > 1 && b[1] == '\n' {
			return b[2:], 2, true
		}
		return b[1:], 1, true
	}
	return nil, 0, false
}

// EOLOrSpace matches a single space (consuming it) or a line ending/end of
// input (not consuming it).
func EOLOrSpace(b []byte) ([]byte, int, bool) {
	if len(b) == 0 {
		return b, 0, true
	}
	switch b[0] {
	case '\r', '\n':
		return b, 0, true
	case ' ':
		return b[1:], 1, true
	}
	return nil, 0, false
}

// SpacesEOL matches a run of spaces followed by a line ending; fails if a
// non-space, non-eol byte appears first, or if input ends before a line
// ending.
func SpacesEOL(b []byte) ([]byte, int, bool) {
	n := 0
	for n < len(b) {
		switch b[n] {
		case '\r':
			if n+1 < len(b) && b[n+1] == '\n' {
				return b[n+2:], n + 2, true
			}
			return b[n+1:], n + 1, true
		case '\n':
			return b[n+1:], n + 1, true
		case ' ':
			n++
		default:
			return nil, 0, false
		}
	}
	return nil, 0, false
}

// OneLine returns (sizeWithEOL, sizeWithoutEOL) for the line starting at b.
func OneLine(b []byte) (int, int) {
	_, withoutEOL := TakeWhile(b, func(c byte) bool { return c != '\r' && c != '\n' })
	_, eolSize, _ := EOL(b[withoutEOL:])
	return withoutEOL + eolSize, withoutEOL
}

func IsASCIIDigit(c byte) bool { return c >= '0' && c <= '9' }

func IsASCIIAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func IsASCIIWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func IsASCIIWhitespaceNoNL(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\f', '\v':
		return true
	}
	return false
}

// Package jsx implements the embedded component/expression grammar: a
// small hand-written recursive-descent recognizer for a JSX-like element
// syntax (`<Tag attr={expr}>children</Tag>`, self-closing tags,
// fragments) used both as a block-level recognizer (a line starting with
// `<`) and an inline one (a `<Tag>` appearing inside running text; a bare
// `{expr}` in running text is left as text, and `{...}` expressions are
// recognized only inside elements). It does not parse or type-check the JavaScript inside `{...}`
// expressions; it only needs to find where such an expression ends, which
// requires being aware of string, template-literal and bracket nesting so
// that a brace inside a string or a nested object literal doesn't end the
// expression early.
package jsx

// skipSpaces advances past ASCII spaces, tabs and line endings.
func skipSpaces(src []byte, pos int) int {
	for pos < len(src) {
		switch src[pos] {
		case ' ', '\t', '\n', '\r':
			pos++
		default:
			return pos
		}
	}
	return pos
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// scanTagName consumes a JSX tag/member-expression name: identifier
// characters, '.' (member access, e.g. `<Foo.Bar>`) and '-' (custom
// elements, e.g. `<my-widget>`).
func scanTagName(src []byte, pos int) int {
	if pos >= len(src) || !isIdentStart(src[pos]) {
		return pos
	}
	pos++
	for pos < len(src) && (isIdentPart(src[pos]) || src[pos] == '.' || src[pos] == '-') {
		pos++
	}
	return pos
}

// scanAttrName consumes a JSX attribute name: identifiers plus '-' and
// ':' for things like `data-id` and rare namespaced attributes.
func scanAttrName(src []byte, pos int) int {
	if pos >= len(src) || !isIdentStart(src[pos]) {
		return pos
	}
	pos++
	for pos < len(src) && (isIdentPart(src[pos]) || src[pos] == '-' || src[pos] == ':') {
		pos++
	}
	return pos
}

// scanStringLiteral scans a single- or double-quoted string literal
// starting at pos (src[pos] == quote), returning the offset one past the
// closing quote.
func scanStringLiteral(src []byte, pos int, quote byte) (int, bool) {
	pos++ // opening quote
	for pos < len(src) {
		switch src[pos] {
		case '\\':
			pos += 2
			continue
		case quote:
			return pos + 1, true
		case '\n':
			return 0, false
		}
		pos++
	}
	return 0, false
}

// scanTemplateLiteral scans a backtick template literal starting at pos
// (src[pos] == '`'), recursing through any `${...}` interpolations (which
// may themselves contain strings, templates or nested braces), returning
// the offset one past the closing backtick.
func scanTemplateLiteral(src []byte, pos int) (int, bool) {
	pos++ // opening backtick
	for pos < len(src) {
		switch src[pos] {
		case '\\':
			pos += 2
			continue
		case '`':
			return pos + 1, true
		case '$':
			if pos+1 < len(src) && src[pos+1] == '{' {
				close, ok := matchBrace(src, pos+1)
				if !ok {
					return 0, false
				}
				pos = close + 1
				continue
			}
		}
		pos++
	}
	return 0, false
}

// matchBrace returns the offset of the '}' matching the '{' at openPos,
// skipping over string and template literal contents so braces inside
// them are not mistaken for structural ones.
func matchBrace(src []byte, openPos int) (int, bool) {
	depth := 1
	pos := openPos + 1
	for pos < len(src) {
		switch src[pos] {
		case '"', '\'':
			end, ok := scanStringLiteral(src, pos, src[pos])
			if !ok {
				return 0, false
			}
			pos = end
			continue
		case '`':
			end, ok := scanTemplateLiteral(src, pos)
			if !ok {
				return 0, false
			}
			pos = end
			continue
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return pos, true
			}
		}
		pos++
	}
	return 0, false
}

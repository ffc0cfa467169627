package inline

import "github.com/mdxor/compiler/ast"

// tryCodeSpan recognizes a code span: a run of N backticks, content, then
// a run of exactly N backticks. The backtick run lengths must match
// exactly; a run of a different length inside the content is just part of
// the code. If a single leading and trailing space surround content that
// isn't all whitespace, both are stripped (lets a code span start or end
// with a literal backtick: `` `foo` ``).
func tryCodeSpan(src []byte, pos, end int) (*ast.Inline, int, bool) {
	openStart := pos
	n := pos
	for n < end && src[n] == '`' {
		n++
	}
	openLen := n - openStart
	contentStart := n

	for n < end {
		if src[n] == '`' {
			closeStart := n
			for n < end && src[n] == '`' {
				n++
			}
			if n-closeStart == openLen {
				spans := codeSpans(src, contentStart, closeStart)
				return &ast.Inline{Kind: ast.InlineCode, Spans: spans}, n, true
			}
			continue
		}
		n++
	}
	return nil, 0, false
}

// codeSpans trims one leading and one trailing space from [start, end) when
// both are present and the content isn't all whitespace.
func codeSpans(src []byte, start, end int) []ast.Span {
	if end-start >= 2 && src[start] == ' ' && src[end-1] == ' ' && !allSpace(src[start:end]) {
		start++
		end--
	}
	return []ast.Span{{Start: start, End: end}}
}

func allSpace(b []byte) bool {
	for _, c := range b {
		if c != ' ' {
			return false
		}
	}
	return true
}

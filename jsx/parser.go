package jsx

import "github.com/mdxor/compiler/ast"

// DefaultMaxDepth bounds element/expression nesting when a caller has no
// more specific depth budget of its own to pass in.
const DefaultMaxDepth = 100

// ParseElement attempts to parse one element or fragment starting exactly
// at pos, where src[pos] must be '<'. It returns the parsed node, the
// offset one past its closing tag, and whether parsing succeeded. Failure
// never panics and never partially mutates caller state; the caller falls
// back to treating the '<' as ordinary text. maxDepth bounds how deeply
// elements may nest inside one another and inside expression children;
// parsing fails once it is exceeded rather than recursing unboundedly.
func ParseElement(src []byte, pos int, maxDepth int) (*ast.ElementNode, int, bool) {
	return parseElement(src, pos, 0, maxDepth)
}

func parseElement(src []byte, pos, depth, maxDepth int) (*ast.ElementNode, int, bool) {
	if depth > maxDepth {
		return nil, 0, false
	}
	if pos >= len(src) || src[pos] != '<' {
		return nil, 0, false
	}
	pos++

	if pos < len(src) && src[pos] == '>' {
		children, end, ok := parseChildren(src, pos+1, "", depth, maxDepth)
		if !ok {
			return nil, 0, false
		}
		return &ast.ElementNode{Children: children}, end, true
	}

	if pos >= len(src) || !isIdentStart(src[pos]) {
		return nil, 0, false
	}
	tagStart := pos
	pos = scanTagName(src, pos)
	tag := string(src[tagStart:pos])

	attrs, pos, ok := parseAttributes(src, pos, depth, maxDepth)
	if !ok {
		return nil, 0, false
	}
	pos = skipSpaces(src, pos)

	if pos+1 < len(src) && src[pos] == '/' && src[pos+1] == '>' {
		return &ast.ElementNode{Tag: tag, Attributes: attrs}, pos + 2, true
	}
	if pos >= len(src) || src[pos] != '>' {
		return nil, 0, false
	}
	pos++

	children, end, ok := parseChildren(src, pos, tag, depth, maxDepth)
	if !ok {
		return nil, 0, false
	}
	return &ast.ElementNode{Tag: tag, Attributes: attrs, Children: children}, end, true
}

// parseAttributes parses the attribute list following a tag name, up to
// but not including the closing '>' or self-closing '/>'.
func parseAttributes(src []byte, pos, depth, maxDepth int) ([]ast.Attribute, int, bool) {
	var attrs []ast.Attribute
	for {
		pos = skipSpaces(src, pos)
		if pos >= len(src) {
			return nil, 0, false
		}
		if src[pos] == '/' || src[pos] == '>' {
			return attrs, pos, true
		}
		if src[pos] == '{' {
			close, ok := matchBrace(src, pos)
			if !ok {
				return nil, 0, false
			}
			inner := pos + 1
			if inner+3 > close || string(src[inner:inner+3]) != "..." {
				return nil, 0, false
			}
			segs := parseExpressionSegments(src, inner+3, close, depth, maxDepth)
			attrs = append(attrs, ast.Attribute{Kind: ast.AttrSpread, Expr: segs})
			pos = close + 1
			continue
		}
		if !isIdentStart(src[pos]) {
			return nil, 0, false
		}
		keyStart := pos
		pos = scanAttrName(src, pos)
		keySpan := ast.Span{Start: keyStart, End: pos}
		pos = skipSpaces(src, pos)
		if pos < len(src) && src[pos] == '=' {
			pos++
			pos = skipSpaces(src, pos)
			if pos >= len(src) {
				return nil, 0, false
			}
			switch src[pos] {
			case '"', '\'':
				end, ok := scanStringLiteral(src, pos, src[pos])
				if !ok {
					return nil, 0, false
				}
				attrs = append(attrs, ast.Attribute{
					Kind:  ast.AttrKeyLiteralValue,
					Key:   keySpan,
					Value: ast.Span{Start: pos + 1, End: end - 1},
				})
				pos = end
			case '{':
				close, ok := matchBrace(src, pos)
				if !ok {
					return nil, 0, false
				}
				segs := parseExpressionSegments(src, pos+1, close, depth, maxDepth)
				attrs = append(attrs, ast.Attribute{Kind: ast.AttrKeyValue, Key: keySpan, Expr: segs})
				pos = close + 1
			default:
				return nil, 0, false
			}
		} else {
			attrs = append(attrs, ast.Attribute{Kind: ast.AttrKeyTrue, Key: keySpan})
		}
	}
}

// parseChildren parses element/fragment children up to and including the
// matching closing tag, returning the offset one past it. The closing
// tag's dotted name must exactly equal tag (the empty string for a
// fragment's "</>"); a mismatched close tag fails the whole element so the
// caller falls back to treating it as text, per the "close tag's dotted
// name must exactly equal the open tag" rule.
func parseChildren(src []byte, pos int, tag string, depth, maxDepth int) ([]ast.Child, int, bool) {
	var children []ast.Child
	textStart := pos
	for {
		if pos >= len(src) {
			return nil, 0, false
		}
		switch src[pos] {
		case '<':
			if pos+1 < len(src) && src[pos+1] == '/' {
				closeStart := pos + 2
				p := closeStart
				for p < len(src) && src[p] != '>' {
					p++
				}
				if p >= len(src) {
					return nil, 0, false
				}
				if string(src[closeStart:p]) != tag {
					return nil, 0, false
				}
				if pos > textStart {
					children = append(children, textChild(textStart, pos))
				}
				return children, p + 1, true
			}
			if el, end, ok := parseElement(src, pos, depth+1, maxDepth); ok {
				if pos > textStart {
					children = append(children, textChild(textStart, pos))
				}
				children = append(children, ast.Child{Kind: ast.ChildElement, Element: el})
				pos = end
				textStart = pos
				continue
			}
			pos++
		case '{':
			close, ok := matchBrace(src, pos)
			if !ok {
				pos++
				continue
			}
			if pos > textStart {
				children = append(children, textChild(textStart, pos))
			}
			segs := parseExpressionSegments(src, pos+1, close, depth, maxDepth)
			children = append(children, ast.Child{Kind: ast.ChildExpression, Expr: segs})
			pos = close + 1
			textStart = pos
		default:
			pos++
		}
	}
}

func textChild(start, end int) ast.Child {
	return ast.Child{Kind: ast.ChildText, Text: ast.Span{Start: start, End: end}}
}

// parseExpressionSegments splits the JS expression source in [start, end)
// into alternating raw-JS and nested-element segments, the way a
// conditional or array expression can embed further JSX inside `{...}`.
func parseExpressionSegments(src []byte, start, end int, depth, maxDepth int) []ast.ExpressionSegment {
	var segs []ast.ExpressionSegment
	pos := start
	jsStart := start
	for pos < end {
		switch src[pos] {
		case '"', '\'':
			if e, ok := scanStringLiteral(src, pos, src[pos]); ok && e <= end {
				pos = e
				continue
			}
			pos++
		case '`':
			if e, ok := scanTemplateLiteral(src, pos); ok && e <= end {
				pos = e
				continue
			}
			pos++
		case '<':
			if el, e, ok := parseElement(src, pos, depth+1, maxDepth); ok && e <= end {
				if pos > jsStart {
					segs = append(segs, ast.ExpressionSegment{Kind: ast.ExprSegmentJS, JS: ast.Span{Start: jsStart, End: pos}})
				}
				segs = append(segs, ast.ExpressionSegment{Kind: ast.ExprSegmentElement, Element: el})
				pos = e
				jsStart = pos
				continue
			}
			pos++
		default:
			pos++
		}
	}
	if jsStart < end {
		segs = append(segs, ast.ExpressionSegment{Kind: ast.ExprSegmentJS, JS: ast.Span{Start: jsStart, End: end}})
	}
	return segs
}

package inline

import "github.com/mdxor/compiler/ast"

// tryLink recognizes an inline link "[text](url \"title\")" starting at
// src[pos] == '['. Link reference definitions and image syntax are out of
// scope; only this one inline form is recognized. Nested '[' / ']' pairs
// inside the text are balanced when looking for the closing ']'. The link
// text is then reparsed as its own inline run with the full inline parser,
// so a link inside link text is not prevented.
func tryLink(src []byte, pos, end int) (*ast.Inline, int, bool) {
	if pos >= end || src[pos] != '[' {
		return nil, 0, false
	}
	textStart := pos + 1
	depth := 1
	i := textStart
	for i < end {
		switch src[i] {
		case '\\':
			i += 2
			continue
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				goto foundText
			}
		}
		i++
	}
	return nil, 0, false

foundText:
	textEnd := i
	i++ // past ']'
	if i >= end || src[i] != '(' {
		return nil, 0, false
	}
	i++
	for i < end && src[i] == ' ' {
		i++
	}
	urlStart := i
	for i < end && src[i] != ' ' && src[i] != ')' {
		i++
	}
	urlEnd := i
	for i < end && src[i] == ' ' {
		i++
	}
	var title []ast.Span
	if i < end && (src[i] == '"' || src[i] == '\'') {
		quote := src[i]
		i++
		titleStart := i
		for i < end && src[i] != quote {
			i++
		}
		if i >= end {
			return nil, 0, false
		}
		title = []ast.Span{{Start: titleStart, End: i}}
		i++
		for i < end && src[i] == ' ' {
			i++
		}
	}
	if i >= end || src[i] != ')' {
		return nil, 0, false
	}
	i++

	children := Parse(src, []ast.Span{{Start: textStart, End: textEnd}})
	return &ast.Inline{
		Kind:     ast.InlineLink,
		URL:      ast.Span{Start: urlStart, End: urlEnd},
		Title:    title,
		Children: children,
	}, i, true
}

// tryAutolink recognizes "<scheme:rest>" and "<user@host>" forms.
func tryAutolink(src []byte, pos, end int) (*ast.Inline, int, bool) {
	if pos >= end || src[pos] != '<' {
		return nil, 0, false
	}
	i := pos + 1
	start := i
	for i < end && src[i] != '>' && src[i] != ' ' && src[i] != '<' {
		i++
	}
	if i >= end || src[i] != '>' {
		return nil, 0, false
	}
	content := src[start:i]
	if looksLikeURI(content) {
		return &ast.Inline{Kind: ast.InlineAutoLink, URL: ast.Span{Start: start, End: i}}, i + 1, true
	}
	if looksLikeEmail(content) {
		return &ast.Inline{Kind: ast.InlineAutoLink, URL: ast.Span{Start: start, End: i}, IsEmail: true}, i + 1, true
	}
	return nil, 0, false
}

func looksLikeURI(b []byte) bool {
	colon := -1
	for i, c := range b {
		if c == ':' {
			colon = i
			break
		}
		isAlnum := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '+' || c == '-' || c == '.'
		if !isAlnum {
			return false
		}
	}
	return colon >= 2
}

func looksLikeEmail(b []byte) bool {
	at := -1
	for i, c := range b {
		if c == '@' {
			at = i
			break
		}
		if c == ' ' {
			return false
		}
	}
	return at > 0 && at < len(b)-1
}

package codegen

import "github.com/mdxor/compiler/ast"

// inlineChildren renders a run of inline nodes to jsx child expressions.
// Consecutive text-producing nodes (plain text, soft breaks) are coalesced
// into a single string literal child; a hard break flushes any pending text
// and emits its own `br` element, since it can't be folded into a string.
func (g *generator) inlineChildren(nodes []*ast.Inline) []string {
	var out []string
	var textBuf []byte
	flush := func() {
		if textBuf != nil {
			out = append(out, quoteJSString(textBuf))
			textBuf = nil
		}
	}
	for _, n := range nodes {
		switch n.Kind {
		case ast.InlineText:
			textBuf = append(textBuf, g.joinSpans(n.Spans)...)
		case ast.InlineSoftBreak:
			textBuf = append(textBuf, '\n')
		case ast.InlineHardBreak:
			flush()
			out = append(out, g.call(quoteTag("br"), nil, nil))
		case ast.InlineCode:
			flush()
			out = append(out, g.call(quoteTag("code"), nil, []string{quoteJSString(g.joinSpans(n.Spans))}))
		case ast.InlineEmphasis:
			flush()
			out = append(out, g.call(quoteTag(emphasisTag(n)), nil, g.inlineChildren(n.Children)))
		case ast.InlineLink:
			flush()
			out = append(out, g.call(quoteTag("a"), g.linkProps(n), g.inlineChildren(n.Children)))
		case ast.InlineAutoLink:
			flush()
			url := g.text(n.URL)
			href := url
			if n.IsEmail {
				href = "mailto:" + url
			}
			props := []string{"href: " + quoteJSString([]byte(href))}
			out = append(out, g.call(quoteTag("a"), props, []string{quoteJSString([]byte(url))}))
		case ast.InlineEmbedded:
			flush()
			out = append(out, g.element(n.Element))
		}
	}
	flush()
	return out
}

func (g *generator) joinSpans(spans []ast.Span) []byte {
	var out []byte
	for _, s := range spans {
		out = append(out, g.src[s.Start:s.End]...)
	}
	return out
}

func (g *generator) linkProps(n *ast.Inline) []string {
	props := []string{"href: " + quoteJSString(g.joinSpans([]ast.Span{n.URL}))}
	if len(n.Title) > 0 {
		props = append(props, "title: "+quoteJSString(g.joinSpans(n.Title)))
	}
	return props
}

func emphasisTag(n *ast.Inline) string {
	if n.Marker == ast.MarkerTilde {
		return "del"
	}
	if n.Strong {
		return "strong"
	}
	return "em"
}

func quoteTag(tag string) string { return `"` + tag + `"` }

package codegen

import (
	"strconv"

	"github.com/mdxor/compiler/ast"
)

// element renders an embedded ElementNode (component, host element, or
// fragment) to a jsx/jsxs call expression.
func (g *generator) element(el *ast.ElementNode) string {
	tag := g.elementTag(el.Tag)

	var props []string
	for _, a := range el.Attributes {
		switch a.Kind {
		case ast.AttrSpread:
			props = append(props, "..."+g.exprSegments(a.Expr))
		case ast.AttrKeyLiteralValue:
			props = append(props, propKey(g.text(a.Key))+": "+quoteJSString(g.src[a.Value.Start:a.Value.End]))
		case ast.AttrKeyValue:
			props = append(props, propKey(g.text(a.Key))+": "+g.exprSegments(a.Expr))
		case ast.AttrKeyTrue:
			props = append(props, propKey(g.text(a.Key))+": true")
		}
	}

	children := g.childExprs(el.Children)
	return g.call(tag, props, children)
}

func (g *generator) elementTag(tag string) string {
	if tag == "" {
		return g.opts.RuntimeImport + ".Fragment"
	}
	if isComponentTag(tag) {
		return tag
	}
	return strconv.Quote(tag)
}

func (g *generator) text(s ast.Span) string {
	return string(g.src[s.Start:s.End])
}

func (g *generator) childExprs(children []ast.Child) []string {
	var out []string
	var textBuf []byte
	flush := func() {
		if textBuf != nil {
			out = append(out, quoteJSString(textBuf))
			textBuf = nil
		}
	}
	for _, c := range children {
		switch c.Kind {
		case ast.ChildText:
			textBuf = append(textBuf, g.src[c.Text.Start:c.Text.End]...)
		case ast.ChildElement:
			flush()
			out = append(out, g.element(c.Element))
		case ast.ChildExpression:
			flush()
			out = append(out, g.exprSegments(c.Expr))
		}
	}
	flush()
	return out
}

// exprSegments concatenates a `{...}` expression's segments back into a
// single raw JS expression string: JS spans pass through verbatim (the
// compiler never type-checks or transforms expression content, per the
// external contract), nested elements recurse through element rendering.
func (g *generator) exprSegments(segs []ast.ExpressionSegment) string {
	var out string
	for _, s := range segs {
		switch s.Kind {
		case ast.ExprSegmentJS:
			out += string(g.src[s.JS.Start:s.JS.End])
		case ast.ExprSegmentElement:
			out += g.element(s.Element)
		}
	}
	return out
}

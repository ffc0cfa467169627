// Package codegen walks the block+inline AST and emits the `jsx`/`jsxs`
// factory-call source text the compiler's external contract promises.
// Nothing here type-checks or transforms embedded JS expressions; they are
// copied through verbatim, exactly as recognized by the jsx package.
package codegen

import (
	"strconv"
	"strings"

	"github.com/mdxor/compiler/ast"
	"github.com/mdxor/compiler/config"
	"github.com/mdxor/compiler/inline"
)

type generator struct {
	src  []byte
	opts config.Options
}

// Generate renders a parsed Document to generated code text: the lifted
// import/export prelude verbatim, followed by a single Fragment expression
// wrapping the document's top-level blocks.
func Generate(doc *ast.Document, src []byte, opts config.Options) string {
	g := &generator{src: src, opts: opts}

	var sb strings.Builder
	if !doc.Prelude.Empty() {
		sb.Write(src[doc.Prelude.Start:doc.Prelude.End])
		if sb.Len() > 0 && sb.String()[sb.Len()-1] != '\n' {
			sb.WriteByte('\n')
		}
	}
	children := g.renderBlocks(doc.Blocks)
	sb.WriteString(g.call(g.opts.RuntimeImport+".Fragment", nil, children))
	sb.WriteByte('\n')
	return sb.String()
}

// renderBlocks renders a block sequence to a list of child expressions,
// silently dropping blank-line markers (they carry no content of their own;
// they exist only so the block scanner can detect list looseness).
func (g *generator) renderBlocks(blocks []*ast.Block) []string {
	var out []string
	for _, b := range blocks {
		if b.Kind == ast.BlockBlankLine {
			continue
		}
		out = append(out, g.block(b))
	}
	return out
}

func (g *generator) block(b *ast.Block) string {
	switch b.Kind {
	case ast.BlockParagraph:
		return g.call(quoteTag("p"), nil, g.inlineChildren(inline.Parse(g.src, b.Raws)))

	case ast.BlockATXHeading, ast.BlockSetextHeading:
		return g.call(quoteTag(b.Level.Tag()), nil, g.inlineChildren(inline.Parse(g.src, b.Raws)))

	case ast.BlockBlockQuote:
		return g.call(quoteTag("blockquote"), nil, g.renderBlocks(b.Children))

	case ast.BlockList:
		return g.list(b)

	case ast.BlockListItem:
		return g.listItem(b, true)

	case ast.BlockFencedCode:
		return g.codeBlock(g.joinRawSpans(b.FenceCode), b.FenceInfo)

	case ast.BlockIndentedCode:
		return g.codeBlock(g.joinRawSpans(b.Raws), ast.Span{})

	case ast.BlockThematicBreak:
		return g.call(quoteTag("hr"), nil, nil)

	case ast.BlockEmbedded:
		return g.element(b.Element)

	default:
		return g.call(quoteTag("div"), nil, nil)
	}
}

func (g *generator) list(b *ast.Block) string {
	tag := "ul"
	var props []string
	if b.IsOrdered {
		tag = "ol"
		if b.OrderStart != 1 {
			props = append(props, "start: "+strconv.Itoa(b.OrderStart))
		}
	}
	var children []string
	for _, item := range b.Children {
		if item.Kind != ast.BlockListItem {
			continue
		}
		children = append(children, g.listItem(item, b.IsTight))
	}
	return g.call(quoteTag(tag), props, children)
}

// listItem renders a list item. Tight items whose sole content is a single
// paragraph skip the implicit <p> wrapper and render the paragraph's inline
// content directly as the <li>'s children; loose items render each child
// block normally, including the <p> wrapper.
func (g *generator) listItem(item *ast.Block, tight bool) string {
	if tight && len(item.Children) == 1 && item.Children[0].Kind == ast.BlockParagraph {
		return g.call(quoteTag("li"), nil, g.inlineChildren(inline.Parse(g.src, item.Children[0].Raws)))
	}
	return g.call(quoteTag("li"), nil, g.renderBlocks(item.Children))
}

func (g *generator) codeBlock(content []byte, info ast.Span) string {
	var codeProps []string
	if !info.Empty() {
		if lang := firstWord(g.text(info)); lang != "" {
			codeProps = append(codeProps, `className: "language-`+lang+`"`)
		}
	}
	code := g.call(quoteTag("code"), codeProps, []string{quoteJSString(content)})
	return g.call(quoteTag("pre"), nil, []string{code})
}

func (g *generator) joinRawSpans(spans []ast.Span) []byte {
	var out []byte
	for _, s := range spans {
		out = append(out, g.src[s.Start:s.End]...)
		out = append(out, '\n')
	}
	return out
}

func firstWord(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i]
	}
	return s
}

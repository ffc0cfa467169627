// Package block implements the outer document scanner: it walks the
// source line by line, maintains the stack of open containers (block
// quotes and list items), and produces the block-level AST. Leaf content
// (paragraph text, heading text, inline component usage) is kept as raw
// spans; the inline package parses it lazily, on demand, from codegen.
//
// This is not recursive descent. A container's continuation on a given
// line depends on the state of every container enclosing it plus whatever
// leaf is currently open, which a naive descent that parses one container
// fully before looking at the next line cannot express (in particular,
// "lazy continuation" lets a paragraph continue across a line that fails
// to repeat an enclosing block quote's '>' marker). Matching
// reads against an explicit stack instead.
package block

import (
	"github.com/mdxor/compiler/ast"
	"github.com/mdxor/compiler/config"
	"github.com/mdxor/compiler/internal/diagnostics"
	"github.com/mdxor/compiler/jsx"
)

// DefaultMaxDepth bounds container nesting (block quotes inside lists
// inside block quotes, and so on) and embedded-element nesting against
// adversarially deep input, when a caller doesn't override it via
// WithMaxDepth.
const DefaultMaxDepth = config.DefaultMaxDepth

type containerKind int

const (
	containerBlockQuote containerKind = iota
	containerListItem
)

type frame struct {
	kind  containerKind
	block *ast.Block // the BlockQuote or ListItem node itself
	list  *ast.Block // for containerListItem, the owning List node
	// indent is the number of columns (relative to the byte slice this
	// frame's marker was matched against) its content is indented to.
	// For block quotes this is always the marker-consumed width.
	indent int
}

type openLeaf int

const (
	leafNone openLeaf = iota
	leafParagraph
	leafFencedCode
	leafIndentedCode
)

type parser struct {
	src   []byte
	spine []frame

	leaf     openLeaf
	leafNode *ast.Block // the in-progress Paragraph/FencedCode/IndentedCode block

	fenceCh  byte
	fenceLen int

	depth    int
	maxDepth int

	rec *diagnostics.Recorder
}

// Option configures a Parse call.
type Option func(*parser)

// WithRecorder attaches a diagnostics recorder that observes points where
// an embedded-element attempt fell back to paragraph text.
func WithRecorder(rec *diagnostics.Recorder) Option {
	return func(p *parser) { p.rec = rec }
}

// WithMaxDepth overrides the container/embedded-element nesting bound,
// DefaultMaxDepth otherwise.
func WithMaxDepth(n int) Option {
	return func(p *parser) { p.maxDepth = n }
}

// Parse scans src into a document: the lifted import/export prelude span
// plus the block tree. It never fails; malformed input degrades to
// paragraphs the same way the leaf recognizers degrade individual lines.
func Parse(src []byte, opts ...Option) *ast.Document {
	p := &parser{src: src, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	prelude := skimPrelude(src)
	doc := &ast.Document{Prelude: prelude}
	p.run(prelude.End, &doc.Blocks)
	return doc
}

func (p *parser) run(startPos int, root *[]*ast.Block) {
	pos := startPos
	n := len(p.src)
	for pos < n {
		lineEnd := pos
		for lineEnd < n && p.src[lineEnd] != '\n' && p.src[lineEnd] != '\r' {
			lineEnd++
		}
		nextPos := lineEnd
		if lineEnd < n {
			if p.src[lineEnd] == '\r' {
				nextPos = lineEnd + 1
				if nextPos < n && p.src[nextPos] == '\n' {
					nextPos++
				}
			} else {
				nextPos = lineEnd + 1
			}
		}

		resume := p.processLine(pos, lineEnd, root)
		if resume >= 0 {
			pos = resume
		} else {
			pos = nextPos
		}
	}
	p.closeLeaf(p.currentSlot(root))
	p.closeFramesTo(0, root)
}

// currentSlot returns the children slice of the innermost open container,
// or root if the spine is empty.
func (p *parser) currentSlot(root *[]*ast.Block) *[]*ast.Block {
	if len(p.spine) == 0 {
		return root
	}
	return &p.spine[len(p.spine)-1].block.Children
}

// processLine handles one physical line. It returns -1 when the caller
// should advance to the next physical line normally, or, after a
// block-level embedded element (which may span several lines), the
// absolute offset of the line following the one the element ends on.
func (p *parser) processLine(start, end int, root *[]*ast.Block) int {
	b := p.src[start:end]

	matched, remaining, contentStart, blank := p.matchSpine(start, b)

	lazy := false
	if matched < len(p.spine) {
		if p.leaf == leafParagraph && !blank && !p.looksLikeContainerOpen(remaining) && !p.looksLikeInterruptingLeaf(remaining) {
			lazy = true
		}
	}

	if lazy {
		p.appendRaw(p.currentSlot(root), contentStart, end)
		return -1
	}

	if matched < len(p.spine) {
		p.closeFramesTo(matched, root)
	}

	slot := p.currentSlot(root)

	if blank {
		p.closeLeaf(slot)
		*slot = append(*slot, &ast.Block{Kind: ast.BlockBlankLine, Span: ast.Span{Start: start, End: end}})
		return -1
	}

	// Fenced/indented code in progress: their own continuation rules take
	// priority over everything else, including new container markers.
	if p.leaf == leafFencedCode {
		if fenceClose(remaining, p.fenceCh, p.fenceLen) {
			p.leaf = leafNone
			p.leafNode = nil
			return -1
		}
		p.leafNode.FenceCode = append(p.leafNode.FenceCode, ast.Span{Start: contentStart, End: end})
		return -1
	}
	if p.leaf == leafIndentedCode {
		if cs, ok := indentedCodeLine(remaining); ok {
			p.leafNode.Raws = append(p.leafNode.Raws, ast.Span{Start: contentStart + cs, End: end})
			return -1
		}
		p.leaf = leafNone
		p.leafNode = nil
		// fall through to reprocess this line fresh
	}

	// Try to open new containers.
	for p.depth < p.maxDepth {
		if cs, ok := blockQuoteMarker(remaining); ok {
			p.closeLeaf(slot)
			level := 1
			for _, f := range p.spine {
				if f.kind == containerBlockQuote {
					level++
				}
			}
			bq := &ast.Block{Kind: ast.BlockQuote, Span: ast.Span{Start: contentStart, End: end}, QuoteLevel: level}
			*slot = append(*slot, bq)
			p.spine = append(p.spine, frame{kind: containerBlockQuote, block: bq, indent: cs})
			contentStart += cs
			remaining = remaining[cs:]
			slot = &bq.Children
			p.depth++
			continue
		}
		if m, ok := scanListMarker(remaining); ok && !thematicBreak(remaining) {
			p.closeLeaf(slot)
			list := p.openOrReuseList(slot, m)
			if m.ordered && len(list.Children) == 0 {
				digitsStart := contentStart + m.indent
				list.OrderSpan = ast.Span{Start: digitsStart, End: digitsStart + m.markerLen - 1}
			}
			item := &ast.Block{Kind: ast.BlockListItem, ItemIndent: m.contentCol, Span: ast.Span{Start: contentStart, End: end}}
			list.Children = append(list.Children, item)
			p.spine = append(p.spine, frame{kind: containerListItem, block: item, list: list, indent: m.contentCol})
			contentStart += m.contentCol
			if m.contentCol <= len(remaining) {
				remaining = remaining[m.contentCol:]
			} else {
				remaining = nil
			}
			slot = &item.Children
			p.depth++
			continue
		}
		break
	}

	return p.recognizeLeaf(contentStart, end, remaining, slot)
}

// recognizeLeaf runs the leaf recognizers in priority order against the
// remainder of the current line and returns a resume offset per
// processLine's contract.
func (p *parser) recognizeLeaf(contentStart, end int, remaining []byte, slot *[]*ast.Block) int {
	// Setext promotion: an open paragraph immediately followed by a
	// valid underline becomes a setext heading.
	if p.leaf == leafParagraph {
		if level, ok := setextUnderline(remaining); ok {
			p.leafNode.Kind = ast.BlockSetextHeading
			p.leafNode.Level = ast.HeadingLevel(level)
			p.leafNode.Span.End = end
			p.leaf = leafNone
			p.leafNode = nil
			return -1
		}
	}

	if thematicBreak(remaining) {
		p.closeLeaf(slot)
		*slot = append(*slot, &ast.Block{Kind: ast.BlockThematicBreak, Span: ast.Span{Start: contentStart, End: end}})
		return -1
	}

	if level, cs, ce, ok := atxHeading(remaining); ok {
		p.closeLeaf(slot)
		h := &ast.Block{
			Kind:  ast.BlockATXHeading,
			Level: ast.HeadingLevel(level),
			Span:  ast.Span{Start: contentStart, End: end},
			Raws:  []ast.Span{{Start: contentStart + cs, End: contentStart + ce}},
		}
		*slot = append(*slot, h)
		return -1
	}

	if ch, flen, indent, infoS, infoE, ok := fenceOpen(remaining); ok {
		p.closeLeaf(slot)
		node := &ast.Block{
			Kind:      ast.BlockFencedCode,
			Span:      ast.Span{Start: contentStart, End: end},
			FenceInfo: ast.Span{Start: contentStart + infoS, End: contentStart + infoE},
		}
		_ = indent
		*slot = append(*slot, node)
		p.leaf = leafFencedCode
		p.leafNode = node
		p.fenceCh = ch
		p.fenceLen = flen
		return -1
	}

	if p.leaf != leafParagraph {
		if cs, ok := indentedCodeLine(remaining); ok {
			node := &ast.Block{
				Kind: ast.BlockIndentedCode,
				Span: ast.Span{Start: contentStart, End: end},
				Raws: []ast.Span{{Start: contentStart + cs, End: end}},
			}
			*slot = append(*slot, node)
			p.leaf = leafIndentedCode
			p.leafNode = node
			return -1
		}
	}

	if len(remaining) > 0 && remaining[0] == '<' {
		absPos := end - len(remaining)
		if el, endPos, ok := jsx.ParseElement(p.src, absPos, p.maxDepth); ok {
			if lineEndIsBlankFrom(p.src, endPos) {
				p.closeLeaf(slot)
				*slot = append(*slot, &ast.Block{Kind: ast.BlockEmbedded, Span: ast.Span{Start: absPos, End: endPos}, Element: el})
				resume := endPos
				for resume < len(p.src) && (p.src[resume] == ' ' || p.src[resume] == '\t') {
					resume++
				}
				if resume < len(p.src) && p.src[resume] == '\r' {
					resume++
				}
				if resume < len(p.src) && p.src[resume] == '\n' {
					resume++
				}
				return resume
			}
			if p.rec != nil {
				p.rec.Record("block", "embedded element followed by trailing content, falling back to paragraph", absPos)
			}
		} else if p.rec != nil {
			p.rec.Record("block", "malformed embedded element, falling back to paragraph", absPos)
		}
	}

	// Paragraph: start a new one, or continue the open one.
	if p.leaf == leafParagraph {
		p.leafNode.Raws = append(p.leafNode.Raws, ast.Span{Start: contentStart, End: end})
		p.leafNode.Span.End = end
		return -1
	}
	node := &ast.Block{
		Kind: ast.BlockParagraph,
		Span: ast.Span{Start: contentStart, End: end},
		Raws: []ast.Span{{Start: contentStart, End: end}},
	}
	*slot = append(*slot, node)
	p.leaf = leafParagraph
	p.leafNode = node
	return -1
}

// lineEndIsBlankFrom reports whether only spaces/tabs remain before the
// next line ending or end of input, the rule that lets a recognized
// expression/element be treated as its own block rather than inline
// content of a surrounding paragraph.
func lineEndIsBlankFrom(src []byte, pos int) bool {
	for pos < len(src) {
		switch src[pos] {
		case ' ', '\t':
			pos++
			continue
		case '\n', '\r':
			return true
		default:
			return false
		}
	}
	return true
}

func (p *parser) looksLikeContainerOpen(b []byte) bool {
	if _, ok := blockQuoteMarker(b); ok {
		return true
	}
	if _, ok := scanListMarker(b); ok {
		return true
	}
	return false
}

func (p *parser) looksLikeInterruptingLeaf(b []byte) bool {
	if thematicBreak(b) {
		return true
	}
	if _, _, _, ok := atxHeading(b); ok {
		return true
	}
	if _, _, _, _, _, ok := fenceOpen(b); ok {
		return true
	}
	return false
}

// matchSpine walks the open container stack outer-to-inner against the
// line starting at absStart, stripping each frame's marker in turn. It
// returns how many frames matched, the unstripped remainder, the absolute
// offset that remainder starts at, and whether the line is blank.
func (p *parser) matchSpine(absStart int, b []byte) (matched int, remaining []byte, contentStart int, blank bool) {
	remaining = b
	contentStart = absStart

	if isBlank(b) {
		return len(p.spine), nil, absStart + len(b), true
	}

	for i, f := range p.spine {
		switch f.kind {
		case containerBlockQuote:
			cs, ok := blockQuoteMarker(remaining)
			if !ok {
				return i, remaining, contentStart, false
			}
			remaining = remaining[cs:]
			contentStart += cs
		case containerListItem:
			if isBlank(remaining) {
				return len(p.spine), nil, contentStart + len(remaining), true
			}
			if countLeading(remaining, ' ') < f.indent {
				return i, remaining, contentStart, false
			}
			remaining = remaining[f.indent:]
			contentStart += f.indent
		}
	}
	return len(p.spine), remaining, contentStart, false
}

func countLeading(b []byte, ch byte) int {
	n := 0
	for n < len(b) && b[n] == ch {
		n++
	}
	return n
}

func isBlank(b []byte) bool {
	for _, c := range b {
		if c != ' ' && c != '\t' {
			return false
		}
	}
	return true
}

// openOrReuseList returns the List block that a new item with marker m
// should attach to: the last block in slot if it is a compatible open
// list, otherwise a freshly created one.
func (p *parser) openOrReuseList(slot *[]*ast.Block, m listMarker) *ast.Block {
	if n := len(*slot); n > 0 {
		last := (*slot)[n-1]
		if last.Kind == ast.BlockList && last.IsOrdered == m.ordered {
			sameBullet := !m.ordered && last.ListMarker == m.ch
			sameOrdered := m.ordered && last.ListMarker == m.ch
			if sameBullet || sameOrdered {
				return last
			}
		}
	}
	list := &ast.Block{
		Kind:       ast.BlockList,
		IsOrdered:  m.ordered,
		ListMarker: m.ch,
		OrderStart: m.start,
		IsTight:    true,
	}
	*slot = append(*slot, list)
	return list
}

// appendRaw appends a lazily-continued paragraph line.
func (p *parser) appendRaw(slot *[]*ast.Block, start, end int) {
	if p.leaf == leafParagraph {
		p.leafNode.Raws = append(p.leafNode.Raws, ast.Span{Start: start, End: end})
		p.leafNode.Span.End = end
	}
}

// closeLeaf finalizes whatever leaf is currently open in slot.
func (p *parser) closeLeaf(slot *[]*ast.Block) {
	p.leaf = leafNone
	p.leafNode = nil
}

// closeFramesTo pops spine frames down to depth n, computing final
// properties (list tightness) for anything that closes.
func (p *parser) closeFramesTo(n int, root *[]*ast.Block) {
	for len(p.spine) > n {
		f := p.spine[len(p.spine)-1]
		p.spine = p.spine[:len(p.spine)-1]
		p.depth--
		if f.kind == containerListItem {
			computeTightness(f.list)
		}
	}
	p.closeLeaf(p.currentSlot(root))
}

// computeTightness marks a list loose (IsTight = false) if any blank line
// block appears between two of its items, or inside an item's own
// children other than trailing.
func computeTightness(list *ast.Block) {
	for i, item := range list.Children {
		for j, child := range item.Children {
			if child.Kind == ast.BlockBlankLine && j != len(item.Children)-1 {
				list.IsTight = false
				return
			}
		}
		if i < len(list.Children)-1 && len(item.Children) > 0 {
			if item.Children[len(item.Children)-1].Kind == ast.BlockBlankLine {
				list.IsTight = false
				return
			}
		}
	}
}

// skimPrelude recognizes a leading run of `import ...;`/`export ...;`
// statements (one per line) and returns the span they occupy, to be
// lifted verbatim ahead of the generated code. A line belongs to the run
// when it begins with the word "import" or "export"; the rest of the line
// is not checked. The run stops at the first line that does not begin
// that way, so a statement spanning several lines ends it after its first
// line.
func skimPrelude(src []byte) ast.Span {
	pos := 0
	n := len(src)
	for pos < n {
		lineEnd := pos
		for lineEnd < n && src[lineEnd] != '\n' && src[lineEnd] != '\r' {
			lineEnd++
		}
		nextPos := lineEnd
		if lineEnd < n {
			if src[lineEnd] == '\r' {
				nextPos = lineEnd + 1
				if nextPos < n && src[nextPos] == '\n' {
					nextPos++
				}
			} else {
				nextPos = lineEnd + 1
			}
		}
		line := src[pos:lineEnd]
		if hasPrefixWord(line, "import") || hasPrefixWord(line, "export") {
			pos = nextPos
			continue
		}
		break
	}
	return ast.Span{Start: 0, End: pos}
}

func hasPrefixWord(b []byte, word string) bool {
	if len(b) < len(word) || string(b[:len(word)]) != word {
		return false
	}
	if len(b) == len(word) {
		return true
	}
	c := b[len(word)]
	return c == ' ' || c == '\t' || c == '{' || c == '*'
}

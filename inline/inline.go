// Package inline parses the raw-span content of one leaf block (a
// paragraph's lines, a heading's text, ...) into the inline AST. It is
// invoked lazily, once per leaf, by codegen — never eagerly up front,
// since most of a document's leaves are never inspected for inline
// content beyond what the code generator actually walks.
//
// Parsing runs in two passes. The first walks the raw bytes once and
// produces a flat sequence of nodes: resolved leaves (text, code spans,
// links, autolinks, embedded elements, line breaks) interspersed with
// unresolved emphasis-delimiter runs. The second pass resolves those
// delimiter runs against each other using the standard delimiter-stack
// algorithm, since which asterisk run closes which is only decidable
// once the whole sequence is known — a single left-to-right pass cannot
// tell, on seeing an opening "*", whether it will ever be closed.
package inline

import (
	"unicode/utf8"

	"github.com/mdxor/compiler/ast"
	"github.com/mdxor/compiler/internal/scan"
	"github.com/mdxor/compiler/jsx"
)

// Parse builds the inline tree for the concatenation of raws, in order,
// joined by soft or hard line breaks as dictated by trailing whitespace.
func Parse(src []byte, raws []ast.Span) []*ast.Inline {
	b := &builder{src: src}
	for i, raw := range raws {
		b.scanRaw(raw)
		if i < len(raws)-1 {
			if endsWithHardBreak(src, raw) {
				b.push(&ast.Inline{Kind: ast.InlineHardBreak})
			} else {
				b.push(&ast.Inline{Kind: ast.InlineSoftBreak})
			}
		}
	}
	b.resolveEmphasis()
	return b.result()
}

// node is one element of the doubly linked working list pass 1 builds and
// pass 2 splices emphasis matches out of.
type node struct {
	inline *slot
	prev   *node
	next   *node
	delim  *delimInfo
}

// slot defers building the final *ast.Inline until after emphasis
// resolution: a plain-text/code/link/etc. node already has its final form,
// but a delimiter-run placeholder's final rendering (literal text vs.
// consumed by an Emphasis wrapper) is only known once pass 2 finishes.
type slot struct {
	final *ast.Inline
}

type delimInfo struct {
	ch               byte
	count            int
	canOpen, canClose bool
	span             ast.Span
}

type builder struct {
	src        []byte
	head, tail *node
}

func (b *builder) push(n *ast.Inline) {
	b.pushNode(&node{inline: &slot{final: n}})
}

func (b *builder) pushNode(n *node) {
	if b.tail == nil {
		b.head, b.tail = n, n
		return
	}
	n.prev = b.tail
	b.tail.next = n
	b.tail = n
}

func (b *builder) result() []*ast.Inline {
	var out []*ast.Inline
	for n := b.head; n != nil; n = n.next {
		out = append(out, n.inline.final)
	}
	return out
}

func textInline(start, end int) *ast.Inline {
	return &ast.Inline{Kind: ast.InlineText, Spans: []ast.Span{{Start: start, End: end}}}
}

func isSpecialByte(c byte) bool {
	switch c {
	case '\\', '`', '<', '[', '*', '_', '~':
		return true
	}
	return false
}

func (b *builder) scanRaw(raw ast.Span) {
	src := b.src
	pos, end := raw.Start, raw.End
	for pos < end {
		c := src[pos]
		switch {
		case c == '\\' && pos+1 < end && isEscapable(src[pos+1]):
			b.push(textInline(pos+1, pos+2))
			pos += 2

		case c == '`':
			if n, newPos, ok := tryCodeSpan(src, pos, end); ok {
				b.push(n)
				pos = newPos
			} else {
				b.push(textInline(pos, pos+1))
				pos++
			}

		case c == '<':
			if n, newPos, ok := tryAutolink(src, pos, end); ok {
				b.push(n)
				pos = newPos
			} else if el, newPos, ok := jsx.ParseElement(src, pos, jsx.DefaultMaxDepth); ok && newPos <= end {
				b.push(&ast.Inline{Kind: ast.InlineEmbedded, Element: el})
				pos = newPos
			} else {
				b.push(textInline(pos, pos+1))
				pos++
			}

		case c == '[':
			if n, newPos, ok := tryLink(src, pos, end); ok {
				b.push(n)
				pos = newPos
			} else {
				b.push(textInline(pos, pos+1))
				pos++
			}

		case c == '*' || c == '_' || c == '~':
			newPos, count := scanDelimRun(src, pos, end, c)
			before := runeBefore(src, pos)
			after := runeAt(src, newPos)
			canOpen, canClose := flanking(c, before, after)
			d := &delimInfo{ch: c, count: count, canOpen: canOpen, canClose: canClose, span: ast.Span{Start: pos, End: newPos}}
			b.pushNode(&node{inline: &slot{final: textInline(pos, newPos)}, delim: d})
			pos = newPos

		default:
			s := pos
			for pos < end && !isSpecialByte(src[pos]) {
				pos++
			}
			if pos == s {
				pos++
			}
			b.push(textInline(s, pos))
		}
	}
}

// resolveEmphasis runs the delimiter-stack algorithm over the linked list,
// splicing matched opener/closer pairs into Emphasis nodes.
func (b *builder) resolveEmphasis() {
	for closer := b.head; closer != nil; closer = closer.next {
		d := closer.delim
		if d == nil || d.count == 0 || !d.canClose {
			continue
		}
		for opener := closer.prev; opener != nil; opener = opener.prev {
			od := opener.delim
			if od == nil || od.count == 0 || od.ch != d.ch || !od.canOpen {
				continue
			}
			if od.ch == '_' && (od.canClose || d.canOpen) && (od.count+d.count)%3 == 0 && od.count%3 != 0 {
				continue
			}

			strength := 1
			if od.count >= 2 && d.count >= 2 {
				strength = 2
			}
			od.count -= strength
			d.count -= strength

			marker := ast.MarkerAsterisk
			switch d.ch {
			case '_':
				marker = ast.MarkerUnderscore
			case '~':
				marker = ast.MarkerTilde
			}

			var children []*ast.Inline
			for n := opener.next; n != closer; n = n.next {
				children = append(children, n.inline.final)
			}
			em := &ast.Inline{Kind: ast.InlineEmphasis, Marker: marker, Strong: strength == 2, Children: children}
			emNode := &node{inline: &slot{final: em}}

			// Splice [opener..closer] down to: opener's leftover
			// delimiter text (if any) + em + closer's leftover text.
			before := opener.prev
			after := closer.next

			var chain []*node
			if od.count > 0 {
				leftoverSpan := shrinkSpan(od.span, strength, true)
				od.span = leftoverSpan
				chain = append(chain, &node{inline: &slot{final: textInline(leftoverSpan.Start, leftoverSpan.End)}, delim: od})
			}
			chain = append(chain, emNode)
			if d.count > 0 {
				leftoverSpan := shrinkSpan(d.span, strength, false)
				d.span = leftoverSpan
				chain = append(chain, &node{inline: &slot{final: textInline(leftoverSpan.Start, leftoverSpan.End)}, delim: d})
			}

			for i, n := range chain {
				if i == 0 {
					n.prev = before
				} else {
					n.prev = chain[i-1]
					chain[i-1].next = n
				}
			}
			if before != nil {
				before.next = chain[0]
			} else {
				b.head = chain[0]
			}
			last := chain[len(chain)-1]
			last.next = after
			if after != nil {
				after.prev = last
			} else {
				b.tail = last
			}

			if d.count > 0 {
				closer = chain[len(chain)-1]
			} else if before != nil {
				closer = before
			} else {
				closer = last
			}
			break
		}
	}
}

// shrinkSpan removes strength delimiter bytes from one end of a run's
// span, keeping the remaining (still-unmatched) delimiter characters as
// literal text.
func shrinkSpan(s ast.Span, strength int, fromStart bool) ast.Span {
	if fromStart {
		return ast.Span{Start: s.Start, End: s.End - strength}
	}
	return ast.Span{Start: s.Start + strength, End: s.End}
}

func scanDelimRun(src []byte, pos, end int, ch byte) (int, int) {
	n := pos
	for n < end && src[n] == ch {
		n++
	}
	return n, n - pos
}

func runeBefore(src []byte, pos int) rune {
	if pos == 0 {
		return ' '
	}
	r, _ := utf8.DecodeLastRune(src[:pos])
	return r
}

func runeAt(src []byte, pos int) rune {
	if pos >= len(src) {
		return ' '
	}
	r, _ := utf8.DecodeRune(src[pos:])
	return r
}

// flanking implements the CommonMark left/right flanking delimiter-run
// rules: a run can open emphasis if it is left-flanking (not followed by
// Unicode whitespace, and either not followed by punctuation or itself
// preceded by whitespace/punctuation), and symmetrically for closing.
// Underscore runs additionally require the non-intraword restriction,
// approximated here by requiring punctuation (not a letter/digit) on the
// non-flanking side.
func flanking(ch byte, before, after rune) (canOpen, canClose bool) {
	beforeWS := scan.IsUnicodeWhitespace(before)
	afterWS := scan.IsUnicodeWhitespace(after)
	beforePunct := scan.IsPunctuation(before)
	afterPunct := scan.IsPunctuation(after)

	leftFlanking := !afterWS && (!afterPunct || beforeWS || beforePunct)
	rightFlanking := !beforeWS && (!beforePunct || afterWS || afterPunct)

	canOpen = leftFlanking
	canClose = rightFlanking
	if ch == '_' {
		canOpen = leftFlanking && (!rightFlanking || beforePunct)
		canClose = rightFlanking && (!leftFlanking || afterPunct)
	}
	return
}

func isEscapable(c byte) bool {
	return scan.IsASCIIPunctuation(c)
}

func endsWithHardBreak(src []byte, raw ast.Span) bool {
	if raw.End > raw.Start && src[raw.End-1] == '\\' {
		return true
	}
	trailing := 0
	for i := raw.End - 1; i >= raw.Start && src[i] == ' '; i-- {
		trailing++
	}
	return trailing >= 2
}

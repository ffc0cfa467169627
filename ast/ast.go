// Package ast defines the block, inline and embedded-expression trees
// produced by the block, inline and jsx packages and consumed by codegen.
//
// Nodes are plain tagged structs rather than interfaces: the set of
// variants is closed and known ahead of time, so a Kind discriminant plus
// a shared payload struct avoids a combinatorial explosion of concrete
// types while keeping the tree walk in codegen a single type switch.
package ast

// Span is a half-open byte range [Start, End) into the original source.
// Nothing in this package ever copies the bytes a Span points at; only
// codegen slices the source, and only once, when it has decided a span is
// final.
type Span struct {
	Start int
	End   int
}

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool { return s.Start >= s.End }

// HeadingLevel is 1 through 6, matching ATX/setext heading depth.
type HeadingLevel int

// Tag returns the HTML-faithful tag name for the heading level ("h1".."h6").
func (l HeadingLevel) Tag() string {
	switch l {
	case 1:
		return "h1"
	case 2:
		return "h2"
	case 3:
		return "h3"
	case 4:
		return "h4"
	case 5:
		return "h5"
	case 6:
		return "h6"
	default:
		return "h6"
	}
}

// BlockKind discriminates the variants of Block.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockATXHeading
	BlockSetextHeading
	BlockBlockQuote
	BlockList
	BlockListItem
	BlockFencedCode
	BlockIndentedCode
	BlockThematicBreak
	BlockBlankLine
	BlockEmbedded
)

func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "Paragraph"
	case BlockATXHeading:
		return "ATXHeading"
	case BlockSetextHeading:
		return "SetextHeading"
	case BlockBlockQuote:
		return "BlockQuote"
	case BlockList:
		return "List"
	case BlockListItem:
		return "ListItem"
	case BlockFencedCode:
		return "FencedCode"
	case BlockIndentedCode:
		return "IndentedCode"
	case BlockThematicBreak:
		return "ThematicBreak"
	case BlockBlankLine:
		return "BlankLine"
	case BlockEmbedded:
		return "Embedded"
	default:
		return "Unknown"
	}
}

// Block is one node of the block tree. Which fields are meaningful depends
// on Kind; see the BlockKind constants above.
type Block struct {
	Kind BlockKind
	Span Span

	// Paragraph, ATXHeading, SetextHeading, IndentedCode: raw line spans,
	// excluding line-ending bytes and, for indented code, the leading
	// four-space indent.
	Raws []Span

	// ATXHeading, SetextHeading.
	Level HeadingLevel

	// BlockQuote, List, ListItem: nested block sequence.
	Children []*Block

	// BlockQuote: nesting depth of '>' markers that opened this level.
	QuoteLevel int

	// List: the marker byte ('-', '+', '*' for bullet lists; '.' or ')'
	// for the terminator of an ordered list).
	ListMarker byte
	// List: true when ListMarker is an ordered-list terminator.
	IsOrdered bool
	// List: the parsed value of the first item's ordered marker. Only
	// meaningful when IsOrdered is true.
	OrderStart int
	// List: span of the first marker's digit run, for reference/debugging.
	OrderSpan Span
	// List: true when no blank line separates any two of its items.
	IsTight bool

	// ListItem: column the item's content is indented to, relative to
	// where the enclosing containers' markers end on the line the marker
	// appeared on.
	ItemIndent int

	// FencedCode: the info-string span (may be empty) and the raw content
	// line spans, excluding the fence lines themselves.
	FenceInfo Span
	FenceCode []Span

	// Embedded: a top-level component/expression element recognized at
	// block position.
	Element *ElementNode
}

// InlineKind discriminates the variants of Inline.
type InlineKind int

const (
	InlineText InlineKind = iota
	InlineEmphasis
	InlineCode
	InlineLink
	InlineAutoLink
	InlineSoftBreak
	InlineHardBreak
	InlineEmbedded
)

// EmphasisMarker identifies which delimiter produced an Emphasis node.
type EmphasisMarker byte

const (
	MarkerAsterisk   EmphasisMarker = '*'
	MarkerUnderscore EmphasisMarker = '_'
	MarkerTilde      EmphasisMarker = '~'
)

// Inline is one node of the inline tree, built lazily per leaf block by
// the inline package.
type Inline struct {
	Kind InlineKind

	// Text, Code: raw spans to be concatenated. A code span is matched
	// within a single raw line (its closing backtick run is not searched
	// for on later lines), so Code always carries exactly one span.
	Spans []Span

	// Emphasis, Link: nested inline children.
	Children []*Inline

	// Emphasis: which delimiter, and whether it was a double (strong) run.
	Marker EmphasisMarker
	Strong bool

	// Link, AutoLink: destination and title spans. AutoLink has no title.
	URL   Span
	Title []Span
	// AutoLink: true when the destination looks like an email address
	// rather than an absolute URI.
	IsEmail bool

	// Embedded: a component/expression element recognized inline.
	Element *ElementNode
}

// AttributeKind discriminates the variants of Attribute.
type AttributeKind int

const (
	AttrSpread AttributeKind = iota
	AttrKeyLiteralValue
	AttrKeyValue
	AttrKeyTrue
)

// Attribute is one JSX-style attribute of an ElementNode.
type Attribute struct {
	Kind AttributeKind
	Key  Span
	// AttrKeyLiteralValue: the quoted literal's content span (quotes excluded).
	Value Span
	// AttrKeyValue, AttrSpread: the `{...}` expression, tokenized into segments.
	Expr []ExpressionSegment
}

// ChildKind discriminates the variants of Child.
type ChildKind int

const (
	ChildElement ChildKind = iota
	ChildText
	ChildExpression
)

// Child is one child of an ElementNode's children list.
type Child struct {
	Kind    ChildKind
	Element *ElementNode
	Text    Span
	Expr    []ExpressionSegment
}

// ExpressionSegmentKind discriminates the variants of ExpressionSegment.
type ExpressionSegmentKind int

const (
	ExprSegmentJS ExpressionSegmentKind = iota
	ExprSegmentElement
)

// ExpressionSegment is one piece of a `{...}` expression: either a raw JS
// span or a nested element literal appearing inside the expression.
type ExpressionSegment struct {
	Kind    ExpressionSegmentKind
	JS      Span
	Element *ElementNode
}

// ElementNode is a parsed component/expression element: `<Tag attr...>children</Tag>`,
// a self-closing `<Tag/>`, or a fragment `<>...</>` (Tag == "").
type ElementNode struct {
	Tag        string
	Attributes []Attribute
	Children   []Child
}

// Document is the root of a fully parsed source file: the import/export
// prelude (lifted verbatim) plus the block tree.
type Document struct {
	Prelude Span
	Blocks  []*Block
}

package inline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdxor/compiler/ast"
	"github.com/mdxor/compiler/inline"
)

func raws(src string, spans ...int) []ast.Span {
	var out []ast.Span
	for i := 0; i < len(spans); i += 2 {
		out = append(out, ast.Span{Start: spans[i], End: spans[i+1]})
	}
	return out
}

func text(src []byte, n *ast.Inline) string {
	var out []byte
	for _, s := range n.Spans {
		out = append(out, src[s.Start:s.End]...)
	}
	return string(out)
}

func TestParsePlainText(t *testing.T) {
	src := []byte("hello world")
	nodes := inline.Parse(src, raws("", 0, len(src)))
	require.Len(t, nodes, 1)
	require.Equal(t, ast.InlineText, nodes[0].Kind)
	require.Equal(t, "hello world", text(src, nodes[0]))
}

func TestParseEmphasis(t *testing.T) {
	src := []byte("a *b* c")
	nodes := inline.Parse(src, raws("", 0, len(src)))
	var em *ast.Inline
	for _, n := range nodes {
		if n.Kind == ast.InlineEmphasis {
			em = n
		}
	}
	require.NotNil(t, em)
	require.False(t, em.Strong)
	require.Equal(t, ast.MarkerAsterisk, em.Marker)
	require.Len(t, em.Children, 1)
	require.Equal(t, "b", text(src, em.Children[0]))
}

func TestParseStrongEmphasis(t *testing.T) {
	src := []byte("**bold**")
	nodes := inline.Parse(src, raws("", 0, len(src)))
	require.Len(t, nodes, 1)
	require.Equal(t, ast.InlineEmphasis, nodes[0].Kind)
	require.True(t, nodes[0].Strong)
}

func TestParseStrikethrough(t *testing.T) {
	src := []byte("~~gone~~")
	nodes := inline.Parse(src, raws("", 0, len(src)))
	require.Len(t, nodes, 1)
	require.Equal(t, ast.InlineEmphasis, nodes[0].Kind)
	require.Equal(t, ast.MarkerTilde, nodes[0].Marker)
}

func TestParseUnmatchedDelimiterStaysLiteral(t *testing.T) {
	src := []byte("a * b")
	nodes := inline.Parse(src, raws("", 0, len(src)))
	for _, n := range nodes {
		require.NotEqual(t, ast.InlineEmphasis, n.Kind)
	}
}

func TestParseCodeSpan(t *testing.T) {
	src := []byte("a `code` b")
	nodes := inline.Parse(src, raws("", 0, len(src)))
	var code *ast.Inline
	for _, n := range nodes {
		if n.Kind == ast.InlineCode {
			code = n
		}
	}
	require.NotNil(t, code)
	require.Equal(t, "code", text(src, code))
}

func TestParseCodeSpanTrimsSingleSurroundingSpace(t *testing.T) {
	src := []byte("` `` `")
	nodes := inline.Parse(src, raws("", 0, len(src)))
	require.Len(t, nodes, 1)
	require.Equal(t, ast.InlineCode, nodes[0].Kind)
	require.Equal(t, "``", text(src, nodes[0]))
}

func TestParseLink(t *testing.T) {
	src := []byte(`[text](https://example.com "a title")`)
	nodes := inline.Parse(src, raws("", 0, len(src)))
	require.Len(t, nodes, 1)
	link := nodes[0]
	require.Equal(t, ast.InlineLink, link.Kind)
	require.Equal(t, "https://example.com", string(src[link.URL.Start:link.URL.End]))
	require.Len(t, link.Title, 1)
	require.Equal(t, "a title", string(src[link.Title[0].Start:link.Title[0].End]))
	require.Len(t, link.Children, 1)
	require.Equal(t, "text", text(src, link.Children[0]))
}

func TestParseAutolinkURI(t *testing.T) {
	src := []byte("<https://example.com>")
	nodes := inline.Parse(src, raws("", 0, len(src)))
	require.Len(t, nodes, 1)
	require.Equal(t, ast.InlineAutoLink, nodes[0].Kind)
	require.False(t, nodes[0].IsEmail)
}

func TestParseAutolinkEmail(t *testing.T) {
	src := []byte("<user@example.com>")
	nodes := inline.Parse(src, raws("", 0, len(src)))
	require.Len(t, nodes, 1)
	require.Equal(t, ast.InlineAutoLink, nodes[0].Kind)
	require.True(t, nodes[0].IsEmail)
}

func TestParseEmbeddedInlineElement(t *testing.T) {
	src := []byte("before <Foo bar={1}/> after")
	nodes := inline.Parse(src, raws("", 0, len(src)))
	var el *ast.Inline
	for _, n := range nodes {
		if n.Kind == ast.InlineEmbedded {
			el = n
		}
	}
	require.NotNil(t, el)
	require.Equal(t, "Foo", el.Element.Tag)
}

func TestParseEscapedPunctuation(t *testing.T) {
	src := []byte(`\*not emphasis\*`)
	nodes := inline.Parse(src, raws("", 0, len(src)))
	for _, n := range nodes {
		require.NotEqual(t, ast.InlineEmphasis, n.Kind)
	}
}

func TestParseHardBreakFromTwoTrailingSpaces(t *testing.T) {
	src := []byte("line one  \nline two")
	nodes := inline.Parse(src, raws("", 0, 10, 11, len(src)))
	var sawBreak bool
	for _, n := range nodes {
		if n.Kind == ast.InlineHardBreak {
			sawBreak = true
		}
	}
	require.True(t, sawBreak)
}

func TestParseSoftBreakBetweenRaws(t *testing.T) {
	src := []byte("line one\nline two")
	nodes := inline.Parse(src, raws("", 0, 8, 9, len(src)))
	var sawSoft bool
	for _, n := range nodes {
		if n.Kind == ast.InlineSoftBreak {
			sawSoft = true
		}
	}
	require.True(t, sawSoft)
}

package jsx

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/mdxor/compiler/ast"
)

func TestParseElementFragmentWithBooleanAttr(t *testing.T) {
	src := []byte("<><div test={true}></div></>\n")
	el, end, ok := ParseElement(src, 0, DefaultMaxDepth)
	require.True(t, ok)
	require.Equal(t, "", el.Tag)
	require.Len(t, el.Children, 1)
	require.Equal(t, "div", el.Children[0].Element.Tag)
	require.Equal(t, len(src)-1, end)
}

func TestParseElementSelfClosing(t *testing.T) {
	src := []byte(`<Foo bar="baz" qux />`)
	el, end, ok := ParseElement(src, 0, DefaultMaxDepth)
	require.True(t, ok)
	require.Equal(t, "Foo", el.Tag)
	require.Equal(t, len(src), end)
	require.Len(t, el.Attributes, 2)
	require.Equal(t, ast.AttrKeyLiteralValue, el.Attributes[0].Kind)
	require.Equal(t, "baz", string(src[el.Attributes[0].Value.Start:el.Attributes[0].Value.End]))
	require.Equal(t, ast.AttrKeyTrue, el.Attributes[1].Kind)
}

func TestParseElementNestedObjectExpr(t *testing.T) {
	src := []byte(`<div test={{a:{b:[2]}}}></div>`)
	el, end, ok := ParseElement(src, 0, DefaultMaxDepth)
	require.True(t, ok)
	require.Equal(t, len(src), end)
	require.Equal(t, ast.AttrKeyValue, el.Attributes[0].Kind)
	require.Len(t, el.Attributes[0].Expr, 1)
}

func TestParseElementExpressionChildWithNestedElement(t *testing.T) {
	src := []byte(`<div>{cond ? <span>yes</span> : <span>no</span>}</div>`)
	el, _, ok := ParseElement(src, 0, DefaultMaxDepth)
	require.True(t, ok)
	require.Len(t, el.Children, 1)
	segs := el.Children[0].Expr
	var elementSegs int
	for _, s := range segs {
		if s.Kind == ast.ExprSegmentElement {
			elementSegs++
		}
	}
	require.Equal(t, 2, elementSegs)
}

func TestParseElementMismatchedAngleBracketFails(t *testing.T) {
	_, _, ok := ParseElement([]byte("<div"), 0, DefaultMaxDepth)
	require.False(t, ok)
}

func TestParseElementTextAndElementChildren(t *testing.T) {
	src := []byte(`<p>hello <b>world</b>!</p>`)
	el, end, ok := ParseElement(src, 0, DefaultMaxDepth)
	require.True(t, ok)
	require.Equal(t, len(src), end)
	require.Len(t, el.Children, 3)
	require.Equal(t, ast.ChildText, el.Children[0].Kind)
	require.Equal(t, ast.ChildElement, el.Children[1].Kind)
	require.Equal(t, ast.ChildText, el.Children[2].Kind)
}

func TestParseElementMismatchedCloseTagFails(t *testing.T) {
	_, _, ok := ParseElement([]byte(`<A>x</B>`), 0, DefaultMaxDepth)
	require.False(t, ok)
}

func TestParseElementMismatchedCloseTagOnFragmentFails(t *testing.T) {
	_, _, ok := ParseElement([]byte(`<>x</Foo>`), 0, DefaultMaxDepth)
	require.False(t, ok)
}

func TestParseElementDepthBoundFailsOnAdversarialNesting(t *testing.T) {
	_, _, ok := ParseElement([]byte(`<a><b></b></a>`), 0, 0)
	require.False(t, ok)
}

func TestParseElementWithinDepthBoundSucceeds(t *testing.T) {
	src := []byte(nestedTags(5))
	_, end, ok := ParseElement(src, 0, 10)
	require.True(t, ok)
	require.Equal(t, len(src), end)
}

func TestParseElementDepthCheckRejectsPastMaxDepth(t *testing.T) {
	_, _, ok := parseElement([]byte("<a></a>"), 0, 6, 5)
	require.False(t, ok)
}

func TestParseElementDepthCheckAllowsExactMaxDepth(t *testing.T) {
	_, end, ok := parseElement([]byte("<a></a>"), 0, 5, 5)
	require.True(t, ok)
	require.Equal(t, 7, end)
}

// nestedTags builds n levels of distinctly-named nested elements, e.g.
// nestedTags(2) is "<a0><a1></a1></a0>".
func nestedTags(n int) string {
	var open, close strings.Builder
	for i := 0; i < n; i++ {
		open.WriteString("<a" + strconv.Itoa(i) + ">")
	}
	for i := n - 1; i >= 0; i-- {
		close.WriteString("</a" + strconv.Itoa(i) + ">")
	}
	return open.String() + close.String()
}

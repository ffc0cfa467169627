package codegen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdxor/compiler/block"
	"github.com/mdxor/compiler/codegen"
	"github.com/mdxor/compiler/config"
	"github.com/mdxor/compiler/internal/testutil"
)

func generate(t *testing.T, src string) string {
	t.Helper()
	doc := block.Parse([]byte(src))
	return codegen.Generate(doc, []byte(src), config.Default())
}

func TestGenerateParagraph(t *testing.T) {
	out := generate(t, "hello world\n")
	require.Contains(t, out, `_jsxRuntime.jsx("p", {children: "hello world"})`)
	require.Contains(t, out, "_jsxRuntime.Fragment")
}

func TestGenerateHeading(t *testing.T) {
	out := generate(t, "## Title\n")
	require.Contains(t, out, `_jsxRuntime.jsx("h2", {children: "Title"})`)
}

func TestGenerateEmphasis(t *testing.T) {
	out := generate(t, "a *b* c\n")
	require.Contains(t, out, `_jsxRuntime.jsx("em", {children: "b"})`)
}

func TestGenerateStrongEmphasis(t *testing.T) {
	out := generate(t, "**bold**\n")
	require.Contains(t, out, `_jsxRuntime.jsx("strong", {children: "bold"})`)
}

func TestGenerateLink(t *testing.T) {
	out := generate(t, "[text](https://example.com)\n")
	require.Contains(t, out, `href: "https://example.com"`)
	require.Contains(t, out, `_jsxRuntime.jsx("a",`)
}

func TestGenerateThematicBreak(t *testing.T) {
	out := generate(t, "---\n")
	require.Contains(t, out, `_jsxRuntime.jsx("hr", {})`)
}

func TestGenerateTightListSkipsImplicitParagraph(t *testing.T) {
	out := generate(t, "- one\n- two\n")
	require.Contains(t, out, `_jsxRuntime.jsx("li", {children: "one"})`)
	require.NotContains(t, out, `"li", {children: _jsxRuntime.jsx("p"`)
}

func TestGenerateLooseListWrapsParagraph(t *testing.T) {
	out := generate(t, "- one\n\n- two\n")
	require.Contains(t, out, `_jsxRuntime.jsx("li", {children: _jsxRuntime.jsx("p", {children: "one"})})`)
}

func TestGenerateOrderedListWithStart(t *testing.T) {
	out := generate(t, "3. three\n4. four\n")
	require.Contains(t, out, `"ol", {start: 3,`)
}

func TestGenerateFencedCodeWithLanguageClass(t *testing.T) {
	out := generate(t, "```go\nfmt.Println(1)\n```\n")
	require.Contains(t, out, `className: "language-go"`)
	require.Contains(t, out, `_jsxRuntime.jsx("pre",`)
}

func TestGenerateFencedCodePreservesTrailingNewline(t *testing.T) {
	out := generate(t, "```js\nlet a=1;\n```\n")
	require.Contains(t, out, `"let a=1;\n"`)
}

func TestGenerateFencedCodeJoinsMultipleLinesWithNewlines(t *testing.T) {
	out := generate(t, "```js\nlet a=1;\nlet b=2;\n```\n")
	require.Contains(t, out, `"let a=1;\nlet b=2;\n"`)
}

func TestGenerateBlockQuote(t *testing.T) {
	out := generate(t, "> quoted\n")
	require.Contains(t, out, `_jsxRuntime.jsx("blockquote",`)
}

func TestGenerateLiftsPrelude(t *testing.T) {
	out := generate(t, "import {Foo} from \"./foo\";\n\n# Heading\n")
	require.Contains(t, out, "import {Foo} from \"./foo\";")
	require.Contains(t, out, `_jsxRuntime.jsx("h1", {children: "Heading"})`)
}

func TestGenerateBlockEmbeddedComponent(t *testing.T) {
	out := generate(t, "<Foo bar=\"1\" />\n")
	require.Contains(t, out, `_jsxRuntime.jsx(Foo, {bar: "1"})`)
}

func TestGenerateEmptyDocument(t *testing.T) {
	out := generate(t, "")
	require.Contains(t, out, "_jsxRuntime.jsx(_jsxRuntime.Fragment, {})")
}

func TestGenerateParagraphGolden(t *testing.T) {
	testutil.AssertGolden(t, "paragraph", generate(t, "hi\n"))
}

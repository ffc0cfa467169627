package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdxor/compiler"
	"github.com/mdxor/compiler/config"
	"github.com/mdxor/compiler/internal/diagnostics"
)

func TestParseSimpleDocument(t *testing.T) {
	out := compiler.ParseString("# Hello\n\nSome *text*.\n")
	require.Contains(t, out, `_jsxRuntime.jsx("h1", {children: "Hello"})`)
	require.Contains(t, out, `_jsxRuntime.jsx("em", {children: "text"})`)
}

func TestParseNeverFailsOnMalformedJSX(t *testing.T) {
	out := compiler.ParseString("<Foo bar=\n")
	require.NotEmpty(t, out)
}

func TestParseWithCustomRuntimeImport(t *testing.T) {
	out := compiler.ParseString("hi\n", config.WithRuntimeImport("jsxRT"))
	require.Contains(t, out, "jsxRT.jsx(")
}

func TestParseEmptySource(t *testing.T) {
	out := compiler.Parse(nil)
	require.NotEmpty(t, out)
}

func TestParseWithRecorderReportsMalformedEmbeddedElement(t *testing.T) {
	rec := diagnostics.NewRecorder()
	out := compiler.ParseWithRecorder([]byte("<Foo bar= trailing\n"), rec)
	require.NotEmpty(t, out)
	require.False(t, rec.Empty())
}

package formatter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdxor/compiler/formatter"
)

func TestNewFormatter(t *testing.T) {
	f := formatter.NewFormatter()
	require.NotNil(t, f)
}

func TestFormatter_Format_IndentsNestedCalls(t *testing.T) {
	f := formatter.NewFormatter()

	content := `_jsxRuntime.jsxs(_jsxRuntime.Fragment, {children: [_jsxRuntime.jsx("p", {children: "hi"})]})`

	formatted := f.Format(content)
	require.Contains(t, formatted, "jsxs(")
	require.Contains(t, formatted, "\n")
}

func TestFormatter_Format_PreservesStringLiteralContent(t *testing.T) {
	f := formatter.NewFormatter()

	content := `_jsxRuntime.jsx("p", {children: "a (b) c"})`

	formatted := f.Format(content)
	require.Contains(t, formatted, `"a (b) c"`)
}

func TestFormatter_Format_InsertsFinalNewline(t *testing.T) {
	f := formatter.NewFormatter()
	formatted := f.Format(`_jsxRuntime.jsx("hr", {})`)
	require.True(t, len(formatted) > 0 && formatted[len(formatted)-1] == '\n')
}

func TestFormatString(t *testing.T) {
	out := formatter.FormatString(`_jsxRuntime.jsx("hr", {})`)
	require.NotEmpty(t, out)
}

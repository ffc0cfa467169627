package testutil_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdxor/compiler/internal/testutil"
)

func TestAssertGoldenMatches(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	require.NoError(t, os.Mkdir("testdata", 0o755))
	require.NoError(t, os.WriteFile("testdata/sample.golden", []byte("hello\n"), 0o644))

	testutil.AssertGolden(t, "sample", "hello\n")
}

func TestUnifiedDiffMarksDivergentLines(t *testing.T) {
	d := testutil.UnifiedDiff("a", "b", "one\ntwo\n", "one\nthree\n")
	require.Contains(t, d, "- two")
	require.Contains(t, d, "+ three")
	require.Contains(t, d, "  one")
}

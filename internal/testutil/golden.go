// Package testutil provides a small golden-file comparison harness for
// codegen output, adapted from the teacher's diff package: generated JS
// source text is compared line by line rather than as an HTML tree (there
// is no DOM to normalize against here), but the unified-diff rendering
// itself follows the same shape.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// AssertGolden compares got against the contents of testdata/<name>.golden,
// failing t with a unified diff on mismatch. Set UPDATE_GOLDEN=1 to
// (re)write the golden file instead of comparing.
func AssertGolden(t *testing.T, name, got string) {
	t.Helper()
	path := filepath.Join("testdata", name+".golden")

	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir testdata: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("write golden %s: %v", path, err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v (run with UPDATE_GOLDEN=1 to create it)", path, err)
	}
	if got != string(want) {
		t.Fatalf("generated code does not match %s:\n%s", path, UnifiedDiff(path, "got", string(want), got))
	}
}

// UnifiedDiff renders a simple line-by-line diff between two texts, good
// enough for pointing at the first divergent line in a test failure.
func UnifiedDiff(name1, name2, content1, content2 string) string {
	lines1 := strings.Split(content1, "\n")
	lines2 := strings.Split(content2, "\n")

	var buf strings.Builder
	buf.WriteString("--- " + name1 + "\n")
	buf.WriteString("+++ " + name2 + "\n")

	maxLines := len(lines1)
	if len(lines2) > maxLines {
		maxLines = len(lines2)
	}
	for i := 0; i < maxLines; i++ {
		var line1, line2 string
		var has1, has2 bool
		if i < len(lines1) {
			line1, has1 = lines1[i], true
		}
		if i < len(lines2) {
			line2, has2 = lines2[i], true
		}
		switch {
		case line1 == line2 && has1:
			buf.WriteString("  " + line1 + "\n")
		default:
			if has1 {
				buf.WriteString("- " + line1 + "\n")
			}
			if has2 {
				buf.WriteString("+ " + line2 + "\n")
			}
		}
	}
	return buf.String()
}

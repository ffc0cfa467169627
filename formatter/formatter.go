// Package formatter pretty-prints generated `jsx`/`jsxs` call-expression
// text. The teacher's formatter walked a parsed golang.org/x/net/html DOM
// tree and re-indented it node by node; there is no DOM here; the output
// is a single deeply nested call expression, not a markup tree, so this
// formatter re-indents by tracking bracket depth across the text instead.
package formatter

import "strings"

// FormatterOptions configures indentation.
type FormatterOptions struct {
	IndentWidth int  // spaces per indent level (default: 2)
	InsertFinal bool // insert a final newline (default: true)
}

// DefaultFormatterOptions returns the default formatting options.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{IndentWidth: 2, InsertFinal: true}
}

// Formatter re-indents generated call-expression text.
type Formatter struct {
	opts FormatterOptions
}

// NewFormatter creates a Formatter with default options.
func NewFormatter() *Formatter {
	return &Formatter{opts: DefaultFormatterOptions()}
}

// NewFormatterWithOptions creates a Formatter with custom options.
func NewFormatterWithOptions(opts FormatterOptions) *Formatter {
	return &Formatter{opts: opts}
}

// Format re-indents generated code: a newline and indent are inserted
// after each opening '(', '[', '{' and before each closing one, tracking
// depth across the whole text. String literals are passed through without
// being re-indented internally, since a literal's content may itself
// contain bracket characters that don't represent nesting.
func (f *Formatter) Format(content string) string {
	var out strings.Builder
	depth := 0
	newline := func() {
		out.WriteByte('\n')
		out.WriteString(strings.Repeat(" ", depth*f.opts.IndentWidth))
	}

	i := 0
	for i < len(content) {
		c := content[i]
		switch c {
		case '"':
			j := i + 1
			for j < len(content) && content[j] != '"' {
				if content[j] == '\\' {
					j++
				}
				j++
			}
			if j < len(content) {
				j++
			}
			out.WriteString(content[i:j])
			i = j
			continue

		case '(', '[', '{':
			out.WriteByte(c)
			depth++
			if i+1 < len(content) && !isCloser(content[i+1]) {
				newline()
			}
			i++
			continue

		case ')', ']', '}':
			depth--
			if depth < 0 {
				depth = 0
			}
			if i > 0 && !isOpener(content[i-1]) {
				newline()
			}
			out.WriteByte(c)
			i++
			continue

		case ',':
			out.WriteByte(c)
			if i+1 < len(content) && content[i+1] == ' ' {
				i++
			}
			newline()
			i++
			continue

		default:
			out.WriteByte(c)
			i++
		}
	}

	result := out.String()
	if f.opts.InsertFinal && !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	return result
}

func isCloser(c byte) bool { return c == ')' || c == ']' || c == '}' }
func isOpener(c byte) bool { return c == '(' || c == '[' || c == '{' }

// FormatString is a convenience function for formatting a single string.
func FormatString(content string) string {
	return NewFormatter().Format(content)
}

package codegen

import (
	"strconv"
	"strings"
	"unicode"
)

// call assembles a `jsx`/`jsxs` factory call. It picks `jsxs` (the
// distinct "static number of children" factory the runtime contract
// calls for) whenever there is more than one child, `jsx` otherwise,
// matching the mapping spec.md §6 specifies.
func (g *generator) call(tag string, props []string, children []string) string {
	fn := g.opts.RuntimeImport + ".jsx"
	if len(children) > 1 {
		fn = g.opts.RuntimeImport + ".jsxs"
	}

	var body strings.Builder
	body.WriteByte('{')
	for i, p := range props {
		if i > 0 {
			body.WriteString(", ")
		}
		body.WriteString(p)
	}
	if len(children) == 1 {
		if len(props) > 0 {
			body.WriteString(", ")
		}
		body.WriteString("children: ")
		body.WriteString(children[0])
	} else if len(children) > 1 {
		if len(props) > 0 {
			body.WriteString(", ")
		}
		body.WriteString("children: [")
		for i, c := range children {
			if i > 0 {
				body.WriteString(", ")
			}
			body.WriteString(c)
		}
		body.WriteByte(']')
	}
	body.WriteByte('}')

	return fn + "(" + tag + ", " + body.String() + ")"
}

// quoteJSString renders raw source bytes as a double-quoted JS string
// literal. strconv.Quote's escaping rules (backslash, quote, control
// characters) coincide with JS string literal escaping for the printable
// + whitespace range this compiler ever needs to emit, so there is no
// separate hand-rolled escaper here.
func quoteJSString(b []byte) string {
	return strconv.Quote(string(b))
}

// propKey renders an attribute/prop key, quoting it only when it isn't a
// valid bare JS identifier (e.g. "data-id").
func propKey(name string) string {
	if isJSIdentifier(name) {
		return name
	}
	return strconv.Quote(name)
}

func isJSIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !(r == '_' || r == '$' || unicode.IsLetter(r)) {
				return false
			}
			continue
		}
		if !(r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}

// isComponentTag reports whether tag should be emitted as a bare
// identifier reference (an imported/local component) rather than a
// quoted host-element string, the usual JSX convention of capitalization
// deciding component-vs-host-element.
func isComponentTag(tag string) bool {
	if tag == "" {
		return false
	}
	r := []rune(tag)[0]
	return unicode.IsUpper(r)
}

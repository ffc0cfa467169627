// Package compiler turns MDX source into `jsx`/`jsxs` factory-call source
// text. It never fails: malformed input degrades to literal text or
// characters rather than producing an error, the same total-function
// contract the block, inline and jsx packages are built on.
package compiler

import (
	"github.com/mdxor/compiler/block"
	"github.com/mdxor/compiler/codegen"
	"github.com/mdxor/compiler/config"
	"github.com/mdxor/compiler/internal/diagnostics"
)

// Parse compiles MDX source bytes to generated code text.
func Parse(source []byte, opts ...config.Option) string {
	return ParseWithRecorder(source, nil, opts...)
}

// ParseString is Parse for a string source, avoiding a caller-side []byte
// conversion when the source is already a string.
func ParseString(source string, opts ...config.Option) string {
	return Parse([]byte(source), opts...)
}

// ParseWithRecorder is Parse but also reports fallback events (malformed
// embedded elements that degraded to plain paragraph text) to rec, for
// callers that want to surface them, e.g. the build CLI's -diagnostics flag.
// rec may be nil, in which case this is exactly Parse.
func ParseWithRecorder(source []byte, rec *diagnostics.Recorder, opts ...config.Option) string {
	o := config.Apply(opts...)
	bopts := []block.Option{block.WithMaxDepth(o.MaxDepth)}
	if rec != nil {
		bopts = append(bopts, block.WithRecorder(rec))
	}
	doc := block.Parse(source, bopts...)
	return codegen.Generate(doc, source, o)
}

// Package config holds the small set of knobs codegen needs, set through
// functional options the way the teacher's template loader configures
// itself with LoadOption values.
package config

// Options controls how codegen renders the block+inline tree into code.
type Options struct {
	// RuntimeImport is the identifier the generated `jsx`/`jsxs`/Fragment
	// calls are namespaced under, e.g. "_jsxRuntime.jsx(...)".
	RuntimeImport string

	// MaxDepth bounds container nesting in the block scanner and element
	// nesting in the jsx calls it makes, against adversarially deep input.
	// Inline-level jsx parsing uses jsx.DefaultMaxDepth instead.
	MaxDepth int
}

// Option configures Options.
type Option func(*Options)

// DefaultMaxDepth bounds recursive-descent nesting (container nesting in
// block, element/expression nesting in jsx) when nothing overrides it.
const DefaultMaxDepth = 100

// Default returns the default Options: runtime import "_jsxRuntime",
// depth bound DefaultMaxDepth.
func Default() Options {
	return Options{RuntimeImport: "_jsxRuntime", MaxDepth: DefaultMaxDepth}
}

// WithRuntimeImport overrides the runtime import identifier.
func WithRuntimeImport(name string) Option {
	return func(o *Options) { o.RuntimeImport = name }
}

// WithMaxDepth overrides the recursion-depth bound.
func WithMaxDepth(n int) Option {
	return func(o *Options) { o.MaxDepth = n }
}

// Apply folds opts onto Default().
func Apply(opts ...Option) Options {
	o := Default()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

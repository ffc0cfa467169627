// Package build implements the "mdxc build" subcommand: compile one MDX
// file to generated code.
package build

import (
	"flag"
	"fmt"
	"os"

	"github.com/mdxor/compiler"
	"github.com/mdxor/compiler/config"
	"github.com/mdxor/compiler/internal/diagnostics"
)

// Run executes the build command with the given arguments.
func Run(args []string) error {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	runtimeImport := fs.String("runtime-import", "_jsxRuntime", "identifier the generated jsx/jsxs calls are namespaced under")
	out := fs.String("o", "", "output file (default: stdout)")
	verbose := fs.Bool("diagnostics", false, "log fallback events (malformed embedded elements) to stderr")
	fs.Usage = func() { fmt.Fprint(os.Stderr, Usage()+"\n") }

	if err := fs.Parse(args); err != nil {
		return err
	}

	positional := fs.Args()
	if len(positional) != 1 {
		fs.Usage()
		return fmt.Errorf("build: requires exactly 1 argument")
	}

	source, err := os.ReadFile(positional[0])
	if err != nil {
		return fmt.Errorf("reading source file: %w", err)
	}

	var rec *diagnostics.Recorder
	if *verbose {
		rec = diagnostics.NewRecorder()
		rec.Log = true
	}

	generated := compiler.ParseWithRecorder(source, rec, config.WithRuntimeImport(*runtimeImport))

	if *out == "" {
		_, err = fmt.Fprint(os.Stdout, generated)
		return err
	}
	return os.WriteFile(*out, []byte(generated), 0o644)
}

// Usage returns the usage string for the build command.
func Usage() string {
	return `mdxc build <file.mdx>

Compile an MDX file to jsx/jsxs call code.

Options:
  -runtime-import string   identifier the generated calls are namespaced under (default "_jsxRuntime")
  -o string                output file (default: stdout)
  -diagnostics             log fallback events (malformed embedded elements) to stderr

Examples:
  mdxc build page.mdx
  mdxc build page.mdx -o page.js`
}

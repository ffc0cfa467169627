// Package fmtcmd implements the "mdxc fmt" subcommand: compile an MDX
// file and re-indent the generated call-expression code.
package fmtcmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/mdxor/compiler"
	"github.com/mdxor/compiler/formatter"
)

// Run executes the fmt command with the given arguments.
func Run(args []string) error {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, Usage()+"\n") }

	if err := fs.Parse(args); err != nil {
		return err
	}

	positional := fs.Args()
	if len(positional) != 1 {
		fs.Usage()
		return fmt.Errorf("fmt: requires exactly 1 argument")
	}

	source, err := os.ReadFile(positional[0])
	if err != nil {
		return fmt.Errorf("reading source file: %w", err)
	}

	generated := compiler.Parse(source)
	_, err = fmt.Fprint(os.Stdout, formatter.FormatString(generated))
	return err
}

// Usage returns the usage string for the fmt command.
func Usage() string {
	return `mdxc fmt <file.mdx>

Compile an MDX file and print re-indented generated code.

Examples:
  mdxc fmt page.mdx`
}

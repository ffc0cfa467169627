// Package astdump implements the "mdxc ast" subcommand: dump the parsed
// block AST as YAML for debugging. Inline content is not parsed; leaf
// blocks carry their raw spans.
package astdump

import (
	"flag"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/mdxor/compiler/block"
)

// Run executes the ast command with the given arguments.
func Run(args []string) error {
	fs := flag.NewFlagSet("ast", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, Usage()+"\n") }

	if err := fs.Parse(args); err != nil {
		return err
	}

	positional := fs.Args()
	if len(positional) != 1 {
		fs.Usage()
		return fmt.Errorf("ast: requires exactly 1 argument")
	}

	source, err := os.ReadFile(positional[0])
	if err != nil {
		return fmt.Errorf("reading source file: %w", err)
	}

	doc := block.Parse(source)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(doc)
}

// Usage returns the usage string for the ast command.
func Usage() string {
	return `mdxc ast <file.mdx>

Parse an MDX file and dump its block tree as YAML.

Examples:
  mdxc ast page.mdx`
}

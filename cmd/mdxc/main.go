// Command mdxc compiles MDX source to `jsx`/`jsxs` factory-call code.
package main

import (
	"fmt"
	"os"

	"github.com/mdxor/compiler/cmd/mdxc/commands/astdump"
	"github.com/mdxor/compiler/cmd/mdxc/commands/build"
	"github.com/mdxor/compiler/cmd/mdxc/commands/fmtcmd"
)

type command struct {
	run   func([]string) error
	usage func() string
}

var commands = map[string]command{
	"build": {build.Run, build.Usage},
	"ast":   {astdump.Run, astdump.Usage},
	"fmt":   {fmtcmd.Run, fmtcmd.Usage},
}

func main() {
	if err := start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func start() error {
	if len(os.Args) < 2 {
		usage()
		return fmt.Errorf("mdxc: missing command")
	}

	name := os.Args[1]
	if name == "-h" || name == "--help" || name == "help" {
		usage()
		return nil
	}

	cmd, ok := commands[name]
	if !ok {
		usage()
		return fmt.Errorf("mdxc: unknown command %q", name)
	}

	return cmd.run(os.Args[2:])
}

func usage() {
	fmt.Fprintln(os.Stderr, `mdxc <command> [arguments]

Commands:
  build   Compile MDX source to jsx/jsxs call code
  ast     Dump the parsed block AST as YAML
  fmt     Compile MDX source and print re-indented code

Run "mdxc <command> -h" for command-specific flags.`)
}

/*
File : rocket/cmd/rocket/main.go

Package main is the entry point for the Rocket interpreter. Grounded in the
teacher's main/main.go (flag-free os.Args dispatch between file mode and
REPL mode, a BANNER/VERSION/PROMPT set of package vars, fatih/color for
diagnostics) but the teacher's `server <port>` TCP mode is dropped — the
language is explicitly single-threaded, and a per-connection goroutine
pool has no home in this core (see DESIGN.md).
*/
package main

import (
	"bufio"
	"flag"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/rocket-lang/rocket/config"
	"github.com/rocket-lang/rocket/eval"
	"github.com/rocket-lang/rocket/repl"
	"github.com/rocket-lang/rocket/value"
)

var redColor = color.New(color.FgRed)

func main() {
	configPath := flag.String("config", "rocket.yaml", "path to an optional rocket.yaml settings file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		redColor.Fprintf(os.Stderr, "ConfigError: %v\n", err)
		os.Exit(1)
	}
	color.NoColor = !cfg.ColorEnabled()

	args := flag.Args()
	if len(args) == 0 {
		startRepl(cfg)
		return
	}
	runFile(args[0])
}

// startRepl launches the interactive session on stdin/stdout.
func startRepl(cfg *config.Config) {
	session := repl.New(cfg.Banner, cfg.Version, cfg.Line, cfg.Prompt, cfg.ColorEnabled())
	if err := session.Start(os.Stdin, os.Stdout); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// runFile reads and executes a single Rocket source file, following the
// exit-code contract: 0 on success, 1 with a single-line diagnostic on any
// LexError/ParseError/runtime error.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read '%s': %v\n", path, err)
		os.Exit(1)
	}
	if err := runSource(string(source), os.Stdout, os.Stdin); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

// runSource lexes, parses, and evaluates source against a fresh Runtime
// wired to stdout/stdin, separated out from runFile so the interpreter
// pipeline can be exercised directly in tests without going through
// os.Exit.
func runSource(source string, stdout io.Writer, stdin io.Reader) error {
	rt := &value.Runtime{Stdout: stdout, Stdin: bufio.NewReader(stdin)}
	return eval.Run(source, rt)
}

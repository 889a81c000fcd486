/*
File : rocket/repl/repl.go

Package repl implements Rocket's interactive Read-Eval-Print Loop. Grounded
in the teacher's repl/repl.go (a Repl struct carrying banner/version/prompt
text, readline for line editing and history, fatih/color for feedback) but
rewired onto this repo's own lexer/parser/eval pipeline and a single
value.Runtime shared across the whole session, so `let` bindings and `fn`
declarations made on one line stay visible on the next — unlike the
teacher's one-shot per-line result display, Rocket has no implicit
expression-value echo, so REPL output is exactly whatever the evaluated
line's `print` calls wrote.
*/
package repl

import (
	"bufio"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/rocket-lang/rocket/eval"
	"github.com/rocket-lang/rocket/value"
)

// Color definitions for REPL output, matching the teacher's palette:
// blue for separators, green for the banner, yellow for version info,
// cyan for usage hints, red for diagnostics.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session's display settings, populated from
// config.Config (or its defaults) by the CLI driver.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
	Color   bool
}

// New creates a Repl from the given display settings.
func New(banner, version, line, prompt string, useColor bool) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt, Color: useColor}
}

// PrintBanner writes the startup banner, version line, and usage hints.
func (r *Repl) PrintBanner(w io.Writer) {
	color.NoColor = !r.Color
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Rocket "+r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type Rocket code and press enter.")
	cyanColor.Fprintln(w, "Type '.exit' to quit.")
	cyanColor.Fprintln(w, "Use up/down arrows to navigate command history.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL loop against one persistent evaluator: it reads a
// line at a time via readline, echoes LexError/ParseError/runtime
// diagnostics in red, and otherwise produces only whatever output the
// evaluated line's own `print`/`input` calls cause.
//
// reader backs the evaluator's `input` builtin (the underlying terminal is
// also what readline reads lines from, but the two operate independently:
// readline owns line editing, reader owns `input`'s blocking read).
func (r *Repl) Start(reader io.Reader, writer io.Writer) error {
	r.PrintBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	rt := &value.Runtime{Stdout: writer, Stdin: bufio.NewReader(reader)}
	evaluator := eval.New(rt)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return nil
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, evaluator)
	}
}

// evalLine parses and runs one line of input against evaluator's
// persistent global frame. Unlike file-mode execution, an error here is
// printed and swallowed rather than ending the session, so a mistake can
// be corrected on the next line.
func (r *Repl) evalLine(w io.Writer, line string, evaluator *eval.Evaluator) {
	if err := eval.RunLine(evaluator, line); err != nil {
		redColor.Fprintf(w, "%s\n", err)
	}
}

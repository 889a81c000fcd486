/*
File : rocket/builtin/io.go

print, input, and format: the language's only I/O surface and its only
string-templating built-in. Grounded in the teacher's print/println/printf
(std/common.go, std/format.go), narrowed to the spec's single print form
and its {}-placeholder format built-in, and routed through value.Runtime's
Stdout/Stdin instead of a bare io.Writer so the REPL and file driver share
one plumbing point.
*/
package builtin

import (
	"fmt"
	"strings"

	"github.com/rocket-lang/rocket/rockerr"
	"github.com/rocket-lang/rocket/value"
)

func init() {
	register(&value.BuiltinFunction{Name: "print", MinArgs: 0, MaxArgs: -1, Fn: ioPrint})
	register(&value.BuiltinFunction{Name: "input", MinArgs: 0, MaxArgs: 1, Fn: ioInput})
	register(&value.BuiltinFunction{Name: "format", MinArgs: 1, MaxArgs: -1, Fn: ioFormat})
}

func ioPrint(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = value.Display(a)
	}
	fmt.Fprintln(rt.Stdout, strings.Join(parts, " "))
	return value.Null{}, nil
}

func ioInput(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	if len(args) == 1 {
		prompt, ok := args[0].(value.Str)
		if !ok {
			return nil, rockerr.New(rockerr.Type, pos, "input prompt must be str, got '%s'", value.TypeName(args[0]))
		}
		fmt.Fprint(rt.Stdout, prompt.V)
	}
	line, err := rt.Stdin.ReadString('\n')
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if err != nil && line == "" {
		return nil, rockerr.New(rockerr.Value, pos, "input: %s", err)
	}
	return value.Str{V: line}, nil
}

// ioFormat replaces each `{}` placeholder in the template with the display
// form of the next argument, left to right. Extra placeholders beyond the
// supplied arguments are a ValueError; extra arguments are ignored.
func ioFormat(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	tmpl, ok := args[0].(value.Str)
	if !ok {
		return nil, rockerr.New(rockerr.Type, pos, "format template must be str, got '%s'", value.TypeName(args[0]))
	}
	rest := args[1:]
	var b strings.Builder
	next := 0
	s := tmpl.V
	for {
		idx := strings.Index(s, "{}")
		if idx == -1 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:idx])
		if next >= len(rest) {
			return nil, rockerr.New(rockerr.Value, pos, "format: not enough arguments for template %q", tmpl.V)
		}
		b.WriteString(value.Display(rest[next]))
		next++
		s = s[idx+2:]
	}
	return value.Str{V: b.String()}, nil
}

/*
Package eval implements Rocket's tree-walking evaluator (spec §4.5): it
walks the AST produced by parser.Parse against a chain of env.Environment
frames, dispatching literals, names, and postfix expressions through the
value package, and native function calls through the builtin registry.

Grounded in the teacher's Evaluator (eval/evaluator.go) — a struct holding
the current scope and an io.Writer, with one Eval(node) entry point
dispatching on AST node type — generalized from the teacher's giant
operator-aware expression switch to Rocket's much smaller postfix-only
grammar, and from the teacher's ReturnValue-wrapper idiom to the explicit
signal sum type (eval/signal.go) that also covers break/continue.

File : rocket/eval/evaluator.go
*/
package eval

import (
	"github.com/rocket-lang/rocket/builtin"
	"github.com/rocket-lang/rocket/env"
	"github.com/rocket-lang/rocket/parser"
	"github.com/rocket-lang/rocket/rockerr"
	"github.com/rocket-lang/rocket/value"
)

// Evaluator holds the single Runtime (stdout/stdin) shared by every builtin
// call during one program run, plus the global frame every top-level
// FnDecl and `let` binds into.
type Evaluator struct {
	Global value.Env
	rt     *value.Runtime
}

// New creates an Evaluator with a fresh global frame pre-populated with
// every entry in the builtin registry, so any Rocket name that shadows a
// builtin (there is nothing stopping `let print = 1;`) behaves the same as
// shadowing any other global.
func New(rt *value.Runtime) *Evaluator {
	g := env.New(nil)
	for name, b := range builtin.Registry {
		g.Define(name, b)
	}
	return &Evaluator{Global: g, rt: rt}
}

// Run executes prog to completion against e's global frame: hoists every
// top-level FnDecl, then evaluates each top-level statement in order.
func (e *Evaluator) Run(prog *parser.Program) error {
	e.hoist(prog.Stmts)
	sig, err := e.execStmtsIn(prog.Stmts, e.Global)
	if err != nil {
		return err
	}
	if sig.kind != sigNormal {
		return rockerr.New(rockerr.CtrlFlow, sig.pos, "%s outside of any enclosing loop or function", sigName(sig.kind))
	}
	return nil
}

// Run lexes, parses, and evaluates src in one call, the entry point the
// CLI driver uses for whole-file execution.
func Run(src string, rt *value.Runtime) error {
	prog, err := parser.Parse(src)
	if err != nil {
		return err
	}
	return New(rt).Run(prog)
}

// RunLine parses and runs a single line of source against an existing
// Evaluator's global frame, the entry point the REPL uses so that `let`
// bindings and `fn` declarations accumulate across lines instead of
// starting from a fresh environment every time.
func RunLine(e *Evaluator, src string) error {
	prog, err := parser.Parse(src)
	if err != nil {
		return err
	}
	return e.Run(prog)
}

// hoist binds every top-level FnDecl into the global frame before any
// statement executes (spec §4.2's Hoisting rule). Nested FnDecls are left
// alone; they bind at their normal point of execution in execStmt.
func (e *Evaluator) hoist(stmts []parser.Statement) {
	for _, s := range stmts {
		if fn, ok := s.(*parser.FnDecl); ok {
			e.Global.Define(fn.Name, &value.Function{
				Name:    fn.Name,
				Params:  fn.Params,
				Body:    fn.Body,
				Closure: e.Global,
			})
		}
	}
}

func sigName(k signalKind) string {
	switch k {
	case sigBreak:
		return "break"
	case sigContinue:
		return "continue"
	case sigReturn:
		return "return"
	default:
		return "control flow"
	}
}

/*
File : rocket/value/function.go
*/
package value

import "github.com/rocket-lang/rocket/parser"

// Env is the subset of the environment's behavior a closure needs: looking
// up names against the captured frame chain and defining parameters in a
// fresh child. Defining it here as an interface (rather than importing the
// env package directly) is what lets env depend on value without a cycle —
// env.Environment satisfies this interface structurally. Grounded in the
// teacher's split between its function package (holds the Function struct)
// and its scope package (holds the frame chain Function.Env points at).
type Env interface {
	Lookup(name string) (Value, bool)
	Define(name string, v Value)
	Child() Env
}

// Function is a user-defined Rocket function: its parameter names, its
// body, and the frame that was active when the `fn` declaration was
// evaluated. Two Function values are eq only if they are the same instance
// (identity equality), which falls out of always holding them as *Function.
type Function struct {
	Name    string
	Params  []string
	Body    *parser.Block
	Closure Env
}

func (*Function) Kind() Kind { return FuncKind }

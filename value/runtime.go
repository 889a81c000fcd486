/*
File : rocket/value/runtime.go
*/
package value

import (
	"bufio"
	"io"
	"strconv"

	"github.com/rocket-lang/rocket/rockerr"
)

// Runtime carries the standard streams a builtin needs (print writes to
// Stdout, input reads from Stdin). The evaluator owns exactly one Runtime
// per program run and threads it through every builtin/method call,
// mirroring the teacher's std.Runtime/io.Writer plumbing but as a concrete
// struct rather than an interface, since Rocket builtins never call back
// into user functions.
type Runtime struct {
	Stdout io.Writer
	Stdin  *bufio.Reader
}

// Fn is the signature every BuiltinFunction and per-type method implements.
type Fn func(rt *Runtime, pos rockerr.Position, args []Value) (Value, error)

// BuiltinFunction is a native implementation bound into the global
// environment (table in spec §4.6) or into a per-type method table
// (List/Dict/Str, spec §4.3), reached through a BoundMethod.
type BuiltinFunction struct {
	Name    string
	MinArgs int
	MaxArgs int // -1 means variadic (no upper bound)
	Fn      Fn
}

func (*BuiltinFunction) Kind() Kind { return BuiltinKind }

// CheckArity validates len(args) against the builtin's declared arity,
// returning an ArityError positioned at pos on mismatch.
func (b *BuiltinFunction) CheckArity(pos rockerr.Position, args []Value) error {
	n := len(args)
	if n < b.MinArgs || (b.MaxArgs >= 0 && n > b.MaxArgs) {
		return rockerr.New(rockerr.Arity, pos, "%s expects %s, got %d", b.Name, arityDesc(b.MinArgs, b.MaxArgs), n)
	}
	return nil
}

func arityDesc(min, max int) string {
	switch {
	case max < 0:
		return strconv.Itoa(min) + "+ arguments"
	case min == max:
		return strconv.Itoa(min) + " argument(s)"
	default:
		return strconv.Itoa(min) + "-" + strconv.Itoa(max) + " arguments"
	}
}

// BoundMethod pairs a receiver with the BuiltinFunction implementing one of
// its per-type methods, so `list.push` can be invoked like any other
// callable: the receiver is prepended to the argument vector at call time.
type BoundMethod struct {
	Receiver Value
	Method   *BuiltinFunction
}

func (*BoundMethod) Kind() Kind { return BoundMethodKind }

/*
File : rocket/builtin/arith.go

Arithmetic built-ins: add, sub, mul, div, pow, mod, abs, neg. Int op Int
stays Int unless either operand is Float, in which case the result is
Float. mul additionally overloads onto list-times-int replication and
str-times-int repetition, per spec §4.6.
*/
package builtin

import (
	"math"
	"strings"

	"github.com/rocket-lang/rocket/rockerr"
	"github.com/rocket-lang/rocket/value"
)

func init() {
	register(&value.BuiltinFunction{Name: "add", MinArgs: 2, MaxArgs: 2, Fn: arithAdd})
	register(&value.BuiltinFunction{Name: "sub", MinArgs: 2, MaxArgs: 2, Fn: arithSub})
	register(&value.BuiltinFunction{Name: "mul", MinArgs: 2, MaxArgs: 2, Fn: arithMul})
	register(&value.BuiltinFunction{Name: "div", MinArgs: 2, MaxArgs: 2, Fn: arithDiv})
	register(&value.BuiltinFunction{Name: "pow", MinArgs: 2, MaxArgs: 2, Fn: arithPow})
	register(&value.BuiltinFunction{Name: "mod", MinArgs: 2, MaxArgs: 2, Fn: arithMod})
	register(&value.BuiltinFunction{Name: "abs", MinArgs: 1, MaxArgs: 1, Fn: arithAbs})
	register(&value.BuiltinFunction{Name: "neg", MinArgs: 1, MaxArgs: 1, Fn: arithNeg})
}

// asFloat reports whether v is Int or Float and returns its float64 value.
func asFloat(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case value.Int:
		return float64(n.V), true
	case value.Float:
		return n.V, true
	}
	return 0, false
}

func isFloat(v value.Value) bool {
	_, ok := v.(value.Float)
	return ok
}

func numericPair(pos rockerr.Position, name string, a, b value.Value) (float64, float64, error) {
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if !aok || !bok {
		return 0, 0, rockerr.New(rockerr.Type, pos, "%s expects numeric operands, got '%s' and '%s'", name, value.TypeName(a), value.TypeName(b))
	}
	return af, bf, nil
}

func arithAdd(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	a, b := args[0], args[1]
	af, bf, err := numericPair(pos, "add", a, b)
	if err != nil {
		return nil, err
	}
	if isFloat(a) || isFloat(b) {
		return value.Float{V: af + bf}, nil
	}
	return value.Int{V: a.(value.Int).V + b.(value.Int).V}, nil
}

func arithSub(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	a, b := args[0], args[1]
	af, bf, err := numericPair(pos, "sub", a, b)
	if err != nil {
		return nil, err
	}
	if isFloat(a) || isFloat(b) {
		return value.Float{V: af - bf}, nil
	}
	return value.Int{V: a.(value.Int).V - b.(value.Int).V}, nil
}

// arithMul implements numeric multiplication plus two replication
// overloads: a List times an Int repeats the list's elements, and a Str
// times an Int repeats the string, matching the sample program's
// `mul([false], 3)`.
func arithMul(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	a, b := args[0], args[1]

	if l, ok := a.(*value.List); ok {
		if n, ok := b.(value.Int); ok {
			return replicateList(l, n.V), nil
		}
	}
	if l, ok := b.(*value.List); ok {
		if n, ok := a.(value.Int); ok {
			return replicateList(l, n.V), nil
		}
	}
	if s, ok := a.(value.Str); ok {
		if n, ok := b.(value.Int); ok {
			return replicateStr(s, n.V), nil
		}
	}
	if s, ok := b.(value.Str); ok {
		if n, ok := a.(value.Int); ok {
			return replicateStr(s, n.V), nil
		}
	}

	af, bf, err := numericPair(pos, "mul", a, b)
	if err != nil {
		return nil, err
	}
	if isFloat(a) || isFloat(b) {
		return value.Float{V: af * bf}, nil
	}
	return value.Int{V: a.(value.Int).V * b.(value.Int).V}, nil
}

func replicateList(l *value.List, n int64) *value.List {
	if n < 0 {
		n = 0
	}
	out := make([]value.Value, 0, int64(len(l.Elems))*n)
	for i := int64(0); i < n; i++ {
		out = append(out, l.Elems...)
	}
	return &value.List{Elems: out}
}

func replicateStr(s value.Str, n int64) value.Str {
	if n < 0 {
		n = 0
	}
	return value.Str{V: strings.Repeat(s.V, int(n))}
}

func arithDiv(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	a, b := args[0], args[1]
	af, bf, err := numericPair(pos, "div", a, b)
	if err != nil {
		return nil, err
	}
	if bf == 0 {
		return nil, rockerr.New(rockerr.Value, pos, "division by zero")
	}
	if isFloat(a) || isFloat(b) {
		return value.Float{V: af / bf}, nil
	}
	ai, bi := a.(value.Int).V, b.(value.Int).V
	return value.Int{V: ai / bi}, nil
}

func arithPow(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	a, b := args[0], args[1]
	af, bf, err := numericPair(pos, "pow", a, b)
	if err != nil {
		return nil, err
	}
	if isFloat(a) || isFloat(b) {
		return value.Float{V: math.Pow(af, bf)}, nil
	}
	return value.Int{V: int64(math.Pow(af, bf))}, nil
}

func arithMod(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	a, b := args[0], args[1]
	af, bf, err := numericPair(pos, "mod", a, b)
	if err != nil {
		return nil, err
	}
	if bf == 0 {
		return nil, rockerr.New(rockerr.Value, pos, "modulo by zero")
	}
	if isFloat(a) || isFloat(b) {
		return value.Float{V: math.Mod(af, bf)}, nil
	}
	ai, bi := a.(value.Int).V, b.(value.Int).V
	return value.Int{V: ai % bi}, nil
}

func arithAbs(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	switch n := args[0].(type) {
	case value.Int:
		if n.V < 0 {
			return value.Int{V: -n.V}, nil
		}
		return n, nil
	case value.Float:
		return value.Float{V: math.Abs(n.V)}, nil
	default:
		return nil, rockerr.New(rockerr.Type, pos, "abs expects a numeric operand, got '%s'", value.TypeName(args[0]))
	}
}

func arithNeg(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	switch n := args[0].(type) {
	case value.Int:
		return value.Int{V: -n.V}, nil
	case value.Float:
		return value.Float{V: -n.V}, nil
	default:
		return nil, rockerr.New(rockerr.Type, pos, "neg expects a numeric operand, got '%s'", value.TypeName(args[0]))
	}
}

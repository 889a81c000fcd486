/*
File : rocket/builtin/logic.go

Boolean built-ins: and, or, not. Neither and nor or short-circuits — both
arguments are always evaluated by the caller before the built-in itself
ever runs, since Rocket has no operator syntax to special-case — per spec
§4.6.
*/
package builtin

import (
	"github.com/rocket-lang/rocket/rockerr"
	"github.com/rocket-lang/rocket/value"
)

func init() {
	register(&value.BuiltinFunction{Name: "and", MinArgs: 2, MaxArgs: 2, Fn: logicAnd})
	register(&value.BuiltinFunction{Name: "or", MinArgs: 2, MaxArgs: 2, Fn: logicOr})
	register(&value.BuiltinFunction{Name: "not", MinArgs: 1, MaxArgs: 1, Fn: logicNot})
}

func logicAnd(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	return value.Bool{V: value.Truthy(args[0]) && value.Truthy(args[1])}, nil
}

func logicOr(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	return value.Bool{V: value.Truthy(args[0]) || value.Truthy(args[1])}, nil
}

func logicNot(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	return value.Bool{V: !value.Truthy(args[0])}, nil
}

/*
File : rocket/value/str_methods.go

Str's per-type method table from spec §4.3: split, length, upper, lower,
replace.
*/
package value

import (
	"strings"
	"unicode/utf8"

	"github.com/rocket-lang/rocket/rockerr"
)

var strMethods map[string]*BuiltinFunction

func init() {
	table := []*BuiltinFunction{
		{Name: "length", MinArgs: 1, MaxArgs: 1, Fn: strLength},
		{Name: "split", MinArgs: 2, MaxArgs: 2, Fn: strSplit},
		{Name: "upper", MinArgs: 1, MaxArgs: 1, Fn: strUpper},
		{Name: "lower", MinArgs: 1, MaxArgs: 1, Fn: strLower},
		{Name: "replace", MinArgs: 3, MaxArgs: 3, Fn: strReplace},
	}
	strMethods = make(map[string]*BuiltinFunction, len(table))
	for _, b := range table {
		strMethods[b.Name] = b
	}
}

func strLength(rt *Runtime, pos rockerr.Position, args []Value) (Value, error) {
	s := args[0].(Str)
	return Int{V: int64(utf8.RuneCountInString(s.V))}, nil
}

func strSplit(rt *Runtime, pos rockerr.Position, args []Value) (Value, error) {
	s := args[0].(Str)
	sep, ok := args[1].(Str)
	if !ok {
		return nil, rockerr.New(rockerr.Type, pos, "split separator must be str, got '%s'", TypeName(args[1]))
	}
	var parts []string
	if sep.V == "" {
		parts = strings.Split(s.V, "")
	} else {
		parts = strings.Split(s.V, sep.V)
	}
	elems := make([]Value, len(parts))
	for i, p := range parts {
		elems[i] = Str{V: p}
	}
	return &List{Elems: elems}, nil
}

func strUpper(rt *Runtime, pos rockerr.Position, args []Value) (Value, error) {
	s := args[0].(Str)
	return Str{V: strings.ToUpper(s.V)}, nil
}

func strLower(rt *Runtime, pos rockerr.Position, args []Value) (Value, error) {
	s := args[0].(Str)
	return Str{V: strings.ToLower(s.V)}, nil
}

func strReplace(rt *Runtime, pos rockerr.Position, args []Value) (Value, error) {
	s := args[0].(Str)
	old, ok1 := args[1].(Str)
	repl, ok2 := args[2].(Str)
	if !ok1 || !ok2 {
		return nil, rockerr.New(rockerr.Type, pos, "replace expects str arguments")
	}
	return Str{V: strings.ReplaceAll(s.V, old.V, repl.V)}, nil
}

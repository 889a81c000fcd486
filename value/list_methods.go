/*
File : rocket/value/list_methods.go

List's per-type method table from spec §4.3: index, count, push, pop,
length. Grounded in the teacher's std/arrays.go registration pattern (one
Builtin per method, arity-checked up front, type-asserted receiver) but
pared to the closed method set the language specifies.
*/
package value

import "github.com/rocket-lang/rocket/rockerr"

var listMethods map[string]*BuiltinFunction

func init() {
	table := []*BuiltinFunction{
		{Name: "length", MinArgs: 1, MaxArgs: 1, Fn: listLength},
		{Name: "count", MinArgs: 2, MaxArgs: 2, Fn: listCount},
		{Name: "push", MinArgs: 2, MaxArgs: 2, Fn: listPush},
		{Name: "pop", MinArgs: 1, MaxArgs: 1, Fn: listPop},
		{Name: "index", MinArgs: 2, MaxArgs: 2, Fn: listIndexOf},
	}
	listMethods = make(map[string]*BuiltinFunction, len(table))
	for _, b := range table {
		listMethods[b.Name] = b
	}
}

func listLength(rt *Runtime, pos rockerr.Position, args []Value) (Value, error) {
	l := args[0].(*List)
	return Int{V: int64(len(l.Elems))}, nil
}

func listCount(rt *Runtime, pos rockerr.Position, args []Value) (Value, error) {
	l := args[0].(*List)
	var n int64
	for _, e := range l.Elems {
		if Eq(e, args[1]) {
			n++
		}
	}
	return Int{V: n}, nil
}

// listPush appends the given value in place and returns the receiver, so
// calls can be chained the way array builders commonly are.
func listPush(rt *Runtime, pos rockerr.Position, args []Value) (Value, error) {
	l := args[0].(*List)
	l.Elems = append(l.Elems, args[1])
	return l, nil
}

func listPop(rt *Runtime, pos rockerr.Position, args []Value) (Value, error) {
	l := args[0].(*List)
	if len(l.Elems) == 0 {
		return nil, rockerr.New(rockerr.Index, pos, "pop from empty list")
	}
	last := l.Elems[len(l.Elems)-1]
	l.Elems = l.Elems[:len(l.Elems)-1]
	return last, nil
}

// listIndexOf returns the index of the first element eq to the argument,
// or -1 if absent (there being no occurrence is not itself an error).
func listIndexOf(rt *Runtime, pos rockerr.Position, args []Value) (Value, error) {
	l := args[0].(*List)
	for i, e := range l.Elems {
		if Eq(e, args[1]) {
			return Int{V: int64(i)}, nil
		}
	}
	return Int{V: -1}, nil
}

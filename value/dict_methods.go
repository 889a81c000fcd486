/*
File : rocket/value/dict_methods.go

Dict's per-type method table from spec §4.3: keys, values, has, remove,
length.
*/
package value

import "github.com/rocket-lang/rocket/rockerr"

var dictMethods map[string]*BuiltinFunction

func init() {
	table := []*BuiltinFunction{
		{Name: "length", MinArgs: 1, MaxArgs: 1, Fn: dictLength},
		{Name: "keys", MinArgs: 1, MaxArgs: 1, Fn: dictKeys},
		{Name: "values", MinArgs: 1, MaxArgs: 1, Fn: dictValues},
		{Name: "has", MinArgs: 2, MaxArgs: 2, Fn: dictHas},
		{Name: "remove", MinArgs: 2, MaxArgs: 2, Fn: dictRemove},
	}
	dictMethods = make(map[string]*BuiltinFunction, len(table))
	for _, b := range table {
		dictMethods[b.Name] = b
	}
}

func dictLength(rt *Runtime, pos rockerr.Position, args []Value) (Value, error) {
	d := args[0].(*Dict)
	return Int{V: int64(d.Len())}, nil
}

func dictKeys(rt *Runtime, pos rockerr.Position, args []Value) (Value, error) {
	d := args[0].(*Dict)
	return &List{Elems: d.OrderedKeys()}, nil
}

func dictValues(rt *Runtime, pos rockerr.Position, args []Value) (Value, error) {
	d := args[0].(*Dict)
	return &List{Elems: d.OrderedValues()}, nil
}

func dictHas(rt *Runtime, pos rockerr.Position, args []Value) (Value, error) {
	d := args[0].(*Dict)
	_, ok, err := d.Get(args[1], pos)
	if err != nil {
		return nil, err
	}
	return Bool{V: ok}, nil
}

func dictRemove(rt *Runtime, pos rockerr.Position, args []Value) (Value, error) {
	d := args[0].(*Dict)
	if err := d.Remove(args[1], pos); err != nil {
		return nil, err
	}
	return Null{}, nil
}

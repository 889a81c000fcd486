/*
File : rocket/value/access.go

Implements spec §4.3's attribute/item dispatch: target.name and target[key].
*/
package value

import "github.com/rocket-lang/rocket/rockerr"

// Subscript implements target[key] for List, Dict, and Str.
func Subscript(target, key Value, pos rockerr.Position) (Value, error) {
	switch t := target.(type) {
	case *List:
		i, err := listIndex(t, key, pos)
		if err != nil {
			return nil, err
		}
		return t.Elems[i], nil
	case *Dict:
		v, ok, err := t.Get(key, pos)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, rockerr.New(rockerr.Key, pos, "key %s not found", repr(key))
		}
		return v, nil
	case Str:
		idx, ok := key.(Int)
		if !ok {
			return nil, rockerr.New(rockerr.Type, pos, "string index must be int, got '%s'", TypeName(key))
		}
		runes := []rune(t.V)
		i := int(idx.V)
		if i < 0 {
			i += len(runes)
		}
		if i < 0 || i >= len(runes) {
			return nil, rockerr.New(rockerr.Index, pos, "string index %d out of range", idx.V)
		}
		return Str{V: string(runes[i])}, nil
	default:
		return nil, rockerr.New(rockerr.Type, pos, "'%s' is not indexable", TypeName(target))
	}
}

// SetSubscript implements target[key] = value, the only form of subscript
// assignment the language grammar allows (spec §3/§4.4: no bare-name
// assignment statement, only mutation through subscript/attribute on an
// existing mutable value looked up by name).
func SetSubscript(target, key, val Value, pos rockerr.Position) error {
	switch t := target.(type) {
	case *List:
		i, err := listIndex(t, key, pos)
		if err != nil {
			return err
		}
		t.Elems[i] = val
		return nil
	case *Dict:
		return t.Set(key, val, pos)
	default:
		return rockerr.New(rockerr.Type, pos, "cannot assign into '%s'", TypeName(target))
	}
}

func listIndex(l *List, key Value, pos rockerr.Position) (int, error) {
	idx, ok := key.(Int)
	if !ok {
		return 0, rockerr.New(rockerr.Type, pos, "list index must be int, got '%s'", TypeName(key))
	}
	i := int(idx.V)
	if i < 0 {
		i += len(l.Elems)
	}
	if i < 0 || i >= len(l.Elems) {
		return 0, rockerr.New(rockerr.Index, pos, "list index %d out of range", idx.V)
	}
	return i, nil
}

// Attr implements target.name: a Dict key hit wins first, then a per-type
// method table lookup producing a BoundMethod, then AttrError.
func Attr(target Value, name string, pos rockerr.Position) (Value, error) {
	if d, ok := target.(*Dict); ok {
		if v, present, err := d.Get(Str{V: name}, pos); err == nil && present {
			return v, nil
		}
	}
	table := methodTableFor(target)
	if table != nil {
		if m, ok := table[name]; ok {
			return &BoundMethod{Receiver: target, Method: m}, nil
		}
	}
	return nil, rockerr.New(rockerr.Attr, pos, "'%s' has no attribute '%s'", TypeName(target), name)
}

// SetAttr implements target.name = value, which only makes sense on a Dict
// (it sets/overwrites a record field); every other target's attr surface is
// read-only methods, so attempting to assign one is an AttrError.
func SetAttr(target Value, name string, val Value, pos rockerr.Position) error {
	d, ok := target.(*Dict)
	if !ok {
		return rockerr.New(rockerr.Attr, pos, "cannot assign attribute '%s' on '%s'", name, TypeName(target))
	}
	return d.Set(Str{V: name}, val, pos)
}

func methodTableFor(v Value) map[string]*BuiltinFunction {
	switch v.(type) {
	case *List:
		return listMethods
	case *Dict:
		return dictMethods
	case Str:
		return strMethods
	default:
		return nil
	}
}

/*
File : rocket/value/container.go

List and Dict are Rocket's two mutable, reference-shared container types.
Both are always held behind a pointer so `let b = a;` aliases the same
backing storage, matching spec §3's container-aliasing rule.
*/
package value

import (
	"strconv"

	"github.com/rocket-lang/rocket/rockerr"
)

type List struct {
	Elems []Value
}

func (*List) Kind() Kind { return ListKind }

// Dict preserves insertion order (order) while offering O(1) lookup keyed
// by a hash derived from the key's variant and contents (hashKey below).
// keys retains the original Value so display/iteration can recover it.
type Dict struct {
	order []string
	keys  map[string]Value
	vals  map[string]Value
}

func NewDict() *Dict {
	return &Dict{keys: map[string]Value{}, vals: map[string]Value{}}
}

func (*Dict) Kind() Kind { return DictKind }

func (d *Dict) Len() int { return len(d.order) }

// OrderedKeys returns the dict's keys in insertion order, the iteration
// order a for-of loop over a Dict must use.
func (d *Dict) OrderedKeys() []Value {
	out := make([]Value, len(d.order))
	for i, hk := range d.order {
		out[i] = d.keys[hk]
	}
	return out
}

func (d *Dict) OrderedValues() []Value {
	out := make([]Value, len(d.order))
	for i, hk := range d.order {
		out[i] = d.vals[hk]
	}
	return out
}

// Get looks up key, returning (value, true) on a hit.
func (d *Dict) Get(key Value, pos rockerr.Position) (Value, bool, error) {
	hk, err := hashKey(key, pos)
	if err != nil {
		return nil, false, err
	}
	v, ok := d.vals[hk]
	return v, ok, nil
}

// Set inserts or overwrites key -> val, appending to the insertion order
// only when key is new.
func (d *Dict) Set(key, val Value, pos rockerr.Position) error {
	hk, err := hashKey(key, pos)
	if err != nil {
		return err
	}
	if _, exists := d.vals[hk]; !exists {
		d.order = append(d.order, hk)
		d.keys[hk] = key
	}
	d.vals[hk] = val
	return nil
}

// Remove deletes key, reporting KeyError if it was absent.
func (d *Dict) Remove(key Value, pos rockerr.Position) error {
	hk, err := hashKey(key, pos)
	if err != nil {
		return err
	}
	if _, ok := d.vals[hk]; !ok {
		return rockerr.New(rockerr.Key, pos, "key %s not found", repr(key))
	}
	delete(d.vals, hk)
	delete(d.keys, hk)
	for i, k := range d.order {
		if k == hk {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return nil
}

// hashKey derives a dict storage key from a hashable Value. Int and Float
// are kept distinct (1 and 1.0 occupy different slots) even though they are
// eq; this is a deliberate, documented narrowing of eq's numeric coercion,
// not an oversight (see DESIGN.md).
func hashKey(v Value, pos rockerr.Position) (string, error) {
	switch x := v.(type) {
	case Int:
		return "i:" + strconv.FormatInt(x.V, 10), nil
	case Float:
		return "f:" + strconv.FormatFloat(x.V, 'g', -1, 64), nil
	case Str:
		return "s:" + x.V, nil
	case Bool:
		return "b:" + strconv.FormatBool(x.V), nil
	case Null:
		return "n:", nil
	default:
		return "", rockerr.New(rockerr.Type, pos, "unhashable type '%s'", TypeName(v))
	}
}

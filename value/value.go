/*
Package value defines the Rocket runtime value model: a closed tagged union
over Int, Float, Str, Bool, Null, List, Dict, Function, BuiltinFunction, and
BoundMethod, plus the operations every evaluator needs on them — truthiness,
equality, display, and attribute/item dispatch. This replaces the teacher
repo's objects package with the same per-variant-type shape (one small
struct/type per variant, a shared marker method for type identity) but a
closed set of variants matching the language specification instead of the
teacher's open-ended struct/enum/set/tuple zoo.

File : rocket/value/value.go
*/
package value

import "fmt"

// Kind identifies which variant of the tagged union a Value holds.
type Kind string

const (
	IntKind         Kind = "int"
	FloatKind       Kind = "float"
	StrKind         Kind = "str"
	BoolKind        Kind = "bool"
	NullKind        Kind = "null"
	ListKind        Kind = "list"
	DictKind        Kind = "dict"
	FuncKind        Kind = "func"
	BuiltinKind     Kind = "builtin"
	BoundMethodKind Kind = "bound_method"
	RangeKind       Kind = "range"
)

// Value is implemented by every Rocket runtime value. Int, Float, Str, Bool,
// and Null have Go value semantics (plain structs, copied on assignment);
// List, Dict, Function, BuiltinFunction, and BoundMethod are always held
// behind a pointer so that assigning one variable from another aliases the
// same underlying container, per the language's reference-sharing rule.
type Value interface {
	Kind() Kind
}

type Int struct{ V int64 }

func (Int) Kind() Kind { return IntKind }

type Float struct{ V float64 }

func (Float) Kind() Kind { return FloatKind }

type Str struct{ V string }

func (Str) Kind() Kind { return StrKind }

type Bool struct{ V bool }

func (Bool) Kind() Kind { return BoolKind }

type Null struct{}

func (Null) Kind() Kind { return NullKind }

// Truthy implements the language's truthiness coercion: false, null, 0,
// 0.0, "", [], and {} are falsy; everything else (including every function
// value) is truthy.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case Bool:
		return x.V
	case Null:
		return false
	case Int:
		return x.V != 0
	case Float:
		return x.V != 0
	case Str:
		return x.V != ""
	case *List:
		return len(x.Elems) != 0
	case *Dict:
		return len(x.order) != 0
	case *Range:
		return x.Len() != 0
	default:
		return true
	}
}

// TypeName returns the human-readable type name used in TypeError messages.
func TypeName(v Value) string {
	switch v.(type) {
	case Int:
		return "int"
	case Float:
		return "float"
	case Str:
		return "str"
	case Bool:
		return "bool"
	case Null:
		return "null"
	case *List:
		return "list"
	case *Dict:
		return "dict"
	case *Function, *BuiltinFunction, *BoundMethod:
		return "function"
	case *Range:
		return "range"
	default:
		return fmt.Sprintf("%T", v)
	}
}

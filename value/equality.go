/*
File : rocket/value/equality.go
*/
package value

// Eq implements the language's eq semantics: Int and Float compare by
// numeric value (so eq(1, 1.0) is true), List and Dict compare structurally,
// Function/BuiltinFunction compare by identity, a BoundMethod equals another
// bound to the same method whose receiver is eq to its own, and every other
// pairing of differing kinds is unequal.
func Eq(a, b Value) bool {
	switch x := a.(type) {
	case Int:
		switch y := b.(type) {
		case Int:
			return x.V == y.V
		case Float:
			return float64(x.V) == y.V
		}
		return false
	case Float:
		switch y := b.(type) {
		case Int:
			return x.V == float64(y.V)
		case Float:
			return x.V == y.V
		}
		return false
	case Str:
		y, ok := b.(Str)
		return ok && x.V == y.V
	case Bool:
		y, ok := b.(Bool)
		return ok && x.V == y.V
	case Null:
		_, ok := b.(Null)
		return ok
	case *List:
		y, ok := b.(*List)
		if !ok || len(x.Elems) != len(y.Elems) {
			return false
		}
		for i := range x.Elems {
			if !Eq(x.Elems[i], y.Elems[i]) {
				return false
			}
		}
		return true
	case *Dict:
		y, ok := b.(*Dict)
		if !ok || len(x.order) != len(y.order) {
			return false
		}
		for _, k := range x.order {
			xv := x.vals[k]
			yv, present := y.vals[k]
			if !present || !Eq(xv, yv) {
				return false
			}
		}
		return true
	case *Function:
		y, ok := b.(*Function)
		return ok && x == y
	case *BuiltinFunction:
		y, ok := b.(*BuiltinFunction)
		return ok && x == y
	case *BoundMethod:
		y, ok := b.(*BoundMethod)
		return ok && x.Method == y.Method && Eq(x.Receiver, y.Receiver)
	case *Range:
		y, ok := b.(*Range)
		return ok && x.Start == y.Start && x.Stop == y.Stop && x.Step == y.Step
	default:
		return false
	}
}

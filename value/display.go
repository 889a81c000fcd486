/*
File : rocket/value/display.go
*/
package value

import (
	"strconv"
	"strings"
)

// Display renders v the way the print builtin does: raw characters for Str,
// decimal notation for Int/Float (Float always shows at least one
// fractional digit), true/false/null for Bool/Null, and List/Dict
// recursively using their literal syntax (with nested strings quoted, the
// way a literal would spell them).
func Display(v Value) string {
	if s, ok := v.(Str); ok {
		return s.V
	}
	return repr(v)
}

// repr renders v the way it would appear written as a literal — used both
// for top-level List/Dict display and for every nested element.
func repr(v Value) string {
	switch x := v.(type) {
	case Int:
		return strconv.FormatInt(x.V, 10)
	case Float:
		return formatFloat(x.V)
	case Str:
		return `"` + x.V + `"`
	case Bool:
		if x.V {
			return "true"
		}
		return "false"
	case Null:
		return "null"
	case *List:
		parts := make([]string, len(x.Elems))
		for i, e := range x.Elems {
			parts[i] = repr(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Dict:
		parts := make([]string, 0, len(x.order))
		for _, k := range x.order {
			parts = append(parts, repr(x.keys[k])+": "+repr(x.vals[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *Function:
		return "<function>"
	case *BuiltinFunction:
		return "<builtin " + x.Name + ">"
	case *BoundMethod:
		return "<bound method " + x.Method.Name + ">"
	case *Range:
		return "<range>"
	default:
		return "<value>"
	}
}

// formatFloat prints a float in plain decimal notation with at least one
// fractional digit, e.g. 2 -> "2.0", 2.5 -> "2.5".
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

/*
File : rocket/builtin/compare.go

Comparison built-ins: lt, le, eq, ne, ge, gt. eq and ne accept any pair of
values and defer to value.Eq's structural/numeric-coercing equality. The
ordering built-ins (lt/le/ge/gt) are defined only for numeric-numeric and
str-str pairs, per spec §4.6.
*/
package builtin

import (
	"github.com/rocket-lang/rocket/rockerr"
	"github.com/rocket-lang/rocket/value"
)

func init() {
	register(&value.BuiltinFunction{Name: "lt", MinArgs: 2, MaxArgs: 2, Fn: cmpLt})
	register(&value.BuiltinFunction{Name: "le", MinArgs: 2, MaxArgs: 2, Fn: cmpLe})
	register(&value.BuiltinFunction{Name: "ge", MinArgs: 2, MaxArgs: 2, Fn: cmpGe})
	register(&value.BuiltinFunction{Name: "gt", MinArgs: 2, MaxArgs: 2, Fn: cmpGt})
	register(&value.BuiltinFunction{Name: "eq", MinArgs: 2, MaxArgs: 2, Fn: cmpEq})
	register(&value.BuiltinFunction{Name: "ne", MinArgs: 2, MaxArgs: 2, Fn: cmpNe})
}

// order returns -1, 0, or 1 comparing a to b, or an error if the pair is
// not numeric-numeric or str-str.
func order(pos rockerr.Position, name string, a, b value.Value) (int, error) {
	if sa, ok := a.(value.Str); ok {
		if sb, ok := b.(value.Str); ok {
			switch {
			case sa.V < sb.V:
				return -1, nil
			case sa.V > sb.V:
				return 1, nil
			default:
				return 0, nil
			}
		}
	}
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1, nil
		case af > bf:
			return 1, nil
		default:
			return 0, nil
		}
	}
	return 0, rockerr.New(rockerr.Type, pos, "%s is not defined for '%s' and '%s'", name, value.TypeName(a), value.TypeName(b))
}

func cmpLt(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	c, err := order(pos, "lt", args[0], args[1])
	if err != nil {
		return nil, err
	}
	return value.Bool{V: c < 0}, nil
}

func cmpLe(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	c, err := order(pos, "le", args[0], args[1])
	if err != nil {
		return nil, err
	}
	return value.Bool{V: c <= 0}, nil
}

func cmpGe(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	c, err := order(pos, "ge", args[0], args[1])
	if err != nil {
		return nil, err
	}
	return value.Bool{V: c >= 0}, nil
}

func cmpGt(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	c, err := order(pos, "gt", args[0], args[1])
	if err != nil {
		return nil, err
	}
	return value.Bool{V: c > 0}, nil
}

func cmpEq(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	return value.Bool{V: value.Eq(args[0], args[1])}, nil
}

func cmpNe(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	return value.Bool{V: !value.Eq(args[0], args[1])}, nil
}

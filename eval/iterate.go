/*
File : rocket/eval/iterate.go

iterate materializes the values a for-of loop binds its variable to, for
each of the four iterable kinds spec §4.5 names: List (its elements),
Dict (its keys, insertion order), Str (one-character strings, rune by
rune), and Range (its integers). Materializing up front rather than
streaming keeps the loop body free to push/pop the list it is iterating
without perturbing iteration, matching "evaluate iterable once."
*/
package eval

import (
	"github.com/rocket-lang/rocket/rockerr"
	"github.com/rocket-lang/rocket/value"
)

func iterate(v value.Value, pos rockerr.Position) ([]value.Value, error) {
	switch x := v.(type) {
	case *value.List:
		out := make([]value.Value, len(x.Elems))
		copy(out, x.Elems)
		return out, nil
	case *value.Dict:
		return x.OrderedKeys(), nil
	case value.Str:
		runes := []rune(x.V)
		out := make([]value.Value, len(runes))
		for i, r := range runes {
			out[i] = value.Str{V: string(r)}
		}
		return out, nil
	case *value.Range:
		n := x.Len()
		out := make([]value.Value, n)
		for i := 0; i < n; i++ {
			out[i] = x.At(i)
		}
		return out, nil
	default:
		return nil, rockerr.New(rockerr.Type, pos, "'%s' is not iterable", value.TypeName(v))
	}
}

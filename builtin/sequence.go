/*
File : rocket/builtin/sequence.go

range: the built-in that produces the language's one purpose-built
iterable value, consumed by for-of (spec §4.5) without ever being
materialized into a List. Grounded in the teacher's rangeFunc
(std/common.go), which built an eager Range object the same way from 1-3
int arguments, minus the teacher's inclusive-upper-bound convention: the
specification calls for the conventional half-open [start, stop) range.
*/
package builtin

import (
	"github.com/rocket-lang/rocket/rockerr"
	"github.com/rocket-lang/rocket/value"
)

func init() {
	register(&value.BuiltinFunction{Name: "range", MinArgs: 1, MaxArgs: 3, Fn: seqRange})
}

func seqRange(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	ints := make([]int64, len(args))
	for i, a := range args {
		n, ok := a.(value.Int)
		if !ok {
			return nil, rockerr.New(rockerr.Type, pos, "range expects int arguments, got '%s'", value.TypeName(a))
		}
		ints[i] = n.V
	}

	var start, stop, step int64
	switch len(ints) {
	case 1:
		start, stop, step = 0, ints[0], 1
	case 2:
		start, stop, step = ints[0], ints[1], 1
	case 3:
		start, stop, step = ints[0], ints[1], ints[2]
	}
	if step == 0 {
		return nil, rockerr.New(rockerr.Value, pos, "range step must not be zero")
	}
	return &value.Range{Start: start, Stop: stop, Step: step}, nil
}

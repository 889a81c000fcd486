/*
File : rocket/builtin/convert.go

parse_int and parse_float: the language's two string-to-number
conversions, each failing with ValueError on a malformed operand rather
than a TypeError, per spec §4.6/§7.
*/
package builtin

import (
	"strconv"
	"strings"

	"github.com/rocket-lang/rocket/rockerr"
	"github.com/rocket-lang/rocket/value"
)

func init() {
	register(&value.BuiltinFunction{Name: "parse_int", MinArgs: 1, MaxArgs: 1, Fn: convertParseInt})
	register(&value.BuiltinFunction{Name: "parse_float", MinArgs: 1, MaxArgs: 1, Fn: convertParseFloat})
}

func convertParseInt(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	s, ok := args[0].(value.Str)
	if !ok {
		return nil, rockerr.New(rockerr.Type, pos, "parse_int expects str, got '%s'", value.TypeName(args[0]))
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s.V), 10, 64)
	if err != nil {
		return nil, rockerr.New(rockerr.Value, pos, "parse_int: invalid integer %q", s.V)
	}
	return value.Int{V: n}, nil
}

func convertParseFloat(rt *value.Runtime, pos rockerr.Position, args []value.Value) (value.Value, error) {
	s, ok := args[0].(value.Str)
	if !ok {
		return nil, rockerr.New(rockerr.Type, pos, "parse_float expects str, got '%s'", value.TypeName(args[0]))
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s.V), 64)
	if err != nil {
		return nil, rockerr.New(rockerr.Value, pos, "parse_float: invalid float %q", s.V)
	}
	return value.Float{V: f}, nil
}

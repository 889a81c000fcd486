package builtin

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocket-lang/rocket/rockerr"
	"github.com/rocket-lang/rocket/value"
)

func newRuntime(stdin string) (*value.Runtime, *bytes.Buffer) {
	var out bytes.Buffer
	return &value.Runtime{Stdout: &out, Stdin: bufio.NewReader(strings.NewReader(stdin))}, &out
}

func call(t *testing.T, name string, args ...value.Value) (value.Value, error) {
	t.Helper()
	b, ok := Registry[name]
	require.True(t, ok, "builtin %q not registered", name)
	rt, _ := newRuntime("")
	require.NoError(t, b.CheckArity(rockerr.Position{}, args))
	return b.Fn(rt, rockerr.Position{}, args)
}

func TestArith_AddIntStaysInt(t *testing.T) {
	v, err := call(t, "add", value.Int{V: 2}, value.Int{V: 3})
	require.NoError(t, err)
	assert.Equal(t, value.Int{V: 5}, v)
}

func TestArith_AddFloatPromotes(t *testing.T) {
	v, err := call(t, "add", value.Int{V: 2}, value.Float{V: 0.5})
	require.NoError(t, err)
	assert.Equal(t, value.Float{V: 2.5}, v)
}

func TestArith_DivByZero(t *testing.T) {
	_, err := call(t, "div", value.Int{V: 1}, value.Int{V: 0})
	require.Error(t, err)
	assert.Equal(t, rockerr.Value, err.(*rockerr.Error).Kind)
}

func TestArith_MulListReplication(t *testing.T) {
	l := &value.List{Elems: []value.Value{value.Bool{V: false}}}
	v, err := call(t, "mul", l, value.Int{V: 3})
	require.NoError(t, err)
	got, ok := v.(*value.List)
	require.True(t, ok)
	assert.Len(t, got.Elems, 3)
}

func TestArith_MulStrReplication(t *testing.T) {
	v, err := call(t, "mul", value.Str{V: "ab"}, value.Int{V: 2})
	require.NoError(t, err)
	assert.Equal(t, value.Str{V: "abab"}, v)
}

func TestArith_AbsNeg(t *testing.T) {
	v, err := call(t, "abs", value.Int{V: -4})
	require.NoError(t, err)
	assert.Equal(t, value.Int{V: 4}, v)

	v, err = call(t, "neg", value.Float{V: 2.5})
	require.NoError(t, err)
	assert.Equal(t, value.Float{V: -2.5}, v)
}

func TestCompare_Ordering(t *testing.T) {
	v, err := call(t, "lt", value.Int{V: 1}, value.Float{V: 2.0})
	require.NoError(t, err)
	assert.Equal(t, value.Bool{V: true}, v)

	v, err = call(t, "gt", value.Str{V: "b"}, value.Str{V: "a"})
	require.NoError(t, err)
	assert.Equal(t, value.Bool{V: true}, v)
}

func TestCompare_OrderingUndefinedForMixedTypes(t *testing.T) {
	_, err := call(t, "lt", value.Str{V: "a"}, value.Int{V: 1})
	require.Error(t, err)
}

func TestCompare_EqCoercesNumerics(t *testing.T) {
	v, err := call(t, "eq", value.Int{V: 1}, value.Float{V: 1.0})
	require.NoError(t, err)
	assert.Equal(t, value.Bool{V: true}, v)
}

func TestLogic_NoShortCircuitIsCallerResponsibility(t *testing.T) {
	v, err := call(t, "and", value.Bool{V: true}, value.Bool{V: false})
	require.NoError(t, err)
	assert.Equal(t, value.Bool{V: false}, v)

	v, err = call(t, "or", value.Int{V: 0}, value.Str{V: "x"})
	require.NoError(t, err)
	assert.Equal(t, value.Bool{V: true}, v)
}

func TestIO_PrintWritesDisplayFormsSpaceSeparated(t *testing.T) {
	b := Registry["print"]
	rt, out := newRuntime("")
	_, err := b.Fn(rt, rockerr.Position{}, []value.Value{value.Int{V: 1}, value.Str{V: "x"}})
	require.NoError(t, err)
	assert.Equal(t, "1 x\n", out.String())
}

func TestIO_InputReadsLineWithoutNewline(t *testing.T) {
	b := Registry["input"]
	rt, _ := newRuntime("hello\n")
	v, err := b.Fn(rt, rockerr.Position{}, nil)
	require.NoError(t, err)
	assert.Equal(t, value.Str{V: "hello"}, v)
}

func TestIO_FormatSubstitutesPlaceholders(t *testing.T) {
	v, err := call(t, "format", value.Str{V: "{} + {} = {}"}, value.Int{V: 1}, value.Int{V: 2}, value.Int{V: 3})
	require.NoError(t, err)
	assert.Equal(t, value.Str{V: "1 + 2 = 3"}, v)
}

func TestConvert_ParseIntAndFloat(t *testing.T) {
	v, err := call(t, "parse_int", value.Str{V: "42"})
	require.NoError(t, err)
	assert.Equal(t, value.Int{V: 42}, v)

	_, err = call(t, "parse_float", value.Str{V: "not a number"})
	require.Error(t, err)
	assert.Equal(t, rockerr.Value, err.(*rockerr.Error).Kind)
}

func TestSequence_RangeHalfOpen(t *testing.T) {
	v, err := call(t, "range", value.Int{V: 2}, value.Int{V: 5})
	require.NoError(t, err)
	r, ok := v.(*value.Range)
	require.True(t, ok)
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, value.Int{V: 2}, r.At(0))
	assert.Equal(t, value.Int{V: 4}, r.At(2))
}

func TestSequence_RangeRejectsZeroStep(t *testing.T) {
	_, err := call(t, "range", value.Int{V: 0}, value.Int{V: 5}, value.Int{V: 0})
	require.Error(t, err)
}

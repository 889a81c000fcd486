package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocket-lang/rocket/rockerr"
	"github.com/rocket-lang/rocket/value"
)

func parseAndRun(src string) (string, error) {
	var out bytes.Buffer
	rt := &value.Runtime{Stdout: &out, Stdin: nil}
	err := Run(src, rt)
	return out.String(), err
}

func runOK(t *testing.T, src string) string {
	t.Helper()
	out, err := parseAndRun(src)
	require.NoError(t, err)
	return out
}

func TestEval_Scenario1_RecursiveFibonacci(t *testing.T) {
	src := `fn fib(n){ if (lt(n,2)){ return n; } return add(fib(sub(n,1)), fib(sub(n,2))); } print(fib(10));`
	assert.Equal(t, "55\n", runOK(t, src))
}

func TestEval_Scenario2_ListReplicationAndMutation(t *testing.T) {
	src := `let a = mul([false], 3); a[1] = true; print(a.count(true));`
	assert.Equal(t, "1\n", runOK(t, src))
}

func TestEval_Scenario3_ForOfOverString(t *testing.T) {
	src := `for (let c of "abc") { print(c); }`
	assert.Equal(t, "a\nb\nc\n", runOK(t, src))
}

func TestEval_Scenario4_ForOfOverDictYieldsKeys(t *testing.T) {
	src := `let d = {"x": 1, "y": 2}; for (let k of d) { print(k); }`
	assert.Equal(t, "x\ny\n", runOK(t, src))
}

func TestEval_Scenario5_HoistedTopLevelFunction(t *testing.T) {
	src := `print(g()); fn g(){ return 42; }`
	assert.Equal(t, "42\n", runOK(t, src))
}

func TestEval_NonTopLevelFnDeclBindsOnlyAtExecution(t *testing.T) {
	_, err := parseAndRun(`print(h()); fn outer() { fn h(){ return 1; } }`)
	require.Error(t, err)
	assert.Equal(t, rockerr.Name, err.(*rockerr.Error).Kind)
}

func TestEval_ClosureCapturesDefiningFrameByReference(t *testing.T) {
	src := `
fn make_adder(x) {
    fn adder(y) {
        return add(x, y);
    }
    return adder;
}
let add5 = make_adder(5);
print(add5(10));
`
	assert.Equal(t, "15\n", runOK(t, src))
}

// Rocket has no bare-name assignment and no increment operator, so a
// C-style for loop can only mutate its counter through an indexable
// container's subscript-assignment expression in the post clause.
func TestEval_BreakExitsLoopWithoutRunningLaterIterations(t *testing.T) {
	src := `
for (let box = [0]; lt(box[0], 10); box[0] = add(box[0], 1)) {
    if (eq(box[0], 3)) { break; }
    print(box[0]);
}
`
	assert.Equal(t, "0\n1\n2\n", runOK(t, src))
}

func TestEval_ContinueSkipsRestOfBody(t *testing.T) {
	src := `
for (let box = [0]; lt(box[0], 5); box[0] = add(box[0], 1)) {
    if (eq(mod(box[0], 2), 0)) { continue; }
    print(box[0]);
}
`
	assert.Equal(t, "1\n3\n", runOK(t, src))
}

func TestEval_NameErrorOnUndefinedVariable(t *testing.T) {
	_, err := parseAndRun(`print(nope);`)
	require.Error(t, err)
	assert.Equal(t, rockerr.Name, err.(*rockerr.Error).Kind)
}

func TestEval_CtrlFlowErrorOnTopLevelBreak(t *testing.T) {
	_, err := parseAndRun(`break;`)
	require.Error(t, err)
	assert.Equal(t, rockerr.CtrlFlow, err.(*rockerr.Error).Kind)
	assert.Equal(t, "(1:1)", "("+err.(*rockerr.Error).Pos.String()+")")
}

func TestEval_CtrlFlowErrorOnReturnEscapingFunction(t *testing.T) {
	_, err := parseAndRun(`return 1;`)
	require.Error(t, err)
	assert.Equal(t, rockerr.CtrlFlow, err.(*rockerr.Error).Kind)
	assert.Equal(t, "(1:1)", "("+err.(*rockerr.Error).Pos.String()+")")
}

func TestEval_CtrlFlowErrorOnBreakEscapingFunctionReportsBreakPosNotCallSite(t *testing.T) {
	src := `
fn f() {
    break;
}
f();
`
	_, err := parseAndRun(src)
	require.Error(t, err)
	assert.Equal(t, rockerr.CtrlFlow, err.(*rockerr.Error).Kind)
	assert.Equal(t, "(3:5)", "("+err.(*rockerr.Error).Pos.String()+")")
}

func TestEval_ArityErrorOnWrongArgCount(t *testing.T) {
	_, err := parseAndRun(`fn f(a, b) { return a; } f(1);`)
	require.Error(t, err)
	assert.Equal(t, rockerr.Arity, err.(*rockerr.Error).Kind)
}

func TestEval_IndexErrorOutOfRange(t *testing.T) {
	_, err := parseAndRun(`let a = [1, 2]; print(a[5]);`)
	require.Error(t, err)
	assert.Equal(t, rockerr.Index, err.(*rockerr.Error).Kind)
}

func TestEval_KeyErrorOnMissingDictKey(t *testing.T) {
	_, err := parseAndRun(`let d = {}; print(d["missing"]);`)
	require.Error(t, err)
	assert.Equal(t, rockerr.Key, err.(*rockerr.Error).Kind)
}

func TestEval_TypeErrorOnCallingNonCallable(t *testing.T) {
	_, err := parseAndRun(`let x = 1; x();`)
	require.Error(t, err)
	assert.Equal(t, rockerr.Type, err.(*rockerr.Error).Kind)
}

func TestEval_RangeForOfYieldsHalfOpenSequence(t *testing.T) {
	src := `for (let i of range(3)) { print(i); }`
	assert.Equal(t, "0\n1\n2\n", runOK(t, src))
}

func TestEval_ForOfFreshFramePerIterationClosures(t *testing.T) {
	src := `
let fns = [];
for (let i of range(3)) {
    fn make() { return i; }
    fns.push(make);
}
print(fns[0]());
print(fns[1]());
print(fns[2]());
`
	assert.Equal(t, "0\n1\n2\n", runOK(t, src))
}

func TestEval_BareNameAssignmentInCStyleForBodyIsParseError(t *testing.T) {
	src := `
let i = 0;
for (;;) {
    if (eq(i, 3)) { break; }
    print(i);
    i = add(i, 1);
}
`
	// i is reassigned via `let`-free mutation, which Rocket disallows for
	// bare names — this program is expected to fail to parse.
	_, err := parseAndRun(src)
	require.Error(t, err)
	assert.Equal(t, rockerr.Parse, err.(*rockerr.Error).Kind)
}

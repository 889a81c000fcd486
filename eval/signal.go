/*
File : rocket/eval/signal.go

Models break/continue/return as a small sum type threaded through every
statement-evaluation return value, rather than Go panic/recover — the
design spec calls for explicitly (spec design notes, §9): "Model break,
continue, return as non-value results of statement evaluation ... rather
than emulating them with any form of non-local escape." The teacher's
evaluator does the structurally equivalent thing by wrapping return values
in a *std.ReturnValue object threaded through ordinary return values
(eval/eval_controls.go); signal generalizes that one case to all three
transfers.
*/
package eval

import (
	"github.com/rocket-lang/rocket/rockerr"
	"github.com/rocket-lang/rocket/value"
)

// signalKind distinguishes the four outcomes a statement can produce.
type signalKind int

const (
	sigNormal signalKind = iota
	sigBreak
	sigContinue
	sigReturn
)

// signal is the non-error result of evaluating a statement: either
// sigNormal (execution falls through to the next statement) or one of the
// three control-flow transfers, carrying a value only for sigReturn. Pos
// is the source position of the break/continue/return statement itself,
// carried along so a CtrlFlowError raised once the signal escapes its
// loop or function (spec §7) can report where the offending statement
// was, not where it was finally caught.
type signal struct {
	kind  signalKind
	value value.Value
	pos   rockerr.Position
}

var normal = signal{kind: sigNormal}

func breakSignal(pos rockerr.Position) signal    { return signal{kind: sigBreak, pos: pos} }
func continueSignal(pos rockerr.Position) signal { return signal{kind: sigContinue, pos: pos} }
func returnSignal(v value.Value, pos rockerr.Position) signal {
	return signal{kind: sigReturn, value: v, pos: pos}
}

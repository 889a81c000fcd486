/*
File : rocket/eval/stmt.go

Statement semantics from spec §4.5: let, block, if, while, the two for
forms, fn declaration, return/break/continue, and the one assignment
statement (through subscript or attribute). Grounded in the teacher's
per-construct split across eval_conditionals.go/eval_loops.go/
eval_controls.go/eval_statements.go, collapsed here because Rocket's
statement set is a fraction of the teacher's (no switch, no struct/enum
declarations).
*/
package eval

import (
	"github.com/rocket-lang/rocket/parser"
	"github.com/rocket-lang/rocket/value"
)

// execStmtsIn runs stmts in order against frame, stopping at the first
// error or the first non-sigNormal signal.
func (e *Evaluator) execStmtsIn(stmts []parser.Statement, frame value.Env) (signal, error) {
	for _, s := range stmts {
		sig, err := e.execStmt(s, frame)
		if err != nil {
			return signal{}, err
		}
		if sig.kind != sigNormal {
			return sig, nil
		}
	}
	return normal, nil
}

// execBlock pushes a fresh child frame, runs the block's statements in it,
// and returns whatever signal/error they produced — pop is implicit, since
// the child frame is simply dropped as execBlock returns.
func (e *Evaluator) execBlock(b *parser.Block, parent value.Env) (signal, error) {
	return e.execStmtsIn(b.Stmts, parent.Child())
}

func (e *Evaluator) execStmt(s parser.Statement, frame value.Env) (signal, error) {
	switch st := s.(type) {
	case *parser.LetStmt:
		v, err := e.evalExpr(st.Expr, frame)
		if err != nil {
			return signal{}, err
		}
		frame.Define(st.Name, v)
		return normal, nil

	case *parser.ExprStmt:
		if _, err := e.evalExpr(st.Expr, frame); err != nil {
			return signal{}, err
		}
		return normal, nil

	case *parser.AssignStmt:
		return e.execAssign(st, frame)

	case *parser.Block:
		return e.execBlock(st, frame)

	case *parser.IfStmt:
		return e.execIf(st, frame)

	case *parser.WhileStmt:
		return e.execWhile(st, frame)

	case *parser.CForStmt:
		return e.execCFor(st, frame)

	case *parser.ForOfStmt:
		return e.execForOf(st, frame)

	case *parser.FnDecl:
		frame.Define(st.Name, &value.Function{
			Name:    st.Name,
			Params:  st.Params,
			Body:    st.Body,
			Closure: frame,
		})
		return normal, nil

	case *parser.ReturnStmt:
		if st.Expr == nil {
			return returnSignal(value.Null{}, st.Pos), nil
		}
		v, err := e.evalExpr(st.Expr, frame)
		if err != nil {
			return signal{}, err
		}
		return returnSignal(v, st.Pos), nil

	case *parser.BreakStmt:
		return breakSignal(st.Pos), nil

	case *parser.ContinueStmt:
		return continueSignal(st.Pos), nil

	default:
		return normal, nil
	}
}

func (e *Evaluator) execAssign(st *parser.AssignStmt, frame value.Env) (signal, error) {
	expr := &parser.AssignExpr{Target: st.Target, Value: st.Value, Pos: st.Pos}
	if _, err := e.evalAssignExpr(expr, frame); err != nil {
		return signal{}, err
	}
	return normal, nil
}

func (e *Evaluator) execIf(st *parser.IfStmt, frame value.Env) (signal, error) {
	cond, err := e.evalExpr(st.Cond, frame)
	if err != nil {
		return signal{}, err
	}
	if value.Truthy(cond) {
		return e.execBlock(st.Then, frame)
	}
	switch els := st.Else.(type) {
	case *parser.IfStmt:
		return e.execIf(els, frame)
	case *parser.Block:
		return e.execBlock(els, frame)
	default:
		return normal, nil
	}
}

func (e *Evaluator) execWhile(st *parser.WhileStmt, frame value.Env) (signal, error) {
	for {
		cond, err := e.evalExpr(st.Cond, frame)
		if err != nil {
			return signal{}, err
		}
		if !value.Truthy(cond) {
			return normal, nil
		}
		sig, err := e.execBlock(st.Body, frame)
		if err != nil {
			return signal{}, err
		}
		switch sig.kind {
		case sigBreak:
			return normal, nil
		case sigReturn:
			return sig, nil
		}
	}
}

func (e *Evaluator) execCFor(st *parser.CForStmt, frame value.Env) (signal, error) {
	loopFrame := frame.Child()
	if st.Init != nil {
		sig, err := e.execStmt(st.Init, loopFrame)
		if err != nil {
			return signal{}, err
		}
		if sig.kind != sigNormal {
			return sig, nil
		}
	}
	for {
		if st.Cond != nil {
			cond, err := e.evalExpr(st.Cond, loopFrame)
			if err != nil {
				return signal{}, err
			}
			if !value.Truthy(cond) {
				return normal, nil
			}
		}
		sig, err := e.execBlock(st.Body, loopFrame)
		if err != nil {
			return signal{}, err
		}
		if sig.kind == sigBreak {
			return normal, nil
		}
		if sig.kind == sigReturn {
			return sig, nil
		}
		if st.Post != nil {
			if _, err := e.evalExpr(st.Post, loopFrame); err != nil {
				return signal{}, err
			}
		}
	}
}

func (e *Evaluator) execForOf(st *parser.ForOfStmt, frame value.Env) (signal, error) {
	iterVal, err := e.evalExpr(st.Iter, frame)
	if err != nil {
		return signal{}, err
	}
	items, err := iterate(iterVal, parser.PosOf(st))
	if err != nil {
		return signal{}, err
	}
	for _, item := range items {
		iterFrame := frame.Child()
		iterFrame.Define(st.VarName, item)
		sig, err := e.execBlock(st.Body, iterFrame)
		if err != nil {
			return signal{}, err
		}
		if sig.kind == sigBreak {
			return normal, nil
		}
		if sig.kind == sigReturn {
			return sig, nil
		}
	}
	return normal, nil
}

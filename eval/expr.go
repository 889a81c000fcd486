/*
File : rocket/eval/expr.go

Expression evaluation and call semantics from spec §4.5. Rocket's grammar
has no infix operators, so unlike the teacher's evaluator_expressions.go
(2000+ lines of Pratt-driven binary/unary dispatch) this is just literals,
name lookup, container construction, and the three postfix forms —
index, attribute, and call.
*/
package eval

import (
	"github.com/rocket-lang/rocket/parser"
	"github.com/rocket-lang/rocket/rockerr"
	"github.com/rocket-lang/rocket/value"
)

func (e *Evaluator) evalExpr(ex parser.Expression, frame value.Env) (value.Value, error) {
	switch x := ex.(type) {
	case *parser.IntLit:
		return value.Int{V: x.Value}, nil
	case *parser.FloatLit:
		return value.Float{V: x.Value}, nil
	case *parser.StrLit:
		return value.Str{V: x.Value}, nil
	case *parser.NullLit:
		return value.Null{}, nil
	case *parser.BoolLit:
		return value.Bool{V: x.Value}, nil

	case *parser.ListLit:
		elems := make([]value.Value, len(x.Elems))
		for i, el := range x.Elems {
			v, err := e.evalExpr(el, frame)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return &value.List{Elems: elems}, nil

	case *parser.DictLit:
		d := value.NewDict()
		pos := parser.PosOf(x)
		for i := range x.Keys {
			k, err := e.evalExpr(x.Keys[i], frame)
			if err != nil {
				return nil, err
			}
			v, err := e.evalExpr(x.Values[i], frame)
			if err != nil {
				return nil, err
			}
			if err := d.Set(k, v, pos); err != nil {
				return nil, err
			}
		}
		return d, nil

	case *parser.NameExpr:
		v, ok := frame.Lookup(x.Name)
		if !ok {
			return nil, rockerr.New(rockerr.Name, x.Pos, "name '%s' is not defined", x.Name)
		}
		return v, nil

	case *parser.IndexExpr:
		target, err := e.evalExpr(x.Target, frame)
		if err != nil {
			return nil, err
		}
		key, err := e.evalExpr(x.Key, frame)
		if err != nil {
			return nil, err
		}
		return value.Subscript(target, key, x.Pos)

	case *parser.AttrExpr:
		target, err := e.evalExpr(x.Target, frame)
		if err != nil {
			return nil, err
		}
		return value.Attr(target, x.Name, x.Pos)

	case *parser.CallExpr:
		return e.evalCall(x, frame)

	case *parser.AssignExpr:
		return e.evalAssignExpr(x, frame)

	default:
		return nil, rockerr.New(rockerr.Parse, rockerr.Position{}, "unhandled expression node %T", ex)
	}
}

func (e *Evaluator) evalCall(c *parser.CallExpr, frame value.Env) (value.Value, error) {
	callee, err := e.evalExpr(c.Callee, frame)
	if err != nil {
		return nil, err
	}
	args := make([]value.Value, len(c.Args))
	for i, a := range c.Args {
		v, err := e.evalExpr(a, frame)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return e.call(callee, args, c.Pos)
}

// call implements spec §4.5's call semantics for all three callable
// kinds: a user Function allocates a child of its captured frame and
// binds parameters; a BuiltinFunction is invoked directly against the
// argument vector; a BoundMethod prepends its receiver and invokes the
// underlying BuiltinFunction the same way.
func (e *Evaluator) call(callee value.Value, args []value.Value, pos rockerr.Position) (value.Value, error) {
	switch fn := callee.(type) {
	case *value.Function:
		if len(args) != len(fn.Params) {
			return nil, rockerr.New(rockerr.Arity, pos, "%s expects %d argument(s), got %d", fnLabel(fn), len(fn.Params), len(args))
		}
		callFrame := fn.Closure.Child()
		for i, p := range fn.Params {
			callFrame.Define(p, args[i])
		}
		sig, err := e.execStmtsIn(fn.Body.Stmts, callFrame)
		if err != nil {
			return nil, err
		}
		switch sig.kind {
		case sigReturn:
			return sig.value, nil
		case sigBreak, sigContinue:
			return nil, rockerr.New(rockerr.CtrlFlow, sig.pos, "%s escaped the body of %s", sigName(sig.kind), fnLabel(fn))
		default:
			return value.Null{}, nil
		}

	case *value.BuiltinFunction:
		if err := fn.CheckArity(pos, args); err != nil {
			return nil, err
		}
		return fn.Fn(e.rt, pos, args)

	case *value.BoundMethod:
		full := make([]value.Value, 0, len(args)+1)
		full = append(full, fn.Receiver)
		full = append(full, args...)
		if err := fn.Method.CheckArity(pos, full); err != nil {
			return nil, err
		}
		return fn.Method.Fn(e.rt, pos, full)

	default:
		return nil, rockerr.New(rockerr.Type, pos, "'%s' is not callable", value.TypeName(callee))
	}
}

// evalAssignExpr performs the mutation behind both AssignStmt and a for
// loop's assignment-as-cond/post clause, and evaluates to the assigned
// value so it can be used as an ordinary expression.
func (e *Evaluator) evalAssignExpr(x *parser.AssignExpr, frame value.Env) (value.Value, error) {
	val, err := e.evalExpr(x.Value, frame)
	if err != nil {
		return nil, err
	}
	switch target := x.Target.(type) {
	case *parser.IndexExpr:
		targetVal, err := e.evalExpr(target.Target, frame)
		if err != nil {
			return nil, err
		}
		keyVal, err := e.evalExpr(target.Key, frame)
		if err != nil {
			return nil, err
		}
		if err := value.SetSubscript(targetVal, keyVal, val, x.Pos); err != nil {
			return nil, err
		}
	case *parser.AttrExpr:
		targetVal, err := e.evalExpr(target.Target, frame)
		if err != nil {
			return nil, err
		}
		if err := value.SetAttr(targetVal, target.Name, val, x.Pos); err != nil {
			return nil, err
		}
	}
	return val, nil
}

func fnLabel(fn *value.Function) string {
	if fn.Name == "" {
		return "<function>"
	}
	return "'" + fn.Name + "'"
}

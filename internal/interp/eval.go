package interp

import (
	iast "github.com/spietras/timon-interpreter/internal/ast"
	"github.com/spietras/timon-interpreter/internal/token"
	"github.com/spietras/timon-interpreter/internal/values"
)

const maxCallDepth = 256

// evalExpr evaluates an expression node to a Value.
func (it *Interp) evalExpr(node iast.Node) (Value, error) {
	switch n := node.(type) {
	case *iast.Literal:
		return n.Value, nil
	case *iast.Identifier:
		v, err := it.Env.GetVar(n.Name)
		if err != nil {
			return nil, execErr(n, "%s: %s", err, n.Name)
		}
		return v, nil
	case *iast.UnitKeyword:
		td, _ := values.UnitTimedelta(n.Unit)
		return td, nil
	case *iast.UnaryExpr:
		return it.evalUnary(n)
	case *iast.BinaryExpr:
		return it.evalBinary(n)
	case *iast.ComparisonExpr:
		return it.evalComparison(n)
	case *iast.TimeInfoAccess:
		return it.evalTimeInfoAccess(n)
	case *iast.FunctionCall:
		return it.evalCall(n)
	default:
		return nil, execErr(node, "cannot evaluate node of type %T", node)
	}
}

func (it *Interp) evalUnary(n *iast.UnaryExpr) (Value, error) {
	operand, err := it.evalExpr(n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case token.MINUS:
		v, err := values.Neg(operand)
		if err != nil {
			return nil, execErr(n, "%s", err)
		}
		return v, nil
	case token.NOT:
		return values.Not(operand), nil
	default:
		return nil, execErr(n, "unknown unary operator %s", n.Op)
	}
}

func (it *Interp) evalBinary(n *iast.BinaryExpr) (Value, error) {
	left, err := it.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case token.LOGICAL_OR:
		return values.BoolOr(left, right), nil
	case token.LOGICAL_AND:
		return values.BoolAnd(left, right), nil
	case token.PLUS:
		v, err := values.Add(left, right)
		if err != nil {
			return nil, execErr(n, "%s", err)
		}
		return v, nil
	case token.MINUS:
		v, err := values.Sub(left, right)
		if err != nil {
			return nil, execErr(n, "%s", err)
		}
		return v, nil
	case token.MULTIPLICATION:
		v, err := values.Mul(left, right)
		if err != nil {
			return nil, execErr(n, "%s", err)
		}
		return v, nil
	case token.DIVISION:
		v, err := values.Div(left, right)
		if err != nil {
			return nil, execErr(n, "%s", err)
		}
		return v, nil
	default:
		return nil, execErr(n, "unknown binary operator %s", n.Op)
	}
}

func (it *Interp) evalComparison(n *iast.ComparisonExpr) (Value, error) {
	left, err := it.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case token.EQUALS:
		return values.Equal(left, right), nil
	case token.NOT_EQUALS:
		return values.NotEqual(left, right), nil
	case token.LESS:
		ok, err := values.Less(left, right)
		if err != nil {
			return nil, execErr(n, "%s", err)
		}
		return boolValue(ok), nil
	case token.LESS_OR_EQUAL:
		lt, err := values.Less(left, right)
		if err != nil {
			return nil, execErr(n, "%s", err)
		}
		eq := values.Equal(left, right)
		return boolValue(lt || eq.Truthy()), nil
	case token.GREATER:
		lt, err := values.Less(left, right)
		if err != nil {
			return nil, execErr(n, "%s", err)
		}
		eq := values.Equal(left, right)
		return boolValue(!lt && !eq.Truthy()), nil
	case token.GREATER_OR_EQUAL:
		lt, err := values.Less(left, right)
		if err != nil {
			return nil, execErr(n, "%s", err)
		}
		return boolValue(!lt), nil
	default:
		return nil, execErr(n, "unknown comparison operator %s", n.Op)
	}
}

func boolValue(b bool) Value {
	if b {
		return values.Integer(1)
	}
	return values.Integer(0)
}

func (it *Interp) evalTimeInfoAccess(n *iast.TimeInfoAccess) (Value, error) {
	target, err := it.evalExpr(n.Target)
	if err != nil {
		return nil, err
	}
	switch v := target.(type) {
	case values.Date:
		return dateField(v, n.Unit, n)
	case values.Time:
		return clockField(v, n.Unit, n)
	case values.DateTime:
		if f, ok := dateFieldOpt(v.Date, n.Unit); ok {
			return f, nil
		}
		return clockField(v.Time, n.Unit, n)
	case values.Timedelta:
		if f, ok := v.Field(n.Unit); ok {
			return values.Integer(f), nil
		}
		return nil, execErr(n, "timedelta has no field %q", n.Unit)
	default:
		return nil, execErr(n, "cannot access time info on a %s value", target.Kind())
	}
}

func dateFieldOpt(d values.Date, unit string) (Value, bool) {
	switch unit {
	case "days":
		return values.Integer(d.Day), true
	case "months":
		return values.Integer(d.Month), true
	case "years":
		return values.Integer(d.Year), true
	default:
		return nil, false
	}
}

func dateField(d values.Date, unit string, n iast.Node) (Value, error) {
	if f, ok := dateFieldOpt(d, unit); ok {
		return f, nil
	}
	return nil, execErr(n, "date has no field %q", unit)
}

func clockFieldOpt(t values.Time, unit string) (Value, bool) {
	switch unit {
	case "hours":
		return values.Integer(t.Hour), true
	case "minutes":
		return values.Integer(t.Minute), true
	case "seconds":
		return values.Integer(t.Second), true
	default:
		return nil, false
	}
}

func clockField(t values.Time, unit string, n iast.Node) (Value, error) {
	if f, ok := clockFieldOpt(t, unit); ok {
		return f, nil
	}
	return nil, execErr(n, "time has no field %q", unit)
}

// evalCall evaluates arguments in the caller's environment before pushing
// the callee scope, then binds parameters and runs the body. Functions are
// not closures: free names inside the body resolve dynamically through the
// live scope stack at call time, not through the definition site.
func (it *Interp) evalCall(n *iast.FunctionCall) (Value, error) {
	fn, err := it.Env.GetFun(n.Name)
	if err != nil {
		return nil, execErr(n, "%s: %s", err, n.Name)
	}
	if len(n.Args) != len(fn.Params) {
		return nil, execErr(n, "function %s expects %d argument(s), got %d", n.Name, len(fn.Params), len(n.Args))
	}

	args := make([]Value, len(n.Args))
	for i, a := range n.Args {
		v, err := it.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if it.Env.Depth() >= maxCallDepth {
		return nil, execErr(n, "call stack exceeded maximum depth of %d", maxCallDepth)
	}

	it.Env.PushScope()
	defer it.Env.PopScope()
	for i, p := range fn.Params {
		it.Env.DeclareVarWithValue(p, args[i])
	}

	jumping, val, err := it.execBodyStatements(fn.Body)
	if err != nil {
		return nil, err
	}
	if jumping {
		return val, nil
	}
	return values.Integer(0), nil
}

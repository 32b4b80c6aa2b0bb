// Package interp walks the syntax tree produced by the parser over an
// Environment, executing statements and evaluating expressions. Grounded on
// original_source/timoninterpreter/syntax_nodes.py's execute/self_evaluate
// methods, collapsed (per spec.md §9's redesign note) into free functions
// that type-switch over ast.Node.
package interp

import (
	"fmt"
	"io"

	iast "github.com/spietras/timon-interpreter/internal/ast"
	"github.com/spietras/timon-interpreter/internal/values"
)

// Value is the runtime value type produced by expression evaluation.
type Value = values.Value

// Interp walks a Program against a persistent Environment, writing `print`
// output to Out.
type Interp struct {
	Env *Environment
	Out io.Writer
}

// New builds an Interp with a fresh global environment.
func New(out io.Writer) *Interp {
	return &Interp{Env: NewEnvironment(), Out: out}
}

// NewWithEnv builds an Interp reusing an existing Environment (for
// multi-statement sessions).
func NewWithEnv(env *Environment, out io.Writer) *Interp {
	return &Interp{Env: env, Out: out}
}

// Run executes every top-level statement in order and returns the value of
// the first `return` encountered, or nil if none did.
func (it *Interp) Run(prog *iast.Program) (Value, error) {
	for _, stmt := range prog.Statements {
		jumping, val, err := it.execStatement(stmt)
		if err != nil {
			return nil, err
		}
		if jumping {
			return val, nil
		}
	}
	return nil, nil
}

func execErr(n iast.Node, format string, args ...any) error {
	return &Error{Position: n.GetRange().Start, Message: fmt.Sprintf(format, args...)}
}

// execStatement executes one statement, returning whether a `return` is
// propagating out of it and, if so, the value it carries.
func (it *Interp) execStatement(node iast.Node) (bool, Value, error) {
	switch n := node.(type) {
	case *iast.VarDef:
		return it.execVarDef(n)
	case *iast.Assignment:
		return it.execAssignment(n)
	case *iast.IfStatement:
		return it.execIf(n)
	case *iast.FromStatement:
		return it.execFrom(n)
	case *iast.PrintStatement:
		return it.execPrint(n)
	case *iast.ReturnStatement:
		return it.execReturn(n)
	case *iast.FunDef:
		it.Env.SetFun(n.Name, n)
		return false, nil, nil
	case *iast.ExpressionStatement:
		if _, err := it.evalExpr(n.Expr); err != nil {
			return false, nil, err
		}
		return false, nil, nil
	case *iast.Body:
		return it.execBody(n)
	default:
		return false, nil, execErr(node, "cannot execute node of type %T", node)
	}
}

// execBody runs a body in a freshly pushed scope that is always popped,
// including when a `return` propagates out through it.
func (it *Interp) execBody(b *iast.Body) (bool, Value, error) {
	it.Env.PushScope()
	defer it.Env.PopScope()

	for _, stmt := range b.Statements {
		jumping, val, err := it.execStatement(stmt)
		if err != nil {
			return false, nil, err
		}
		if jumping {
			return true, val, nil
		}
	}
	return false, nil, nil
}

func (it *Interp) execVarDef(n *iast.VarDef) (bool, Value, error) {
	if n.Value == nil {
		it.Env.DeclareVar(n.Name)
		return false, nil, nil
	}
	v, err := it.evalExpr(n.Value)
	if err != nil {
		return false, nil, err
	}
	it.Env.DeclareVarWithValue(n.Name, v)
	return false, nil, nil
}

func (it *Interp) execAssignment(n *iast.Assignment) (bool, Value, error) {
	v, err := it.evalExpr(n.Value)
	if err != nil {
		return false, nil, err
	}
	if err := it.Env.SetVar(n.Name, v); err != nil {
		return false, nil, execErr(n, "%s: %s", err, n.Name)
	}
	return false, nil, nil
}

func (it *Interp) execIf(n *iast.IfStatement) (bool, Value, error) {
	cond, err := it.evalExpr(n.Condition)
	if err != nil {
		return false, nil, err
	}
	if cond.Truthy() {
		return it.execBody(n.Then)
	}
	if n.Else != nil {
		return it.execBody(n.Else)
	}
	return false, nil, nil
}

func (it *Interp) execFrom(n *iast.FromStatement) (bool, Value, error) {
	start, err := it.evalExpr(n.Start)
	if err != nil {
		return false, nil, err
	}
	end, err := it.evalExpr(n.End)
	if err != nil {
		return false, nil, err
	}
	step, ok := values.UnitTimedelta(n.Unit)
	if !ok {
		return false, nil, execErr(n, "unknown time unit %q", n.Unit)
	}

	it.Env.PushScope()
	defer it.Env.PopScope()

	current := start
	for {
		lessEq, err := boundCompare(current, end)
		if err != nil {
			return false, nil, execErr(n, "%s", err)
		}
		if !lessEq {
			break
		}

		it.Env.PushScope()
		it.Env.DeclareVarWithValue(n.VarName, current)
		jumping, val, err := it.execBodyStatements(n.Body)
		it.Env.PopScope()
		if err != nil {
			return false, nil, err
		}
		if jumping {
			return true, val, nil
		}

		next, err := values.Add(current, step)
		if err != nil {
			return false, nil, execErr(n.Start, "%s", err)
		}
		current = next
	}
	return false, nil, nil
}

// execBodyStatements runs a body's statements directly in the
// already-pushed current scope (used by from-statement iterations, which
// manage their own inner scope push/pop around the loop variable binding).
func (it *Interp) execBodyStatements(b *iast.Body) (bool, Value, error) {
	for _, stmt := range b.Statements {
		jumping, val, err := it.execStatement(stmt)
		if err != nil {
			return false, nil, err
		}
		if jumping {
			return true, val, nil
		}
	}
	return false, nil, nil
}

func boundCompare(current, end Value) (bool, error) {
	less, err := values.Less(current, end)
	if err != nil {
		return false, err
	}
	if less {
		return true, nil
	}
	eq := values.Equal(current, end)
	return eq.Truthy(), nil
}

func (it *Interp) execPrint(n *iast.PrintStatement) (bool, Value, error) {
	v, err := it.evalExpr(n.Value)
	if err != nil {
		return false, nil, err
	}
	fmt.Fprintln(it.Out, v.String())
	return false, nil, nil
}

func (it *Interp) execReturn(n *iast.ReturnStatement) (bool, Value, error) {
	if n.Value == nil {
		return true, values.Integer(0), nil
	}
	v, err := it.evalExpr(n.Value)
	if err != nil {
		return false, nil, err
	}
	return true, v, nil
}

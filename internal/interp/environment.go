package interp

import (
	iast "github.com/spietras/timon-interpreter/internal/ast"
)

// binding is a declared variable slot: present but uninitialized until the
// first assignment.
type binding struct {
	value       Value
	initialized bool
}

// Scope holds one layer of variable and function bindings.
type Scope struct {
	variables map[string]*binding
	functions map[string]*iast.FunDef
}

func newScope() *Scope {
	return &Scope{variables: map[string]*binding{}, functions: map[string]*iast.FunDef{}}
}

// Environment is a non-empty stack of Scopes: variables/functions are
// looked up from the top down, declarations always affect the topmost
// scope. Grounded on original_source/timoninterpreter/execution.py's
// Environment/Scope, with its bare ValueError("TODO") stubs replaced by
// named errors the caller wraps as *interp.Error.
type Environment struct {
	scopes []*Scope
}

// NewEnvironment builds an Environment with its global scope already
// pushed.
func NewEnvironment() *Environment {
	return &Environment{scopes: []*Scope{newScope()}}
}

func (e *Environment) top() *Scope { return e.scopes[len(e.scopes)-1] }

// PushScope pushes a fresh scope onto the stack.
func (e *Environment) PushScope() {
	e.scopes = append(e.scopes, newScope())
}

// PopScope pops the topmost scope. Popping the sole (global) scope is an
// error.
func (e *Environment) PopScope() error {
	if len(e.scopes) == 1 {
		return errPopGlobalScope
	}
	e.scopes = e.scopes[:len(e.scopes)-1]
	return nil
}

// Depth returns the current scope stack depth.
func (e *Environment) Depth() int { return len(e.scopes) }

// DeclareVar declares name as uninitialized in the topmost scope.
func (e *Environment) DeclareVar(name string) {
	e.top().variables[name] = &binding{}
}

// DeclareVarWithValue declares name in the topmost scope and initializes it.
func (e *Environment) DeclareVarWithValue(name string, v Value) {
	e.top().variables[name] = &binding{value: v, initialized: true}
}

// GetVar looks up name from the top scope down. Errors if undeclared or
// declared but never assigned.
func (e *Environment) GetVar(name string) (Value, error) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if b, ok := e.scopes[i].variables[name]; ok {
			if !b.initialized {
				return nil, errUninitializedVar
			}
			return b.value, nil
		}
	}
	return nil, errUndeclaredVar
}

// SetVar assigns to the nearest scope (top down) that declares name.
func (e *Environment) SetVar(name string, v Value) error {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if b, ok := e.scopes[i].variables[name]; ok {
			b.value = v
			b.initialized = true
			return nil
		}
	}
	return errUndeclaredVar
}

// SetFun declares a function binding in the topmost scope.
func (e *Environment) SetFun(name string, def *iast.FunDef) {
	e.top().functions[name] = def
}

// GetFun looks up a function binding from the top scope down.
func (e *Environment) GetFun(name string) (*iast.FunDef, error) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if f, ok := e.scopes[i].functions[name]; ok {
			return f, nil
		}
	}
	return nil, errUndeclaredFun
}

var (
	errPopGlobalScope  = simpleErr("cannot pop the global scope")
	errUninitializedVar = simpleErr("variable is uninitialized")
	errUndeclaredVar    = simpleErr("undeclared variable")
	errUndeclaredFun    = simpleErr("undeclared function")
)

type simpleErr string

func (e simpleErr) Error() string { return string(e) }

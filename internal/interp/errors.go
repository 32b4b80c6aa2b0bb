package interp

import (
	"fmt"

	"github.com/spietras/timon-interpreter/ast"
)

// Error is an execution error carrying the position of the node that
// triggered it: undeclared/uninitialized variable or function, arity
// mismatch, type mismatch in an operator, calendar overflow, division by
// zero, or popping the global scope.
type Error struct {
	Position ast.Position
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("execution error at %s: %s", e.Position, e.Message)
}

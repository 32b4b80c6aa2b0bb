package parser

import (
	"fmt"

	"github.com/spietras/timon-interpreter/ast"
)

// Error is a syntactic error carrying the offending token's position.
type Error struct {
	Position ast.Position
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("syntax error at %s: %s", e.Position, e.Message)
}

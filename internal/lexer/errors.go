package lexer

import (
	"fmt"

	"github.com/spietras/timon-interpreter/ast"
)

// Error is a lexical error carrying the position of the offending lexeme.
type Error struct {
	Position ast.Position
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexical error at %s: %s", e.Position, e.Message)
}

// Warning is a non-fatal lexical diagnostic (unclosed comment/string/
// timedelta recovered at EOF).
type Warning struct {
	Position ast.Position
	Message  string
	Action   string
}

func (w *Warning) String() string {
	return fmt.Sprintf("lexical warning at %s: %s. %s", w.Position, w.Message, w.Action)
}

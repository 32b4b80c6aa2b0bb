package timon

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/spietras/timon-interpreter/internal/interp"
)

// Session maintains an Environment across multiple Eval calls, the way a
// REPL or a live editor needs: variables and function definitions declared
// in one call are visible to the next.
type Session struct {
	id  uuid.UUID
	env *interp.Environment
}

// NewSession creates a new stateful evaluation session with a fresh global
// scope.
func NewSession() *Session {
	return &Session{id: uuid.New(), env: interp.NewEnvironment()}
}

// ID returns the session's unique identifier, stable for its lifetime.
// Useful for correlating REPL output across log lines.
func (s *Session) ID() uuid.UUID { return s.id }

// Eval evaluates input against this session's environment. The name is
// used only to identify the source in diagnostics.
func (s *Session) Eval(input string) (*Result, error) {
	return evaluate(fmt.Sprintf("session-%s", s.id), input, s.env)
}

// Reset clears all variables and function definitions, returning the
// session to a fresh global scope.
func (s *Session) Reset() {
	s.env = interp.NewEnvironment()
}

// GetVariable retrieves a variable's current value by name.
func (s *Session) GetVariable(name string) (Value, bool) {
	v, err := s.env.GetVar(name)
	if err != nil {
		return nil, false
	}
	return v, true
}

// Package ast defines the source position types shared by the lexer,
// parser, and diagnostics packages.
package ast

import "fmt"

// Position represents a position in source text (1-indexed line/column,
// 0-indexed absolute rune offset).
type Position struct {
	Line   int
	Column int
	Offset int
}

// String formats the position as "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Range represents a range in source text
type Range struct {
	Start Position
	End   Position
}

// String formats the range as "start-end"
func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

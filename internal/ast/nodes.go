// Package ast defines the syntax tree produced by the parser: a tagged
// variant of node types, each owning its children exclusively. Grounded on
// one Go struct per syntactic category, each with
// String()/GetRange()/Children(), generalized to this language's
// grammar from original_source/timoninterpreter/syntax_nodes.py.
package ast

import (
	"fmt"
	"strings"

	"github.com/spietras/timon-interpreter/ast"
	"github.com/spietras/timon-interpreter/internal/token"
	"github.com/spietras/timon-interpreter/internal/values"
)

// Node is implemented by every syntax tree node.
type Node interface {
	GetRange() ast.Range
	String() string
	// Children returns this node's direct children in source order, used by
	// the tree pretty-printer.
	Children() []Node
}

type Base struct {
	Range ast.Range
}

func (b Base) GetRange() ast.Range { return b.Range }

// Program is the root node: a sequence of top-level statements.
type Program struct {
	Base
	Statements []Node
}

func (p *Program) Children() []Node { return p.Statements }
func (p *Program) String() string   { return "Program" }

// Body is a brace-delimited sequence of statements forming one scope.
type Body struct {
	Base
	Statements []Node
}

func (b *Body) Children() []Node { return b.Statements }
func (b *Body) String() string   { return "Body" }

// VarDef is `var NAME (= expr)? ;`.
type VarDef struct {
	Base
	Name  string
	Value Node // nil when uninitialized
}

func (n *VarDef) Children() []Node {
	if n.Value == nil {
		return nil
	}
	return []Node{n.Value}
}
func (n *VarDef) String() string { return fmt.Sprintf("VarDef(%s)", n.Name) }

// Assignment is `NAME = expr ;`.
type Assignment struct {
	Base
	Name  string
	Value Node
}

func (n *Assignment) Children() []Node { return []Node{n.Value} }
func (n *Assignment) String() string   { return fmt.Sprintf("Assignment(%s)", n.Name) }

// IfStatement is `if cond { ... } (else { ... })? ;`.
type IfStatement struct {
	Base
	Condition Node
	Then      *Body
	Else      *Body // nil when absent
}

func (n *IfStatement) Children() []Node {
	if n.Else == nil {
		return []Node{n.Condition, n.Then}
	}
	return []Node{n.Condition, n.Then, n.Else}
}
func (n *IfStatement) String() string { return "IfStatement" }

// FromStatement is `from start to end by UNIT as NAME { body } ;`.
type FromStatement struct {
	Base
	Start, End Node
	Unit       string
	VarName    string
	Body       *Body
}

func (n *FromStatement) Children() []Node { return []Node{n.Start, n.End, n.Body} }
func (n *FromStatement) String() string {
	return fmt.Sprintf("FromStatement(by %s as %s)", n.Unit, n.VarName)
}

// PrintStatement is `print expr ;`.
type PrintStatement struct {
	Base
	Value Node
}

func (n *PrintStatement) Children() []Node { return []Node{n.Value} }
func (n *PrintStatement) String() string   { return "PrintStatement" }

// ReturnStatement is `return expr? ;`.
type ReturnStatement struct {
	Base
	Value Node // nil when bare `return;`
}

func (n *ReturnStatement) Children() []Node {
	if n.Value == nil {
		return nil
	}
	return []Node{n.Value}
}
func (n *ReturnStatement) String() string { return "ReturnStatement" }

// FunDef is `fun NAME(params...) { body } ;`.
type FunDef struct {
	Base
	Name   string
	Params []string
	Body   *Body
}

func (n *FunDef) Children() []Node { return []Node{n.Body} }
func (n *FunDef) String() string {
	return fmt.Sprintf("FunDef(%s(%s))", n.Name, strings.Join(n.Params, ", "))
}

// ExpressionStatement is a bare call used as a statement: `id(args...) ;`.
type ExpressionStatement struct {
	Base
	Expr Node
}

func (n *ExpressionStatement) Children() []Node { return []Node{n.Expr} }
func (n *ExpressionStatement) String() string   { return "ExpressionStatement" }

// Identifier is a bare variable reference.
type Identifier struct {
	Base
	Name string
}

func (n *Identifier) Children() []Node { return nil }
func (n *Identifier) String() string   { return fmt.Sprintf("Identifier(%s)", n.Name) }

// UnitKeyword is a bare time-unit keyword used as a value, e.g. `seconds` in
// `var s = seconds;`. The unit of a from-statement's `by` clause is stored
// in FromStatement.Unit instead.
type UnitKeyword struct {
	Base
	Unit string
}

func (n *UnitKeyword) Children() []Node { return nil }
func (n *UnitKeyword) String() string   { return fmt.Sprintf("UnitKeyword(%s)", n.Unit) }

// Literal wraps a constant value of any of the six value kinds.
type Literal struct {
	Base
	Value values.Value
}

func (n *Literal) Children() []Node { return nil }
func (n *Literal) String() string   { return fmt.Sprintf("Literal(%s)", n.Value.String()) }

// UnaryExpr is a prefix `-` or `!` application.
type UnaryExpr struct {
	Base
	Op      token.Type
	Operand Node
}

func (n *UnaryExpr) Children() []Node { return []Node{n.Operand} }
func (n *UnaryExpr) String() string   { return fmt.Sprintf("UnaryExpr(%s)", n.Op) }

// BinaryExpr is one step of a left-associative operator chain
// (|, &, +, -, *, /).
type BinaryExpr struct {
	Base
	Op          token.Type
	Left, Right Node
}

func (n *BinaryExpr) Children() []Node { return []Node{n.Left, n.Right} }
func (n *BinaryExpr) String() string   { return fmt.Sprintf("BinaryExpr(%s)", n.Op) }

// ComparisonExpr is a single (non-associative) equality/relational
// application.
type ComparisonExpr struct {
	Base
	Op          token.Type
	Left, Right Node
}

func (n *ComparisonExpr) Children() []Node { return []Node{n.Left, n.Right} }
func (n *ComparisonExpr) String() string   { return fmt.Sprintf("ComparisonExpr(%s)", n.Op) }

// TimeInfoAccess is `expr . UNIT`.
type TimeInfoAccess struct {
	Base
	Target Node
	Unit   string
}

func (n *TimeInfoAccess) Children() []Node { return []Node{n.Target} }
func (n *TimeInfoAccess) String() string   { return fmt.Sprintf("TimeInfoAccess(.%s)", n.Unit) }

// FunctionCall is `NAME(args...)` used as an expression term.
type FunctionCall struct {
	Base
	Name string
	Args []Node
}

func (n *FunctionCall) Children() []Node { return n.Args }
func (n *FunctionCall) String() string   { return fmt.Sprintf("FunctionCall(%s)", n.Name) }

// NewRange builds an ast.Range from two positions.
func NewRange(start, end ast.Position) ast.Range {
	return ast.Range{Start: start, End: end}
}

// NewBase is a constructor helper for embedding in node literals.
func NewBase(r ast.Range) Base { return Base{Range: r} }

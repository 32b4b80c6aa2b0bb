package parser_test

import (
	"testing"

	iast "github.com/spietras/timon-interpreter/internal/ast"
	"github.com/spietras/timon-interpreter/internal/parser"
)

func TestParseProgramShape(t *testing.T) {
	input := `
var x = 1;
if x < 10 {
  print x;
} else {
  print 0;
};
from 01.01.2024 to 01.02.2024 by days as d {
  print d;
};
fun add(a, b) {
  return a + b;
};
add(1, 2);
`
	p, err := parser.New("test", input)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(prog.Statements) != 5 {
		t.Fatalf("got %d statements, want 5", len(prog.Statements))
	}
}

func TestParseEqualityIsNonAssociative(t *testing.T) {
	p, err := parser.New("test", "print a == b == c;")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := p.Parse(); err == nil {
		t.Fatal("expected a syntax error for chained equality")
	}
}

func TestParseUnclosedBodyIsSyntaxError(t *testing.T) {
	p, err := parser.New("test", "if 1 { print 1;")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := p.Parse(); err == nil {
		t.Fatal("expected a syntax error for an unterminated body")
	}
}

func TestParseParenthesizedExpressionCollapses(t *testing.T) {
	p, err := parser.New("test", "print (1 + 2);")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	stmt, ok := prog.Statements[0].(*iast.PrintStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.PrintStatement", prog.Statements[0])
	}
	if _, ok := stmt.Value.(*iast.BinaryExpr); !ok {
		t.Fatalf("got %T, want the parenthesized expression collapsed to *ast.BinaryExpr", stmt.Value)
	}
}

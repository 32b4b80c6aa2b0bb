package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	iast "github.com/spietras/timon-interpreter/internal/ast"
	"github.com/spietras/timon-interpreter/internal/diagnostics"
	"github.com/spietras/timon-interpreter/internal/interp"
	"github.com/spietras/timon-interpreter/internal/lexer"
	"github.com/spietras/timon-interpreter/internal/parser"
	"github.com/spietras/timon-interpreter/internal/source"
	"github.com/spietras/timon-interpreter/internal/token"
)

// runStage dispatches to the requested pipeline stage: lexer (print the
// token stream and stop), parser (print the syntax tree and stop), or
// execution (run the program, the default).
func runStage(cmd *cobra.Command, args []string) error {
	name, input, err := readInput(args)
	if err != nil {
		return err
	}

	switch stage {
	case "lexer":
		return runLexerStage(name, input)
	case "parser":
		return runParserStage(name, input)
	case "execution", "":
		return runExecutionStage(name, input)
	default:
		return fmt.Errorf("unknown --stage %q: expected lexer, parser, or execution", stage)
	}
}

func runLexerStage(name, input string) error {
	r := source.NewReader(name, input)
	lx := lexer.New(r)
	styles := diagnostics.DefaultStyles()

	for {
		tok, err := lx.Get()
		if err != nil {
			printLexError(styles, r, err)
			os.Exit(1)
		}
		fmt.Printf("%-20s %-16s %-6d %-6d %d\n",
			tok.String(), tok.Type, tok.Position.Line, tok.Position.Column, tok.Position.Offset)
		if tok.Type == token.END {
			break
		}
	}
	for _, w := range lx.Warnings {
		fmt.Fprintln(os.Stderr, w.String())
	}
	return nil
}

func runParserStage(name, input string) error {
	p, err := parser.New(name, input)
	if err != nil {
		r := source.NewReader(name, input)
		printLexError(diagnostics.DefaultStyles(), r, err)
		os.Exit(1)
	}

	prog, err := p.Parse()
	if err != nil {
		r := source.NewReader(name, input)
		printParseError(diagnostics.DefaultStyles(), r, err)
		os.Exit(1)
	}

	printTree(prog, "", true)
	for _, w := range p.Warnings {
		fmt.Fprintln(os.Stderr, w.String())
	}
	return nil
}

func runExecutionStage(name, input string) error {
	p, err := parser.New(name, input)
	if err != nil {
		r := source.NewReader(name, input)
		printLexError(diagnostics.DefaultStyles(), r, err)
		os.Exit(1)
	}

	prog, err := p.Parse()
	if err != nil {
		r := source.NewReader(name, input)
		printParseError(diagnostics.DefaultStyles(), r, err)
		os.Exit(1)
	}

	it := interp.New(os.Stdout)
	if _, err := it.Run(prog); err != nil {
		r := source.NewReader(name, input)
		printExecError(diagnostics.DefaultStyles(), r, err)
		os.Exit(1)
	}
	for _, w := range p.Warnings {
		fmt.Fprintln(os.Stderr, w.String())
	}
	return nil
}

func printLexError(styles diagnostics.Styles, r *source.Reader, err error) {
	if le, ok := err.(*lexer.Error); ok {
		fmt.Fprint(os.Stderr, diagnostics.Format(styles, r, "ERROR", le.Message, le.Position))
		return
	}
	fmt.Fprintln(os.Stderr, err)
}

func printParseError(styles diagnostics.Styles, r *source.Reader, err error) {
	if pe, ok := err.(*parser.Error); ok {
		fmt.Fprint(os.Stderr, diagnostics.Format(styles, r, "ERROR", pe.Message, pe.Position))
		return
	}
	printLexError(styles, r, err)
}

func printExecError(styles diagnostics.Styles, r *source.Reader, err error) {
	if ee, ok := err.(*interp.Error); ok {
		fmt.Fprint(os.Stderr, diagnostics.Format(styles, r, "ERROR", ee.Message, ee.Position))
		return
	}
	fmt.Fprintln(os.Stderr, err)
}

// printTree renders a syntax tree using box-drawing connectors.
func printTree(n iast.Node, prefix string, last bool) {
	connector := "├── "
	if last {
		connector = "└── "
	}
	if prefix == "" {
		fmt.Println(n.String())
	} else {
		fmt.Println(prefix + connector + n.String())
	}

	childPrefix := prefix
	if prefix != "" {
		if last {
			childPrefix += "    "
		} else {
			childPrefix += "│   "
		}
	}

	children := n.Children()
	for i, c := range children {
		printTree(c, childPrefix, i == len(children)-1)
	}
}

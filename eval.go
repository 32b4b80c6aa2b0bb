// Package timon provides a clean, idiomatic Go API for evaluating
// programs written in the language: an imperative scripting language
// specialized in calendar/temporal arithmetic over integers, strings,
// dates, times, datetimes, and timedeltas.
//
// Basic usage:
//
//	result, err := timon.Eval(`return 1 + 1;`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Value)
//
// Stateful sessions (for a REPL or a live editor):
//
//	session := timon.NewSession()
//	session.Eval(`var x = 10;`)
//	result, _ := session.Eval(`return x + 5;`)
//	fmt.Println(result.Value)
package timon

import (
	"bytes"

	"github.com/spietras/timon-interpreter/internal/interp"
	"github.com/spietras/timon-interpreter/internal/lexer"
	"github.com/spietras/timon-interpreter/internal/parser"
)

// Eval parses and executes a standalone program.
//
// Example:
//
//	result, err := timon.Eval(`print 100 + 20;`)
func Eval(input string) (*Result, error) {
	session := NewSession()
	return session.Eval(input)
}

// evaluate is the internal pipeline that connects parser -> interp, run
// against a persistent Environment so a Session's variables and function
// definitions survive across calls.
func evaluate(name, input string, env *interp.Environment) (*Result, error) {
	p, err := parser.New(name, input)
	if err != nil {
		return nil, err
	}

	prog, err := p.Parse()
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	it := interp.NewWithEnv(env, &out)
	value, err := it.Run(prog)
	if err != nil {
		return nil, err
	}

	return &Result{
		Value:       value,
		Output:      out.String(),
		Diagnostics: convertWarnings(p.Warnings),
	}, nil
}

func convertWarnings(warnings []*lexer.Warning) []Diagnostic {
	diags := make([]Diagnostic, len(warnings))
	for i, w := range warnings {
		diags[i] = Diagnostic{Severity: Warning, Message: w.String()}
	}
	return diags
}

// Package parser implements the recursive-descent parser described in
// spec.md §4.4: each grammar level checks the current token against its
// FIRST set and either recurses or raises a syntactic error naming what was
// expected. Eager tokenization with peek/match/consume/depth-guard
// helpers, with grammar shape grounded on
// original_source/timoninterpreter/syntax_nodes.py.
package parser

import (
	iast "github.com/spietras/timon-interpreter/internal/ast"
	"github.com/spietras/timon-interpreter/internal/lexer"
	"github.com/spietras/timon-interpreter/internal/source"
	"github.com/spietras/timon-interpreter/internal/token"
)

// Parser is a recursive-descent parser over an eagerly tokenized input.
type Parser struct {
	tokens  []token.Token
	current int
	depth   int

	// Warnings carries lexical warnings collected while tokenizing.
	Warnings []*lexer.Warning
}

// New tokenizes the given source eagerly and returns a Parser ready to
// parse it, or a lexical error if tokenizing failed.
func New(name, text string) (*Parser, error) {
	r := source.NewReader(name, text)
	lx := lexer.New(r)

	var tokens []token.Token
	for {
		tok, err := lx.Get()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if len(tokens) > MaxTokenCount {
			return nil, &Error{Position: tok.Position, Message: (&SecurityError{
				Message: "too many tokens", Limit: MaxTokenCount, Actual: len(tokens),
			}).Error()}
		}
		if tok.Type == token.END {
			break
		}
	}
	return &Parser{tokens: tokens, Warnings: lx.Warnings}, nil
}

// Parse parses the full token stream into a Program.
func (p *Parser) Parse() (*iast.Program, error) {
	start := p.peek().Position
	var statements []iast.Node
	for !p.isAtEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	end := p.peek().Position
	return &iast.Program{Base: iast.NewBase(iast.NewRange(start, end)), Statements: statements}, nil
}

func (p *Parser) peek() token.Token       { return p.tokens[p.current] }
func (p *Parser) peekAhead(n int) token.Token {
	i := p.current + n
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}
func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }
func (p *Parser) isAtEnd() bool         { return p.peek().Type == token.END }

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t token.Type) bool {
	if p.isAtEnd() {
		return t == token.END
	}
	return p.peek().Type == t
}

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(t token.Type, expected string) (token.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return token.Token{}, p.errorAt(p.peek(), "expected "+expected)
}

func (p *Parser) errorAt(tok token.Token, message string) error {
	return &Error{Position: tok.Position, Message: message}
}

func (p *Parser) enterDepth() error {
	p.depth++
	if p.depth > MaxNestingDepth {
		return p.errorAt(p.peek(), (&SecurityError{
			Message: "nesting too deep", Limit: MaxNestingDepth, Actual: p.depth,
		}).Error())
	}
	return nil
}

func (p *Parser) exitDepth() { p.depth-- }

var timeUnitNames = map[token.Type]string{
	token.YEARS: "years", token.MONTHS: "months", token.WEEKS: "weeks",
	token.DAYS: "days", token.HOURS: "hours", token.MINUTES: "minutes", token.SECONDS: "seconds",
}

func isTimeUnit(t token.Type) bool {
	_, ok := timeUnitNames[t]
	return ok
}

package parser

import (
	iast "github.com/spietras/timon-interpreter/internal/ast"
	"github.com/spietras/timon-interpreter/internal/token"
)

func (p *Parser) parseStatement() (iast.Node, error) {
	if err := p.enterDepth(); err != nil {
		return nil, err
	}
	defer p.exitDepth()

	switch {
	case p.check(token.FUN):
		return p.parseFunDef()
	case p.check(token.VAR):
		return p.parseVarDef()
	case p.check(token.IF):
		return p.parseIf()
	case p.check(token.FROM):
		return p.parseFrom()
	case p.check(token.PRINT):
		return p.parsePrint()
	case p.check(token.RETURN):
		return p.parseReturn()
	case p.check(token.IDENTIFIER):
		return p.parseIDStatement()
	default:
		return nil, p.errorAt(p.peek(), "expected a statement")
	}
}

func (p *Parser) parseBody() (*iast.Body, error) {
	start := p.peek().Position
	if _, err := p.consume(token.LEFT_BRACKET, "'{'"); err != nil {
		return nil, err
	}
	var statements []iast.Node
	for !p.check(token.RIGHT_BRACKET) {
		if p.isAtEnd() {
			return nil, p.errorAt(p.peek(), "unterminated body, expected '}'")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	end := p.advance().Position // consume '}'
	return &iast.Body{Base: iast.NewBase(iast.NewRange(start, end)), Statements: statements}, nil
}

func (p *Parser) parseFunDef() (iast.Node, error) {
	start := p.advance().Position // 'fun'
	name, err := p.consume(token.IDENTIFIER, "a function name")
	if err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	end, err := p.consume(token.SEMICOLON, "';'")
	if err != nil {
		return nil, err
	}
	return &iast.FunDef{
		Base: iast.NewBase(iast.NewRange(start, end.Position)),
		Name: name.Value.(string), Params: params, Body: body,
	}, nil
}

func (p *Parser) parseParams() ([]string, error) {
	if _, err := p.consume(token.LEFT_PARENTHESIS, "'('"); err != nil {
		return nil, err
	}
	var params []string
	if !p.check(token.RIGHT_PARENTHESIS) {
		for {
			name, err := p.consume(token.IDENTIFIER, "a parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, name.Value.(string))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(token.RIGHT_PARENTHESIS, "')'"); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseCallArgs() ([]iast.Node, error) {
	if _, err := p.consume(token.LEFT_PARENTHESIS, "'('"); err != nil {
		return nil, err
	}
	var args []iast.Node
	if !p.check(token.RIGHT_PARENTHESIS) {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(token.RIGHT_PARENTHESIS, "')'"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parseVarDef() (iast.Node, error) {
	start := p.advance().Position // 'var'
	name, err := p.consume(token.IDENTIFIER, "a variable name")
	if err != nil {
		return nil, err
	}
	var value iast.Node
	if p.match(token.ASSIGN) {
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	end, err := p.consume(token.SEMICOLON, "';'")
	if err != nil {
		return nil, err
	}
	return &iast.VarDef{
		Base: iast.NewBase(iast.NewRange(start, end.Position)),
		Name: name.Value.(string), Value: value,
	}, nil
}

func (p *Parser) parseIf() (iast.Node, error) {
	start := p.advance().Position // 'if'
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	var elseBody *iast.Body
	if p.match(token.ELSE) {
		elseBody, err = p.parseBody()
		if err != nil {
			return nil, err
		}
	}
	end, err := p.consume(token.SEMICOLON, "';'")
	if err != nil {
		return nil, err
	}
	return &iast.IfStatement{
		Base: iast.NewBase(iast.NewRange(start, end.Position)),
		Condition: cond, Then: then, Else: elseBody,
	}, nil
}

func (p *Parser) parseFrom() (iast.Node, error) {
	start := p.advance().Position // 'from'
	from, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.TO, "'to'"); err != nil {
		return nil, err
	}
	to, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.BY, "'by'"); err != nil {
		return nil, err
	}
	if !isTimeUnit(p.peek().Type) {
		return nil, p.errorAt(p.peek(), "expected a time unit")
	}
	unit := timeUnitNames[p.advance().Type]
	if _, err := p.consume(token.AS, "'as'"); err != nil {
		return nil, err
	}
	name, err := p.consume(token.IDENTIFIER, "a loop variable name")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	end, err := p.consume(token.SEMICOLON, "';'")
	if err != nil {
		return nil, err
	}
	return &iast.FromStatement{
		Base: iast.NewBase(iast.NewRange(start, end.Position)),
		Start: from, End: to, Unit: unit, VarName: name.Value.(string), Body: body,
	}, nil
}

func (p *Parser) parsePrint() (iast.Node, error) {
	start := p.advance().Position // 'print'
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	end, err := p.consume(token.SEMICOLON, "';'")
	if err != nil {
		return nil, err
	}
	return &iast.PrintStatement{Base: iast.NewBase(iast.NewRange(start, end.Position)), Value: value}, nil
}

func (p *Parser) parseReturn() (iast.Node, error) {
	start := p.advance().Position // 'return'
	var value iast.Node
	if !p.check(token.SEMICOLON) {
		var err error
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	end, err := p.consume(token.SEMICOLON, "';'")
	if err != nil {
		return nil, err
	}
	return &iast.ReturnStatement{Base: iast.NewBase(iast.NewRange(start, end.Position)), Value: value}, nil
}

// parseIDStatement disambiguates, after an identifier at statement
// position, between a function-call statement and an assignment.
func (p *Parser) parseIDStatement() (iast.Node, error) {
	name := p.advance() // identifier
	switch {
	case p.check(token.LEFT_PARENTHESIS):
		args, err := p.parseCallArgs()
		if err != nil {
			return nil, err
		}
		end, err := p.consume(token.SEMICOLON, "';'")
		if err != nil {
			return nil, err
		}
		call := &iast.FunctionCall{
			Base: iast.NewBase(iast.NewRange(name.Position, end.Position)),
			Name: name.Value.(string), Args: args,
		}
		return &iast.ExpressionStatement{Base: iast.NewBase(iast.NewRange(name.Position, end.Position)), Expr: call}, nil
	case p.check(token.ASSIGN):
		p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		end, err := p.consume(token.SEMICOLON, "';'")
		if err != nil {
			return nil, err
		}
		return &iast.Assignment{
			Base: iast.NewBase(iast.NewRange(name.Position, end.Position)),
			Name: name.Value.(string), Value: value,
		}, nil
	default:
		return nil, p.errorAt(p.peek(), "expected '(' or '=' after identifier")
	}
}

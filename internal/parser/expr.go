package parser

import (
	iast "github.com/spietras/timon-interpreter/internal/ast"
	"github.com/spietras/timon-interpreter/internal/token"
	"github.com/spietras/timon-interpreter/internal/values"
)

func (p *Parser) parseExpression() (iast.Node, error) {
	if err := p.enterDepth(); err != nil {
		return nil, err
	}
	defer p.exitDepth()
	return p.parseOr()
}

func (p *Parser) parseOr() (iast.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.check(token.LOGICAL_OR) {
		op := p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &iast.BinaryExpr{Base: iast.NewBase(iast.NewRange(left.GetRange().Start, right.GetRange().End)),
			Op: op.Type, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (iast.Node, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.check(token.LOGICAL_AND) {
		op := p.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &iast.BinaryExpr{Base: iast.NewBase(iast.NewRange(left.GetRange().Start, right.GetRange().End)),
			Op: op.Type, Left: left, Right: right}
	}
	return left, nil
}

// parseEquality implements the non-associative == / != level: at most one
// operator application.
func (p *Parser) parseEquality() (iast.Node, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	if p.check(token.EQUALS) || p.check(token.NOT_EQUALS) {
		op := p.advance()
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		return &iast.ComparisonExpr{Base: iast.NewBase(iast.NewRange(left.GetRange().Start, right.GetRange().End)),
			Op: op.Type, Left: left, Right: right}, nil
	}
	return left, nil
}

// parseRelational implements the non-associative </<=/>/>= level.
func (p *Parser) parseRelational() (iast.Node, error) {
	left, err := p.parseLogicTerm()
	if err != nil {
		return nil, err
	}
	if p.check(token.LESS) || p.check(token.LESS_OR_EQUAL) || p.check(token.GREATER) || p.check(token.GREATER_OR_EQUAL) {
		op := p.advance()
		right, err := p.parseLogicTerm()
		if err != nil {
			return nil, err
		}
		return &iast.ComparisonExpr{Base: iast.NewBase(iast.NewRange(left.GetRange().Start, right.GetRange().End)),
			Op: op.Type, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseLogicTerm() (iast.Node, error) {
	if p.check(token.NOT) {
		op := p.advance()
		operand, err := p.parseMath()
		if err != nil {
			return nil, err
		}
		return &iast.UnaryExpr{Base: iast.NewBase(iast.NewRange(op.Position, operand.GetRange().End)),
			Op: op.Type, Operand: operand}, nil
	}
	return p.parseMath()
}

func (p *Parser) parseMath() (iast.Node, error) {
	left, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for p.check(token.PLUS) || p.check(token.MINUS) {
		op := p.advance()
		right, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		left = &iast.BinaryExpr{Base: iast.NewBase(iast.NewRange(left.GetRange().Start, right.GetRange().End)),
			Op: op.Type, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMul() (iast.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.check(token.MULTIPLICATION) || p.check(token.DIVISION) {
		op := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &iast.BinaryExpr{Base: iast.NewBase(iast.NewRange(left.GetRange().Start, right.GetRange().End)),
			Op: op.Type, Left: left, Right: right}
	}
	return left, nil
}

// parseTerm implements `"-"? atom ( "." time_unit )?`.
func (p *Parser) parseTerm() (iast.Node, error) {
	var negPos *token.Token
	if p.check(token.MINUS) {
		t := p.advance()
		negPos = &t
	}

	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	result := atom
	if p.check(token.ACCESS) {
		p.advance()
		if !isTimeUnit(p.peek().Type) {
			return nil, p.errorAt(p.peek(), "expected a time unit after '.'")
		}
		unitTok := p.advance()
		result = &iast.TimeInfoAccess{
			Base: iast.NewBase(iast.NewRange(atom.GetRange().Start, unitTok.Position)),
			Target: atom, Unit: timeUnitNames[unitTok.Type],
		}
	}

	if negPos != nil {
		result = &iast.UnaryExpr{
			Base: iast.NewBase(iast.NewRange(negPos.Position, result.GetRange().End)),
			Op: token.MINUS, Operand: result,
		}
	}
	return result, nil
}

// parseAtom implements
// `literal | "(" expr ")" | Identifier | Identifier call_args | time_unit`.
func (p *Parser) parseAtom() (iast.Node, error) {
	tok := p.peek()
	switch {
	case tok.Type == token.NUMBER_LITERAL:
		p.advance()
		return &iast.Literal{Base: iast.NewBase(iast.NewRange(tok.Position, tok.Position)), Value: values.Integer(tok.Value.(int64))}, nil
	case tok.Type == token.STRING_LITERAL:
		p.advance()
		return &iast.Literal{Base: iast.NewBase(iast.NewRange(tok.Position, tok.Position)), Value: values.String(tok.Value.(string))}, nil
	case tok.Type == token.DATE_LITERAL:
		p.advance()
		return &iast.Literal{Base: iast.NewBase(iast.NewRange(tok.Position, tok.Position)), Value: tok.Value.(values.Date)}, nil
	case tok.Type == token.TIME_LITERAL:
		p.advance()
		return &iast.Literal{Base: iast.NewBase(iast.NewRange(tok.Position, tok.Position)), Value: tok.Value.(values.Time)}, nil
	case tok.Type == token.DATETIME_LITERAL:
		p.advance()
		return &iast.Literal{Base: iast.NewBase(iast.NewRange(tok.Position, tok.Position)), Value: tok.Value.(values.DateTime)}, nil
	case tok.Type == token.TIMEDELTA_LITERAL:
		p.advance()
		return &iast.Literal{Base: iast.NewBase(iast.NewRange(tok.Position, tok.Position)), Value: tok.Value.(values.Timedelta)}, nil
	case tok.Type == token.LEFT_PARENTHESIS:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHT_PARENTHESIS, "')'"); err != nil {
			return nil, err
		}
		return inner, nil
	case isTimeUnit(tok.Type):
		p.advance()
		return &iast.UnitKeyword{Base: iast.NewBase(iast.NewRange(tok.Position, tok.Position)), Unit: timeUnitNames[tok.Type]}, nil
	case tok.Type == token.IDENTIFIER:
		p.advance()
		if p.check(token.LEFT_PARENTHESIS) {
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			end := p.previous()
			return &iast.FunctionCall{Base: iast.NewBase(iast.NewRange(tok.Position, end.Position)),
				Name: tok.Value.(string), Args: args}, nil
		}
		return &iast.Identifier{Base: iast.NewBase(iast.NewRange(tok.Position, tok.Position)), Name: tok.Value.(string)}, nil
	default:
		return nil, p.errorAt(tok, "expected an expression")
	}
}

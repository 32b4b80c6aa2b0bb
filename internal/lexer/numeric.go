package lexer

import (
	"github.com/spietras/timon-interpreter/ast"
	"github.com/spietras/timon-interpreter/internal/token"
	"github.com/spietras/timon-interpreter/internal/values"
)

// readBaseInteger implements NumberLiteralSubLexer: a leading '0' ends the
// integer immediately (value 0, one digit consumed); otherwise digits
// accumulate up to MaxNumberLength.
func (l *Lexer) readBaseInteger() (int64, error) {
	pos := l.r.Position()
	c, _ := l.peekChar()
	if c == '0' {
		l.mustGet(1)
		return 0, nil
	}
	var value int64
	digits := 0
	for {
		c, ok := l.peekChar()
		if !ok || !isDigit(c) {
			break
		}
		l.mustGet(1)
		value = value*10 + int64(c-'0')
		digits++
		if digits > MaxNumberLength {
			return 0, &Error{Position: pos, Message: (&SecurityError{
				Message: "number literal too long", Limit: MaxNumberLength, Actual: digits,
			}).Error()}
		}
	}
	return value, nil
}

// lexNumeric implements NumericalLiteralSubLexer.get(): disambiguates a bare
// NUMBER_LITERAL from a DATE/TIME/DATETIME literal based on lookahead.
func (l *Lexer) lexNumeric() (token.Token, error) {
	pos := l.r.Position()
	numValue, err := l.readBaseInteger()
	if err != nil {
		return token.Token{}, err
	}

	if c, ok := l.peekChar(); ok && isDigit(c) {
		// Only reachable when numValue == 0: the "0N.NN.NNNN" / "0N:NN:NN"
		// compat path, where the leading zero is a boundary marker and this
		// next digit is the literal's real first component.
		l.mustGet(1)
		firstValue := int64(c - '0')
		if next, ok := l.peekChar(); ok && next == ':' {
			return l.continueHourToken(pos, firstValue)
		}
		return l.continueDateOrTime(pos, firstValue)
	}

	if numValue < 10 {
		return token.Token{Type: token.NUMBER_LITERAL, Position: pos, Value: numValue}, nil
	}

	c, ok := l.peekChar()
	switch {
	case ok && c == '.':
		// The '.' is a date separator only when followed by two digits and
		// another '.'; otherwise it is left for the next token (ACCESS).
		if la := []rune(l.r.Peek(4)); len(la) < 4 || !isDigit(la[1]) || !isDigit(la[2]) || la[3] != '.' {
			return token.Token{Type: token.NUMBER_LITERAL, Position: pos, Value: numValue}, nil
		}
		return l.continueDateOrTime(pos, numValue)
	case ok && c == ':':
		return l.continueHourToken(pos, numValue)
	case ok && isDigit(c):
		return token.Token{}, &Error{Position: l.r.Position(), Message: "unexpected digit"}
	default:
		return token.Token{Type: token.NUMBER_LITERAL, Position: pos, Value: numValue}, nil
	}
}

func (l *Lexer) continueDateOrTime(pos ast.Position, firstValue int64) (token.Token, error) {
	if _, err := l.checkChar('.'); err != nil {
		return token.Token{}, err
	}

	month, err := l.getTwoDigits()
	if err != nil {
		return token.Token{}, err
	}
	if _, err := l.checkChar('.'); err != nil {
		return token.Token{}, err
	}
	year, err := l.getFourDigits()
	if err != nil {
		return token.Token{}, err
	}

	if c, ok := l.peekChar(); ok && c == '~' {
		l.mustGet(1)
		hour, err := l.getTwoDigits()
		if err != nil {
			return token.Token{}, err
		}
		if _, err := l.checkChar(':'); err != nil {
			return token.Token{}, err
		}
		minute, err := l.getTwoDigits()
		if err != nil {
			return token.Token{}, err
		}
		if _, err := l.checkChar(':'); err != nil {
			return token.Token{}, err
		}
		second, err := l.getTwoDigits()
		if err != nil {
			return token.Token{}, err
		}
		d, err := values.NewDate(int(firstValue), month, year)
		if err != nil {
			return token.Token{}, &Error{Position: pos, Message: err.Error()}
		}
		t, err := values.NewTime(hour, minute, second)
		if err != nil {
			return token.Token{}, &Error{Position: pos, Message: err.Error()}
		}
		dt := values.DateTime{Date: d, Time: t}
		return token.Token{Type: token.DATETIME_LITERAL, Position: pos, Value: dt}, nil
	}

	d, err := values.NewDate(int(firstValue), month, year)
	if err != nil {
		return token.Token{}, &Error{Position: pos, Message: err.Error()}
	}
	return token.Token{Type: token.DATE_LITERAL, Position: pos, Value: d}, nil
}

func (l *Lexer) continueHourToken(pos ast.Position, firstValue int64) (token.Token, error) {
	l.mustGet(1) // ':'
	minute, err := l.getTwoDigits()
	if err != nil {
		return token.Token{}, err
	}
	if _, err := l.checkChar(':'); err != nil {
		return token.Token{}, err
	}
	second, err := l.getTwoDigits()
	if err != nil {
		return token.Token{}, err
	}
	t, err := values.NewTime(int(firstValue), minute, second)
	if err != nil {
		return token.Token{}, &Error{Position: pos, Message: err.Error()}
	}
	return token.Token{Type: token.TIME_LITERAL, Position: pos, Value: t}, nil
}

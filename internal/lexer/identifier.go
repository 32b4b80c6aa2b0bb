package lexer

import "github.com/spietras/timon-interpreter/internal/token"

func (l *Lexer) lexIdentifier() (token.Token, error) {
	pos := l.r.Position()
	var lexeme []rune
	for {
		c, ok := l.peekChar()
		if !ok || !isIdentifierMiddle(c) {
			break
		}
		l.mustGet(1)
		lexeme = append(lexeme, c)
		if len(lexeme) > MaxIdentifierLength {
			return token.Token{}, &Error{Position: pos, Message: (&SecurityError{
				Message: "identifier too long", Limit: MaxIdentifierLength, Actual: len(lexeme),
			}).Error()}
		}
	}
	name := string(lexeme)
	if kw, ok := token.Keywords[name]; ok {
		return token.Token{Type: kw, Position: pos, Text: name}, nil
	}
	return token.Token{Type: token.IDENTIFIER, Position: pos, Value: name, Text: name}, nil
}

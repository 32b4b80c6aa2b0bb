package lexer

import "github.com/spietras/timon-interpreter/internal/token"

func (l *Lexer) lexAmbiguousBinary() (token.Token, error) {
	pos := l.r.Position()
	first, _ := l.peekChar()
	l.mustGet(1)
	pair := token.AmbiguousBinary[first]
	second, ok := l.peekChar()
	if ok && second == '=' {
		l.mustGet(1)
		return token.Token{Type: pair.Paired, Position: pos, Text: string(first) + "="}, nil
	}
	return token.Token{Type: pair.Alone, Position: pos, Text: string(first)}, nil
}

func (l *Lexer) lexUnambiguousSingular() (token.Token, error) {
	pos := l.r.Position()
	c, _ := l.peekChar()
	l.mustGet(1)
	return token.Token{Type: token.UnambiguousSingular[c], Position: pos, Text: string(c)}, nil
}

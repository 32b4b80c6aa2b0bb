package lexer

import "github.com/spietras/timon-interpreter/internal/token"

// lexString consumes a "..." literal. \" is the only recognized escape.
// An unclosed string at EOF warns and is accepted with the content read so
// far.
func (l *Lexer) lexString() (token.Token, error) {
	pos := l.r.Position()
	l.mustGet(1) // opening '"'
	var content []rune
	for {
		c, ok := l.peekChar()
		if !ok {
			l.Warnings = append(l.Warnings, &Warning{
				Position: pos, Message: "file ended before end of string", Action: "Ignoring",
			})
			break
		}
		if c == '\\' {
			next, hasNext := l.peekCharAt(1)
			if hasNext && next == '"' {
				l.mustGet(2) // consume backslash and quote, keep only the quote
				content = append(content, '"')
				if len(content) > MaxStringContentLength {
					return token.Token{}, &Error{Position: pos, Message: (&SecurityError{
						Message: "string literal too long", Limit: MaxStringContentLength, Actual: len(content),
					}).Error()}
				}
				continue
			}
		}
		if c == '"' {
			l.mustGet(1) // closing '"'
			break
		}
		l.mustGet(1)
		content = append(content, c)
		if len(content) > MaxStringContentLength {
			return token.Token{}, &Error{Position: pos, Message: (&SecurityError{
				Message: "string literal too long", Limit: MaxStringContentLength, Actual: len(content),
			}).Error()}
		}
	}
	s := string(content)
	return token.Token{Type: token.STRING_LITERAL, Position: pos, Value: s, Text: s}, nil
}

func (l *Lexer) peekCharAt(n int) (rune, bool) {
	s := l.r.Peek(n + 1)
	rs := []rune(s)
	if len(rs) <= n {
		return 0, false
	}
	return rs[n], true
}

// Package lexer converts source characters into tokens, dispatching to
// specialized routines per leading character class. Grounded on
// original_source/timoninterpreter/lexical_analysis.py's Lexer/BaseLexer/
// SubLexer hierarchy (collapsed here into free functions over one Lexer,
// per spec.md §9's redesign note).
package lexer

import (
	"github.com/spietras/timon-interpreter/ast"
	"github.com/spietras/timon-interpreter/internal/source"
	"github.com/spietras/timon-interpreter/internal/token"
)

// Lexer produces a token stream from a source.Reader with one token of
// lookahead.
type Lexer struct {
	r      *source.Reader
	cached *token.Token

	// Warnings accumulates non-fatal diagnostics (unclosed comment/string/
	// timedelta recovered at EOF) encountered so far.
	Warnings []*Warning
}

// New builds a Lexer over the given reader.
func New(r *source.Reader) *Lexer {
	return &Lexer{r: r}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (token.Token, error) {
	if l.cached != nil {
		return *l.cached, nil
	}
	l.r.Checkpoint()
	tok, err := l.get()
	l.r.RewindBackward()
	if err != nil {
		return token.Token{}, err
	}
	l.cached = &tok
	return tok, nil
}

// Get consumes and returns the next token.
func (l *Lexer) Get() (token.Token, error) {
	if l.cached != nil {
		l.r.RewindForward()
		tok := *l.cached
		l.cached = nil
		return tok, nil
	}
	return l.get()
}

func (l *Lexer) peekChar() (rune, bool) {
	s := l.r.Peek(1)
	if s == "" {
		return 0, false
	}
	return []rune(s)[0], true
}

func (l *Lexer) get() (token.Token, error) {
	if err := l.skipToUnskippable(); err != nil {
		return token.Token{}, err
	}
	return l.tokenize()
}

func (l *Lexer) tokenize() (token.Token, error) {
	pos := l.r.Position()
	c, ok := l.peekChar()
	if !ok {
		return token.Token{Type: token.END, Position: pos}, nil
	}

	switch {
	case isIdentifierStart(c):
		return l.lexIdentifier()
	case isDigit(c):
		return l.lexNumeric()
	case isStringBound(c):
		return l.lexString()
	case isTimedeltaBound(c):
		return l.lexTimedelta()
	case isAmbiguousBinaryStart(c):
		return l.lexAmbiguousBinary()
	case isUnambiguousSingularStart(c):
		return l.lexUnambiguousSingular()
	default:
		return token.Token{}, &Error{Position: pos, Message: "unexpected character, not recognizable by any rule"}
	}
}

// skipToUnskippable consumes any run of whitespace and #...# comments
// preceding the next token.
func (l *Lexer) skipToUnskippable() error {
	count := 0
	for {
		c, ok := l.peekChar()
		if !ok || !isSkippable(c) {
			return nil
		}
		if isCommentBound(c) {
			n, err := l.skipComment()
			if err != nil {
				return err
			}
			count += n
		} else {
			l.mustGet(1)
			count++
		}
		if count > MaxSkippableSpanLength {
			return &Error{Position: l.r.Position(), Message: (&SecurityError{
				Message: "skippable span too long", Limit: MaxSkippableSpanLength, Actual: count,
			}).Error()}
		}
	}
}

func (l *Lexer) skipComment() (int, error) {
	startPos := l.r.Position()
	l.mustGet(1) // opening '#'
	count := 0
	for {
		c, ok := l.peekChar()
		if !ok {
			l.Warnings = append(l.Warnings, &Warning{
				Position: startPos, Message: "file ended before end of comment", Action: "Ignoring",
			})
			return count + 1, nil
		}
		if isCommentBound(c) {
			l.mustGet(1) // closing '#'
			return count + 2, nil
		}
		l.mustGet(1)
		count++
		if count > MaxCommentContentLength {
			return 0, &Error{Position: startPos, Message: (&SecurityError{
				Message: "comment too long", Limit: MaxCommentContentLength, Actual: count,
			}).Error()}
		}
	}
}

func (l *Lexer) mustGet(n int) string {
	s, _ := l.r.Get(n)
	return s
}

func (l *Lexer) checkChar(want rune) (ast.Position, error) {
	pos := l.r.Position()
	c, ok := l.peekChar()
	if !ok || c != want {
		return pos, &Error{Position: pos, Message: "unexpected character, expected '" + string(want) + "'"}
	}
	l.mustGet(1)
	return pos, nil
}

func (l *Lexer) getTwoDigits() (int, error) {
	pos := l.r.Position()
	d1, ok1 := l.peekChar()
	if !ok1 || !isDigit(d1) {
		return 0, &Error{Position: pos, Message: "expected a digit"}
	}
	l.mustGet(1)
	d2, ok2 := l.peekChar()
	if !ok2 || !isDigit(d2) {
		return 0, &Error{Position: pos, Message: "expected a digit"}
	}
	l.mustGet(1)
	return int(d1-'0')*10 + int(d2-'0'), nil
}

func (l *Lexer) getFourDigits() (int, error) {
	hi, err := l.getTwoDigits()
	if err != nil {
		return 0, err
	}
	lo, err := l.getTwoDigits()
	if err != nil {
		return 0, err
	}
	return hi*100 + lo, nil
}

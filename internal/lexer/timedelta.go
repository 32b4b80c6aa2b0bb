package lexer

import (
	"github.com/spietras/timon-interpreter/internal/token"
	"github.com/spietras/timon-interpreter/internal/values"
)

var timedeltaUnits = map[rune]bool{
	'Y': true, 'M': true, 'W': true, 'D': true, 'h': true, 'm': true, 's': true,
}

// lexTimedelta consumes a '...' literal: a sequence of digit-run+unit
// components (possibly whitespace separated), each unit from {Y,M,W,D,h,m,s}
// at most once. An unclosed timedelta at EOF warns and is accepted with the
// components read so far.
func (l *Lexer) lexTimedelta() (token.Token, error) {
	pos := l.r.Position()
	startAbs := l.r.AbsolutePos()
	l.mustGet(1) // opening '

	fields := map[rune]int64{}
	set := map[rune]bool{}

	for {
		if l.r.AbsolutePos()-startAbs > MaxTimedeltaLength {
			return token.Token{}, &Error{Position: pos, Message: (&SecurityError{
				Message: "timedelta literal too long", Limit: MaxTimedeltaLength,
				Actual: l.r.AbsolutePos() - startAbs,
			}).Error()}
		}

		c, ok := l.peekChar()
		if !ok {
			l.Warnings = append(l.Warnings, &Warning{
				Position: pos, Message: "file ended before end of timedelta bounds", Action: "Ignoring",
			})
			break
		}
		if c == '\'' {
			l.mustGet(1)
			break
		}
		if isWhite(c) {
			l.mustGet(1)
			continue
		}
		if !isDigit(c) {
			return token.Token{}, &Error{Position: l.r.Position(), Message: "unexpected character inside timedelta bounds"}
		}

		num, err := l.readBaseInteger()
		if err != nil {
			return token.Token{}, err
		}
		unit, ok := l.peekChar()
		if !ok || !timedeltaUnits[unit] {
			return token.Token{}, &Error{Position: l.r.Position(), Message: "unexpected time unit"}
		}
		l.mustGet(1)
		if set[unit] {
			return token.Token{}, &Error{Position: pos, Message: "can't define time unit twice"}
		}
		set[unit] = true
		fields[unit] = num
	}

	td := values.Timedelta{
		Years: fields['Y'], Months: fields['M'], Weeks: fields['W'], Days: fields['D'],
		Hours: fields['h'], Minutes: fields['m'], Seconds: fields['s'],
	}
	return token.Token{Type: token.TIMEDELTA_LITERAL, Position: pos, Value: td}, nil
}

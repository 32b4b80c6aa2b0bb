package lexer

import "github.com/spietras/timon-interpreter/internal/token"

func isWhite(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isCommentBound(c rune) bool { return c == '#' }

func isSkippable(c rune) bool { return isWhite(c) || isCommentBound(c) }

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isIdentifierStart(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentifierMiddle(c rune) bool {
	return isIdentifierStart(c) || isDigit(c)
}

func isStringBound(c rune) bool { return c == '"' }

func isTimedeltaBound(c rune) bool { return c == '\'' }

func isAmbiguousBinaryStart(c rune) bool {
	_, ok := token.AmbiguousBinary[c]
	return ok
}

func isUnambiguousSingularStart(c rune) bool {
	_, ok := token.UnambiguousSingular[c]
	return ok
}

package lexer_test

import (
	"testing"

	"github.com/spietras/timon-interpreter/internal/lexer"
	"github.com/spietras/timon-interpreter/internal/source"
	"github.com/spietras/timon-interpreter/internal/token"
)

func tokenize(t *testing.T, input string) []token.Token {
	t.Helper()
	r := source.NewReader("test", input)
	lx := lexer.New(r)
	var tokens []token.Token
	for {
		tok, err := lx.Get()
		if err != nil {
			t.Fatalf("lex error: %v", err)
		}
		tokens = append(tokens, tok)
		if tok.Type == token.END {
			return tokens
		}
	}
}

func typesOf(tokens []token.Token) []token.Type {
	types := make([]token.Type, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestLexKeywordsAndIdentifiers(t *testing.T) {
	tokens := tokenize(t, "var x = foo;")
	got := typesOf(tokens)
	want := []token.Type{token.VAR, token.IDENTIFIER, token.ASSIGN, token.IDENTIFIER, token.SEMICOLON, token.END}
	assertTypesEqual(t, got, want)
}

func TestLexDateTimeAndTimedeltaLiterals(t *testing.T) {
	tokens := tokenize(t, `01.03.2024~13:30:00 + '1Y 2M 3D' - 05:00:00`)
	got := typesOf(tokens)
	want := []token.Type{
		token.DATETIME_LITERAL, token.PLUS, token.TIMEDELTA_LITERAL,
		token.MINUS, token.TIME_LITERAL, token.END,
	}
	assertTypesEqual(t, got, want)
}

func TestLexAmbiguousBinaryOperators(t *testing.T) {
	tokens := tokenize(t, "a == b != c <= d >= e")
	got := typesOf(tokens)
	want := []token.Type{
		token.IDENTIFIER, token.EQUALS, token.IDENTIFIER, token.NOT_EQUALS, token.IDENTIFIER,
		token.LESS_OR_EQUAL, token.IDENTIFIER, token.GREATER_OR_EQUAL, token.IDENTIFIER, token.END,
	}
	assertTypesEqual(t, got, want)
}

func TestLexStringLiteralWithEscapedQuote(t *testing.T) {
	tokens := tokenize(t, `"say \"hi\""`)
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(tokens))
	}
	if tokens[0].Value.(string) != `say "hi"` {
		t.Errorf("got %q, want %q", tokens[0].Value, `say "hi"`)
	}
}

func TestLexUnclosedCommentWarns(t *testing.T) {
	r := source.NewReader("test", "# unterminated")
	lx := lexer.New(r)
	if _, err := lx.Get(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lx.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(lx.Warnings))
	}
}

func TestLexPeekDoesNotConsume(t *testing.T) {
	r := source.NewReader("test", "var x;")
	lx := lexer.New(r)
	peeked, err := lx.Peek()
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	got, err := lx.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if peeked != got {
		t.Fatalf("Peek() = %+v, Get() = %+v, want equal", peeked, got)
	}
}

func assertTypesEqual(t *testing.T, got, want []token.Type) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

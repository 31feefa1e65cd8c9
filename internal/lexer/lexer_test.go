package lexer_test

import (
	"testing"

	"github.com/cwbudde/go-tscheck/internal/lexer"
	"github.com/cwbudde/go-tscheck/internal/token"
)

func TestNextTokenPunctuationAndKeywords(t *testing.T) {
	input := `let x: number = 1 + 2; function f(a, b) { return a ?? b; }`

	expected := []token.Kind{
		token.LET, token.IDENT, token.COLON, token.IDENT, token.ASSIGN,
		token.NUMBER, token.PLUS, token.NUMBER, token.SEMICOLON,
		token.FUNCTION, token.IDENT, token.LPAREN, token.IDENT, token.COMMA,
		token.IDENT, token.RPAREN, token.LBRACE,
		token.RETURN, token.IDENT, token.QUESTION_QUESTION, token.IDENT, token.SEMICOLON,
		token.RBRACE, token.EOF,
	}

	l := lexer.New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("token %d: expected %v, got %v (%q)", i, want, tok.Type, tok.Literal)
		}
	}
}

func TestNextTokenTemplateLiteralCapturesWholeSpan(t *testing.T) {
	l := lexer.New("`hello ${name}!`")
	tok := l.NextToken()
	if tok.Type != token.TEMPLATE_STRING {
		t.Fatalf("expected TEMPLATE_STRING, got %v", tok.Type)
	}
	if tok.Literal != "`hello ${name}!`" {
		t.Fatalf("unexpected literal: %q", tok.Literal)
	}
}

func TestNextTokenArrowAndOptionalChaining(t *testing.T) {
	l := lexer.New("x?.y => z")
	types := []token.Kind{token.IDENT, token.QUESTION_DOT, token.IDENT, token.ARROW, token.IDENT, token.EOF}
	for i, want := range types {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("token %d: expected %v got %v", i, want, tok.Type)
		}
	}
}

func TestNextTokenBigIntSuffix(t *testing.T) {
	l := lexer.New("1n")
	tok := l.NextToken()
	if tok.Type != token.BIGINT || tok.Literal != "1" {
		t.Fatalf("expected BIGINT(1), got %v(%q)", tok.Type, tok.Literal)
	}
}

func TestPositionTracking(t *testing.T) {
	l := lexer.New("a\nb")
	first := l.NextToken()
	second := l.NextToken()
	if first.Pos.Line != 1 {
		t.Fatalf("expected first token on line 1, got %d", first.Pos.Line)
	}
	if second.Pos.Line != 2 {
		t.Fatalf("expected second token on line 2, got %d", second.Pos.Line)
	}
}

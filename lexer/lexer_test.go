package lexer

import (
	"testing"

	"jsparse/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func assertKinds(t *testing.T, got []token.Kind, want ...token.Kind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d (%v)", len(want), len(got), got)
	}
	for i, k := range want {
		if got[i] != k {
			t.Errorf("token %d: expected %s, got %s", i, k, got[i])
		}
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "var let const function return customIdent"
	toks, err := New(input).Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKinds(t, kinds(toks),
		token.VAR, token.LET, token.CONST, token.FUNCTION, token.RETURN, token.IDENT, token.EOF)
}

func TestKeywordBoundary(t *testing.T) {
	toks, err := New("instanceofx").Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKinds(t, kinds(toks), token.IDENT, token.EOF)
	if toks[0].Value != "instanceofx" {
		t.Errorf("expected identifier %q, got %q", "instanceofx", toks[0].Value)
	}
}

func TestNumbers(t *testing.T) {
	toks, err := New("0 42 12345").Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKinds(t, kinds(toks), token.NUMBER, token.NUMBER, token.NUMBER, token.EOF)
}

func TestStrings(t *testing.T) {
	toks, err := New(`'hello' "world"`).Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Kind != token.STRING || toks[0].Value != "hello" {
		t.Errorf("expected STRING hello, got %s %q", toks[0].Kind, toks[0].Value)
	}
	if toks[1].Kind != token.STRING || toks[1].Value != "world" {
		t.Errorf("expected STRING world, got %s %q", toks[1].Kind, toks[1].Value)
	}
}

func TestTemplateLiteralAllowsLineFeed(t *testing.T) {
	toks, err := New("`a\nb`").Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKinds(t, kinds(toks), token.TEMPLATE_STRING, token.EOF)
	if toks[0].Value != "a\nb" {
		t.Errorf("expected raw contents %q, got %q", "a\nb", toks[0].Value)
	}
}

func TestUnescapedLineFeedInStringIsLexError(t *testing.T) {
	_, err := New("'hello\nworld'").Tokenize()
	if err == nil {
		t.Fatal("expected a LexError, got none")
	}
}

func TestUnterminatedStringIsLexError(t *testing.T) {
	_, err := New(`"unterminated`).Tokenize()
	if err == nil {
		t.Fatal("expected a LexError, got none")
	}
}

func TestOperatorFamilyGreedyLongestMatch(t *testing.T) {
	input := ">>>= >>> >>= >> >= >"
	toks, err := New(input).Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKinds(t, kinds(toks),
		token.URSHIFT_ASSIGN, token.URSHIFT, token.RSHIFT_ASSIGN,
		token.RSHIFT, token.GE, token.GT, token.EOF)
}

func TestPunctuationAndArrow(t *testing.T) {
	input := "{ } [ ] ( ) , ; : ? ... => . ~"
	toks, err := New(input).Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKinds(t, kinds(toks),
		token.LBRACE, token.RBRACE, token.LBRACKET, token.RBRACKET,
		token.LPAREN, token.RPAREN, token.COMMA, token.SEMICOLON,
		token.COLON, token.QUESTION, token.ELLIPSIS, token.ARROW,
		token.DOT, token.TILDE, token.EOF)
}

func TestUnmatchedPrefixIsLexError(t *testing.T) {
	_, err := New("ab£c").Tokenize()
	if err == nil {
		t.Fatal("expected a LexError, got none")
	}
}

func TestEmptySourceProducesOnlyEOF(t *testing.T) {
	toks, err := New("").Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertKinds(t, kinds(toks), token.EOF)
}

func TestSpanOffsetsAreExclusiveAtEnd(t *testing.T) {
	toks, err := New("abc").Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	span := toks[0].Span
	if span.Start.Offset != 0 || span.End.Offset != 3 {
		t.Errorf("expected span [0,3), got [%d,%d)", span.Start.Offset, span.End.Offset)
	}
}

func TestLineFeedAdvancesLineAndResetsColumn(t *testing.T) {
	toks, err := New("a\nb").Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second := toks[1].Span.Start
	if second.Line != 1 || second.Column != 0 {
		t.Errorf("expected line 1 col 0, got line %d col %d", second.Line, second.Column)
	}
}

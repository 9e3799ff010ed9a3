// Package lexer implements the longest-match, first-character-dispatched
// tokenizer: it turns a UTF-8 source string into an ordered token vector
// terminated by a single EOF token, or fails fatally with an
// errors.LexError at the first position no matcher accepts.
package lexer

import (
	"jsparse/errors"
	"jsparse/source"
	"jsparse/token"
)

// matcherFn attempts to match a token starting at l.pos without mutating
// l. It reports the matched Kind and the number of bytes consumed.
type matcherFn func(l *Lexer) (token.Kind, int, bool)

// Lexer holds the source string and a position cursor. It carries no
// other state: a fresh Lexer can be built per parse, and many can run
// concurrently over independent source strings.
type Lexer struct {
	src  string
	pos  int
	line int
	col  int
}

// New builds a Lexer over src.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// Tokenize runs the lexer to completion, returning the full token vector
// (always ending in one EOF token) or the LexError at the first
// unmatched position.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token
	for {
		l.skipWhitespace()

		if l.pos >= len(l.src) {
			tokens = append(tokens, token.Token{Kind: token.EOF, Span: &source.Span{
				Start: l.position(), End: l.position(),
			}})
			return tokens, nil
		}

		start := l.position()
		kind, n, ok := l.dispatch(l.src[l.pos])
		if !ok {
			return nil, &errors.LexError{Position: start, Prefix: l.remainingPrefix()}
		}

		lexeme := l.src[l.pos : l.pos+n]
		l.advanceBy(n)

		tokens = append(tokens, token.Token{
			Kind:  kind,
			Value: lexemeValue(kind, lexeme),
			Span:  &source.Span{Start: start, End: l.position()},
		})
	}
}

// lexemeValue strips the surrounding quotes from string/template lexemes
// (the decoded value is the raw contents between the delimiters; escape
// processing is out of scope) and passes every other lexeme through
// unchanged.
func lexemeValue(kind token.Kind, lexeme string) string {
	switch kind {
	case token.STRING, token.TEMPLATE_STRING:
		return lexeme[1 : len(lexeme)-1]
	default:
		return lexeme
	}
}

func (l *Lexer) position() source.Position {
	return source.Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\r':
			l.advanceBy(1)
		case '\n':
			l.advanceBy(1)
		default:
			return
		}
	}
}

// advanceBy consumes n bytes from the current position, tracking line and
// column the same way the outer scan loop would one byte at a time.
func (l *Lexer) advanceBy(n int) {
	for i := 0; i < n; i++ {
		if l.src[l.pos] == '\n' {
			l.line++
			l.col = 0
		} else {
			l.col++
		}
		l.pos++
	}
}

// remainingPrefix returns a short, display-sized slice of the unmatched
// input for LexError diagnostics.
func (l *Lexer) remainingPrefix() string {
	const maxLen = 16
	end := l.pos + maxLen
	if end > len(l.src) {
		end = len(l.src)
	}
	return l.src[l.pos:end]
}

// dispatch is the first-character-to-matcher-list lookup of spec.md §4.1:
// a fixed table built once at package init, keyed by the byte that can
// start a punctuation mark, operator, or quoted literal. Letters and
// digits are deliberately absent from the table — for those the fallback
// list (identifier, then number) always applies, and the identifier
// matcher's maximal-munch-then-keyword-lookup already realizes the
// "keyword boundary" rule of spec.md §4.1 (an identifier like
// `instanceofx` is scanned whole before it is ever checked against the
// keyword table, so it can never be split into `instanceof` + `x`).
func (l *Lexer) dispatch(c byte) (token.Kind, int, bool) {
	if bucket, ok := dispatchTable[c]; ok {
		for _, m := range bucket {
			if kind, n, ok := m(l); ok {
				return kind, n, true
			}
		}
		return 0, 0, false
	}
	for _, m := range fallbackMatchers {
		if kind, n, ok := m(l); ok {
			return kind, n, true
		}
	}
	return 0, 0, false
}

var fallbackMatchers = []matcherFn{identifierMatcher, numberMatcher}

var dispatchTable = buildDispatchTable()

func buildDispatchTable() map[byte][]matcherFn {
	m := map[byte][]matcherFn{}

	single := map[byte]token.Kind{
		'{': token.LBRACE, '}': token.RBRACE,
		'[': token.LBRACKET, ']': token.RBRACKET,
		'(': token.LPAREN, ')': token.RPAREN,
		',': token.COMMA, ':': token.COLON, ';': token.SEMICOLON,
		'~': token.TILDE,
	}
	for c, kind := range single {
		m[c] = []matcherFn{literalMatcher(kind, string(c))}
	}

	m['.'] = []matcherFn{
		literalMatcher(token.ELLIPSIS, "..."),
		literalMatcher(token.DOT, "."),
	}

	// Operator-family matchers: hand-written greedy longest-match within
	// each family, exactly in the order spec.md §4.1 prescribes.
	m['+'] = []matcherFn{literalMatchers(
		tok(token.PLUS_PLUS, "++"), tok(token.PLUS_ASSIGN, "+="), tok(token.PLUS, "+"),
	)}
	m['-'] = []matcherFn{literalMatchers(
		tok(token.MINUS_MINUS, "--"), tok(token.MINUS_ASSIGN, "-="), tok(token.MINUS, "-"),
	)}
	m['*'] = []matcherFn{literalMatchers(
		tok(token.STAR_STAR_ASSIGN, "**="), tok(token.STAR_STAR, "**"),
		tok(token.STAR_ASSIGN, "*="), tok(token.STAR, "*"),
	)}
	m['/'] = []matcherFn{literalMatchers(
		tok(token.SLASH_ASSIGN, "/="), tok(token.SLASH, "/"),
	)}
	m['%'] = []matcherFn{literalMatchers(
		tok(token.PERCENT_ASSIGN, "%="), tok(token.PERCENT, "%"),
	)}
	m['<'] = []matcherFn{literalMatchers(
		tok(token.LSHIFT_ASSIGN, "<<="), tok(token.LSHIFT, "<<"),
		tok(token.LE, "<="), tok(token.LT, "<"),
	)}
	m['>'] = []matcherFn{literalMatchers(
		tok(token.URSHIFT_ASSIGN, ">>>="), tok(token.URSHIFT, ">>>"),
		tok(token.RSHIFT_ASSIGN, ">>="), tok(token.RSHIFT, ">>"),
		tok(token.GE, ">="), tok(token.GT, ">"),
	)}
	m['='] = []matcherFn{literalMatchers(
		tok(token.EQ_STRICT, "==="), tok(token.EQ, "=="), tok(token.ARROW, "=>"), tok(token.ASSIGN, "="),
	)}
	m['!'] = []matcherFn{literalMatchers(
		tok(token.NEQ_STRICT, "!=="), tok(token.NEQ, "!="), tok(token.BANG, "!"),
	)}
	m['|'] = []matcherFn{literalMatchers(
		tok(token.OR_ASSIGN, "||="), tok(token.OR, "||"), tok(token.BITOR_ASSIGN, "|="), tok(token.BITOR, "|"),
	)}
	m['^'] = []matcherFn{literalMatchers(
		tok(token.BITXOR_ASSIGN, "^="), tok(token.BITXOR, "^"),
	)}
	m['&'] = []matcherFn{literalMatchers(
		tok(token.AND_ASSIGN, "&&="), tok(token.AND, "&&"), tok(token.BITAND_ASSIGN, "&="), tok(token.BITAND, "&"),
	)}
	m['?'] = []matcherFn{literalMatchers(
		tok(token.NULLISH_ASSIGN, "??="), tok(token.NULLISH, "??"), tok(token.QUESTION, "?"),
	)}

	m['\''] = []matcherFn{stringMatcher}
	m['"'] = []matcherFn{stringMatcher}
	m['`'] = []matcherFn{templateMatcher}

	return m
}

type candidate struct {
	kind   token.Kind
	lexeme string
}

func tok(kind token.Kind, lexeme string) candidate { return candidate{kind, lexeme} }

// literalMatcher matches a single fixed lexeme (the "single-character" and
// "exact-string" matcher kinds of spec.md §4.1 are the same check, only
// the length differs).
func literalMatcher(kind token.Kind, lexeme string) matcherFn {
	return literalMatchers(tok(kind, lexeme))
}

// literalMatchers tries each candidate in the given order and returns the
// first whose lexeme is a prefix of the remaining input — the
// hand-written greedy longest-match an operator family needs, driven by
// a literal, explicitly ordered candidate list rather than generic
// length sorting.
func literalMatchers(cands ...candidate) matcherFn {
	return func(l *Lexer) (token.Kind, int, bool) {
		for _, c := range cands {
			if hasPrefixAt(l.src, l.pos, c.lexeme) {
				return c.kind, len(c.lexeme), true
			}
		}
		return 0, 0, false
	}
}

func hasPrefixAt(src string, pos int, prefix string) bool {
	if pos+len(prefix) > len(src) {
		return false
	}
	return src[pos:pos+len(prefix)] == prefix
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func identifierMatcher(l *Lexer) (token.Kind, int, bool) {
	if l.pos >= len(l.src) || !isIdentStart(l.src[l.pos]) {
		return 0, 0, false
	}
	i := l.pos + 1
	for i < len(l.src) && isIdentCont(l.src[i]) {
		i++
	}
	lexeme := l.src[l.pos:i]
	return token.Lookup(lexeme), i - l.pos, true
}

func numberMatcher(l *Lexer) (token.Kind, int, bool) {
	if l.pos >= len(l.src) || !isDigit(l.src[l.pos]) {
		return 0, 0, false
	}
	i := l.pos
	for i < len(l.src) && isDigit(l.src[i]) {
		i++
	}
	return token.NUMBER, i - l.pos, true
}

// stringMatcher walks from a `'`/`"` opener to the matching unescaped
// quote. A raw line feed before the closing quote, or running off the
// end of input, is a match failure — there is exactly one candidate in
// this bucket, so a failure here is a fatal LexError for the outer loop.
func stringMatcher(l *Lexer) (token.Kind, int, bool) {
	quote := l.src[l.pos]
	i := l.pos + 1
	for i < len(l.src) {
		switch c := l.src[i]; {
		case c == '\n':
			return 0, 0, false
		case c == '\\' && i+1 < len(l.src):
			i += 2
		case c == quote:
			return token.STRING, i + 1 - l.pos, true
		default:
			i++
		}
	}
	return 0, 0, false
}

// templateMatcher walks from a backtick to the matching unescaped
// backtick. Unlike stringMatcher, line feeds are permitted inside the
// literal; no interpolation is parsed (raw contents only).
func templateMatcher(l *Lexer) (token.Kind, int, bool) {
	i := l.pos + 1
	for i < len(l.src) {
		switch c := l.src[i]; {
		case c == '\\' && i+1 < len(l.src):
			i += 2
		case c == '`':
			return token.TEMPLATE_STRING, i + 1 - l.pos, true
		default:
			i++
		}
	}
	return 0, 0, false
}

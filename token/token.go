// Package token defines the closed set of lexical token kinds, their
// display names, and the operator-precedence table consulted by the
// parser's precedence-climbing routine.
package token

import "jsparse/source"

// Kind tags a token with one member of the closed set described in the
// specification's token table.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	IDENT
	NUMBER
	STRING
	TEMPLATE_STRING

	// Punctuation
	LBRACE
	RBRACE
	QUESTION
	COLON
	SEMICOLON
	PLUS_PLUS
	MINUS_MINUS
	ELLIPSIS
	ARROW
	LBRACKET
	RBRACKET
	DOT
	LPAREN
	RPAREN
	COMMA

	// Keywords
	ASYNC
	AWAIT
	BREAK
	CASE
	CATCH
	CONST
	CONTINUE
	DEBUGGER
	DEFAULT
	DELETE
	DO
	ELSE
	FALSE
	FINALLY
	FOR
	FUNCTION
	IF
	IN
	INSTANCEOF
	LET
	NEW
	NULL
	RETURN
	SUPER
	SWITCH
	THIS
	THROW
	TRUE
	TRY
	TYPEOF
	VAR
	VOID
	WHILE
	WITH
	YIELD

	// Operators
	ASSIGN
	PLUS_ASSIGN
	MINUS_ASSIGN
	STAR_ASSIGN
	SLASH_ASSIGN
	PERCENT_ASSIGN
	STAR_STAR_ASSIGN
	LSHIFT_ASSIGN
	RSHIFT_ASSIGN
	URSHIFT_ASSIGN
	BITOR_ASSIGN
	BITXOR_ASSIGN
	BITAND_ASSIGN
	OR_ASSIGN
	AND_ASSIGN
	NULLISH_ASSIGN

	OR
	NULLISH
	AND
	BITOR
	BITXOR
	BITAND

	EQ
	NEQ
	EQ_STRICT
	NEQ_STRICT

	LT
	LE
	GT
	GE

	LSHIFT
	RSHIFT
	URSHIFT

	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	STAR_STAR

	BANG
	TILDE
)

// Info is the TokenType value object of the specification: a display
// name, whether the kind is a keyword, and — for infix operators — a
// precedence (1-19) and an associativity flag. Precedence 0 means "not an
// infix operator."
type Info struct {
	Name             string
	IsKeyword        bool
	Precedence       int
	RightAssociative bool
}

var infoTable = map[Kind]Info{
	ILLEGAL:         {Name: "illegal"},
	EOF:             {Name: "eof"},
	IDENT:           {Name: "identifier"},
	NUMBER:          {Name: "number"},
	STRING:          {Name: "string"},
	TEMPLATE_STRING: {Name: "templateString"},

	LBRACE:      {Name: "{"},
	RBRACE:      {Name: "}"},
	QUESTION:    {Name: "?"},
	COLON:       {Name: ":"},
	SEMICOLON:   {Name: ";"},
	PLUS_PLUS:   {Name: "++"},
	MINUS_MINUS: {Name: "--"},
	ELLIPSIS:    {Name: "..."},
	ARROW:       {Name: "=>"},
	LBRACKET:    {Name: "[", Precedence: 17},
	RBRACKET:    {Name: "]", Precedence: 17},
	DOT:         {Name: ".", Precedence: 18},
	LPAREN:      {Name: "(", Precedence: 18},
	RPAREN:      {Name: ")", Precedence: 18},
	COMMA:       {Name: ",", Precedence: 1},

	ASYNC:      {Name: "async", IsKeyword: true},
	AWAIT:      {Name: "await", IsKeyword: true},
	BREAK:      {Name: "break", IsKeyword: true},
	CASE:       {Name: "case", IsKeyword: true},
	CATCH:      {Name: "catch", IsKeyword: true},
	CONST:      {Name: "const", IsKeyword: true},
	CONTINUE:   {Name: "continue", IsKeyword: true},
	DEBUGGER:   {Name: "debugger", IsKeyword: true},
	DEFAULT:    {Name: "default", IsKeyword: true},
	DELETE:     {Name: "delete", IsKeyword: true, Precedence: 15, RightAssociative: true},
	DO:         {Name: "do", IsKeyword: true},
	ELSE:       {Name: "else", IsKeyword: true},
	FALSE:      {Name: "false", IsKeyword: true},
	FINALLY:    {Name: "finally", IsKeyword: true},
	FOR:        {Name: "for", IsKeyword: true},
	FUNCTION:   {Name: "function", IsKeyword: true},
	IF:         {Name: "if", IsKeyword: true},
	IN:         {Name: "in", IsKeyword: true, Precedence: 10},
	INSTANCEOF: {Name: "instanceof", IsKeyword: true, Precedence: 10},
	LET:        {Name: "let", IsKeyword: true},
	NEW:        {Name: "new", IsKeyword: true},
	NULL:       {Name: "null", IsKeyword: true},
	RETURN:     {Name: "return", IsKeyword: true},
	SUPER:      {Name: "super", IsKeyword: true},
	SWITCH:     {Name: "switch", IsKeyword: true},
	THIS:       {Name: "this", IsKeyword: true},
	THROW:      {Name: "throw", IsKeyword: true, Precedence: 15, RightAssociative: true},
	TRUE:       {Name: "true", IsKeyword: true},
	TRY:        {Name: "try", IsKeyword: true},
	TYPEOF:     {Name: "typeof", IsKeyword: true, Precedence: 15, RightAssociative: true},
	VAR:        {Name: "var", IsKeyword: true},
	VOID:       {Name: "void", IsKeyword: true, Precedence: 15, RightAssociative: true},
	WHILE:      {Name: "while", IsKeyword: true},
	WITH:       {Name: "with", IsKeyword: true},
	YIELD:      {Name: "yield", IsKeyword: true},

	ASSIGN:         {Name: "=", Precedence: 2, RightAssociative: true},
	PLUS_ASSIGN:    {Name: "+=", Precedence: 2, RightAssociative: true},
	MINUS_ASSIGN:   {Name: "-=", Precedence: 2, RightAssociative: true},
	STAR_ASSIGN:    {Name: "*=", Precedence: 2, RightAssociative: true},
	SLASH_ASSIGN:   {Name: "/=", Precedence: 2, RightAssociative: true},
	PERCENT_ASSIGN: {Name: "%=", Precedence: 2, RightAssociative: true},
	STAR_STAR_ASSIGN: {
		Name: "**=", Precedence: 2, RightAssociative: true,
	},
	LSHIFT_ASSIGN:   {Name: "<<=", Precedence: 2, RightAssociative: true},
	RSHIFT_ASSIGN:   {Name: ">>=", Precedence: 2, RightAssociative: true},
	URSHIFT_ASSIGN:  {Name: ">>>=", Precedence: 2, RightAssociative: true},
	BITOR_ASSIGN:    {Name: "|=", Precedence: 2, RightAssociative: true},
	BITXOR_ASSIGN:   {Name: "^=", Precedence: 2, RightAssociative: true},
	BITAND_ASSIGN:   {Name: "&=", Precedence: 2, RightAssociative: true},
	OR_ASSIGN:       {Name: "||=", Precedence: 2, RightAssociative: true},
	AND_ASSIGN:      {Name: "&&=", Precedence: 2, RightAssociative: true},
	NULLISH_ASSIGN:  {Name: "??=", Precedence: 2, RightAssociative: true},

	OR:      {Name: "||", Precedence: 4},
	NULLISH: {Name: "??", Precedence: 4},
	AND:     {Name: "&&", Precedence: 5},
	BITOR:   {Name: "|", Precedence: 6},
	BITXOR:  {Name: "^", Precedence: 7},
	BITAND:  {Name: "&", Precedence: 8},

	EQ:         {Name: "==", Precedence: 9},
	NEQ:        {Name: "!=", Precedence: 9},
	EQ_STRICT:  {Name: "===", Precedence: 9},
	NEQ_STRICT: {Name: "!==", Precedence: 9},

	LT: {Name: "<", Precedence: 10},
	LE: {Name: "<=", Precedence: 10},
	GT: {Name: ">", Precedence: 10},
	GE: {Name: ">=", Precedence: 10},

	LSHIFT:  {Name: "<<", Precedence: 11},
	RSHIFT:  {Name: ">>", Precedence: 11},
	URSHIFT: {Name: ">>>", Precedence: 11},

	PLUS:    {Name: "+", Precedence: 12},
	MINUS:   {Name: "-", Precedence: 12},
	STAR:    {Name: "*", Precedence: 13},
	SLASH:   {Name: "/", Precedence: 13},
	PERCENT: {Name: "%", Precedence: 13},

	STAR_STAR: {Name: "**", Precedence: 14, RightAssociative: true},

	BANG:  {Name: "!", Precedence: 15, RightAssociative: true},
	TILDE: {Name: "~", Precedence: 15, RightAssociative: true},
}

// keywords maps every reserved word to its Kind. Built once from
// infoTable rather than hand-duplicated, so the two can never drift.
var keywords = func() map[string]Kind {
	m := make(map[string]Kind)
	for k, info := range infoTable {
		if info.IsKeyword {
			m[info.Name] = k
		}
	}
	return m
}()

// Lookup returns the keyword Kind for an identifier-shaped lexeme, or
// IDENT if it is not one of the reserved words.
func Lookup(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return IDENT
}

func (k Kind) String() string {
	if info, ok := infoTable[k]; ok {
		return info.Name
	}
	return "unknown"
}

// IsKeyword reports whether k is one of the reserved words.
func (k Kind) IsKeyword() bool { return infoTable[k].IsKeyword }

// Precedence returns k's infix-operator precedence, or 0 if k is not an
// infix operator.
func (k Kind) Precedence() int { return infoTable[k].Precedence }

// RightAssociative reports whether k associates to the right when used as
// an infix/prefix operator.
func (k Kind) RightAssociative() bool { return infoTable[k].RightAssociative }

// Token is an immutable lexeme produced by the lexer. The lexer's outer
// scan loop measures each match first and builds the Token with its Span
// already attached.
type Token struct {
	Kind  Kind
	Value string
	Span  *source.Span
}

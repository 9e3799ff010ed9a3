package parser

import (
	"jsparse/ast"
	"jsparse/token"
)

func (p *Parser) parseObjectExpression() ast.Expression {
	p.startNode()
	p.advance() // '{'
	var props []ast.ObjectMember
	for !p.match(token.RBRACE, 0) {
		member := p.parseObjectMember()
		props = append(props, member)
		if !p.accept(token.COMMA) {
			break
		}
		if p.match(token.RBRACE, 0) {
			setTrailingComma(member)
			break
		}
	}
	p.expect(token.RBRACE)
	n := &ast.ObjectExpression{Properties: props}
	p.finishNode(n)
	return n
}

// parseObjectMember dispatches on the lookahead per spec.md §4.2's
// object-member rules: `...` starts a SpreadElement, `get`/`set`
// immediately followed by a key (not `:`, `(`, `,`, `}` or `=`) start an
// accessor ObjectMethod, a key followed by `(` starts a plain-method
// ObjectMethod, a key followed by `:` is a regular property, and a bare
// key (followed by `,`, `}` or `=`) is shorthand — `=` only legal once
// the member list is later rewritten into a destructuring pattern.
func (p *Parser) parseObjectMember() ast.ObjectMember {
	if p.match(token.ELLIPSIS, 0) {
		p.startNode()
		p.advance()
		arg := p.parseExpr(elementFlags())
		n := &ast.SpreadElement{Argument: arg}
		p.finishNode(n)
		return n
	}

	if p.atAccessorKeyword() {
		return p.parseObjectAccessor()
	}

	p.startNode()
	generator := false
	async := false
	if p.match(token.ASYNC, 0) && !p.keyTerminatesAt(1) {
		async = true
		p.advance()
	}
	if p.match(token.STAR, 0) {
		generator = true
		p.advance()
	}

	computed, key := p.parseMemberKey()

	switch {
	case p.match(token.LPAREN, 0):
		return p.finishObjectMethod("method", key, computed, generator, async)
	case p.accept(token.COLON):
		value := p.parseExpr(elementFlags())
		prop := &ast.ObjectProperty{Key: key, Value: value, Computed: computed}
		p.finishNode(prop)
		return prop
	default:
		// Shorthand: `{x}` or, in a would-be pattern, `{x = 1}`.
		id, ok := key.(*ast.Identifier)
		if !ok {
			p.unexpected(p.peek(0), ":", "(")
		}
		var value ast.Node = id
		if p.match(token.ASSIGN, 0) {
			p.startNodeFrom(id)
			p.advance()
			def := p.parseExpr(elementFlags())
			assign := &ast.AssignmentExpression{Operator: "=", Left: id, Right: def}
			p.finishNode(assign)
			value = assign
		}
		prop := &ast.ObjectProperty{Key: id, Value: value, Shorthand: true}
		p.finishNode(prop)
		return prop
	}
}

// keyTerminatesAt reports whether the token at offset would end a member
// key outright (meaning a preceding `async`/`get`/`set` lexeme must be
// the key itself, not a modifier) — i.e. `{async: 1}` or `{async() {}}`
// or `{async, b}` or `{async}`.
func (p *Parser) keyTerminatesAt(offset int) bool {
	return p.match(token.COLON, offset) || p.match(token.LPAREN, offset) ||
		p.match(token.COMMA, offset) || p.match(token.RBRACE, offset) ||
		p.match(token.ASSIGN, offset)
}

// atAccessorKeyword reports whether the current token is `get`/`set`
// used as a getter/setter modifier rather than as the member's own key
// — i.e. not immediately followed by one of the tokens that would make
// `get`/`set` the key itself.
func (p *Parser) atAccessorKeyword() bool {
	if !p.matchGetOrSet() {
		return false
	}
	return !p.keyTerminatesAt(1)
}

func (p *Parser) matchGetOrSet() bool {
	tok := p.peek(0)
	return tok.Kind == token.IDENT && (tok.Value == "get" || tok.Value == "set")
}

func (p *Parser) parseObjectAccessor() ast.ObjectMember {
	p.startNode()
	kindTok := p.advance() // 'get' or 'set'
	_, key := p.parseMemberKey()
	return p.finishObjectMethod(kindTok.Value, key, false, false, false)
}

// finishObjectMethod parses the shared `(params) { body }` suffix once
// the key (and any get/set/async/generator modifiers) have already been
// consumed, and the member's own startNode frame (pushed by the caller
// before any modifiers and the key) is still on the stack.
func (p *Parser) finishObjectMethod(kind string, key ast.Expression, computed, generator, async bool) ast.ObjectMember {
	params := p.parseParamList()
	body := p.parseBlockStatement()
	m := &ast.ObjectMethod{
		Kind:      kind,
		Key:       key,
		Params:    params,
		Body:      body,
		Computed:  computed,
		Generator: generator,
		Async:     async,
	}
	p.finishNode(m)
	return m
}

// parseMemberKey parses a computed `[expr]` key, a string/numeric
// literal key, or an identifier-or-keyword key, returning whether the
// key was computed.
func (p *Parser) parseMemberKey() (bool, ast.Expression) {
	if p.match(token.LBRACKET, 0) {
		p.advance()
		key := p.parseExpr(allFlags())
		p.expect(token.RBRACKET)
		return true, key
	}
	if p.match(token.STRING, 0) {
		return false, p.parseStringLiteral()
	}
	if p.match(token.NUMBER, 0) {
		return false, p.parseNumericLiteral()
	}
	return false, p.parseIdentifierName()
}

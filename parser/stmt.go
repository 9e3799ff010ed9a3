package parser

import (
	"jsparse/ast"
	"jsparse/errors"
	"jsparse/token"
)

// parseStatement is spec.md §4.2's statement dispatch: punctuation and
// keyword lookaheads each pick a specific statement parser; anything
// else is an ExpressionStatement, including a leading identifier that
// turns out not to be followed by `:` (which would make it a
// LabeledStatement instead).
func (p *Parser) parseStatement() ast.Statement {
	tok := p.peek(0)

	switch tok.Kind {
	case token.LBRACE:
		return p.parseBlockStatement()
	case token.SEMICOLON:
		return p.parseEmptyStatement()
	case token.VAR, token.LET, token.CONST:
		return p.parseVariableStatement()
	case token.FUNCTION:
		return p.parseFunctionDeclaration(false)
	case token.ASYNC:
		if p.match(token.FUNCTION, 1) {
			return p.parseFunctionDeclaration(true)
		}
	case token.IF:
		return p.parseIfStatement()
	case token.SWITCH:
		return p.parseSwitchStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.DO:
		return p.parseDoWhileStatement()
	case token.TRY:
		return p.parseTryStatement()
	case token.WITH:
		return p.parseWithStatement()
	case token.DEBUGGER:
		return p.parseDebuggerStatement()
	case token.BREAK:
		return p.parseBreakStatement()
	case token.CONTINUE:
		return p.parseContinueStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	}

	if tok.Kind == token.IDENT && p.match(token.COLON, 1) {
		return p.parseLabeledStatement()
	}

	return p.parseExpressionStatement()
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	p.startNode()
	p.expect(token.LBRACE)
	var body []ast.Statement
	for !p.match(token.RBRACE, 0) {
		body = append(body, p.parseStatement())
	}
	p.expect(token.RBRACE)
	n := &ast.BlockStatement{Body: body}
	p.finishNode(n)
	return n
}

func (p *Parser) parseEmptyStatement() ast.Statement {
	p.startNode()
	p.advance() // ';'
	n := &ast.EmptyStatement{}
	p.finishNode(n)
	return n
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	p.startNode()
	expr := p.parseExpr(allFlags())
	p.expectBreak()
	n := &ast.ExpressionStatement{Expr: expr}
	p.finishNode(n)
	return n
}

func (p *Parser) parseLabeledStatement() ast.Statement {
	p.startNode()
	label := p.parseIdentifier()
	p.expect(token.COLON)
	body := p.parseStatement()
	n := &ast.LabeledStatement{Label: label, Body: body}
	p.finishNode(n)
	return n
}

// parseVariableStatement covers `var`/`let`/`const` at statement
// position, terminated the same way any other statement is.
func (p *Parser) parseVariableStatement() ast.Statement {
	decl := p.parseVariableDeclaration()
	p.expectBreak()
	return decl
}

// parseVariableDeclaration parses the `kind decl, decl, ...` shape
// shared by variable statements and a for-loop's Init clause, without
// the trailing expectBreak a for-loop's semicolons make unnecessary.
func (p *Parser) parseVariableDeclaration() *ast.VariableDeclaration {
	p.startNode()
	kindTok := p.expectAny(token.VAR, token.LET, token.CONST)
	var decls []*ast.VariableDeclarator
	for {
		decls = append(decls, p.parseVariableDeclarator())
		if !p.accept(token.COMMA) {
			break
		}
	}
	n := &ast.VariableDeclaration{Kind: kindTok.Value, Declarations: decls}
	p.finishNode(n)
	return n
}

func (p *Parser) parseVariableDeclarator() *ast.VariableDeclarator {
	p.startNode()
	// assignment and call both disabled: the declarator's own `=` belongs
	// to this function's explicit accept(token.ASSIGN) below, not to the
	// target expression — otherwise `let x = 1` would parse its target as
	// the AssignmentExpression `x = 1` and never reach the initializer.
	targetFlags := exprFlags{grouped: true, sequence: false, assignment: false, call: false}
	id := p.rewriteToPattern(p.parseExpr(targetFlags))
	var init ast.Expression
	if p.accept(token.ASSIGN) {
		init = p.parseExpr(elementFlags())
	}
	d := &ast.VariableDeclarator{Id: id, Init: init}
	p.finishNode(d)
	return d
}

func (p *Parser) parseIfStatement() ast.Statement {
	p.startNode()
	p.advance() // 'if'
	p.expect(token.LPAREN)
	test := p.parseExpr(allFlags())
	p.expect(token.RPAREN)
	consequent := p.parseStatement()
	var alternate ast.Statement
	if p.accept(token.ELSE) {
		alternate = p.parseStatement()
	}
	n := &ast.IfStatement{Test: test, Consequent: consequent, Alternate: alternate}
	p.finishNode(n)
	return n
}

func (p *Parser) parseSwitchStatement() ast.Statement {
	p.startNode()
	p.advance() // 'switch'
	p.expect(token.LPAREN)
	discriminant := p.parseExpr(allFlags())
	p.expect(token.RPAREN)
	p.expect(token.LBRACE)
	var cases []*ast.SwitchCase
	for !p.match(token.RBRACE, 0) {
		cases = append(cases, p.parseSwitchCase())
	}
	p.expect(token.RBRACE)
	n := &ast.SwitchStatement{Discriminant: discriminant, Cases: cases}
	p.finishNode(n)
	return n
}

// parseSwitchCase's Consequent runs until the next `case`, `default` or
// the switch's closing `}` — there is no per-case block delimiter.
func (p *Parser) parseSwitchCase() *ast.SwitchCase {
	p.startNode()
	var test ast.Expression
	if p.accept(token.CASE) {
		test = p.parseExpr(allFlags())
	} else {
		p.expect(token.DEFAULT)
	}
	p.expect(token.COLON)
	var body []ast.Statement
	for !p.matchAny(token.CASE, token.DEFAULT, token.RBRACE) {
		body = append(body, p.parseStatement())
	}
	c := &ast.SwitchCase{Test: test, Consequent: body}
	p.finishNode(c)
	return c
}

// parseForStatement disambiguates its three clause styles purely by
// lookahead after `(`: a bare `;` means an absent Init, `var`/`let`/
// `const` starts a VariableDeclaration, anything else is parsed as an
// expression with elementFlags, so a `,` in the Init clause is not read
// as a SequenceExpression (the Test and Update clauses use allFlags and
// do accept one).
func (p *Parser) parseForStatement() ast.Statement {
	p.startNode()
	p.advance() // 'for'
	p.expect(token.LPAREN)

	var init ast.Node
	switch {
	case p.match(token.SEMICOLON, 0):
		// no init
	case p.matchAny(token.VAR, token.LET, token.CONST):
		init = p.parseVariableDeclaration()
	default:
		init = p.parseExpr(elementFlags())
	}
	p.expect(token.SEMICOLON)

	var test ast.Expression
	if !p.match(token.SEMICOLON, 0) {
		test = p.parseExpr(allFlags())
	}
	p.expect(token.SEMICOLON)

	var update ast.Expression
	if !p.match(token.RPAREN, 0) {
		update = p.parseExpr(allFlags())
	}
	p.expect(token.RPAREN)

	body := p.parseStatement()
	n := &ast.ForStatement{Init: init, Test: test, Update: update, Body: body}
	p.finishNode(n)
	return n
}

func (p *Parser) parseWhileStatement() ast.Statement {
	p.startNode()
	p.advance() // 'while'
	p.expect(token.LPAREN)
	test := p.parseExpr(allFlags())
	p.expect(token.RPAREN)
	body := p.parseStatement()
	n := &ast.WhileStatement{Test: test, Body: body}
	p.finishNode(n)
	return n
}

func (p *Parser) parseDoWhileStatement() ast.Statement {
	p.startNode()
	p.advance() // 'do'
	body := p.parseStatement()
	p.expect(token.WHILE)
	p.expect(token.LPAREN)
	test := p.parseExpr(allFlags())
	p.expect(token.RPAREN)
	p.expectBreak()
	n := &ast.DoWhileStatement{Body: body, Test: test}
	p.finishNode(n)
	return n
}

// parseTryStatement enforces spec.md §7's "Missing catch or finally
// after try" rule: at least one of Handler/Finalizer must be present.
func (p *Parser) parseTryStatement() ast.Statement {
	p.startNode()
	p.advance() // 'try'
	block := p.parseBlockStatement()

	var handler *ast.CatchClause
	if p.accept(token.CATCH) {
		handler = p.parseCatchClause()
	}

	var finalizer *ast.BlockStatement
	if p.accept(token.FINALLY) {
		finalizer = p.parseBlockStatement()
	}

	if handler == nil && finalizer == nil {
		p.fail(errors.NewMissingCatchOrFinally())
	}

	n := &ast.TryStatement{Block: block, Handler: handler, Finalizer: finalizer}
	p.finishNode(n)
	return n
}

func (p *Parser) parseCatchClause() *ast.CatchClause {
	p.startNode()
	var param ast.Pattern
	if p.accept(token.LPAREN) {
		param = p.rewriteToPattern(p.parseExpr(elementFlags()))
		p.expect(token.RPAREN)
	}
	body := p.parseBlockStatement()
	c := &ast.CatchClause{Param: param, Body: body}
	p.finishNode(c)
	return c
}

func (p *Parser) parseWithStatement() ast.Statement {
	p.startNode()
	p.advance() // 'with'
	p.expect(token.LPAREN)
	object := p.parseExpr(allFlags())
	p.expect(token.RPAREN)
	body := p.parseStatement()
	n := &ast.WithStatement{Object: object, Body: body}
	p.finishNode(n)
	return n
}

func (p *Parser) parseDebuggerStatement() ast.Statement {
	p.startNode()
	p.advance() // 'debugger'
	p.expectBreak()
	n := &ast.DebuggerStatement{}
	p.finishNode(n)
	return n
}

func (p *Parser) parseBreakStatement() ast.Statement {
	p.startNode()
	p.advance() // 'break'
	var label *ast.Identifier
	if p.match(token.IDENT, 0) && !p.lineBreakBeforeCurrent() {
		label = p.parseIdentifier()
	}
	p.expectBreak()
	n := &ast.BreakStatement{Label: label}
	p.finishNode(n)
	return n
}

func (p *Parser) parseContinueStatement() ast.Statement {
	p.startNode()
	p.advance() // 'continue'
	var label *ast.Identifier
	if p.match(token.IDENT, 0) && !p.lineBreakBeforeCurrent() {
		label = p.parseIdentifier()
	}
	p.expectBreak()
	n := &ast.ContinueStatement{Label: label}
	p.finishNode(n)
	return n
}

// parseReturnStatement leaves Argument nil exactly when atEndOfArgument
// reports the next token ends the statement without one — the same rule
// applied to yield's optional argument.
func (p *Parser) parseReturnStatement() ast.Statement {
	p.startNode()
	p.advance() // 'return'
	var arg ast.Expression
	if !p.atEndOfArgument() {
		arg = p.parseExpr(allFlags())
	}
	p.expectBreak()
	n := &ast.ReturnStatement{Argument: arg}
	p.finishNode(n)
	return n
}

// parseFunctionDeclaration requires a bound name — spec.md §7's
// "Function statements require a function name" — unlike
// parseFunctionExpression's optional ID.
func (p *Parser) parseFunctionDeclaration(async bool) ast.Statement {
	p.startNode()
	if async {
		p.advance() // 'async'
	}
	p.advance() // 'function'
	generator := p.accept(token.STAR)

	if !p.match(token.IDENT, 0) {
		p.fail(errors.NewFunctionRequiresName())
	}
	id := p.parseIdentifier()
	params := p.parseParamList()
	body := p.parseBlockStatement()

	fn := &ast.FunctionDeclaration{}
	fn.ID = id
	fn.Params = params
	fn.Body = body
	fn.Generator = generator
	fn.Async = async
	p.finishNode(fn)
	return fn
}

package parser

import (
	"strconv"

	"jsparse/ast"
	"jsparse/errors"
	"jsparse/source"
	"jsparse/token"
)

// exprFlags realizes spec.md §4.2's four expression-parsing control
// flags; all default to true.
type exprFlags struct {
	grouped    bool // `(...)` followed by `=>` may be reinterpreted as an arrow parameter list
	sequence   bool // a top-level `,` starts a SequenceExpression
	assignment bool // an assignment operator builds an AssignmentExpression
	call       bool // `(` at the suffix layer opens a CallExpression
}

func allFlags() exprFlags {
	return exprFlags{grouped: true, sequence: true, assignment: true, call: true}
}

// primary returns the flags used for a precedence-climbing right-hand
// side: "a plain, non-grouped, non-sequence primary" per spec.md §4.2.
func (f exprFlags) primary() exprFlags {
	f.grouped = false
	f.sequence = false
	return f
}

var unaryOperators = map[token.Kind]string{
	token.PLUS:   "+",
	token.MINUS:  "-",
	token.BANG:   "!",
	token.TILDE:  "~",
	token.TYPEOF: "typeof",
	token.VOID:   "void",
	token.DELETE: "delete",
	token.THROW:  "throw",
}

// parseExpr is the top-level expression entry point used at every call
// site in the statement/object/param parsers: primary parsing, suffix
// resolution, precedence climbing, then (if f.sequence) the
// SequenceExpression tail.
func (p *Parser) parseExpr(f exprFlags) ast.Expression {
	left := p.parseExprNoSequence(f)
	if f.sequence && p.match(token.COMMA, 0) {
		return p.parseSequenceTail(left, f)
	}
	return left
}

// parseExprNoSequence runs primary parsing, suffix resolution and
// precedence climbing without considering a trailing `,`.
func (p *Parser) parseExprNoSequence(f exprFlags) ast.Expression {
	left := p.parsePrimary(f)
	return p.parseSuffix(left, f)
}

// parseSequenceTail builds a SequenceExpression out of first and the
// comma-separated expressions that follow; inner expressions forbid
// further sequencing. SpreadElement children are rejected — the
// resolved Open Question of spec.md §9.
func (p *Parser) parseSequenceTail(first ast.Expression, f exprFlags) ast.Expression {
	p.startNodeFrom(first)
	exprs := []ast.Expression{first}
	for p.accept(token.COMMA) {
		if p.match(token.ELLIPSIS, 0) {
			p.fail(errors.NewSpreadInSequence())
		}
		exprs = append(exprs, p.parseExprNoSequence(f.primary()))
	}
	for _, e := range exprs {
		if _, ok := e.(*ast.SpreadElement); ok {
			p.fail(errors.NewSpreadInSequence())
		}
	}
	seq := &ast.SequenceExpression{Expressions: exprs}
	p.finishNode(seq)
	return seq
}

// parsePrimary is the first of the three layers spec.md §4.2 names:
// prefix unary/update operators, then dispatch by token kind.
func (p *Parser) parsePrimary(f exprFlags) ast.Expression {
	tok := p.peek(0)

	// A unary/prefix-update argument is a "unary expression": a primary
	// plus its member/call chain, but not the binary-operator climb or
	// assignment that parseSuffix would otherwise also absorb — that
	// would wrongly pull a trailing `+ b` into `typeof a`'s operand
	// instead of leaving it for the enclosing precedence climb.
	if op, ok := unaryOperators[tok.Kind]; ok {
		p.startNode()
		p.advance()
		arg := p.parsePrimary(f.primary())
		arg = p.parseMemberCallUpdateChain(arg, f.primary())
		u := &ast.UnaryExpression{Operator: op, Argument: arg}
		p.finishNode(u)
		return u
	}

	if tok.Kind == token.PLUS_PLUS || tok.Kind == token.MINUS_MINUS {
		p.startNode()
		p.advance()
		arg := p.parsePrimary(f.primary())
		arg = p.parseMemberCallUpdateChain(arg, f.primary())
		u := &ast.UpdateExpression{Operator: tok.Value, Argument: arg, Prefix: true}
		p.finishNode(u)
		return u
	}

	switch tok.Kind {
	case token.IDENT:
		return p.parseIdentifier()
	case token.NUMBER:
		return p.parseNumericLiteral()
	case token.TRUE, token.FALSE:
		return p.parseBooleanLiteral()
	case token.STRING:
		return p.parseStringLiteral()
	case token.TEMPLATE_STRING:
		return p.parseTemplateLiteral()
	case token.NULL:
		return p.parseNullLiteral()
	case token.THIS:
		return p.parseThisExpression()
	case token.SUPER:
		return p.parseSuperExpression()
	case token.NEW:
		return p.parseNewExpression()
	case token.LPAREN:
		return p.parseParenOrArrow(f)
	case token.FUNCTION:
		return p.parseFunctionExpression(false)
	case token.LBRACKET:
		return p.parseArrayExpression()
	case token.LBRACE:
		return p.parseObjectExpression()
	case token.YIELD:
		return p.parseYieldExpression()
	case token.AWAIT:
		return p.parseAwaitExpression()
	case token.ASYNC:
		return p.parseAsyncPrimary()
	case token.DO:
		return p.parseDoExpression(false)
	}

	p.unexpected(tok)
	panic("unreachable")
}

func (p *Parser) parseIdentifier() *ast.Identifier {
	p.startNode()
	tok := p.advance()
	id := &ast.Identifier{Name: tok.Value}
	p.finishNode(id)
	return id
}

func (p *Parser) parseNumericLiteral() ast.Expression {
	p.startNode()
	tok := p.advance()
	v, _ := strconv.ParseInt(tok.Value, 10, 64)
	n := &ast.NumericLiteral{Value: v}
	p.finishNode(n)
	return n
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	p.startNode()
	tok := p.advance()
	n := &ast.BooleanLiteral{Value: tok.Kind == token.TRUE}
	p.finishNode(n)
	return n
}

func (p *Parser) parseStringLiteral() ast.Expression {
	p.startNode()
	tok := p.advance()
	n := &ast.StringLiteral{Value: tok.Value}
	p.finishNode(n)
	return n
}

func (p *Parser) parseTemplateLiteral() ast.Expression {
	p.startNode()
	tok := p.advance()
	n := &ast.TemplateLiteral{Raw: tok.Value}
	p.finishNode(n)
	return n
}

func (p *Parser) parseNullLiteral() ast.Expression {
	p.startNode()
	p.advance()
	n := &ast.NullLiteral{}
	p.finishNode(n)
	return n
}

func (p *Parser) parseThisExpression() ast.Expression {
	p.startNode()
	p.advance()
	n := &ast.ThisExpression{}
	p.finishNode(n)
	return n
}

func (p *Parser) parseSuperExpression() ast.Expression {
	p.startNode()
	p.advance()
	n := &ast.SuperExpression{}
	p.finishNode(n)
	return n
}

// parseNewExpression parses `new` callee(args?). The callee is only a
// primary plus its member-access chain — not a call, and not a binary
// or assignment expression — since `new` claims the first argument list
// for itself, and anything looser-binding (`new Foo + 1`) belongs to the
// enclosing expression, not the callee.
func (p *Parser) parseNewExpression() ast.Expression {
	p.startNode()
	p.advance() // 'new'
	callee := p.parseNewCallee()
	var args []ast.Expression
	if p.match(token.LPAREN, 0) {
		args = p.parseArgumentList()
	}
	n := &ast.NewExpression{Callee: callee, Arguments: args}
	p.finishNode(n)
	return n
}

func (p *Parser) parseNewCallee() ast.Expression {
	noCall := exprFlags{grouped: true, sequence: false, assignment: false, call: false}
	primary := p.parsePrimary(noCall)
	return p.parseMemberCallUpdateChain(primary, noCall)
}

// parseParenOrArrow handles `(` in primary position: an empty-parameter
// arrow (`() =>`), a parenthesized parameter list followed by `=>`, or a
// plain grouped expression returned as-is (ESTree does not wrap
// parenthesization in its own node kind).
func (p *Parser) parseParenOrArrow(f exprFlags) ast.Expression {
	openPos := p.peek(0).Span.Start
	p.advance() // '('

	if p.match(token.RPAREN, 0) {
		p.advance()
		p.expect(token.ARROW)
		return p.buildArrow(openPos, nil, false)
	}

	inner := p.parseExpr(allFlags())
	p.expect(token.RPAREN)

	if f.grouped && p.match(token.ARROW, 0) {
		p.advance()
		return p.buildArrow(openPos, p.splitToParams(inner), false)
	}

	return inner
}

// parseAsyncPrimary implements the `async` dispatch of spec.md §4.1:
// `async (` starts an async arrow parameter list, `async do` an async
// DoExpression, anything else an async function expression.
func (p *Parser) parseAsyncPrimary() ast.Expression {
	openPos := p.peek(0).Span.Start
	p.advance() // 'async'

	if p.match(token.LPAREN, 0) {
		p.advance()
		var params []ast.Pattern
		if !p.match(token.RPAREN, 0) {
			params = p.splitToParams(p.parseExpr(allFlags()))
		}
		p.expect(token.RPAREN)
		p.expect(token.ARROW)
		return p.buildArrow(openPos, params, true)
	}

	if p.match(token.DO, 0) {
		return p.parseDoExpression(true)
	}

	return p.parseFunctionExpression(true)
}

func (p *Parser) buildArrow(openPos source.Position, params []ast.Pattern, async bool) ast.Expression {
	p.startNodeAt(openPos)
	fn := &ast.ArrowFunctionExpression{}
	fn.Params = params
	fn.Async = async
	fn.ExpressionBody = p.parseExpr(exprFlags{grouped: true, sequence: false, assignment: true, call: true})
	p.finishNode(fn)
	return fn
}

func (p *Parser) splitToParams(expr ast.Expression) []ast.Pattern {
	if seq, ok := expr.(*ast.SequenceExpression); ok {
		params := make([]ast.Pattern, len(seq.Expressions))
		for i, e := range seq.Expressions {
			params[i] = p.rewriteToPattern(e)
		}
		return params
	}
	return []ast.Pattern{p.rewriteToPattern(expr)}
}

func (p *Parser) parseFunctionExpression(async bool) ast.Expression {
	p.startNode()
	p.advance() // 'function'
	generator := p.accept(token.STAR)

	var id *ast.Identifier
	if p.match(token.IDENT, 0) {
		id = p.parseIdentifier()
	}
	params := p.parseParamList()
	body := p.parseBlockStatement()

	fn := &ast.FunctionExpression{}
	fn.ID = id
	fn.Params = params
	fn.Body = body
	fn.Generator = generator
	fn.Async = async
	p.finishNode(fn)
	return fn
}

func (p *Parser) parseArrayExpression() ast.Expression {
	p.startNode()
	p.advance() // '['
	elements := p.parseArrayElements()
	p.expect(token.RBRACKET)
	n := &ast.ArrayExpression{Elements: elements}
	p.finishNode(n)
	return n
}

func (p *Parser) parseArrayElements() []ast.Expression {
	var elems []ast.Expression
	for !p.match(token.RBRACKET, 0) {
		if p.match(token.COMMA, 0) {
			elems = append(elems, nil)
			p.advance()
			continue
		}
		var el ast.Expression
		if p.match(token.ELLIPSIS, 0) {
			el = p.parseSpreadElement()
		} else {
			el = p.parseExpr(elementFlags())
		}
		elems = append(elems, el)
		if !p.accept(token.COMMA) {
			break
		}
		if p.match(token.RBRACKET, 0) {
			setTrailingComma(el)
			break
		}
	}
	return elems
}

func (p *Parser) parseSpreadElement() ast.Expression {
	p.startNode()
	p.advance() // '...'
	arg := p.parseExpr(elementFlags())
	n := &ast.SpreadElement{Argument: arg}
	p.finishNode(n)
	return n
}

// elementFlags is what array elements, call arguments and default
// values parse with: grouping/assignment/calls are all still allowed,
// but a bare `,` always means "next element", never a sequence.
func elementFlags() exprFlags {
	return exprFlags{grouped: true, sequence: false, assignment: true, call: true}
}

func (p *Parser) parseArgumentList() []ast.Expression {
	p.expect(token.LPAREN)
	var args []ast.Expression
	for !p.match(token.RPAREN, 0) {
		var arg ast.Expression
		if p.match(token.ELLIPSIS, 0) {
			arg = p.parseSpreadElement()
		} else {
			arg = p.parseExpr(elementFlags())
		}
		args = append(args, arg)
		if !p.accept(token.COMMA) {
			break
		}
		if p.match(token.RPAREN, 0) {
			setTrailingComma(arg)
			break
		}
	}
	p.expect(token.RPAREN)
	return args
}

func (p *Parser) parseYieldExpression() ast.Expression {
	p.startNode()
	p.advance() // 'yield'
	delegate := p.accept(token.STAR)
	var arg ast.Expression
	if !p.atEndOfArgument() {
		arg = p.parseExpr(elementFlags())
	}
	n := &ast.YieldExpression{Argument: arg, Delegate: delegate}
	p.finishNode(n)
	return n
}

func (p *Parser) parseAwaitExpression() ast.Expression {
	p.startNode()
	p.advance() // 'await'
	arg := p.parseExpr(elementFlags())
	n := &ast.AwaitExpression{Argument: arg}
	p.finishNode(n)
	return n
}

func (p *Parser) parseDoExpression(async bool) ast.Expression {
	p.startNode()
	p.advance() // 'do'
	body := p.parseBlockStatement()
	n := &ast.DoExpression{Body: body, Async: async}
	p.finishNode(n)
	return n
}

// atEndOfArgument reports whether the current position is one where a
// `yield` with no argument should stop — the break conditions
// expectBreak uses for statements (`;`, `}`, eof, a line break) plus `)`
// and `,`, since an absent yield argument is detected the same way an
// absent return argument is.
func (p *Parser) atEndOfArgument() bool {
	return p.match(token.SEMICOLON, 0) || p.match(token.RBRACE, 0) ||
		p.match(token.RPAREN, 0) || p.match(token.COMMA, 0) ||
		p.atEOF() || p.lineBreakBeforeCurrent()
}

package parser

import (
	"jsparse/ast"
	"jsparse/token"
)

// parseSuffix is the second and third layers spec.md §4.2 names applied
// in sequence: first the tightest-binding chain of member access, calls
// and postfix update, then (unless an assignment operator or bare arrow
// follows immediately) precedence climbing over the binary/logical
// operators, then the loosest-binding `?:` and bare-identifier arrow
// forms.
func (p *Parser) parseSuffix(left ast.Expression, f exprFlags) ast.Expression {
	left = p.parseMemberCallUpdateChain(left, f)

	if f.assignment {
		if op, ok := assignmentOperators[p.peek(0).Kind]; ok {
			return p.parseAssignment(left, op, f)
		}
	}

	left = p.parseBinaryChain(left, 0)

	if p.match(token.QUESTION, 0) {
		left = p.parseConditional(left)
	}

	if f.grouped && p.match(token.ARROW, 0) {
		p.advance()
		return p.buildArrowFrom(left)
	}

	return left
}

// parseMemberCallUpdateChain loops over `.`, `[`, `(` and postfix
// `++`/`--`, each of which both produces a new left operand and permits
// further chaining (`a.b[c]()++` is, syntactically, fair game).
func (p *Parser) parseMemberCallUpdateChain(left ast.Expression, f exprFlags) ast.Expression {
	for {
		switch {
		case p.match(token.LBRACKET, 0):
			p.startNodeFrom(left)
			p.advance()
			prop := p.parseExpr(allFlags())
			p.expect(token.RBRACKET)
			m := &ast.MemberExpression{Object: left, Property: prop, Computed: true}
			p.finishNode(m)
			left = m

		case p.match(token.DOT, 0):
			p.startNodeFrom(left)
			p.advance()
			prop := p.parseIdentifierName()
			m := &ast.MemberExpression{Object: left, Property: prop, Computed: false}
			p.finishNode(m)
			left = m

		case f.call && p.match(token.LPAREN, 0):
			p.startNodeFrom(left)
			args := p.parseArgumentList()
			c := &ast.CallExpression{Callee: left, Arguments: args}
			p.finishNode(c)
			left = c

		case p.match(token.PLUS_PLUS, 0) || p.match(token.MINUS_MINUS, 0):
			p.startNodeFrom(left)
			tok := p.advance()
			u := &ast.UpdateExpression{Operator: tok.Value, Argument: left, Prefix: false}
			p.finishNode(u)
			left = u

		default:
			return left
		}
	}
}

var assignmentOperators = map[token.Kind]string{
	token.ASSIGN:           "=",
	token.PLUS_ASSIGN:      "+=",
	token.MINUS_ASSIGN:     "-=",
	token.STAR_ASSIGN:      "*=",
	token.SLASH_ASSIGN:     "/=",
	token.PERCENT_ASSIGN:   "%=",
	token.STAR_STAR_ASSIGN: "**=",
	token.LSHIFT_ASSIGN:    "<<=",
	token.RSHIFT_ASSIGN:    ">>=",
	token.URSHIFT_ASSIGN:   ">>>=",
	token.BITOR_ASSIGN:     "|=",
	token.BITXOR_ASSIGN:    "^=",
	token.BITAND_ASSIGN:    "&=",
	token.OR_ASSIGN:        "||=",
	token.AND_ASSIGN:       "&&=",
	token.NULLISH_ASSIGN:   "??=",
}

// needsPatternRewrite reports whether an assignment's left operand has a
// shape the rewriter actually understands (array/object destructuring,
// or a rest target) and therefore must be turned into a Pattern before
// it can be stored on AssignmentExpression.Left. A bare Identifier or
// MemberExpression is left untouched — per spec.md §9's Open Question,
// this core does not validate that an assignment/update target is a
// reference expression, so there is nothing to rewrite there; attempting
// to anyway would misfire "Invalid pattern MemberExpression" on ordinary
// code like `obj.prop = 1`.
func needsPatternRewrite(e ast.Expression) bool {
	switch e.(type) {
	case *ast.ArrayExpression, *ast.ObjectExpression, *ast.SpreadElement:
		return true
	default:
		return false
	}
}

func (p *Parser) parseAssignment(left ast.Expression, op string, f exprFlags) ast.Expression {
	p.startNodeFrom(left)
	p.advance() // operator
	// f, not f.primary(): unlike a binary operand, an assignment's RHS
	// must still recognize a parenthesized arrow (`a = (x) => x`) — only
	// sequence is irrelevant here (parseExprNoSequence never consults it).
	right := p.parseExprNoSequence(f)
	var target ast.Node = left
	if op == "=" && needsPatternRewrite(left) {
		target = p.rewriteToPattern(left)
	}
	a := &ast.AssignmentExpression{Operator: op, Left: target, Right: right}
	p.finishNode(a)
	return a
}

func (p *Parser) parseConditional(test ast.Expression) ast.Expression {
	p.startNodeFrom(test)
	p.advance() // '?'
	consequent := p.parseExprNoSequence(elementFlags())
	p.expect(token.COLON)
	alternate := p.parseExprNoSequence(elementFlags())
	c := &ast.ConditionalExpression{Test: test, Consequent: consequent, Alternate: alternate}
	p.finishNode(c)
	return c
}

// buildArrowFrom handles the unparenthesized single-parameter arrow form
// (`x => x + 1`): by the time parseSuffix sees the `=>`, left is already
// a fully parsed primary (ordinarily a bare Identifier) with no chance
// to have gone through parseParenOrArrow, since there were no parens.
func (p *Parser) buildArrowFrom(left ast.Expression) ast.Expression {
	p.startNodeFrom(left)
	params := p.splitToParams(left)
	fn := &ast.ArrowFunctionExpression{}
	fn.Params = params
	fn.ExpressionBody = p.parseExpr(exprFlags{grouped: true, sequence: false, assignment: true, call: true})
	p.finishNode(fn)
	return fn
}

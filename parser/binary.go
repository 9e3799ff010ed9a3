package parser

import (
	"jsparse/ast"
	"jsparse/token"
)

// logicalOperators names the three short-circuit operators that build a
// LogicalExpression instead of a BinaryExpression — the one place
// spec.md §3's node taxonomy splits what the precedence table treats as
// a single climbing pass into two node kinds.
var logicalOperators = map[string]bool{
	"||": true,
	"&&": true,
	"??": true,
}

// parseBinaryChain is spec.md §4.2's precedence-climbing loop: it
// repeatedly consumes an operator whose precedence is at least minPrec
// (strictly greater, unless the operator is right-associative, in which
// case equal precedence also continues the chain — realizing `**`'s
// right-associativity via `>=` rather than `>`), recursing with an
// incremented floor for the right-hand side.
func (p *Parser) parseBinaryChain(left ast.Expression, minPrec int) ast.Expression {
	for {
		tok := p.peek(0)
		prec, isOperator := binaryPrecedence(tok.Kind)
		if !isOperator || prec < minPrec {
			return left
		}

		p.startNodeFrom(left)
		opTok := p.advance()

		nextMin := prec + 1
		if tok.Kind.RightAssociative() {
			nextMin = prec
		}

		right := p.parsePrimary(exprFlags{grouped: false, sequence: false, assignment: true, call: true})
		right = p.parseMemberCallUpdateChain(right, exprFlags{grouped: false, sequence: false, assignment: true, call: true})
		right = p.parseBinaryChain(right, nextMin)

		if logicalOperators[opTok.Value] {
			n := &ast.LogicalExpression{Operator: opTok.Value, Left: left, Right: right}
			p.finishNode(n)
			left = n
		} else {
			n := &ast.BinaryExpression{Operator: opTok.Value, Left: left, Right: right}
			p.finishNode(n)
			left = n
		}
	}
}

// binaryOperandKinds is the whitelist of token kinds this core's
// precedence-climbing loop actually consumes as an infix operator. The
// shared token.Info table also carries precedence/associativity for
// several kinds that are NOT infix here — the assignment family (handled
// separately in parseSuffix), the member/call punctuation `[ ] . ( )`
// (handled by parseMemberCallUpdateChain), `,` (the sequence separator),
// and the keyword unary operators (`delete throw typeof void`) plus
// `! ~`, all of which are prefix-only in this grammar despite carrying a
// table precedence for documentation purposes.
var binaryOperandKinds = map[token.Kind]bool{
	token.OR: true, token.NULLISH: true, token.AND: true,
	token.BITOR: true, token.BITXOR: true, token.BITAND: true,
	token.EQ: true, token.NEQ: true, token.EQ_STRICT: true, token.NEQ_STRICT: true,
	token.LT: true, token.LE: true, token.GT: true, token.GE: true,
	token.IN: true, token.INSTANCEOF: true,
	token.LSHIFT: true, token.RSHIFT: true, token.URSHIFT: true,
	token.PLUS: true, token.MINUS: true,
	token.STAR: true, token.SLASH: true, token.PERCENT: true,
	token.STAR_STAR: true,
}

// binaryPrecedence reports a token kind's climbing precedence, using the
// shared token.Info table so the lexer's and parser's notion of operator
// precedence can never drift apart.
func binaryPrecedence(kind token.Kind) (int, bool) {
	if !binaryOperandKinds[kind] {
		return 0, false
	}
	return kind.Precedence(), true
}

package parser

import (
	"jsparse/ast"
	"jsparse/errors"
	"jsparse/token"
)

type trailingCommaSetter interface {
	SetTrailingComma()
}

// parseIdentifierName accepts an identifier or a keyword used in a
// position where only a name is expected — member property names after
// `.` and object member keys both allow keyword-as-identifier.
func (p *Parser) parseIdentifierName() *ast.Identifier {
	p.startNode()
	tok := p.expectIdentifierName()
	id := &ast.Identifier{Name: tok.Value}
	p.finishNode(id)
	return id
}

func (p *Parser) expectIdentifierName() token.Token {
	tok := p.peek(0)
	if tok.Kind == token.IDENT || tok.Kind.IsKeyword() {
		return p.advance()
	}
	p.unexpected(tok, "identifier")
	panic("unreachable")
}

func setTrailingComma(n ast.Node) {
	if n == nil {
		return
	}
	if s, ok := n.(trailingCommaSetter); ok {
		s.SetTrailingComma()
	}
}

// parseParamList parses a function/arrow parameter list: each entry is
// parsed as a full expression (so default values and destructuring
// targets are available) and passed through the rewriter, except a
// leading `...` which becomes a RestElement directly. Rest-element
// position rules are validated against the "parameter list" context,
// distinct from the "destructuring pattern" context §4.3 also names.
func (p *Parser) parseParamList() []ast.Pattern {
	p.expect(token.LPAREN)
	var params []ast.Pattern
	for !p.match(token.RPAREN, 0) {
		var param ast.Pattern
		if p.match(token.ELLIPSIS, 0) {
			param = p.parseRestParam()
		} else {
			param = p.rewriteToPattern(p.parseExpr(elementFlags()))
		}
		params = append(params, param)
		if !p.accept(token.COMMA) {
			break
		}
		if p.match(token.RPAREN, 0) {
			setTrailingComma(param)
			break
		}
	}
	p.expect(token.RPAREN)
	p.validateRestPositions(params, "parameter list")
	return params
}

func (p *Parser) parseRestParam() ast.Pattern {
	p.startNode()
	p.advance() // '...'
	inner := p.rewriteToPattern(p.parseExpr(elementFlags()))
	rest := &ast.RestElement{Argument: inner}
	p.finishNode(rest)
	return rest
}

// validateRestPositions enforces "at most one RestElement, and it must
// be last, with no trailing comma" for any flat pattern list — used by
// both parameter lists and, from the rewriter, destructuring patterns.
func (p *Parser) validateRestPositions(params []ast.Pattern, context string) {
	for i, pat := range params {
		rest, ok := pat.(*ast.RestElement)
		if !ok {
			continue
		}
		if i != len(params)-1 {
			p.fail(errors.NewRestElementNotLast(context))
		}
		if rest.TrailingComma {
			p.fail(errors.NewRestElementTrailing(context))
		}
	}
}

package parser

import (
	"jsparse/ast"
	"jsparse/errors"
)

// rewriteToPattern implements spec.md §4.3: a previously-built Expression
// is reinterpreted as a newly built Pattern (an Identifier is returned
// as-is), without re-lexing or re-parsing. It is invoked wherever the grammar is ambiguous between an
// expression and a destructuring target until a later token (an `=` for
// a declarator, a `)` for a parameter list, an `=>` for an arrow) settles
// the question — function parameters, variable declarators, and arrow
// parameter lists all run their speculatively-parsed expression through
// this method once the ambiguity resolves.
//
// The span already attached to expr by the original parse is kept as-is
// on the returned node; only the node itself changes shape.
func (p *Parser) rewriteToPattern(expr ast.Expression) ast.Pattern {
	switch e := expr.(type) {
	case *ast.Identifier:
		return e

	case *ast.AssignmentExpression:
		return p.rewriteAssignmentToPattern(e)

	case *ast.ArrayExpression:
		return p.rewriteArrayToPattern(e)

	case *ast.ObjectExpression:
		return p.rewriteObjectToPattern(e)

	case *ast.SpreadElement:
		rest := &ast.RestElement{Argument: p.rewriteToPattern(e.Argument)}
		rest.SetSpan(e.Span())
		rest.TrailingComma = e.TrailingComma
		return rest

	default:
		p.fail(errors.NewInvalidPattern(kindName(expr)))
		panic("unreachable")
	}
}

// rewriteAssignmentToPattern covers the default-value position inside a
// pattern list (e.g. a parameter `x = 1`, or a destructured `{a = 1}`):
// only `=` may appear here, since compound assignment operators have no
// meaning as a default-value marker.
func (p *Parser) rewriteAssignmentToPattern(e *ast.AssignmentExpression) ast.Pattern {
	if e.Operator != "=" {
		p.fail(errors.NewInvalidAssignmentOp(e.Operator))
	}
	left, ok := e.Left.(ast.Expression)
	if !ok {
		// Already rewritten (e.g. by the suffix layer's own `=`
		// handling before this node reached us) — idempotent case.
		if pat, ok := e.Left.(ast.Pattern); ok {
			pattern := &ast.AssignmentPattern{Left: pat, Right: e.Right}
			pattern.SetSpan(e.Span())
			return pattern
		}
		p.fail(errors.NewInvalidPattern(kindName(e)))
	}
	pattern := &ast.AssignmentPattern{Left: p.rewriteToPattern(left), Right: e.Right}
	pattern.SetSpan(e.Span())
	return pattern
}

func (p *Parser) rewriteArrayToPattern(e *ast.ArrayExpression) ast.Pattern {
	elements := make([]ast.Pattern, len(e.Elements))
	for i, el := range e.Elements {
		if el == nil {
			continue // elision stays a hole
		}
		elements[i] = p.rewriteToPattern(el)
	}
	pattern := &ast.ArrayPattern{Elements: elements}
	pattern.SetSpan(e.Span())
	pattern.TrailingComma = e.TrailingComma
	p.validateRestPositions(nonNilPatterns(elements), "destructuring pattern")
	return pattern
}

func (p *Parser) rewriteObjectToPattern(e *ast.ObjectExpression) ast.Pattern {
	props := make([]ast.Node, len(e.Properties))
	for i, member := range e.Properties {
		switch m := member.(type) {
		case *ast.ObjectProperty:
			value, ok := m.Value.(ast.Expression)
			if !ok {
				p.fail(errors.NewInvalidPattern("ObjectProperty"))
			}
			rewritten := &ast.ObjectProperty{
				Key:       m.Key,
				Value:     p.rewriteToPattern(value),
				Computed:  m.Computed,
				Shorthand: m.Shorthand,
			}
			rewritten.SetSpan(m.Span())
			rewritten.TrailingComma = m.TrailingComma
			props[i] = rewritten
		case *ast.ObjectMethod:
			p.fail(errors.NewInvalidPattern("ObjectMethod"))
		case *ast.SpreadElement:
			rest := &ast.RestElement{Argument: p.rewriteToPattern(m.Argument)}
			rest.SetSpan(m.Span())
			rest.TrailingComma = m.TrailingComma
			props[i] = rest
		default:
			p.fail(errors.NewInvalidPattern(kindName(member)))
		}
	}
	pattern := &ast.ObjectPattern{Properties: props}
	pattern.SetSpan(e.Span())
	pattern.TrailingComma = e.TrailingComma
	p.validateRestPositions(objectPropertyPatterns(props), "destructuring pattern")
	return pattern
}

// nonNilPatterns filters out the nil holes ArrayPattern keeps for
// elisions, since validateRestPositions only cares about real elements.
func nonNilPatterns(pats []ast.Pattern) []ast.Pattern {
	out := make([]ast.Pattern, 0, len(pats))
	for _, p := range pats {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// objectPropertyPatterns adapts an ObjectPattern's Properties (a mix of
// *ast.ObjectProperty and *ast.RestElement) to the []ast.Pattern shape
// validateRestPositions expects. Only *ast.RestElement entries matter to
// that check, so every non-rest property is stood in for by a shared,
// otherwise-unused Identifier — ast.Pattern's marker methods are
// unexported, so the filler has to be a real ast package type.
var nonRestFiller ast.Pattern = &ast.Identifier{}

func objectPropertyPatterns(props []ast.Node) []ast.Pattern {
	out := make([]ast.Pattern, len(props))
	for i, n := range props {
		if rest, ok := n.(*ast.RestElement); ok {
			out[i] = rest
			continue
		}
		out[i] = nonRestFiller
	}
	return out
}

func kindName(n ast.Node) string {
	switch n.(type) {
	case *ast.NumericLiteral:
		return "NumericLiteral"
	case *ast.BooleanLiteral:
		return "BooleanLiteral"
	case *ast.StringLiteral:
		return "StringLiteral"
	case *ast.NullLiteral:
		return "NullLiteral"
	case *ast.TemplateLiteral:
		return "TemplateLiteral"
	case *ast.ThisExpression:
		return "ThisExpression"
	case *ast.SuperExpression:
		return "SuperExpression"
	case *ast.FunctionExpression:
		return "FunctionExpression"
	case *ast.ArrowFunctionExpression:
		return "ArrowFunctionExpression"
	case *ast.UnaryExpression:
		return "UnaryExpression"
	case *ast.UpdateExpression:
		return "UpdateExpression"
	case *ast.BinaryExpression:
		return "BinaryExpression"
	case *ast.LogicalExpression:
		return "LogicalExpression"
	case *ast.SequenceExpression:
		return "SequenceExpression"
	case *ast.MemberExpression:
		return "MemberExpression"
	case *ast.CallExpression:
		return "CallExpression"
	case *ast.NewExpression:
		return "NewExpression"
	case *ast.ConditionalExpression:
		return "ConditionalExpression"
	case *ast.YieldExpression:
		return "YieldExpression"
	case *ast.AwaitExpression:
		return "AwaitExpression"
	case *ast.DoExpression:
		return "DoExpression"
	case *ast.ObjectMethod:
		return "ObjectMethod"
	default:
		return "expression"
	}
}

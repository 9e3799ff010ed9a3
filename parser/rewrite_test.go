package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsparse/ast"
)

func TestRewriteIdentifierIsIdempotent(t *testing.T) {
	p := mustNewParser(t, "x")
	id := &ast.Identifier{Name: "x"}
	pat := p.rewriteToPattern(id)
	assert.Same(t, id, pat)
}

func TestRewriteArrayExpressionToArrayPattern(t *testing.T) {
	p := mustNewParser(t, "[a, b]")
	arr := &ast.ArrayExpression{Elements: []ast.Expression{
		&ast.Identifier{Name: "a"},
		&ast.Identifier{Name: "b"},
	}}
	pat := p.rewriteToPattern(arr)
	arrPat, ok := pat.(*ast.ArrayPattern)
	require.True(t, ok)
	require.Len(t, arrPat.Elements, 2)
	assert.Equal(t, "a", arrPat.Elements[0].(*ast.Identifier).Name)
	assert.Equal(t, "b", arrPat.Elements[1].(*ast.Identifier).Name)
}

func TestRewriteArrayExpressionKeepsHoles(t *testing.T) {
	p := mustNewParser(t, "[, a]")
	arr := &ast.ArrayExpression{Elements: []ast.Expression{nil, &ast.Identifier{Name: "a"}}}
	pat := p.rewriteToPattern(arr).(*ast.ArrayPattern)
	require.Len(t, pat.Elements, 2)
	assert.Nil(t, pat.Elements[0])
	assert.NotNil(t, pat.Elements[1])
}

func TestRewriteObjectExpressionToObjectPattern(t *testing.T) {
	p := mustNewParser(t, "{a, b: c}")
	id := &ast.Identifier{Name: "a"}
	obj := &ast.ObjectExpression{Properties: []ast.ObjectMember{
		&ast.ObjectProperty{Key: id, Value: id, Shorthand: true},
		&ast.ObjectProperty{Key: &ast.Identifier{Name: "b"}, Value: &ast.Identifier{Name: "c"}},
	}}
	pat := p.rewriteToPattern(obj).(*ast.ObjectPattern)
	require.Len(t, pat.Properties, 2)
	first := pat.Properties[0].(*ast.ObjectProperty)
	assert.Equal(t, "a", first.Value.(*ast.Identifier).Name)
}

func TestRewriteRestElementMustBeLast(t *testing.T) {
	p := mustNewParser(t, "[...rest, a]")
	arr := &ast.ArrayExpression{Elements: []ast.Expression{
		&ast.SpreadElement{Argument: &ast.Identifier{Name: "rest"}},
		&ast.Identifier{Name: "a"},
	}}
	assert.Panics(t, func() { p.rewriteToPattern(arr) })
}

func TestRewriteAssignmentExpressionToAssignmentPattern(t *testing.T) {
	p := mustNewParser(t, "x = 1")
	assign := &ast.AssignmentExpression{
		Operator: "=",
		Left:     &ast.Identifier{Name: "x"},
		Right:    &ast.NumericLiteral{Value: 1},
	}
	pat := p.rewriteToPattern(assign).(*ast.AssignmentPattern)
	assert.Equal(t, "x", pat.Left.(*ast.Identifier).Name)
	assert.Equal(t, int64(1), pat.Right.(*ast.NumericLiteral).Value)
}

func TestRewriteAssignmentExpressionRejectsCompoundOperator(t *testing.T) {
	p := mustNewParser(t, "x += 1")
	assign := &ast.AssignmentExpression{
		Operator: "+=",
		Left:     &ast.Identifier{Name: "x"},
		Right:    &ast.NumericLiteral{Value: 1},
	}
	assert.Panics(t, func() { p.rewriteToPattern(assign) })
}

func TestRewriteRejectsUnrelatedExpressionKind(t *testing.T) {
	p := mustNewParser(t, "1")
	assert.Panics(t, func() { p.rewriteToPattern(&ast.NumericLiteral{Value: 1}) })
}

func TestRewriteSpreadElementToRestElement(t *testing.T) {
	p := mustNewParser(t, "...a")
	spread := &ast.SpreadElement{Argument: &ast.Identifier{Name: "a"}}
	pat := p.rewriteToPattern(spread).(*ast.RestElement)
	assert.Equal(t, "a", pat.Argument.(*ast.Identifier).Name)
}

func mustNewParser(t *testing.T, src string) *Parser {
	t.Helper()
	p, err := New(src, Options{})
	require.NoError(t, err)
	return p
}

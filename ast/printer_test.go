package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpRendersLetStatement(t *testing.T) {
	prog := &Program{Body: []Statement{
		&VariableDeclaration{
			Kind: "let",
			Declarations: []*VariableDeclarator{
				{Id: &Identifier{Name: "x"}, Init: &NumericLiteral{Value: 1}},
			},
		},
	}}

	out := Dump(prog)
	assert.Contains(t, out, "Program")
	assert.Contains(t, out, "VariableDeclaration(let)")
	assert.Contains(t, out, "Identifier(x)")
	assert.Contains(t, out, "NumericLiteral(1)")
}

func TestDumpRendersBinaryExpression(t *testing.T) {
	expr := &BinaryExpression{
		Operator: "+",
		Left:     &Identifier{Name: "a"},
		Right:    &Identifier{Name: "b"},
	}
	out := Dump(expr)
	assert.Contains(t, out, "BinaryExpression(+)")
	assert.Contains(t, out, "Identifier(a)")
	assert.Contains(t, out, "Identifier(b)")
}

func TestDumpOmitsNilReturnArgument(t *testing.T) {
	stmt := &ReturnStatement{}
	out := Dump(stmt)
	assert.Contains(t, out, "ReturnStatement")
	assert.NotContains(t, out, "nil")
}

func TestDumpRendersArrowFunctionWithExpressionBody(t *testing.T) {
	fn := &ArrowFunctionExpression{
		ExpressionBody: &Identifier{Name: "x"},
	}
	fn.Params = []Pattern{&Identifier{Name: "x"}}
	out := Dump(fn)
	assert.Contains(t, out, "ArrowFunctionExpression(anonymous, generator=false, async=false)")
	assert.Contains(t, out, "Identifier(x)")
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsparse/ast"
	"jsparse/errors"
)

func TestParseEmptyProgram(t *testing.T) {
	prog, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, prog.Body)
}

func TestParseNumericLiteral(t *testing.T) {
	prog, err := Parse("1;")
	require.NoError(t, err)
	require.Len(t, prog.Body, 1)
	stmt := prog.Body[0].(*ast.ExpressionStatement)
	lit := stmt.Expr.(*ast.NumericLiteral)
	assert.Equal(t, int64(1), lit.Value)
}

func TestParseLetStatement(t *testing.T) {
	prog, err := Parse("let x = 1;")
	require.NoError(t, err)
	decl := prog.Body[0].(*ast.VariableDeclaration)
	assert.Equal(t, "let", decl.Kind)
	require.Len(t, decl.Declarations, 1)
	d := decl.Declarations[0]
	assert.Equal(t, "x", d.Id.(*ast.Identifier).Name)
	assert.Equal(t, int64(1), d.Init.(*ast.NumericLiteral).Value)
}

func TestParseDestructuringDeclarator(t *testing.T) {
	prog, err := Parse("let {a, b: c} = obj;")
	require.NoError(t, err)
	decl := prog.Body[0].(*ast.VariableDeclaration)
	pattern := decl.Declarations[0].Id.(*ast.ObjectPattern)
	require.Len(t, pattern.Properties, 2)
	first := pattern.Properties[0].(*ast.ObjectProperty)
	assert.Equal(t, "a", first.Value.(*ast.Identifier).Name)
}

func TestParseArrayDestructuringWithHoleAndRest(t *testing.T) {
	prog, err := Parse("let [, a, ...rest] = xs;")
	require.NoError(t, err)
	decl := prog.Body[0].(*ast.VariableDeclaration)
	pattern := decl.Declarations[0].Id.(*ast.ArrayPattern)
	require.Len(t, pattern.Elements, 3)
	assert.Nil(t, pattern.Elements[0])
	_, isRest := pattern.Elements[2].(*ast.RestElement)
	assert.True(t, isRest)
}

func TestParseUnaryDoesNotAbsorbTrailingBinary(t *testing.T) {
	expr, err := ParseExpression("typeof a + b")
	require.NoError(t, err)
	bin := expr.(*ast.BinaryExpression)
	assert.Equal(t, "+", bin.Operator)
	unary := bin.Left.(*ast.UnaryExpression)
	assert.Equal(t, "typeof", unary.Operator)
	assert.Equal(t, "a", unary.Argument.(*ast.Identifier).Name)
	assert.Equal(t, "b", bin.Right.(*ast.Identifier).Name)
}

func TestParseNewCalleeDoesNotAbsorbTrailingBinary(t *testing.T) {
	expr, err := ParseExpression("new Foo + 1")
	require.NoError(t, err)
	bin := expr.(*ast.BinaryExpression)
	assert.Equal(t, "+", bin.Operator)
	n := bin.Left.(*ast.NewExpression)
	assert.Equal(t, "Foo", n.Callee.(*ast.Identifier).Name)
}

func TestParseNewWithMemberCallee(t *testing.T) {
	expr, err := ParseExpression("new a.b.C(1, 2)")
	require.NoError(t, err)
	n := expr.(*ast.NewExpression)
	require.Len(t, n.Arguments, 2)
	_, ok := n.Callee.(*ast.MemberExpression)
	assert.True(t, ok)
}

func TestParseBinaryPrecedence(t *testing.T) {
	expr, err := ParseExpression("1 + 2 * 3")
	require.NoError(t, err)
	bin := expr.(*ast.BinaryExpression)
	assert.Equal(t, "+", bin.Operator)
	assert.Equal(t, int64(1), bin.Left.(*ast.NumericLiteral).Value)
	mul := bin.Right.(*ast.BinaryExpression)
	assert.Equal(t, "*", mul.Operator)
}

func TestParseExponentIsRightAssociative(t *testing.T) {
	expr, err := ParseExpression("2 ** 3 ** 2")
	require.NoError(t, err)
	top := expr.(*ast.BinaryExpression)
	assert.Equal(t, int64(2), top.Left.(*ast.NumericLiteral).Value)
	inner := top.Right.(*ast.BinaryExpression)
	assert.Equal(t, int64(3), inner.Left.(*ast.NumericLiteral).Value)
	assert.Equal(t, int64(2), inner.Right.(*ast.NumericLiteral).Value)
}

func TestParseLogicalVsBinaryNodeKinds(t *testing.T) {
	expr, err := ParseExpression("a && b")
	require.NoError(t, err)
	_, ok := expr.(*ast.LogicalExpression)
	assert.True(t, ok)
}

func TestParseParenthesizedArrowAssignmentRHS(t *testing.T) {
	expr, err := ParseExpression("a = (x) => x")
	require.NoError(t, err)
	assign := expr.(*ast.AssignmentExpression)
	fn := assign.Right.(*ast.ArrowFunctionExpression)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, "x", fn.Params[0].(*ast.Identifier).Name)
}

func TestParseBareIdentifierArrow(t *testing.T) {
	expr, err := ParseExpression("x => x + 1")
	require.NoError(t, err)
	fn := expr.(*ast.ArrowFunctionExpression)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, "x", fn.Params[0].(*ast.Identifier).Name)
}

func TestParseAsyncArrow(t *testing.T) {
	expr, err := ParseExpression("async (a, b) => a + b")
	require.NoError(t, err)
	fn := expr.(*ast.ArrowFunctionExpression)
	assert.True(t, fn.Async)
	require.Len(t, fn.Params, 2)
}

func TestParseEmptyParamArrow(t *testing.T) {
	expr, err := ParseExpression("() => 1")
	require.NoError(t, err)
	fn := expr.(*ast.ArrowFunctionExpression)
	assert.Empty(t, fn.Params)
}

func TestParseMultiParamArrowViaSequence(t *testing.T) {
	expr, err := ParseExpression("(a, b) => a")
	require.NoError(t, err)
	fn := expr.(*ast.ArrowFunctionExpression)
	require.Len(t, fn.Params, 2)
}

func TestParseObjectLiteralWithGetSetShorthandComputed(t *testing.T) {
	expr, err := ParseExpression(`{
		shorthand,
		computed: 1,
		[key]: 2,
		get g() { return 1; },
		set s(v) {}
	}`)
	require.NoError(t, err)
	obj := expr.(*ast.ObjectExpression)
	require.Len(t, obj.Properties, 5)

	shorthandProp := obj.Properties[0].(*ast.ObjectProperty)
	assert.True(t, shorthandProp.Shorthand)

	computedKeyProp := obj.Properties[2].(*ast.ObjectProperty)
	assert.True(t, computedKeyProp.Computed)

	getter := obj.Properties[3].(*ast.ObjectMethod)
	assert.Equal(t, "get", getter.Kind)

	setter := obj.Properties[4].(*ast.ObjectMethod)
	assert.Equal(t, "set", setter.Kind)
}

func TestParseForStatementWithVariableDeclarationInit(t *testing.T) {
	prog, err := Parse("for (let i = 0; i < 10; i++) {}")
	require.NoError(t, err)
	forStmt := prog.Body[0].(*ast.ForStatement)
	decl := forStmt.Init.(*ast.VariableDeclaration)
	assert.Equal(t, "let", decl.Kind)
	assert.NotNil(t, forStmt.Test)
	assert.NotNil(t, forStmt.Update)
}

func TestParseForStatementWithExpressionInit(t *testing.T) {
	prog, err := Parse("for (i = 0; i < 10; i = i + 1) {}")
	require.NoError(t, err)
	forStmt := prog.Body[0].(*ast.ForStatement)
	_, ok := forStmt.Init.(*ast.AssignmentExpression)
	assert.True(t, ok)
}

func TestParseTryCatchFinally(t *testing.T) {
	prog, err := Parse("try { f(); } catch (e) { g(); } finally { h(); }")
	require.NoError(t, err)
	tryStmt := prog.Body[0].(*ast.TryStatement)
	require.NotNil(t, tryStmt.Handler)
	require.NotNil(t, tryStmt.Finalizer)
	assert.Equal(t, "e", tryStmt.Handler.Param.(*ast.Identifier).Name)
}

func TestParseTryWithoutCatchOrFinallyFails(t *testing.T) {
	_, err := Parse("try { f(); }")
	require.Error(t, err)
	syn := err.(*errors.SyntaxError)
	assert.Equal(t, errors.CodeMissingCatchOrFinally, syn.Code)
}

func TestParseSwitchStatement(t *testing.T) {
	prog, err := Parse(`switch (x) {
		case 1:
			f();
			break;
		default:
			g();
	}`)
	require.NoError(t, err)
	sw := prog.Body[0].(*ast.SwitchStatement)
	require.Len(t, sw.Cases, 2)
	assert.NotNil(t, sw.Cases[0].Test)
	assert.Nil(t, sw.Cases[1].Test)
}

func TestParseLabeledStatement(t *testing.T) {
	prog, err := Parse("outer: while (true) { break outer; }")
	require.NoError(t, err)
	label := prog.Body[0].(*ast.LabeledStatement)
	assert.Equal(t, "outer", label.Label.Name)
}

func TestParseFunctionDeclarationRequiresName(t *testing.T) {
	_, err := Parse("function () {}")
	require.Error(t, err)
	syn := err.(*errors.SyntaxError)
	assert.Equal(t, errors.CodeFunctionRequiresName, syn.Code)
}

func TestParseFunctionDeclarationWithName(t *testing.T) {
	prog, err := Parse("function f(a, b = 1) { return a + b; }")
	require.NoError(t, err)
	fn := prog.Body[0].(*ast.FunctionDeclaration)
	assert.Equal(t, "f", fn.ID.Name)
	require.Len(t, fn.Params, 2)
	_, isAssignPattern := fn.Params[1].(*ast.AssignmentPattern)
	assert.True(t, isAssignPattern)
}

func TestParseSequenceExpressionRejectsSpread(t *testing.T) {
	_, err := ParseExpression("a, ...b")
	require.Error(t, err)
	syn := err.(*errors.SyntaxError)
	assert.Equal(t, errors.CodeSpreadInSequence, syn.Code)
}

func TestParseMemberAllowsKeywordAsPropertyName(t *testing.T) {
	expr, err := ParseExpression("a.typeof")
	require.NoError(t, err)
	m := expr.(*ast.MemberExpression)
	assert.Equal(t, "typeof", m.Property.(*ast.Identifier).Name)
}

func TestParseRestElementNotLastFails(t *testing.T) {
	_, err := ParseExpression("[...a, b] = xs")
	require.Error(t, err)
	syn := err.(*errors.SyntaxError)
	assert.Equal(t, errors.CodeRestElementNotLast, syn.Code)
}

func TestParseMemberAssignmentLeftUnrewritten(t *testing.T) {
	expr, err := ParseExpression("obj.prop = 1")
	require.NoError(t, err)
	assign := expr.(*ast.AssignmentExpression)
	_, ok := assign.Left.(*ast.MemberExpression)
	assert.True(t, ok)
}

func TestParseCompoundAssignment(t *testing.T) {
	expr, err := ParseExpression("x += 1")
	require.NoError(t, err)
	assign := expr.(*ast.AssignmentExpression)
	assert.Equal(t, "+=", assign.Operator)
}

func TestParseConditionalExpression(t *testing.T) {
	expr, err := ParseExpression("a ? b : c")
	require.NoError(t, err)
	cond := expr.(*ast.ConditionalExpression)
	assert.Equal(t, "b", cond.Consequent.(*ast.Identifier).Name)
	assert.Equal(t, "c", cond.Alternate.(*ast.Identifier).Name)
}

func TestParseCallChain(t *testing.T) {
	expr, err := ParseExpression("a.b(1)(2)[3]")
	require.NoError(t, err)
	_, ok := expr.(*ast.MemberExpression)
	assert.True(t, ok)
}

func TestParseTopLevelExpressionRequiresFullConsumption(t *testing.T) {
	_, err := ParseExpression("1 2")
	require.Error(t, err)
}

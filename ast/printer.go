package ast

import (
	"fmt"
	"strings"
)

// Dump renders a node as an indented, S-expression-like tree for
// debugging and CLI output. The teacher prints its AST with one String()
// method per node kind; this taxonomy is large enough that a single
// recursive type switch is the more practical realization of the same
// idea, so that is what this does.
func Dump(n Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

func dump(b *strings.Builder, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n == nil {
		fmt.Fprintf(b, "%snil\n", indent)
		return
	}

	switch v := n.(type) {
	case *Program:
		fmt.Fprintf(b, "%sProgram\n", indent)
		dumpStatements(b, v.Body, depth+1)

	case *Identifier:
		fmt.Fprintf(b, "%sIdentifier(%s)\n", indent, v.Name)
	case *NumericLiteral:
		fmt.Fprintf(b, "%sNumericLiteral(%d)\n", indent, v.Value)
	case *BooleanLiteral:
		fmt.Fprintf(b, "%sBooleanLiteral(%t)\n", indent, v.Value)
	case *StringLiteral:
		fmt.Fprintf(b, "%sStringLiteral(%q)\n", indent, v.Value)
	case *NullLiteral:
		fmt.Fprintf(b, "%sNullLiteral\n", indent)
	case *TemplateLiteral:
		fmt.Fprintf(b, "%sTemplateLiteral(%q)\n", indent, v.Raw)
	case *ThisExpression:
		fmt.Fprintf(b, "%sThisExpression\n", indent)
	case *SuperExpression:
		fmt.Fprintf(b, "%sSuperExpression\n", indent)

	case *FunctionExpression:
		fmt.Fprintf(b, "%sFunctionExpression%s\n", indent, functionSuffix(&v.Function))
		dumpFunctionBody(b, &v.Function, depth+1)
	case *ArrowFunctionExpression:
		fmt.Fprintf(b, "%sArrowFunctionExpression%s\n", indent, functionSuffix(&v.Function))
		for _, p := range v.Params {
			dump(b, p, depth+1)
		}
		if v.ExpressionBody != nil {
			dump(b, v.ExpressionBody, depth+1)
		} else {
			dump(b, v.Body, depth+1)
		}
	case *FunctionDeclaration:
		fmt.Fprintf(b, "%sFunctionDeclaration%s\n", indent, functionSuffix(&v.Function))
		dumpFunctionBody(b, &v.Function, depth+1)

	case *ArrayExpression:
		fmt.Fprintf(b, "%sArrayExpression\n", indent)
		for _, el := range v.Elements {
			dump(b, el, depth+1)
		}
	case *ObjectExpression:
		fmt.Fprintf(b, "%sObjectExpression\n", indent)
		for _, p := range v.Properties {
			dump(b, p, depth+1)
		}
	case *AssignmentExpression:
		fmt.Fprintf(b, "%sAssignmentExpression(%s)\n", indent, v.Operator)
		dump(b, v.Left, depth+1)
		dump(b, v.Right, depth+1)
	case *UnaryExpression:
		fmt.Fprintf(b, "%sUnaryExpression(%s)\n", indent, v.Operator)
		dump(b, v.Argument, depth+1)
	case *UpdateExpression:
		fmt.Fprintf(b, "%sUpdateExpression(%s, prefix=%t)\n", indent, v.Operator, v.Prefix)
		dump(b, v.Argument, depth+1)
	case *BinaryExpression:
		fmt.Fprintf(b, "%sBinaryExpression(%s)\n", indent, v.Operator)
		dump(b, v.Left, depth+1)
		dump(b, v.Right, depth+1)
	case *LogicalExpression:
		fmt.Fprintf(b, "%sLogicalExpression(%s)\n", indent, v.Operator)
		dump(b, v.Left, depth+1)
		dump(b, v.Right, depth+1)
	case *SequenceExpression:
		fmt.Fprintf(b, "%sSequenceExpression\n", indent)
		for _, e := range v.Expressions {
			dump(b, e, depth+1)
		}
	case *MemberExpression:
		fmt.Fprintf(b, "%sMemberExpression(computed=%t)\n", indent, v.Computed)
		dump(b, v.Object, depth+1)
		dump(b, v.Property, depth+1)
	case *CallExpression:
		fmt.Fprintf(b, "%sCallExpression\n", indent)
		dump(b, v.Callee, depth+1)
		for _, a := range v.Arguments {
			dump(b, a, depth+1)
		}
	case *NewExpression:
		fmt.Fprintf(b, "%sNewExpression\n", indent)
		dump(b, v.Callee, depth+1)
		for _, a := range v.Arguments {
			dump(b, a, depth+1)
		}
	case *ConditionalExpression:
		fmt.Fprintf(b, "%sConditionalExpression\n", indent)
		dump(b, v.Test, depth+1)
		dump(b, v.Consequent, depth+1)
		dump(b, v.Alternate, depth+1)
	case *YieldExpression:
		fmt.Fprintf(b, "%sYieldExpression(delegate=%t)\n", indent, v.Delegate)
		if v.Argument != nil {
			dump(b, v.Argument, depth+1)
		}
	case *AwaitExpression:
		fmt.Fprintf(b, "%sAwaitExpression\n", indent)
		dump(b, v.Argument, depth+1)
	case *DoExpression:
		fmt.Fprintf(b, "%sDoExpression(async=%t)\n", indent, v.Async)
		dump(b, v.Body, depth+1)
	case *SpreadElement:
		fmt.Fprintf(b, "%sSpreadElement\n", indent)
		dump(b, v.Argument, depth+1)

	case *ArrayPattern:
		fmt.Fprintf(b, "%sArrayPattern\n", indent)
		for _, el := range v.Elements {
			dump(b, el, depth+1)
		}
	case *ObjectPattern:
		fmt.Fprintf(b, "%sObjectPattern\n", indent)
		for _, p := range v.Properties {
			dump(b, p, depth+1)
		}
	case *RestElement:
		fmt.Fprintf(b, "%sRestElement\n", indent)
		dump(b, v.Argument, depth+1)
	case *AssignmentPattern:
		fmt.Fprintf(b, "%sAssignmentPattern\n", indent)
		dump(b, v.Left, depth+1)
		dump(b, v.Right, depth+1)

	case *BlockStatement:
		fmt.Fprintf(b, "%sBlockStatement\n", indent)
		dumpStatements(b, v.Body, depth+1)
	case *EmptyStatement:
		fmt.Fprintf(b, "%sEmptyStatement\n", indent)
	case *ExpressionStatement:
		fmt.Fprintf(b, "%sExpressionStatement\n", indent)
		dump(b, v.Expr, depth+1)
	case *VariableDeclaration:
		fmt.Fprintf(b, "%sVariableDeclaration(%s)\n", indent, v.Kind)
		for _, d := range v.Declarations {
			fmt.Fprintf(b, "%s  VariableDeclarator\n", indent)
			dump(b, d.Id, depth+2)
			if d.Init != nil {
				dump(b, d.Init, depth+2)
			}
		}
	case *IfStatement:
		fmt.Fprintf(b, "%sIfStatement\n", indent)
		dump(b, v.Test, depth+1)
		dump(b, v.Consequent, depth+1)
		if v.Alternate != nil {
			dump(b, v.Alternate, depth+1)
		}
	case *SwitchStatement:
		fmt.Fprintf(b, "%sSwitchStatement\n", indent)
		dump(b, v.Discriminant, depth+1)
		for _, c := range v.Cases {
			if c.Test != nil {
				fmt.Fprintf(b, "%s  SwitchCase\n", indent)
				dump(b, c.Test, depth+2)
			} else {
				fmt.Fprintf(b, "%s  SwitchCase(default)\n", indent)
			}
			dumpStatements(b, c.Consequent, depth+2)
		}
	case *ForStatement:
		fmt.Fprintf(b, "%sForStatement\n", indent)
		if v.Init != nil {
			dump(b, v.Init, depth+1)
		}
		if v.Test != nil {
			dump(b, v.Test, depth+1)
		}
		if v.Update != nil {
			dump(b, v.Update, depth+1)
		}
		dump(b, v.Body, depth+1)
	case *WhileStatement:
		fmt.Fprintf(b, "%sWhileStatement\n", indent)
		dump(b, v.Test, depth+1)
		dump(b, v.Body, depth+1)
	case *DoWhileStatement:
		fmt.Fprintf(b, "%sDoWhileStatement\n", indent)
		dump(b, v.Body, depth+1)
		dump(b, v.Test, depth+1)
	case *TryStatement:
		fmt.Fprintf(b, "%sTryStatement\n", indent)
		dump(b, v.Block, depth+1)
		if v.Handler != nil {
			fmt.Fprintf(b, "%s  CatchClause\n", indent)
			if v.Handler.Param != nil {
				dump(b, v.Handler.Param, depth+2)
			}
			dump(b, v.Handler.Body, depth+2)
		}
		if v.Finalizer != nil {
			dump(b, v.Finalizer, depth+1)
		}
	case *WithStatement:
		fmt.Fprintf(b, "%sWithStatement\n", indent)
		dump(b, v.Object, depth+1)
		dump(b, v.Body, depth+1)
	case *DebuggerStatement:
		fmt.Fprintf(b, "%sDebuggerStatement\n", indent)
	case *LabeledStatement:
		fmt.Fprintf(b, "%sLabeledStatement(%s)\n", indent, v.Label.Name)
		dump(b, v.Body, depth+1)
	case *ReturnStatement:
		fmt.Fprintf(b, "%sReturnStatement\n", indent)
		if v.Argument != nil {
			dump(b, v.Argument, depth+1)
		}
	case *BreakStatement:
		if v.Label != nil {
			fmt.Fprintf(b, "%sBreakStatement(%s)\n", indent, v.Label.Name)
		} else {
			fmt.Fprintf(b, "%sBreakStatement\n", indent)
		}
	case *ContinueStatement:
		if v.Label != nil {
			fmt.Fprintf(b, "%sContinueStatement(%s)\n", indent, v.Label.Name)
		} else {
			fmt.Fprintf(b, "%sContinueStatement\n", indent)
		}

	case *ObjectProperty:
		fmt.Fprintf(b, "%sObjectProperty(computed=%t, shorthand=%t)\n", indent, v.Computed, v.Shorthand)
		dump(b, v.Key, depth+1)
		dump(b, v.Value, depth+1)
	case *ObjectMethod:
		fmt.Fprintf(b, "%sObjectMethod(%s)\n", indent, v.Kind)
		dump(b, v.Key, depth+1)
		for _, p := range v.Params {
			dump(b, p, depth+1)
		}
		dump(b, v.Body, depth+1)

	default:
		fmt.Fprintf(b, "%s<unknown %T>\n", indent, v)
	}
}

func dumpStatements(b *strings.Builder, stmts []Statement, depth int) {
	for _, s := range stmts {
		dump(b, s, depth)
	}
}

func functionSuffix(fn *Function) string {
	name := "anonymous"
	if fn.ID != nil {
		name = fn.ID.Name
	}
	return fmt.Sprintf("(%s, generator=%t, async=%t)", name, fn.Generator, fn.Async)
}

func dumpFunctionBody(b *strings.Builder, fn *Function, depth int) {
	for _, p := range fn.Params {
		dump(b, p, depth)
	}
	dump(b, fn.Body, depth)
}

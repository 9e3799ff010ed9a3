package ast

// Identifier is both an Expression and a Pattern: it is already a valid
// binding target, so the rewriter returns it unchanged.
type Identifier struct {
	BaseNode
	Name string
}

func (*Identifier) expressionNode() {}
func (*Identifier) patternNode()    {}

// NumericLiteral's Value is a base-10, non-negative integer — the only
// numeric form this core decodes.
type NumericLiteral struct {
	BaseNode
	Value int64
}

func (*NumericLiteral) expressionNode() {}

type BooleanLiteral struct {
	BaseNode
	Value bool
}

func (*BooleanLiteral) expressionNode() {}

// StringLiteral's Value is the raw character sequence between the
// quotes; escape decoding is out of scope.
type StringLiteral struct {
	BaseNode
	Value string
}

func (*StringLiteral) expressionNode() {}

type NullLiteral struct {
	BaseNode
}

func (*NullLiteral) expressionNode() {}

// TemplateLiteral's Raw is the raw contents between backticks; no
// interpolation is parsed.
type TemplateLiteral struct {
	BaseNode
	Raw string
}

func (*TemplateLiteral) expressionNode() {}

type ThisExpression struct {
	BaseNode
}

func (*ThisExpression) expressionNode() {}

type SuperExpression struct {
	BaseNode
}

func (*SuperExpression) expressionNode() {}

// Function holds the fields shared by FunctionDeclaration, FunctionExpression
// and ArrowFunctionExpression: an optional name, a parameter pattern list,
// a body, and the generator/async flags.
type Function struct {
	BaseNode
	ID        *Identifier // nil for anonymous function expressions and all arrows
	Params    []Pattern
	Body      *BlockStatement
	Generator bool
	Async     bool
}

// FunctionExpression is a `function` expression. Arrow functions are a
// distinct node kind (ArrowFunctionExpression) because their body may be
// a bare expression, unlike FunctionExpression's always-block body.
type FunctionExpression struct {
	Function
}

func (*FunctionExpression) expressionNode() {}

// ArrowFunctionExpression's Body is either a BlockStatement (not
// supported by this core — an explicit non-goal) or a single Expression.
// ExpressionBody holds the latter; Function.Body is left nil in that case.
type ArrowFunctionExpression struct {
	Function
	ExpressionBody Expression
}

func (*ArrowFunctionExpression) expressionNode() {}

// ArrayExpression's Elements may contain nil entries for elisions
// (holes), mirroring ArrayPattern's hole handling after a rewrite.
type ArrayExpression struct {
	BaseNode
	Elements []Expression
}

func (*ArrayExpression) expressionNode() {}

type ObjectExpression struct {
	BaseNode
	Properties []ObjectMember
}

func (*ObjectExpression) expressionNode() {}

// AssignmentExpression's Left starts life as a plain Expression and is
// passed through the rewriter to become a Pattern whenever Operator is
// `=` and Left is a destructuring shape (an ArrayExpression,
// ObjectExpression or SpreadElement), in any context. Any other left
// operand (an Identifier, a MemberExpression, ...) and every compound
// operator keep the original Expression.
type AssignmentExpression struct {
	BaseNode
	Operator string
	Left     Node // Expression, or Pattern once rewritten
	Right    Expression
}

func (*AssignmentExpression) expressionNode() {}

type UnaryExpression struct {
	BaseNode
	Operator string
	Argument Expression
}

func (*UnaryExpression) expressionNode() {}

// UpdateExpression covers both `++x`/`--x` (Prefix=true) and `x++`/`x--`
// (Prefix=false). Argument is not validated to be a reference expression
// (Identifier or MemberExpression) — see DESIGN.md's Open Question note.
type UpdateExpression struct {
	BaseNode
	Operator string
	Argument Expression
	Prefix   bool
}

func (*UpdateExpression) expressionNode() {}

type BinaryExpression struct {
	BaseNode
	Operator string
	Left     Expression
	Right    Expression
}

func (*BinaryExpression) expressionNode() {}

// LogicalExpression is BinaryExpression's sibling for the short-circuit
// family (`|| && ??`) — a distinct node kind per spec.md §3.
type LogicalExpression struct {
	BaseNode
	Operator string
	Left     Expression
	Right    Expression
}

func (*LogicalExpression) expressionNode() {}

// SequenceExpression always holds two or more Expressions (spec.md §8's
// invariant); SpreadElement children are rejected at construction time
// (spec.md §9's Open Question, resolved — see DESIGN.md).
type SequenceExpression struct {
	BaseNode
	Expressions []Expression
}

func (*SequenceExpression) expressionNode() {}

// MemberExpression covers both `a.b` (Computed=false, Property is an
// Identifier parsed as an expression) and `a[b]` (Computed=true).
type MemberExpression struct {
	BaseNode
	Object   Expression
	Property Expression
	Computed bool
}

func (*MemberExpression) expressionNode() {}

// CallExpression's Arguments may contain SpreadElement entries.
type CallExpression struct {
	BaseNode
	Callee    Expression
	Arguments []Expression
}

func (*CallExpression) expressionNode() {}

type NewExpression struct {
	BaseNode
	Callee    Expression
	Arguments []Expression
}

func (*NewExpression) expressionNode() {}

type ConditionalExpression struct {
	BaseNode
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (*ConditionalExpression) expressionNode() {}

// YieldExpression's Argument is nullable; Delegate marks `yield*`.
type YieldExpression struct {
	BaseNode
	Argument Expression
	Delegate bool
}

func (*YieldExpression) expressionNode() {}

type AwaitExpression struct {
	BaseNode
	Argument Expression
}

func (*AwaitExpression) expressionNode() {}

// DoExpression evaluates a block and yields the value of its last
// completed statement. Async marks `async do { ... }`.
type DoExpression struct {
	BaseNode
	Body  *BlockStatement
	Async bool
}

func (*DoExpression) expressionNode() {}

// SpreadElement is the expression-side counterpart of RestElement. The
// rewriter turns one into the other when the surrounding tree is
// reinterpreted as a pattern.
type SpreadElement struct {
	BaseNode
	Argument Expression
}

func (*SpreadElement) expressionNode() {}
func (*SpreadElement) objectMemberNode() {}

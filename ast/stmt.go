package ast

type BlockStatement struct {
	BaseNode
	Body []Statement
}

func (*BlockStatement) statementNode() {}

type EmptyStatement struct {
	BaseNode
}

func (*EmptyStatement) statementNode() {}

type ExpressionStatement struct {
	BaseNode
	Expr Expression
}

func (*ExpressionStatement) statementNode() {}

// VariableDeclarator's Init is nullable (`let x;`); Id is a Pattern,
// produced by rewriting whatever expression the parser initially built.
type VariableDeclarator struct {
	BaseNode
	Id   Pattern
	Init Expression
}

// VariableDeclaration's Kind is one of "var", "let", "const".
type VariableDeclaration struct {
	BaseNode
	Kind         string
	Declarations []*VariableDeclarator
}

func (*VariableDeclaration) statementNode() {}

type IfStatement struct {
	BaseNode
	Test       Expression
	Consequent Statement
	Alternate  Statement // nullable
}

func (*IfStatement) statementNode() {}

// SwitchCase's Test is nil for the `default` case.
type SwitchCase struct {
	BaseNode
	Test       Expression
	Consequent []Statement
}

type SwitchStatement struct {
	BaseNode
	Discriminant Expression
	Cases        []*SwitchCase
}

func (*SwitchStatement) statementNode() {}

// ForStatement's Init may be nil, a VariableDeclaration, or an
// Expression; Test and Update are independently nullable.
type ForStatement struct {
	BaseNode
	Init   Node
	Test   Expression
	Update Expression
	Body   Statement
}

func (*ForStatement) statementNode() {}

type WhileStatement struct {
	BaseNode
	Test Expression
	Body Statement
}

func (*WhileStatement) statementNode() {}

type DoWhileStatement struct {
	BaseNode
	Body Statement
	Test Expression
}

func (*DoWhileStatement) statementNode() {}

// CatchClause's Param is nullable (`catch {}` with no bound identifier).
type CatchClause struct {
	BaseNode
	Param Pattern
	Body  *BlockStatement
}

// TryStatement requires at least one of Handler/Finalizer (enforced by
// the parser, not this type — spec.md §4.2's "Missing catch or finally
// after try" SyntaxError).
type TryStatement struct {
	BaseNode
	Block     *BlockStatement
	Handler   *CatchClause    // nullable
	Finalizer *BlockStatement // nullable
}

func (*TryStatement) statementNode() {}

type WithStatement struct {
	BaseNode
	Object Expression
	Body   Statement
}

func (*WithStatement) statementNode() {}

type DebuggerStatement struct {
	BaseNode
}

func (*DebuggerStatement) statementNode() {}

type LabeledStatement struct {
	BaseNode
	Label *Identifier
	Body  Statement
}

func (*LabeledStatement) statementNode() {}

// ReturnStatement's Argument is nullable: `return;`, `return}` and
// `return<EOF>` all yield Argument == nil.
type ReturnStatement struct {
	BaseNode
	Argument Expression
}

func (*ReturnStatement) statementNode() {}

type BreakStatement struct {
	BaseNode
	Label *Identifier // nullable
}

func (*BreakStatement) statementNode() {}

type ContinueStatement struct {
	BaseNode
	Label *Identifier // nullable
}

func (*ContinueStatement) statementNode() {}

// FunctionDeclaration mirrors FunctionExpression's fields but always
// carries a non-nil ID (spec.md §7's "Function statements require a
// function name" SyntaxError enforces this at parse time).
type FunctionDeclaration struct {
	Function
}

func (*FunctionDeclaration) statementNode() {}

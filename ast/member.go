package ast

// ObjectProperty covers both the expression-context `{key: value}` member
// and, reused in a pattern context, the "AssignmentProperty" the
// specification describes as not a new node kind but an ObjectProperty
// whose Value is itself a Pattern (spec.md §9's design-note-sanctioned
// alternative to a second variant).
type ObjectProperty struct {
	BaseNode
	Key       Expression
	Value     Node // Expression normally; Pattern once rewritten
	Computed  bool
	Shorthand bool
}

func (*ObjectProperty) objectMemberNode() {}

// ObjectMethod's Kind is one of "method", "get", "set".
type ObjectMethod struct {
	BaseNode
	Kind      string
	Key       Expression
	Params    []Pattern
	Body      *BlockStatement
	Computed  bool
	Generator bool
	Async     bool
}

func (*ObjectMethod) objectMemberNode() {}

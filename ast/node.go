// Package ast defines the node taxonomy produced by the parser: a
// Babel/ESTree-flavored tree with distinct literal kinds (NumericLiteral,
// StringLiteral, BooleanLiteral, ...) rather than one generic Literal
// node, matching the "established, widely-used AST convention" the
// parser targets.
package ast

import "jsparse/source"

// Node is implemented by every tree member. Span is nil when the parser
// ran with OmitLocations set.
type Node interface {
	Span() *source.Span
	SetSpan(*source.Span)
}

// Expression is implemented by every node kind that can appear in
// expression position.
type Expression interface {
	Node
	expressionNode()
}

// Pattern is implemented by every node kind usable as a binding target.
// Identifier implements both Expression and Pattern — it is already a
// valid pattern and needs no rewriting.
type Pattern interface {
	Node
	patternNode()
}

// Statement is implemented by every statement node kind.
type Statement interface {
	Node
	statementNode()
}

// ObjectMember is implemented by the three kinds of `{ ... }` member:
// ObjectProperty, ObjectMethod and SpreadElement (`...expr`).
type ObjectMember interface {
	Node
	objectMemberNode()
}

// BaseNode carries the "auxiliary record" of spec.md §3: an optional
// source span and the trailing-comma flag used by the last element of a
// call/array/object/pattern list. Every concrete node embeds it.
type BaseNode struct {
	span          *source.Span
	TrailingComma bool
}

func (b *BaseNode) Span() *source.Span     { return b.span }
func (b *BaseNode) SetSpan(s *source.Span) { b.span = s }

// SetTrailingComma marks this node as the last element of a list that
// was followed by a trailing comma (spec.md §8's boundary behavior).
func (b *BaseNode) SetTrailingComma() { b.TrailingComma = true }

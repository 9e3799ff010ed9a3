package parser

import (
	"strings"

	"jsparse/ast"
	"jsparse/errors"
	"jsparse/source"
	"jsparse/token"
)

// peek looks at the token at cursor+offset. An out-of-range peek is a
// fatal SyntaxError("Unexpected EOF") per spec.md §4.2 — it only happens
// when a caller looks further ahead than the token vector (which always
// ends in EOF) actually has.
func (p *Parser) peek(offset int) token.Token {
	idx := p.cursor + offset
	if idx < 0 || idx >= len(p.tokens) {
		p.fail(errors.NewUnexpectedEOF())
	}
	return p.tokens[idx]
}

// advance returns the current token, then moves the cursor past it.
func (p *Parser) advance() token.Token {
	tok := p.peek(0)
	p.cursor++
	return tok
}

func (p *Parser) atEOF() bool {
	return p.peek(0).Kind == token.EOF
}

// match is a pure predicate on the peeked kind; it never consumes.
func (p *Parser) match(kind token.Kind, offset int) bool {
	idx := p.cursor + offset
	if idx < 0 || idx >= len(p.tokens) {
		return false
	}
	return p.tokens[idx].Kind == kind
}

func (p *Parser) matchAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.match(k, 0) {
			return true
		}
	}
	return false
}

// accept consumes and reports true when the current token is kind;
// otherwise it leaves the cursor untouched and reports false.
func (p *Parser) accept(kind token.Kind) bool {
	if p.match(kind, 0) {
		p.advance()
		return true
	}
	return false
}

// acceptAny is accept over a set of candidate kinds, returning the
// consumed token.
func (p *Parser) acceptAny(kinds ...token.Kind) (token.Token, bool) {
	for _, k := range kinds {
		if p.match(k, 0) {
			return p.advance(), true
		}
	}
	return token.Token{}, false
}

// expect consumes the next token, failing with a SyntaxError naming kind
// as the expected token if it does not match.
func (p *Parser) expect(kind token.Kind) token.Token {
	tok := p.peek(0)
	if tok.Kind != kind {
		p.unexpected(tok, kind.String())
	}
	return p.advance()
}

func (p *Parser) expectAny(kinds ...token.Kind) token.Token {
	tok := p.peek(0)
	for _, k := range kinds {
		if tok.Kind == k {
			return p.advance()
		}
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	p.unexpected(tok, names...)
	panic("unreachable")
}

func (p *Parser) unexpected(tok token.Token, expected ...string) {
	value := tok.Value
	if value == "" {
		value = tok.Kind.String()
	}
	var pos *source.Position
	if tok.Span != nil {
		pos = &tok.Span.Start
	}
	p.fail(errors.NewUnexpectedToken(pos, value, expected...))
}

// expectBreak implements the "expect-break" automatic statement
// termination discipline of spec.md §4.2: a semicolon is consumed if
// present; otherwise the statement terminates cleanly at `}`, eof, or an
// observed line break, and is a SyntaxError for anything else.
func (p *Parser) expectBreak() {
	if p.accept(token.SEMICOLON) {
		return
	}
	if p.match(token.RBRACE, 0) || p.atEOF() {
		return
	}
	if p.lineBreakBeforeCurrent() {
		return
	}
	p.unexpected(p.peek(0))
}

// lineBreakBeforeCurrent scans the raw source substring between the
// previous token's end offset and the current token's start offset for
// a line terminator.
func (p *Parser) lineBreakBeforeCurrent() bool {
	if p.cursor == 0 {
		return false
	}
	prevEnd := p.tokens[p.cursor-1].Span.End.Offset
	curStart := p.peek(0).Span.Start.Offset
	if curStart <= prevEnd {
		return false
	}
	return strings.ContainsAny(p.src[prevEnd:curStart], "\n\r")
}

// --- location tracking ---

// startNode pushes the current token's start position onto the
// node-start stack, the anchor finishNode will later pop.
func (p *Parser) startNode() {
	if p.opts.OmitLocations {
		return
	}
	p.starts = append(p.starts, p.peek(0).Span.Start)
}

// startNodeAt is startNode for callers that already captured the
// relevant token before deciding to start a node.
func (p *Parser) startNodeAt(pos source.Position) {
	if p.opts.OmitLocations {
		return
	}
	p.starts = append(p.starts, pos)
}

// startNodeFrom is the "variant that takes an existing node" of spec.md
// §4.2: used for retroactive grouping, e.g. when an already-parsed
// expression becomes the left operand of a postfix or binary operator.
func (p *Parser) startNodeFrom(n ast.Node) {
	if p.opts.OmitLocations {
		return
	}
	if sp := n.Span(); sp != nil {
		p.starts = append(p.starts, sp.Start)
		return
	}
	p.starts = append(p.starts, p.peek(0).Span.Start)
}

// finishNode pops the node-start stack and attaches {start, end =
// previous token's span end} to n.
func (p *Parser) finishNode(n ast.Node) {
	if p.opts.OmitLocations {
		return
	}
	n.SetSpan(p.popSpan())
}

func (p *Parser) popSpan() *source.Span {
	start := p.starts[len(p.starts)-1]
	p.starts = p.starts[:len(p.starts)-1]
	return &source.Span{Start: start, End: p.previousTokenEnd()}
}

func (p *Parser) previousTokenEnd() source.Position {
	if p.cursor == 0 {
		return p.peek(0).Span.Start
	}
	return p.tokens[p.cursor-1].Span.End
}

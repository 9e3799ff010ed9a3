// Package parser implements the predictive recursive-descent,
// precedence-climbing parser and the expression-to-pattern rewriter. It
// exposes two entry points, Parse and ParseExpression, mirroring the
// parse(source, options?) / parseExpression(source, options?) surface.
package parser

import (
	"fmt"
	"os"

	"jsparse/ast"
	"jsparse/errors"
	"jsparse/lexer"
	"jsparse/source"
	"jsparse/token"
)

// Options mirrors spec.md §6's options record; both fields default to
// false.
type Options struct {
	// EmitLogs, when true, makes the parser write a source-pointer
	// diagnostic to stderr before every fatal SyntaxError it raises that
	// carries a source position (in addition to returning that error —
	// the write is a side channel, not the primary contract). Errors
	// without a position, and lexer errors returned by New, are not
	// written.
	EmitLogs bool
	// OmitLocations, when true, skips node span tracking: no location is
	// attached to any node, and the node-start stack is never pushed to.
	// Tokens still carry their spans.
	OmitLocations bool
}

// Parser holds the full state described by spec.md §4.2: an immutable
// token vector, a cursor, a node-start-position stack for attaching
// source spans, a list of non-fatal warnings, and the Options record.
type Parser struct {
	tokens []token.Token
	src    string
	cursor int

	starts []source.Position

	warnings []string
	opts     Options

	reporter *errors.Reporter
}

// New builds a Parser over src's token vector. Use this directly only
// when the caller needs Warnings(); package-level Parse/ParseExpression
// cover the common case.
func New(src string, opts Options) (*Parser, error) {
	toks, err := lexer.New(src).Tokenize()
	if err != nil {
		return nil, err
	}
	return &Parser{
		tokens:   toks,
		src:      src,
		opts:     opts,
		reporter: errors.NewReporter("<input>", src),
	}, nil
}

// Warnings returns the non-fatal warnings accumulated during parsing
// (currently: any node-start-stack entry left unpopped at the end of a
// parse — spec.md §4.2's "Location tracking" note).
func (p *Parser) Warnings() []string {
	return p.warnings
}

// Parse is the parse(source, options?) entry point: it produces a
// Program or fails with the first LexError/SyntaxError encountered.
func Parse(src string, opts ...Options) (*ast.Program, error) {
	o := firstOr(opts, Options{})
	p, err := New(src, o)
	if err != nil {
		return nil, err
	}
	return p.ParseProgram()
}

// ParseExpression is the parseExpression(source, options?) entry point.
func ParseExpression(src string, opts ...Options) (ast.Expression, error) {
	o := firstOr(opts, Options{})
	p, err := New(src, o)
	if err != nil {
		return nil, err
	}
	return p.ParseTopLevelExpression()
}

func firstOr(opts []Options, fallback Options) Options {
	if len(opts) > 0 {
		return opts[0]
	}
	return fallback
}

// ParseProgram runs the statement-dispatch loop of spec.md §4.2 until
// eof, catching the fatal panic any parse*/expect failure raises and
// turning it back into a plain error. No partial tree is ever returned.
func (p *Parser) ParseProgram() (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			prog, err = nil, asParseError(r)
		}
	}()

	var body []ast.Statement
	for !p.atEOF() {
		body = append(body, p.parseStatement())
	}
	p.expect(token.EOF)

	program := &ast.Program{Body: body}
	p.drainWarnings()
	return program, nil
}

// ParseTopLevelExpression parses a single expression, allowing grouping,
// sequencing, assignment and calls, and requires the stream to be
// exhausted afterward.
func (p *Parser) ParseTopLevelExpression() (expr ast.Expression, err error) {
	defer func() {
		if r := recover(); r != nil {
			expr, err = nil, asParseError(r)
		}
	}()

	e := p.parseExpr(allFlags())
	p.expect(token.EOF)
	p.drainWarnings()
	return e, nil
}

func (p *Parser) drainWarnings() {
	for range p.starts {
		p.warnings = append(p.warnings, "unclosed node-start-stack entry at end of parse")
	}
	p.starts = nil
}

// parsePanic is the payload carried by the single panic/recover pair at
// each public entry point. Every deep parse*/expect failure raises one
// of spec.md's two fatal error kinds through p.fail, rather than
// threading an error return through dozens of mutually-recursive
// parse* methods the way a non-panicking implementation would have to.
type parsePanic struct{ err error }

func (p *Parser) fail(err error) {
	p.logSideChannel(err)
	panic(parsePanic{err})
}

func asParseError(r any) error {
	if pp, ok := r.(parsePanic); ok {
		return pp.err
	}
	panic(r)
}

// logSideChannel writes the Reporter's source-pointer diagnostic (header,
// location, source line and caret row) when EmitLogs is set and a
// location is known.
func (p *Parser) logSideChannel(err error) {
	if !p.opts.EmitLogs {
		return
	}
	switch e := err.(type) {
	case *errors.SyntaxError:
		if e.Position != nil {
			fmt.Fprint(os.Stderr, p.reporter.Format(*e.Position, 1, e.Message))
		}
	case *errors.LexError:
		fmt.Fprint(os.Stderr, p.reporter.Format(e.Position, len(e.Prefix), err.Error()))
	}
}

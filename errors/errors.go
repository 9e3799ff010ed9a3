// Package errors defines the two fatal error kinds the parsing core can
// raise — LexError and SyntaxError — plus the error-code table and the
// source-pointer diagnostic formatter used as the "side channel" the
// parser writes to when its EmitLogs option is set.
//
// Error code ranges mirror the teacher compiler's convention:
//
//	E01xx: lexer errors
//	E02xx: parser unexpected-token errors
//	E03xx: parser structural-violation errors
package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"jsparse/source"
)

const (
	CodeLexNoMatch = "E0100"

	CodeUnexpectedToken = "E0200"
	CodeUnexpectedEOF   = "E0201"

	CodeMissingCatchOrFinally = "E0300"
	CodeRestElementNotLast    = "E0301"
	CodeRestElementTrailing   = "E0302"
	CodeInvalidAssignmentOp   = "E0303"
	CodeInvalidPattern        = "E0304"
	CodeNotAKeyword           = "E0305"
	CodeFunctionRequiresName  = "E0306"
	CodeSpreadInSequence      = "E0307"
)

// LexError is produced by the lexer when no matcher accepts the
// remaining input at the current position.
type LexError struct {
	Position source.Position
	Prefix   string // the unmatched remaining input, truncated for display
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: no token matches input starting with %q", CodeLexNoMatch, e.Prefix)
}

// SyntaxError is produced by the parser. Code identifies the exact
// diagnostic per the error-code table above.
type SyntaxError struct {
	Code     string
	Message  string
	Position *source.Position // nil when locations were omitted
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewUnexpectedToken builds the "unexpected token" family of SyntaxError,
// naming the actual value and, when known, the expected kind names.
func NewUnexpectedToken(pos *source.Position, actual string, expected ...string) *SyntaxError {
	msg := fmt.Sprintf("Unexpected token %s", actual)
	if len(expected) > 0 {
		msg = fmt.Sprintf("%s, expected %s", msg, strings.Join(expected, " or "))
	}
	return &SyntaxError{Code: CodeUnexpectedToken, Message: msg, Position: pos}
}

// NewUnexpectedEOF builds the fixed "Unexpected EOF" SyntaxError raised
// by peek/advance when the cursor runs past the token vector.
func NewUnexpectedEOF() *SyntaxError {
	return &SyntaxError{Code: CodeUnexpectedEOF, Message: "Unexpected EOF"}
}

// NewMissingCatchOrFinally builds the fixed "Missing catch or finally
// after try" SyntaxError.
func NewMissingCatchOrFinally() *SyntaxError {
	return &SyntaxError{Code: CodeMissingCatchOrFinally, Message: "Missing catch or finally after try"}
}

// NewRestElementNotLast names which context (destructuring pattern or
// parameter list) the violated rest-element-last rule applies to.
func NewRestElementNotLast(context string) *SyntaxError {
	return &SyntaxError{Code: CodeRestElementNotLast, Message: fmt.Sprintf("A rest element must be last in a %s", context)}
}

// NewRestElementTrailing names which context a rest element was
// followed by a forbidden trailing comma in.
func NewRestElementTrailing(context string) *SyntaxError {
	return &SyntaxError{Code: CodeRestElementTrailing, Message: fmt.Sprintf("A rest element in a %s cannot have a trailing comma", context)}
}

// NewInvalidAssignmentOp fires when the rewriter is asked to turn an
// AssignmentExpression with an operator other than `=` into a pattern.
func NewInvalidAssignmentOp(op string) *SyntaxError {
	return &SyntaxError{Code: CodeInvalidAssignmentOp, Message: fmt.Sprintf("Invalid assignment pattern operator %s, expected =", op)}
}

// NewInvalidPattern names the expression node kind the rewriter could
// not turn into a pattern.
func NewInvalidPattern(kind string) *SyntaxError {
	return &SyntaxError{Code: CodeInvalidPattern, Message: fmt.Sprintf("Invalid pattern %s", kind)}
}

// NewNotAKeyword builds the "Token K is not a keyword" SyntaxError. The
// parser does not raise it: a member key or property name that is
// neither an identifier nor a keyword is reported by NewUnexpectedToken.
func NewNotAKeyword(lexeme string) *SyntaxError {
	return &SyntaxError{Code: CodeNotAKeyword, Message: fmt.Sprintf("Token %s is not a keyword", lexeme)}
}

// NewFunctionRequiresName is the fixed SyntaxError for a `function`
// statement with no bound name.
func NewFunctionRequiresName() *SyntaxError {
	return &SyntaxError{Code: CodeFunctionRequiresName, Message: "Function statements require a function name"}
}

// NewSpreadInSequence fires when a SequenceExpression would otherwise
// gain a SpreadElement child — rejected per the resolved Open Question
// of spec.md §9.
func NewSpreadInSequence() *SyntaxError {
	return &SyntaxError{Code: CodeSpreadInSequence, Message: "Unexpected spread element in sequence expression"}
}

// Reporter renders a Rust-style source-pointer diagnostic: an `error:`
// header with the message, a `--> file:line:col` pointer, the offending
// source line, and a caret row under the offending span. It is the side
// channel the parser writes to, when EmitLogs is set, before raising a
// SyntaxError that carries a position.
type Reporter struct {
	filename string
	lines    []string
}

// NewReporter builds a Reporter over one source file's text.
func NewReporter(filename, src string) *Reporter {
	return &Reporter{filename: filename, lines: strings.Split(src, "\n")}
}

// Format renders the two-line diagnostic for message at pos, underlining
// length characters (minimum 1).
func (r *Reporter) Format(pos source.Position, length int, message string) string {
	if length < 1 {
		length = 1
	}

	var line string
	if pos.Line >= 0 && pos.Line < len(r.lines) {
		line = r.lines[pos.Line]
	}

	red := color.New(color.FgRed, color.Bold).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	marker := strings.Repeat(" ", pos.Column) + strings.Repeat("^", length)

	return fmt.Sprintf(
		"%s: %s\n  --> %s:%d:%d\n%s\n%s\n",
		red("error"), message,
		r.filename, pos.Line+1, pos.Column+1,
		line, bold(marker),
	)
}

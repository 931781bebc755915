// errors.go — error types and the diagnostic Reporter.
//
// What this file does
// -------------------
// Three error kinds flow through the interpreter:
//
//   - lexical:   reported by the lexer with a bare line number; scanning
//     continues past them.
//   - syntactic: a *ParseError carrying the offending token; the parser
//     reports it once and synchronizes to the next statement boundary.
//   - runtime:   a *RuntimeError carrying the offending token; it stops the
//     current statement sequence but never the hosting process.
//
// All three funnel into the Reporter, which writes them to a configurable
// writer in the fixed diagnostic format
//
//	[line <n>] Error<where>: <message>     (static errors)
//	<message>
//	[line <n>]                             (runtime errors)
//
// and records two flags — HadError (static) and HadRuntimeError — that the
// caller reads to decide what happens next (exit status for a file run,
// carry on for a REPL line). The flags live on the Reporter value, not in
// package globals, so independent interpreter instances never share error
// state.
package lox

import (
	"fmt"
	"io"
	"os"
)

// ParseError is a syntax error at a specific token. The parser surfaces it
// as an ordinary error return; there is no panic-based unwinding.
type ParseError struct {
	Tok Token
	Msg string
}

func (e *ParseError) Error() string {
	if e.Tok.Type == EOF {
		return fmt.Sprintf("[line %d] Error at end: %s", e.Tok.Line, e.Msg)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Tok.Line, e.Tok.Lexeme, e.Msg)
}

// RuntimeError is an execution-time failure at a specific token.
type RuntimeError struct {
	Tok Token
	Msg string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Msg, e.Tok.Line)
}

// Diagnostic is one recorded error, kept alongside the formatted output so
// callers (the REPL's -explain mode, tests) can inspect what was reported.
type Diagnostic struct {
	Line    int
	Lexeme  string // offending lexeme; "" for lexical errors and end-of-input
	Msg     string
	Runtime bool
}

// Reporter receives errors from the lexer, parser, and interpreter, writes
// them to Out, and tracks whether any occurred.
type Reporter struct {
	Out             io.Writer
	HadError        bool // any lexical or syntactic error
	HadRuntimeError bool

	diags []Diagnostic
}

// NewReporter returns a reporter writing to out; a nil out means stderr.
func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = os.Stderr
	}
	return &Reporter{Out: out}
}

// Error reports a static error with no location hint beyond the line.
// This is the entry point the lexer uses.
func (r *Reporter) Error(line int, msg string) {
	r.report(line, "", msg)
	r.diags = append(r.diags, Diagnostic{Line: line, Msg: msg})
}

// ErrorAt reports a static error at a token. EOF tokens render as "at end",
// everything else as "at '<lexeme>'". This is the entry point the parser
// uses.
func (r *Reporter) ErrorAt(tok Token, msg string) {
	if tok.Type == EOF {
		r.report(tok.Line, " at end", msg)
		r.diags = append(r.diags, Diagnostic{Line: tok.Line, Msg: msg})
		return
	}
	r.report(tok.Line, " at '"+tok.Lexeme+"'", msg)
	r.diags = append(r.diags, Diagnostic{Line: tok.Line, Lexeme: tok.Lexeme, Msg: msg})
}

// Runtime reports a runtime error and sets the runtime flag.
func (r *Reporter) Runtime(err *RuntimeError) {
	fmt.Fprintf(r.Out, "%s\n[line %d]\n", err.Msg, err.Tok.Line)
	r.HadRuntimeError = true
	r.diags = append(r.diags, Diagnostic{Line: err.Tok.Line, Lexeme: err.Tok.Lexeme, Msg: err.Msg, Runtime: true})
}

// ResetStatic clears the static-error flag and the recorded diagnostics.
// The REPL calls this between lines so one bad line does not end the
// session; the runtime flag is left alone for the caller to interpret.
func (r *Reporter) ResetStatic() {
	r.HadError = false
	r.diags = r.diags[:0]
}

// Diagnostics returns the errors recorded since the last ResetStatic.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diags
}

func (r *Reporter) report(line int, where, msg string) {
	fmt.Fprintf(r.Out, "[line %d] Error%s: %s\n", line, where, msg)
	r.HadError = true
}

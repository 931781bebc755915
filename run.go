// run.go — the scan/parse/interpret pipeline.
package lox

import "io"

// Version of the interpreter, surfaced by the command.
const Version = "0.3.0"

// Result reports what went wrong during one Run. The caller maps it onto a
// process decision: a file runner exits 65 on a static error and 70 on a
// runtime error, a REPL just moves on to the next line.
type Result struct {
	HadError        bool // lexical or syntactic
	HadRuntimeError bool
}

// Runner owns one interpreter and one reporter, so bindings in the global
// environment persist across Run calls while error flags are tracked per
// run. Independent Runners share nothing.
type Runner struct {
	Interp   *Interpreter
	Reporter *Reporter
}

// NewRunner builds a runner printing to out and reporting errors to errOut.
// Either writer may be nil for the stdout/stderr default.
func NewRunner(out, errOut io.Writer) *Runner {
	interp := NewInterpreter()
	if out != nil {
		interp.Out = out
	}
	return &Runner{Interp: interp, Reporter: NewReporter(errOut)}
}

// Run scans, parses, and interprets one source text (a whole file or one
// REPL line). Interpretation is skipped when any static error was reported.
// The static flag starts fresh on every call; the runtime flag reflects
// this run only.
func (r *Runner) Run(source string) Result {
	r.Reporter.ResetStatic()
	r.Reporter.HadRuntimeError = false

	lexer := NewLexer(source, r.Reporter)
	tokens := lexer.ScanTokens()

	parser := NewParser(tokens, r.Reporter)
	statements := parser.Parse()

	// Don't execute a program that failed to scan or parse.
	if r.Reporter.HadError {
		return Result{HadError: true}
	}

	r.Interp.Interpret(statements, r.Reporter)
	return Result{HadRuntimeError: r.Reporter.HadRuntimeError}
}

// snippet.go — caret-annotated source excerpts for diagnostics.
//
// Explain turns a recorded Diagnostic back into a small plain-text snippet:
// the offending line with up to one line of context either side, numbered,
// and a caret under the offending lexeme. Tokens only carry a line, not a
// column, so the caret column is recovered by locating the lexeme's first
// occurrence in that line; when the lexeme is unknown the caret sits at the
// first non-blank column. Output is plain text (no ANSI), suitable for logs
// and terminals. The REPL's -explain flag is the main consumer.
package lox

import (
	"fmt"
	"strings"
)

// Explain renders a caret snippet for d against the source text it was
// reported from.
func Explain(src string, d Diagnostic) string {
	lines := strings.Split(src, "\n")
	line := d.Line
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	col := caretColumn(lineTxt, d.Lexeme)

	header := "syntax error"
	if d.Runtime {
		header = "runtime error"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s on line %d: %s\n\n", header, line, d.Msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}

// caretColumn returns the 1-based column for the caret: the lexeme's first
// occurrence when known, otherwise the first non-blank column.
func caretColumn(lineTxt, lexeme string) int {
	if lexeme != "" {
		if idx := strings.Index(lineTxt, lexeme); idx >= 0 {
			return idx + 1
		}
	}
	for i := 0; i < len(lineTxt); i++ {
		if lineTxt[i] != ' ' && lineTxt[i] != '\t' {
			return i + 1
		}
	}
	return 1
}

// printer.go — debug pretty-printer rendering an AST back to a
// parenthesized prefix form, e.g. "(* (- 123) (group 45.67))". Diagnostics
// only; the interpreter never consults it.
package lox

import "strings"

// FormatExpr renders one expression tree.
func FormatExpr(expr Expr) string {
	switch e := expr.(type) {
	case *Literal:
		return Stringify(e.Value)
	case *Variable:
		return e.Name.Lexeme
	case *Assign:
		return parenthesize("= "+e.Name.Lexeme, e.Value)
	case *Unary:
		return parenthesize(e.Operator.Lexeme, e.Right)
	case *Binary:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *Logical:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *Grouping:
		return parenthesize("group", e.Expression)
	default:
		panic("unhandled expression kind")
	}
}

// FormatStmt renders one statement tree.
func FormatStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		return parenthesize(";", s.Expression)
	case *PrintStmt:
		return parenthesize("print", s.Expression)
	case *VarStmt:
		if s.Initializer == nil {
			return "(var " + s.Name.Lexeme + ")"
		}
		return "(var " + s.Name.Lexeme + " = " + FormatExpr(s.Initializer) + ")"
	case *BlockStmt:
		var b strings.Builder
		b.WriteString("(block")
		for _, inner := range s.Statements {
			b.WriteString(" ")
			b.WriteString(FormatStmt(inner))
		}
		b.WriteString(")")
		return b.String()
	case *IfStmt:
		if s.Else == nil {
			return "(if " + FormatExpr(s.Condition) + " " + FormatStmt(s.Then) + ")"
		}
		return "(if " + FormatExpr(s.Condition) + " " + FormatStmt(s.Then) + " " + FormatStmt(s.Else) + ")"
	case *WhileStmt:
		return "(while " + FormatExpr(s.Condition) + " " + FormatStmt(s.Body) + ")"
	default:
		panic("unhandled statement kind")
	}
}

// FormatProgram renders a statement sequence, one statement per line.
func FormatProgram(statements []Stmt) string {
	lines := make([]string, 0, len(statements))
	for _, stmt := range statements {
		lines = append(lines, FormatStmt(stmt))
	}
	return strings.Join(lines, "\n")
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteString(" ")
		b.WriteString(FormatExpr(e))
	}
	b.WriteString(")")
	return b.String()
}

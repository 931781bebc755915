// ast.go — expression and statement node variants.
//
// Nodes form a closed set: each variant is a struct implementing the sealed
// Expr or Stmt interface through a private marker method. Consumers dispatch
// with a type switch over *T; the marker keeps foreign types out of the sum.
// Trees are built once by the parser and are read-only afterwards.
package lox

// Expr is the interface satisfied by all expression nodes.
type Expr interface {
	exprNode()
}

// Literal holds a value decoded at scan time (number, string, boolean, nil).
type Literal struct {
	Value Value
}

// Variable is a bare variable reference.
type Variable struct {
	Name Token
}

// Assign writes a new value to an existing binding. Name must have parsed as
// a bare variable reference.
type Assign struct {
	Name  Token
	Value Expr
}

// Unary applies "!" or "-" to a single operand.
type Unary struct {
	Operator Token
	Right    Expr
}

// Binary applies an arithmetic, comparison, or equality operator.
type Binary struct {
	Left     Expr
	Operator Token
	Right    Expr
}

// Logical applies the short-circuiting "and" / "or" operators. It is a
// separate variant from Binary because the right operand is evaluated
// conditionally.
type Logical struct {
	Left     Expr
	Operator Token
	Right    Expr
}

// Grouping wraps a parenthesized expression.
type Grouping struct {
	Expression Expr
}

func (*Literal) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Grouping) exprNode() {}

// Stmt is the interface satisfied by all statement nodes.
type Stmt interface {
	stmtNode()
}

// ExpressionStmt evaluates an expression and discards the result.
type ExpressionStmt struct {
	Expression Expr
}

// PrintStmt evaluates an expression and writes its display form plus a
// newline.
type PrintStmt struct {
	Expression Expr
}

// VarStmt declares a variable in the current scope. Initializer may be nil,
// in which case the binding gets the unassigned sentinel.
type VarStmt struct {
	Name        Token
	Initializer Expr
}

// BlockStmt runs an ordered statement sequence in a fresh child scope.
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt executes at most one of its two branches. Else may be nil.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// WhileStmt executes Body while Condition is truthy.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}

// interpreter.go — tree-walking evaluator.
//
// OVERVIEW
// --------
// The interpreter walks the statement sequence produced by the parser and
// evaluates expressions directly against the AST — no bytecode, no
// optimization passes. It holds a single mutable "current environment"
// reference that is swapped for the duration of a block and restored on the
// way out (including the error path), so scope changes can never leak past
// their block.
//
// All evaluation is expressed as (Value, error) returns; a *RuntimeError
// stops the current statement sequence and is handed to the Reporter, and
// the hosting process is never terminated from here. Execution is strictly
// single-threaded and synchronous: a long-running `while` loop blocks the
// calling goroutine until the program ends it.
package lox

import (
	"errors"
	"io"
	"os"
)

// Interpreter executes parsed statements. Globals is the root environment
// and persists for the interpreter's lifetime, so bindings survive across
// Interpret calls (REPL lines). Out receives `print` output; it defaults to
// stdout.
type Interpreter struct {
	Globals *Environment
	Out     io.Writer

	env *Environment // current scope; swapped per block
}

// NewInterpreter returns an interpreter with a fresh global environment,
// printing to stdout.
func NewInterpreter() *Interpreter {
	globals := NewEnvironment(nil)
	return &Interpreter{Globals: globals, Out: os.Stdout, env: globals}
}

// Interpret executes the statements in order. The first runtime error stops
// the remaining statements and is reported via rep; the error is also
// returned for callers that want to inspect it.
func (i *Interpreter) Interpret(statements []Stmt, rep *Reporter) error {
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			var re *RuntimeError
			if errors.As(err, &re) {
				rep.Runtime(re)
			}
			return err
		}
	}
	return nil
}

// ─────────────────────────── statement execution ─────────────────────────

func (i *Interpreter) execute(stmt Stmt) error {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		_, err := i.evaluate(s.Expression)
		return err

	case *PrintStmt:
		value, err := i.evaluate(s.Expression)
		if err != nil {
			return err
		}
		_, err = io.WriteString(i.Out, Stringify(value)+"\n")
		return err

	case *VarStmt:
		// No initializer leaves the binding in the unassigned state.
		value := Unassigned
		if s.Initializer != nil {
			var err error
			value, err = i.evaluate(s.Initializer)
			if err != nil {
				return err
			}
		}
		i.env.Define(s.Name.Lexeme, value)
		return nil

	case *BlockStmt:
		return i.executeBlock(s.Statements, NewEnvironment(i.env))

	case *IfStmt:
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if Truthy(cond) {
			return i.execute(s.Then)
		}
		if s.Else != nil {
			return i.execute(s.Else)
		}
		return nil

	case *WhileStmt:
		for {
			cond, err := i.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !Truthy(cond) {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}

	default:
		panic("unhandled statement kind")
	}
}

// executeBlock runs statements in env, restoring the previous scope on exit
// even when a statement fails.
func (i *Interpreter) executeBlock(statements []Stmt, env *Environment) error {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ─────────────────────────── expression evaluation ───────────────────────

func (i *Interpreter) evaluate(expr Expr) (Value, error) {
	switch e := expr.(type) {
	case *Literal:
		return e.Value, nil

	case *Grouping:
		return i.evaluate(e.Expression)

	case *Variable:
		return i.env.Get(e.Name)

	case *Assign:
		value, err := i.evaluate(e.Value)
		if err != nil {
			return Value{}, err
		}
		if err := i.env.Assign(e.Name, value); err != nil {
			return Value{}, err
		}
		// Assignment is an expression; it yields the assigned value so
		// chained and embedded assignments work.
		return value, nil

	case *Logical:
		left, err := i.evaluate(e.Left)
		if err != nil {
			return Value{}, err
		}
		// Short-circuit: the deciding operand is the result.
		if e.Operator.Type == OR {
			if Truthy(left) {
				return left, nil
			}
		} else {
			if !Truthy(left) {
				return left, nil
			}
		}
		return i.evaluate(e.Right)

	case *Unary:
		return i.evalUnary(e)

	case *Binary:
		return i.evalBinary(e)

	default:
		panic("unhandled expression kind")
	}
}

func (i *Interpreter) evalUnary(e *Unary) (Value, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return Value{}, err
	}

	switch e.Operator.Type {
	case BANG:
		// Truthiness applies to any value; '!' never errors.
		return Bool(!Truthy(right)), nil
	case MINUS:
		if right.Tag != VTNum {
			return Value{}, &RuntimeError{Tok: e.Operator, Msg: "Operand must be a number"}
		}
		return Num(-right.Data.(float64)), nil
	}
	panic("unhandled unary operator")
}

func (i *Interpreter) evalBinary(e *Binary) (Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return Value{}, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return Value{}, err
	}

	switch e.Operator.Type {
	case EQ:
		return Bool(Equal(left, right)), nil
	case NEQ:
		return Bool(!Equal(left, right)), nil

	case GREATER, GREATER_EQ, LESS, LESS_EQ, MINUS, STAR, SLASH:
		if left.Tag != VTNum || right.Tag != VTNum {
			return Value{}, &RuntimeError{Tok: e.Operator, Msg: "Operands must be numbers"}
		}
		l, r := left.Data.(float64), right.Data.(float64)
		switch e.Operator.Type {
		case GREATER:
			return Bool(l > r), nil
		case GREATER_EQ:
			return Bool(l >= r), nil
		case LESS:
			return Bool(l < r), nil
		case LESS_EQ:
			return Bool(l <= r), nil
		case MINUS:
			return Num(l - r), nil
		case STAR:
			return Num(l * r), nil
		case SLASH:
			if r == 0 {
				return Value{}, &RuntimeError{Tok: e.Operator, Msg: "Division by zero"}
			}
			return Num(l / r), nil
		}

	case PLUS:
		// '+' concatenates when either side is a string, using each
		// operand's display form.
		if left.Tag == VTStr || right.Tag == VTStr {
			return Str(Stringify(left) + Stringify(right)), nil
		}
		if left.Tag == VTNum && right.Tag == VTNum {
			return Num(left.Data.(float64) + right.Data.(float64)), nil
		}
		return Value{}, &RuntimeError{Tok: e.Operator, Msg: "Operands must be two numbers or there must be a string."}
	}
	panic("unhandled binary operator")
}

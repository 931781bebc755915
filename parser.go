// parser.go — recursive-descent parser for the Lox statement grammar.
//
// OVERVIEW
// --------
// The parser consumes the token stream produced by the lexer and builds the
// statement/expression trees defined in ast.go. Parsing is best-effort: a
// statement that fails to parse is reported once and skipped, and parsing
// resumes at the next statement boundary, so one broken statement costs one
// error instead of a cascade.
//
// Grammar (expressions, lowest to highest precedence):
//
//	expression -> assignment
//	assignment -> IDENTIFIER "=" assignment | logicOr        (right-assoc)
//	logicOr    -> logicAnd ("or" logicAnd)*
//	logicAnd   -> equality ("and" equality)*
//	equality   -> comparison (("!=" | "==") comparison)*
//	comparison -> term ((">" | ">=" | "<" | "<=") term)*
//	term       -> factor (("+" | "-") factor)*
//	factor     -> unary (("*" | "/") unary)*
//	unary      -> ("!" | "-") unary | primary
//	primary    -> NUMBER | STRING | "true" | "false" | "nil"
//	            | IDENTIFIER | "(" expression ")"
//
// Statements:
//
//	declaration -> varDecl | statement
//	varDecl     -> "var" IDENTIFIER ("=" expression)? ";"
//	statement   -> printStmt | block | ifStmt | whileStmt | forStmt | exprStmt
//	block       -> "{" declaration* "}"
//	ifStmt      -> "if" "(" expression ")" statement ("else" statement)?
//	whileStmt   -> "while" "(" expression ")" statement
//	forStmt     -> "for" "(" (varDecl | exprStmt | ";") expression? ";"
//	               expression? ")" statement            (desugared to while)
//
// Each binary tier loops while the current token matches one of its
// operators, folding into a left-deepening node. The "for" statement has no
// AST node of its own; the parser rewrites it into an equivalent block/while
// combination.
//
// ERROR POLICY
// ------------
// A failed required-token check produces a *ParseError as an ordinary error
// return — there is no exception-style unwinding. Errors propagate up to
// declaration, which reports them and calls synchronize: advance past the
// offending token until a consumed ';' or a token that begins a statement.
// Because declaration is also the unit of a block body, recovery works at
// any nesting depth. "Invalid assignment target" is the one error reported
// in place without abandoning the expression being parsed.
package lox

import "errors"

// Parser builds statements from a scanned token slice. Syntax errors are
// reported to rep; Parse always returns the statements that did parse.
type Parser struct {
	tokens  []Token
	current int
	rep     *Reporter
}

// NewParser creates a parser over tokens, which must end with an EOF token.
func NewParser(tokens []Token, rep *Reporter) *Parser {
	return &Parser{tokens: tokens, rep: rep}
}

// Parse consumes the whole token stream and returns the parsed statements.
// Statements with syntax errors are skipped after reporting and recovery.
func (p *Parser) Parse() []Stmt {
	var statements []Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// ─────────────────────────────── statements ──────────────────────────────

// declaration parses one declaration. Recovery lives here rather than in
// Parse so it works at any nesting depth: a broken declaration inside a
// block costs one error and is skipped (nil), and the enclosing loop —
// top level or block body — simply moves on to the next declaration.
func (p *Parser) declaration() Stmt {
	var stmt Stmt
	var err error
	if p.match(VAR) {
		stmt, err = p.varDeclaration()
	} else {
		stmt, err = p.statement()
	}
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			p.rep.ErrorAt(pe.Tok, pe.Msg)
		}
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) varDeclaration() (Stmt, error) {
	name, err := p.consume(ID, "Expect variable name")
	if err != nil {
		return nil, err
	}

	var initializer Expr
	if p.match(ASSIGN) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &VarStmt{Name: name, Initializer: initializer}, nil
}

func (p *Parser) statement() (Stmt, error) {
	switch {
	case p.match(PRINT):
		return p.printStatement()
	case p.match(LBRACE):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &BlockStmt{Statements: stmts}, nil
	case p.match(IF):
		return p.ifStatement()
	case p.match(WHILE):
		return p.whileStatement()
	case p.match(FOR):
		return p.forStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &PrintStmt{Expression: expr}, nil
}

// block parses declarations until the closing brace. Reaching end of input
// before '}' is itself an error.
func (p *Parser) block() ([]Stmt, error) {
	var statements []Stmt
	for !p.check(RBRACE) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}

	if _, err := p.consume(RBRACE, "Expected '}' after a code block."); err != nil {
		return nil, err
	}
	return statements, nil
}

func (p *Parser) ifStatement() (Stmt, error) {
	if _, err := p.consume(LPAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(RPAREN, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	then, err := p.statement()
	if err != nil {
		return nil, err
	}

	// The else binds to the nearest preceding if.
	var elseBranch Stmt
	if p.match(ELSE) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &IfStmt{Condition: condition, Then: then, Else: elseBranch}, nil
}

func (p *Parser) whileStatement() (Stmt, error) {
	if _, err := p.consume(LPAREN, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(RPAREN, "Expect ')' after condition."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Condition: condition, Body: body}, nil
}

// forStatement desugars the C-style for into block/while: the initializer
// runs once in an enclosing block, the increment is appended to the body.
func (p *Parser) forStatement() (Stmt, error) {
	if _, err := p.consume(LPAREN, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var initializer Stmt
	var err error
	switch {
	case p.match(SEMICOLON):
		initializer = nil
	case p.match(VAR):
		initializer, err = p.varDeclaration()
	default:
		initializer, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var condition Expr
	if !p.check(SEMICOLON) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(SEMICOLON, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var increment Expr
	if !p.check(RPAREN) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(RPAREN, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &BlockStmt{Statements: []Stmt{body, &ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &Literal{Value: Bool(true)}
	}
	var loop Stmt = &WhileStmt{Condition: condition, Body: body}
	if initializer != nil {
		loop = &BlockStmt{Statements: []Stmt{initializer, loop}}
	}
	return loop, nil
}

func (p *Parser) expressionStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ExpressionStmt{Expression: expr}, nil
}

// ─────────────────────────────── expressions ─────────────────────────────

func (p *Parser) expression() (Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (Expr, error) {
	// Parse the whole left side first; it can be more than one token.
	expr, err := p.logicOr()
	if err != nil {
		return nil, err
	}

	if p.match(ASSIGN) {
		equals := p.previous()
		value, err := p.assignment() // right-associative
		if err != nil {
			return nil, err
		}

		if v, ok := expr.(*Variable); ok {
			return &Assign{Name: v.Name, Value: value}, nil
		}

		// Report in place; the surrounding parse keeps the left side.
		p.rep.ErrorAt(equals, "Invalid assignment target.")
	}
	return expr, nil
}

func (p *Parser) logicOr() (Expr, error) {
	expr, err := p.logicAnd()
	if err != nil {
		return nil, err
	}
	for p.match(OR) {
		operator := p.previous()
		right, err := p.logicAnd()
		if err != nil {
			return nil, err
		}
		expr = &Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) logicAnd() (Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(AND) {
		operator := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(NEQ, EQ) {
		operator := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(GREATER, GREATER_EQ, LESS, LESS_EQ) {
		operator := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(MINUS, PLUS) {
		operator := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(SLASH, STAR) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (Expr, error) {
	if p.match(BANG, MINUS) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{Operator: operator, Right: right}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (Expr, error) {
	switch {
	case p.match(FALSE):
		return &Literal{Value: Bool(false)}, nil
	case p.match(TRUE):
		return &Literal{Value: Bool(true)}, nil
	case p.match(NIL):
		return &Literal{Value: Nil}, nil
	case p.match(NUMBER):
		return &Literal{Value: Num(p.previous().Literal.(float64))}, nil
	case p.match(STRING):
		return &Literal{Value: Str(p.previous().Literal.(string))}, nil
	case p.match(ID):
		return &Variable{Name: p.previous()}, nil
	case p.match(LPAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(RPAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &Grouping{Expression: expr}, nil
	}
	return nil, &ParseError{Tok: p.peek(), Msg: "An expression is expected here."}
}

// ─────────────────────────── token basics & recovery ─────────────────────

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances over the expected token type or returns a *ParseError at
// the current token.
func (p *Parser) consume(tt TokenType, msg string) (Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, &ParseError{Tok: p.peek(), Msg: msg}
}

func (p *Parser) check(tt TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool   { return p.peek().Type == EOF }
func (p *Parser) peek() Token     { return p.tokens[p.current] }
func (p *Parser) previous() Token { return p.tokens[p.current-1] }

// synchronize discards tokens until a statement boundary: just past a
// semicolon, or right before a token that begins a new statement. This
// bounds error cascades to one report per broken statement.
func (p *Parser) synchronize() {
	p.advance() // move off the erroring token

	for !p.isAtEnd() {
		if p.previous().Type == SEMICOLON {
			return
		}
		switch p.peek().Type {
		case CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN:
			return
		}
		p.advance()
	}
}

// lexer.go — hand-written scanner for Lox source text.
//
// The scanner makes a single forward pass over the source with (start,
// current, line) cursors and one character of lookahead for the two-char
// operators. It never fails: lexical errors are forwarded to the Reporter
// and scanning continues, so one pass can surface several independent
// errors. The returned token slice is always terminated by an EOF token.
package lox

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota

	// Single-character punctuation
	LPAREN    // "("
	RPAREN    // ")"
	LBRACE    // "{"
	RBRACE    // "}"
	COMMA     // ","
	PERIOD    // "."
	SEMICOLON // ";"

	// Operators
	PLUS
	MINUS
	STAR
	SLASH
	ASSIGN // "="
	EQ     // "=="
	NEQ    // "!="
	LESS
	LESS_EQ
	GREATER
	GREATER_EQ
	BANG // "!"

	// Literals & identifiers
	ID
	STRING
	NUMBER

	// Keywords
	AND
	CLASS
	ELSE
	FALSE
	FOR
	FUN
	IF
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE
)

// Token is a lexical token with an optional decoded literal value.
// Literal is a float64 for NUMBER tokens and a string for STRING tokens;
// it is nil for everything else. Line is 1-based.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any
	Line    int
}

func (t Token) String() string {
	return fmt.Sprintf("%d %s %v", t.Type, t.Lexeme, t.Literal)
}

// keywords map. The full keyword set is reserved even though `class`, `fun`,
// `return`, `super` and `this` have no production in this language subset;
// they lex as keywords and fail in the parser instead of becoming
// identifiers.
var keywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// Lexer scans a Lox source string into tokens.
type Lexer struct {
	src     string
	start   int // start index of the lexeme being scanned
	current int // index of the character under consideration
	line    int // 1-based
	tokens  []Token
	rep     *Reporter
}

// NewLexer creates a lexer for the given source. Lexical errors are sent to
// rep as they are found.
func NewLexer(src string, rep *Reporter) *Lexer {
	return &Lexer{src: src, line: 1, rep: rep}
}

// ScanTokens tokenizes the entire source. The slice always ends with an EOF
// token, even when errors were reported along the way.
func (l *Lexer) ScanTokens() []Token {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.tokens = append(l.tokens, Token{Type: EOF, Lexeme: "", Literal: nil, Line: l.line})
	return l.tokens
}

func (l *Lexer) isAtEnd() bool { return l.current >= len(l.src) }

func (l *Lexer) advance() byte {
	ch := l.src[l.current]
	l.current++
	return ch
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.src[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.src) {
		return 0
	}
	return l.src[l.current+1]
}

// match consumes the current character only when it equals expected.
func (l *Lexer) match(expected byte) bool {
	if l.isAtEnd() || l.src[l.current] != expected {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) addToken(tt TokenType, lit any) {
	lex := l.src[l.start:l.current]
	l.tokens = append(l.tokens, Token{Type: tt, Lexeme: lex, Literal: lit, Line: l.line})
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}
func isAlphaNum(b byte) bool { return isAlpha(b) || isDigit(b) }

func (l *Lexer) scanToken() {
	ch := l.advance()
	switch ch {
	case '(':
		l.addToken(LPAREN, nil)
	case ')':
		l.addToken(RPAREN, nil)
	case '{':
		l.addToken(LBRACE, nil)
	case '}':
		l.addToken(RBRACE, nil)
	case ',':
		l.addToken(COMMA, nil)
	case '.':
		l.addToken(PERIOD, nil)
	case '-':
		l.addToken(MINUS, nil)
	case '+':
		l.addToken(PLUS, nil)
	case ';':
		l.addToken(SEMICOLON, nil)
	case '*':
		l.addToken(STAR, nil)

	case '!':
		if l.match('=') {
			l.addToken(NEQ, nil)
		} else {
			l.addToken(BANG, nil)
		}
	case '=':
		if l.match('=') {
			l.addToken(EQ, nil)
		} else {
			l.addToken(ASSIGN, nil)
		}
	case '<':
		if l.match('=') {
			l.addToken(LESS_EQ, nil)
		} else {
			l.addToken(LESS, nil)
		}
	case '>':
		if l.match('=') {
			l.addToken(GREATER_EQ, nil)
		} else {
			l.addToken(GREATER, nil)
		}

	case '/':
		if l.match('/') {
			// Line comment: discard to end of line.
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		} else if l.match('*') {
			l.scanBlockComment()
		} else {
			l.addToken(SLASH, nil)
		}

	case ' ', '\r', '\t':
		// whitespace
	case '\n':
		l.line++

	case '"':
		l.scanString()

	default:
		if isDigit(ch) {
			l.scanNumber()
		} else if isAlpha(ch) {
			l.scanIdentifier()
		} else {
			// Consume the whole erroneous character — the full rune, not
			// just its first byte — so one bad character costs one error
			// and scanning continues to surface further errors.
			if ch >= utf8.RuneSelf {
				_, size := utf8.DecodeRuneInString(l.src[l.start:])
				l.current = l.start + size
			}
			l.rep.Error(l.line, "Unexpected character.")
		}
	}
}

// scanBlockComment consumes a C-style block comment. A depth counter tracks
// nesting so "/* /* */ */" closes correctly. No token is emitted.
func (l *Lexer) scanBlockComment() {
	depth := 1
	for depth > 0 {
		if l.isAtEnd() {
			l.rep.Error(l.line, "A block comment was not terminated before the end of the file.")
			return
		}
		if l.peek() == '\n' {
			l.line++
		}
		switch {
		case l.peek() == '*' && l.peekNext() == '/':
			l.advance()
			l.advance()
			depth--
		case l.peek() == '/' && l.peekNext() == '*':
			l.advance()
			l.advance()
			depth++
		default:
			l.advance()
		}
	}
}

// scanString consumes a string literal. Embedded newlines are allowed and
// bump the line counter. An unterminated string reports an error and emits
// no token.
func (l *Lexer) scanString() {
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.rep.Error(l.line, "A string was not terminated before the end of the file.")
		return
	}

	// The closing quote.
	l.advance()

	// Trim the surrounding quotes for the literal value.
	value := l.src[l.start+1 : l.current-1]
	l.addToken(STRING, value)
}

// scanNumber consumes one or more digits with an optional fractional part.
// A trailing '.' not followed by a digit is left unconsumed.
func (l *Lexer) scanNumber() {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance() // consume the '.'
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	value, _ := strconv.ParseFloat(l.src[l.start:l.current], 64)
	l.addToken(NUMBER, value)
}

func (l *Lexer) scanIdentifier() {
	for isAlphaNum(l.peek()) {
		l.advance()
	}

	text := l.src[l.start:l.current]
	if tt, ok := keywords[text]; ok {
		l.addToken(tt, nil)
		return
	}
	l.addToken(ID, nil)
}

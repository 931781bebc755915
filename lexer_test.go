// lexer_test.go
package lox

import (
	"bytes"
	"reflect"
	"testing"
)

func scan(t *testing.T, src string) ([]Token, *Reporter) {
	t.Helper()
	rep := NewReporter(&bytes.Buffer{})
	return NewLexer(src, rep).ScanTokens(), rep
}

func typesWithoutEOF(tokens []Token) []TokenType {
	if len(tokens) == 0 {
		return nil
	}
	end := len(tokens)
	if tokens[end-1].Type == EOF {
		end--
	}
	out := make([]TokenType, 0, end)
	for i := 0; i < end; i++ {
		out = append(out, tokens[i].Type)
	}
	return out
}

func wantTypes(t *testing.T, src string, want []TokenType) []Token {
	t.Helper()
	got, rep := scan(t, src)
	if rep.HadError {
		t.Fatalf("unexpected lex errors for %q: %v", src, rep.Diagnostics())
	}
	gotTypes := typesWithoutEOF(got)
	if !reflect.DeepEqual(gotTypes, want) {
		t.Fatalf("\nsource:\n%s\nwant types:\n%v\ngot types:\n%v\n", src, want, gotTypes)
	}
	return got
}

func Test_Lexer_Punctuation_And_Operators(t *testing.T) {
	wantTypes(t, "(){},.;+-*/", []TokenType{
		LPAREN, RPAREN, LBRACE, RBRACE, COMMA, PERIOD, SEMICOLON,
		PLUS, MINUS, STAR, SLASH,
	})
	wantTypes(t, "! != = == < <= > >=", []TokenType{
		BANG, NEQ, ASSIGN, EQ, LESS, LESS_EQ, GREATER, GREATER_EQ,
	})
}

func Test_Lexer_Keywords_And_Identifiers(t *testing.T) {
	got := wantTypes(t, "var x = true; while whileX if nilly nil",
		[]TokenType{VAR, ID, ASSIGN, TRUE, SEMICOLON, WHILE, ID, IF, ID, NIL})
	if got[1].Lexeme != "x" || got[6].Lexeme != "whileX" || got[8].Lexeme != "nilly" {
		t.Fatalf("identifier lexemes wrong: %v", got)
	}

	// The reserved words for features outside this subset still lex as
	// keywords, not identifiers.
	wantTypes(t, "class fun return super this for",
		[]TokenType{CLASS, FUN, RETURN, SUPER, THIS, FOR})
}

func Test_Lexer_Numbers(t *testing.T) {
	got := wantTypes(t, "123 45.67", []TokenType{NUMBER, NUMBER})
	if got[0].Literal.(float64) != 123 || got[1].Literal.(float64) != 45.67 {
		t.Fatalf("number literals wrong: %v", got)
	}

	// A trailing '.' is not part of the number.
	got = wantTypes(t, "123.", []TokenType{NUMBER, PERIOD})
	if got[0].Lexeme != "123" {
		t.Fatalf("trailing dot consumed into number: %q", got[0].Lexeme)
	}
}

func Test_Lexer_Strings(t *testing.T) {
	got := wantTypes(t, `"hello" "";`, []TokenType{STRING, STRING, SEMICOLON})
	if got[0].Literal.(string) != "hello" || got[1].Literal.(string) != "" {
		t.Fatalf("string literals wrong: %v", got)
	}
}

func Test_Lexer_String_With_Embedded_Newline(t *testing.T) {
	got := wantTypes(t, "\"a\nb\" x", []TokenType{STRING, ID})
	if got[0].Literal.(string) != "a\nb" {
		t.Fatalf("embedded newline lost: %q", got[0].Literal)
	}
	// The line counter advanced through the string.
	if got[1].Line != 2 {
		t.Fatalf("line after multi-line string = %d, want 2", got[1].Line)
	}
}

func Test_Lexer_Unterminated_String(t *testing.T) {
	tokens, rep := scan(t, `"never closed`)
	if !rep.HadError {
		t.Fatal("expected a lexical error")
	}
	if len(rep.Diagnostics()) != 1 {
		t.Fatalf("want exactly one error, got %v", rep.Diagnostics())
	}
	if got := typesWithoutEOF(tokens); len(got) != 0 {
		t.Fatalf("no token should be emitted for the broken string, got %v", got)
	}
}

func Test_Lexer_Line_Comment(t *testing.T) {
	got := wantTypes(t, "1 // the rest is ignored\n2", []TokenType{NUMBER, NUMBER})
	if got[1].Line != 2 {
		t.Fatalf("line tracking across comment wrong: %v", got)
	}
}

func Test_Lexer_Nested_Block_Comment(t *testing.T) {
	wantTypes(t, "1 /* outer /* inner */ still comment */ 2", []TokenType{NUMBER, NUMBER})

	got := wantTypes(t, "1 /* line\nbreaks\ninside */ 2", []TokenType{NUMBER, NUMBER})
	if got[1].Line != 3 {
		t.Fatalf("line after multi-line comment = %d, want 3", got[1].Line)
	}
}

func Test_Lexer_Unterminated_Block_Comment(t *testing.T) {
	tokens, rep := scan(t, "/* never closed")
	if n := len(rep.Diagnostics()); n != 1 {
		t.Fatalf("want exactly one lexical error, got %d: %v", n, rep.Diagnostics())
	}
	if got := typesWithoutEOF(tokens); len(got) != 0 {
		t.Fatalf("comment body must not produce tokens, got %v", got)
	}
}

func Test_Lexer_Unexpected_Characters_Do_Not_Stop_The_Scan(t *testing.T) {
	tokens, rep := scan(t, "@ 1 #\n2")
	if n := len(rep.Diagnostics()); n != 2 {
		t.Fatalf("want two independent errors, got %d: %v", n, rep.Diagnostics())
	}
	// The valid tokens around the bad characters are still produced.
	if got := typesWithoutEOF(tokens); !reflect.DeepEqual(got, []TokenType{NUMBER, NUMBER}) {
		t.Fatalf("scan did not continue past bad characters: %v", got)
	}
	if rep.Diagnostics()[0].Line != 1 || rep.Diagnostics()[1].Line != 1 {
		t.Fatalf("error lines wrong: %v", rep.Diagnostics())
	}
}

func Test_Lexer_MultiByte_Unexpected_Character(t *testing.T) {
	// A bad character spanning several UTF-8 bytes is consumed whole, so it
	// costs one error, not one per byte.
	tokens, rep := scan(t, "€ 1")
	if n := len(rep.Diagnostics()); n != 1 {
		t.Fatalf("want one error for one character, got %d: %v", n, rep.Diagnostics())
	}
	if got := typesWithoutEOF(tokens); !reflect.DeepEqual(got, []TokenType{NUMBER}) {
		t.Fatalf("scan did not continue past the bad character: %v", got)
	}

	tokens, rep = scan(t, "€@¢")
	if n := len(rep.Diagnostics()); n != 3 {
		t.Fatalf("want one error per character, got %d: %v", n, rep.Diagnostics())
	}
	if got := typesWithoutEOF(tokens); len(got) != 0 {
		t.Fatalf("no tokens expected, got %v", got)
	}
}

// Re-lexing the concatenation of each token's lexeme reproduces the
// significant characters of the source: same types, same literals.
// Comments and whitespace are gone by construction.
func Test_Lexer_Lexeme_RoundTrip(t *testing.T) {
	src := `var a = 1.5; // comment
/* block */ if (a >= 1) { print "ok"; } else { a = a + 2; }`

	first, rep := scan(t, src)
	if rep.HadError {
		t.Fatalf("unexpected errors: %v", rep.Diagnostics())
	}

	var rebuilt bytes.Buffer
	for _, tok := range first {
		if tok.Type == EOF {
			continue
		}
		rebuilt.WriteString(tok.Lexeme)
		rebuilt.WriteByte(' ')
	}

	second, rep2 := scan(t, rebuilt.String())
	if rep2.HadError {
		t.Fatalf("re-lex errors: %v", rep2.Diagnostics())
	}
	if !reflect.DeepEqual(typesWithoutEOF(first), typesWithoutEOF(second)) {
		t.Fatalf("token types changed across round-trip:\n%v\n%v", first, second)
	}
	for i := range second {
		if first[i].Type != EOF && !reflect.DeepEqual(first[i].Literal, second[i].Literal) {
			t.Fatalf("literal %d changed across round-trip: %v -> %v", i, first[i].Literal, second[i].Literal)
		}
	}
}

func Test_Lexer_EOF_Sentinel_Always_Present(t *testing.T) {
	for _, src := range []string{"", "   ", "// only a comment", `"broken`, "@"} {
		tokens, _ := scan(t, src)
		if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF {
			t.Fatalf("missing EOF sentinel for %q: %v", src, tokens)
		}
	}
}

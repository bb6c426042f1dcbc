// File: lexer_test.go
// Title: Lexer Tests
// Description: Tests for the context-sensitive C/AL lexer: literal
//              boundary cases for date/time tokens, keyword
//              classification by context, unterminated constructs,
//              Unicode identifiers, repeated tokenization, and trace
//              overhead benchmarks.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial lexer tests

package parser

import (
	"strings"
	"testing"
)

// tok is a compact expected-token pair for table tests
type tok struct {
	typ   TokenType
	value string
}

// checkTokens tokenizes input and compares the stream against expected
// tokens, ignoring the trailing EOF
func checkTokens(t *testing.T, input string, expected []tok) {
	t.Helper()
	tokens := NewLexer(input).Tokenize()

	if len(tokens) == 0 || tokens[len(tokens)-1].Type != TokenEOF {
		t.Fatalf("token stream does not end with EOF: %v", tokens)
	}
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("got %d tokens, want %d\ngot: %v", len(tokens), len(expected), tokens)
	}
	for i, want := range expected {
		if tokens[i].Type != want.typ || tokens[i].Value != want.value {
			t.Errorf("token %d = %s(%q), want %s(%q)",
				i, tokens[i].Type, tokens[i].Value, want.typ, want.value)
		}
	}
}

func TestTokenizeDateTimeLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tok
	}{
		{"six digit date", "311299D", []tok{{TokenDate, "311299D"}}},
		{"eight digit date", "31129999D", []tok{{TokenDate, "31129999D"}}},
		{"lowercase marker", "311299d", []tok{{TokenDate, "311299d"}}},
		{"undefined date", "0D", []tok{{TokenDate, "0D"}}},
		{"six digit time", "120000T", []tok{{TokenTime, "120000T"}}},
		{"nine digit time", "120000555T", []tok{{TokenTime, "120000555T"}}},
		{"undefined time", "0T", []tok{{TokenTime, "0T"}}},
		{"undefined datetime", "0DT", []tok{{TokenDateTime, "0DT"}}},
		{
			"undefined datetime keeps trailing digits separate",
			"0DT123",
			[]tok{{TokenDateTime, "0DT"}, {TokenInteger, "123"}},
		},
		{
			"combined datetime",
			"311299D120000T",
			[]tok{{TokenDateTime, "311299D120000T"}},
		},
		{
			"date with invalid time run",
			"311299D12T",
			[]tok{{TokenDate, "311299D"}, {TokenInteger, "12"}, {TokenIdentifier, "T"}},
		},
		{
			"five digits is not a date",
			"12345D",
			[]tok{{TokenInteger, "12345"}, {TokenIdentifier, "D"}},
		},
		{
			"trailing identifier char disqualifies",
			"311299Dx",
			[]tok{{TokenInteger, "311299"}, {TokenIdentifier, "Dx"}},
		},
		{
			"four digits is not a time",
			"1234T",
			[]tok{{TokenInteger, "1234"}, {TokenIdentifier, "T"}},
		},
		{
			"range does not eat the bounds",
			"1..5",
			[]tok{{TokenInteger, "1"}, {TokenRange, ".."}, {TokenInteger, "5"}},
		},
		{"decimal", "3.14", []tok{{TokenDecimal, "3.14"}}},
		{
			"integer then dot",
			"5.",
			[]tok{{TokenInteger, "5"}, {TokenDot, "."}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkTokens(t, tt.input, tt.expected)
		})
	}
}

func TestTokenizeStringsAndQuotedIdentifiers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tok
	}{
		{"simple string", "'hello'", []tok{{TokenString, "hello"}}},
		{"empty string", "''", []tok{{TokenString, ""}}},
		{"escaped quote", "'it''s'", []tok{{TokenString, "it's"}}},
		{"unterminated string", "'abc", []tok{{TokenUnknown, "'abc"}}},
		{"quoted identifier", `"No."`, []tok{{TokenQuotedIdentifier, "No."}}},
		{"unterminated quoted identifier", `"abc`, []tok{{TokenUnknown, `"abc`}}},
		{
			"unterminated string stops at line end",
			"'abc\nx",
			[]tok{{TokenUnknown, "'abc"}, {TokenIdentifier, "x"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkTokens(t, tt.input, tt.expected)
		})
	}
}

func TestTokenizeOperators(t *testing.T) {
	checkTokens(t, ":= :: .. <> <= >= < > = + - * / @ ; , ( ) : .", []tok{
		{TokenAssign, ":="},
		{TokenDoubleColon, "::"},
		{TokenRange, ".."},
		{TokenNotEquals, "<>"},
		{TokenLessEq, "<="},
		{TokenGreaterEq, ">="},
		{TokenLess, "<"},
		{TokenGreater, ">"},
		{TokenEquals, "="},
		{TokenPlus, "+"},
		{TokenMinus, "-"},
		{TokenStar, "*"},
		{TokenSlash, "/"},
		{TokenAt, "@"},
		{TokenSemicolon, ";"},
		{TokenComma, ","},
		{TokenLeftParen, "("},
		{TokenRightParen, ")"},
		{TokenColon, ":"},
		{TokenDot, "."},
	})
}

func TestTokenizeALConstructs(t *testing.T) {
	checkTokens(t, "enum INTERFACE Extends ? #if #endif internal", []tok{
		{TokenALKeyword, "enum"},
		{TokenALKeyword, "INTERFACE"},
		{TokenALKeyword, "Extends"},
		{TokenALTernary, "?"},
		{TokenALPreprocessor, "#if"},
		{TokenALPreprocessor, "#endif"},
		{TokenALAccessModifier, "internal"},
	})
}

func TestTokenizeUnicodeIdentifiers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tok
	}{
		{"danish letters", "Beløb", []tok{{TokenIdentifier, "Beløb"}}},
		{"german letters", "Größe", []tok{{TokenIdentifier, "Größe"}}},
		{"latin extended a", "Č_žal1", []tok{{TokenIdentifier, "Č_žal1"}}},
		{
			"multiplication sign breaks the word",
			"A×B",
			[]tok{{TokenIdentifier, "A"}, {TokenUnknown, "×"}, {TokenIdentifier, "B"}},
		},
		{
			"division sign breaks the word",
			"A÷B",
			[]tok{{TokenIdentifier, "A"}, {TokenUnknown, "÷"}, {TokenIdentifier, "B"}},
		},
		{
			"euro sign is not an identifier char",
			"Pris€",
			[]tok{{TokenIdentifier, "Pris"}, {TokenUnknown, "€"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkTokens(t, tt.input, tt.expected)
		})
	}
}

func TestContextSensitiveKeywords(t *testing.T) {
	t.Run("object keyword only at top level", func(t *testing.T) {
		tokens := NewLexer("OBJECT Table 18 Customer").Tokenize()
		if tokens[0].Type != TokenObject {
			t.Errorf("token 0 = %s, want OBJECT", tokens[0].Type)
		}
		// Kind and name are plain identifiers
		if tokens[1].Type != TokenIdentifier || tokens[3].Type != TokenIdentifier {
			t.Errorf("kind/name classified as %s/%s, want identifiers",
				tokens[1].Type, tokens[3].Type)
		}
	})

	t.Run("section keyword outside object level is an identifier", func(t *testing.T) {
		tokens := NewLexer("FIELDS").Tokenize()
		if tokens[0].Type != TokenIdentifier {
			t.Errorf("top-level FIELDS = %s, want IDENTIFIER", tokens[0].Type)
		}
	})

	t.Run("section keyword at object level", func(t *testing.T) {
		tokens := NewLexer("OBJECT Table 1 T\n{\n  FIELDS\n  {\n  }\n}").Tokenize()
		var found bool
		for _, tk := range tokens {
			if tk.Type == TokenSectionKeyword && tk.Value == "FIELDS" {
				found = true
			}
		}
		if !found {
			t.Error("FIELDS inside an object was not classified as a section keyword")
		}
	})

	t.Run("begin as field name stays an identifier", func(t *testing.T) {
		input := "OBJECT Table 1 T\n{\n  FIELDS\n  {\n    { 1 ; ;BEGIN ;Integer }\n  }\n}"
		tokens := NewLexer(input).Tokenize()
		for _, tk := range tokens {
			if tk.Type == TokenBegin {
				t.Fatalf("BEGIN in a structural column was classified as a keyword")
			}
		}
	})

	t.Run("case keyword only inside code", func(t *testing.T) {
		tokens := NewLexer("CASE").Tokenize()
		if tokens[0].Type != TokenIdentifier {
			t.Errorf("top-level CASE = %s, want IDENTIFIER", tokens[0].Type)
		}
	})
}

func TestTokenizeComments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tok
	}{
		{
			"line comment",
			"a // comment\nb",
			[]tok{{TokenIdentifier, "a"}, {TokenIdentifier, "b"}},
		},
		{
			"block comment",
			"a /* comment */ b",
			[]tok{{TokenIdentifier, "a"}, {TokenIdentifier, "b"}},
		},
		{
			"unterminated block comment",
			"a /* runs off",
			[]tok{{TokenIdentifier, "a"}, {TokenUnknown, "/*"}},
		},
		{
			"stray closing brace",
			"}",
			[]tok{{TokenUnknown, "}"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkTokens(t, tt.input, tt.expected)
		})
	}
}

func TestBraceCommentInsideCode(t *testing.T) {
	input := "OBJECT Codeunit 1 T\n{\n  CODE\n  {\n    BEGIN\n      { old comment }\n      Init;\n    END.\n  }\n}"
	tokens := NewLexer(input).Tokenize()

	for _, tk := range tokens {
		if tk.Value == "old" || tk.Value == "comment" {
			t.Fatalf("brace comment content leaked into the token stream: %v", tk)
		}
	}

	var sawInit bool
	for _, tk := range tokens {
		if tk.Type == TokenIdentifier && tk.Value == "Init" {
			sawInit = true
		}
	}
	if !sawInit {
		t.Error("statement after the brace comment was lost")
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens := NewLexer("ab\n  cd").Tokenize()

	if tokens[0].Line != 1 || tokens[0].Column != 1 || tokens[0].Position != 0 {
		t.Errorf("token 0 at line %d col %d offset %d, want 1/1/0",
			tokens[0].Line, tokens[0].Column, tokens[0].Position)
	}
	if tokens[1].Line != 2 || tokens[1].Column != 3 || tokens[1].Position != 5 {
		t.Errorf("token 1 at line %d col %d offset %d, want 2/3/5",
			tokens[1].Line, tokens[1].Column, tokens[1].Position)
	}
}

func TestTokenizeIsRepeatable(t *testing.T) {
	input := "OBJECT Table 1 T\n{\n  FIELDS\n  {\n    { 1 ; ;Name ;Text30 }\n  }\n}"
	lexer := NewLexer(input)

	first := lexer.Tokenize()
	second := lexer.Tokenize()

	if len(first) != len(second) {
		t.Fatalf("second run produced %d tokens, first produced %d", len(second), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("token %d differs between runs: %v vs %v", i, first[i], second[i])
		}
	}
	if !lexer.State().IsClean() {
		t.Error("state is not clean after tokenizing a well-formed object")
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	tokens := NewLexer("").Tokenize()
	if len(tokens) != 1 || tokens[0].Type != TokenEOF {
		t.Fatalf("empty input produced %v, want a single EOF", tokens)
	}
}

func TestTraceCallback(t *testing.T) {
	var tokenEvents, pushes, pops int
	lexer := NewLexer("OBJECT Codeunit 1 T\n{\n  CODE\n  {\n    BEGIN\n    END.\n  }\n}")
	lexer.SetTrace(func(event string, _ Token, transition *ContextTransition) {
		switch event {
		case "token":
			tokenEvents++
		case "push":
			if transition == nil {
				t.Error("push event without a transition")
			}
			pushes++
		case "pop":
			pops++
		}
	})
	lexer.Tokenize()

	if tokenEvents == 0 {
		t.Error("trace saw no token events")
	}
	if pushes == 0 || pops == 0 {
		t.Errorf("trace saw %d pushes and %d pops, want both > 0", pushes, pops)
	}
	if pushes != pops {
		t.Errorf("pushes (%d) and pops (%d) are unbalanced for well-formed input", pushes, pops)
	}
}

var benchmarkInput = "OBJECT Table 18 Customer\n{\n  PROPERTIES\n  {\n    CaptionML=ENU=Customer;\n    OnInsert=BEGIN\n               Init;\n             END;\n  }\n  FIELDS\n  {\n    { 1 ; ;No. ;Code20 ;CaptionML=ENU=No. }\n    { 2 ; ;Name ;Text50 }\n  }\n  CODE\n  {\n    BEGIN\n    END.\n  }\n}\n"

func BenchmarkTokenize(b *testing.B) {
	input := strings.Repeat(benchmarkInput, 1)
	lexer := NewLexer(input)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lexer.Tokenize()
	}
}

func BenchmarkTokenizeWithTrace(b *testing.B) {
	input := strings.Repeat(benchmarkInput, 1)
	lexer := NewLexer(input)
	lexer.SetTrace(func(string, Token, *ContextTransition) {})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lexer.Tokenize()
	}
}

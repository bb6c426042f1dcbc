// File: token.go
// Title: C/AL Token Definitions
// Description: Defines the token types produced by the C/AL lexer,
//              including the context-sensitive keyword kinds, date/time
//              literal kinds, AL-only rejection kinds, and the Unknown
//              kind used for malformed input.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial token definitions

package parser

import "fmt"

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenUnknown

	// Identifiers and literals
	TokenIdentifier       // Name, "Posting Date" content
	TokenQuotedIdentifier // "No." (value holds the inner text)
	TokenString           // 'string literal'
	TokenInteger          // 123
	TokenDecimal          // 123.45
	TokenDate             // 311299D, 0D
	TokenTime             // 120000T, 0T
	TokenDateTime         // 311299D120000T, 0DT

	// Structure keywords (context-sensitive)
	TokenObject         // OBJECT
	TokenSectionKeyword // PROPERTIES, FIELDS, KEYS, CODE, ...

	// Code keywords
	TokenBegin
	TokenEnd
	TokenCase
	TokenOf
	TokenVar
	TokenProcedure
	TokenFunction
	TokenLocal
	TokenIf
	TokenThen
	TokenElse
	TokenFor
	TokenTo
	TokenDownTo
	TokenWhile
	TokenDo
	TokenRepeat
	TokenUntil
	TokenWith
	TokenExit
	TokenArray
	TokenTemporary

	// Operator keywords
	TokenNot
	TokenAnd
	TokenOr
	TokenXor
	TokenDiv
	TokenMod

	// AL-only constructs (recognized so the parser can reject them)
	TokenALKeyword        // ENUM, INTERFACE, EXTENDS, MODIFY, IMPLEMENTS
	TokenALAccessModifier // INTERNAL, PROTECTED, PUBLIC
	TokenALTernary        // ?
	TokenALPreprocessor   // #if, #else, #endif, ...

	// Delimiters
	TokenLeftBrace    // {
	TokenRightBrace   // }
	TokenLeftBracket  // [
	TokenRightBracket // ]
	TokenLeftParen    // (
	TokenRightParen   // )
	TokenSemicolon    // ;
	TokenColon        // :
	TokenComma        // ,
	TokenDot          // .
	TokenRange        // ..
	TokenDoubleColon  // ::
	TokenAt           // @

	// Operators
	TokenEquals    // =
	TokenAssign    // :=
	TokenNotEquals // <>
	TokenLess      // <
	TokenLessEq    // <=
	TokenGreater   // >
	TokenGreaterEq // >=
	TokenPlus      // +
	TokenMinus     // -
	TokenStar      // *
	TokenSlash     // /
)

// Token represents a lexical token with position information.
// Value holds the raw source text and may contain user-authored content;
// it must never reach an externally observable message unsanitized.
type Token struct {
	Type     TokenType // Token type
	Value    string    // Token text (raw)
	Position int       // Byte offset in input (0-based)
	Line     int       // Line number (1-based)
	Column   int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenUnknown:
		return fmt.Sprintf("UNKNOWN(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenUnknown:
		return "UNKNOWN"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenQuotedIdentifier:
		return "QUOTED_IDENTIFIER"
	case TokenString:
		return "STRING"
	case TokenInteger:
		return "INTEGER"
	case TokenDecimal:
		return "DECIMAL"
	case TokenDate:
		return "DATE"
	case TokenTime:
		return "TIME"
	case TokenDateTime:
		return "DATETIME"
	case TokenObject:
		return "OBJECT"
	case TokenSectionKeyword:
		return "SECTION_KEYWORD"
	case TokenBegin:
		return "BEGIN"
	case TokenEnd:
		return "END"
	case TokenCase:
		return "CASE"
	case TokenOf:
		return "OF"
	case TokenVar:
		return "VAR"
	case TokenProcedure:
		return "PROCEDURE"
	case TokenFunction:
		return "FUNCTION"
	case TokenLocal:
		return "LOCAL"
	case TokenIf:
		return "IF"
	case TokenThen:
		return "THEN"
	case TokenElse:
		return "ELSE"
	case TokenFor:
		return "FOR"
	case TokenTo:
		return "TO"
	case TokenDownTo:
		return "DOWNTO"
	case TokenWhile:
		return "WHILE"
	case TokenDo:
		return "DO"
	case TokenRepeat:
		return "REPEAT"
	case TokenUntil:
		return "UNTIL"
	case TokenWith:
		return "WITH"
	case TokenExit:
		return "EXIT"
	case TokenArray:
		return "ARRAY"
	case TokenTemporary:
		return "TEMPORARY"
	case TokenNot:
		return "NOT"
	case TokenAnd:
		return "AND"
	case TokenOr:
		return "OR"
	case TokenXor:
		return "XOR"
	case TokenDiv:
		return "DIV"
	case TokenMod:
		return "MOD"
	case TokenALKeyword:
		return "AL_KEYWORD"
	case TokenALAccessModifier:
		return "AL_ACCESS_MODIFIER"
	case TokenALTernary:
		return "AL_TERNARY"
	case TokenALPreprocessor:
		return "AL_PREPROCESSOR"
	case TokenLeftBrace:
		return "LEFT_BRACE"
	case TokenRightBrace:
		return "RIGHT_BRACE"
	case TokenLeftBracket:
		return "LEFT_BRACKET"
	case TokenRightBracket:
		return "RIGHT_BRACKET"
	case TokenLeftParen:
		return "LEFT_PAREN"
	case TokenRightParen:
		return "RIGHT_PAREN"
	case TokenSemicolon:
		return "SEMICOLON"
	case TokenColon:
		return "COLON"
	case TokenComma:
		return "COMMA"
	case TokenDot:
		return "DOT"
	case TokenRange:
		return "RANGE"
	case TokenDoubleColon:
		return "DOUBLE_COLON"
	case TokenAt:
		return "AT"
	case TokenEquals:
		return "EQUALS"
	case TokenAssign:
		return "ASSIGN"
	case TokenNotEquals:
		return "NOT_EQUALS"
	case TokenLess:
		return "LESS"
	case TokenLessEq:
		return "LESS_EQ"
	case TokenGreater:
		return "GREATER"
	case TokenGreaterEq:
		return "GREATER_EQ"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "STAR"
	case TokenSlash:
		return "SLASH"
	default:
		return "UNKNOWN_TYPE"
	}
}

// File: sanitize_test.go
// Title: Sanitization Tests
// Description: Tests for the error message sanitization boundary: length
//              placeholders, path stripping, reserved ID removal, token
//              rendering, and the parse error factory.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial sanitization tests

package parser

import (
	"strings"
	"testing"
)

func TestSanitizeContent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"short text passes", "Amount", "Amount"},
		{"twenty runes pass", strings.Repeat("a", 20), strings.Repeat("a", 20)},
		{"twenty-one runes collapse", strings.Repeat("a", 21), "[content sanitized, 21 chars]"},
		{"rune counting, not bytes", strings.Repeat("ø", 15), strings.Repeat("ø", 15)},
		{"windows path", `C:\T\a`, "[path removed]"},
		{"unc path", `\\srv\share`, "[path removed]"},
		{"unix path", "/etc/passwd", "[path removed]"},
		{"single segment is kept", "a/b", "a/b"},
		{"reserved id removed", "2000000", "[id removed]"},
		{"id floor removed", "1000000", "[id removed]"},
		{"below floor kept", "999999", "999999"},
		{"small number kept", "18", "18"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeContent(tt.input); got != tt.want {
				t.Errorf("SanitizeContent(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeContentLongPathCollapses(t *testing.T) {
	// The path is stripped first; only the short remainder is shown
	got := SanitizeContent(`C:\Users\someone\Documents\very\deep\tree\file.txt`)
	if strings.Contains(got, "someone") || strings.Contains(got, "file.txt") {
		t.Errorf("SanitizeContent leaked path content: %q", got)
	}
}

func TestDescribeToken(t *testing.T) {
	tests := []struct {
		name  string
		token Token
		want  string
	}{
		{"eof", Token{Type: TokenEOF}, "end of input"},
		{"semicolon", Token{Type: TokenSemicolon, Value: ";"}, "';'"},
		{"keyword", Token{Type: TokenBegin, Value: "BEGIN"}, "'BEGIN'"},
		{"identifier", Token{Type: TokenIdentifier, Value: "Name"}, `IDENTIFIER "Name"`},
		{"unknown", Token{Type: TokenUnknown, Value: "}"}, `UNKNOWN token "}"`},
		{"reserved integer", Token{Type: TokenInteger, Value: "2000000"}, `INTEGER "[id removed]"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := describeToken(tt.token); got != tt.want {
				t.Errorf("describeToken(%v) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestNewParseError(t *testing.T) {
	tok := Token{Type: TokenIdentifier, Value: "x", Line: 3, Column: 7}
	err := newParseError(tok, "found %s near %s", `C:\T\a`, "ok")

	if err.Line != 3 || err.Column != 7 {
		t.Errorf("position = %d/%d, want 3/7", err.Line, err.Column)
	}
	if err.Message != "found [path removed] near ok" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Error() != "line 3, column 7: found [path removed] near ok" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Token != tok {
		t.Error("raw token was not preserved for internal consumers")
	}
}

func TestNewParseErrorSanitizesOnlyStrings(t *testing.T) {
	err := newParseError(Token{Line: 1, Column: 1}, "limit is %d, got %q", 10, strings.Repeat("z", 30))
	if !strings.Contains(err.Message, "limit is 10") {
		t.Errorf("integer argument mangled: %q", err.Message)
	}
	if strings.Contains(err.Message, "zzz") {
		t.Errorf("long string argument leaked: %q", err.Message)
	}
}

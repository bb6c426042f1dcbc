// File: stringx_test.go
// Title: String Utility Tests
// Description: Tests for the string helper functions.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial string utility tests

package stringx

import (
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"a", false},
		{" a ", false},
	}
	for _, tt := range tests {
		if got := IsBlank(tt.input); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if got := IsNotBlank(tt.input); got == tt.want {
			t.Errorf("IsNotBlank(%q) = %v, want %v", tt.input, got, !tt.want)
		}
	}
}

func TestIsEmpty(t *testing.T) {
	if !IsEmpty("") {
		t.Error("IsEmpty(\"\") = false")
	}
	if IsEmpty(" ") {
		t.Error("IsEmpty(\" \") = true")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		want     string
	}{
		{"no truncation needed", "short", 10, "...", "short"},
		{"exact length", "12345", 5, "...", "12345"},
		{"truncated", "1234567890", 8, "...", "12345..."},
		{"multibyte runes", "æøåæøåæøå", 5, "..", "æøå.."},
		{"maxLen below ellipsis", "abcdef", 2, "...", ".."},
		{"negative maxLen", "abc", -1, "...", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.want {
				t.Errorf("Truncate(%q, %d, %q) = %q, want %q",
					tt.input, tt.maxLen, tt.ellipsis, got, tt.want)
			}
		})
	}
}

func TestEqualsIgnoreCase(t *testing.T) {
	if !EqualsIgnoreCase("BEGIN", "begin") {
		t.Error("EqualsIgnoreCase(BEGIN, begin) = false")
	}
	if EqualsIgnoreCase("BEGIN", "END") {
		t.Error("EqualsIgnoreCase(BEGIN, END) = true")
	}
}


// File: stringx.go
// Title: String Utility Functions
// Description: Provides string helper functions used across the C/AL
//              language front end, including blank checks, truncation,
//              and case-insensitive comparisons for the case-insensitive
//              C/AL keyword space.
// Author: klauskaan
// Version: v0.1.1
// Created: 2025-02-10
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-10 v0.1.0: Initial string utilities
// - 2025-02-11 v0.1.1: Trimmed helpers without callers

package stringx

import (
	"strings"
	"unicode/utf8"
)

// IsEmpty checks if a string has zero length
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank checks if a string is empty or contains only whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNotBlank checks if a string contains at least one non-whitespace character
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Truncate shortens a string to maxLen runes, appending ellipsis if truncated.
// A maxLen smaller than the ellipsis length returns the bare ellipsis prefix.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen < 0 {
		maxLen = 0
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if maxLen <= ellipsisLen {
		runes := []rune(ellipsis)
		if maxLen < len(runes) {
			return string(runes[:maxLen])
		}
		return ellipsis
	}

	runes := []rune(s)
	return string(runes[:maxLen-ellipsisLen]) + ellipsis
}

// EqualsIgnoreCase compares two strings ignoring case.
// C/AL keywords and section names compare this way.
func EqualsIgnoreCase(a, b string) bool {
	return strings.EqualFold(a, b)
}

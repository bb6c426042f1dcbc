// File: sanitize.go
// Title: Error Message Sanitization
// Description: Sanitizes source-derived text before it appears in parse
//              error messages. Long content is replaced with a length
//              placeholder, filesystem paths are stripped, and reserved
//              numeric object identifiers are removed.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial sanitization boundary

package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"
)

// maxLiteralLength is the longest source-derived snippet allowed
// verbatim in an error message
const maxLiteralLength = 20

// reservedIDFloor marks the start of the reserved numeric object ID
// range
const reservedIDFloor = 1000000

var (
	windowsPathPattern = regexp.MustCompile(`[A-Za-z]:\\[^\s"']*`)
	uncPathPattern     = regexp.MustCompile(`\\\\[^\s"']+`)
	unixPathPattern    = regexp.MustCompile(`(?:/[\w.~-]+){2,}/?`)
	numberPattern      = regexp.MustCompile(`\d+`)
)

// SanitizeContent makes source-derived text safe for error messages.
// Paths and reserved numeric IDs are removed first; if the remainder is
// still longer than the literal limit it is replaced entirely by a
// length placeholder.
func SanitizeContent(s string) string {
	cleaned := windowsPathPattern.ReplaceAllString(s, "[path removed]")
	cleaned = uncPathPattern.ReplaceAllString(cleaned, "[path removed]")
	cleaned = unixPathPattern.ReplaceAllString(cleaned, "[path removed]")
	cleaned = numberPattern.ReplaceAllStringFunc(cleaned, func(digits string) string {
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil || n >= reservedIDFloor {
			return "[id removed]"
		}
		return digits
	})
	if utf8.RuneCountInString(cleaned) > maxLiteralLength {
		return fmt.Sprintf("[content sanitized, %d chars]", utf8.RuneCountInString(s))
	}
	return cleaned
}

// describeToken renders a token for an error message. Fixed-text tokens
// (punctuation, operators, keywords) are safe verbatim; content-bearing
// tokens get their kind name with a sanitized value; Unknown tokens are
// named without echoing what was consumed at length.
func describeToken(tok Token) string {
	switch tok.Type {
	case TokenEOF:
		return "end of input"
	case TokenUnknown:
		return fmt.Sprintf("UNKNOWN token %q", SanitizeContent(tok.Value))
	case TokenIdentifier, TokenQuotedIdentifier, TokenString,
		TokenInteger, TokenDecimal, TokenDate, TokenTime, TokenDateTime,
		TokenALPreprocessor:
		return fmt.Sprintf("%s %q", tok.Type.String(), SanitizeContent(tok.Value))
	default:
		return fmt.Sprintf("'%s'", tok.Value)
	}
}

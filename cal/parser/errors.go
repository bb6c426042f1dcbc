// File: errors.go
// Title: Parse Error Type
// Description: Defines ParseError and its single construction path.
//              Every message string passes through the sanitization
//              boundary before it becomes externally observable.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial parse error type

package parser

import "fmt"

// ParseError describes a recoverable parse failure. Message is
// sanitized and safe to log or display. Token keeps the raw offending
// token for in-process consumers; it must not be interpolated into
// user-facing output.
type ParseError struct {
	Message string
	Line    int
	Column  int
	Token   Token
}

// Error implements the error interface
func (e ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// newParseError is the only place parse errors are built. All string
// arguments are sanitized before formatting so no call site can leak
// raw source content into a message by accident.
func newParseError(tok Token, format string, args ...interface{}) ParseError {
	sanitized := make([]interface{}, len(args))
	for i, arg := range args {
		if s, ok := arg.(string); ok {
			sanitized[i] = SanitizeContent(s)
			continue
		}
		sanitized[i] = arg
	}
	return ParseError{
		Message: fmt.Sprintf(format, sanitized...),
		Line:    tok.Line,
		Column:  tok.Column,
		Token:   tok,
	}
}

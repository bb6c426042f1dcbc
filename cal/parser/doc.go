// File: doc.go
// Title: C/AL Parser Package Documentation
// Description: Package documentation for the C/AL lexer and parser.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial parser package

/*
Package parser implements a lexer and recursive-descent parser for C/AL
object text in the classic export format.

C/AL keywords are context-sensitive: FIELDS starts a section at object
level but is a plain identifier inside a code block, and BEGIN in a
structural row column is a field name, not a block opener. The lexer
therefore runs a context state machine (LexerState) tracking the nesting
context, structural row columns, and property-value mode, and classifies
each word against it. Tokenization never fails; malformed constructs
become Unknown tokens and the stream always ends with EOF.

The parser builds an ast.Document, collecting recoverable ParseError
values instead of stopping at the first problem. Error messages pass
through a sanitization boundary: long source content is replaced with a
length placeholder, filesystem paths are stripped, and reserved numeric
object IDs are removed, so messages are safe to log and display.

	p := parser.New()
	doc := p.Parse(source)
	for _, err := range p.Errors() {
		fmt.Println(err)
	}
*/
package parser

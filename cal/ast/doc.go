// File: doc.go
// Title: C/AL AST Package Documentation
// Description: Package documentation for the C/AL abstract syntax tree.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial AST package

/*
Package ast defines the abstract syntax tree produced by the C/AL parser.

The tree is rooted at Document and owns its children exclusively; there
are no cycles or parent back-references. All nodes implement Node with a
source-like String() rendering, a Position(), and visitor Accept().
Concrete visitors embed BaseVisitor, override only the methods they
need, and traverse with Walk:

	type counter struct {
		ast.BaseVisitor
		n int
	}

	func (c *counter) VisitIdentifier(e *ast.IdentifierExpression) interface{} {
		c.n++
		return nil
	}

	ast.Walk(&counter{}, doc)
*/
package ast

// File: expressions.go
// Title: C/AL Expression Nodes
// Description: Defines the expression variants of the C/AL AST: binary
//              and unary operations, member access (both '.' and the
//              '::' option qualifier), array access with expression
//              indices, calls, identifiers, and literals.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial expression node definitions

package ast

import (
	"fmt"
	"strings"
)

// Expression is the base interface for all expression nodes
type Expression interface {
	Node
	exprNode() // marker method
}

// LiteralKind identifies the kind of a literal expression
type LiteralKind int

const (
	LiteralInteger LiteralKind = iota
	LiteralDecimal
	LiteralString
	LiteralDate
	LiteralTime
	LiteralDateTime
)

// String returns the name of the literal kind
func (lk LiteralKind) String() string {
	switch lk {
	case LiteralInteger:
		return "integer"
	case LiteralDecimal:
		return "decimal"
	case LiteralString:
		return "string"
	case LiteralDate:
		return "date"
	case LiteralTime:
		return "time"
	case LiteralDateTime:
		return "datetime"
	default:
		return "unknown"
	}
}

// BinaryExpression represents left op right
type BinaryExpression struct {
	Left  Expression
	Op    string
	Right Expression
	Pos   Position
}

// UnaryExpression represents op operand (NOT x, -x)
type UnaryExpression struct {
	Op      string
	Operand Expression
	Pos     Position
}

// MemberExpression represents target.member or target::member.
// Op is "." for record member access and "::" for option values.
type MemberExpression struct {
	Target Expression
	Member string
	Op     string
	Pos    Position
}

// ArrayAccessExpression represents target[index1, index2, ...]
type ArrayAccessExpression struct {
	Target  Expression
	Indices []Expression
	Pos     Position
}

// CallExpression represents target(arg1, arg2, ...)
type CallExpression struct {
	Target    Expression
	Arguments []Expression
	Pos       Position
}

// IdentifierExpression represents a plain or quoted identifier
type IdentifierExpression struct {
	Name   string
	Quoted bool
	Pos    Position
}

// LiteralExpression represents a literal value; Raw keeps the source text
type LiteralExpression struct {
	Kind LiteralKind
	Raw  string
	Pos  Position
}

// BinaryExpression

func (e *BinaryExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Op, e.Right.String())
}

func (e *BinaryExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinary(e)
}

func (e *BinaryExpression) Position() Position { return e.Pos }
func (e *BinaryExpression) exprNode()          {}

// UnaryExpression

func (e *UnaryExpression) String() string {
	if strings.EqualFold(e.Op, "NOT") {
		return fmt.Sprintf("(%s %s)", e.Op, e.Operand.String())
	}
	return fmt.Sprintf("(%s%s)", e.Op, e.Operand.String())
}

func (e *UnaryExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitUnary(e)
}

func (e *UnaryExpression) Position() Position { return e.Pos }
func (e *UnaryExpression) exprNode()          {}

// MemberExpression

func (e *MemberExpression) String() string {
	return fmt.Sprintf("%s%s%s", e.Target.String(), e.Op, e.Member)
}

func (e *MemberExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitMember(e)
}

func (e *MemberExpression) Position() Position { return e.Pos }
func (e *MemberExpression) exprNode()          {}

// ArrayAccessExpression

func (e *ArrayAccessExpression) String() string {
	indices := make([]string, 0, len(e.Indices))
	for _, idx := range e.Indices {
		indices = append(indices, idx.String())
	}
	return fmt.Sprintf("%s[%s]", e.Target.String(), strings.Join(indices, ","))
}

func (e *ArrayAccessExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitArrayAccess(e)
}

func (e *ArrayAccessExpression) Position() Position { return e.Pos }
func (e *ArrayAccessExpression) exprNode()          {}

// CallExpression

func (e *CallExpression) String() string {
	args := make([]string, 0, len(e.Arguments))
	for _, a := range e.Arguments {
		args = append(args, a.String())
	}
	return fmt.Sprintf("%s(%s)", e.Target.String(), strings.Join(args, ","))
}

func (e *CallExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitCallExpression(e)
}

func (e *CallExpression) Position() Position { return e.Pos }
func (e *CallExpression) exprNode()          {}

// IdentifierExpression

func (e *IdentifierExpression) String() string {
	if e.Quoted {
		return fmt.Sprintf("%q", e.Name)
	}
	return e.Name
}

func (e *IdentifierExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitIdentifier(e)
}

func (e *IdentifierExpression) Position() Position { return e.Pos }
func (e *IdentifierExpression) exprNode()          {}

// LiteralExpression

func (e *LiteralExpression) String() string {
	if e.Kind == LiteralString {
		return fmt.Sprintf("'%s'", e.Raw)
	}
	return e.Raw
}

func (e *LiteralExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitLiteral(e)
}

func (e *LiteralExpression) Position() Position { return e.Pos }
func (e *LiteralExpression) exprNode()          {}

// File: statements.go
// Title: C/AL Statement Nodes
// Description: Defines the statement variants of the C/AL AST: assignment,
//              control flow (IF/CASE/FOR/WHILE/REPEAT/WITH), procedure
//              calls, blocks, and EXIT.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial statement node definitions

package ast

import (
	"fmt"
	"strings"
)

// Statement is the base interface for all statement nodes
type Statement interface {
	Node
	stmtNode() // marker method
}

// AssignmentStatement represents target := value
type AssignmentStatement struct {
	Target Expression
	Value  Expression
	Pos    Position
}

// IfStatement represents IF condition THEN statement [ELSE statement]
type IfStatement struct {
	Condition Expression
	Then      Statement
	Else      Statement // nil when no ELSE branch
	Pos       Position
}

// CaseStatement represents CASE expr OF branches [ELSE statements] END
type CaseStatement struct {
	Expr     Expression
	Branches []*CaseBranch
	Else     []Statement
	Pos      Position
}

// CaseBranch is one value-list branch of a CASE statement
type CaseBranch struct {
	Values []Expression
	Body   Statement // nil for an empty branch
	Pos    Position
}

// ForStatement represents FOR var := from TO|DOWNTO to DO statement
type ForStatement struct {
	Variable Expression
	From     Expression
	To       Expression
	Down     bool // DOWNTO instead of TO
	Body     Statement
	Pos      Position
}

// WhileStatement represents WHILE condition DO statement
type WhileStatement struct {
	Condition Expression
	Body      Statement
	Pos       Position
}

// RepeatStatement represents REPEAT statements UNTIL condition
type RepeatStatement struct {
	Body      []Statement
	Condition Expression
	Pos       Position
}

// WithStatement represents WITH record DO statement; arbitrarily nestable
type WithStatement struct {
	Record Expression
	Body   Statement
	Pos    Position
}

// CallStatement is a bare procedure call used as a statement
type CallStatement struct {
	Call Expression
	Pos  Position
}

// BlockStatement represents BEGIN statements END
type BlockStatement struct {
	Statements []Statement
	Pos        Position
}

// ExitStatement represents EXIT or EXIT(value)
type ExitStatement struct {
	Value Expression // nil for a plain EXIT
	Pos   Position
}

// AssignmentStatement

func (s *AssignmentStatement) String() string {
	return fmt.Sprintf("%s := %s", s.Target.String(), s.Value.String())
}

func (s *AssignmentStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitAssignment(s)
}

func (s *AssignmentStatement) Position() Position { return s.Pos }
func (s *AssignmentStatement) stmtNode()          {}

// IfStatement

func (s *IfStatement) String() string {
	result := fmt.Sprintf("IF %s THEN %s", s.Condition.String(), stmtString(s.Then))
	if s.Else != nil {
		result += " ELSE " + stmtString(s.Else)
	}
	return result
}

func (s *IfStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitIf(s)
}

func (s *IfStatement) Position() Position { return s.Pos }
func (s *IfStatement) stmtNode()          {}

// CaseStatement

func (s *CaseStatement) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CASE %s OF", s.Expr.String())
	for _, br := range s.Branches {
		b.WriteString(" " + br.String())
	}
	if len(s.Else) > 0 {
		b.WriteString(" ELSE")
		for _, stmt := range s.Else {
			b.WriteString(" " + stmt.String() + ";")
		}
	}
	b.WriteString(" END")
	return b.String()
}

func (s *CaseStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitCase(s)
}

func (s *CaseStatement) Position() Position { return s.Pos }
func (s *CaseStatement) stmtNode()          {}

// CaseBranch

func (cb *CaseBranch) String() string {
	values := make([]string, 0, len(cb.Values))
	for _, v := range cb.Values {
		values = append(values, v.String())
	}
	return fmt.Sprintf("%s: %s;", strings.Join(values, ","), stmtString(cb.Body))
}

func (cb *CaseBranch) Accept(visitor Visitor) interface{} {
	return visitor.VisitCaseBranch(cb)
}

func (cb *CaseBranch) Position() Position { return cb.Pos }

// ForStatement

func (s *ForStatement) String() string {
	direction := "TO"
	if s.Down {
		direction = "DOWNTO"
	}
	return fmt.Sprintf("FOR %s := %s %s %s DO %s",
		s.Variable.String(), s.From.String(), direction, s.To.String(), stmtString(s.Body))
}

func (s *ForStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitFor(s)
}

func (s *ForStatement) Position() Position { return s.Pos }
func (s *ForStatement) stmtNode()          {}

// WhileStatement

func (s *WhileStatement) String() string {
	return fmt.Sprintf("WHILE %s DO %s", s.Condition.String(), stmtString(s.Body))
}

func (s *WhileStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitWhile(s)
}

func (s *WhileStatement) Position() Position { return s.Pos }
func (s *WhileStatement) stmtNode()          {}

// RepeatStatement

func (s *RepeatStatement) String() string {
	var b strings.Builder
	b.WriteString("REPEAT")
	for _, stmt := range s.Body {
		b.WriteString(" " + stmt.String() + ";")
	}
	fmt.Fprintf(&b, " UNTIL %s", s.Condition.String())
	return b.String()
}

func (s *RepeatStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitRepeat(s)
}

func (s *RepeatStatement) Position() Position { return s.Pos }
func (s *RepeatStatement) stmtNode()          {}

// WithStatement

func (s *WithStatement) String() string {
	return fmt.Sprintf("WITH %s DO %s", s.Record.String(), stmtString(s.Body))
}

func (s *WithStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitWith(s)
}

func (s *WithStatement) Position() Position { return s.Pos }
func (s *WithStatement) stmtNode()          {}

// CallStatement

func (s *CallStatement) String() string {
	return s.Call.String()
}

func (s *CallStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitCallStatement(s)
}

func (s *CallStatement) Position() Position { return s.Pos }
func (s *CallStatement) stmtNode()          {}

// BlockStatement

func (s *BlockStatement) String() string {
	var b strings.Builder
	b.WriteString("BEGIN")
	for _, stmt := range s.Statements {
		b.WriteString(" " + stmt.String() + ";")
	}
	b.WriteString(" END")
	return b.String()
}

func (s *BlockStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitBlock(s)
}

func (s *BlockStatement) Position() Position { return s.Pos }
func (s *BlockStatement) stmtNode()          {}

// ExitStatement

func (s *ExitStatement) String() string {
	if s.Value == nil {
		return "EXIT"
	}
	return fmt.Sprintf("EXIT(%s)", s.Value.String())
}

func (s *ExitStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitExit(s)
}

func (s *ExitStatement) Position() Position { return s.Pos }
func (s *ExitStatement) stmtNode()          {}

// stmtString renders a possibly nil statement
func stmtString(s Statement) string {
	if s == nil {
		return ""
	}
	return s.String()
}

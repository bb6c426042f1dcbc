// File: ast_test.go
// Title: AST Tests
// Description: Tests for AST node string rendering, array type naming,
//              object kind parsing, and the visitor traversal.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial AST tests

package ast

import (
	"strings"
	"testing"
)

func TestParseObjectKind(t *testing.T) {
	tests := []struct {
		input string
		want  ObjectKind
	}{
		{"Table", ObjectKindTable},
		{"TABLE", ObjectKindTable},
		{" codeunit ", ObjectKindCodeunit},
		{"Form", ObjectKindForm},
		{"Page", ObjectKindPage},
		{"Report", ObjectKindReport},
		{"Dataport", ObjectKindDataport},
		{"XMLport", ObjectKindXMLport},
		{"Query", ObjectKindQuery},
		{"MenuSuite", ObjectKindMenuSuite},
		{"Widget", ObjectKindUnknown},
		{"", ObjectKindUnknown},
	}
	for _, tt := range tests {
		if got := ParseObjectKind(tt.input); got != tt.want {
			t.Errorf("ParseObjectKind(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestArrayTypeName(t *testing.T) {
	tests := []struct {
		dims []int
		elem string
		want string
	}{
		{[]int{5}, "Decimal", "ARRAY[5] OF Decimal"},
		{[]int{2, 3}, "Integer", "ARRAY[2,3] OF Integer"},
		{[]int{1, 2, 3, 4}, "Text", "ARRAY[1,2,3,4] OF Text"},
	}
	for _, tt := range tests {
		if got := ArrayTypeName(tt.dims, tt.elem); got != tt.want {
			t.Errorf("ArrayTypeName(%v, %q) = %q, want %q", tt.dims, tt.elem, got, tt.want)
		}
	}
}

func TestDataTypeIsArray(t *testing.T) {
	plain := &DataType{TypeName: "Integer"}
	if plain.IsArray() {
		t.Error("plain type reports IsArray")
	}
	arr := &DataType{TypeName: "ARRAY[2] OF Integer", Dimensions: []int{2}, Length: 2}
	if !arr.IsArray() {
		t.Error("array type does not report IsArray")
	}
}

func TestStatementStrings(t *testing.T) {
	counter := &IdentifierExpression{Name: "i"}
	one := &LiteralExpression{Kind: LiteralInteger, Raw: "1"}
	ten := &LiteralExpression{Kind: LiteralInteger, Raw: "10"}

	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			"assignment",
			&AssignmentStatement{Target: counter, Value: one},
			"i := 1",
		},
		{
			"if without else",
			&IfStatement{Condition: counter, Then: &ExitStatement{}},
			"IF i THEN EXIT",
		},
		{
			"for downto",
			&ForStatement{Variable: counter, From: ten, To: one, Down: true,
				Body: &ExitStatement{Value: counter}},
			"FOR i := 10 DOWNTO 1 DO EXIT(i)",
		},
		{
			"while",
			&WhileStatement{Condition: counter, Body: &BlockStatement{}},
			"WHILE i DO BEGIN END",
		},
		{
			"with",
			&WithStatement{Record: &IdentifierExpression{Name: "Rec"},
				Body: &CallStatement{Call: &IdentifierExpression{Name: "Init"}}},
			"WITH Rec DO Init",
		},
		{
			"binary and member",
			&BinaryExpression{
				Left:  &MemberExpression{Target: &IdentifierExpression{Name: "Status"}, Member: "Open", Op: "::"},
				Op:    "=",
				Right: one,
			},
			"(Status::Open = 1)",
		},
		{
			"string literal",
			&LiteralExpression{Kind: LiteralString, Raw: "hi"},
			"'hi'",
		},
		{
			"quoted identifier",
			&IdentifierExpression{Name: "No.", Quoted: true},
			`"No."`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestObjectString(t *testing.T) {
	obj := &Object{
		Kind: ObjectKindTable,
		ID:   18,
		Name: "Customer",
		Fields: &FieldsSection{Fields: []*FieldDeclaration{
			{Number: 1, Enabled: true, Name: "No.", TypeName: "Code20"},
		}},
	}
	got := obj.String()
	if !strings.HasPrefix(got, "OBJECT Table 18 Customer") {
		t.Errorf("String() = %q, want the header prefix", got)
	}
	if !strings.Contains(got, "FIELDS") || !strings.Contains(got, "No.") {
		t.Errorf("String() = %q, want the fields rendered", got)
	}
}

// nameCollector counts identifier expressions via the visitor
type nameCollector struct {
	BaseVisitor
	names []string
}

func (nc *nameCollector) VisitIdentifier(expr *IdentifierExpression) interface{} {
	nc.names = append(nc.names, expr.Name)
	return nil
}

func TestVisitorWalksChildren(t *testing.T) {
	doc := &Document{
		Object: &Object{
			Kind: ObjectKindCodeunit,
			ID:   1,
			Name: "T",
			Code: &CodeSection{
				Procedures: []*ProcedureDeclaration{
					{
						Name: "Run",
						Body: []Statement{
							&IfStatement{
								Condition: &IdentifierExpression{Name: "Posted"},
								Then: &AssignmentStatement{
									Target: &IdentifierExpression{Name: "Total"},
									Value: &BinaryExpression{
										Left:  &IdentifierExpression{Name: "Amount"},
										Op:    "+",
										Right: &IdentifierExpression{Name: "VAT"},
									},
								},
							},
						},
					},
				},
			},
		},
	}

	collector := &nameCollector{}
	Walk(collector, doc)

	want := []string{"Posted", "Total", "Amount", "VAT"}
	if len(collector.names) != len(want) {
		t.Fatalf("collected %v, want %v", collector.names, want)
	}
	for i, name := range want {
		if collector.names[i] != name {
			t.Errorf("names[%d] = %q, want %q", i, collector.names[i], name)
		}
	}
}

func TestWalkHandlesNilChildren(t *testing.T) {
	visitor := &BaseVisitor{}
	// Must not panic on nil, an empty document, or sparse nodes
	Walk(visitor, nil)
	Walk(visitor, &Document{})
	Walk(visitor, &Object{Kind: ObjectKindTable})
	Walk(visitor, &IfStatement{})
	Walk(visitor, &CaseStatement{Branches: []*CaseBranch{{}}})
}

// deepCounter verifies overrides fire below the statement level when
// walking through deeply nested bodies
type deepCounter struct {
	BaseVisitor
	literals int
}

func (dc *deepCounter) VisitLiteral(expr *LiteralExpression) interface{} {
	dc.literals++
	return nil
}

func TestWalkReachesNestedExpressions(t *testing.T) {
	one := &LiteralExpression{Kind: LiteralInteger, Raw: "1"}
	two := &LiteralExpression{Kind: LiteralInteger, Raw: "2"}
	stmt := &WhileStatement{
		Condition: &BinaryExpression{Left: one, Op: "<", Right: two},
		Body: &BlockStatement{Statements: []Statement{
			&ExitStatement{Value: &UnaryExpression{Op: "-", Operand: one}},
		}},
	}

	counter := &deepCounter{}
	Walk(counter, stmt)

	if counter.literals != 3 {
		t.Errorf("literals = %d, want 3", counter.literals)
	}
}

// File: nodes.go
// Title: C/AL AST Node Definitions
// Description: Defines the document, object, section, and declaration
//              nodes of the C/AL abstract syntax tree, including the
//              DataType node with multi-dimensional array support.
//              Provides string representations for all nodes.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strconv"
	"strings"

	calstringx "github.com/klauskaan/C-AL-Language-sub012/utils/stringx"
)

// Node is the base interface for all AST nodes
type Node interface {
	// String returns a source-like string representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position
}

// Position represents a position in the source text
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// ObjectKind identifies the kind of a C/AL object
type ObjectKind int

const (
	ObjectKindUnknown ObjectKind = iota
	ObjectKindTable
	ObjectKindCodeunit
	ObjectKindForm
	ObjectKindPage
	ObjectKindReport
	ObjectKindDataport
	ObjectKindXMLport
	ObjectKindQuery
	ObjectKindMenuSuite
)

// String returns the canonical name of the object kind
func (k ObjectKind) String() string {
	switch k {
	case ObjectKindTable:
		return "Table"
	case ObjectKindCodeunit:
		return "Codeunit"
	case ObjectKindForm:
		return "Form"
	case ObjectKindPage:
		return "Page"
	case ObjectKindReport:
		return "Report"
	case ObjectKindDataport:
		return "Dataport"
	case ObjectKindXMLport:
		return "XMLport"
	case ObjectKindQuery:
		return "Query"
	case ObjectKindMenuSuite:
		return "MenuSuite"
	default:
		return "Unknown"
	}
}

// ParseObjectKind maps an object kind name to its enum value,
// case-insensitively
func ParseObjectKind(name string) ObjectKind {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TABLE":
		return ObjectKindTable
	case "CODEUNIT":
		return ObjectKindCodeunit
	case "FORM":
		return ObjectKindForm
	case "PAGE":
		return ObjectKindPage
	case "REPORT":
		return ObjectKindReport
	case "DATAPORT":
		return ObjectKindDataport
	case "XMLPORT":
		return ObjectKindXMLport
	case "QUERY":
		return ObjectKindQuery
	case "MENUSUITE":
		return ObjectKindMenuSuite
	default:
		return ObjectKindUnknown
	}
}

// Document is the root node of a parsed C/AL source text
type Document struct {
	Object *Object // nil for empty or comment-only input
	Pos    Position
}

// Object represents a C/AL object declaration
type Object struct {
	Kind        ObjectKind
	ID          int
	Name        string
	Properties  *PropertiesSection
	Fields      *FieldsSection
	Keys        *KeysSection
	Controls    *ControlsSection
	FieldGroups *FieldGroupsSection
	Code        *CodeSection
	Skipped     []*SkippedSection
	Pos         Position
}

// PropertiesSection holds name=value property rows
type PropertiesSection struct {
	Properties []*Property
	Pos        Position
}

// Property is a single property row. Trigger properties (OnValidate,
// OnInsert, ...) carry their code body as raw text in Value with
// IsTrigger set.
type Property struct {
	Name      string
	Value     string
	IsTrigger bool
	Pos       Position
}

// FieldsSection holds the field definitions of a table object
type FieldsSection struct {
	Fields []*FieldDeclaration
	Pos    Position
}

// FieldDeclaration is one structural row of a FIELDS section.
// Column order: field number; enabled flag; field name; data type.
type FieldDeclaration struct {
	Number     int
	Enabled    bool
	Name       string
	TypeName   string
	Properties []*Property
	Pos        Position
}

// KeysSection holds the key definitions of a table object
type KeysSection struct {
	Keys []*KeyDeclaration
	Pos  Position
}

// KeyDeclaration is one structural row of a KEYS section.
// Column order: enabled flag; comma-separated field list.
type KeyDeclaration struct {
	Enabled    bool
	Fields     []string
	Properties []*Property
	Pos        Position
}

// ControlsSection holds the control definitions of a form object
type ControlsSection struct {
	Controls []*ControlDeclaration
	Pos      Position
}

// ControlDeclaration is one structural row of a CONTROLS section.
// Column order: control id; indentation level; control type.
type ControlDeclaration struct {
	ID         int
	Indent     int
	Type       string
	Properties []*Property
	Pos        Position
}

// FieldGroupsSection holds the field group definitions of a table object
type FieldGroupsSection struct {
	Groups []*FieldGroupDeclaration
	Pos    Position
}

// FieldGroupDeclaration is one structural row of a FIELDGROUPS section.
// Column order: group id; group name.
type FieldGroupDeclaration struct {
	ID     int
	Name   string
	Fields []string
	Pos    Position
}

// SkippedSection records a recognized section that is scanned over
// without structural parsing (MenuNodes, Actions, Dataset, ...)
type SkippedSection struct {
	Name string
	Pos  Position
}

// CodeSection holds the global variables, procedures, and the trailing
// main block of a CODE section
type CodeSection struct {
	Variables  []*VariableDeclaration
	Procedures []*ProcedureDeclaration
	Main       []Statement // trailing BEGIN ... END. block
	Pos        Position
}

// VariableDeclaration declares a single variable inside a VAR block
type VariableDeclaration struct {
	Name string
	Type *DataType
	Pos  Position
}

// ProcedureDeclaration declares a procedure or function
type ProcedureDeclaration struct {
	Name       string
	IsLocal    bool
	Parameters []*ParameterDeclaration
	ReturnName string // optional named return value
	ReturnType *DataType
	Variables  []*VariableDeclaration
	Body       []Statement
	Pos        Position
}

// ParameterDeclaration declares a single procedure parameter
type ParameterDeclaration struct {
	Name  string
	ByRef bool // declared with VAR
	Type  *DataType
	Pos   Position
}

// DataType describes a declared type. For arrays, Dimensions holds the
// declared sizes (1..10 entries) and Length mirrors Dimensions[0]; for
// length-qualified simple types (Text[50], Code[20]) Length holds the
// bracket value and Dimensions is empty.
type DataType struct {
	TypeName    string
	Dimensions  []int
	Length      int
	IsTemporary bool
	Pos         Position
}

// Node implementation for Document

func (d *Document) String() string {
	if d.Object == nil {
		return ""
	}
	return d.Object.String()
}

func (d *Document) Accept(visitor Visitor) interface{} {
	return visitor.VisitDocument(d)
}

func (d *Document) Position() Position {
	return d.Pos
}

// Node implementation for Object

func (o *Object) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "OBJECT %s %d %s", o.Kind.String(), o.ID, o.Name)
	b.WriteString(" {")
	if o.Properties != nil {
		b.WriteString(" " + o.Properties.String())
	}
	if o.Fields != nil {
		b.WriteString(" " + o.Fields.String())
	}
	if o.Keys != nil {
		b.WriteString(" " + o.Keys.String())
	}
	if o.FieldGroups != nil {
		b.WriteString(" " + o.FieldGroups.String())
	}
	if o.Controls != nil {
		b.WriteString(" " + o.Controls.String())
	}
	if o.Code != nil {
		b.WriteString(" " + o.Code.String())
	}
	for _, s := range o.Skipped {
		b.WriteString(" " + s.String())
	}
	b.WriteString(" }")
	return b.String()
}

func (o *Object) Accept(visitor Visitor) interface{} {
	return visitor.VisitObject(o)
}

func (o *Object) Position() Position {
	return o.Pos
}

// Node implementation for PropertiesSection

func (ps *PropertiesSection) String() string {
	parts := make([]string, 0, len(ps.Properties))
	for _, p := range ps.Properties {
		parts = append(parts, p.String())
	}
	return fmt.Sprintf("PROPERTIES { %s }", strings.Join(parts, " "))
}

func (ps *PropertiesSection) Accept(visitor Visitor) interface{} {
	return visitor.VisitPropertiesSection(ps)
}

func (ps *PropertiesSection) Position() Position {
	return ps.Pos
}

// Node implementation for Property

func (p *Property) String() string {
	if calstringx.IsBlank(p.Value) {
		return p.Name + ";"
	}
	return fmt.Sprintf("%s=%s;", p.Name, p.Value)
}

func (p *Property) Accept(visitor Visitor) interface{} {
	return visitor.VisitProperty(p)
}

func (p *Property) Position() Position {
	return p.Pos
}

// Node implementation for FieldsSection

func (fs *FieldsSection) String() string {
	parts := make([]string, 0, len(fs.Fields))
	for _, f := range fs.Fields {
		parts = append(parts, f.String())
	}
	return fmt.Sprintf("FIELDS { %s }", strings.Join(parts, " "))
}

func (fs *FieldsSection) Accept(visitor Visitor) interface{} {
	return visitor.VisitFieldsSection(fs)
}

func (fs *FieldsSection) Position() Position {
	return fs.Pos
}

// Node implementation for FieldDeclaration

func (fd *FieldDeclaration) String() string {
	enabled := ""
	if !fd.Enabled {
		enabled = "No"
	}
	return fmt.Sprintf("{ %d;%s;%s;%s }", fd.Number, enabled, fd.Name, fd.TypeName)
}

func (fd *FieldDeclaration) Accept(visitor Visitor) interface{} {
	return visitor.VisitFieldDeclaration(fd)
}

func (fd *FieldDeclaration) Position() Position {
	return fd.Pos
}

// Node implementation for KeysSection

func (ks *KeysSection) String() string {
	parts := make([]string, 0, len(ks.Keys))
	for _, k := range ks.Keys {
		parts = append(parts, k.String())
	}
	return fmt.Sprintf("KEYS { %s }", strings.Join(parts, " "))
}

func (ks *KeysSection) Accept(visitor Visitor) interface{} {
	return visitor.VisitKeysSection(ks)
}

func (ks *KeysSection) Position() Position {
	return ks.Pos
}

// Node implementation for KeyDeclaration

func (kd *KeyDeclaration) String() string {
	enabled := ""
	if !kd.Enabled {
		enabled = "No"
	}
	return fmt.Sprintf("{ %s;%s }", enabled, strings.Join(kd.Fields, ","))
}

func (kd *KeyDeclaration) Accept(visitor Visitor) interface{} {
	return visitor.VisitKeyDeclaration(kd)
}

func (kd *KeyDeclaration) Position() Position {
	return kd.Pos
}

// Node implementation for ControlsSection

func (cs *ControlsSection) String() string {
	parts := make([]string, 0, len(cs.Controls))
	for _, c := range cs.Controls {
		parts = append(parts, c.String())
	}
	return fmt.Sprintf("CONTROLS { %s }", strings.Join(parts, " "))
}

func (cs *ControlsSection) Accept(visitor Visitor) interface{} {
	return visitor.VisitControlsSection(cs)
}

func (cs *ControlsSection) Position() Position {
	return cs.Pos
}

// Node implementation for ControlDeclaration

func (cd *ControlDeclaration) String() string {
	return fmt.Sprintf("{ %d;%d;%s }", cd.ID, cd.Indent, cd.Type)
}

func (cd *ControlDeclaration) Accept(visitor Visitor) interface{} {
	return visitor.VisitControlDeclaration(cd)
}

func (cd *ControlDeclaration) Position() Position {
	return cd.Pos
}

// Node implementation for FieldGroupsSection

func (fgs *FieldGroupsSection) String() string {
	parts := make([]string, 0, len(fgs.Groups))
	for _, g := range fgs.Groups {
		parts = append(parts, g.String())
	}
	return fmt.Sprintf("FIELDGROUPS { %s }", strings.Join(parts, " "))
}

func (fgs *FieldGroupsSection) Accept(visitor Visitor) interface{} {
	return visitor.VisitFieldGroupsSection(fgs)
}

func (fgs *FieldGroupsSection) Position() Position {
	return fgs.Pos
}

// Node implementation for FieldGroupDeclaration

func (fg *FieldGroupDeclaration) String() string {
	return fmt.Sprintf("{ %d;%s;%s }", fg.ID, fg.Name, strings.Join(fg.Fields, ","))
}

func (fg *FieldGroupDeclaration) Accept(visitor Visitor) interface{} {
	return visitor.VisitFieldGroupDeclaration(fg)
}

func (fg *FieldGroupDeclaration) Position() Position {
	return fg.Pos
}

// Node implementation for SkippedSection

func (ss *SkippedSection) String() string {
	return fmt.Sprintf("%s { ... }", strings.ToUpper(ss.Name))
}

func (ss *SkippedSection) Accept(visitor Visitor) interface{} {
	return visitor.VisitSkippedSection(ss)
}

func (ss *SkippedSection) Position() Position {
	return ss.Pos
}

// Node implementation for CodeSection

func (cs *CodeSection) String() string {
	var b strings.Builder
	b.WriteString("CODE {")
	if len(cs.Variables) > 0 {
		b.WriteString(" VAR")
		for _, v := range cs.Variables {
			b.WriteString(" " + v.String())
		}
	}
	for _, proc := range cs.Procedures {
		b.WriteString(" " + proc.String())
	}
	if len(cs.Main) > 0 {
		b.WriteString(" BEGIN")
		for _, stmt := range cs.Main {
			b.WriteString(" " + stmt.String() + ";")
		}
		b.WriteString(" END.")
	}
	b.WriteString(" }")
	return b.String()
}

func (cs *CodeSection) Accept(visitor Visitor) interface{} {
	return visitor.VisitCodeSection(cs)
}

func (cs *CodeSection) Position() Position {
	return cs.Pos
}

// Node implementation for VariableDeclaration

func (vd *VariableDeclaration) String() string {
	return fmt.Sprintf("%s : %s;", vd.Name, vd.Type.String())
}

func (vd *VariableDeclaration) Accept(visitor Visitor) interface{} {
	return visitor.VisitVariableDeclaration(vd)
}

func (vd *VariableDeclaration) Position() Position {
	return vd.Pos
}

// Node implementation for ProcedureDeclaration

func (pd *ProcedureDeclaration) String() string {
	var b strings.Builder
	if pd.IsLocal {
		b.WriteString("LOCAL ")
	}
	b.WriteString("PROCEDURE ")
	b.WriteString(pd.Name)
	b.WriteString("(")
	params := make([]string, 0, len(pd.Parameters))
	for _, p := range pd.Parameters {
		params = append(params, p.String())
	}
	b.WriteString(strings.Join(params, ";"))
	b.WriteString(")")
	if pd.ReturnType != nil {
		if calstringx.IsNotBlank(pd.ReturnName) {
			b.WriteString(" " + pd.ReturnName)
		}
		b.WriteString(" : " + pd.ReturnType.String())
	}
	b.WriteString(";")
	return b.String()
}

func (pd *ProcedureDeclaration) Accept(visitor Visitor) interface{} {
	return visitor.VisitProcedureDeclaration(pd)
}

func (pd *ProcedureDeclaration) Position() Position {
	return pd.Pos
}

// Node implementation for ParameterDeclaration

func (pa *ParameterDeclaration) String() string {
	prefix := ""
	if pa.ByRef {
		prefix = "VAR "
	}
	return fmt.Sprintf("%s%s : %s", prefix, pa.Name, pa.Type.String())
}

func (pa *ParameterDeclaration) Accept(visitor Visitor) interface{} {
	return visitor.VisitParameterDeclaration(pa)
}

func (pa *ParameterDeclaration) Position() Position {
	return pa.Pos
}

// Node implementation for DataType

func (dt *DataType) String() string {
	if dt.IsTemporary {
		return "TEMPORARY " + dt.TypeName
	}
	return dt.TypeName
}

func (dt *DataType) Accept(visitor Visitor) interface{} {
	return visitor.VisitDataType(dt)
}

func (dt *DataType) Position() Position {
	return dt.Pos
}

// IsArray reports whether the type is an array type
func (dt *DataType) IsArray() bool {
	return len(dt.Dimensions) > 0
}

// ArrayTypeName renders an array type name in canonical form:
// ARRAY[d1,d2,...] OF ElementType
func ArrayTypeName(dims []int, elementTypeName string) string {
	parts := make([]string, 0, len(dims))
	for _, d := range dims {
		parts = append(parts, strconv.Itoa(d))
	}
	return fmt.Sprintf("ARRAY[%s] OF %s", strings.Join(parts, ","), elementTypeName)
}

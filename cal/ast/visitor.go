// File: visitor.go
// Title: C/AL AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing C/AL AST
//              nodes. BaseVisitor supplies no-op defaults so concrete
//              visitors only override the methods they care about;
//              Walk drives a depth-first traversal through the actual
//              visitor, so overrides fire at every depth.
// Author: klauskaan
// Version: v0.1.1
// Created: 2025-02-10
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-10 v0.1.0: Initial visitor pattern implementation
// - 2025-02-11 v0.1.1: Traversal moved into Walk so embedded defaults
//                      no longer bypass the embedding visitor

package ast

// Visitor is the interface for traversing AST nodes
type Visitor interface {
	// Document and object structure
	VisitDocument(doc *Document) interface{}
	VisitObject(obj *Object) interface{}
	VisitPropertiesSection(section *PropertiesSection) interface{}
	VisitProperty(prop *Property) interface{}
	VisitFieldsSection(section *FieldsSection) interface{}
	VisitFieldDeclaration(field *FieldDeclaration) interface{}
	VisitKeysSection(section *KeysSection) interface{}
	VisitKeyDeclaration(key *KeyDeclaration) interface{}
	VisitControlsSection(section *ControlsSection) interface{}
	VisitControlDeclaration(control *ControlDeclaration) interface{}
	VisitFieldGroupsSection(section *FieldGroupsSection) interface{}
	VisitFieldGroupDeclaration(group *FieldGroupDeclaration) interface{}
	VisitSkippedSection(section *SkippedSection) interface{}

	// Code
	VisitCodeSection(section *CodeSection) interface{}
	VisitVariableDeclaration(variable *VariableDeclaration) interface{}
	VisitProcedureDeclaration(proc *ProcedureDeclaration) interface{}
	VisitParameterDeclaration(param *ParameterDeclaration) interface{}
	VisitDataType(dataType *DataType) interface{}

	// Statements
	VisitAssignment(stmt *AssignmentStatement) interface{}
	VisitIf(stmt *IfStatement) interface{}
	VisitCase(stmt *CaseStatement) interface{}
	VisitCaseBranch(branch *CaseBranch) interface{}
	VisitFor(stmt *ForStatement) interface{}
	VisitWhile(stmt *WhileStatement) interface{}
	VisitRepeat(stmt *RepeatStatement) interface{}
	VisitWith(stmt *WithStatement) interface{}
	VisitCallStatement(stmt *CallStatement) interface{}
	VisitBlock(stmt *BlockStatement) interface{}
	VisitExit(stmt *ExitStatement) interface{}

	// Expressions
	VisitBinary(expr *BinaryExpression) interface{}
	VisitUnary(expr *UnaryExpression) interface{}
	VisitMember(expr *MemberExpression) interface{}
	VisitArrayAccess(expr *ArrayAccessExpression) interface{}
	VisitCallExpression(expr *CallExpression) interface{}
	VisitIdentifier(expr *IdentifierExpression) interface{}
	VisitLiteral(expr *LiteralExpression) interface{}
}

// Walk traverses the tree rooted at node in depth-first, source order:
// it dispatches node to the visitor, then walks each child with the
// same visitor. Because the recursion carries v rather than any
// embedded default, overridden methods fire at every depth.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	node.Accept(v)
	walkChildren(v, node)
}

func walkChildren(v Visitor, node Node) {
	switch n := node.(type) {
	case *Document:
		if n.Object != nil {
			Walk(v, n.Object)
		}
	case *Object:
		if n.Properties != nil {
			Walk(v, n.Properties)
		}
		if n.Fields != nil {
			Walk(v, n.Fields)
		}
		if n.Keys != nil {
			Walk(v, n.Keys)
		}
		if n.FieldGroups != nil {
			Walk(v, n.FieldGroups)
		}
		if n.Controls != nil {
			Walk(v, n.Controls)
		}
		if n.Code != nil {
			Walk(v, n.Code)
		}
		for _, s := range n.Skipped {
			Walk(v, s)
		}
	case *PropertiesSection:
		for _, p := range n.Properties {
			Walk(v, p)
		}
	case *FieldsSection:
		for _, f := range n.Fields {
			Walk(v, f)
		}
	case *FieldDeclaration:
		for _, p := range n.Properties {
			Walk(v, p)
		}
	case *KeysSection:
		for _, k := range n.Keys {
			Walk(v, k)
		}
	case *KeyDeclaration:
		for _, p := range n.Properties {
			Walk(v, p)
		}
	case *ControlsSection:
		for _, c := range n.Controls {
			Walk(v, c)
		}
	case *ControlDeclaration:
		for _, p := range n.Properties {
			Walk(v, p)
		}
	case *FieldGroupsSection:
		for _, g := range n.Groups {
			Walk(v, g)
		}
	case *CodeSection:
		for _, vd := range n.Variables {
			Walk(v, vd)
		}
		for _, p := range n.Procedures {
			Walk(v, p)
		}
		for _, s := range n.Main {
			Walk(v, s)
		}
	case *VariableDeclaration:
		if n.Type != nil {
			Walk(v, n.Type)
		}
	case *ProcedureDeclaration:
		for _, p := range n.Parameters {
			Walk(v, p)
		}
		if n.ReturnType != nil {
			Walk(v, n.ReturnType)
		}
		for _, vd := range n.Variables {
			Walk(v, vd)
		}
		for _, s := range n.Body {
			Walk(v, s)
		}
	case *ParameterDeclaration:
		if n.Type != nil {
			Walk(v, n.Type)
		}
	case *AssignmentStatement:
		if n.Target != nil {
			Walk(v, n.Target)
		}
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *IfStatement:
		if n.Condition != nil {
			Walk(v, n.Condition)
		}
		if n.Then != nil {
			Walk(v, n.Then)
		}
		if n.Else != nil {
			Walk(v, n.Else)
		}
	case *CaseStatement:
		if n.Expr != nil {
			Walk(v, n.Expr)
		}
		for _, br := range n.Branches {
			Walk(v, br)
		}
		for _, s := range n.Else {
			Walk(v, s)
		}
	case *CaseBranch:
		for _, val := range n.Values {
			Walk(v, val)
		}
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *ForStatement:
		if n.Variable != nil {
			Walk(v, n.Variable)
		}
		if n.From != nil {
			Walk(v, n.From)
		}
		if n.To != nil {
			Walk(v, n.To)
		}
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *WhileStatement:
		if n.Condition != nil {
			Walk(v, n.Condition)
		}
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *RepeatStatement:
		for _, s := range n.Body {
			Walk(v, s)
		}
		if n.Condition != nil {
			Walk(v, n.Condition)
		}
	case *WithStatement:
		if n.Record != nil {
			Walk(v, n.Record)
		}
		if n.Body != nil {
			Walk(v, n.Body)
		}
	case *CallStatement:
		if n.Call != nil {
			Walk(v, n.Call)
		}
	case *BlockStatement:
		for _, s := range n.Statements {
			Walk(v, s)
		}
	case *ExitStatement:
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *BinaryExpression:
		if n.Left != nil {
			Walk(v, n.Left)
		}
		if n.Right != nil {
			Walk(v, n.Right)
		}
	case *UnaryExpression:
		if n.Operand != nil {
			Walk(v, n.Operand)
		}
	case *MemberExpression:
		if n.Target != nil {
			Walk(v, n.Target)
		}
	case *ArrayAccessExpression:
		if n.Target != nil {
			Walk(v, n.Target)
		}
		for _, idx := range n.Indices {
			Walk(v, idx)
		}
	case *CallExpression:
		if n.Target != nil {
			Walk(v, n.Target)
		}
		for _, arg := range n.Arguments {
			Walk(v, arg)
		}
	}
	// Property, FieldGroupDeclaration, SkippedSection, DataType,
	// IdentifierExpression, LiteralExpression are terminal nodes.
}

// BaseVisitor provides no-op defaults for every visitor method. Embed
// it in a concrete visitor, override only the methods of interest, and
// traverse with Walk.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitDocument(doc *Document) interface{} { return nil }

func (bv *BaseVisitor) VisitObject(obj *Object) interface{} { return nil }

func (bv *BaseVisitor) VisitPropertiesSection(s *PropertiesSection) interface{} { return nil }

func (bv *BaseVisitor) VisitProperty(prop *Property) interface{} { return nil }

func (bv *BaseVisitor) VisitFieldsSection(s *FieldsSection) interface{} { return nil }

func (bv *BaseVisitor) VisitFieldDeclaration(f *FieldDeclaration) interface{} { return nil }

func (bv *BaseVisitor) VisitKeysSection(s *KeysSection) interface{} { return nil }

func (bv *BaseVisitor) VisitKeyDeclaration(k *KeyDeclaration) interface{} { return nil }

func (bv *BaseVisitor) VisitControlsSection(s *ControlsSection) interface{} { return nil }

func (bv *BaseVisitor) VisitControlDeclaration(c *ControlDeclaration) interface{} { return nil }

func (bv *BaseVisitor) VisitFieldGroupsSection(s *FieldGroupsSection) interface{} { return nil }

func (bv *BaseVisitor) VisitFieldGroupDeclaration(g *FieldGroupDeclaration) interface{} { return nil }

func (bv *BaseVisitor) VisitSkippedSection(s *SkippedSection) interface{} { return nil }

func (bv *BaseVisitor) VisitCodeSection(s *CodeSection) interface{} { return nil }

func (bv *BaseVisitor) VisitVariableDeclaration(v *VariableDeclaration) interface{} { return nil }

func (bv *BaseVisitor) VisitProcedureDeclaration(p *ProcedureDeclaration) interface{} { return nil }

func (bv *BaseVisitor) VisitParameterDeclaration(p *ParameterDeclaration) interface{} { return nil }

func (bv *BaseVisitor) VisitDataType(dt *DataType) interface{} { return nil }

func (bv *BaseVisitor) VisitAssignment(s *AssignmentStatement) interface{} { return nil }

func (bv *BaseVisitor) VisitIf(s *IfStatement) interface{} { return nil }

func (bv *BaseVisitor) VisitCase(s *CaseStatement) interface{} { return nil }

func (bv *BaseVisitor) VisitCaseBranch(b *CaseBranch) interface{} { return nil }

func (bv *BaseVisitor) VisitFor(s *ForStatement) interface{} { return nil }

func (bv *BaseVisitor) VisitWhile(s *WhileStatement) interface{} { return nil }

func (bv *BaseVisitor) VisitRepeat(s *RepeatStatement) interface{} { return nil }

func (bv *BaseVisitor) VisitWith(s *WithStatement) interface{} { return nil }

func (bv *BaseVisitor) VisitCallStatement(s *CallStatement) interface{} { return nil }

func (bv *BaseVisitor) VisitBlock(s *BlockStatement) interface{} { return nil }

func (bv *BaseVisitor) VisitExit(s *ExitStatement) interface{} { return nil }

func (bv *BaseVisitor) VisitBinary(e *BinaryExpression) interface{} { return nil }

func (bv *BaseVisitor) VisitUnary(e *UnaryExpression) interface{} { return nil }

func (bv *BaseVisitor) VisitMember(e *MemberExpression) interface{} { return nil }

func (bv *BaseVisitor) VisitArrayAccess(e *ArrayAccessExpression) interface{} { return nil }

func (bv *BaseVisitor) VisitCallExpression(e *CallExpression) interface{} { return nil }

func (bv *BaseVisitor) VisitIdentifier(e *IdentifierExpression) interface{} { return nil }

func (bv *BaseVisitor) VisitLiteral(e *LiteralExpression) interface{} { return nil }

// File: code.go
// Title: C/AL Code Section Parser
// Description: Parses the CODE section of a C/AL object: global VAR
//              blocks, procedure declarations with parameters and return
//              types, multi-dimensional array data types, and the full
//              statement and expression grammar with Pascal-style
//              operator precedence.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial code section parser

package parser

import (
	"strconv"

	"github.com/klauskaan/C-AL-Language-sub012/cal/ast"
)

// maxArrayDimensions is the dimension limit for ARRAY types
const maxArrayDimensions = 10

// parseCodeSection parses CODE { [VAR ...] procedures... [BEGIN ... END.] }
func (p *Parser) parseCodeSection(keyword Token) *ast.CodeSection {
	section := &ast.CodeSection{Pos: tokenPosition(keyword)}
	if p.expectOrRecover(TokenLeftBrace).Type != TokenLeftBrace {
		return section
	}

	for !p.atEOF() && !p.errorsFull() {
		tok := p.current()
		switch tok.Type {
		case TokenRightBrace:
			p.next()
			return section
		case TokenVar:
			p.next()
			section.Variables = append(section.Variables, p.parseVarBlock()...)
		case TokenLocal, TokenProcedure, TokenFunction:
			if proc := p.parseProcedure(); proc != nil {
				section.Procedures = append(section.Procedures, proc)
			}
		case TokenBegin:
			section.Main = p.parseMainBlock()
		case TokenALKeyword, TokenALAccessModifier, TokenALTernary, TokenALPreprocessor:
			p.rejectALConstruct(tok)
			p.next()
		default:
			p.addError(newParseError(tok,
				"expected VAR, PROCEDURE, or BEGIN in code section, found %s",
				describeToken(tok)))
			p.synchronize()
		}
	}

	p.closeBrace(keyword)
	return section
}

// parseMainBlock parses the trailing BEGIN ... END. block
func (p *Parser) parseMainBlock() []ast.Statement {
	p.next() // BEGIN
	stmts := p.parseStatementList(TokenEnd)
	p.expect(TokenEnd)
	p.match(TokenDot)
	return stmts
}

// parseVarBlock parses variable declarations until something that is
// not a declaration start
func (p *Parser) parseVarBlock() []*ast.VariableDeclaration {
	var vars []*ast.VariableDeclaration
	for !p.atEOF() && !p.errorsFull() {
		tok := p.current()
		if tok.Type != TokenIdentifier && tok.Type != TokenQuotedIdentifier {
			return vars
		}
		decl := p.parseVariableDeclaration()
		if decl == nil {
			p.synchronizeProperty()
			continue
		}
		vars = append(vars, decl)
	}
	return vars
}

// parseVariableDeclaration parses name [@num] : DataType ;
func (p *Parser) parseVariableDeclaration() *ast.VariableDeclaration {
	nameTok := p.next()
	p.skipAtNumber()

	if !p.match(TokenColon) {
		p.addError(newParseError(p.current(),
			"expected ':' after variable name, found %s", describeToken(p.current())))
		return nil
	}

	decl := &ast.VariableDeclaration{
		Name: nameTok.Value,
		Type: p.parseDataType(),
		Pos:  tokenPosition(nameTok),
	}
	if !p.match(TokenSemicolon) && p.current().Type != TokenRightBrace {
		p.addError(newParseError(p.current(),
			"expected ';' after variable declaration, found %s",
			describeToken(p.current())))
		p.synchronizeProperty()
	}
	return decl
}

// skipAtNumber consumes an export-format @number suffix after a name
func (p *Parser) skipAtNumber() {
	if p.current().Type == TokenAt {
		p.next()
		p.match(TokenInteger)
	}
}

// parseDataType parses [TEMPORARY] (ARRAY [dims] OF element | TypeName
// [[length]] [subtype])
func (p *Parser) parseDataType() *ast.DataType {
	startTok := p.current()
	temporary := p.match(TokenTemporary)

	if p.current().Type == TokenArray {
		dt := p.parseArrayType()
		dt.IsTemporary = temporary
		dt.Pos = tokenPosition(startTok)
		return dt
	}

	nameTok := p.current()
	dt := &ast.DataType{IsTemporary: temporary, Pos: tokenPosition(startTok)}
	if nameTok.Type != TokenIdentifier && nameTok.Type != TokenQuotedIdentifier {
		p.addError(newParseError(nameTok, "expected type name, found %s",
			describeToken(nameTok)))
		return dt
	}
	p.next()
	dt.TypeName = nameTok.Value

	switch p.current().Type {
	case TokenLeftBracket:
		// Length-qualified simple type: Text[50], Code[20]
		p.next()
		lenTok := p.current()
		if lenTok.Type == TokenInteger {
			p.next()
			if length, err := strconv.Atoi(lenTok.Value); err == nil {
				dt.Length = length
			}
		} else {
			p.addError(newParseError(lenTok, "expected type length, found %s",
				describeToken(lenTok)))
		}
		if !p.match(TokenRightBracket) {
			p.addError(newParseError(p.current(),
				"type length is not closed, found %s", describeToken(p.current())))
		}
	case TokenInteger:
		// Subtyped reference: Record 18, Codeunit 80
		sub := p.next()
		dt.TypeName += " " + sub.Value
	case TokenQuotedIdentifier:
		sub := p.next()
		dt.TypeName += " " + sub.Value
	}
	return dt
}

// parseArrayType parses ARRAY [d1,d2,...] OF ElementType. More than
// ten dimensions is a single error; the dimension list is consumed
// either way so parsing resumes at the element type.
func (p *Parser) parseArrayType() *ast.DataType {
	arrayTok := p.next() // ARRAY
	dt := &ast.DataType{Pos: tokenPosition(arrayTok)}

	if !p.match(TokenLeftBracket) {
		p.addError(newParseError(p.current(),
			"expected '[' after ARRAY, found %s", describeToken(p.current())))
		return dt
	}

	var dims []int
	malformed := false
	for !p.atEOF() {
		tok := p.current()
		if tok.Type == TokenRightBracket {
			break
		}
		if tok.Type == TokenInteger {
			p.next()
			if d, err := strconv.Atoi(tok.Value); err == nil {
				dims = append(dims, d)
			}
			if !p.match(TokenComma) {
				break
			}
			continue
		}
		if !malformed {
			p.addError(newParseError(tok,
				"expected array dimension, found %s", describeToken(tok)))
			malformed = true
		}
		p.next()
	}
	if !p.match(TokenRightBracket) {
		p.addError(newParseError(p.current(),
			"array dimension list is not closed, found %s",
			describeToken(p.current())))
	}
	if len(dims) == 0 && !malformed {
		p.addError(newParseError(arrayTok, "array type has no dimensions"))
	}
	if len(dims) > maxArrayDimensions {
		p.addError(newParseError(arrayTok,
			"array type has more than %d dimensions", maxArrayDimensions))
		dims = dims[:maxArrayDimensions]
	}

	if !p.match(TokenOf) {
		p.addError(newParseError(p.current(),
			"expected OF after array dimensions, found %s",
			describeToken(p.current())))
		return dt
	}

	element := p.parseDataType()
	dt.TypeName = ast.ArrayTypeName(dims, element.TypeName)
	dt.Dimensions = dims
	if len(dims) > 0 {
		dt.Length = dims[0]
	}
	return dt
}

// parseProcedure parses [LOCAL] PROCEDURE Name [@num] (params)
// [[retName] : RetType] ; [VAR ...] BEGIN body END ;
func (p *Parser) parseProcedure() *ast.ProcedureDeclaration {
	startTok := p.current()
	isLocal := p.match(TokenLocal)

	if p.current().Type != TokenProcedure && p.current().Type != TokenFunction {
		p.addError(newParseError(p.current(),
			"expected PROCEDURE after LOCAL, found %s", describeToken(p.current())))
		p.synchronize()
		return nil
	}
	p.next()

	nameTok := p.current()
	if nameTok.Type != TokenIdentifier && nameTok.Type != TokenQuotedIdentifier {
		p.addError(newParseError(nameTok, "expected procedure name, found %s",
			describeToken(nameTok)))
		p.synchronize()
		return nil
	}
	p.next()
	p.skipAtNumber()

	proc := &ast.ProcedureDeclaration{
		Name:    nameTok.Value,
		IsLocal: isLocal,
		Pos:     tokenPosition(startTok),
	}

	if p.match(TokenLeftParen) {
		proc.Parameters = p.parseParameterList()
	} else {
		p.addError(newParseError(p.current(),
			"expected '(' after procedure name, found %s",
			describeToken(p.current())))
	}

	// Optional return value, named or anonymous
	if p.current().Type == TokenColon {
		p.next()
		proc.ReturnType = p.parseDataType()
	} else if isNameToken(p.current()) && p.peek().Type == TokenColon {
		proc.ReturnName = p.next().Value
		p.next() // :
		proc.ReturnType = p.parseDataType()
	}
	p.match(TokenSemicolon)

	if p.match(TokenVar) {
		proc.Variables = p.parseVarBlock()
	}

	if p.current().Type == TokenBegin {
		p.next()
		proc.Body = p.parseStatementList(TokenEnd)
		p.expect(TokenEnd)
		p.match(TokenSemicolon)
	} else {
		p.addError(newParseError(p.current(),
			"expected BEGIN in procedure body, found %s", describeToken(p.current())))
		p.synchronize()
	}
	return proc
}

// parseParameterList parses parameters until the closing parenthesis
func (p *Parser) parseParameterList() []*ast.ParameterDeclaration {
	var params []*ast.ParameterDeclaration
	for !p.atEOF() && !p.errorsFull() {
		if p.match(TokenRightParen) {
			return params
		}
		if p.match(TokenSemicolon) {
			continue
		}
		param := p.parseParameter()
		if param == nil {
			// Skip to the next parameter boundary
			for !p.atEOF() {
				t := p.current().Type
				if t == TokenSemicolon || t == TokenRightParen {
					break
				}
				p.next()
			}
			continue
		}
		params = append(params, param)
	}
	return params
}

// parseParameter parses [VAR] name [@num] : DataType
func (p *Parser) parseParameter() *ast.ParameterDeclaration {
	startTok := p.current()
	byRef := p.match(TokenVar)

	nameTok := p.current()
	if !isNameToken(nameTok) {
		p.addError(newParseError(nameTok, "expected parameter name, found %s",
			describeToken(nameTok)))
		return nil
	}
	p.next()
	p.skipAtNumber()

	if !p.match(TokenColon) {
		p.addError(newParseError(p.current(),
			"expected ':' after parameter name, found %s", describeToken(p.current())))
		return nil
	}

	return &ast.ParameterDeclaration{
		Name:  nameTok.Value,
		ByRef: byRef,
		Type:  p.parseDataType(),
		Pos:   tokenPosition(startTok),
	}
}

// isNameToken reports whether a token can serve as a declared name
func isNameToken(tok Token) bool {
	return tok.Type == TokenIdentifier || tok.Type == TokenQuotedIdentifier
}

// parseStatementList parses semicolon-separated statements until one of
// the terminator token types or EOF. Terminators are left unconsumed.
func (p *Parser) parseStatementList(terminators ...TokenType) []ast.Statement {
	var stmts []ast.Statement
	for !p.atEOF() && !p.errorsFull() {
		if p.match(TokenSemicolon) {
			continue
		}
		tok := p.current()
		for _, t := range terminators {
			if tok.Type == t {
				return stmts
			}
		}
		if tok.Type == TokenRightBrace {
			return stmts
		}
		before := p.pos
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.pos == before {
			p.next()
		}
	}
	return stmts
}

// parseStatement parses a single statement
func (p *Parser) parseStatement() ast.Statement {
	tok := p.current()
	switch tok.Type {
	case TokenBegin:
		return p.parseBlockStatement()
	case TokenIf:
		return p.parseIfStatement()
	case TokenCase:
		return p.parseCaseStatement()
	case TokenFor:
		return p.parseForStatement()
	case TokenWhile:
		return p.parseWhileStatement()
	case TokenRepeat:
		return p.parseRepeatStatement()
	case TokenWith:
		return p.parseWithStatement()
	case TokenExit:
		return p.parseExitStatement()
	case TokenALKeyword, TokenALAccessModifier, TokenALTernary, TokenALPreprocessor:
		p.rejectALConstruct(tok)
		p.next()
		return nil
	}

	expr := p.parseExpression()
	if expr == nil {
		return nil
	}
	if p.current().Type == TokenAssign {
		p.next()
		value := p.parseExpression()
		if value == nil {
			value = &ast.IdentifierExpression{Pos: tokenPosition(p.current())}
		}
		return &ast.AssignmentStatement{
			Target: expr,
			Value:  value,
			Pos:    tokenPosition(tok),
		}
	}
	return &ast.CallStatement{Call: expr, Pos: tokenPosition(tok)}
}

func (p *Parser) parseBlockStatement() ast.Statement {
	tok := p.next() // BEGIN
	stmts := p.parseStatementList(TokenEnd)
	p.expect(TokenEnd)
	return &ast.BlockStatement{Statements: stmts, Pos: tokenPosition(tok)}
}

func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.next() // IF
	stmt := &ast.IfStatement{Pos: tokenPosition(tok)}
	stmt.Condition = p.parseExpression()
	p.expect(TokenThen)
	stmt.Then = p.parseStatement()
	if p.match(TokenElse) {
		stmt.Else = p.parseStatement()
	}
	return stmt
}

func (p *Parser) parseCaseStatement() ast.Statement {
	tok := p.next() // CASE
	stmt := &ast.CaseStatement{Pos: tokenPosition(tok)}
	stmt.Expr = p.parseExpression()
	p.expect(TokenOf)

	for !p.atEOF() && !p.errorsFull() {
		cur := p.current()
		if cur.Type == TokenEnd {
			break
		}
		if cur.Type == TokenElse {
			p.next()
			stmt.Else = p.parseStatementList(TokenEnd)
			break
		}
		before := p.pos
		if branch := p.parseCaseBranch(); branch != nil {
			stmt.Branches = append(stmt.Branches, branch)
		}
		if p.pos == before {
			p.next()
		}
	}
	p.expect(TokenEnd)
	return stmt
}

// parseCaseBranch parses value[,value]... : [statement] ;
// Values may be ranges (low..high) and option references (Type::Value).
func (p *Parser) parseCaseBranch() *ast.CaseBranch {
	tok := p.current()
	branch := &ast.CaseBranch{Pos: tokenPosition(tok)}

	for !p.atEOF() {
		value := p.parseExpression()
		if value == nil {
			return nil
		}
		if p.current().Type == TokenRange {
			rangeTok := p.next()
			high := p.parseExpression()
			if high == nil {
				high = &ast.IdentifierExpression{Pos: tokenPosition(rangeTok)}
			}
			value = &ast.BinaryExpression{
				Left:  value,
				Op:    "..",
				Right: high,
				Pos:   value.Position(),
			}
		}
		branch.Values = append(branch.Values, value)
		if !p.match(TokenComma) {
			break
		}
	}

	p.expect(TokenColon)
	if p.current().Type != TokenSemicolon && p.current().Type != TokenEnd &&
		p.current().Type != TokenElse {
		branch.Body = p.parseStatement()
	}
	p.match(TokenSemicolon)
	return branch
}

func (p *Parser) parseForStatement() ast.Statement {
	tok := p.next() // FOR
	stmt := &ast.ForStatement{Pos: tokenPosition(tok)}
	stmt.Variable = p.parseExpression()
	p.expect(TokenAssign)
	stmt.From = p.parseExpression()

	switch p.current().Type {
	case TokenTo:
		p.next()
	case TokenDownTo:
		p.next()
		stmt.Down = true
	default:
		p.addError(newParseError(p.current(),
			"expected TO or DOWNTO in FOR statement, found %s",
			describeToken(p.current())))
	}

	stmt.To = p.parseExpression()
	p.expect(TokenDo)
	stmt.Body = p.parseStatement()
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	tok := p.next() // WHILE
	stmt := &ast.WhileStatement{Pos: tokenPosition(tok)}
	stmt.Condition = p.parseExpression()
	p.expect(TokenDo)
	stmt.Body = p.parseStatement()
	return stmt
}

func (p *Parser) parseRepeatStatement() ast.Statement {
	tok := p.next() // REPEAT
	stmt := &ast.RepeatStatement{Pos: tokenPosition(tok)}
	stmt.Body = p.parseStatementList(TokenUntil)
	p.expect(TokenUntil)
	stmt.Condition = p.parseExpression()
	return stmt
}

func (p *Parser) parseWithStatement() ast.Statement {
	tok := p.next() // WITH
	stmt := &ast.WithStatement{Pos: tokenPosition(tok)}
	stmt.Record = p.parseExpression()
	p.expect(TokenDo)
	stmt.Body = p.parseStatement()
	return stmt
}

func (p *Parser) parseExitStatement() ast.Statement {
	tok := p.next() // EXIT
	stmt := &ast.ExitStatement{Pos: tokenPosition(tok)}
	if p.match(TokenLeftParen) {
		stmt.Value = p.parseExpression()
		if !p.match(TokenRightParen) {
			p.addError(newParseError(p.current(),
				"EXIT value is not closed, found %s", describeToken(p.current())))
		}
	}
	return stmt
}

// Expression grammar, loosest binding first:
// OR/XOR < AND < relational < additive < multiplicative < unary < postfix

func (p *Parser) parseExpression() ast.Expression {
	return p.parseOrExpression()
}

func (p *Parser) parseOrExpression() ast.Expression {
	left := p.parseAndExpression()
	for left != nil {
		tok := p.current()
		if tok.Type != TokenOr && tok.Type != TokenXor {
			return left
		}
		p.next()
		right := p.parseAndExpression()
		if right == nil {
			return left
		}
		left = &ast.BinaryExpression{
			Left: left, Op: tok.Value, Right: right, Pos: left.Position(),
		}
	}
	return left
}

func (p *Parser) parseAndExpression() ast.Expression {
	left := p.parseRelationalExpression()
	for left != nil && p.current().Type == TokenAnd {
		tok := p.next()
		right := p.parseRelationalExpression()
		if right == nil {
			return left
		}
		left = &ast.BinaryExpression{
			Left: left, Op: tok.Value, Right: right, Pos: left.Position(),
		}
	}
	return left
}

func (p *Parser) parseRelationalExpression() ast.Expression {
	left := p.parseAdditiveExpression()
	for left != nil {
		tok := p.current()
		switch tok.Type {
		case TokenEquals, TokenNotEquals, TokenLess, TokenLessEq,
			TokenGreater, TokenGreaterEq:
			p.next()
			right := p.parseAdditiveExpression()
			if right == nil {
				return left
			}
			left = &ast.BinaryExpression{
				Left: left, Op: tok.Value, Right: right, Pos: left.Position(),
			}
		default:
			return left
		}
	}
	return left
}

func (p *Parser) parseAdditiveExpression() ast.Expression {
	left := p.parseMultiplicativeExpression()
	for left != nil {
		tok := p.current()
		if tok.Type != TokenPlus && tok.Type != TokenMinus {
			return left
		}
		p.next()
		right := p.parseMultiplicativeExpression()
		if right == nil {
			return left
		}
		left = &ast.BinaryExpression{
			Left: left, Op: tok.Value, Right: right, Pos: left.Position(),
		}
	}
	return left
}

func (p *Parser) parseMultiplicativeExpression() ast.Expression {
	left := p.parseUnaryExpression()
	for left != nil {
		tok := p.current()
		switch tok.Type {
		case TokenStar, TokenSlash, TokenDiv, TokenMod:
			p.next()
			right := p.parseUnaryExpression()
			if right == nil {
				return left
			}
			left = &ast.BinaryExpression{
				Left: left, Op: tok.Value, Right: right, Pos: left.Position(),
			}
		default:
			return left
		}
	}
	return left
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	tok := p.current()
	switch tok.Type {
	case TokenNot, TokenMinus, TokenPlus:
		p.next()
		operand := p.parseUnaryExpression()
		if operand == nil {
			return nil
		}
		return &ast.UnaryExpression{
			Op: tok.Value, Operand: operand, Pos: tokenPosition(tok),
		}
	}
	return p.parsePostfixExpression()
}

// parsePostfixExpression parses member access, option qualification,
// array indexing, and calls in any combination
func (p *Parser) parsePostfixExpression() ast.Expression {
	expr := p.parsePrimaryExpression()
	for expr != nil {
		tok := p.current()
		switch tok.Type {
		case TokenDot:
			p.next()
			member := p.current()
			if !isNameToken(member) {
				p.addError(newParseError(member,
					"expected member name after '.', found %s", describeToken(member)))
				return expr
			}
			p.next()
			expr = &ast.MemberExpression{
				Target: expr, Member: member.Value, Op: ".", Pos: expr.Position(),
			}
		case TokenDoubleColon:
			p.next()
			member := p.current()
			if !isNameToken(member) && member.Type != TokenInteger {
				p.addError(newParseError(member,
					"expected option value after '::', found %s", describeToken(member)))
				return expr
			}
			p.next()
			expr = &ast.MemberExpression{
				Target: expr, Member: member.Value, Op: "::", Pos: expr.Position(),
			}
		case TokenLeftBracket:
			p.next()
			access := &ast.ArrayAccessExpression{Target: expr, Pos: expr.Position()}
			for !p.atEOF() {
				idx := p.parseExpression()
				if idx == nil {
					break
				}
				access.Indices = append(access.Indices, idx)
				if !p.match(TokenComma) {
					break
				}
			}
			if !p.match(TokenRightBracket) {
				p.addError(newParseError(p.current(),
					"array index is not closed, found %s", describeToken(p.current())))
			}
			expr = access
		case TokenLeftParen:
			p.next()
			call := &ast.CallExpression{Target: expr, Pos: expr.Position()}
			for !p.atEOF() && p.current().Type != TokenRightParen {
				arg := p.parseExpression()
				if arg == nil {
					break
				}
				call.Arguments = append(call.Arguments, arg)
				if !p.match(TokenComma) {
					break
				}
			}
			if !p.match(TokenRightParen) {
				p.addError(newParseError(p.current(),
					"argument list is not closed, found %s", describeToken(p.current())))
			}
			expr = call
		default:
			return expr
		}
	}
	return expr
}

func (p *Parser) parsePrimaryExpression() ast.Expression {
	tok := p.current()
	switch tok.Type {
	case TokenIdentifier:
		p.next()
		return &ast.IdentifierExpression{Name: tok.Value, Pos: tokenPosition(tok)}
	case TokenQuotedIdentifier:
		p.next()
		return &ast.IdentifierExpression{
			Name: tok.Value, Quoted: true, Pos: tokenPosition(tok),
		}
	case TokenInteger:
		p.next()
		return literal(ast.LiteralInteger, tok)
	case TokenDecimal:
		p.next()
		return literal(ast.LiteralDecimal, tok)
	case TokenString:
		p.next()
		return literal(ast.LiteralString, tok)
	case TokenDate:
		p.next()
		return literal(ast.LiteralDate, tok)
	case TokenTime:
		p.next()
		return literal(ast.LiteralTime, tok)
	case TokenDateTime:
		p.next()
		return literal(ast.LiteralDateTime, tok)
	case TokenLeftParen:
		p.next()
		expr := p.parseExpression()
		if !p.match(TokenRightParen) {
			p.addError(newParseError(p.current(),
				"expected ')', found %s", describeToken(p.current())))
		}
		return expr
	case TokenALKeyword, TokenALAccessModifier, TokenALTernary, TokenALPreprocessor:
		p.rejectALConstruct(tok)
		p.next()
		return nil
	default:
		p.addError(newParseError(tok, "expected expression, found %s",
			describeToken(tok)))
		return nil
	}
}

// literal builds a literal expression from a token
func literal(kind ast.LiteralKind, tok Token) ast.Expression {
	return &ast.LiteralExpression{Kind: kind, Raw: tok.Value, Pos: tokenPosition(tok)}
}

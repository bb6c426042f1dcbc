// File: parser.go
// Title: C/AL Parser
// Description: Recursive-descent parser for C/AL exported object text.
//              Parses the object header, the structural sections
//              (PROPERTIES, FIELDS, KEYS, CONTROLS, FIELDGROUPS, CODE),
//              and skips the remaining recognized sections with balanced
//              brace scanning. Parse errors are collected, never thrown;
//              the parser recovers at section and procedure boundaries
//              and always returns a document.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial recursive-descent parser

package parser

import (
	"strconv"
	"strings"

	"github.com/klauskaan/C-AL-Language-sub012/cal/ast"
	callog "github.com/klauskaan/C-AL-Language-sub012/core/log"
	calstringx "github.com/klauskaan/C-AL-Language-sub012/utils/stringx"
)

// DefaultMaxErrors caps the number of collected parse errors before the
// parser gives up on the rest of the input
const DefaultMaxErrors = 100

// Options configures a Parser
type Options struct {
	// Logger receives debug-level parse diagnostics. Defaults to the
	// package default logger.
	Logger *callog.Logger

	// MaxErrors caps collected errors; 0 means DefaultMaxErrors
	MaxErrors int

	// MaxInputLength rejects oversized input up front; 0 disables the
	// check
	MaxInputLength int

	// Trace is forwarded to the lexer
	Trace TraceFunc
}

// Parser parses C/AL object text into an AST. A Parser is reusable but
// not safe for concurrent use.
type Parser struct {
	input  string
	tokens []Token
	pos    int
	errors []ParseError

	logger         *callog.Logger
	maxErrors      int
	maxInputLength int
	trace          TraceFunc
}

// New creates a parser with default options
func New() *Parser {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a parser with the given options
func NewWithOptions(opts Options) *Parser {
	logger := opts.Logger
	if logger == nil {
		logger = callog.GetDefault()
	}
	maxErrors := opts.MaxErrors
	if maxErrors <= 0 {
		maxErrors = DefaultMaxErrors
	}
	return &Parser{
		logger:         logger,
		maxErrors:      maxErrors,
		maxInputLength: opts.MaxInputLength,
		trace:          opts.Trace,
	}
}

// Errors returns the parse errors collected by the last Parse call
func (p *Parser) Errors() []ParseError {
	return p.errors
}

// Parse tokenizes and parses the input. It always returns a document;
// malformed input yields a partial document plus errors, never a panic.
func (p *Parser) Parse(input string) *ast.Document {
	p.input = input
	p.pos = 0
	p.errors = nil

	doc := &ast.Document{Pos: ast.Position{Line: 1, Column: 1}}

	if p.maxInputLength > 0 && len(input) > p.maxInputLength {
		p.addError(newParseError(Token{Line: 1, Column: 1},
			"input exceeds maximum length of %d bytes", p.maxInputLength))
		p.tokens = []Token{{Type: TokenEOF, Line: 1, Column: 1}}
		return doc
	}

	lexer := NewLexer(input)
	lexer.SetTrace(p.trace)
	p.tokens = lexer.Tokenize()

	p.logger.WithFields(callog.Fields{
		"tokens": len(p.tokens),
		"bytes":  len(input),
	}).Debug("parse started")

	p.parseDocument(doc)

	p.logger.WithFields(callog.Fields{
		"errors": len(p.errors),
	}).Debug("parse finished")

	return doc
}

// parseDocument finds and parses the object declaration, flagging
// anything unexpected before it
func (p *Parser) parseDocument(doc *ast.Document) {
	for !p.atEOF() && !p.errorsFull() {
		tok := p.current()
		switch tok.Type {
		case TokenObject:
			doc.Object = p.parseObject()
			return
		case TokenALKeyword, TokenALAccessModifier, TokenALTernary, TokenALPreprocessor:
			p.rejectALConstruct(tok)
			p.next()
		default:
			p.addError(newParseError(tok, "expected OBJECT declaration, found %s",
				describeToken(tok)))
			p.next()
		}
	}
}

// rejectALConstruct reports an AL-only construct by its exact text
func (p *Parser) rejectALConstruct(tok Token) {
	p.addError(newParseError(tok,
		"AL-only construct %q is not valid in C/AL", tok.Value))
}

// parseObject parses OBJECT Kind ID Name { sections }
func (p *Parser) parseObject() *ast.Object {
	objTok := p.expect(TokenObject)
	obj := &ast.Object{Pos: tokenPosition(objTok)}

	kindTok := p.current()
	if kindTok.Type == TokenIdentifier {
		p.next()
		obj.Kind = ast.ParseObjectKind(kindTok.Value)
		if obj.Kind == ast.ObjectKindUnknown {
			p.addError(newParseError(kindTok, "unknown object kind %s",
				describeToken(kindTok)))
		}
	} else {
		p.addError(newParseError(kindTok, "expected object kind, found %s",
			describeToken(kindTok)))
	}

	idTok := p.current()
	if idTok.Type == TokenInteger {
		p.next()
		id, err := strconv.Atoi(idTok.Value)
		if err == nil {
			obj.ID = id
		}
	} else {
		p.addError(newParseError(idTok, "expected object ID, found %s",
			describeToken(idTok)))
	}

	// The object name runs up to the opening brace and may contain
	// spaces, dots, and keywords; capture it as a raw source slice.
	nameStart := p.current().Position
	for !p.atEOF() && p.current().Type != TokenLeftBrace {
		p.next()
	}
	obj.Name = strings.TrimSpace(p.input[nameStart:p.current().Position])
	if calstringx.IsBlank(obj.Name) {
		p.addError(newParseError(p.current(), "object name is missing"))
	}

	if p.expectOrRecover(TokenLeftBrace).Type != TokenLeftBrace {
		return obj
	}

	p.parseObjectBody(obj)

	if p.current().Type == TokenRightBrace {
		p.next()
	} else if !p.errorsFull() {
		p.addError(newParseError(p.current(),
			"object is not closed, found %s", describeToken(p.current())))
	}
	return obj
}

// parseObjectBody dispatches the sections inside the object braces
func (p *Parser) parseObjectBody(obj *ast.Object) {
	for !p.atEOF() && !p.errorsFull() {
		tok := p.current()
		switch tok.Type {
		case TokenRightBrace:
			return
		case TokenSectionKeyword:
			p.parseSection(obj, tok)
		case TokenALKeyword, TokenALAccessModifier, TokenALTernary, TokenALPreprocessor:
			p.rejectALConstruct(tok)
			p.next()
		default:
			p.addError(newParseError(tok, "expected section keyword, found %s",
				describeToken(tok)))
			p.synchronize()
		}
	}
}

// parseSection parses one named section. Sections without structural
// meaning for downstream consumers are skipped with balanced braces.
func (p *Parser) parseSection(obj *ast.Object, tok Token) {
	section := LookupSectionType(tok.Value)
	p.next() // section keyword

	switch section {
	case SectionProperties:
		obj.Properties = p.parsePropertiesSection(tok)
	case SectionFields:
		obj.Fields = p.parseFieldsSection(tok)
	case SectionKeys:
		obj.Keys = p.parseKeysSection(tok)
	case SectionControls:
		obj.Controls = p.parseControlsSection(tok)
	case SectionFieldGroups:
		obj.FieldGroups = p.parseFieldGroupsSection(tok)
	case SectionCode:
		obj.Code = p.parseCodeSection(tok)
	default:
		obj.Skipped = append(obj.Skipped, p.skipSection(tok))
	}
}

// skipSection consumes a section body with balanced brace counting and
// records only its name
func (p *Parser) skipSection(keyword Token) *ast.SkippedSection {
	skipped := &ast.SkippedSection{
		Name: keyword.Value,
		Pos:  tokenPosition(keyword),
	}
	if p.expectOrRecover(TokenLeftBrace).Type != TokenLeftBrace {
		return skipped
	}
	depth := 1
	for !p.atEOF() && depth > 0 {
		switch p.current().Type {
		case TokenLeftBrace:
			depth++
		case TokenRightBrace:
			depth--
		}
		p.next()
	}
	if depth > 0 {
		p.addError(newParseError(keyword, "section %s is not closed", keyword.Value))
	}
	return skipped
}

// parsePropertiesSection parses PROPERTIES { name=value; ... }
func (p *Parser) parsePropertiesSection(keyword Token) *ast.PropertiesSection {
	section := &ast.PropertiesSection{Pos: tokenPosition(keyword)}
	if p.expectOrRecover(TokenLeftBrace).Type != TokenLeftBrace {
		return section
	}
	section.Properties = p.parsePropertyList()
	p.closeBrace(keyword)
	return section
}

// parsePropertyList parses name[=value]; rows until the closing brace,
// which is left unconsumed
func (p *Parser) parsePropertyList() []*ast.Property {
	var props []*ast.Property
	for !p.atEOF() && !p.errorsFull() {
		tok := p.current()
		if tok.Type == TokenRightBrace {
			return props
		}
		if tok.Type == TokenSemicolon {
			p.next()
			continue
		}
		prop := p.parseProperty()
		if prop == nil {
			p.synchronizeProperty()
			continue
		}
		props = append(props, prop)
	}
	return props
}

// parseProperty parses a single name[=value] row
func (p *Parser) parseProperty() *ast.Property {
	nameTok := p.current()
	if nameTok.Type != TokenIdentifier && nameTok.Type != TokenQuotedIdentifier {
		p.addError(newParseError(nameTok, "expected property name, found %s",
			describeToken(nameTok)))
		return nil
	}
	p.next()

	prop := &ast.Property{
		Name:      nameTok.Value,
		IsTrigger: IsTriggerProperty(nameTok.Value),
		Pos:       tokenPosition(nameTok),
	}

	if p.current().Type != TokenEquals {
		if p.current().Type == TokenSemicolon {
			p.next()
		}
		return prop
	}
	p.next() // =

	prop.Value = p.captureRawValue()
	if p.current().Type == TokenSemicolon {
		p.next()
	}
	return prop
}

// captureRawValue captures a property value as a raw source slice. The
// value ends at a semicolon outside any BEGIN/END or bracket nesting,
// or at the closing brace of the enclosing block. Trigger bodies ride
// along verbatim.
func (p *Parser) captureRawValue() string {
	start := p.current().Position
	end := start
	beginDepth := 0
	bracketDepth := 0
	braceDepth := 0

	for !p.atEOF() {
		tok := p.current()
		switch tok.Type {
		case TokenBegin, TokenCase:
			beginDepth++
		case TokenEnd:
			if beginDepth > 0 {
				beginDepth--
			}
		case TokenLeftBracket:
			bracketDepth++
		case TokenRightBracket:
			if bracketDepth > 0 {
				bracketDepth--
			}
		case TokenLeftBrace:
			braceDepth++
		case TokenRightBrace:
			if braceDepth == 0 {
				return strings.TrimSpace(p.input[start:tok.Position])
			}
			braceDepth--
		case TokenSemicolon:
			if beginDepth == 0 && bracketDepth == 0 && braceDepth == 0 {
				return strings.TrimSpace(p.input[start:tok.Position])
			}
		}
		end = tok.Position + len(tok.Value)
		p.next()
	}
	if end > len(p.input) {
		end = len(p.input)
	}
	return strings.TrimSpace(p.input[start:end])
}

// rawRow is one brace-delimited row split into its structural cells and
// trailing properties
type rawRow struct {
	open  Token
	cells []string
	props []*ast.Property
}

// parseRows parses consecutive { ... } rows until the section's closing
// brace, which is left unconsumed
func (p *Parser) parseRows(structuralCells int) []rawRow {
	var rows []rawRow
	for !p.atEOF() && !p.errorsFull() {
		tok := p.current()
		if tok.Type == TokenRightBrace {
			return rows
		}
		if tok.Type != TokenLeftBrace {
			p.addError(newParseError(tok, "expected row, found %s",
				describeToken(tok)))
			p.synchronize()
			continue
		}
		rows = append(rows, p.parseRow(structuralCells))
	}
	return rows
}

// parseRow parses { cell;cell;...;props } with the given number of
// leading structural cells
func (p *Parser) parseRow(structuralCells int) rawRow {
	row := rawRow{open: p.current()}
	p.next() // {

	for len(row.cells) < structuralCells && !p.atEOF() {
		if p.current().Type == TokenRightBrace {
			break
		}
		row.cells = append(row.cells, p.captureCell())
		if p.current().Type == TokenSemicolon {
			p.next()
		}
	}

	if p.current().Type != TokenRightBrace {
		row.props = p.parsePropertyList()
	}

	if p.current().Type == TokenRightBrace {
		p.next()
	} else if !p.errorsFull() {
		p.addError(newParseError(row.open, "row is not closed"))
	}
	return row
}

// captureCell captures one structural cell as a raw source slice ending
// at the next semicolon or closing brace
func (p *Parser) captureCell() string {
	start := p.current().Position
	end := start
	for !p.atEOF() {
		tok := p.current()
		if tok.Type == TokenSemicolon || tok.Type == TokenRightBrace {
			return strings.TrimSpace(p.input[start:tok.Position])
		}
		end = tok.Position + len(tok.Value)
		p.next()
	}
	if end > len(p.input) {
		end = len(p.input)
	}
	return strings.TrimSpace(p.input[start:end])
}

// cellAt returns the nth cell of a row, "" when absent
func (r rawRow) cellAt(n int) string {
	if n < len(r.cells) {
		return r.cells[n]
	}
	return ""
}

// parseEnabledCell interprets an enabled-flag cell: blank and Yes mean
// enabled, No means disabled
func parseEnabledCell(cell string) bool {
	return !calstringx.EqualsIgnoreCase(strings.TrimSpace(cell), "No")
}

// parseIntCell parses an integer cell, reporting a sanitized error on
// malformed content
func (p *Parser) parseIntCell(row rawRow, n int, what string) int {
	cell := row.cellAt(n)
	if calstringx.IsBlank(cell) {
		return 0
	}
	v, err := strconv.Atoi(cell)
	if err != nil {
		p.addError(newParseError(row.open, "row has a malformed %s cell", what))
		return 0
	}
	return v
}

// splitFieldList splits a comma-separated field list cell
func splitFieldList(cell string) []string {
	if calstringx.IsBlank(cell) {
		return nil
	}
	parts := strings.Split(cell, ",")
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	return fields
}

// parseFieldsSection parses FIELDS { { number;enabled;name;type;props } }
func (p *Parser) parseFieldsSection(keyword Token) *ast.FieldsSection {
	section := &ast.FieldsSection{Pos: tokenPosition(keyword)}
	if p.expectOrRecover(TokenLeftBrace).Type != TokenLeftBrace {
		return section
	}
	for _, row := range p.parseRows(StructuralColumnCount(SectionFields)) {
		section.Fields = append(section.Fields, &ast.FieldDeclaration{
			Number:     p.parseIntCell(row, 0, "field number"),
			Enabled:    parseEnabledCell(row.cellAt(1)),
			Name:       row.cellAt(2),
			TypeName:   row.cellAt(3),
			Properties: row.props,
			Pos:        tokenPosition(row.open),
		})
	}
	p.closeBrace(keyword)
	return section
}

// parseKeysSection parses KEYS { { enabled;fieldlist;props } }
func (p *Parser) parseKeysSection(keyword Token) *ast.KeysSection {
	section := &ast.KeysSection{Pos: tokenPosition(keyword)}
	if p.expectOrRecover(TokenLeftBrace).Type != TokenLeftBrace {
		return section
	}
	for _, row := range p.parseRows(StructuralColumnCount(SectionKeys)) {
		section.Keys = append(section.Keys, &ast.KeyDeclaration{
			Enabled:    parseEnabledCell(row.cellAt(0)),
			Fields:     splitFieldList(row.cellAt(1)),
			Properties: row.props,
			Pos:        tokenPosition(row.open),
		})
	}
	p.closeBrace(keyword)
	return section
}

// parseControlsSection parses CONTROLS { { id;indent;type;props } }
func (p *Parser) parseControlsSection(keyword Token) *ast.ControlsSection {
	section := &ast.ControlsSection{Pos: tokenPosition(keyword)}
	if p.expectOrRecover(TokenLeftBrace).Type != TokenLeftBrace {
		return section
	}
	for _, row := range p.parseRows(StructuralColumnCount(SectionControls)) {
		section.Controls = append(section.Controls, &ast.ControlDeclaration{
			ID:         p.parseIntCell(row, 0, "control ID"),
			Indent:     p.parseIntCell(row, 1, "indentation"),
			Type:       row.cellAt(2),
			Properties: row.props,
			Pos:        tokenPosition(row.open),
		})
	}
	p.closeBrace(keyword)
	return section
}

// parseFieldGroupsSection parses FIELDGROUPS { { id;name;fieldlist } }.
// The field list rides in the third cell, after the structural pair.
func (p *Parser) parseFieldGroupsSection(keyword Token) *ast.FieldGroupsSection {
	section := &ast.FieldGroupsSection{Pos: tokenPosition(keyword)}
	if p.expectOrRecover(TokenLeftBrace).Type != TokenLeftBrace {
		return section
	}
	for _, row := range p.parseRows(StructuralColumnCount(SectionFieldGroups) + 1) {
		section.Groups = append(section.Groups, &ast.FieldGroupDeclaration{
			ID:     p.parseIntCell(row, 0, "group ID"),
			Name:   row.cellAt(1),
			Fields: splitFieldList(row.cellAt(2)),
			Pos:    tokenPosition(row.open),
		})
	}
	p.closeBrace(keyword)
	return section
}

// closeBrace consumes the closing brace of a section, reporting when it
// is missing
func (p *Parser) closeBrace(keyword Token) {
	if p.current().Type == TokenRightBrace {
		p.next()
		return
	}
	if !p.errorsFull() {
		p.addError(newParseError(keyword, "section %s is not closed", keyword.Value))
	}
}

// Token stream helpers

func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek() Token {
	if p.pos+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) next() Token {
	tok := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) atEOF() bool {
	return p.current().Type == TokenEOF
}

// match consumes the current token if it has the given type
func (p *Parser) match(tt TokenType) bool {
	if p.current().Type == tt {
		p.next()
		return true
	}
	return false
}

// expect consumes and returns the current token when it matches,
// otherwise reports an error and returns the unconsumed token
func (p *Parser) expect(tt TokenType) Token {
	tok := p.current()
	if tok.Type == tt {
		p.next()
		return tok
	}
	p.addError(newParseError(tok, "expected %s, found %s",
		tt.String(), describeToken(tok)))
	return tok
}

// expectOrRecover behaves like expect but synchronizes on mismatch
func (p *Parser) expectOrRecover(tt TokenType) Token {
	tok := p.current()
	if tok.Type == tt {
		p.next()
		return tok
	}
	p.addError(newParseError(tok, "expected %s, found %s",
		tt.String(), describeToken(tok)))
	p.synchronize()
	return tok
}

// addError records a parse error up to the configured cap
func (p *Parser) addError(err ParseError) {
	if len(p.errors) >= p.maxErrors {
		return
	}
	p.errors = append(p.errors, err)
	if len(p.errors) == p.maxErrors {
		p.logger.WithField("max_errors", p.maxErrors).
			Warn("error limit reached, abandoning the rest of the input")
	}
}

// errorsFull reports whether the error cap has been hit
func (p *Parser) errorsFull() bool {
	return len(p.errors) >= p.maxErrors
}

// synchronize advances to the next safe recovery point: a section
// keyword (tokenized as such or appearing as an identifier followed by
// an opening brace), a procedure boundary, a closing brace, or EOF
func (p *Parser) synchronize() {
	startPos := p.pos
	for !p.atEOF() {
		tok := p.current()
		switch tok.Type {
		case TokenSectionKeyword, TokenProcedure, TokenFunction, TokenLocal,
			TokenRightBrace:
			if p.pos == startPos {
				// Guarantee progress when called at a recovery point
				p.next()
				continue
			}
			return
		case TokenIdentifier:
			if LookupSectionType(tok.Value) != SectionNone &&
				p.peek().Type == TokenLeftBrace && p.pos != startPos {
				return
			}
		}
		p.next()
	}
}

// synchronizeProperty advances past the current property row
func (p *Parser) synchronizeProperty() {
	for !p.atEOF() {
		switch p.current().Type {
		case TokenSemicolon:
			p.next()
			return
		case TokenRightBrace:
			return
		}
		p.next()
	}
}

// tokenPosition converts a token's location to an AST position
func tokenPosition(tok Token) ast.Position {
	return ast.Position{Line: tok.Line, Column: tok.Column, Offset: tok.Position}
}

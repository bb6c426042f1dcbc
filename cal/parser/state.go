// File: state.go
// Title: Lexer Context State Manager
// Description: Tracks the structural context of the lexer as a pure
//              state machine: nesting context stack, brace and bracket
//              depths, structural-column position within section rows,
//              and property-value mode. Every mutation happens through a
//              named event method returning an optional transition, so
//              callers can emit trace events and the guard logic stays
//              unit-testable without character scanning.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial context state machine

package parser

import "strings"

// LexerContext identifies the structural nesting context
type LexerContext int

const (
	// ContextNormal is the permanent floor of the context stack
	ContextNormal LexerContext = iota

	// ContextObjectLevel is inside an OBJECT declaration's braces
	ContextObjectLevel

	// ContextSectionLevel is inside a section's braces
	ContextSectionLevel

	// ContextCodeBlock is inside a BEGIN...END block or trigger body
	ContextCodeBlock

	// ContextCaseBlock is inside a CASE...END block
	ContextCaseBlock
)

// String returns the name of the context
func (c LexerContext) String() string {
	switch c {
	case ContextNormal:
		return "NORMAL"
	case ContextObjectLevel:
		return "OBJECT_LEVEL"
	case ContextSectionLevel:
		return "SECTION_LEVEL"
	case ContextCodeBlock:
		return "CODE_BLOCK"
	case ContextCaseBlock:
		return "CASE_BLOCK"
	default:
		return "UNKNOWN"
	}
}

// SectionType identifies a recognized section within an object
type SectionType int

const (
	SectionNone SectionType = iota
	SectionProperties
	SectionFields
	SectionKeys
	SectionControls
	SectionElements
	SectionActions
	SectionDataset
	SectionDataItems
	SectionRequestPage
	SectionLabels
	SectionMenuNodes
	SectionCode
	SectionFieldGroups
	SectionRequestForm
)

// String returns the canonical name of the section type
func (s SectionType) String() string {
	switch s {
	case SectionProperties:
		return "PROPERTIES"
	case SectionFields:
		return "FIELDS"
	case SectionKeys:
		return "KEYS"
	case SectionControls:
		return "CONTROLS"
	case SectionElements:
		return "ELEMENTS"
	case SectionActions:
		return "ACTIONS"
	case SectionDataset:
		return "DATASET"
	case SectionDataItems:
		return "DATAITEMS"
	case SectionRequestPage:
		return "REQUESTPAGE"
	case SectionLabels:
		return "LABELS"
	case SectionMenuNodes:
		return "MENUNODES"
	case SectionCode:
		return "CODE"
	case SectionFieldGroups:
		return "FIELDGROUPS"
	case SectionRequestForm:
		return "REQUESTFORM"
	default:
		return "NONE"
	}
}

// sectionTypes maps upper-cased section keyword text to its type
var sectionTypes = map[string]SectionType{
	"PROPERTIES":  SectionProperties,
	"FIELDS":      SectionFields,
	"KEYS":        SectionKeys,
	"CONTROLS":    SectionControls,
	"ELEMENTS":    SectionElements,
	"ACTIONS":     SectionActions,
	"DATASET":     SectionDataset,
	"DATAITEMS":   SectionDataItems,
	"REQUESTPAGE": SectionRequestPage,
	"LABELS":      SectionLabels,
	"MENUNODES":   SectionMenuNodes,
	"CODE":        SectionCode,
	"FIELDGROUPS": SectionFieldGroups,
	"REQUESTFORM": SectionRequestForm,
}

// LookupSectionType resolves a keyword to a section type,
// case-insensitively. Returns SectionNone for unrecognized text.
func LookupSectionType(name string) SectionType {
	return sectionTypes[strings.ToUpper(name)]
}

// structuralColumnCounts declares how many leading columns of a
// section's row syntax are structural (position-defined) before the
// free-form trailing properties region begins. Sections not listed
// have no structural columns.
var structuralColumnCounts = map[SectionType]int{
	SectionFields:      4,
	SectionKeys:        2,
	SectionControls:    3,
	SectionFieldGroups: 2,
	SectionElements:    4,
	SectionActions:     3,
}

// StructuralColumnCount returns the number of structural columns for a
// section type
func StructuralColumnCount(section SectionType) int {
	return structuralColumnCounts[section]
}

// FieldDefColumn tracks the position within a brace-delimited
// structural row
type FieldDefColumn int

const (
	ColumnNone FieldDefColumn = iota
	Column1
	Column2
	Column3
	Column4
	ColumnProperties
)

// String returns the name of the column position
func (c FieldDefColumn) String() string {
	switch c {
	case ColumnNone:
		return "NONE"
	case Column1:
		return "COL_1"
	case Column2:
		return "COL_2"
	case Column3:
		return "COL_3"
	case Column4:
		return "COL_4"
	case ColumnProperties:
		return "PROPERTIES"
	default:
		return "UNKNOWN"
	}
}

// triggerProperties is the fixed set of property names whose value is a
// code block
var triggerProperties = map[string]bool{
	"ONINSERT":       true,
	"ONMODIFY":       true,
	"ONDELETE":       true,
	"ONRENAME":       true,
	"ONVALIDATE":     true,
	"ONLOOKUP":       true,
	"ONRUN":          true,
	"ONINIT":         true,
	"ONOPENPAGE":     true,
	"ONCLOSEPAGE":    true,
	"ONACTION":       true,
	"ONDRILLDOWN":    true,
	"ONASSISTEDIT":   true,
	"ONINITREPORT":   true,
	"ONPREREPORT":    true,
	"ONPOSTREPORT":   true,
	"ONPREDATAITEM":  true,
	"ONPOSTDATAITEM": true,
}

// IsTriggerProperty reports whether name is a trigger property,
// case-insensitively
func IsTriggerProperty(name string) bool {
	return triggerProperties[strings.ToUpper(name)]
}

// TransitionType distinguishes push and pop context transitions
type TransitionType int

const (
	TransitionPush TransitionType = iota
	TransitionPop
)

// String returns the name of the transition type
func (t TransitionType) String() string {
	if t == TransitionPush {
		return "push"
	}
	return "pop"
}

// ContextTransition describes a single context stack change
type ContextTransition struct {
	Type TransitionType
	From LexerContext
	To   LexerContext
}

// contextFrame is one entry of the context stack. Section frames record
// the brace depth at which they were entered so their closing brace can
// be recognized, and whether that closing brace has been seen.
type contextFrame struct {
	context    LexerContext
	entryDepth int
	section    SectionType
	closed     bool
}

// LexerState is the single mutable record tracking where the lexer is,
// structurally. All mutation goes through the On* event methods.
type LexerState struct {
	frames                   []contextFrame
	braceDepth               int
	bracketDepth             int
	inPropertyValue          bool
	lastPropertyName         string
	lastWasSectionKeyword    bool
	currentSectionType       SectionType
	fieldDefColumn           FieldDefColumn
	contextUnderflowDetected bool
	objectTokenIndex         int
}

// NewLexerState creates a state with the permanent NORMAL floor
func NewLexerState() *LexerState {
	s := &LexerState{}
	s.Reset()
	return s
}

// Reset restores the state to its initial configuration. Repeated
// tokenize calls on a reused lexer must observe zero residue.
func (s *LexerState) Reset() {
	s.frames = s.frames[:0]
	s.frames = append(s.frames, contextFrame{context: ContextNormal})
	s.braceDepth = 0
	s.bracketDepth = 0
	s.inPropertyValue = false
	s.lastPropertyName = ""
	s.lastWasSectionKeyword = false
	s.currentSectionType = SectionNone
	s.fieldDefColumn = ColumnNone
	s.contextUnderflowDetected = false
	s.objectTokenIndex = -1
}

// Current returns the context on top of the stack
func (s *LexerState) Current() LexerContext {
	return s.frames[len(s.frames)-1].context
}

// Depth returns the number of stack entries; never less than 1
func (s *LexerState) Depth() int {
	return len(s.frames)
}

// Contexts returns a copy of the context stack, bottom first
func (s *LexerState) Contexts() []LexerContext {
	contexts := make([]LexerContext, len(s.frames))
	for i, f := range s.frames {
		contexts[i] = f.context
	}
	return contexts
}

// IsClean reports whether the stack is back to the NORMAL floor only
func (s *LexerState) IsClean() bool {
	return len(s.frames) == 1
}

// BraceDepth returns the current brace nesting depth
func (s *LexerState) BraceDepth() int {
	return s.braceDepth
}

// BracketDepth returns the current bracket nesting depth
func (s *LexerState) BracketDepth() int {
	return s.bracketDepth
}

// InPropertyValue reports whether the lexer is inside a property value
func (s *LexerState) InPropertyValue() bool {
	return s.inPropertyValue
}

// LastPropertyName returns the most recently seen property name
func (s *LexerState) LastPropertyName() string {
	return s.lastPropertyName
}

// CurrentSectionType returns the section currently being lexed,
// SectionNone when outside any section
func (s *LexerState) CurrentSectionType() SectionType {
	return s.currentSectionType
}

// FieldDefColumn returns the current structural-row column position
func (s *LexerState) FieldDefColumn() FieldDefColumn {
	return s.fieldDefColumn
}

// UnderflowDetected reports whether an END without a matching open
// block was seen
func (s *LexerState) UnderflowDetected() bool {
	return s.contextUnderflowDetected
}

// ObjectTokenIndex returns the token index of the OBJECT keyword, -1
// when none was seen
func (s *LexerState) ObjectTokenIndex() int {
	return s.objectTokenIndex
}

// push adds a frame and returns the corresponding transition
func (s *LexerState) push(frame contextFrame) *ContextTransition {
	from := s.Current()
	s.frames = append(s.frames, frame)
	return &ContextTransition{Type: TransitionPush, From: from, To: frame.context}
}

// pop removes the top frame, respecting the floor of 1
func (s *LexerState) pop() *ContextTransition {
	if len(s.frames) <= 1 {
		s.contextUnderflowDetected = true
		return nil
	}
	from := s.Current()
	s.frames = s.frames[:len(s.frames)-1]
	return &ContextTransition{Type: TransitionPop, From: from, To: s.Current()}
}

// topSectionFrame returns the index of the topmost SECTION_LEVEL frame,
// or -1 when there is none
func (s *LexerState) topSectionFrame() int {
	for i := len(s.frames) - 1; i >= 1; i-- {
		if s.frames[i].context == ContextSectionLevel {
			return i
		}
	}
	return -1
}

// isStructuralColumn reports whether the given column is a structural
// (position-defined) column for the current section type
func (s *LexerState) isStructuralColumn(column FieldDefColumn) bool {
	if column == ColumnNone || column == ColumnProperties {
		return false
	}
	count := StructuralColumnCount(s.currentSectionType)
	return int(column) <= count
}

// ShouldProtectFromBeginEnd reports whether BEGIN/END text at the
// current position is a structural row name rather than code
func (s *LexerState) ShouldProtectFromBeginEnd() bool {
	return s.isStructuralColumn(s.fieldDefColumn) && !s.inPropertyValue
}

// ShouldProtectFromSectionKeyword reports whether section keyword text
// at the current position is a structural row name rather than a
// section start
func (s *LexerState) ShouldProtectFromSectionKeyword() bool {
	return s.isStructuralColumn(s.fieldDefColumn) && !s.inPropertyValue
}

// OnObjectKeyword handles an OBJECT keyword at the given token index
func (s *LexerState) OnObjectKeyword(tokenIndex int) *ContextTransition {
	if s.Current() == ContextObjectLevel {
		return nil
	}
	s.objectTokenIndex = tokenIndex
	return s.push(contextFrame{context: ContextObjectLevel})
}

// OnSectionKeyword handles a recognized section keyword. The context
// stack does not change until the section's opening brace arrives.
func (s *LexerState) OnSectionKeyword(section SectionType) {
	s.currentSectionType = section
	s.lastWasSectionKeyword = true
}

// OnOpenBrace handles a structural opening brace
func (s *LexerState) OnOpenBrace() *ContextTransition {
	s.braceDepth++
	if s.lastWasSectionKeyword {
		s.lastWasSectionKeyword = false
		return s.push(contextFrame{
			context:    ContextSectionLevel,
			entryDepth: s.braceDepth,
			section:    s.currentSectionType,
		})
	}
	if s.Current() == ContextSectionLevel && s.fieldDefColumn == ColumnNone {
		// Start of a structural row
		s.fieldDefColumn = Column1
	}
	return nil
}

// OnCloseBrace handles a structural closing brace. Every row-closing
// brace resets the column and property flags on its own; relying on the
// section close alone lets a keyword used as a field name contaminate
// the next row.
func (s *LexerState) OnCloseBrace() *ContextTransition {
	if s.braceDepth > 0 {
		s.braceDepth--
	}

	idx := s.topSectionFrame()
	if idx < 0 {
		return nil
	}
	frame := &s.frames[idx]

	if s.braceDepth == frame.entryDepth-1 {
		frame.closed = true
		s.fieldDefColumn = ColumnNone
		s.lastPropertyName = ""
		s.lastWasSectionKeyword = false
		s.inPropertyValue = false
		if idx == len(s.frames)-1 {
			transition := s.pop()
			s.currentSectionType = s.enclosingSectionType()
			return transition
		}
		// Closing brace seen while inner frames are still open; the
		// frame stays for cleanupContextStack to report.
		return nil
	}

	if s.braceDepth == frame.entryDepth && s.fieldDefColumn != ColumnNone {
		s.fieldDefColumn = ColumnNone
		s.lastPropertyName = ""
		s.lastWasSectionKeyword = false
		s.inPropertyValue = false
	}
	return nil
}

// enclosingSectionType returns the section type of the topmost
// remaining SECTION_LEVEL frame
func (s *LexerState) enclosingSectionType() SectionType {
	if idx := s.topSectionFrame(); idx >= 0 {
		return s.frames[idx].section
	}
	return SectionNone
}

// OnSemicolon handles a semicolon: advances the structural column within
// an open row and ends a property value at bracket depth zero
func (s *LexerState) OnSemicolon() {
	if s.fieldDefColumn != ColumnNone && s.fieldDefColumn != ColumnProperties {
		count := StructuralColumnCount(s.currentSectionType)
		next := s.fieldDefColumn + 1
		if int(next) > count || next > Column4 {
			next = ColumnProperties
		}
		s.fieldDefColumn = next
	}
	if s.inPropertyValue && s.bracketDepth == 0 {
		s.inPropertyValue = false
	}
}

// OnIdentifier records a candidate property name. Identifiers inside
// protected structural columns or property values are row content, not
// property names.
func (s *LexerState) OnIdentifier(name string) {
	if s.Current() != ContextSectionLevel {
		return
	}
	if s.isStructuralColumn(s.fieldDefColumn) || s.inPropertyValue {
		return
	}
	s.lastPropertyName = name
}

// OnEquals enters property-value mode when a property name precedes it
func (s *LexerState) OnEquals() {
	if s.lastPropertyName == "" {
		return
	}
	if s.isStructuralColumn(s.fieldDefColumn) && !s.inPropertyValue {
		return
	}
	s.inPropertyValue = true
}

// OnOpenBracket adjusts the global bracket depth
func (s *LexerState) OnOpenBracket() {
	s.bracketDepth++
}

// OnCloseBracket adjusts the global bracket depth, never below zero
func (s *LexerState) OnCloseBracket() {
	if s.bracketDepth > 0 {
		s.bracketDepth--
	}
}

// OnBeginKeyword handles a BEGIN keyword
func (s *LexerState) OnBeginKeyword() *ContextTransition {
	if s.Current() == ContextCodeBlock {
		return s.push(contextFrame{context: ContextCodeBlock})
	}
	if s.ShouldProtectFromBeginEnd() {
		return nil
	}
	if s.inPropertyValue {
		if IsTriggerProperty(s.lastPropertyName) {
			// lastPropertyName stays set; the trigger needs it to close
			return s.push(contextFrame{context: ContextCodeBlock})
		}
		// BEGIN is a literal property value
		return nil
	}
	// A stale property name from a prior context must not leak into
	// unrelated code.
	s.lastPropertyName = ""
	return s.push(contextFrame{context: ContextCodeBlock})
}

// OnCaseKeyword handles a CASE keyword
func (s *LexerState) OnCaseKeyword() *ContextTransition {
	if s.Current() == ContextCodeBlock || s.Current() == ContextCaseBlock {
		return s.push(contextFrame{context: ContextCaseBlock})
	}
	return nil
}

// OnEndKeyword handles an END keyword, subject to the same guards as
// OnBeginKeyword
func (s *LexerState) OnEndKeyword() *ContextTransition {
	if s.ShouldProtectFromBeginEnd() {
		return nil
	}
	if s.inPropertyValue && !IsTriggerProperty(s.lastPropertyName) {
		return nil
	}
	if s.Current() == ContextCodeBlock || s.Current() == ContextCaseBlock {
		return s.pop()
	}
	// END with no matching open block
	s.contextUnderflowDetected = true
	return nil
}

// CleanupContextStack pops well-formed outer frames at end of input:
// OBJECT_LEVEL frames and SECTION_LEVEL frames whose closing brace was
// seen at the correct depth. Malformed inner frames stay on the stack
// so callers can detect genuine malformation.
func (s *LexerState) CleanupContextStack() []ContextTransition {
	var transitions []ContextTransition
	for len(s.frames) > 1 {
		top := s.frames[len(s.frames)-1]
		wellFormed := top.context == ContextObjectLevel ||
			(top.context == ContextSectionLevel && top.closed)
		if !wellFormed {
			break
		}
		if t := s.pop(); t != nil {
			transitions = append(transitions, *t)
		}
	}
	return transitions
}

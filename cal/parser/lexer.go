// File: lexer.go
// Title: C/AL Lexer
// Description: Tokenizes C/AL exported object text. Keyword recognition
//              is context-sensitive and driven by the LexerState machine:
//              the same word can be a section keyword, a code keyword, or
//              a plain identifier depending on where it appears. The lexer
//              never fails; malformed input becomes Unknown tokens and the
//              stream always terminates with EOF.
// Author: klauskaan
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial context-sensitive lexer

package parser

import (
	"strings"
	"unicode/utf8"
)

// TraceFunc receives lexer trace events. event is a short verb
// ("token", "push", "pop"), token is the token being emitted (zero
// Token for pure transitions), and transition is non-nil for context
// stack changes.
type TraceFunc func(event string, token Token, transition *ContextTransition)

// alKeywords are AL-only constructs recognized unconditionally so the
// parser can reject them with a precise message
var alKeywords = map[string]bool{
	"ENUM":       true,
	"INTERFACE":  true,
	"EXTENDS":    true,
	"MODIFY":     true,
	"IMPLEMENTS": true,
}

// alAccessModifiers are AL-only access modifiers, also recognized
// unconditionally
var alAccessModifiers = map[string]bool{
	"INTERNAL":  true,
	"PROTECTED": true,
	"PUBLIC":    true,
}

// codeKeywords maps upper-cased words to their keyword token type.
// These are only keywords outside protected structural columns and
// property values.
var codeKeywords = map[string]TokenType{
	"IF":        TokenIf,
	"THEN":      TokenThen,
	"ELSE":      TokenElse,
	"OF":        TokenOf,
	"VAR":       TokenVar,
	"PROCEDURE": TokenProcedure,
	"FUNCTION":  TokenFunction,
	"LOCAL":     TokenLocal,
	"FOR":       TokenFor,
	"TO":        TokenTo,
	"DOWNTO":    TokenDownTo,
	"WHILE":     TokenWhile,
	"DO":        TokenDo,
	"REPEAT":    TokenRepeat,
	"UNTIL":     TokenUntil,
	"WITH":      TokenWith,
	"EXIT":      TokenExit,
	"ARRAY":     TokenArray,
	"TEMPORARY": TokenTemporary,
	"NOT":       TokenNot,
	"AND":       TokenAnd,
	"OR":        TokenOr,
	"XOR":       TokenXor,
	"DIV":       TokenDiv,
	"MOD":       TokenMod,
}

// Lexer tokenizes C/AL source text
type Lexer struct {
	input  string
	pos    int // byte offset of the next rune
	line   int
	column int
	state  *LexerState
	tokens []Token
	trace  TraceFunc
}

// NewLexer creates a lexer for the given input
func NewLexer(input string) *Lexer {
	return &Lexer{
		input: input,
		state: NewLexerState(),
	}
}

// SetTrace installs a trace callback. Pass nil to disable tracing.
func (l *Lexer) SetTrace(fn TraceFunc) {
	l.trace = fn
}

// State exposes the context state machine, mainly for tests
func (l *Lexer) State() *LexerState {
	return l.state
}

// Reset rewinds the lexer over new input
func (l *Lexer) Reset(input string) {
	l.input = input
	l.rewind()
}

// rewind restores the scanning position and state without changing the
// input
func (l *Lexer) rewind() {
	l.pos = 0
	l.line = 1
	l.column = 1
	l.tokens = nil
	l.state.Reset()
}

// lexPosition is a scanning position snapshot for backtracking
type lexPosition struct {
	pos    int
	line   int
	column int
}

func (l *Lexer) mark() lexPosition {
	return lexPosition{pos: l.pos, line: l.line, column: l.column}
}

func (l *Lexer) restore(m lexPosition) {
	l.pos = m.pos
	l.line = m.line
	l.column = m.column
}

// current returns the rune at the scanning position, or 0 at EOF
func (l *Lexer) current() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

// peekAhead returns the rune after the current one, or 0
func (l *Lexer) peekAhead() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	_, size := utf8.DecodeRuneInString(l.input[l.pos:])
	if l.pos+size >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos+size:])
	return r
}

// advance consumes the current rune and updates line/column accounting
func (l *Lexer) advance() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

// emit appends a token and fires the trace callback
func (l *Lexer) emit(tok Token) {
	l.tokens = append(l.tokens, tok)
	if l.trace != nil {
		l.trace("token", tok, nil)
	}
}

// emitTransition fires the trace callback for a context change
func (l *Lexer) emitTransition(t *ContextTransition) {
	if t == nil || l.trace == nil {
		return
	}
	l.trace(t.Type.String(), Token{}, t)
}

// Tokenize scans the entire input and returns the token stream. It
// never fails: malformed constructs become Unknown tokens and the last
// token is always EOF. Tokenize rewinds first, so repeated calls on the
// same lexer produce identical results.
func (l *Lexer) Tokenize() []Token {
	l.rewind()

	for l.pos < len(l.input) {
		l.skipWhitespace()
		if l.pos >= len(l.input) {
			break
		}

		start := l.mark()
		r := l.current()

		switch {
		case r == '/' && l.peekAhead() == '/':
			l.skipLineComment()
		case r == '/' && l.peekAhead() == '*':
			l.scanBlockComment(start)
		case r == '{' && l.isCodeComment():
			l.scanBraceComment(start)
		case isIdentStart(r):
			l.scanWord(start)
		case r >= '0' && r <= '9':
			l.scanNumber(start)
		case r == '\'':
			l.scanString(start)
		case r == '"':
			l.scanQuotedIdentifier(start)
		default:
			l.scanSymbol(start)
		}
	}

	for _, t := range l.state.CleanupContextStack() {
		transition := t
		l.emitTransition(&transition)
	}

	l.emit(Token{
		Type:     TokenEOF,
		Position: l.pos,
		Line:     l.line,
		Column:   l.column,
	})
	return l.tokens
}

// isCodeComment reports whether a brace at the current position opens a
// comment rather than a structural block
func (l *Lexer) isCodeComment() bool {
	ctx := l.state.Current()
	return ctx == ContextCodeBlock || ctx == ContextCaseBlock
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		r := l.current()
		if r != ' ' && r != '\t' && r != '\r' && r != '\n' {
			return
		}
		l.advance()
	}
}

func (l *Lexer) skipLineComment() {
	for l.pos < len(l.input) && l.current() != '\n' {
		l.advance()
	}
}

// scanBlockComment consumes a /* ... */ comment. An unterminated
// comment yields an Unknown token holding only the opener.
func (l *Lexer) scanBlockComment(start lexPosition) {
	l.advance() // /
	l.advance() // *
	for l.pos < len(l.input) {
		if l.current() == '*' && l.peekAhead() == '/' {
			l.advance()
			l.advance()
			return
		}
		l.advance()
	}
	l.emit(l.makeToken(TokenUnknown, "/*", start))
}

// scanBraceComment consumes a { ... } comment inside code. An
// unterminated comment yields an Unknown token holding only the
// opening brace.
func (l *Lexer) scanBraceComment(start lexPosition) {
	l.advance() // {
	for l.pos < len(l.input) {
		if l.current() == '}' {
			l.advance()
			return
		}
		l.advance()
	}
	l.emit(l.makeToken(TokenUnknown, "{", start))
}

// makeToken builds a token with the given value at the start position
func (l *Lexer) makeToken(tt TokenType, value string, start lexPosition) Token {
	return Token{
		Type:     tt,
		Value:    value,
		Position: start.pos,
		Line:     start.line,
		Column:   start.column,
	}
}

// scanWord scans an identifier-shaped word and classifies it via the
// context state machine
func (l *Lexer) scanWord(start lexPosition) {
	for l.pos < len(l.input) && isIdentPart(l.current()) {
		l.advance()
	}
	word := l.input[start.pos:l.pos]
	upper := strings.ToUpper(word)

	switch {
	case alKeywords[upper]:
		l.emit(l.makeToken(TokenALKeyword, word, start))
		return
	case alAccessModifiers[upper]:
		l.emit(l.makeToken(TokenALAccessModifier, word, start))
		return
	}

	if upper == "OBJECT" && l.state.Current() == ContextNormal {
		tok := l.makeToken(TokenObject, word, start)
		transition := l.state.OnObjectKeyword(len(l.tokens))
		l.emit(tok)
		l.emitTransition(transition)
		return
	}

	if section := LookupSectionType(upper); section != SectionNone {
		if l.state.Current() == ContextObjectLevel && !l.state.InPropertyValue() {
			l.state.OnSectionKeyword(section)
			l.emit(l.makeToken(TokenSectionKeyword, word, start))
			return
		}
	}

	switch upper {
	case "BEGIN":
		if l.isBeginEndKeyword() {
			tok := l.makeToken(TokenBegin, word, start)
			transition := l.state.OnBeginKeyword()
			l.emit(tok)
			l.emitTransition(transition)
			return
		}
	case "END":
		if l.isBeginEndKeyword() {
			tok := l.makeToken(TokenEnd, word, start)
			transition := l.state.OnEndKeyword()
			l.emit(tok)
			l.emitTransition(transition)
			return
		}
	case "CASE":
		ctx := l.state.Current()
		if ctx == ContextCodeBlock || ctx == ContextCaseBlock {
			tok := l.makeToken(TokenCase, word, start)
			transition := l.state.OnCaseKeyword()
			l.emit(tok)
			l.emitTransition(transition)
			return
		}
	default:
		if tt, ok := codeKeywords[upper]; ok {
			if !l.state.ShouldProtectFromBeginEnd() && !l.state.InPropertyValue() {
				l.emit(l.makeToken(tt, word, start))
				return
			}
		}
	}

	l.state.OnIdentifier(word)
	l.emit(l.makeToken(TokenIdentifier, word, start))
}

// isBeginEndKeyword reports whether BEGIN/END text at the current
// position acts as a keyword rather than row or property content
func (l *Lexer) isBeginEndKeyword() bool {
	if l.state.ShouldProtectFromBeginEnd() {
		return false
	}
	if l.state.InPropertyValue() && !IsTriggerProperty(l.state.LastPropertyName()) {
		return false
	}
	return true
}

// scanNumber scans an integer, decimal, or date/time literal
func (l *Lexer) scanNumber(start lexPosition) {
	digits := l.scanDigits()

	r := l.current()
	switch {
	case r == 'D' || r == 'd':
		l.scanDateSuffix(start, digits)
		return
	case r == 'T' || r == 't':
		l.scanTimeSuffix(start, digits)
		return
	case r == '.' && l.peekAhead() >= '0' && l.peekAhead() <= '9':
		l.advance() // .
		l.scanDigits()
		l.emit(l.makeToken(TokenDecimal, l.input[start.pos:l.pos], start))
		return
	}

	l.emit(l.makeToken(TokenInteger, digits, start))
}

// scanDigits consumes an ASCII digit run and returns it
func (l *Lexer) scanDigits() string {
	start := l.pos
	for l.pos < len(l.input) && l.current() >= '0' && l.current() <= '9' {
		l.advance()
	}
	return l.input[start:l.pos]
}

// isDateDigits reports whether a digit run has a valid date shape
func isDateDigits(digits string) bool {
	return digits == "0" || len(digits) == 6 || len(digits) == 8
}

// isTimeDigits reports whether a digit run has a valid time shape
func isTimeDigits(digits string) bool {
	return digits == "0" || len(digits) == 6 || len(digits) == 9
}

// scanDateSuffix handles a digit run followed by a D marker. A valid
// date may be immediately followed by a time run to form a DateTime.
// An invalid shape or a trailing identifier character falls back to an
// Integer token with scanning restarted at the marker.
func (l *Lexer) scanDateSuffix(start lexPosition, digits string) {
	if !isDateDigits(digits) {
		l.emit(l.makeToken(TokenInteger, digits, start))
		return
	}

	afterDigits := l.mark()
	l.advance() // D

	// The 0DT sentinel never consumes trailing digits
	if digits == "0" && (l.current() == 'T' || l.current() == 't') {
		l.advance()
		if isIdentPart(l.current()) && !(l.current() >= '0' && l.current() <= '9') {
			l.restore(afterDigits)
			l.emit(l.makeToken(TokenInteger, digits, start))
			return
		}
		l.emit(l.makeToken(TokenDateTime, l.input[start.pos:l.pos], start))
		return
	}

	// Try a time run directly after the date: 311299D120000T
	if l.current() >= '0' && l.current() <= '9' {
		afterDate := l.mark()
		timeDigits := l.scanDigits()
		if (l.current() == 'T' || l.current() == 't') && isTimeDigits(timeDigits) && timeDigits != "0" {
			l.advance() // T
			if !isIdentPart(l.current()) {
				l.emit(l.makeToken(TokenDateTime, l.input[start.pos:l.pos], start))
				return
			}
		}
		l.restore(afterDate)
		l.emit(l.makeToken(TokenDate, l.input[start.pos:l.pos], start))
		return
	}

	if isIdentPart(l.current()) {
		l.restore(afterDigits)
		l.emit(l.makeToken(TokenInteger, digits, start))
		return
	}

	l.emit(l.makeToken(TokenDate, l.input[start.pos:l.pos], start))
}

// scanTimeSuffix handles a digit run followed by a T marker
func (l *Lexer) scanTimeSuffix(start lexPosition, digits string) {
	if !isTimeDigits(digits) {
		l.emit(l.makeToken(TokenInteger, digits, start))
		return
	}

	afterDigits := l.mark()
	l.advance() // T
	if isIdentPart(l.current()) {
		l.restore(afterDigits)
		l.emit(l.makeToken(TokenInteger, digits, start))
		return
	}
	l.emit(l.makeToken(TokenTime, l.input[start.pos:l.pos], start))
}

// scanString scans a single-quoted string literal with '' as the quote
// escape. An unterminated string consumes to end of line and yields an
// Unknown token holding the consumed text.
func (l *Lexer) scanString(start lexPosition) {
	l.advance() // opening '
	var value strings.Builder
	for l.pos < len(l.input) {
		r := l.current()
		if r == '\n' {
			break
		}
		if r == '\'' {
			if l.peekAhead() == '\'' {
				l.advance()
				l.advance()
				value.WriteRune('\'')
				continue
			}
			l.advance() // closing '
			l.emit(l.makeToken(TokenString, value.String(), start))
			return
		}
		l.advance()
		value.WriteRune(r)
	}
	l.emit(l.makeToken(TokenUnknown, l.input[start.pos:l.pos], start))
}

// scanQuotedIdentifier scans a double-quoted identifier. The token
// value is the inner text without quotes. An unterminated identifier
// consumes to end of line and yields an Unknown token.
func (l *Lexer) scanQuotedIdentifier(start lexPosition) {
	l.advance() // opening "
	inner := l.pos
	for l.pos < len(l.input) {
		r := l.current()
		if r == '\n' {
			break
		}
		if r == '"' {
			value := l.input[inner:l.pos]
			l.advance() // closing "
			l.emit(l.makeToken(TokenQuotedIdentifier, value, start))
			return
		}
		l.advance()
	}
	l.emit(l.makeToken(TokenUnknown, l.input[start.pos:l.pos], start))
}

// scanSymbol scans punctuation and operators, driving the structural
// state events
func (l *Lexer) scanSymbol(start lexPosition) {
	r := l.advance()

	switch r {
	case '{':
		tok := l.makeToken(TokenLeftBrace, "{", start)
		transition := l.state.OnOpenBrace()
		l.emit(tok)
		l.emitTransition(transition)
	case '}':
		if l.state.BraceDepth() == 0 {
			l.emit(l.makeToken(TokenUnknown, "}", start))
			return
		}
		tok := l.makeToken(TokenRightBrace, "}", start)
		transition := l.state.OnCloseBrace()
		l.emit(tok)
		l.emitTransition(transition)
	case '[':
		l.state.OnOpenBracket()
		l.emit(l.makeToken(TokenLeftBracket, "[", start))
	case ']':
		l.state.OnCloseBracket()
		l.emit(l.makeToken(TokenRightBracket, "]", start))
	case '(':
		l.emit(l.makeToken(TokenLeftParen, "(", start))
	case ')':
		l.emit(l.makeToken(TokenRightParen, ")", start))
	case ';':
		l.state.OnSemicolon()
		l.emit(l.makeToken(TokenSemicolon, ";", start))
	case ',':
		l.emit(l.makeToken(TokenComma, ",", start))
	case '=':
		l.state.OnEquals()
		l.emit(l.makeToken(TokenEquals, "=", start))
	case ':':
		switch l.current() {
		case '=':
			l.advance()
			l.emit(l.makeToken(TokenAssign, ":=", start))
		case ':':
			l.advance()
			l.emit(l.makeToken(TokenDoubleColon, "::", start))
		default:
			l.emit(l.makeToken(TokenColon, ":", start))
		}
	case '.':
		if l.current() == '.' {
			l.advance()
			l.emit(l.makeToken(TokenRange, "..", start))
			return
		}
		l.emit(l.makeToken(TokenDot, ".", start))
	case '<':
		switch l.current() {
		case '>':
			l.advance()
			l.emit(l.makeToken(TokenNotEquals, "<>", start))
		case '=':
			l.advance()
			l.emit(l.makeToken(TokenLessEq, "<=", start))
		default:
			l.emit(l.makeToken(TokenLess, "<", start))
		}
	case '>':
		if l.current() == '=' {
			l.advance()
			l.emit(l.makeToken(TokenGreaterEq, ">=", start))
			return
		}
		l.emit(l.makeToken(TokenGreater, ">", start))
	case '+':
		l.emit(l.makeToken(TokenPlus, "+", start))
	case '-':
		l.emit(l.makeToken(TokenMinus, "-", start))
	case '*':
		l.emit(l.makeToken(TokenStar, "*", start))
	case '/':
		l.emit(l.makeToken(TokenSlash, "/", start))
	case '@':
		l.emit(l.makeToken(TokenAt, "@", start))
	case '?':
		l.emit(l.makeToken(TokenALTernary, "?", start))
	case '#':
		wordStart := l.pos
		for l.pos < len(l.input) && isIdentPart(l.current()) {
			l.advance()
		}
		if l.pos == wordStart {
			l.emit(l.makeToken(TokenUnknown, "#", start))
			return
		}
		l.emit(l.makeToken(TokenALPreprocessor, l.input[start.pos:l.pos], start))
	default:
		l.emit(l.makeToken(TokenUnknown, string(r), start))
	}
}

// isIdentStart reports whether r can start an identifier. Beyond ASCII
// letters and underscore, the Latin-1 Supplement letters (multiply and
// divide signs excluded) and Latin Extended-A are allowed.
func isIdentStart(r rune) bool {
	if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
		return true
	}
	return isExtendedLetter(r)
}

// isIdentPart reports whether r can continue an identifier
func isIdentPart(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	return isIdentStart(r)
}

func isExtendedLetter(r rune) bool {
	if r >= 0x00C0 && r <= 0x00FF {
		return r != 0x00D7 && r != 0x00F7
	}
	return r >= 0x0100 && r <= 0x017F
}

// File: lexer.go
// Title: Lambda Calculus Lexical Analyzer
// Description: Scans source text into tokens on demand. Keeps a small LIFO
//              pushback stack so the parser can return a lookahead token and
//              read it again later without rescanning characters.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial lexer implementation

package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// MaxPushback bounds the pushback stack. The parser never holds more than two.
const MaxPushback = 8

// eof marks the end of input in ch. NUL is a legal (Illegal) input character.
const eof rune = -1

// Lexer performs lexical analysis of lambda calculus source text
type Lexer struct {
	input    string // Input string
	position int    // Byte offset of ch
	readPos  int    // Byte offset after ch
	ch       rune   // Current char under examination, eof at the end
	line     int    // Line of ch (1-based)
	column   int    // Column of ch (1-based)

	pushback []Token // Tokens returned by PutBack, last in first out
}

// New creates a new lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.Reset()
	return l
}

// Reset rewinds the lexer to the start of its input and drops pushed back tokens
func (l *Lexer) Reset() {
	l.position = 0
	l.readPos = 0
	l.ch = 0
	l.line = 1
	l.column = 1
	l.pushback = l.pushback[:0]
	l.readChar()
}

// Input returns the source text the lexer scans
func (l *Lexer) Input() string {
	return l.input
}

// NextToken returns the most recently pushed back token, or scans the next
// one from the input. At the end of input it returns KindEOF on every call.
func (l *Lexer) NextToken() Token {
	if n := len(l.pushback); n > 0 {
		tok := l.pushback[n-1]
		l.pushback = l.pushback[:n-1]
		return tok
	}

	l.skipWhitespace()

	pos := Position{Offset: l.position, Line: l.line, Column: l.column}

	var tok Token
	switch l.ch {
	case eof:
		return Token{Kind: KindEOF, Pos: pos}
	case '=':
		tok = Token{Kind: KindAssign, Pos: pos}
	case '.':
		tok = Token{Kind: KindDot, Pos: pos}
	case '(':
		tok = Token{Kind: KindLParen, Pos: pos}
	case ')':
		tok = Token{Kind: KindRParen, Pos: pos}
	case '\\':
		tok = Token{Kind: KindBackslash, Pos: pos}
	case ':':
		tok = Token{Kind: KindColon, Pos: pos}
	default:
		switch {
		case isLower(l.ch):
			return Token{Kind: KindLowerIdent, Text: l.readIdentifier(), Pos: pos}
		case isUpper(l.ch):
			return Token{Kind: KindUpperIdent, Text: l.readIdentifier(), Pos: pos}
		case isDigit(l.ch):
			return Token{Kind: KindInteger, Text: l.readNumber(), Pos: pos}
		default:
			tok = Token{Kind: KindIllegal, Text: string(l.ch), Pos: pos}
		}
	}

	l.readChar()
	return tok
}

// PutBack pushes tok onto the pushback stack so the next NextToken call
// returns it. Pushing more than MaxPushback tokens is a programming error.
func (l *Lexer) PutBack(tok Token) {
	if len(l.pushback) >= MaxPushback {
		panic(fmt.Sprintf("lexer: pushback stack overflow (max %d tokens)", MaxPushback))
	}
	l.pushback = append(l.pushback, tok)
}

// IsEmpty reports whether only end of input remains: every pushed back token
// is KindEOF and the unread input is whitespace.
func (l *Lexer) IsEmpty() bool {
	for _, tok := range l.pushback {
		if tok.Kind != KindEOF {
			return false
		}
	}
	if l.ch == eof {
		return true
	}
	for _, r := range l.input[l.position:] {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Tokenize returns all remaining tokens up to and including the first
// end of input token
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == KindEOF {
			return tokens
		}
	}
}

// readChar advances to the next character and tracks line and column
func (l *Lexer) readChar() {
	if l.ch == eof {
		return
	}
	if l.readPos > 0 {
		if l.ch == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
	}

	l.position = l.readPos
	if l.readPos >= len(l.input) {
		l.ch = eof
		return
	}

	r, width := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.readPos += width
}

// readIdentifier reads a maximal run of letters, digits and underscores
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isIdentChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a maximal run of ASCII digits
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) skipWhitespace() {
	for l.ch != eof && unicode.IsSpace(l.ch) {
		l.readChar()
	}
}

func isLower(ch rune) bool {
	return 'a' <= ch && ch <= 'z'
}

func isUpper(ch rune) bool {
	return 'A' <= ch && ch <= 'Z'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// isIdentChar covers identifier continuation. Underscores may continue an
// identifier but not start one.
func isIdentChar(ch rune) bool {
	return ch != eof && (unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_')
}

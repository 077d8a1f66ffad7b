// File: token.go
// Title: Lambda Calculus Tokens
// Description: Defines the closed set of token kinds and the Token value type
//              with source positions for diagnostics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package lexer

import (
	"fmt"
)

// Kind represents the type of a lexical token
type Kind int

const (
	// Special tokens
	KindIllegal Kind = iota
	KindEOF

	// Identifiers and literals
	KindUpperIdent // Int, Bool
	KindLowerIdent // x, id, fake_identifier
	KindInteger    // 109

	// Punctuation
	KindBackslash // \
	KindDot       // .
	KindLParen    // (
	KindRParen    // )
	KindColon     // :
	KindAssign    // =
)

// String returns a stable name for the token kind
func (k Kind) String() string {
	switch k {
	case KindIllegal:
		return "Illegal"
	case KindEOF:
		return "EndOfInput"
	case KindUpperIdent:
		return "UpperIdent"
	case KindLowerIdent:
		return "LowerIdent"
	case KindInteger:
		return "Integer"
	case KindBackslash:
		return "Backslash"
	case KindDot:
		return "Dot"
	case KindLParen:
		return "LParen"
	case KindRParen:
		return "RParen"
	case KindColon:
		return "Colon"
	case KindAssign:
		return "Assign"
	default:
		return "Unknown"
	}
}

// HasText reports whether tokens of this kind carry source text
func (k Kind) HasText() bool {
	switch k {
	case KindIllegal, KindUpperIdent, KindLowerIdent, KindInteger:
		return true
	default:
		return false
	}
}

// Position locates a token in the source text
type Position struct {
	Offset int // Byte offset (0-based)
	Line   int // Line number (1-based)
	Column int // Column in characters (1-based)
}

// IsValid reports whether the position was set by the lexer
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a lexical token. Text holds the lexeme of identifiers and
// integer literals and the offending character of Illegal tokens; it is empty
// for punctuation and end of input.
type Token struct {
	Kind Kind
	Text string
	Pos  Position
}

// Placeholder returns a token of the given kind without text or position.
// The parser uses it to describe what it expected, e.g. "some lower identifier".
func Placeholder(kind Kind) Token {
	return Token{Kind: kind}
}

// Equal compares kind and text. Positions are ignored.
func (t Token) Equal(other Token) bool {
	return t.Kind == other.Kind && t.Text == other.Text
}

// Lexeme returns the token as it appears in source text
func (t Token) Lexeme() string {
	switch t.Kind {
	case KindEOF:
		return ""
	case KindBackslash:
		return `\`
	case KindDot:
		return "."
	case KindLParen:
		return "("
	case KindRParen:
		return ")"
	case KindColon:
		return ":"
	case KindAssign:
		return "="
	default:
		return t.Text
	}
}

// Describe returns a short human-readable description for error messages
func (t Token) Describe() string {
	switch {
	case t.Kind == KindEOF:
		return "end of input"
	case t.Kind.HasText() && t.Text == "":
		return "any " + t.Kind.String()
	case t.Kind.HasText():
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	default:
		return fmt.Sprintf("%q", t.Lexeme())
	}
}

// String returns a debug representation such as LowerIdent("x") or Dot
func (t Token) String() string {
	if t.Kind.HasText() {
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	}
	return t.Kind.String()
}

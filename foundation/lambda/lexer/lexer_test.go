// File: lexer_test.go
// Title: Lambda Calculus Lexer Unit Tests
// Description: Tests tokenization of every token class, pushback ordering,
//              end of input handling, IsEmpty and position tracking.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test suite

package lexer

import (
	"math/rand"
	"strings"
	"testing"
)

func lower(s string) Token { return Token{Kind: KindLowerIdent, Text: s} }
func upper(s string) Token { return Token{Kind: KindUpperIdent, Text: s} }
func integer(s string) Token { return Token{Kind: KindInteger, Text: s} }
func illegal(s string) Token { return Token{Kind: KindIllegal, Text: s} }
func punct(k Kind) Token     { return Placeholder(k) }

func assertTokens(t *testing.T, got, want []Token) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("token %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestLexer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "Empty input",
			input:    "",
			expected: []Token{punct(KindEOF)},
		},
		{
			name:     "Whitespace only",
			input:    " \t\r\n ",
			expected: []Token{punct(KindEOF)},
		},
		{
			name:  "Punctuation",
			input: `= . ( ) \ :`,
			expected: []Token{
				punct(KindAssign), punct(KindDot), punct(KindLParen),
				punct(KindRParen), punct(KindBackslash), punct(KindColon),
				punct(KindEOF),
			},
		},
		{
			name:  "Annotated assignment",
			input: `fake_identifier: Int = \a. \b. (b c) 109`,
			expected: []Token{
				lower("fake_identifier"), punct(KindColon), upper("Int"), punct(KindAssign),
				punct(KindBackslash), lower("a"), punct(KindDot),
				punct(KindBackslash), lower("b"), punct(KindDot),
				punct(KindLParen), lower("b"), lower("c"), punct(KindRParen),
				integer("109"), punct(KindEOF),
			},
		},
		{
			name:     "Leading underscore is illegal",
			input:    "_test_",
			expected: []Token{illegal("_"), lower("test_"), punct(KindEOF)},
		},
		{
			name:     "Integer stops at letter",
			input:    "1a",
			expected: []Token{integer("1"), lower("a"), punct(KindEOF)},
		},
		{
			name:     "Identifier keeps digits",
			input:    "x1_y2 Y3",
			expected: []Token{lower("x1_y2"), upper("Y3"), punct(KindEOF)},
		},
		{
			name:     "Unicode letters continue identifiers",
			input:    "straße",
			expected: []Token{lower("straße"), punct(KindEOF)},
		},
		{
			name:     "Non-ASCII start is illegal",
			input:    "λx",
			expected: []Token{illegal("λ"), lower("x"), punct(KindEOF)},
		},
		{
			name:     "Illegal characters one at a time",
			input:    "$#a",
			expected: []Token{illegal("$"), illegal("#"), lower("a"), punct(KindEOF)},
		},
		{
			name:     "Large integer stays text",
			input:    "99999999999999999999",
			expected: []Token{integer("99999999999999999999"), punct(KindEOF)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, New(tt.input).Tokenize(), tt.expected)
		})
	}
}

func TestLexer_Positions(t *testing.T) {
	l := New("id =\n  \\é. x")

	expected := []struct {
		kind   Kind
		offset int
		line   int
		column int
	}{
		{KindLowerIdent, 0, 1, 1},
		{KindAssign, 3, 1, 4},
		{KindBackslash, 7, 2, 3},
		{KindIllegal, 8, 2, 4},
		{KindDot, 10, 2, 5},
		{KindLowerIdent, 12, 2, 7},
		{KindEOF, 13, 2, 8},
	}

	for i, want := range expected {
		tok := l.NextToken()
		if tok.Kind != want.kind {
			t.Fatalf("token %d: expected kind %v, got %v", i, want.kind, tok.Kind)
		}
		got := tok.Pos
		if got.Offset != want.offset || got.Line != want.line || got.Column != want.column {
			t.Errorf("token %d (%v): expected %d@%d:%d, got %d@%d:%d",
				i, tok, want.offset, want.line, want.column, got.Offset, got.Line, got.Column)
		}
	}
}

func TestLexer_EOFRepeats(t *testing.T) {
	l := New("a")
	l.NextToken()
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Kind != KindEOF {
			t.Fatalf("call %d: expected EndOfInput, got %v", i, tok)
		}
	}
}

func TestLexer_SingleIdentifierProperty(t *testing.T) {
	const (
		letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
		rest    = letters + "0123456789_"
		spaces  = " \t\n\r"
	)
	rng := rand.New(rand.NewSource(42))
	pick := func(set string) byte { return set[rng.Intn(len(set))] }

	for i := 0; i < 500; i++ {
		var ident strings.Builder
		ident.WriteByte(pick(letters))
		for n := rng.Intn(12); n > 0; n-- {
			ident.WriteByte(pick(rest))
		}

		var pad strings.Builder
		for n := rng.Intn(4); n > 0; n-- {
			pad.WriteByte(pick(spaces))
		}
		input := pad.String() + ident.String() + pad.String()

		want := lower(ident.String())
		if c := ident.String()[0]; 'A' <= c && c <= 'Z' {
			want = upper(ident.String())
		}
		assertTokens(t, New(input).Tokenize(), []Token{want, punct(KindEOF)})
	}
}

func TestLexer_PutBack(t *testing.T) {
	l := New("a b c")

	a := l.NextToken()
	b := l.NextToken()

	l.PutBack(b)
	l.PutBack(a)

	assertTokens(t, []Token{l.NextToken(), l.NextToken(), l.NextToken(), l.NextToken()},
		[]Token{lower("a"), lower("b"), lower("c"), punct(KindEOF)})
}

func TestLexer_PutBackImmediate(t *testing.T) {
	l := New("x y")
	tok := l.NextToken()
	l.PutBack(tok)

	if got := l.NextToken(); got != tok {
		t.Errorf("expected pushed back token %v with its position, got %v", tok, got)
	}
	if got := l.NextToken(); !got.Equal(lower("y")) {
		t.Errorf("expected scanning to resume with y, got %v", got)
	}
}

func TestLexer_PutBackOverflow(t *testing.T) {
	l := New("")
	for i := 0; i < MaxPushback; i++ {
		l.PutBack(lower("x"))
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic on pushback overflow")
		}
	}()
	l.PutBack(lower("x"))
}

func TestLexer_IsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		consume  int
		putBack  []Token
		expected bool
	}{
		{"Empty input", "", 0, nil, true},
		{"Whitespace input", "  \n\t", 0, nil, true},
		{"Unread token", "a", 0, nil, false},
		{"All consumed", "a  ", 1, nil, true},
		{"Trailing garbage", "a $", 1, nil, false},
		{"Pushed back EOF", "a", 2, []Token{punct(KindEOF)}, true},
		{"Pushed back token", "a", 1, []Token{lower("a")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input)
			for i := 0; i < tt.consume; i++ {
				l.NextToken()
			}
			for _, tok := range tt.putBack {
				l.PutBack(tok)
			}
			if got := l.IsEmpty(); got != tt.expected {
				t.Errorf("IsEmpty() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestLexer_Reset(t *testing.T) {
	l := New("f x")
	l.NextToken()
	second := l.NextToken()
	l.PutBack(second)

	l.Reset()

	tok := l.NextToken()
	if !tok.Equal(lower("f")) {
		t.Fatalf("expected f after reset, got %v", tok)
	}
	if tok.Pos.Offset != 0 || tok.Pos.Line != 1 || tok.Pos.Column != 1 {
		t.Errorf("expected position 0@1:1 after reset, got %d@%v", tok.Pos.Offset, tok.Pos)
	}
	assertTokens(t, l.Tokenize(), []Token{lower("x"), punct(KindEOF)})
}

func TestToken_Describe(t *testing.T) {
	tests := []struct {
		tok      Token
		expected string
	}{
		{punct(KindEOF), "end of input"},
		{punct(KindRParen), `")"`},
		{Placeholder(KindLowerIdent), "any LowerIdent"},
		{lower("x"), `LowerIdent "x"`},
		{illegal("$"), `Illegal "$"`},
	}

	for _, tt := range tests {
		if got := tt.tok.Describe(); got != tt.expected {
			t.Errorf("Describe(%v) = %q, expected %q", tt.tok, got, tt.expected)
		}
	}
}

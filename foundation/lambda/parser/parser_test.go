// File: parser_test.go
// Title: Lambda Calculus Parser Unit Tests
// Description: Tests expressions, programs, every error kind, pushback use
//              and the render/parse round trip.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test suite

package parser

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"github.com/msto63/lambda/foundation/lambda/ast"
	"github.com/msto63/lambda/foundation/lambda/lexer"
)

func newParser(input string) *Parser {
	return New(lexer.New(input))
}

func tok(kind lexer.Kind, text string) lexer.Token {
	return lexer.Token{Kind: kind, Text: text}
}

var (
	a = func() *ast.Node { return ast.NewVariable("a") }
	b = func() *ast.Node { return ast.NewVariable("b") }
	c = func() *ast.Node { return ast.NewVariable("c") }
)

func TestParser_ParseExpr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *ast.Node
	}{
		{
			name:     "Variable",
			input:    "a",
			expected: a(),
		},
		{
			name:     "Literal",
			input:    "1234567890",
			expected: ast.NewLiteralInt(1234567890),
		},
		{
			name:     "Largest literal",
			input:    "2147483647",
			expected: ast.NewLiteralInt(2147483647),
		},
		{
			name:     "Application is left associative",
			input:    "a b c",
			expected: ast.NewApplication(ast.NewApplication(a(), b()), c()),
		},
		{
			name:     "Parentheses group to the right",
			input:    "a (b c)",
			expected: ast.NewApplication(a(), ast.NewApplication(b(), c())),
		},
		{
			name:     "Redundant parentheses",
			input:    "((a))",
			expected: a(),
		},
		{
			name:     "Nested abstractions",
			input:    `\a. \b. a`,
			expected: ast.NewAbstraction("a", ast.NewAbstraction("b", a())),
		},
		{
			name:     "Abstraction body extends right",
			input:    `\a. a b c`,
			expected: ast.NewAbstraction("a", ast.NewApplication(ast.NewApplication(a(), b()), c())),
		},
		{
			name:  "Applied abstraction",
			input: `(\a. a) 109`,
			expected: ast.NewApplication(
				ast.NewAbstraction("a", a()),
				ast.NewLiteralInt(109),
			),
		},
		{
			name:  "Abstraction as argument",
			input: `a \b. b c`,
			expected: ast.NewApplication(
				a(),
				ast.NewAbstraction("b", ast.NewApplication(b(), c())),
			),
		},
		{
			name:  "Multiline input",
			input: "\\f.\n  \\x.\n    f (f x)",
			expected: ast.NewAbstraction("f", ast.NewAbstraction("x",
				ast.NewApplication(ast.NewVariable("f"),
					ast.NewApplication(ast.NewVariable("f"), ast.NewVariable("x"))))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newParser(tt.input)
			node, err := p.ParseExpr()
			if err != nil {
				t.Fatalf("ParseExpr() error = %v", err)
			}
			if !node.Equal(tt.expected) {
				t.Errorf("Expected %s, got %s", ast.Format(tt.expected), ast.Format(node))
			}
			if !p.IsEmpty() {
				t.Error("Expected all input to be consumed")
			}
		})
	}
}

func TestParser_ParseExprErrors(t *testing.T) {
	eof := lexer.Placeholder(lexer.KindEOF)
	anyLower := lexer.Placeholder(lexer.KindLowerIdent)

	tests := []struct {
		name     string
		input    string
		expected *ParseError
	}{
		{
			name:     "Unterminated parenthesis",
			input:    "(a b",
			expected: ExpectedToken(lexer.Placeholder(lexer.KindRParen), eof),
		},
		{
			name:     "Abstraction without parameter",
			input:    `\. a`,
			expected: ExpectedToken(anyLower, lexer.Placeholder(lexer.KindDot)),
		},
		{
			name:     "Abstraction without dot",
			input:    `\a( a`,
			expected: ExpectedToken(lexer.Placeholder(lexer.KindDot), lexer.Placeholder(lexer.KindLParen)),
		},
		{
			name:     "Upper case parameter",
			input:    `\X. X`,
			expected: ExpectedToken(anyLower, tok(lexer.KindUpperIdent, "X")),
		},
		{
			name:     "Illegal character",
			input:    "$",
			expected: IllegalToken(tok(lexer.KindIllegal, "$")),
		},
		{
			name:     "Illegal character in application",
			input:    "a $",
			expected: nil,
		},
		{
			name:     "Missing body",
			input:    `\a. `,
			expected: UnexpectedEndOfInput(),
		},
		{
			name:     "Empty input",
			input:    "",
			expected: UnexpectedEndOfInput(),
		},
		{
			name:     "Closing parenthesis first",
			input:    ")",
			expected: IllegalToken(lexer.Placeholder(lexer.KindRParen)),
		},
		{
			name:     "Upper identifier is not an expression",
			input:    "Int",
			expected: IllegalToken(tok(lexer.KindUpperIdent, "Int")),
		},
		{
			name:     "Overflowing literal",
			input:    "2147483648",
			expected: IntegerParseError("2147483648", nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := newParser(tt.input).ParseExpr()
			if tt.expected == nil {
				// Trailing garbage is left for the caller
				if err != nil {
					t.Fatalf("ParseExpr() error = %v", err)
				}
				if node == nil {
					t.Fatal("Expected a node")
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error %v, got node %s", tt.expected, ast.Format(node))
			}
			if node != nil {
				t.Error("Expected no partial tree alongside the error")
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v (%v), got %v (%v)", tt.expected.Kind, tt.expected, err.(*ParseError).Kind, err)
			}
		})
	}
}

func TestParser_IllegalTokenPushback(t *testing.T) {
	p := newParser(") a")
	if _, err := p.ParseExpr(); err == nil {
		t.Fatal("Expected an error")
	}

	// The non-expression token is returned to the lexer
	l := p.lexer
	if got := l.NextToken(); got.Kind != lexer.KindRParen {
		t.Errorf("Expected pushed back RParen, got %v", got)
	}

	p = newParser("$ a")
	p.ParseExpr()
	if got := p.lexer.NextToken(); !got.Equal(tok(lexer.KindLowerIdent, "a")) {
		t.Errorf("Illegal token should be consumed, got %v", got)
	}
}

func TestParser_TrailingInputAfterExpr(t *testing.T) {
	p := newParser("a b )")
	node, err := p.ParseExpr()
	if err != nil {
		t.Fatalf("ParseExpr() error = %v", err)
	}
	if !node.Equal(ast.NewApplication(a(), b())) {
		t.Errorf("unexpected tree %s", ast.Format(node))
	}
	if p.IsEmpty() {
		t.Error("IsEmpty() should report the unread ')'")
	}
}

func TestParser_IntegerOverflow(t *testing.T) {
	_, err := newParser("99999999999").ParseExpr()

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected *ParseError, got %T", err)
	}
	if perr.Kind != ErrIntegerParse {
		t.Fatalf("Expected IntegerParseError, got %v", perr.Kind)
	}
	if !perr.Overflow() {
		t.Error("Overflow() should report a range error")
	}
	if !errors.Is(err, strconv.ErrRange) {
		t.Error("errors.Is(err, strconv.ErrRange) should hold through Unwrap")
	}
}

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *ast.Node
	}{
		{
			name:     "Empty program",
			input:    "  ",
			expected: ast.NewProgram(),
		},
		{
			name:     "Single assignment",
			input:    `id = \x. x`,
			expected: ast.NewProgram(ast.NewAssignment("id", ast.NewAbstraction("x", ast.NewVariable("x")))),
		},
		{
			name:  "Assignment with application",
			input: "two = succ (succ zero)",
			expected: ast.NewProgram(ast.NewAssignment("two",
				ast.NewApplication(ast.NewVariable("succ"),
					ast.NewApplication(ast.NewVariable("succ"), ast.NewVariable("zero"))))),
		},
		{
			// A following name is absorbed by juxtaposition
			name:  "Second assignment is swallowed by the first",
			input: "x = a\ny = b",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := newParser(tt.input).Parse()
			if tt.expected == nil {
				if err == nil {
					t.Fatalf("Expected error, got %s", ast.Format(node))
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !node.Equal(tt.expected) {
				t.Errorf("Expected %s, got %s", ast.Format(tt.expected), ast.Format(node))
			}
		})
	}
}

func TestParser_ParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *ParseError
	}{
		{
			name:     "Trailing illegal token",
			input:    `id = \x. x $`,
			expected: ExpectedEndOfInput(tok(lexer.KindIllegal, "$")),
		},
		{
			name:     "Trailing closing parenthesis",
			input:    `id = \x. x )`,
			expected: ExpectedEndOfInput(lexer.Placeholder(lexer.KindRParen)),
		},
		{
			name:     "Trailing assign",
			input:    `id = \x. x = 3`,
			expected: ExpectedEndOfInput(lexer.Placeholder(lexer.KindAssign)),
		},
		{
			name:     "Bare expression",
			input:    "1",
			expected: ExpectedEndOfInput(tok(lexer.KindInteger, "1")),
		},
		{
			name:     "Missing assign",
			input:    "a b",
			expected: ExpectedToken(lexer.Placeholder(lexer.KindAssign), tok(lexer.KindLowerIdent, "b")),
		},
		{
			name:     "Missing value",
			input:    "a =",
			expected: UnexpectedEndOfInput(),
		},
		{
			name:     "Broken value",
			input:    "a = (b",
			expected: ExpectedToken(lexer.Placeholder(lexer.KindRParen), lexer.Placeholder(lexer.KindEOF)),
		},
		{
			name:     "Type annotation is not parsed yet",
			input:    `k = \x: Int. x`,
			expected: ExpectedToken(lexer.Placeholder(lexer.KindDot), lexer.Placeholder(lexer.KindColon)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := newParser(tt.input).Parse()
			if err == nil {
				t.Fatalf("Expected error %v, got %s", tt.expected, ast.Format(node))
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestParser_ParseToplevelAssignment(t *testing.T) {
	p := newParser("5")
	_, err := p.ParseToplevelAssignment()
	if !errors.Is(err, ExpectedToken(lexer.Placeholder(lexer.KindLowerIdent), tok(lexer.KindInteger, "5"))) {
		t.Fatalf("unexpected error %v", err)
	}

	// The rejected token can be read again
	if got := p.lexer.NextToken(); !got.Equal(tok(lexer.KindInteger, "5")) {
		t.Errorf("Expected pushed back Integer, got %v", got)
	}
}

func TestParser_ResetForExpressionRetry(t *testing.T) {
	p := newParser(`(\x. x) y`)
	if _, err := p.Parse(); err == nil {
		t.Fatal("Expected the program grammar to reject a bare expression")
	}

	p.ResetLexer()
	node, err := p.ParseExpr()
	if err != nil {
		t.Fatalf("ParseExpr() after reset error = %v", err)
	}
	if !p.IsEmpty() {
		t.Error("Expected all input to be consumed")
	}
	expected := ast.NewApplication(ast.NewAbstraction("x", ast.NewVariable("x")), ast.NewVariable("y"))
	if !node.Equal(expected) {
		t.Errorf("Expected %s, got %s", ast.Format(expected), ast.Format(node))
	}
}

func TestParser_Positions(t *testing.T) {
	node, err := newParser("id =\n  \\x. x").Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	assign := node.Item.(*ast.Program).Items[0]
	abs := assign.Item.(*ast.Assignment).Value
	if assign.Pos.Line != 1 || assign.Pos.Column != 1 {
		t.Errorf("assignment at %v, expected 1:1", assign.Pos)
	}
	if abs.Pos.Line != 2 || abs.Pos.Column != 3 {
		t.Errorf("abstraction at %v, expected 2:3", abs.Pos)
	}

	_, err = newParser("(a\n b").ParseExpr()
	perr := err.(*ParseError)
	if pos, ok := perr.Position(); !ok || pos.Line != 2 || pos.Column != 3 {
		t.Errorf("error at %v (%v), expected 2:3", pos, ok)
	}
}

func TestParseError_Messages(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"(a b", "expected \")\", found end of input at line 1, column 5"},
		{`\. a`, "expected any LowerIdent, found \".\" at line 1, column 2"},
		{"$", "illegal token Illegal \"$\" at line 1, column 1"},
		{`\a.`, "unexpected end of input at line 1, column 4"},
		{"4294967296", "integer literal 4294967296 does not fit in 32 bits at line 1, column 1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := newParser(tt.input).ParseExpr()
			if err == nil {
				t.Fatal("Expected an error")
			}
			if err.Error() != tt.expected {
				t.Errorf("Error() = %q, expected %q", err.Error(), tt.expected)
			}
		})
	}
}

// randomExpr builds an expression tree using only constructs the grammar
// can express: non-negative literals, lower case names, applications and
// abstractions.
func randomExpr(rng *rand.Rand, depth int) *ast.Node {
	names := []string{"a", "b", "x", "f", "succ", "y_1", "zeroÄ"}
	choice := rng.Intn(4)
	if depth == 0 {
		choice = rng.Intn(2)
	}

	switch choice {
	case 0:
		return ast.NewVariable(names[rng.Intn(len(names))])
	case 1:
		return ast.NewLiteralInt(rng.Int31())
	case 2:
		return ast.NewApplication(randomExpr(rng, depth-1), randomExpr(rng, depth-1))
	default:
		return ast.NewAbstraction(names[rng.Intn(len(names))], randomExpr(rng, depth-1))
	}
}

func TestParser_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		tree := randomExpr(rng, 5)
		source := ast.Format(tree)

		p := newParser(source)
		parsed, err := p.ParseExpr()
		if err != nil {
			t.Fatalf("ParseExpr(%q) error = %v", source, err)
		}
		if !p.IsEmpty() {
			t.Fatalf("ParseExpr(%q) left input unread", source)
		}
		if !parsed.Equal(tree) {
			t.Fatalf("round trip of %q produced %q", source, ast.Format(parsed))
		}
	}
}

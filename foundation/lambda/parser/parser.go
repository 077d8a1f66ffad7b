// File: parser.go
// Title: Lambda Calculus Recursive Descent Parser
// Description: Implements the grammar on top of the lexer's token stream.
//              Applications are parsed as a loop over base expressions, which
//              removes the left recursion and makes them left associative.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial parser implementation

package parser

import (
	"strconv"

	"github.com/msto63/lambda/foundation/lambda/ast"
	"github.com/msto63/lambda/foundation/lambda/lexer"
)

// Parser implements recursive descent parsing over a single lexer
type Parser struct {
	lexer *lexer.Lexer
}

// New creates a parser reading from l. The parser owns l from now on.
func New(l *lexer.Lexer) *Parser {
	return &Parser{lexer: l}
}

// ResetLexer rewinds the lexer to the start of the input
func (p *Parser) ResetLexer() {
	p.lexer.Reset()
}

// IsEmpty reports whether only end of input remains
func (p *Parser) IsEmpty() bool {
	return p.lexer.IsEmpty()
}

// Parse parses a program: a sequence of top-level assignments followed by
// end of input. Anything after the last assignment fails with
// ExpectedEndOfInput. An assignment that fails after its name was read
// fails the whole program with that error.
func (p *Parser) Parse() (*ast.Node, error) {
	start := lexer.Position{Line: 1, Column: 1}
	var items []*ast.Node

	for {
		item, committed, err := p.parseAssignment()
		if err != nil {
			if committed {
				return nil, err
			}
			break
		}
		items = append(items, item)
	}

	if err := p.ExpectEndOfInput(); err != nil {
		return nil, err
	}
	return ast.NewProgram(items...).At(start), nil
}

// ExpectEndOfInput reads one token and fails with ExpectedEndOfInput unless
// it is end of input
func (p *Parser) ExpectEndOfInput() error {
	if tok := p.lexer.NextToken(); tok.Kind != lexer.KindEOF {
		return ExpectedEndOfInput(tok)
	}
	return nil
}

// ParseToplevelAssignment parses LowerIdent '=' expr. A leading token that
// is not a lower identifier is pushed back before the error is returned.
func (p *Parser) ParseToplevelAssignment() (*ast.Node, error) {
	node, _, err := p.parseAssignment()
	return node, err
}

// ParseExpr parses one application chain. It does not require end of input
// afterwards; callers check IsEmpty when they need that.
func (p *Parser) ParseExpr() (*ast.Node, error) {
	left, err := p.parseBaseExpr()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.lexer.NextToken()
		p.lexer.PutBack(tok)
		if !startsBaseExpr(tok.Kind) {
			return left, nil
		}

		right, err := p.parseBaseExpr()
		if err != nil {
			return nil, err
		}
		left = ast.NewApplication(left, right).At(left.Pos)
	}
}

// parseAssignment reports whether the assignment name was consumed, after
// which a failure cannot be undone by the caller.
func (p *Parser) parseAssignment() (*ast.Node, bool, error) {
	tok := p.lexer.NextToken()
	if tok.Kind != lexer.KindLowerIdent {
		p.lexer.PutBack(tok)
		return nil, false, ExpectedToken(lexer.Placeholder(lexer.KindLowerIdent), tok)
	}

	if err := p.consume(lexer.Placeholder(lexer.KindAssign)); err != nil {
		return nil, true, err
	}

	value, err := p.ParseExpr()
	if err != nil {
		return nil, true, err
	}
	return ast.NewAssignment(tok.Text, value).At(tok.Pos), true, nil
}

func (p *Parser) parseBaseExpr() (*ast.Node, error) {
	tok := p.lexer.NextToken()

	switch tok.Kind {
	case lexer.KindLParen:
		return p.parseParenExpr()
	case lexer.KindLowerIdent:
		return ast.NewVariable(tok.Text).At(tok.Pos), nil
	case lexer.KindInteger:
		return p.parseLiteralInt(tok)
	case lexer.KindBackslash:
		return p.parseAbstraction(tok)
	case lexer.KindIllegal:
		return nil, IllegalToken(tok)
	case lexer.KindEOF:
		return nil, UnexpectedEndOfInput().at(tok.Pos)
	default:
		p.lexer.PutBack(tok)
		return nil, IllegalToken(tok)
	}
}

func (p *Parser) parseParenExpr() (*ast.Node, error) {
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.consume(lexer.Placeholder(lexer.KindRParen)); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseLiteralInt(tok lexer.Token) (*ast.Node, error) {
	value, err := strconv.ParseInt(tok.Text, 10, 32)
	if err != nil {
		return nil, IntegerParseError(tok.Text, err).at(tok.Pos)
	}
	return ast.NewLiteralInt(int32(value)).At(tok.Pos), nil
}

// parseAbstraction parses the rest of \x. body after the backslash
func (p *Parser) parseAbstraction(backslash lexer.Token) (*ast.Node, error) {
	tok := p.lexer.NextToken()
	if tok.Kind != lexer.KindLowerIdent {
		return nil, ExpectedToken(lexer.Placeholder(lexer.KindLowerIdent), tok)
	}

	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}

	if err := p.consume(lexer.Placeholder(lexer.KindDot)); err != nil {
		return nil, err
	}

	body, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}

	node := ast.NewAbstraction(tok.Text, body).At(backslash.Pos)
	node.Type = typ
	return node, nil
}

// parseType reserves the slot for a type annotation after an abstraction
// parameter. It consumes nothing and yields ast.Unknown.
func (p *Parser) parseType() (ast.Type, error) {
	return ast.Unknown, nil
}

// consume reads one token and fails unless it equals expected
func (p *Parser) consume(expected lexer.Token) error {
	tok := p.lexer.NextToken()
	if !tok.Equal(expected) {
		return ExpectedToken(expected, tok)
	}
	return nil
}

func startsBaseExpr(kind lexer.Kind) bool {
	switch kind {
	case lexer.KindLParen, lexer.KindBackslash, lexer.KindLowerIdent, lexer.KindInteger:
		return true
	default:
		return false
	}
}

// File: errors.go
// Title: Parse Errors
// Description: Defines the closed set of parse failure kinds and the
//              ParseError value carrying their diagnostic payload.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial error definitions

package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/msto63/lambda/foundation/lambda/lexer"
)

// ErrorKind classifies parse failures
type ErrorKind int

const (
	// ErrExpectedEndOfInput: input continues after a complete parse. Found holds the extra token.
	ErrExpectedEndOfInput ErrorKind = iota

	// ErrUnexpectedEndOfInput: input ended where an expression was expected
	ErrUnexpectedEndOfInput

	// ErrIntegerParse: an integer literal does not fit a signed 32-bit integer
	ErrIntegerParse

	// ErrIllegalToken: a token that cannot start an expression. Found holds it.
	ErrIllegalToken

	// ErrExpectedToken: Expected was required, Found was read
	ErrExpectedToken
)

// String returns the name of the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrExpectedEndOfInput:
		return "ExpectedEndOfInput"
	case ErrUnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	case ErrIntegerParse:
		return "IntegerParseError"
	case ErrIllegalToken:
		return "IllegalToken"
	case ErrExpectedToken:
		return "ExpectedToken"
	default:
		return "Unknown"
	}
}

// ParseError describes why the input could not be parsed
type ParseError struct {
	Kind     ErrorKind
	Expected lexer.Token // ErrExpectedToken only
	Found    lexer.Token // Token at the failure, when there is one
	Literal  string      // ErrIntegerParse only
	Cause    error       // strconv error for ErrIntegerParse
}

// ExpectedEndOfInput reports input left over after a complete parse
func ExpectedEndOfInput(found lexer.Token) *ParseError {
	return &ParseError{Kind: ErrExpectedEndOfInput, Found: found}
}

// UnexpectedEndOfInput reports input that ended too early
func UnexpectedEndOfInput() *ParseError {
	return &ParseError{Kind: ErrUnexpectedEndOfInput, Found: lexer.Placeholder(lexer.KindEOF)}
}

// IntegerParseError reports an integer literal that could not be converted
func IntegerParseError(literal string, cause error) *ParseError {
	return &ParseError{
		Kind:    ErrIntegerParse,
		Found:   lexer.Token{Kind: lexer.KindInteger, Text: literal},
		Literal: literal,
		Cause:   cause,
	}
}

// IllegalToken reports a token that cannot start an expression
func IllegalToken(found lexer.Token) *ParseError {
	return &ParseError{Kind: ErrIllegalToken, Found: found}
}

// ExpectedToken reports a token other than the one the grammar requires
func ExpectedToken(expected, found lexer.Token) *ParseError {
	return &ParseError{Kind: ErrExpectedToken, Expected: expected, Found: found}
}

// at sets the position of the found token
func (e *ParseError) at(pos lexer.Position) *ParseError {
	e.Found.Pos = pos
	return e
}

// Error implements the error interface
func (e *ParseError) Error() string {
	var msg string
	switch e.Kind {
	case ErrExpectedEndOfInput:
		msg = fmt.Sprintf("expected end of input, found %s", e.Found.Describe())
	case ErrUnexpectedEndOfInput:
		msg = "unexpected end of input"
	case ErrIntegerParse:
		if e.Overflow() {
			msg = fmt.Sprintf("integer literal %s does not fit in 32 bits", e.Literal)
		} else {
			msg = fmt.Sprintf("invalid integer literal %q", e.Literal)
		}
	case ErrIllegalToken:
		msg = fmt.Sprintf("illegal token %s", e.Found.Describe())
	case ErrExpectedToken:
		msg = fmt.Sprintf("expected %s, found %s", e.Expected.Describe(), e.Found.Describe())
	default:
		msg = "parse error"
	}

	if e.Found.Pos.IsValid() {
		return fmt.Sprintf("%s at line %d, column %d", msg, e.Found.Pos.Line, e.Found.Pos.Column)
	}
	return msg
}

// Unwrap returns the conversion error of an integer parse failure
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is compares kind and the payload the kind carries, ignoring positions.
// It lets errors.Is match against constructed errors:
//
//	errors.Is(err, parser.ExpectedToken(lexer.Placeholder(lexer.KindRParen), eofToken))
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok || t.Kind != e.Kind {
		return false
	}

	switch e.Kind {
	case ErrExpectedEndOfInput, ErrIllegalToken:
		return e.Found.Equal(t.Found)
	case ErrExpectedToken:
		return e.Expected.Equal(t.Expected) && e.Found.Equal(t.Found)
	case ErrIntegerParse:
		return e.Literal == t.Literal
	default:
		return true
	}
}

// Overflow reports whether an integer parse failure was caused by a value
// out of the 32-bit range
func (e *ParseError) Overflow() bool {
	return e.Kind == ErrIntegerParse && errors.Is(e.Cause, strconv.ErrRange)
}

// Position returns where the error occurred, if known
func (e *ParseError) Position() (lexer.Position, bool) {
	return e.Found.Pos, e.Found.Pos.IsValid()
}

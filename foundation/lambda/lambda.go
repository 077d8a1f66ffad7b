// File: lambda.go
// Title: Lambda Front End
// Description: Entry point for tools that turn source text into parse trees.
//              Runs the program grammar first and falls back to a single
//              expression, enforces input limits, logs parse attempts and
//              wraps parse errors into structured core errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial front end implementation

package lambda

import (
	"errors"
	"unicode/utf8"

	lcerror "github.com/msto63/lambda/foundation/core/error"
	lclog "github.com/msto63/lambda/foundation/core/log"
	lcast "github.com/msto63/lambda/foundation/lambda/ast"
	lclexer "github.com/msto63/lambda/foundation/lambda/lexer"
	lcparser "github.com/msto63/lambda/foundation/lambda/parser"
)

// DefaultMaxInputLength is used when Options.MaxInputLength is zero
const DefaultMaxInputLength = 4096

// Mode names the grammar an input was parsed with
type Mode int

const (
	ModeProgram Mode = iota
	ModeExpression
)

// String returns the name of the mode
func (m Mode) String() string {
	switch m {
	case ModeProgram:
		return "program"
	case ModeExpression:
		return "expression"
	default:
		return "unknown"
	}
}

// Options configures the front end
type Options struct {
	Logger         *lclog.Logger
	MaxInputLength int // Bytes; zero selects DefaultMaxInputLength
}

// Result is a successful parse
type Result struct {
	Input string
	Mode  Mode
	Tree  *lcast.Node
}

// Frontend parses source text. It holds no per-input state and is safe for
// concurrent use.
type Frontend struct {
	logger  *lclog.Logger
	options Options
}

// New creates a front end with the given options
func New(opts Options) *Frontend {
	if opts.Logger == nil {
		opts.Logger = lclog.GetDefault()
	}
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}

	return &Frontend{
		logger:  opts.Logger.WithField("component", "lambda-frontend"),
		options: opts,
	}
}

// Parse accepts a program or a single expression. The program grammar is
// tried first; if it fails the lexer is rewound and the input is parsed as
// one expression that must span the whole input. When both fail, the
// program error is returned for input that starts with "name =", the
// expression error otherwise.
func (f *Frontend) Parse(input string) (*Result, error) {
	if err := f.checkInput(input, "parse"); err != nil {
		return nil, err
	}

	timer := f.logger.StartTimer("parse").WithField("length", len(input))

	p := lcparser.New(lclexer.New(input))
	tree, progErr := p.Parse()
	if progErr == nil {
		timer.WithField("mode", ModeProgram.String()).Stop()
		return &Result{Input: input, Mode: ModeProgram, Tree: tree}, nil
	}

	p.ResetLexer()
	tree, exprErr := parseWholeExpr(p)
	if exprErr == nil {
		timer.WithField("mode", ModeExpression.String()).Stop()
		return &Result{Input: input, Mode: ModeExpression, Tree: tree}, nil
	}

	cause, mode := exprErr, ModeExpression
	if looksLikeAssignment(input) {
		cause, mode = progErr, ModeProgram
	}

	err := wrapSyntax(cause, "parse", mode)
	timer.StopWithError(err)
	f.logger.Warn("input rejected", lclog.Fields{
		"mode":  mode.String(),
		"error": cause.Error(),
	})
	return nil, err
}

// ParseProgram parses input with the program grammar only
func (f *Frontend) ParseProgram(input string) (*Result, error) {
	if err := f.checkInput(input, "parse_program"); err != nil {
		return nil, err
	}

	tree, err := lcparser.New(lclexer.New(input)).Parse()
	if err != nil {
		f.logger.Debug("program rejected", lclog.Fields{"error": err.Error()})
		return nil, wrapSyntax(err, "parse_program", ModeProgram)
	}
	return &Result{Input: input, Mode: ModeProgram, Tree: tree}, nil
}

// ParseExpression parses input as a single expression spanning the whole input
func (f *Frontend) ParseExpression(input string) (*Result, error) {
	if err := f.checkInput(input, "parse_expression"); err != nil {
		return nil, err
	}

	tree, err := parseWholeExpr(lcparser.New(lclexer.New(input)))
	if err != nil {
		f.logger.Debug("expression rejected", lclog.Fields{"error": err.Error()})
		return nil, wrapSyntax(err, "parse_expression", ModeExpression)
	}
	return &Result{Input: input, Mode: ModeExpression, Tree: tree}, nil
}

// Tokenize returns the tokens of input up to and including end of input
func (f *Frontend) Tokenize(input string) ([]lclexer.Token, error) {
	if err := f.checkInput(input, "tokenize"); err != nil {
		return nil, err
	}
	return lclexer.New(input).Tokenize(), nil
}

// MaxInputLength returns the configured input limit in bytes
func (f *Frontend) MaxInputLength() int {
	return f.options.MaxInputLength
}

func (f *Frontend) checkInput(input, operation string) error {
	if len(input) > f.options.MaxInputLength {
		return lcerror.Newf("input exceeds maximum length: %d > %d", len(input), f.options.MaxInputLength).
			WithCode(lcerror.CodeInvalidInput).
			WithOperation(operation).
			WithDetail("length", len(input)).
			WithDetail("max_length", f.options.MaxInputLength)
	}
	if !utf8.ValidString(input) {
		return lcerror.New("input is not valid UTF-8").
			WithCode(lcerror.CodeInvalidInput).
			WithOperation(operation)
	}
	return nil
}

// parseWholeExpr parses one expression and requires end of input after it
func parseWholeExpr(p *lcparser.Parser) (*lcast.Node, error) {
	tree, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.ExpectEndOfInput(); err != nil {
		return nil, err
	}
	return tree, nil
}

// looksLikeAssignment reports whether input starts with LowerIdent '='
func looksLikeAssignment(input string) bool {
	l := lclexer.New(input)
	return l.NextToken().Kind == lclexer.KindLowerIdent && l.NextToken().Kind == lclexer.KindAssign
}

func wrapSyntax(cause error, operation string, mode Mode) error {
	err := lcerror.Wrap(cause, "syntax error").
		WithCode(lcerror.CodeSyntax).
		WithOperation(operation).
		WithDetail("mode", mode.String())

	var perr *lcparser.ParseError
	if errors.As(cause, &perr) {
		err = err.WithDetail("kind", perr.Kind.String())
		if pos, ok := perr.Position(); ok {
			err = err.WithDetail("line", pos.Line).WithDetail("column", pos.Column)
		}
	}
	return err
}

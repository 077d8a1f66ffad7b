// Package parser implements the recursive descent parser of the lambda front end.
//
// Package: parser
// Title: Lambda Calculus Parser
// Description: Builds parse trees from the token stream of a lexer with one
//              token of lookahead. Backtracking goes through the lexer's
//              pushback stack; the parser keeps no other state. Failures are
//              *ParseError values from a closed set of kinds.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial parser implementation
//
// Grammar:
//
//	program    := assignment* EOF
//	assignment := LowerIdent '=' expr
//	expr       := base-expr base-expr*      (left associative application)
//	base-expr  := '(' expr ')'
//	            | LowerIdent
//	            | Integer
//	            | '\' LowerIdent type? '.' expr
//
// The optional type after an abstraction parameter is reserved syntax: the
// type parser consumes nothing and always yields ast.Unknown.
//
// Parse accepts programs only. Callers that also accept a bare expression
// reset the lexer after a failed Parse and call ParseExpr, as the lambda
// package's Frontend does.
package parser

// Package lexer implements the lexical analysis phase of the lambda front end.
//
// Package: lexer
// Title: Lambda Calculus Lexical Analyzer
// Description: Converts source text into a stream of tokens. The lexer never
//              fails: characters it cannot classify become Illegal tokens that
//              the parser reports. A bounded pushback stack lets the parser
//              look ahead one token and return it without rescanning.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
//
// Token classes, checked in this order after skipping whitespace:
//
//	=  .  (  )  \  :          punctuation
//	[a-z] (letter|digit|_)*   lower identifier
//	[A-Z] (letter|digit|_)*   upper identifier
//	[0-9]+                    integer literal (text only, not converted)
//	anything else             one Illegal token per character
//
// Usage:
//
//	lx := lexer.New(`id = \x. x`)
//	for tok := lx.NextToken(); tok.Kind != lexer.KindEOF; tok = lx.NextToken() {
//		fmt.Println(tok)
//	}
package lexer

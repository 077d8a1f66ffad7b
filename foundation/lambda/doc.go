// Package lambda is the front end for a minimal lambda calculus language.
//
// Package: lambda
// Title: Lambda Calculus Front End
// Description: Ties the lexer, parser and AST packages together for tools.
//              A Frontend accepts either a program (top-level assignments) or
//              a single expression, and reports failures as structured errors
//              with code SYNTAX that still unwrap to *parser.ParseError.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
//
// Usage:
//
//	fe := lambda.New(lambda.Options{Logger: logger})
//	res, err := fe.Parse(`(\x. x) 42`)
//	if err != nil {
//		var perr *parser.ParseError
//		if errors.As(err, &perr) {
//			// perr.Kind, perr.Found ...
//		}
//	}
//	fmt.Println(res.Mode, ast.Format(res.Tree))
package lambda

// Package ast defines the abstract syntax tree of the lambda front end.
//
// Package: ast
// Title: Lambda Calculus AST
// Description: Parse nodes pair a grammar item (literal, variable, application,
//              abstraction, assignment or program) with a type annotation. The
//              annotation is Unknown everywhere until a type checker exists.
//              Consumers traverse trees through the generic Visitor interface
//              and the Visit dispatch function.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial AST, type and visitor definitions
//
// Nodes form a tree: every child is owned by exactly one parent. Equality is
// structural and ignores source positions.
//
// Usage:
//
//	id := ast.NewAbstraction("x", ast.NewVariable("x"))
//	app := ast.NewApplication(id, ast.NewLiteralInt(42))
//	fmt.Println(ast.Format(app)) // (\x. x) 42
package ast

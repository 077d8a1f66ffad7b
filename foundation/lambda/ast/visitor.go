// File: visitor.go
// Title: Lambda Calculus AST Visitor
// Description: Generic visitor interface over the grammar item variants and
//              the Visit function that dispatches a node to it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial visitor implementation

package ast

import (
	"fmt"
)

// Visitor traverses parse trees and produces a result of type T. Visit calls
// exactly one method per node; a method that wants to see the children has
// to call Visit on them itself.
type Visitor[T any] interface {
	VisitLiteralInt(n *Node, item *LiteralInt) T
	VisitVariable(n *Node, item *Variable) T
	VisitApplication(n *Node, item *Application) T
	VisitAbstraction(n *Node, item *Abstraction) T
	VisitAssignment(n *Node, item *Assignment) T
	VisitProgram(n *Node, item *Program) T
}

// Visit dispatches n to the method of v matching its grammar item. Visiting
// a nil node returns the zero value of T.
func Visit[T any](v Visitor[T], n *Node) T {
	var zero T
	if n == nil {
		return zero
	}

	switch item := n.Item.(type) {
	case *LiteralInt:
		return v.VisitLiteralInt(n, item)
	case *Variable:
		return v.VisitVariable(n, item)
	case *Application:
		return v.VisitApplication(n, item)
	case *Abstraction:
		return v.VisitAbstraction(n, item)
	case *Assignment:
		return v.VisitAssignment(n, item)
	case *Program:
		return v.VisitProgram(n, item)
	default:
		panic(fmt.Sprintf("ast: unknown grammar item %T", n.Item))
	}
}

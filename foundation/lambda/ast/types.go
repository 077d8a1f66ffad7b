// File: types.go
// Title: Type Annotations
// Description: Placeholder type annotations attached to every parse node.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial type definitions

package ast

// Type is a type annotation: *TypeVariable, *TypeAbstraction or Unknown
type Type interface {
	String() string
	isType()
}

// TypeVariable names a type, e.g. Int
type TypeVariable struct {
	Name string
}

// TypeAbstraction is a function type From -> To
type TypeAbstraction struct {
	From Type
	To   Type
}

type unknownType struct{}

// Unknown is the annotation of every node the parser builds
var Unknown Type = unknownType{}

func (*TypeVariable) isType()    {}
func (*TypeAbstraction) isType() {}
func (unknownType) isType()      {}

func (t *TypeVariable) String() string { return t.Name }

func (t *TypeAbstraction) String() string {
	from := t.From.String()
	if _, ok := t.From.(*TypeAbstraction); ok {
		from = "(" + from + ")"
	}
	return from + " -> " + t.To.String()
}

func (unknownType) String() string { return "?" }

// TypesEqual compares two annotations structurally. A nil Type equals Unknown.
func TypesEqual(a, b Type) bool {
	if a == nil {
		a = Unknown
	}
	if b == nil {
		b = Unknown
	}

	switch x := a.(type) {
	case unknownType:
		_, ok := b.(unknownType)
		return ok
	case *TypeVariable:
		y, ok := b.(*TypeVariable)
		return ok && x.Name == y.Name
	case *TypeAbstraction:
		y, ok := b.(*TypeAbstraction)
		return ok && TypesEqual(x.From, y.From) && TypesEqual(x.To, y.To)
	default:
		return false
	}
}

// File: nodes.go
// Title: Lambda Calculus AST Node Definitions
// Description: Defines the parse node and the closed set of grammar items it
//              can carry, with constructors and structural equality.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial AST node definitions

package ast

import (
	"github.com/msto63/lambda/foundation/lambda/lexer"
)

// ItemKind tags the grammar item variants
type ItemKind int

const (
	KindLiteralInt ItemKind = iota
	KindVariable
	KindApplication
	KindAbstraction
	KindAssignment
	KindProgram
)

// String returns the name of the item kind
func (k ItemKind) String() string {
	switch k {
	case KindLiteralInt:
		return "LiteralInt"
	case KindVariable:
		return "Variable"
	case KindApplication:
		return "Application"
	case KindAbstraction:
		return "Abstraction"
	case KindAssignment:
		return "Assignment"
	case KindProgram:
		return "Program"
	default:
		return "Unknown"
	}
}

// GrammarItem is the payload of a parse node. The set of implementations is
// closed: *LiteralInt, *Variable, *Application, *Abstraction, *Assignment
// and *Program.
type GrammarItem interface {
	Kind() ItemKind
	grammarItem()
}

// LiteralInt is an integer literal
type LiteralInt struct {
	Value int32
}

// Variable references a bound or free identifier
type Variable struct {
	Name string
}

// Application applies Function to Argument
type Application struct {
	Function *Node
	Argument *Node
}

// Abstraction is a single-parameter lambda \Param. Body
type Abstraction struct {
	Param string
	Body  *Node
}

// Assignment binds Name to Value at the top level
type Assignment struct {
	Name  string
	Value *Node
}

// Program holds top-level items in source order
type Program struct {
	Items []*Node
}

func (*LiteralInt) Kind() ItemKind  { return KindLiteralInt }
func (*Variable) Kind() ItemKind    { return KindVariable }
func (*Application) Kind() ItemKind { return KindApplication }
func (*Abstraction) Kind() ItemKind { return KindAbstraction }
func (*Assignment) Kind() ItemKind  { return KindAssignment }
func (*Program) Kind() ItemKind     { return KindProgram }

func (*LiteralInt) grammarItem()  {}
func (*Variable) grammarItem()    {}
func (*Application) grammarItem() {}
func (*Abstraction) grammarItem() {}
func (*Assignment) grammarItem()  {}
func (*Program) grammarItem()     {}

// Node pairs a grammar item with its type annotation. Pos is the position of
// the first token of the node and is diagnostic only.
type Node struct {
	Item GrammarItem
	Type Type
	Pos  lexer.Position
}

// NewLiteralInt creates an integer literal node
func NewLiteralInt(value int32) *Node {
	return &Node{Item: &LiteralInt{Value: value}, Type: Unknown}
}

// NewVariable creates a variable reference node
func NewVariable(name string) *Node {
	return &Node{Item: &Variable{Name: name}, Type: Unknown}
}

// NewApplication creates an application node
func NewApplication(function, argument *Node) *Node {
	return &Node{Item: &Application{Function: function, Argument: argument}, Type: Unknown}
}

// NewAbstraction creates an abstraction node
func NewAbstraction(param string, body *Node) *Node {
	return &Node{Item: &Abstraction{Param: param, Body: body}, Type: Unknown}
}

// NewAssignment creates a top-level assignment node
func NewAssignment(name string, value *Node) *Node {
	return &Node{Item: &Assignment{Name: name, Value: value}, Type: Unknown}
}

// NewProgram creates a program node. Items keep their order.
func NewProgram(items ...*Node) *Node {
	if items == nil {
		items = []*Node{}
	}
	return &Node{Item: &Program{Items: items}, Type: Unknown}
}

// At returns n with its position set
func (n *Node) At(pos lexer.Position) *Node {
	n.Pos = pos
	return n
}

// Kind returns the kind of the node's grammar item
func (n *Node) Kind() ItemKind {
	return n.Item.Kind()
}

// String renders the node as source text
func (n *Node) String() string {
	return Format(n)
}

// Equal reports whether two trees are structurally equal, including type
// annotations. Positions are ignored.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if !TypesEqual(n.Type, other.Type) {
		return false
	}

	switch x := n.Item.(type) {
	case *LiteralInt:
		y, ok := other.Item.(*LiteralInt)
		return ok && x.Value == y.Value
	case *Variable:
		y, ok := other.Item.(*Variable)
		return ok && x.Name == y.Name
	case *Application:
		y, ok := other.Item.(*Application)
		return ok && x.Function.Equal(y.Function) && x.Argument.Equal(y.Argument)
	case *Abstraction:
		y, ok := other.Item.(*Abstraction)
		return ok && x.Param == y.Param && x.Body.Equal(y.Body)
	case *Assignment:
		y, ok := other.Item.(*Assignment)
		return ok && x.Name == y.Name && x.Value.Equal(y.Value)
	case *Program:
		y, ok := other.Item.(*Program)
		if !ok || len(x.Items) != len(y.Items) {
			return false
		}
		for i := range x.Items {
			if !x.Items[i].Equal(y.Items[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

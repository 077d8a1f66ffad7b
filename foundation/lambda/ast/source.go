// File: source.go
// Title: Source Renderer
// Description: Renders parse trees back to surface syntax with the fewest
//              parentheses that parse to an equal tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package ast

import (
	"strconv"
	"strings"
)

// SourceVisitor renders nodes as source text.
//
// Application is left associative and an abstraction body extends as far
// right as possible, so an abstraction in function position and any
// application or abstraction in argument position get parentheses. Negative
// literals and programs with more than one item render fine but do not parse
// back, since the grammar has neither.
type SourceVisitor struct{}

// Format renders n as source text
func Format(n *Node) string {
	return Visit[string](SourceVisitor{}, n)
}

func (SourceVisitor) VisitLiteralInt(_ *Node, item *LiteralInt) string {
	return strconv.FormatInt(int64(item.Value), 10)
}

func (SourceVisitor) VisitVariable(_ *Node, item *Variable) string {
	return item.Name
}

func (v SourceVisitor) VisitApplication(_ *Node, item *Application) string {
	function := Visit[string](v, item.Function)
	if isKind(item.Function, KindAbstraction) {
		function = "(" + function + ")"
	}

	argument := Visit[string](v, item.Argument)
	if isKind(item.Argument, KindApplication) || isKind(item.Argument, KindAbstraction) {
		argument = "(" + argument + ")"
	}

	return function + " " + argument
}

func (v SourceVisitor) VisitAbstraction(_ *Node, item *Abstraction) string {
	return `\` + item.Param + ". " + Visit[string](v, item.Body)
}

func (v SourceVisitor) VisitAssignment(_ *Node, item *Assignment) string {
	return item.Name + " = " + Visit[string](v, item.Value)
}

func (v SourceVisitor) VisitProgram(_ *Node, item *Program) string {
	lines := make([]string, len(item.Items))
	for i, child := range item.Items {
		lines[i] = Visit[string](v, child)
	}
	return strings.Join(lines, "\n")
}

func isKind(n *Node, kind ItemKind) bool {
	return n != nil && n.Item != nil && n.Item.Kind() == kind
}

// ============================================================================
// lambda - Lambda Calculus Front End
// ============================================================================
//
// Package:     printer
// Description: Indented, colored rendering of parse trees
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/msto63/lambda/foundation/lambda/ast"
)

// IndentWidth is the number of spaces per nesting level
const IndentWidth = 2

// ColorMode selects when output is styled
type ColorMode int

const (
	ColorNever ColorMode = iota
	// ColorAuto styles output only when the writer is a terminal
	ColorAuto
	ColorAlways
)

// Options configures a TreePrinter
type Options struct {
	Color ColorMode
	// ShowTypes appends the type slot of every node
	ShowTypes bool
}

// TreePrinter writes one line per node, children indented below their parent.
// It implements ast.Visitor and recurses explicitly.
type TreePrinter struct {
	w       io.Writer
	opts    Options
	styles  styles
	current int
	err     error
}

type styles struct {
	node    lipgloss.Style
	field   lipgloss.Style
	name    lipgloss.Style
	literal lipgloss.Style
	typ     lipgloss.Style
}

// New creates a printer writing to w
func New(w io.Writer, opts Options) *TreePrinter {
	r := lipgloss.NewRenderer(w)
	switch opts.Color {
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	}

	return &TreePrinter{
		w:    w,
		opts: opts,
		styles: styles{
			node:    r.NewStyle().Foreground(lipgloss.Color("2")).Underline(true),
			field:   r.NewStyle().Foreground(lipgloss.Color("10")).Italic(true),
			name:    r.NewStyle().Foreground(lipgloss.Color("6")),
			literal: r.NewStyle().Foreground(lipgloss.Color("1")),
			typ:     r.NewStyle().Foreground(lipgloss.Color("8")),
		},
	}
}

// Print writes the tree rooted at n and returns the first write error
func (p *TreePrinter) Print(n *ast.Node) error {
	p.current = 0
	p.err = nil
	ast.Visit[struct{}](p, n)
	return p.err
}

// Render returns the uncolored tree layout of n
func Render(n *ast.Node) string {
	var sb strings.Builder
	_ = New(&sb, Options{}).Print(n)
	return sb.String()
}

func (p *TreePrinter) VisitLiteralInt(n *ast.Node, item *ast.LiteralInt) struct{} {
	p.line(n, p.styles.node.Render("Literal Int:")+" "+p.styles.literal.Render(strconv.FormatInt(int64(item.Value), 10)))
	return struct{}{}
}

func (p *TreePrinter) VisitVariable(n *ast.Node, item *ast.Variable) struct{} {
	p.line(n, p.styles.node.Render("Variable:")+" "+p.styles.name.Render(item.Name))
	return struct{}{}
}

func (p *TreePrinter) VisitApplication(n *ast.Node, item *ast.Application) struct{} {
	p.line(n, p.styles.node.Render("Application:"))
	p.child("-Left:", item.Function)
	p.child("-Right:", item.Argument)
	return struct{}{}
}

func (p *TreePrinter) VisitAbstraction(n *ast.Node, item *ast.Abstraction) struct{} {
	p.line(n, p.styles.node.Render("Abstraction:"))
	p.line(nil, p.styles.field.Render("-Param:")+" "+p.styles.name.Render(item.Param))
	p.child("-Body:", item.Body)
	return struct{}{}
}

func (p *TreePrinter) VisitAssignment(n *ast.Node, item *ast.Assignment) struct{} {
	p.line(n, p.styles.node.Render("Assignment:")+" "+p.styles.name.Render(item.Name))
	p.child("-Value:", item.Value)
	return struct{}{}
}

func (p *TreePrinter) VisitProgram(n *ast.Node, item *ast.Program) struct{} {
	p.line(nil, "AST:")
	p.current++
	for _, child := range item.Items {
		ast.Visit[struct{}](p, child)
	}
	p.current--
	return struct{}{}
}

// child writes a field label and visits n one level deeper
func (p *TreePrinter) child(label string, n *ast.Node) {
	p.line(nil, p.styles.field.Render(label))
	p.current++
	ast.Visit[struct{}](p, n)
	p.current--
}

// line writes text at the current indent. A non-nil n adds its type when
// ShowTypes is set.
func (p *TreePrinter) line(n *ast.Node, text string) {
	if p.err != nil {
		return
	}
	if n != nil && p.opts.ShowTypes {
		text += " " + p.styles.typ.Render("["+typeString(n.Type)+"]")
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(" ", p.current*IndentWidth), text)
}

func typeString(t ast.Type) string {
	if t == nil {
		return ast.Unknown.String()
	}
	return t.String()
}

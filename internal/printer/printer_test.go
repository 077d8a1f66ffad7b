package printer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/msto63/lambda/foundation/lambda/ast"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		node     *ast.Node
		expected string
	}{
		{
			name:     "Literal",
			node:     ast.NewLiteralInt(109),
			expected: "Literal Int: 109\n",
		},
		{
			name:     "Variable",
			node:     ast.NewVariable("x"),
			expected: "Variable: x\n",
		},
		{
			name: "Abstraction",
			node: ast.NewAbstraction("x", ast.NewVariable("x")),
			expected: "Abstraction:\n" +
				"-Param: x\n" +
				"-Body:\n" +
				"  Variable: x\n",
		},
		{
			name: "Left associative application",
			node: ast.NewApplication(ast.NewApplication(ast.NewVariable("a"), ast.NewVariable("b")), ast.NewVariable("c")),
			expected: "Application:\n" +
				"-Left:\n" +
				"  Application:\n" +
				"  -Left:\n" +
				"    Variable: a\n" +
				"  -Right:\n" +
				"    Variable: b\n" +
				"-Right:\n" +
				"  Variable: c\n",
		},
		{
			name: "Program",
			node: ast.NewProgram(ast.NewAssignment("one", ast.NewLiteralInt(1))),
			expected: "AST:\n" +
				"  Assignment: one\n" +
				"  -Value:\n" +
				"    Literal Int: 1\n",
		},
		{
			name:     "Empty program",
			node:     ast.NewProgram(),
			expected: "AST:\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.node); got != tt.expected {
				t.Errorf("Render() =\n%s\nexpected\n%s", got, tt.expected)
			}
		})
	}
}

func TestPrint_ShowTypes(t *testing.T) {
	var buf bytes.Buffer
	tree := ast.NewAbstraction("x", ast.NewVariable("x"))
	tree.Type = &ast.TypeAbstraction{From: &ast.TypeVariable{Name: "Int"}, To: &ast.TypeVariable{Name: "Int"}}

	if err := New(&buf, Options{ShowTypes: true}).Print(tree); err != nil {
		t.Fatalf("Print() error: %v", err)
	}

	expected := "Abstraction: [Int -> Int]\n" +
		"-Param: x\n" +
		"-Body:\n" +
		"  Variable: x [?]\n"
	if buf.String() != expected {
		t.Errorf("Print() =\n%s\nexpected\n%s", buf.String(), expected)
	}
}

func TestPrint_ColorModes(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		escapes bool
	}{
		{"Never", ColorNever, false},
		{"Auto on a buffer", ColorAuto, false},
		{"Always", ColorAlways, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := New(&buf, Options{Color: tt.mode}).Print(ast.NewVariable("x")); err != nil {
				t.Fatalf("Print() error: %v", err)
			}
			if got := bytes.Contains(buf.Bytes(), []byte("\x1b[")); got != tt.escapes {
				t.Errorf("Expected escapes=%v, got %q", tt.escapes, buf.String())
			}
		})
	}
}

type failingWriter struct {
	writes int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	f.writes++
	return 0, errors.New("disk full")
}

func TestPrint_StopsAfterWriteError(t *testing.T) {
	w := &failingWriter{}
	tree := ast.NewApplication(ast.NewVariable("f"), ast.NewVariable("x"))

	if err := New(w, Options{}).Print(tree); err == nil {
		t.Fatal("Expected write error")
	}
	if w.writes != 1 {
		t.Errorf("Expected printing to stop after the first failed write, got %d writes", w.writes)
	}
}

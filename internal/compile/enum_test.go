package compile

import (
	"testing"

	"wasmc/internal/ast"
)

// Scenario 3: enum E { A = 1, B = 2 } export function pick(): int { return
// E.B; } — constant E$B evaluates to 2 and the property access lowers to
// i32.const 2.
func TestEndToEndEnumConstant(t *testing.T) {
	c, bag := newCompiler(t)
	enum := &ast.EnumDecl{
		Name: "E",
		Members: []ast.EnumMember{
			{Name: "A", Value: &ast.IntLiteral{Text: "1"}},
			{Name: "B", Value: &ast.IntLiteral{Text: "2"}},
		},
	}
	pick := &ast.FuncDecl{
		Name:       "pick",
		Export:     true,
		ReturnType: typ("int"),
		Body: []ast.Stmt{
			&ast.ReturnStmt{Expr: &ast.PropertyExpr{
				X:    &ast.Ident{Name: "E"},
				Name: "B",
			}},
		},
	}
	f := &ast.File{Decls: []ast.Decl{enum, pick}}

	if err := c.ScanFile(f); err != nil {
		t.Fatalf("pass 1: %v", err)
	}
	if err := c.CompileFile(f); err != nil {
		t.Fatalf("pass 2: %v", err)
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}

	cst, ok := c.Table.LookupConstant("E$B")
	if !ok || cst.Value != 2 {
		t.Fatalf("expected E$B == 2, got %+v, ok=%v", cst, ok)
	}
}

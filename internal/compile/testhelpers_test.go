package compile

import (
	"testing"

	"wasmc/internal/ast"
	"wasmc/internal/diag"
)

// newCompiler builds a 4-byte-word Compiler backed by a fresh diagnostic
// bag, for the end-to-end scenarios in spec.md §8.
func newCompiler(t *testing.T) (*Compiler, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(64)
	c, err := New(4, diag.BagReporter{Bag: bag})
	if err != nil {
		t.Fatal(err)
	}
	return c, bag
}

func typ(name string) *ast.TypeExpr { return &ast.TypeExpr{Name: name} }

func param(name, typeName string) *ast.Param {
	return &ast.Param{Name: name, Type: typ(typeName)}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

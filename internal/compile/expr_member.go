package compile

import (
	"fmt"

	"wasmc/internal/ast"
	"wasmc/internal/diag"
	"wasmc/internal/types"
	"wasmc/internal/wasmgen"
)

// lowerProperty supports exactly the one form §4.F names: `A.B` where both A
// and B are identifiers and "A$B" names a registered enum constant. Every
// other shape (instance field access, method calls, nested property chains)
// is the §9(c) open question left unimplemented.
func (lx *lowerer) lowerProperty(n *ast.PropertyExpr, ctx *types.PrimitiveType) wasmgen.Expr {
	recv, ok := n.X.(*ast.Ident)
	if !ok {
		msg := "unsupported property access: only Enum.Member constant references are recognized"
		diag.ReportError(lx.c.Rep, diag.BodyUnsupportedProperty, n.Span, msg).Emit()
		return wasmgen.Unreachable(ctx)
	}
	key := recv.Name + "$" + n.Name
	cst, ok := lx.c.Table.LookupConstant(key)
	if !ok {
		msg := fmt.Sprintf("unknown constant %q", key)
		diag.ReportError(lx.c.Rep, diag.BodyUnsupportedProperty, n.Span, msg).Emit()
		return wasmgen.Unreachable(ctx)
	}
	return wasmgen.ConstI32(cst.Type, int32(cst.Value))
}

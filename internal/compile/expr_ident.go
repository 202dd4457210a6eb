package compile

import (
	"fmt"

	"wasmc/internal/ast"
	"wasmc/internal/diag"
	"wasmc/internal/types"
	"wasmc/internal/wasmgen"
)

// lowerIdent looks the name up in the current local-slot map and emits
// get_local. An undefined name is recoverable: diagnose and fill in a typed
// unreachable under the contextual type so the parent can keep composing
// (§4.F "Identifier").
func (lx *lowerer) lowerIdent(n *ast.Ident, ctx *types.PrimitiveType) wasmgen.Expr {
	slot, ok := lx.scope.Lookup(n.Name)
	if !ok {
		msg := fmt.Sprintf("unknown identifier %q", n.Name)
		diag.ReportError(lx.c.Rep, diag.BodyUnknownIdentifier, n.Span, msg).Emit()
		return wasmgen.Unreachable(ctx)
	}
	return wasmgen.GetLocal(slot.Type, slot.Index)
}

package compile

import (
	"wasmc/internal/ast"
	"wasmc/internal/types"
	"wasmc/internal/wasmgen"
)

// lowerParen is transparent to both contextual and inferred typing (§4.F).
func (lx *lowerer) lowerParen(n *ast.ParenExpr, ctx *types.PrimitiveType) wasmgen.Expr {
	return lx.lowerExpr(n.X, ctx)
}

// lowerCast resolves the annotated type, lowers the inner expression under
// the *original* contextual type (the cast's target does not leak downward
// past itself), then converts explicitly (§4.F "As-cast").
func (lx *lowerer) lowerCast(n *ast.CastExpr, ctx *types.PrimitiveType) wasmgen.Expr {
	target, err := lx.c.Resolver.Type(n.Type, false)
	if err != nil {
		return wasmgen.Unreachable(ctx)
	}
	inner := lx.lowerExpr(n.X, ctx)
	return lx.c.Conv.Convert(n.Span, inner, inner.Type, target, true)
}

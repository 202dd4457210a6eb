package compile

import (
	"fmt"

	"wasmc/internal/ast"
	"wasmc/internal/diag"
	"wasmc/internal/token"
	"wasmc/internal/types"
	"wasmc/internal/wasmgen"
)

// lowerBinary implements §4.F's binary-operator rule: lower both sides
// under the outer contextual type to discover their natural types, pick the
// wider/float-preferring result type, then re-lower both sides under that
// result type (so a bare numeric literal picks the correct width) and
// coerce each through the conversion engine before emitting the opcode.
func (lx *lowerer) lowerBinary(n *ast.BinaryExpr, ctx *types.PrimitiveType) wasmgen.Expr {
	xProbe := lx.lowerExpr(n.X, ctx)
	yProbe := lx.lowerExpr(n.Y, ctx)
	resultType := widerNumeric(xProbe.Type, yProbe.Type)

	x := lx.lowerExpr(n.X, resultType)
	y := lx.lowerExpr(n.Y, resultType)
	x = lx.c.Conv.Convert(n.Span, x, x.Type, resultType, false)
	y = lx.c.Conv.Convert(n.Span, y, y.Type, resultType, false)

	family := familyOf(resultType)
	signed := resultType.IsSigned()
	isFloatFamily := family == wasmgen.FamilyF32 || family == wasmgen.FamilyF64

	switch n.Op {
	case token.Plus:
		return wasmgen.Add(resultType, x, y, family)
	case token.Minus:
		return wasmgen.Sub(resultType, x, y, family)
	case token.Star:
		return wasmgen.Mul(resultType, x, y, family)
	case token.Slash:
		return wasmgen.Div(resultType, x, y, family, signed)
	case token.Percent:
		if isFloatFamily {
			return lx.unsupportedOperator(n, resultType, "'%' has no floating-point opcode")
		}
		return wasmgen.Rem(resultType, x, y, family, signed)
	case token.Amp:
		if isFloatFamily {
			return lx.unsupportedOperator(n, resultType, "'&' has no floating-point opcode")
		}
		return wasmgen.And(resultType, x, y, family)
	case token.Pipe:
		if isFloatFamily {
			return lx.unsupportedOperator(n, resultType, "'|' has no floating-point opcode")
		}
		return wasmgen.Or(resultType, x, y, family)
	case token.Caret:
		if isFloatFamily {
			return lx.unsupportedOperator(n, resultType, "'^' has no floating-point opcode")
		}
		return wasmgen.Xor(resultType, x, y, family)
	case token.Shl:
		if isFloatFamily {
			return lx.unsupportedOperator(n, resultType, "'<<' has no floating-point opcode")
		}
		return wasmgen.Shl(resultType, x, y, family)
	case token.Shr:
		if isFloatFamily {
			return lx.unsupportedOperator(n, resultType, "'>>' has no floating-point opcode")
		}
		return wasmgen.Shr(resultType, x, y, family, signed)
	default:
		return lx.unsupportedOperator(n, resultType, "unsupported operator")
	}
}

// unsupportedOperator reports the diagnostic and returns the typed
// unreachable fill-in explicitly, rather than relying on an absent later
// opcode-selection case to fall through (§9(d)).
func (lx *lowerer) unsupportedOperator(n *ast.BinaryExpr, resultType *types.PrimitiveType, why string) wasmgen.Expr {
	msg := fmt.Sprintf("unsupported operator %s: %s", n.Op.String(), why)
	diag.ReportError(lx.c.Rep, diag.BodyUnsupportedOperator, n.Span, msg).Emit()
	return wasmgen.Unreachable(resultType)
}

package compile

import (
	"fmt"
	"strconv"
	"strings"

	"wasmc/internal/ast"
	"wasmc/internal/diag"
	"wasmc/internal/types"
	"wasmc/internal/wasmgen"
)

// lowerIntLiteral implements §4.F's "Numeric literal" rule for int-literal
// syntax (decimal or 0x-prefixed hex text). The literal itself carries no
// family of its own: its inferred type is whatever the contextual type
// says, and the text is reinterpreted accordingly — as a float constant
// when the context is float/double, as a 64-bit pair when the context is
// long/ulong, otherwise masked/parsed into an i32.const.
func (lx *lowerer) lowerIntLiteral(n *ast.IntLiteral, ctx *types.PrimitiveType) wasmgen.Expr {
	raw, err := parseIntText(n.Text)
	if err != nil {
		msg := fmt.Sprintf("malformed integer literal %q: %s", n.Text, err)
		diag.ReportError(lx.c.Rep, diag.BodyUnsupportedLiteral, n.Span, msg).Emit()
		return wasmgen.Unreachable(ctx)
	}

	switch {
	case ctx.IsFloat():
		return floatConst(ctx, float64(raw))
	case ctx.Kind == types.Bool:
		v := int32(0)
		if raw != 0 {
			v = 1
		}
		return wasmgen.ConstI32(ctx, v)
	case ctx.IsLong():
		return wasmgen.ConstI64(ctx, int64(raw))
	default:
		masked := uint32(raw) & ctx.Mask32()
		return wasmgen.ConstI32(ctx, int32(masked))
	}
}

// lowerFloatLiteral implements the literal rule's override: text that is
// unambiguously floating-point (has a '.' or exponent — guaranteed by the
// lexer producing a FloatLit token in the first place) forces the inferred
// type to f64 whenever the contextual type is not itself a float kind.
func (lx *lowerer) lowerFloatLiteral(n *ast.FloatLiteral, ctx *types.PrimitiveType) wasmgen.Expr {
	v, err := strconv.ParseFloat(n.Text, 64)
	if err != nil {
		msg := fmt.Sprintf("malformed float literal %q: %s", n.Text, err)
		diag.ReportError(lx.c.Rep, diag.BodyUnsupportedLiteral, n.Span, msg).Emit()
		return wasmgen.Unreachable(ctx)
	}
	target := ctx
	if !ctx.IsFloat() {
		target = lx.c.Reg.Get(types.Double)
	}
	return floatConst(target, v)
}

// lowerBoolLiteral emits i32.const 0/1 (§4.F "For bool").
func (lx *lowerer) lowerBoolLiteral(n *ast.BoolLiteral, ctx *types.PrimitiveType) wasmgen.Expr {
	v := int32(0)
	if n.Value {
		v = 1
	}
	return wasmgen.ConstI32(ctx, v)
}

// floatConst emits f32.const or f64.const depending on t's kind.
func floatConst(t *types.PrimitiveType, v float64) wasmgen.Expr {
	if t.Kind == types.Float {
		return wasmgen.ConstF32(t, float32(v))
	}
	return wasmgen.ConstF64(t, v)
}

// parseIntText parses decimal or 0x/0X-prefixed hex literal text into its
// raw 64-bit magnitude. The grammar has no unary minus on literals
// themselves (negative values are expressed as `0 - x`, e2e scenario 6),
// so the text is always non-negative.
func parseIntText(text string) (uint64, error) {
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		return strconv.ParseUint(text[2:], 16, 64)
	}
	return strconv.ParseUint(text, 10, 64)
}

package compile

import (
	"fmt"
	"strconv"
	"strings"

	"wasmc/internal/ast"
	"wasmc/internal/token"
)

// ConstEval evaluates a compile-time integer constant expression — the
// sliver of type-checking spec.md treats as an external collaborator
// ("value taken from the type checker's evaluated enum constant", §4.D).
// It supports exactly what enum member initializers need: integer
// literals and the integer binary operators, nothing requiring a typed
// AST or symbol lookups.
func ConstEval(e ast.Expr) (int64, error) {
	switch n := e.(type) {
	case *ast.IntLiteral:
		return parseIntLiteral(n.Text)
	case *ast.ParenExpr:
		return ConstEval(n.X)
	case *ast.BinaryExpr:
		x, err := ConstEval(n.X)
		if err != nil {
			return 0, err
		}
		y, err := ConstEval(n.Y)
		if err != nil {
			return 0, err
		}
		return evalBinary(n.Op, x, y)
	default:
		return 0, fmt.Errorf("unsupported constant expression")
	}
}

func parseIntLiteral(text string) (int64, error) {
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		v, err := strconv.ParseUint(text[2:], 16, 64)
		return int64(v), err
	}
	v, err := strconv.ParseInt(text, 10, 64)
	return v, err
}

func evalBinary(op token.Kind, x, y int64) (int64, error) {
	switch op {
	case token.Plus:
		return x + y, nil
	case token.Minus:
		return x - y, nil
	case token.Star:
		return x * y, nil
	case token.Slash:
		if y == 0 {
			return 0, fmt.Errorf("division by zero in constant expression")
		}
		return x / y, nil
	case token.Percent:
		if y == 0 {
			return 0, fmt.Errorf("modulo by zero in constant expression")
		}
		return x % y, nil
	case token.Amp:
		return x & y, nil
	case token.Pipe:
		return x | y, nil
	case token.Caret:
		return x ^ y, nil
	case token.Shl:
		return x << uint64(y), nil
	case token.Shr:
		return x >> uint64(y), nil
	default:
		return 0, fmt.Errorf("unsupported operator in constant expression")
	}
}

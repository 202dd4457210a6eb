package ast

import (
	"wasmc/internal/source"
	"wasmc/internal/token"
)

// Ident is a bare name reference, resolved against the current local-slot
// map (or, inside a property access, against the enum-constant table).
type Ident struct {
	Span source.Span
	Name string
}

func (e *Ident) Pos() source.Span { return e.Span }
func (e *Ident) exprNode()        {}

// IntLiteral is a decimal or 0x-prefixed hex integer literal; Text is the
// raw lexed spelling so the lowerer controls radix and width interpretation.
type IntLiteral struct {
	Span source.Span
	Text string
}

func (e *IntLiteral) Pos() source.Span { return e.Span }
func (e *IntLiteral) exprNode()        {}

// FloatLiteral is a decimal floating-point literal.
type FloatLiteral struct {
	Span source.Span
	Text string
}

func (e *FloatLiteral) Pos() source.Span { return e.Span }
func (e *FloatLiteral) exprNode()        {}

// BoolLiteral is a `true`/`false` literal.
type BoolLiteral struct {
	Span  source.Span
	Value bool
}

func (e *BoolLiteral) Pos() source.Span { return e.Span }
func (e *BoolLiteral) exprNode()        {}

// BinaryExpr is `X Op Y`. Op is restricted by the parser to the operator set
// the lowerer understands: + - * / % & | ^ << >>.
type BinaryExpr struct {
	Span source.Span
	Op   token.Kind
	X, Y Expr
}

func (e *BinaryExpr) Pos() source.Span { return e.Span }
func (e *BinaryExpr) exprNode()        {}

// ParenExpr is `(X)`; transparent to contextual and inferred typing.
type ParenExpr struct {
	Span source.Span
	X    Expr
}

func (e *ParenExpr) Pos() source.Span { return e.Span }
func (e *ParenExpr) exprNode()        {}

// CastExpr is `X as Type`, an explicit conversion.
type CastExpr struct {
	Span source.Span
	X    Expr
	Type *TypeExpr
}

func (e *CastExpr) Pos() source.Span { return e.Span }
func (e *CastExpr) exprNode()        {}

// PropertyExpr is `X.Name`. The only form the lowerer supports is an enum
// constant reference where X is itself an Ident.
type PropertyExpr struct {
	Span source.Span
	X    Expr
	Name string
}

func (e *PropertyExpr) Pos() source.Span { return e.Span }
func (e *PropertyExpr) exprNode()        {}

package ast

import "wasmc/internal/source"

// TypeExpr is the surface syntax for a type annotation: a bare name
// ("int", "double", "MyEnum") or a single-argument generic ("Ptr<int>").
// The type resolver is the only consumer that interprets Name/Args; the
// parser never rejects an unknown name or an unexpected argument count.
type TypeExpr struct {
	Span source.Span
	Name string
	Args []*TypeExpr
}

func (t *TypeExpr) Pos() source.Span { return t.Span }

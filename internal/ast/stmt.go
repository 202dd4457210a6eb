package ast

import "wasmc/internal/source"

// ReturnStmt is `return;` (Expr nil) or `return <expr>;`.
type ReturnStmt struct {
	Span source.Span
	Expr Expr
}

func (s *ReturnStmt) Pos() source.Span { return s.Span }
func (s *ReturnStmt) stmtNode()        {}

// ExprStmt is a bare expression followed by ';'.
type ExprStmt struct {
	Span source.Span
	Expr Expr
}

func (s *ExprStmt) Pos() source.Span { return s.Span }
func (s *ExprStmt) stmtNode()        {}

// LocalVarStmt is a `let`/`const` statement inside a function body.
type LocalVarStmt struct {
	Span  source.Span
	Name  string
	Const bool
	Type  *TypeExpr // nil when the declaration omits an annotation
	Value Expr
}

func (s *LocalVarStmt) Pos() source.Span { return s.Span }
func (s *LocalVarStmt) stmtNode()        {}

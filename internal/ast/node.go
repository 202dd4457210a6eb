package ast

import "wasmc/internal/source"

// Node is implemented by every syntax tree node; Pos reports its source span.
type Node interface {
	Pos() source.Span
}

// Decl is a top-level declaration: FuncDecl, ClassDecl, EnumDecl, or VarDecl.
type Decl interface {
	Node
	declNode()
}

// Stmt is a function-body statement: ReturnStmt, ExprStmt, or LocalVarStmt.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression node. Lowering never writes an inferred type back
// onto the node itself: internal/compile's lowerer returns a wasmgen.Expr,
// which already pairs the emitted instruction bytes with their type, so a
// tree built once by the parser stays reusable across more than one
// compilation (§9's "return-value pair" alternative to a side table).
type Expr interface {
	Node
	exprNode()
}

// Package ast defines the plain pointer-tree syntax produced by
// internal/parser: File, top-level Decls (FuncDecl, ClassDecl, EnumDecl,
// VarDecl), Stmts, and Exprs. Unlike an incremental-reparse front end, there
// is no arena or node-ID indirection here — a compilation walks the tree
// exactly once, so plain pointers are sufficient and simpler.
package ast

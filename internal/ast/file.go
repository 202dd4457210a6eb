package ast

import "wasmc/internal/source"

// File is the root of one parsed source file: an ordered list of top-level
// declarations. A declarations-only file (see internal/config) carries no
// FuncDecl/ClassDecl/EnumDecl bodies and is skipped by pass 2 entirely.
type File struct {
	ID    source.FileID
	Decls []Decl
}

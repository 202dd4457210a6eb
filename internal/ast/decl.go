package ast

import "wasmc/internal/source"

// Param is one function parameter.
type Param struct {
	Span source.Span
	Name string
	Type *TypeExpr
}

// FuncDecl is a function or method declaration. Export and Declare are only
// meaningful on top-level functions; the symbol initializer rejects them on
// class methods. Body is nil for declared (imported) functions.
type FuncDecl struct {
	Span       source.Span
	Name       string
	Export     bool
	Declare    bool
	Static     bool // class-method modifier; always false for free functions
	Params     []*Param
	ReturnType *TypeExpr
	Body       []Stmt
}

func (d *FuncDecl) Pos() source.Span { return d.Span }
func (d *FuncDecl) declNode()        {}

// ClassDecl holds only method members; any other member kind is a parse-time
// diagnostic rather than a distinct AST shape.
type ClassDecl struct {
	Span    source.Span
	Name    string
	Methods []*FuncDecl
}

func (d *ClassDecl) Pos() source.Span { return d.Span }
func (d *ClassDecl) declNode()        {}

// EnumMember is one `Name = value` entry of an enum body.
type EnumMember struct {
	Span  source.Span
	Name  string
	Value Expr
}

// EnumDecl declares a set of int-valued named constants.
type EnumDecl struct {
	Span    source.Span
	Name    string
	Members []EnumMember
}

func (d *EnumDecl) Pos() source.Span { return d.Span }
func (d *EnumDecl) declNode()        {}

// VarDecl is a top-level variable statement. The symbol initializer does not
// yet register a global for it (open question, see DESIGN.md).
type VarDecl struct {
	Span  source.Span
	Name  string
	Const bool
	Type  *TypeExpr
	Value Expr
}

func (d *VarDecl) Pos() source.Span { return d.Span }
func (d *VarDecl) declNode()        {}

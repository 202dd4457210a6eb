package parser

import (
	"wasmc/internal/ast"
	"wasmc/internal/diag"
	"wasmc/internal/lexer"
	"wasmc/internal/source"
	"wasmc/internal/token"
)

// Options configures a Parser.
type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget has been exhausted.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Parser holds the state needed to recursive-descend one file's tokens.
type Parser struct {
	lx       *lexer.Lexer
	fileID   source.FileID
	opts     Options
	lastSpan source.Span
}

// ParseFile parses one file's token stream into an *ast.File. The caller is
// responsible for constructing lx over the desired source.File.
func ParseFile(fileID source.FileID, lx *lexer.Lexer, opts Options) *ast.File {
	p := &Parser{lx: lx, fileID: fileID, opts: opts}
	f := &ast.File{ID: fileID}
	for !p.at(token.EOF) {
		decl, ok := p.parseDecl()
		if !ok {
			p.resyncTop()
			continue
		}
		f.Decls = append(f.Decls, decl)
	}
	return f
}

func (p *Parser) at(k token.Kind) bool { return p.lx.Peek().Kind == k }

// parseDecl dispatches on the leading token of a top-level declaration.
func (p *Parser) parseDecl() (ast.Decl, bool) {
	export, declare := false, false
	for {
		switch p.lx.Peek().Kind {
		case token.KwExport:
			export = true
			p.advance()
			continue
		case token.KwDeclare:
			declare = true
			p.advance()
			continue
		}
		break
	}

	switch p.lx.Peek().Kind {
	case token.KwFunction:
		return p.parseFuncDecl(export, declare)
	case token.KwClass:
		if export || declare {
			p.err(diag.SynUnexpectedTopLevel, "'export'/'declare' are not valid on a class declaration")
		}
		return p.parseClassDecl()
	case token.KwEnum:
		if export || declare {
			p.err(diag.SynUnexpectedTopLevel, "'export'/'declare' are not valid on an enum declaration")
		}
		return p.parseEnumDecl()
	case token.KwLet, token.KwConst:
		return p.parseVarDecl()
	default:
		p.err(diag.SynUnexpectedTopLevel, "unexpected top-level construct")
		return nil, false
	}
}

// resyncTop skips tokens until a plausible top-level start or ';' or EOF.
func (p *Parser) resyncTop() {
	for !p.at(token.EOF) {
		switch p.lx.Peek().Kind {
		case token.KwFunction, token.KwClass, token.KwEnum, token.KwLet,
			token.KwConst, token.KwExport, token.KwDeclare:
			return
		case token.Semicolon:
			p.advance()
			return
		}
		p.advance()
	}
}

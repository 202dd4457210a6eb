package parser

import (
	"wasmc/internal/ast"
	"wasmc/internal/diag"
	"wasmc/internal/token"
)

// parseBlock parses a `{ stmt* }` function body.
func (p *Parser) parseBlock() ([]ast.Stmt, bool) {
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open function body"); !ok {
		return nil, false
	}
	var stmts []ast.Stmt
	ok := true
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		s, sok := p.parseStmt()
		if !sok {
			ok = false
			p.resyncStmt()
			continue
		}
		stmts = append(stmts, s)
	}
	if _, rok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close function body"); !rok {
		ok = false
	}
	return stmts, ok
}

// resyncStmt skips to the next plausible statement start or closing brace.
func (p *Parser) resyncStmt() {
	for !p.at(token.EOF) {
		switch p.lx.Peek().Kind {
		case token.RBrace, token.KwReturn, token.KwLet, token.KwConst:
			return
		case token.Semicolon:
			p.advance()
			return
		}
		p.advance()
	}
}

func (p *Parser) parseStmt() (ast.Stmt, bool) {
	switch p.lx.Peek().Kind {
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwLet, token.KwConst:
		return p.parseLocalVarStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseReturnStmt() (ast.Stmt, bool) {
	start := p.lx.Peek().Span
	p.advance() // 'return'

	if p.at(token.Semicolon) {
		p.advance()
		return &ast.ReturnStmt{Span: start.Cover(p.lastSpan)}, true
	}
	expr, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after return statement"); !ok {
		return nil, false
	}
	return &ast.ReturnStmt{Span: start.Cover(p.lastSpan), Expr: expr}, true
}

func (p *Parser) parseLocalVarStmt() (ast.Stmt, bool) {
	start := p.lx.Peek().Span
	isConst := p.at(token.KwConst)
	p.advance() // 'let' or 'const'

	name, ok := p.parseIdentName()
	if !ok {
		return nil, false
	}
	s := &ast.LocalVarStmt{Span: start, Name: name, Const: isConst}
	if p.at(token.Colon) {
		p.advance()
		t, ok := p.parseType()
		if !ok {
			return s, false
		}
		s.Type = t
	}
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' in local variable declaration"); !ok {
		return s, false
	}
	val, ok := p.parseExpr()
	if !ok {
		return s, false
	}
	s.Value = val
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after local variable declaration"); !ok {
		return s, false
	}
	s.Span = start.Cover(p.lastSpan)
	return s, true
}

func (p *Parser) parseExprStmt() (ast.Stmt, bool) {
	start := p.lx.Peek().Span
	expr, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after expression statement"); !ok {
		return nil, false
	}
	return &ast.ExprStmt{Span: start.Cover(p.lastSpan), Expr: expr}, true
}

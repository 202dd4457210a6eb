package parser

import (
	"wasmc/internal/ast"
	"wasmc/internal/diag"
	"wasmc/internal/token"
)

// parseFuncDecl parses a top-level function declaration. export/declare were
// already consumed by parseDecl's modifier loop.
func (p *Parser) parseFuncDecl(export, declare bool) (ast.Decl, bool) {
	start := p.lx.Peek().Span
	p.advance() // 'function'

	name, ok := p.parseIdentName()
	if !ok {
		return nil, false
	}

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after function name"); !ok {
		return nil, false
	}
	params, ok := p.parseParamList()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')' to close parameter list"); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectType, "expected ':' before return type"); !ok {
		return nil, false
	}
	retType, ok := p.parseType()
	if !ok {
		return nil, false
	}

	d := &ast.FuncDecl{
		Span: start, Name: name, Export: export, Declare: declare,
		Params: params, ReturnType: retType,
	}

	if declare {
		if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "declared functions have no body; expected ';'"); !ok {
			return d, false
		}
		d.Span = start.Cover(p.lastSpan)
		return d, true
	}

	body, ok := p.parseBlock()
	d.Body = body
	d.Span = start.Cover(p.lastSpan)
	return d, ok
}

// parseMethodDecl parses one class member: an optional 'static' modifier
// followed by a function declaration with a body. Export/declare modifiers
// are not recognized inside a class body; only 'static' is.
func (p *Parser) parseMethodDecl(static bool) (*ast.FuncDecl, bool) {
	start := p.lx.Peek().Span
	p.advance() // 'function'

	name, ok := p.parseIdentName()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after method name"); !ok {
		return nil, false
	}
	params, ok := p.parseParamList()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')' to close parameter list"); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectType, "expected ':' before return type"); !ok {
		return nil, false
	}
	retType, ok := p.parseType()
	if !ok {
		return nil, false
	}
	body, ok := p.parseBlock()
	d := &ast.FuncDecl{
		Span: start.Cover(p.lastSpan), Name: name, Static: static,
		Params: params, ReturnType: retType, Body: body,
	}
	return d, ok
}

// parseParamList parses zero or more `name: Type` parameters up to (but not
// consuming) the closing ')'.
func (p *Parser) parseParamList() ([]*ast.Param, bool) {
	var params []*ast.Param
	if p.at(token.RParen) {
		return params, true
	}
	for {
		pstart := p.lx.Peek().Span
		name, ok := p.parseIdentName()
		if !ok {
			return params, false
		}
		if _, ok := p.expect(token.Colon, diag.SynExpectType, "expected ':' before parameter type"); !ok {
			return params, false
		}
		t, ok := p.parseType()
		if !ok {
			return params, false
		}
		params = append(params, &ast.Param{Span: pstart.Cover(p.lastSpan), Name: name, Type: t})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	return params, true
}

// parseClassDecl parses a class body consisting only of method members.
func (p *Parser) parseClassDecl() (ast.Decl, bool) {
	start := p.lx.Peek().Span
	p.advance() // 'class'

	name, ok := p.parseIdentName()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open class body"); !ok {
		return nil, false
	}

	d := &ast.ClassDecl{Span: start, Name: name}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		static := false
		if p.at(token.KwStatic) {
			static = true
			p.advance()
		}
		if p.at(token.KwFunction) {
			m, ok := p.parseMethodDecl(static)
			if ok {
				d.Methods = append(d.Methods, m)
			} else {
				p.resyncClassMember()
			}
			continue
		}
		p.err(diag.SynIllegalMember, "only method declarations are allowed in a class body")
		p.resyncClassMember()
	}

	_, ok = p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close class body")
	d.Span = start.Cover(p.lastSpan)
	return d, ok
}

// resyncClassMember skips tokens until the next plausible member start.
func (p *Parser) resyncClassMember() {
	for !p.at(token.EOF) {
		switch p.lx.Peek().Kind {
		case token.KwStatic, token.KwFunction, token.RBrace:
			return
		}
		p.advance()
	}
}

// parseEnumDecl parses `enum Name { Member = Expr, ... }`.
func (p *Parser) parseEnumDecl() (ast.Decl, bool) {
	start := p.lx.Peek().Span
	p.advance() // 'enum'

	name, ok := p.parseIdentName()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open enum body"); !ok {
		return nil, false
	}

	d := &ast.EnumDecl{Span: start, Name: name}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		mstart := p.lx.Peek().Span
		mname, ok := p.parseIdentName()
		if !ok {
			return d, false
		}
		if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' in enum member"); !ok {
			return d, false
		}
		val, ok := p.parseExpr()
		if !ok {
			return d, false
		}
		d.Members = append(d.Members, ast.EnumMember{Span: mstart.Cover(p.lastSpan), Name: mname, Value: val})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}

	_, ok = p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close enum body")
	d.Span = start.Cover(p.lastSpan)
	return d, ok
}

// parseVarDecl parses a top-level `let`/`const` statement. §9 open question
// (b): pass 1 records no global for this node; the parser still produces a
// well-formed ast.VarDecl so "any other top-level kind is a hard error"
// doesn't misfire on it.
func (p *Parser) parseVarDecl() (ast.Decl, bool) {
	start := p.lx.Peek().Span
	isConst := p.at(token.KwConst)
	p.advance() // 'let' or 'const'

	name, ok := p.parseIdentName()
	if !ok {
		return nil, false
	}
	d := &ast.VarDecl{Span: start, Name: name, Const: isConst}
	if p.at(token.Colon) {
		p.advance()
		t, ok := p.parseType()
		if !ok {
			return d, false
		}
		d.Type = t
	}
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' in variable declaration"); !ok {
		return d, false
	}
	val, ok := p.parseExpr()
	if !ok {
		return d, false
	}
	d.Value = val
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after variable declaration"); !ok {
		return d, false
	}
	d.Span = start.Cover(p.lastSpan)
	return d, true
}

package parser

import (
	"wasmc/internal/ast"
	"wasmc/internal/diag"
	"wasmc/internal/token"
)

// parseType parses a bare name or a generic `Name<Args...>` with one or more
// comma-separated type arguments. Only `Ptr<T>` is meaningful to the
// resolver; the parser accepts any such shape and lets the resolver reject
// what it doesn't recognize.
func (p *Parser) parseType() (*ast.TypeExpr, bool) {
	start := p.lx.Peek().Span
	name, ok := p.parseIdentName()
	if !ok {
		return nil, false
	}
	t := &ast.TypeExpr{Span: start, Name: name}
	if !p.at(token.Lt) {
		return t, true
	}
	p.advance() // '<'
	for {
		arg, ok := p.parseType()
		if !ok {
			return t, false
		}
		t.Args = append(t.Args, arg)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, ok := p.expect(token.Gt, diag.SynUnexpectedToken, "expected '>' to close generic argument list"); !ok {
		return t, false
	}
	t.Span = start.Cover(p.lastSpan)
	return t, true
}

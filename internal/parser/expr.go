package parser

import (
	"wasmc/internal/ast"
	"wasmc/internal/diag"
	"wasmc/internal/token"
)

// binaryPrec gives each supported binary operator token its precedence
// (higher binds tighter); -1 marks a token that does not start a binary
// operator at all. Matches the usual C-family ordering for this operator
// set: * / % > + - > << >> > & > ^ > |.
func binaryPrec(k token.Kind) int {
	switch k {
	case token.Star, token.Slash, token.Percent:
		return 5
	case token.Plus, token.Minus:
		return 4
	case token.Shl, token.Shr:
		return 3
	case token.Amp:
		return 2
	case token.Caret:
		return 1
	case token.Pipe:
		return 0
	default:
		return -1
	}
}

// parseExpr parses a full expression via precedence-climbing binary parsing
// over a postfix (cast/property-access) base.
func (p *Parser) parseExpr() (ast.Expr, bool) {
	return p.parseBinary(0)
}

func (p *Parser) parseBinary(minPrec int) (ast.Expr, bool) {
	left, ok := p.parsePostfix()
	if !ok {
		return nil, false
	}
	for {
		op := p.lx.Peek().Kind
		prec := binaryPrec(op)
		if prec < minPrec {
			return left, true
		}
		p.advance()
		right, ok := p.parseBinary(prec + 1)
		if !ok {
			return left, false
		}
		left = &ast.BinaryExpr{Span: left.Pos().Cover(right.Pos()), Op: op, X: left, Y: right}
	}
}

// parsePostfix handles the two postfix forms the lowerer supports: `as`
// casts and `.` property access, applied left-to-right over a primary.
func (p *Parser) parsePostfix() (ast.Expr, bool) {
	x, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}
	for {
		switch p.lx.Peek().Kind {
		case token.KwAs:
			p.advance()
			t, ok := p.parseType()
			if !ok {
				return x, false
			}
			x = &ast.CastExpr{Span: x.Pos().Cover(p.lastSpan), X: x, Type: t}
		case token.Dot:
			p.advance()
			name, ok := p.parseIdentName()
			if !ok {
				return x, false
			}
			x = &ast.PropertyExpr{Span: x.Pos().Cover(p.lastSpan), X: x, Name: name}
		default:
			return x, true
		}
	}
}

func (p *Parser) parsePrimary() (ast.Expr, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		return &ast.IntLiteral{Span: tok.Span, Text: tok.Text}, true
	case token.FloatLit:
		p.advance()
		return &ast.FloatLiteral{Span: tok.Span, Text: tok.Text}, true
	case token.KwTrue:
		p.advance()
		return &ast.BoolLiteral{Span: tok.Span, Value: true}, true
	case token.KwFalse:
		p.advance()
		return &ast.BoolLiteral{Span: tok.Span, Value: false}, true
	case token.Ident:
		p.advance()
		return &ast.Ident{Span: tok.Span, Name: tok.Text}, true
	case token.LParen:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close parenthesized expression"); !ok {
			return inner, false
		}
		return &ast.ParenExpr{Span: tok.Span.Cover(p.lastSpan), X: inner}, true
	default:
		p.err(diag.SynExpectExpression, "expected expression, got "+tok.Kind.String())
		return nil, false
	}
}

package parser

import (
	"wasmc/internal/diag"
	"wasmc/internal/source"
	"wasmc/internal/token"
)

// advance consumes the next token and records its span for diagnostics
// positioned after a missing token at EOF.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

func (p *Parser) diagSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect consumes k if present; otherwise reports code/msg and returns false.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagSpan()
	p.report(code, diag.SevError, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: p.lx.Peek().Text}, false
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.diagSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Enough() {
		return
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil, nil)
}

// parseIdentName expects an identifier and returns its text.
func (p *Parser) parseIdentName() (string, bool) {
	if p.at(token.Ident) {
		return p.advance().Text, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got "+p.lx.Peek().Kind.String())
	return "", false
}

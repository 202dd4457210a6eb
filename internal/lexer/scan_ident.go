package lexer

import "wasmc/internal/token"

// scanIdentOrKeyword lexes [A-Za-z_][A-Za-z0-9_$]* and resolves keywords via
// token.LookupKeyword. Keywords are case-sensitive lowercase spellings only.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // first byte already validated by the caller
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

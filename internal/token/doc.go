// Package token defines lexical token kinds for the wasmc front end.
// Invariants:
//   - Token.Text holds the source text the token spans.
//   - Token.Span matches Text exactly (Start..End).
//   - Primitive type names (int, uint, double, Ptr, ...) are lexed as
//     Ident; the type resolver, not the lexer, recognizes them.
package token

// Package lexer scans wasmc source files into a token.Token stream.
// Primitive type names are lexed as plain identifiers; the lexer has no
// knowledge of the type registry.
package lexer

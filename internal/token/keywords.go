package token

var keywords = map[string]Kind{
	"function": KwFunction,
	"declare":  KwDeclare,
	"export":   KwExport,
	"class":    KwClass,
	"static":   KwStatic,
	"enum":     KwEnum,
	"return":   KwReturn,
	"as":       KwAs,
	"let":      KwLet,
	"const":    KwConst,
	"true":     KwTrue,
	"false":    KwFalse,
}

// LookupKeyword returns the keyword kind for ident and whether it is one.
// Keywords are case-sensitive; only the lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token. Primitive type names (int,
	// uint, double, Ptr, ...) are lexed as Ident; the type resolver,
	// not the lexer, recognizes them.
	Ident

	// KwFunction represents the 'function' keyword.
	KwFunction
	// KwDeclare represents the 'declare' keyword (import modifier).
	KwDeclare
	// KwExport represents the 'export' keyword.
	KwExport
	// KwClass represents the 'class' keyword.
	KwClass
	// KwStatic represents the 'static' keyword.
	KwStatic
	// KwEnum represents the 'enum' keyword.
	KwEnum
	// KwReturn represents the 'return' keyword.
	KwReturn
	// KwAs represents the 'as' keyword (explicit cast).
	KwAs
	// KwLet represents the 'let' keyword (local variable statement).
	KwLet
	// KwConst represents the 'const' keyword (local variable statement).
	KwConst
	// KwTrue represents the 'true' keyword.
	KwTrue
	// KwFalse represents the 'false' keyword.
	KwFalse

	// IntLit represents an integer literal token (decimal or 0x-hex).
	IntLit
	// FloatLit represents a decimal floating-point literal token.
	FloatLit
	// BoolLit is the boolean literal kind. The lexer emits KwTrue/KwFalse
	// for 'true'/'false' and never produces BoolLit.
	BoolLit

	// Plus represents the '+' operator token.
	Plus
	// Minus represents the '-' operator token.
	Minus
	// Star represents the '*' operator token.
	Star
	// Slash represents the '/' operator token.
	Slash
	// Percent represents the '%' operator token.
	Percent
	// Amp represents the '&' operator token.
	Amp
	// Pipe represents the '|' operator token.
	Pipe
	// Caret represents the '^' operator token.
	Caret
	// Shl represents the '<<' operator token.
	Shl
	// Shr represents the '>>' operator token.
	Shr

	// Assign represents the '=' token.
	Assign
	// Colon represents the ':' token.
	Colon
	// Semicolon represents the ';' token.
	Semicolon
	// Comma represents the ',' token.
	Comma
	// Dot represents the '.' token.
	Dot
	// LParen represents the '(' token.
	LParen
	// RParen represents the ')' token.
	RParen
	// LBrace represents the '{' token.
	LBrace
	// RBrace represents the '}' token.
	RBrace
	// Lt represents the '<' token (generic argument list open).
	Lt
	// Gt represents the '>' token (generic argument list close).
	Gt
)

// String renders a short human-readable name for diagnostics and tests.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "invalid"
}

var kindNames = map[Kind]string{
	Invalid:    "invalid",
	EOF:        "EOF",
	Ident:      "identifier",
	KwFunction: "'function'",
	KwDeclare:  "'declare'",
	KwExport:   "'export'",
	KwClass:    "'class'",
	KwStatic:   "'static'",
	KwEnum:     "'enum'",
	KwReturn:   "'return'",
	KwAs:       "'as'",
	KwLet:      "'let'",
	KwConst:    "'const'",
	KwTrue:     "'true'",
	KwFalse:    "'false'",
	IntLit:     "integer literal",
	FloatLit:   "float literal",
	BoolLit:    "boolean literal",
	Plus:       "'+'",
	Minus:      "'-'",
	Star:       "'*'",
	Slash:      "'/'",
	Percent:    "'%'",
	Amp:        "'&'",
	Pipe:       "'|'",
	Caret:      "'^'",
	Shl:        "'<<'",
	Shr:        "'>>'",
	Assign:     "'='",
	Colon:      "':'",
	Semicolon:  "';'",
	Comma:      "','",
	Dot:        "'.'",
	LParen:     "'('",
	RParen:     "')'",
	LBrace:     "'{'",
	RBrace:     "'}'",
	Lt:         "'<'",
	Gt:         "'>'",
}

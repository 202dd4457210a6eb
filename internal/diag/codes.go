package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (1000s)
	LexInfo           Code = 1000
	LexUnknownChar    Code = 1001
	LexUnterminated   Code = 1002
	LexBadNumber      Code = 1003

	// Syntax (2000s)
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynUnexpectedTopLevel Code = 2002
	SynExpectIdentifier  Code = 2003
	SynExpectType        Code = 2004
	SynExpectExpression  Code = 2005
	SynExpectSemicolon   Code = 2006
	SynUnclosedDelimiter Code = 2007
	SynIllegalMember     Code = 2008

	// Type resolution / lattice (3000s)
	TypeInfo               Code = 3000
	TypeUnknownName        Code = 3001
	TypeBadPointer          Code = 3002
	TypeBadWordSize         Code = 3003
	TypeUnsupportedGeneric  Code = 3004

	// Conversion engine (3100s)
	ConvIllegalImplicit Code = 3100
	ConvUnsupported     Code = 3101

	// Symbol initializer / body compiler (3200s)
	SymDuplicateSignature   Code = 3200
	SymTypeParamsNotAllowed Code = 3201
	SymModifierNotAllowed   Code = 3202
	SymUnsupportedTopLevel  Code = 3203
	SymUnsupportedMember    Code = 3204

	// Body / expression compiler (3300s)
	BodyUnsupportedStmt      Code = 3300
	BodyReturnArityMismatch  Code = 3301
	BodyUnknownIdentifier    Code = 3302
	BodyUnsupportedExpr      Code = 3303
	BodyUnsupportedOperator  Code = 3304
	BodyUnsupportedLiteral   Code = 3305
	BodyUnsupportedProperty  Code = 3306

	// I/O (4000s)
	IOLoadFileError Code = 4000

	// Observability (6000s)
	ObsTimings Code = 6000
)

var codeDescription = map[Code]string{
	UnknownCode:             "unknown error",
	LexInfo:                 "lexical information",
	LexUnknownChar:          "unknown character",
	LexUnterminated:         "unterminated literal",
	LexBadNumber:            "malformed numeric literal",
	SynInfo:                 "syntax information",
	SynUnexpectedToken:      "unexpected token",
	SynUnexpectedTopLevel:   "unsupported top-level declaration",
	SynExpectIdentifier:     "expected identifier",
	SynExpectType:           "expected type",
	SynExpectExpression:     "expected expression",
	SynExpectSemicolon:      "expected ';'",
	SynUnclosedDelimiter:    "unclosed delimiter",
	SynIllegalMember:        "only method declarations are allowed in a class body",
	TypeInfo:                "type resolution information",
	TypeUnknownName:         "unknown primitive type name",
	TypeBadPointer:          "Ptr<T> requires exactly one type-reference argument",
	TypeBadWordSize:         "unsupported pointer word size",
	TypeUnsupportedGeneric:  "the only recognized generic type is Ptr<T>",
	ConvIllegalImplicit:     "illegal implicit conversion",
	ConvUnsupported:         "unsupported conversion",
	SymDuplicateSignature:   "duplicate function signature (informational)",
	SymTypeParamsNotAllowed: "type parameters are not supported",
	SymModifierNotAllowed:   "modifier not allowed here",
	SymUnsupportedTopLevel:  "unsupported top-level declaration kind",
	SymUnsupportedMember:    "unsupported class member kind",
	BodyUnsupportedStmt:     "unsupported statement kind",
	BodyReturnArityMismatch: "return statement does not match function return type",
	BodyUnknownIdentifier:   "unknown identifier",
	BodyUnsupportedExpr:     "unsupported expression kind",
	BodyUnsupportedOperator: "unsupported operator",
	BodyUnsupportedLiteral:  "unsupported literal form",
	BodyUnsupportedProperty: "unsupported property access",
	IOLoadFileError:         "failed to load source file",
	ObsTimings:              "pipeline timings",
}

// ID renders a stable short code string, e.g. "TYPE3001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 3100:
		return fmt.Sprintf("TYPE%04d", ic)
	case ic >= 3100 && ic < 3200:
		return fmt.Sprintf("CONV%04d", ic)
	case ic >= 3200 && ic < 3300:
		return fmt.Sprintf("SYM%04d", ic)
	case ic >= 3300 && ic < 3400:
		return fmt.Sprintf("BODY%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

// Title returns a short human-readable description.
func (c Code) Title() string {
	if desc, ok := codeDescription[c]; ok {
		return desc
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

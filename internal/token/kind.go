package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier or keyword, including raw identifiers.
	Ident
	// Lifetime represents a lifetime or loop label such as 'a.
	Lifetime

	// StringLit represents a "..." literal.
	StringLit
	// RawStringLit represents r"..." and r#"..."# literals.
	RawStringLit
	// ByteStringLit represents b"..." and br"..." literals.
	ByteStringLit
	// CStringLit represents c"..." and cr"..." literals.
	CStringLit
	// CharLit represents a 'x' literal.
	CharLit
	// ByteLit represents a b'x' literal.
	ByteLit
	// IntLit represents an integer literal with optional suffix.
	IntLit
	// FloatLit represents a float literal with optional suffix.
	FloatLit

	ColonColon // ::
	Colon      // :
	Bang       // !
	BangEq     // !=
	Pound      // #
	Dollar     // $
	Comma      // ,
	Semicolon  // ;
	LParen     // (
	RParen     // )
	LBrace     // {
	RBrace     // }
	LBracket   // [
	RBracket   // ]
	// Punct represents every other operator; Text holds the exact spelling.
	Punct
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	Ident:         "Ident",
	Lifetime:      "Lifetime",
	StringLit:     "StringLit",
	RawStringLit:  "RawStringLit",
	ByteStringLit: "ByteStringLit",
	CStringLit:    "CStringLit",
	CharLit:       "CharLit",
	ByteLit:       "ByteLit",
	IntLit:        "IntLit",
	FloatLit:      "FloatLit",
	ColonColon:    "ColonColon",
	Colon:         "Colon",
	Bang:          "Bang",
	BangEq:        "BangEq",
	Pound:         "Pound",
	Dollar:        "Dollar",
	Comma:         "Comma",
	Semicolon:     "Semicolon",
	LParen:        "LParen",
	RParen:        "RParen",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	Punct:         "Punct",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

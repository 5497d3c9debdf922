package token

import (
	"localecheck/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is any literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case StringLit, RawStringLit, ByteStringLit, CStringLit, CharLit, ByteLit, IntLit, FloatLit:
		return true
	default:
		return false
	}
}

// IsStringLit reports whether the token is a plain or raw string literal,
// the only literal shapes that denote a Rust &str.
func (t Token) IsStringLit() bool {
	return t.Kind == StringLit || t.Kind == RawStringLit
}

// IsOpenDelim reports whether the token opens a delimited group.
func (t Token) IsOpenDelim() bool {
	return t.Kind == LParen || t.Kind == LBrace || t.Kind == LBracket
}

// IsCloseDelim reports whether the token closes a delimited group.
func (t Token) IsCloseDelim() bool {
	return t.Kind == RParen || t.Kind == RBrace || t.Kind == RBracket
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsIdentNamed reports whether the token is the identifier name.
func (t Token) IsIdentNamed(name string) bool { return t.Kind == Ident && t.Text == name }

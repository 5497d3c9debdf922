package lexer

import (
	"localecheck/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
// Отдельные Kind нужны только для разделителей, `::` и `!`; остальное - Punct.
var (
	punct3 = []string{"..=", "...", "<<=", ">>="}
	punct2 = []string{
		"->", "=>", "==", "<=", ">=", "&&", "||", "+=", "-=", "*=", "/=",
		"%=", "^=", "&=", "|=", "<<", ">>", "..",
	}
)

const punct1 = "+-*/%^&|=<>@.?~"

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	switch {
	case lx.tryBytes("::"):
		return lx.emit(token.ColonColon, start)
	case lx.tryBytes("!="):
		return lx.emit(token.BangEq, start)
	}
	for _, p := range punct3 {
		if lx.tryBytes(p) {
			return lx.emit(token.Punct, start)
		}
	}
	for _, p := range punct2 {
		if lx.tryBytes(p) {
			return lx.emit(token.Punct, start)
		}
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '(':
		return lx.emit(token.LParen, start)
	case ')':
		return lx.emit(token.RParen, start)
	case '{':
		return lx.emit(token.LBrace, start)
	case '}':
		return lx.emit(token.RBrace, start)
	case '[':
		return lx.emit(token.LBracket, start)
	case ']':
		return lx.emit(token.RBracket, start)
	case ',':
		return lx.emit(token.Comma, start)
	case ';':
		return lx.emit(token.Semicolon, start)
	case ':':
		return lx.emit(token.Colon, start)
	case '!':
		return lx.emit(token.Bang, start)
	case '#':
		return lx.emit(token.Pound, start)
	case '$':
		return lx.emit(token.Dollar, start)
	}
	for i := range len(punct1) {
		if punct1[i] == ch {
			return lx.emit(token.Punct, start)
		}
	}

	lx.report(UnknownChar, lx.cursor.SpanFrom(start), "unknown start of token")
	return lx.emit(token.Invalid, start)
}

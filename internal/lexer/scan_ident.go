package lexer

import (
	"localecheck/internal/token"
)

// scanIdent сканирует идентификатор. Ключевые слова Rust остаются Ident:
// для поиска макросов различать их не нужно.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		return lx.emit(token.Invalid, start)
	}
	if r < utf8RuneSelf {
		lx.cursor.Bump()
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	} else {
		if !isIdentStartRune(r) {
			lx.bumpRune()
			sp := lx.cursor.SpanFrom(start)
			lx.report(UnknownChar, sp, "unknown start of token")
			return lx.emit(token.Invalid, start)
		}
		lx.bumpRune()
	}
	lx.eatIdentContinue()
	return lx.emit(token.Ident, start)
}

// scanRawIdent handles r#ident; Text keeps the r# prefix.
func (lx *Lexer) scanRawIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // r
	lx.cursor.Bump() // #
	lx.eatIdentContinue()
	return lx.emit(token.Ident, start)
}

func (lx *Lexer) eatIdentContinue() {
	for {
		r, sz := lx.peekRune()
		if sz == 0 {
			return
		}
		if r < utf8RuneSelf {
			if !isIdentContinueByte(byte(r)) {
				return
			}
			lx.cursor.Bump()
			continue
		}
		if !isIdentContinueRune(r) {
			return
		}
		lx.bumpRune()
	}
}

package lexer

import (
	"localecheck/internal/token"
)

// scanNumber: 123, 1_000u32, 0xFF, 0o17, 0b1010, 1.5, 1e10, 2.5E-3f64, "1."
// Суффикс типа съедается как продолжение идентификатора.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'o', 'b':
			lx.cursor.Bump()
			lx.cursor.Bump()
			digits := 0
			for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				if lx.cursor.Peek() != '_' {
					digits++
				}
				lx.cursor.Bump()
			}
			if digits == 0 {
				lx.report(BadNumber, lx.cursor.SpanFrom(start), "missing digits after integer base prefix")
				return lx.emit(token.Invalid, start)
			}
			lx.eatIdentContinue()
			return lx.emit(kind, start)
		}
	}

	lx.eatDecDigits()

	// дробная часть: "1.5", "1." но не "1..2" и не "1.foo()"
	if lx.cursor.Peek() == '.' {
		next := lx.cursor.PeekAt(1)
		switch {
		case isDec(next):
			lx.cursor.Bump()
			lx.eatDecDigits()
			kind = token.FloatLit
		case next != '.' && !isIdentStartByte(next) && next < utf8RuneSelf:
			lx.cursor.Bump()
			return lx.emit(token.FloatLit, start)
		}
	}

	// экспонента
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		i := uint32(1)
		if s := lx.cursor.PeekAt(1); s == '+' || s == '-' {
			i = 2
		}
		if isDec(lx.cursor.PeekAt(i)) {
			for range i {
				lx.cursor.Bump()
			}
			lx.eatDecDigits()
			kind = token.FloatLit
		}
	}

	if b := lx.cursor.Peek(); b == 'f' {
		kind = token.FloatLit
	}
	lx.eatIdentContinue()
	return lx.emit(kind, start)
}

func (lx *Lexer) eatDecDigits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

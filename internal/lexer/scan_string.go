package lexer

import (
	"localecheck/internal/token"
)

// scanString сканирует "...", b"..." и c"...". prefix - длина префикса (0 или 1).
// Escape-последовательности не валидируем: достаточно не спутать \" с концом строки.
// Перевод строки внутри литерала в Rust допустим.
func (lx *Lexer) scanString(prefix uint32, kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	for range prefix {
		lx.cursor.Bump()
	}
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			return lx.emit(kind, start)
		case '\\':
			lx.cursor.Bump()
			lx.bumpRune()
		default:
			lx.bumpRune()
		}
	}
	lx.report(UnterminatedString, lx.cursor.SpanFrom(start), "unterminated double quote string")
	return lx.emit(token.Invalid, start)
}

// scanRawString сканирует r"...", r#"..."#, br##"..."## и cr"...".
func (lx *Lexer) scanRawString(prefix uint32, kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	for range prefix {
		lx.cursor.Bump()
	}
	hashes := 0
	for lx.cursor.Eat('#') {
		hashes++
	}
	if !lx.cursor.Eat('"') {
		lx.report(BadRawString, lx.cursor.SpanFrom(start), "expected '\"' in raw string")
		return lx.emit(token.Invalid, start)
	}
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() != '"' {
			continue
		}
		closing := 0
		for closing < hashes && lx.cursor.Peek() == '#' {
			lx.cursor.Bump()
			closing++
		}
		if closing == hashes {
			return lx.emit(kind, start)
		}
	}
	lx.report(UnterminatedString, lx.cursor.SpanFrom(start), "unterminated raw string")
	return lx.emit(token.Invalid, start)
}

// scanCharOrLifetime различает 'x', '\n', '\u{1F600}' и 'a / 'label.
func (lx *Lexer) scanCharOrLifetime() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '

	if lx.cursor.Peek() == '\\' {
		return lx.finishEscapedChar(start, token.CharLit)
	}

	r, sz := lx.peekRune()
	if sz == 0 || r == '\n' {
		lx.report(UnterminatedChar, lx.cursor.SpanFrom(start), "unterminated character literal")
		return lx.emit(token.Invalid, start)
	}
	lx.bumpRune()
	if lx.cursor.Eat('\'') {
		return lx.emit(token.CharLit, start)
	}

	isStart := isIdentStartRune(r)
	if r < utf8RuneSelf {
		isStart = isIdentStartByte(byte(r))
	}
	if !isStart {
		lx.report(UnterminatedChar, lx.cursor.SpanFrom(start), "unterminated character literal")
		return lx.emit(token.Invalid, start)
	}
	lx.eatIdentContinue()
	return lx.emit(token.Lifetime, start)
}

// scanByteChar сканирует b'x' и b'\n'.
func (lx *Lexer) scanByteChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // b
	lx.cursor.Bump() // '
	if lx.cursor.Peek() == '\\' {
		return lx.finishEscapedChar(start, token.ByteLit)
	}
	lx.bumpRune()
	if !lx.cursor.Eat('\'') {
		lx.report(UnterminatedChar, lx.cursor.SpanFrom(start), "unterminated byte literal")
		return lx.emit(token.Invalid, start)
	}
	return lx.emit(token.ByteLit, start)
}

// finishEscapedChar: курсор стоит на '\'. Escape съедаем до закрывающей кавычки
// в пределах строки.
func (lx *Lexer) finishEscapedChar(start Mark, kind token.Kind) token.Token {
	lx.cursor.Bump() // '\'
	lx.bumpRune()    // экранированный символ, в том числе '\''
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '\'':
			lx.cursor.Bump()
			return lx.emit(kind, start)
		case '\n':
			lx.report(UnterminatedChar, lx.cursor.SpanFrom(start), "unterminated character literal")
			return lx.emit(token.Invalid, start)
		}
		lx.bumpRune()
	}
	lx.report(UnterminatedChar, lx.cursor.SpanFrom(start), "unterminated character literal")
	return lx.emit(token.Invalid, start)
}

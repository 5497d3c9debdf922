package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
)

const utf8RuneSelf = 0x80

// ===== Работа с рунами поверх Cursor =====

// peekRune читает текущую позицию как руну
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	return utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
}

// bumpRune перемещает курсор на размер текущей руны
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}

// ===== Классификаторы =====

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

// Rust identifiers follow XID_Start/XID_Continue; unicode.IsLetter/IsDigit
// is close enough for locating macro invocations.
func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinueRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// rawStringAhead reports whether the bytes after a prefix of length skip
// look like the opening of a raw string: zero or more '#' then '"'.
func (lx *Lexer) rawStringAhead(skip uint32) bool {
	i := skip
	for lx.cursor.PeekAt(i) == '#' {
		i++
	}
	return lx.cursor.PeekAt(i) == '"'
}

// ===== Матчеры последовательностей операторов (жадность) =====

func (lx *Lexer) tryBytes(seq string) bool {
	for i := range len(seq) {
		if lx.cursor.PeekAt(uint32(i)) != seq[i] {
			return false
		}
	}
	for range len(seq) {
		lx.cursor.Bump()
	}
	return true
}

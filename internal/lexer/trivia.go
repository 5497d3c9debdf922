package lexer

import (
	"localecheck/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
// - ' ', '\t', '\r' и прочие пробелы коалесцируются в один TriviaSpace
// - последовательные '\n' коалесцируются в один TriviaNewline
// - //... до \n -> TriviaLineComment, ///... и //!... -> TriviaDocLine
// - /* ... */ -> TriviaBlockComment (с вложенностью), /** */ и /*! */ -> TriviaDocBlock
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if isSpace(b) {
			for isSpace(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.holdTrivia(token.TriviaSpace, start)
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.holdTrivia(token.TriviaNewline, start)
			continue
		}

		if b == '/' && lx.scanCommentIntoHold() {
			continue
		}

		break
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\v' || b == '\f'
}

func (lx *Lexer) holdTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '/' {
		return false
	}
	switch b1 {
	case '/':
		kind := token.TriviaLineComment
		// "///x" и "//!x" - doc; "////" - обычный комментарий
		if c := lx.cursor.PeekAt(2); (c == '/' && lx.cursor.PeekAt(3) != '/') || c == '!' {
			kind = token.TriviaDocLine
		}
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.holdTrivia(kind, start)
		return true

	case '*':
		kind := token.TriviaBlockComment
		// "/**x" и "/*!" - doc; "/**/" и "/***" - обычный
		if c := lx.cursor.PeekAt(2); (c == '*' && lx.cursor.PeekAt(3) != '*' && lx.cursor.PeekAt(3) != '/') || c == '!' {
			kind = token.TriviaDocBlock
		}
		lx.cursor.Bump()
		lx.cursor.Bump()
		depth := 1
		for !lx.cursor.EOF() && depth > 0 {
			if c0, c1, ok := lx.cursor.Peek2(); ok {
				if c0 == '/' && c1 == '*' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth++
					continue
				}
				if c0 == '*' && c1 == '/' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth--
					continue
				}
			}
			lx.cursor.Bump()
		}
		if depth > 0 {
			lx.report(UnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
		}
		lx.holdTrivia(kind, start)
		return true
	}
	return false
}

// skipShebang превращает "#!..." в начале файла в trivia, если это не
// внутренний атрибут "#![...]".
func (lx *Lexer) skipShebang() {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '#' || b1 != '!' {
		return
	}
	// после "#!" пропускаем пробелы и комментарии: "#! [attr]" тоже атрибут
	i := uint32(2)
	for isSpace(lx.cursor.PeekAt(i)) || lx.cursor.PeekAt(i) == '\n' {
		i++
	}
	if lx.cursor.PeekAt(i) == '[' {
		return
	}
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	lx.holdTrivia(token.TriviaShebang, start)
}

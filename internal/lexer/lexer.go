package lexer

import (
	"localecheck/internal/source"
	"localecheck/internal/token"
)

// Lexer splits a Rust source file into tokens with leading trivia attached.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	lx := &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
	lx.skipShebang()
	return lx
}

// Next возвращает следующий значимый токен с уже собранным Leading.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		tok := token.Token{Kind: token.EOF, Span: lx.emptySpan(), Leading: lx.hold}
		lx.hold = nil
		return tok
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == 'r' && lx.rawStringAhead(1):
		tok = lx.scanRawString(1, token.RawStringLit)
	case ch == 'b' && lx.cursor.PeekAt(1) == 'r' && lx.rawStringAhead(2):
		tok = lx.scanRawString(2, token.ByteStringLit)
	case ch == 'c' && lx.cursor.PeekAt(1) == 'r' && lx.rawStringAhead(2):
		tok = lx.scanRawString(2, token.CStringLit)
	case ch == 'b' && lx.cursor.PeekAt(1) == '"':
		tok = lx.scanString(1, token.ByteStringLit)
	case ch == 'c' && lx.cursor.PeekAt(1) == '"':
		tok = lx.scanString(1, token.CStringLit)
	case ch == 'b' && lx.cursor.PeekAt(1) == '\'':
		tok = lx.scanByteChar()
	case ch == 'r' && lx.cursor.PeekAt(1) == '#' && isIdentStartByte(lx.cursor.PeekAt(2)):
		tok = lx.scanRawIdent()
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		tok = lx.scanIdent()
	case isDec(ch):
		tok = lx.scanNumber()
	case ch == '"':
		tok = lx.scanString(0, token.StringLit)
	case ch == '\'':
		tok = lx.scanCharOrLifetime()
	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// All lexes the remainder of the file; the last token is always EOF.
func (lx *Lexer) All() []token.Token {
	tokens := make([]token.Token, 0, len(lx.file.Content)/4+1)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

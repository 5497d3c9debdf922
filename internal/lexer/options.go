package lexer

import (
	"localecheck/internal/source"
)

// Code classifies a lexical error.
type Code string

const (
	UnterminatedString       Code = "unterminated-string"
	UnterminatedChar         Code = "unterminated-char"
	UnterminatedBlockComment Code = "unterminated-block-comment"
	BadRawString             Code = "bad-raw-string"
	BadNumber                Code = "bad-number"
	UnknownChar              Code = "unknown-char"
)

// Reporter - тонкий интерфейс, чтобы не тянуть потребителя сюда.
// Лексер только вызывает его; что делать с ошибкой, решает внешний слой.
type Reporter interface {
	Report(code Code, span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // может быть nil - тогда ошибки игнорируем (но продолжаем лексить)
}

func (lx *Lexer) report(code Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sp, msg)
	}
}

package syntax

import (
	"errors"
	"fmt"

	"localecheck/internal/source"
)

var (
	// ErrLexical wraps every lexical error reported for a file.
	ErrLexical = errors.New("lexical error")
	// ErrUnbalanced wraps unclosed, unexpected or mismatched delimiters.
	ErrUnbalanced = errors.New("unbalanced delimiter")
)

// Error is a fatal syntax problem at a source position.
type Error struct {
	Path string
	Pos  source.Position
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	// колонка в сообщении 1-based, как у rustc
	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Pos.Line, e.Pos.Column+1, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(f *source.File, off uint32, kind error, msg string) *Error {
	return &Error{Path: f.Path, Pos: f.Position(off), Msg: msg, Err: kind}
}

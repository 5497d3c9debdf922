// Package keys finds translation macro invocations in Rust sources and
// records the locale key each one uses.
package keys

import (
	"errors"
	"fmt"
	"strings"

	"localecheck/internal/source"
	"localecheck/internal/syntax"
	"localecheck/internal/token"
)

const (
	// FrameworkAlias is the crate name under which rust-i18n exports its macro.
	FrameworkAlias = "rust_i18n"
	// MacroName is the translation macro: `t!` or `rust_i18n::t!`.
	MacroName = "t"
)

var (
	// ErrMissingKey means a translation macro was invoked without arguments.
	ErrMissingKey = errors.New("t!() needs at least 1 argument")
	// ErrKeyNotLiteral means the first argument is not a string literal.
	ErrKeyNotLiteral = errors.New("the first argument to t!() should be a string literal")
)

// Usage is one translation macro invocation.
type Usage struct {
	// Key is the literal text without its quotes; escapes are kept verbatim.
	Key  string
	File string
	// Line is 1-based.
	Line uint32
	// Column is 0-based, counted in characters.
	Column uint32
}

func (u Usage) String() string {
	return fmt.Sprintf("%s:%d:%d: %q", u.File, u.Line, u.Column, u.Key)
}

// MisuseError reports a translation macro whose key cannot be extracted.
type MisuseError struct {
	Path string
	Pos  source.Position
	Err  error
}

func (e *MisuseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %v", e.Path, e.Pos.Line, e.Pos.Column+1, e.Err)
}

func (e *MisuseError) Unwrap() error { return e.Err }

// IsTranslationMacro reports whether p names the translation macro: exactly
// `t`, or exactly `rust_i18n::t`. The leading-root form `::rust_i18n::t` and
// every longer path are not recognised.
func IsTranslationMacro(p syntax.Path) bool {
	if p.LeadingColon {
		return false
	}
	switch len(p.Segments) {
	case 1:
		return p.Segments[0].Text == MacroName
	case 2:
		return p.Segments[0].Text == FrameworkAlias && p.Segments[1].Text == MacroName
	default:
		return false
	}
}

// Extract parses a source file and returns its usages in document order.
func Extract(f *source.File) ([]Usage, error) {
	parsed, err := syntax.Parse(f)
	if err != nil {
		return nil, err
	}
	return FromFile(parsed)
}

// FromFile collects usages from an already parsed file.
func FromFile(f *syntax.File) ([]Usage, error) {
	var (
		usages []Usage
		err    error
	)
	syntax.Inspect(f, func(call *syntax.MacroCall) bool {
		if err != nil {
			return false
		}
		if !IsTranslationMacro(call.Path) {
			return true
		}
		var u Usage
		u, err = usageOf(f.Source, call)
		if err != nil {
			return false
		}
		usages = append(usages, u)
		return true
	})
	if err != nil {
		return nil, err
	}
	return usages, nil
}

func usageOf(f *source.File, call *syntax.MacroCall) (Usage, error) {
	pos := f.Position(call.Span.Start)
	first, ok := call.FirstArg()
	if !ok {
		return Usage{}, &MisuseError{Path: f.Path, Pos: pos, Err: ErrMissingKey}
	}
	if !first.IsLeaf() || !first.Token.IsStringLit() {
		return Usage{}, &MisuseError{Path: f.Path, Pos: pos, Err: ErrKeyNotLiteral}
	}
	return Usage{
		Key:    LiteralText(first.Token),
		File:   f.Path,
		Line:   pos.Line,
		Column: pos.Column,
	}, nil
}

// LiteralText strips the quotes (and raw string fences) from a string literal.
func LiteralText(tok token.Token) string {
	text := tok.Text
	if tok.Kind == token.RawStringLit {
		text = strings.TrimPrefix(text, "r")
		hashes := len(text) - len(strings.TrimLeft(text, "#"))
		text = text[hashes : len(text)-hashes]
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return text[1 : len(text)-1]
	}
	return text
}

package fuzztests

import (
	"testing"

	"localecheck/internal/lexer"
	"localecheck/internal/source"
	"localecheck/internal/token"
)

type countingReporter struct{ n int }

func (r *countingReporter) Report(lexer.Code, source.Span, string) { r.n++ }

func FuzzLexerTokens(f *testing.F) {
	addRustSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.rs", input))
		lx := lexer.New(file, lexer.Options{Reporter: &countingReporter{}})

		var prevEnd uint32
		for {
			tok := lx.Next()
			if tok.Span.Start < prevEnd || tok.Span.End < tok.Span.Start {
				t.Fatalf("token %v at %v goes backwards (previous end %d)", tok.Kind, tok.Span, prevEnd)
			}
			prevEnd = tok.Span.End
			if tok.Kind == token.EOF {
				break
			}
		}
	})
}

package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"localecheck/internal/source"
	"localecheck/internal/token"
)

type TokenOutput struct {
	Kind    string   `json:"kind"`
	Text    string   `json:"text,omitempty"`
	Line    uint32   `json:"line"`
	Column  uint32   `json:"column"`
	Start   uint32   `json:"start"`
	End     uint32   `json:"end"`
	Leading []string `json:"leading,omitempty"`
}

func tokenOutput(tok token.Token, file *source.File) TokenOutput {
	pos := file.Position(tok.Span.Start)
	out := TokenOutput{
		Kind:   tok.Kind.String(),
		Text:   tok.Text,
		Line:   pos.Line,
		Column: pos.Column,
		Start:  tok.Span.Start,
		End:    tok.Span.End,
	}
	for _, trivia := range tok.Leading {
		out.Leading = append(out.Leading, trivia.Kind.String())
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, file *source.File) error {
	for i, tok := range tokens {
		t := tokenOutput(tok, file)
		if _, err := fmt.Fprintf(w, "%3d: %-14s", i+1, t.Kind); err != nil {
			return err
		}
		if t.Text != "" {
			fmt.Fprintf(w, " %q", t.Text)
		}
		// колонка печатается с единицы, как в сообщениях об ошибках
		fmt.Fprintf(w, " at %d:%d", t.Line, t.Column+1)
		if len(t.Leading) > 0 {
			fmt.Fprintf(w, " (leading: %s)", strings.Join(t.Leading, ", "))
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, file *source.File) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, tokenOutput(tok, file))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

package syntax

import (
	"fmt"

	"localecheck/internal/lexer"
	"localecheck/internal/source"
	"localecheck/internal/token"
)

// firstErrorReporter keeps only the first lexical error.
type firstErrorReporter struct {
	file *source.File
	err  *Error
}

func (r *firstErrorReporter) Report(code lexer.Code, span source.Span, msg string) {
	if r.err != nil {
		return
	}
	r.err = newError(r.file, span.Start, ErrLexical, fmt.Sprintf("%s (%s)", msg, code))
}

// Parse lexes f and builds its token trees.
func Parse(f *source.File) (*File, error) {
	rep := &firstErrorReporter{file: f}
	tokens := lexer.New(f, lexer.Options{Reporter: rep}).All()
	if rep.err != nil {
		return nil, rep.err
	}
	return build(f, tokens)
}

type frame struct {
	group *Group
	trees []Tree
}

func build(f *source.File, tokens []token.Token) (*File, error) {
	// стек открытых групп; нулевой кадр - верхний уровень файла
	stack := []frame{{}}
	for _, tok := range tokens {
		switch {
		case tok.Kind == token.EOF:
			if len(stack) > 1 {
				open := stack[len(stack)-1].group.Open
				return nil, newError(f, open.Span.Start, ErrUnbalanced,
					fmt.Sprintf("unclosed delimiter %q", open.Text))
			}
			return &File{Source: f, Trees: stack[0].trees}, nil

		case tok.IsOpenDelim():
			stack = append(stack, frame{group: &Group{Delim: delimOf(tok.Kind), Open: tok}})

		case tok.IsCloseDelim():
			if len(stack) == 1 {
				return nil, newError(f, tok.Span.Start, ErrUnbalanced,
					fmt.Sprintf("unexpected closing delimiter %q", tok.Text))
			}
			top := stack[len(stack)-1]
			if top.group.Delim != delimOf(tok.Kind) {
				return nil, newError(f, tok.Span.Start, ErrUnbalanced,
					fmt.Sprintf("mismatched closing delimiter %q for %q", tok.Text, top.group.Open.Text))
			}
			top.group.Close = tok
			top.group.Trees = top.trees
			stack = stack[:len(stack)-1]
			parent := &stack[len(stack)-1]
			parent.trees = append(parent.trees, Tree{Group: top.group})

		default:
			cur := &stack[len(stack)-1]
			cur.trees = append(cur.trees, Tree{Token: tok})
		}
	}
	// лексер всегда завершает поток EOF
	return &File{Source: f, Trees: stack[0].trees}, nil
}

func delimOf(k token.Kind) Delim {
	switch k {
	case token.LBracket, token.RBracket:
		return Bracket
	case token.LBrace, token.RBrace:
		return Brace
	default:
		return Paren
	}
}

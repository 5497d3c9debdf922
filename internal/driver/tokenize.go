package driver

import (
	"localecheck/internal/lexer"
	"localecheck/internal/source"
	"localecheck/internal/token"
)

// LexIssue is a lexical error found while tokenizing.
type LexIssue struct {
	Code lexer.Code
	Span source.Span
	Pos  source.Position
	End  source.Position
	// Line is the source line the issue starts on.
	Line string
	Msg  string
}

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Issues  []LexIssue
}

type issueCollector struct {
	file   *source.File
	issues []LexIssue
}

func (c *issueCollector) Report(code lexer.Code, span source.Span, msg string) {
	start, end := c.file.Range(span)
	c.issues = append(c.issues, LexIssue{
		Code: code,
		Span: span,
		Pos:  start,
		End:  end,
		Line: c.file.Line(start.Line),
		Msg:  msg,
	})
}

// Tokenize lexes one file, keeping lexical errors as issues instead of
// failing, so the dump shows where the lexer got confused.
func Tokenize(path string) (*TokenizeResult, error) {
	// Создаём FileSet и загружаем файл
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	issues := &issueCollector{file: file}
	lx := lexer.New(file, lexer.Options{Reporter: issues})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lx.All(),
		Issues:  issues.issues,
	}, nil
}

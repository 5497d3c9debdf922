package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"localecheck/internal/diagfmt"
	"localecheck/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.rs",
		Short: "Tokenize a Rust source file",
		Long:  `Tokenize dumps the token stream the key extractor sees for a Rust file`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	result, err := driver.Tokenize(filePath)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Лексические ошибки идут в stderr, токены всё равно печатаем
	for _, issue := range result.Issues {
		printLexIssue(cmd.ErrOrStderr(), result.File.Path, issue)
	}

	if format == "json" {
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens, result.File)
	}
	return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.File)
}

// printLexIssue prints the issue with its source line and a caret marker
// under the offending text, clipped to the first line.
func printLexIssue(w io.Writer, path string, issue driver.LexIssue) {
	fmt.Fprintf(w, "%s:%d:%d: %s (%s)\n", path, issue.Pos.Line, issue.Pos.Column+1, issue.Msg, issue.Code)
	if issue.Line == "" {
		return
	}
	width := utf8.RuneCountInString(issue.Line) - int(issue.Pos.Column)
	if issue.End.Line == issue.Pos.Line {
		width = int(issue.End.Column) - int(issue.Pos.Column)
	}
	width = max(width, 1)
	fmt.Fprintf(w, "    %s\n    %s%s\n", issue.Line, strings.Repeat(" ", int(issue.Pos.Column)), strings.Repeat("^", width))
}

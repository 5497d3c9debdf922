// Package token defines lexical token kinds and trivia for Rust source files.
// Invariants:
//   - Token.Text is the exact source text of the token (no unescaping).
//   - Token.Span matches Text exactly (Start..End).
//   - Comments, doc comments, whitespace and the shebang line are Trivia and never
//     appear in the main token stream.
//   - `::` is a single ColonColon token; `!` is Bang unless it starts `!=`.
//   - Keywords are identifiers. Raw identifiers keep their `r#` prefix in Text.
package token

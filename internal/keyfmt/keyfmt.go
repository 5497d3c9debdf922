// Package keyfmt splits locale keys into literal text and `{placeholder}`
// segments and derives the English text a key is expected to translate to.
package keyfmt

import "strings"

// SegmentKind tells whether a segment was enclosed in braces.
type SegmentKind uint8

const (
	WithoutBrace SegmentKind = iota
	WithinBrace
)

func (k SegmentKind) String() string {
	if k == WithinBrace {
		return "WithinBrace"
	}
	return "WithoutBrace"
}

// Segment is one piece of a key.
type Segment struct {
	Kind SegmentKind
	Text string
}

func (s Segment) String() string {
	return s.Kind.String() + "(" + s.Text + ")"
}

// Tokenize splits key on brace pairs. A `{` is closed by the first `}` after
// it, so braces never nest. A `{` without a later `}` turns the whole rest of
// the key, including text before that brace, into one literal segment.
// Inside segments are emitted even when empty; empty literal text between
// two groups is dropped.
func Tokenize(key string) []Segment {
	var out []Segment
	rest := key
	for rest != "" {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			out = append(out, Segment{Kind: WithoutBrace, Text: rest})
			break
		}
		closing := strings.IndexByte(rest[open:], '}')
		if closing < 0 {
			out = append(out, Segment{Kind: WithoutBrace, Text: rest})
			break
		}
		closing += open
		if open > 0 {
			out = append(out, Segment{Kind: WithoutBrace, Text: rest[:open]})
		}
		out = append(out, Segment{Kind: WithinBrace, Text: rest[open+1 : closing]})
		rest = rest[closing+1:]
	}
	return out
}

// Render joins segments back, wrapping brace segments as `%{name}`.
func Render(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		if s.Kind == WithinBrace {
			b.WriteString("%{")
			b.WriteString(s.Text)
			b.WriteByte('}')
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}

// ExpectedEnglish is the English text a key should translate to:
// "Restarting {app}" expects "Restarting %{app}".
func ExpectedEnglish(key string) string {
	return Render(Tokenize(key))
}

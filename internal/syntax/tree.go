package syntax

import (
	"localecheck/internal/source"
	"localecheck/internal/token"
)

// Delim identifies the bracket pair of a Group.
type Delim uint8

const (
	Paren   Delim = iota // ( ... )
	Bracket              // [ ... ]
	Brace                // { ... }
)

func (d Delim) String() string {
	switch d {
	case Paren:
		return "()"
	case Bracket:
		return "[]"
	case Brace:
		return "{}"
	}
	return "??"
}

// Tree is either a single token (Group == nil) or a delimited group.
type Tree struct {
	Token token.Token
	Group *Group
}

// IsLeaf reports whether the tree is a single token.
func (t Tree) IsLeaf() bool { return t.Group == nil }

// Is reports whether the tree is a leaf token of the given kind.
func (t Tree) Is(kind token.Kind) bool { return t.Group == nil && t.Token.Kind == kind }

// Span covers the whole tree.
func (t Tree) Span() source.Span {
	if t.Group != nil {
		return t.Group.Span()
	}
	return t.Token.Span
}

// Group is a balanced delimited token sequence.
type Group struct {
	Delim Delim
	Open  token.Token
	Close token.Token
	Trees []Tree
}

// Span covers the group from its opening to its closing delimiter.
func (g *Group) Span() source.Span {
	return g.Open.Span.Cover(g.Close.Span)
}

// File is a parsed source file.
type File struct {
	Source *source.File
	Trees  []Tree
}

// Path is the name of an invoked macro, e.g. `rust_i18n::t`.
type Path struct {
	// LeadingColon is set for the fully-qualified `::crate::name` form.
	LeadingColon bool
	Segments     []token.Token
}

// Names returns the segment identifiers.
func (p Path) Names() []string {
	names := make([]string, len(p.Segments))
	for i, seg := range p.Segments {
		names[i] = seg.Text
	}
	return names
}

func (p Path) String() string {
	out := ""
	if p.LeadingColon {
		out = "::"
	}
	for i, seg := range p.Segments {
		if i > 0 {
			out += "::"
		}
		out += seg.Text
	}
	return out
}

// MacroCall is one `path!(args)` invocation.
type MacroCall struct {
	Path Path
	Bang token.Token
	Args *Group
	// Span runs from the first path token to the closing delimiter.
	Span source.Span
}

// FirstArg returns the first tree of the argument stream.
func (m *MacroCall) FirstArg() (Tree, bool) {
	if m.Args == nil || len(m.Args.Trees) == 0 {
		return Tree{}, false
	}
	return m.Args.Trees[0], true
}

// Package localedata decodes locale files (YAML, TOML, JSON) into a small
// format-neutral document tree that preserves mapping order.
package localedata

import "strconv"

// Kind classifies a Node.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindMapping
	KindSequence
)

var kindNames = [...]string{
	KindNull:     "null",
	KindString:   "string",
	KindInt:      "integer",
	KindFloat:    "float",
	KindBool:     "boolean",
	KindMapping:  "mapping",
	KindSequence: "sequence",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Node is one value of a decoded document.
type Node struct {
	Kind Kind
	// Text holds the scalar source text; for strings it is the decoded value.
	Text string
	// Int is valid when Kind == KindInt.
	Int int64
	// Entries are mapping pairs in document order. Duplicate keys are kept.
	Entries []Entry
	Items   []*Node
	// Line is 1-based; zero when the decoder does not track positions.
	Line int
}

// Entry is one key/value pair of a mapping.
type Entry struct {
	Key   *Node
	Value *Node
}

// IsScalar reports whether n is neither a mapping nor a sequence.
func (n *Node) IsScalar() bool {
	return n.Kind != KindMapping && n.Kind != KindSequence
}

// Lookup returns the value of the first entry whose key is the string name.
func (n *Node) Lookup(name string) (*Node, bool) {
	if n == nil || n.Kind != KindMapping {
		return nil, false
	}
	for _, e := range n.Entries {
		if e.Key.Kind == KindString && e.Key.Text == name {
			return e.Value, true
		}
	}
	return nil, false
}

func stringNode(s string, line int) *Node {
	return &Node{Kind: KindString, Text: s, Line: line}
}

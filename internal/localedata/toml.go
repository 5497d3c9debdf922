package localedata

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// DecodeTOML decodes a TOML document. Key order follows the order in which
// the decoder reports keys; keys it does not report are appended sorted.
func DecodeTOML(data []byte) (*Node, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		line := 0
		var pe toml.ParseError
		if ok := asParseError(err, &pe); ok {
			line = pe.Position.Line
		}
		return nil, &Error{Format: FormatTOML, Line: line, Err: err}
	}
	order := make(map[string][]string)
	seen := make(map[string]bool)
	for _, key := range md.Keys() {
		for i := range key {
			full := joinKey(key[:i+1])
			if seen[full] {
				continue
			}
			seen[full] = true
			parent := joinKey(key[:i])
			order[parent] = append(order[parent], key[i])
		}
	}
	return fromTOML(raw, nil, order), nil
}

func asParseError(err error, pe *toml.ParseError) bool {
	switch e := err.(type) {
	case toml.ParseError:
		*pe = e
		return true
	case *toml.ParseError:
		*pe = *e
		return true
	}
	return false
}

func joinKey(parts []string) string { return strings.Join(parts, "\x00") }

func fromTOML(v any, path []string, order map[string][]string) *Node {
	switch v := v.(type) {
	case nil:
		return &Node{Kind: KindNull}
	case string:
		return stringNode(v, 0)
	case bool:
		return &Node{Kind: KindBool, Text: fmt.Sprint(v)}
	case int64:
		return &Node{Kind: KindInt, Int: v, Text: fmt.Sprint(v)}
	case float64:
		return &Node{Kind: KindFloat, Text: fmt.Sprint(v)}
	case time.Time:
		return stringNode(v.Format(time.RFC3339Nano), 0)
	case map[string]any:
		return tomlTable(v, path, order)
	case []map[string]any:
		n := &Node{Kind: KindSequence, Items: make([]*Node, 0, len(v))}
		for _, t := range v {
			n.Items = append(n.Items, tomlTable(t, path, order))
		}
		return n
	case []any:
		n := &Node{Kind: KindSequence, Items: make([]*Node, 0, len(v))}
		for _, item := range v {
			n.Items = append(n.Items, fromTOML(item, path, order))
		}
		return n
	default:
		// toml.LocalDate, LocalTime, LocalDateTime
		return stringNode(fmt.Sprint(v), 0)
	}
}

func tomlTable(t map[string]any, path []string, order map[string][]string) *Node {
	n := &Node{Kind: KindMapping, Entries: make([]Entry, 0, len(t))}
	used := make(map[string]bool, len(t))
	add := func(k string) {
		used[k] = true
		child := append(append([]string(nil), path...), k)
		n.Entries = append(n.Entries, Entry{Key: stringNode(k, 0), Value: fromTOML(t[k], child, order)})
	}
	for _, k := range order[joinKey(path)] {
		if _, ok := t[k]; ok && !used[k] {
			add(k)
		}
	}
	if len(used) < len(t) {
		rest := make([]string, 0, len(t)-len(used))
		for k := range t {
			if !used[k] {
				rest = append(rest, k)
			}
		}
		sort.Strings(rest)
		for _, k := range rest {
			add(k)
		}
	}
	return n
}

package localedata

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// maxAliasDepth bounds alias expansion so that recursive anchors fail
// instead of looping.
const maxAliasDepth = 64

var errAliasDepth = errors.New("alias nesting too deep")

// DecodeYAML decodes the first YAML document in data. An empty document
// decodes to a null node.
func DecodeYAML(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &Error{Format: FormatYAML, Err: err}
	}
	if doc.Kind == 0 {
		return &Node{Kind: KindNull}, nil
	}
	root := &doc
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return &Node{Kind: KindNull, Line: doc.Line}, nil
		}
		root = doc.Content[0]
	}
	return fromYAML(root, 0)
}

func fromYAML(y *yaml.Node, depth int) (*Node, error) {
	switch y.Kind {
	case yaml.AliasNode:
		if depth >= maxAliasDepth || y.Alias == nil {
			return nil, &Error{Format: FormatYAML, Line: y.Line, Err: errAliasDepth}
		}
		return fromYAML(y.Alias, depth+1)
	case yaml.MappingNode:
		if len(y.Content)%2 != 0 {
			return nil, &Error{Format: FormatYAML, Line: y.Line, Err: errors.New("odd mapping content")}
		}
		n := &Node{Kind: KindMapping, Line: y.Line, Entries: make([]Entry, 0, len(y.Content)/2)}
		for i := 0; i < len(y.Content); i += 2 {
			k, err := fromYAML(y.Content[i], depth)
			if err != nil {
				return nil, err
			}
			v, err := fromYAML(y.Content[i+1], depth)
			if err != nil {
				return nil, err
			}
			n.Entries = append(n.Entries, Entry{Key: k, Value: v})
		}
		return n, nil
	case yaml.SequenceNode:
		n := &Node{Kind: KindSequence, Line: y.Line, Items: make([]*Node, 0, len(y.Content))}
		for _, c := range y.Content {
			item, err := fromYAML(c, depth)
			if err != nil {
				return nil, err
			}
			n.Items = append(n.Items, item)
		}
		return n, nil
	case yaml.ScalarNode:
		return yamlScalar(y)
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return &Node{Kind: KindNull, Line: y.Line}, nil
		}
		return fromYAML(y.Content[0], depth)
	default:
		return nil, &Error{Format: FormatYAML, Line: y.Line, Err: fmt.Errorf("unsupported node kind %d", y.Kind)}
	}
}

func yamlScalar(y *yaml.Node) (*Node, error) {
	n := &Node{Text: y.Value, Line: y.Line}
	switch y.ShortTag() {
	case "!!null":
		n.Kind = KindNull
	case "!!bool":
		n.Kind = KindBool
	case "!!float":
		n.Kind = KindFloat
	case "!!int":
		var v int64
		if err := y.Decode(&v); err != nil {
			// вне диапазона int64: оставляем как число без значения
			n.Kind = KindFloat
			return n, nil
		}
		n.Kind = KindInt
		n.Int = v
	default:
		// !!str, !!timestamp, !!binary и пользовательские теги читаются как строки
		n.Kind = KindString
	}
	return n, nil
}

package localedata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// DecodeJSON decodes a JSON document with a token stream so that object
// member order and duplicate members survive.
func DecodeJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	n, err := jsonValue(dec, data)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, jsonError(dec, data, errors.New("trailing data after document"))
	}
	return n, nil
}

func jsonValue(dec *json.Decoder, data []byte) (*Node, error) {
	line := lineAt(data, dec.InputOffset())
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, jsonError(dec, data, err)
	}
	switch tok := tok.(type) {
	case nil:
		return &Node{Kind: KindNull, Text: "null", Line: line}, nil
	case bool:
		return &Node{Kind: KindBool, Text: strconv.FormatBool(tok), Line: line}, nil
	case string:
		return stringNode(tok, line), nil
	case json.Number:
		if i, err := tok.Int64(); err == nil {
			return &Node{Kind: KindInt, Int: i, Text: tok.String(), Line: line}, nil
		}
		return &Node{Kind: KindFloat, Text: tok.String(), Line: line}, nil
	case json.Delim:
		switch tok {
		case '{':
			n := &Node{Kind: KindMapping, Line: line}
			for dec.More() {
				keyLine := lineAt(data, dec.InputOffset())
				kt, err := dec.Token()
				if err != nil {
					return nil, jsonError(dec, data, err)
				}
				key, ok := kt.(string)
				if !ok {
					return nil, jsonError(dec, data, fmt.Errorf("object key %v is not a string", kt))
				}
				val, err := jsonValue(dec, data)
				if err != nil {
					return nil, err
				}
				n.Entries = append(n.Entries, Entry{Key: stringNode(key, keyLine), Value: val})
			}
			if _, err := dec.Token(); err != nil {
				return nil, jsonError(dec, data, err)
			}
			return n, nil
		case '[':
			n := &Node{Kind: KindSequence, Line: line}
			for dec.More() {
				item, err := jsonValue(dec, data)
				if err != nil {
					return nil, err
				}
				n.Items = append(n.Items, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, jsonError(dec, data, err)
			}
			return n, nil
		}
	}
	return nil, jsonError(dec, data, fmt.Errorf("unexpected token %v", tok))
}

func jsonError(dec *json.Decoder, data []byte, err error) error {
	return &Error{Format: FormatJSON, Line: lineAt(data, dec.InputOffset()), Err: err}
}

// lineAt returns the 1-based line of the first non-space byte at or after off.
func lineAt(data []byte, off int64) int {
	i := int(off)
	if i > len(data) {
		i = len(data)
	}
	for i < len(data) && isJSONFiller(data[i]) {
		i++
	}
	return bytes.Count(data[:i], []byte{'\n'}) + 1
}

func isJSONFiller(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', ',', ':':
		return true
	}
	return false
}

package locale

import (
	"errors"
	"fmt"

	"localecheck/internal/localedata"
)

var (
	ErrNotMapping           = errors.New("locale file must be a mapping")
	ErrVersionMissing       = errors.New("missing " + VersionKey + " key")
	ErrVersionNotInteger    = errors.New(VersionKey + " must be an integer")
	ErrVersionMismatch      = errors.New("unsupported " + VersionKey)
	ErrKeyNotString         = errors.New("locale key must be a string")
	ErrDuplicateKey         = errors.New("duplicate locale key")
	ErrInvalidRecord        = errors.New("translations must be a mapping or empty")
	ErrTranslationNotString = errors.New("translation must be a string")
)

// ParseError wraps a fatal locale error with the key and line it concerns.
type ParseError struct {
	Key  string
	Line int
	Err  error
	// Detail is appended to the message when set.
	Detail string
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Key != "" {
		msg = fmt.Sprintf("key %q: %s", e.Key, msg)
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse builds a Table from a decoded locale document. The reserved version
// key is validated first; any malformed entry aborts with a *ParseError.
func Parse(root *localedata.Node) (*Table, error) {
	if root == nil || root.Kind != localedata.KindMapping {
		line := 0
		got := localedata.KindNull
		if root != nil {
			line, got = root.Line, root.Kind
		}
		return nil, &ParseError{Line: line, Err: ErrNotMapping, Detail: "got " + got.String()}
	}
	if err := checkVersion(root); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(root.Entries))
	seen := make(map[string]int, len(root.Entries))
	for _, e := range root.Entries {
		if e.Key.Kind != localedata.KindString {
			return nil, &ParseError{Line: e.Key.Line, Err: ErrKeyNotString, Detail: "got " + e.Key.Kind.String() + " " + e.Key.Text}
		}
		key := e.Key.Text
		if key == VersionKey {
			continue
		}
		if first, dup := seen[key]; dup {
			detail := ""
			if first > 0 {
				detail = fmt.Sprintf("first defined on line %d", first)
			}
			return nil, &ParseError{Key: key, Line: e.Key.Line, Err: ErrDuplicateKey, Detail: detail}
		}
		seen[key] = e.Key.Line
		rec, err := parseRecord(key, e.Value)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Key: key, Record: rec})
	}
	return NewTable(entries...), nil
}

func checkVersion(root *localedata.Node) error {
	var version *localedata.Node
	for _, e := range root.Entries {
		if e.Key.Kind == localedata.KindString && e.Key.Text == VersionKey {
			if version != nil {
				return &ParseError{Key: VersionKey, Line: e.Key.Line, Err: ErrDuplicateKey}
			}
			version = e.Value
		}
	}
	if version == nil {
		return &ParseError{Line: root.Line, Err: ErrVersionMissing}
	}
	if version.Kind != localedata.KindInt {
		return &ParseError{Line: version.Line, Err: ErrVersionNotInteger, Detail: "got " + version.Kind.String()}
	}
	if version.Int != SchemaVersion {
		return &ParseError{
			Line:   version.Line,
			Err:    ErrVersionMismatch,
			Detail: fmt.Sprintf("got %d, want %d", version.Int, SchemaVersion),
		}
	}
	return nil
}

func parseRecord(key string, v *localedata.Node) (Record, error) {
	if v == nil || v.Kind == localedata.KindNull {
		return Record{}, nil
	}
	if v.Kind != localedata.KindMapping {
		return Record{}, &ParseError{Key: key, Line: v.Line, Err: ErrInvalidRecord, Detail: "got " + v.Kind.String()}
	}
	var (
		en     *string
		seenEn bool
	)
	for _, e := range v.Entries {
		if e.Key.Kind != localedata.KindString || e.Key.Text != "en" {
			// другие языки пока не проверяются
			continue
		}
		if seenEn {
			return Record{}, &ParseError{Key: key, Line: e.Key.Line, Err: ErrDuplicateKey, Detail: "en defined twice"}
		}
		seenEn = true
		if e.Value.Kind != localedata.KindString {
			// null под en тоже ошибка, отсутствие задаётся только пустой записью
			return Record{}, &ParseError{Key: key, Line: e.Value.Line, Err: ErrTranslationNotString, Detail: "en is " + e.Value.Kind.String()}
		}
		text := e.Value.Text
		en = &text
	}
	return Record{en: en}, nil
}

// Package locale models the versioned locale table: an ordered mapping from
// locale key to the translations recorded for it.
package locale

import (
	"fmt"
	"iter"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const (
	// SchemaVersion is the only locale file layout this tool understands.
	SchemaVersion = 2
	// VersionKey is the reserved top-level key carrying the schema version.
	VersionKey = "_version"
)

// SupportedLanguages lists the languages the rules check, in report order.
var SupportedLanguages = []language.Tag{language.English}

// LanguageName renders a tag as "English(en)".
func LanguageName(tag language.Tag) string {
	name := display.English.Languages().Name(tag)
	if name == "" {
		return tag.String()
	}
	return fmt.Sprintf("%s(%s)", name, tag)
}

// Record holds the translations of one key. A nil pointer means the
// translation is absent, which is different from an empty translation.
type Record struct {
	en *string
}

// NewRecord builds a record; pass nil for an absent translation.
func NewRecord(en *string) Record {
	if en == nil {
		return Record{}
	}
	v := *en
	return Record{en: &v}
}

// English returns the English translation and whether it is present.
func (r Record) English() (string, bool) {
	if r.en == nil {
		return "", false
	}
	return *r.en, true
}

// Translation returns the translation for tag.
func (r Record) Translation(tag language.Tag) (string, bool) {
	if tag == language.English {
		return r.English()
	}
	return "", false
}

// Missing lists the supported languages without a translation.
func (r Record) Missing() []language.Tag {
	var out []language.Tag
	for _, tag := range SupportedLanguages {
		if _, ok := r.Translation(tag); !ok {
			out = append(out, tag)
		}
	}
	return out
}

// MissingMessage describes the missing languages of r in one sentence,
// e.g. "Missing English(en) translation". Empty when nothing is missing.
func (r Record) MissingMessage() string {
	missing := r.Missing()
	if len(missing) == 0 {
		return ""
	}
	names := make([]string, len(missing))
	for i, tag := range missing {
		names[i] = LanguageName(tag)
	}
	if len(names) == 1 {
		return "Missing " + names[0] + " translation"
	}
	return "Missing " + strings.Join(names, ", ") + " translations"
}

// Entry is one key of the table with its record.
type Entry struct {
	Key    string
	Record Record
}

// Table is an ordered, read-only set of locale keys.
type Table struct {
	keys    []string
	records map[string]Record
}

// NewTable builds a table from entries in order. Later duplicates replace the
// record but keep the first position; Parse rejects duplicates before that.
func NewTable(entries ...Entry) *Table {
	t := &Table{
		keys:    make([]string, 0, len(entries)),
		records: make(map[string]Record, len(entries)),
	}
	for _, e := range entries {
		if _, ok := t.records[e.Key]; !ok {
			t.keys = append(t.keys, e.Key)
		}
		t.records[e.Key] = e.Record
	}
	return t
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

func (t *Table) Has(key string) bool {
	if t == nil {
		return false
	}
	_, ok := t.records[key]
	return ok
}

func (t *Table) Get(key string) (Record, bool) {
	if t == nil {
		return Record{}, false
	}
	r, ok := t.records[key]
	return r, ok
}

// Keys returns a copy of the keys in file order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.keys...)
}

// All iterates the table in file order.
func (t *Table) All() iter.Seq2[string, Record] {
	return func(yield func(string, Record) bool) {
		if t == nil {
			return
		}
		for _, k := range t.keys {
			if !yield(k, t.records[k]) {
				return
			}
		}
	}
}

package keys_test

import (
	"errors"
	"reflect"
	"testing"

	"localecheck/internal/keys"
	"localecheck/internal/source"
	"localecheck/internal/syntax"
	"localecheck/internal/token"
)

func extract(t *testing.T, path, input string) ([]keys.Usage, error) {
	t.Helper()
	fs := source.NewFileSet()
	return keys.Extract(fs.Get(fs.AddVirtual(path, []byte(input))))
}

func TestExtractRecognisedShapes(t *testing.T) {
	input := `t!("first_key");
 rust_i18n::t!("second_key");
foo::bar::t!("not a key");
::foo::bar::t!("not a key");
`
	got, err := extract(t, "foo.rs", input)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := []keys.Usage{
		{Key: "first_key", File: "foo.rs", Line: 1, Column: 0},
		{Key: "second_key", File: "foo.rs", Line: 2, Column: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("usages = %+v, want %+v", got, want)
	}
}

func TestIsTranslationMacro(t *testing.T) {
	seg := func(names ...string) []token.Token {
		out := make([]token.Token, len(names))
		for i, n := range names {
			out[i] = token.Token{Kind: token.Ident, Text: n}
		}
		return out
	}
	cases := []struct {
		path syntax.Path
		want bool
	}{
		{syntax.Path{Segments: seg("t")}, true},
		{syntax.Path{Segments: seg("rust_i18n", "t")}, true},
		{syntax.Path{LeadingColon: true, Segments: seg("rust_i18n", "t")}, false},
		{syntax.Path{LeadingColon: true, Segments: seg("t")}, false},
		{syntax.Path{Segments: seg("tr")}, false},
		{syntax.Path{Segments: seg("other", "t")}, false},
		{syntax.Path{Segments: seg("rust_i18n", "tr")}, false},
		{syntax.Path{Segments: seg("a", "rust_i18n", "t")}, false},
	}
	for _, tc := range cases {
		if got := keys.IsTranslationMacro(tc.path); got != tc.want {
			t.Errorf("IsTranslationMacro(%s) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestExtractNested(t *testing.T) {
	input := `mod m {
    fn f() {
        let closure = || {
            print_info(format!("{}: {}", t!("outer"), t!("Restarting {app}", app = "x")));
        };
        match x { _ => { vec![rust_i18n::t!(r#"raw "key""#)]; } }
    }
}`
	got, err := extract(t, "src/m.rs", input)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	var gotKeys []string
	for _, u := range got {
		gotKeys = append(gotKeys, u.Key)
	}
	want := []string{"outer", "Restarting {app}", `raw "key"`}
	if !reflect.DeepEqual(gotKeys, want) {
		t.Fatalf("keys = %q, want %q", gotKeys, want)
	}
	if got[0].Line != 4 || got[0].Column != 41 {
		t.Fatalf("first usage position = %d:%d", got[0].Line, got[0].Column)
	}
	if got[2].Line != 6 {
		t.Fatalf("raw usage line = %d", got[2].Line)
	}
}

func TestExtractColumnCountsCharacters(t *testing.T) {
	got, err := extract(t, "u.rs", `let ключ = t!("k");`)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got) != 1 || got[0].Column != 11 {
		t.Fatalf("usages = %+v, want column 11", got)
	}
}

func TestExtractKeepsEscapes(t *testing.T) {
	got, err := extract(t, "e.rs", `t!("say \"hi\"\n")`)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got[0].Key != `say \"hi\"\n` {
		t.Fatalf("key = %q", got[0].Key)
	}
}

func TestExtractMisuse(t *testing.T) {
	cases := []struct {
		input string
		err   error
		line  uint32
	}{
		{"\nt!(key);\n", keys.ErrKeyNotLiteral, 2},
		{"t!(42)", keys.ErrKeyNotLiteral, 1},
		{`t!(b"bytes")`, keys.ErrKeyNotLiteral, 1},
		{`t!(("nested"))`, keys.ErrKeyNotLiteral, 1},
		{"fn f() {\n    rust_i18n::t!()\n}", keys.ErrMissingKey, 2},
	}
	for _, tc := range cases {
		_, err := extract(t, "foo.rs", tc.input)
		if !errors.Is(err, tc.err) {
			t.Errorf("%q: err = %v, want %v", tc.input, err, tc.err)
			continue
		}
		var me *keys.MisuseError
		if !errors.As(err, &me) || me.Pos.Line != tc.line || me.Path != "foo.rs" {
			t.Errorf("%q: misuse error = %+v, want line %d", tc.input, me, tc.line)
		}
	}
}

func TestExtractIgnoresNonTranslationMisuse(t *testing.T) {
	got, err := extract(t, "x.rs", `other::t!(key); tr!(42); ::rust_i18n::t!(k);`)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("usages = %+v", got)
	}
}

func TestExtractSyntaxError(t *testing.T) {
	_, err := extract(t, "broken.rs", `fn f() { t!("k"); `)
	if !errors.Is(err, syntax.ErrUnbalanced) {
		t.Fatalf("err = %v, want ErrUnbalanced", err)
	}
}

func TestLiteralText(t *testing.T) {
	cases := map[string]token.Token{
		"plain":     {Kind: token.StringLit, Text: `"plain"`},
		"":          {Kind: token.StringLit, Text: `""`},
		"r1":        {Kind: token.RawStringLit, Text: `r"r1"`},
		`a "b" c`:   {Kind: token.RawStringLit, Text: `r##"a "b" c"##`},
		`esc\tkept`: {Kind: token.StringLit, Text: `"esc\tkept"`},
	}
	for want, tok := range cases {
		if got := keys.LiteralText(tok); got != want {
			t.Errorf("LiteralText(%s) = %q, want %q", tok.Text, got, want)
		}
	}
}

package diagfmt

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"localecheck/internal/diag"
	"localecheck/internal/keys"
	"localecheck/internal/lexer"
	"localecheck/internal/source"
)

func sampleCollector() *diag.Collector {
	c := diag.NewCollector()
	c.Add(diag.WithMessage("MissingTranslations", "Untranslated", "Missing English(en) translation"))
	c.Add(diag.New("KeyEnglishMatches", "Hello {name}"))
	c.Add(diag.New("UseOfKeysDoNotExist", "file 'foo.rs' / line '1' / column '1' / key 'Restarting'"))
	return c
}

func TestPrettyNoErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := Pretty(&buf, diag.NewCollector(), PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "No error found!\n" {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestPrettyLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := Pretty(&buf, sampleCollector(), PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	want := "Errors Found:\n" +
		"  MissingTranslations\n" +
		"    Untranslated: Missing English(en) translation\n" +
		"  KeyEnglishMatches\n" +
		"    Hello {name}\n" +
		"  UseOfKeysDoNotExist\n" +
		"    file 'foo.rs' / line '1' / column '1' / key 'Restarting'\n"
	if buf.String() != want {
		t.Fatalf("output:\nwant:\n%s\ngot:\n%s", want, buf.String())
	}
}

func TestPrettyColorAndLimits(t *testing.T) {
	var colored bytes.Buffer
	if err := Pretty(&colored, sampleCollector(), PrettyOpts{Color: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatalf("no colour codes in %q", colored.String())
	}

	var limited bytes.Buffer
	if err := Pretty(&limited, sampleCollector(), PrettyOpts{Max: 2, Width: 8}); err != nil {
		t.Fatal(err)
	}
	out := limited.String()
	if strings.Contains(out, "UseOfKeysDoNotExist") {
		t.Fatalf("limit ignored:\n%s", out)
	}
	if !strings.Contains(out, "    Untra...: Missing") || !strings.Contains(out, "... and 1 more") {
		t.Fatalf("truncation missing:\n%s", out)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 0, "short"},
		{"short", 10, "short"},
		{"abcdefgh", 6, "abc..."},
		{"abcdefgh", 2, "ab"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleCollector(), JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if out.Count != 3 || len(out.Rules) != 3 || out.Truncated {
		t.Fatalf("output = %+v", out)
	}
	if out.Rules[0].Diagnostics[0].Message == nil || out.Rules[1].Diagnostics[0].Message != nil {
		t.Fatalf("message presence lost: %+v", out.Rules)
	}
	if strings.Contains(buf.String(), `"message":null`) {
		t.Fatalf("absent message should be omitted: %s", buf.String())
	}

	capped := BuildDiagnosticsOutput(sampleCollector(), JSONOpts{Max: 1})
	if len(capped.Rules) != 1 || capped.Count != 3 || !capped.Truncated {
		t.Fatalf("capped = %+v", capped)
	}

	empty := BuildDiagnosticsOutput(diag.NewCollector(), JSONOpts{})
	data, _ := json.Marshal(empty)
	if string(data) != `{"rules":[],"count":0}` {
		t.Fatalf("empty = %s", data)
	}
}

func TestKeysOutput(t *testing.T) {
	usages := []keys.Usage{
		{Key: "first_key", File: "foo.rs", Line: 1, Column: 0},
		{Key: "gone", File: "foo.rs", Line: 2, Column: 1},
	}
	known := func(k string) bool { return k == "first_key" }

	var table bytes.Buffer
	if err := KeysTable(&table, usages, known, KeysOpts{}); err != nil {
		t.Fatal(err)
	}
	out := table.String()
	for _, want := range []string{"FILE", "KEY", "first_key", "gone", "no"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table misses %q:\n%s", want, out)
		}
	}
	header, first, second := strings.Index(out, "FILE"), strings.Index(out, "first_key"), strings.Index(out, "gone")
	if !(header < first && first < second) || strings.Count(out, "FILE") != 1 {
		t.Fatalf("header must render once above the data rows:\n%s", out)
	}
	if err := KeysTable(io.Discard, usages, known, KeysOpts{Color: true}); err != nil {
		t.Fatal(err)
	}

	var js bytes.Buffer
	if err := KeysJSON(&js, usages, known); err != nil {
		t.Fatal(err)
	}
	var decoded []UsageJSON
	if err := json.Unmarshal(js.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 2 || !decoded[0].Known || decoded[1].Known || decoded[1].Column != 1 {
		t.Fatalf("decoded = %+v", decoded)
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("x.rs", []byte("// hi\nt!(\"k\")")))
	tokens := lexer.New(file, lexer.Options{}).All()

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, tokens, file); err != nil {
		t.Fatal(err)
	}
	first := strings.SplitN(pretty.String(), "\n", 2)[0]
	if !strings.Contains(first, `"t"`) || !strings.Contains(first, "at 2:1") || !strings.Contains(first, "LineComment") {
		t.Fatalf("first line = %q", first)
	}

	var js bytes.Buffer
	if err := FormatTokensJSON(&js, tokens, file); err != nil {
		t.Fatal(err)
	}
	var decoded []TokenOutput
	if err := json.Unmarshal(js.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != len(tokens) || decoded[0].Line != 2 || decoded[0].Column != 0 {
		t.Fatalf("decoded = %+v", decoded)
	}
}

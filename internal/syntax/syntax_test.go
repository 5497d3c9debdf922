package syntax_test

import (
	"errors"
	"strings"
	"testing"

	"localecheck/internal/source"
	"localecheck/internal/syntax"
	"localecheck/internal/testkit"
	"localecheck/internal/token"
)

func parse(t *testing.T, input string) *syntax.File {
	t.Helper()
	fs := source.NewFileSet()
	f, err := syntax.Parse(fs.Get(fs.AddVirtual("test.rs", []byte(input))))
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return f
}

func paths(calls []*syntax.MacroCall) []string {
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.Path.String()
	}
	return out
}

func TestGroupsAreBalanced(t *testing.T) {
	f := parse(t, "fn main() { let v = [1, (2)]; }")
	if len(f.Trees) != 4 {
		t.Fatalf("top level trees = %d, want 4 (fn main () {})", len(f.Trees))
	}
	body := f.Trees[3].Group
	if body == nil || body.Delim != syntax.Brace {
		t.Fatalf("expected brace group, got %+v", f.Trees[3])
	}
	if body.Open.Text != "{" || body.Close.Text != "}" {
		t.Fatalf("group delimiters %q %q", body.Open.Text, body.Close.Text)
	}
	var sawBracket bool
	for _, tr := range body.Trees {
		if tr.Group != nil && tr.Group.Delim == syntax.Bracket {
			sawBracket = true
		}
	}
	if !sawBracket {
		t.Fatal("bracket group missing inside body")
	}
}

func TestMacroCallsInDocumentOrder(t *testing.T) {
	src := `
use rust_i18n::t;
fn run() -> Result<()> {
    println!("{}", t!("first"));
    if cond {
        mod_a::helper(rust_i18n::t!("second"));
    }
    let s = vec![t!("third")];
    return t!("fourth");
}
impl X { fn y() { foo::bar::t!("x"); ::rust_i18n::t!("y"); } }
`
	got := paths(syntax.MacroCalls(parse(t, src)))
	want := []string{
		"println", "t", "rust_i18n::t", "vec", "t", "t",
		"foo::bar::t", "::rust_i18n::t",
	}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("macro calls = %v, want %v", got, want)
	}
}

func TestInspectCanSkipArguments(t *testing.T) {
	f := parse(t, `format!("{}", t!("inner")); t!("outer");`)
	var seen []string
	syntax.Inspect(f, func(m *syntax.MacroCall) bool {
		seen = append(seen, m.Path.String())
		return false
	})
	if strings.Join(seen, ",") != "format,t" {
		t.Fatalf("seen = %v", seen)
	}
}

func TestMacroRulesBodyIsSkipped(t *testing.T) {
	src := `
macro_rules! tr {
    ($key:expr) => { t!($key) };
}
fn f() { tr!("x"); }
`
	got := paths(syntax.MacroCalls(parse(t, src)))
	if strings.Join(got, ",") != "tr" {
		t.Fatalf("macro calls = %v, want [tr]", got)
	}
}

func TestNotMacroCalls(t *testing.T) {
	src := `a != b; let x = !flag; t; t!; #![allow(unused)] #[derive(Debug)] struct S;`
	if calls := syntax.MacroCalls(parse(t, src)); len(calls) != 0 {
		t.Fatalf("unexpected calls: %v", paths(calls))
	}
}

func TestMacroCallShape(t *testing.T) {
	input := "  rust_i18n::t!(\"key\", n = 1)"
	calls := syntax.MacroCalls(parse(t, input))
	if len(calls) != 1 {
		t.Fatalf("calls = %d", len(calls))
	}
	c := calls[0]
	if c.Path.LeadingColon || strings.Join(c.Path.Names(), ",") != "rust_i18n,t" {
		t.Fatalf("path = %+v", c.Path)
	}
	if c.Span.Start != 2 || int(c.Span.End) != len(input) {
		t.Fatalf("span = %v", c.Span)
	}
	first, ok := c.FirstArg()
	if !ok || !first.Is(token.StringLit) || first.Token.Text != `"key"` {
		t.Fatalf("first arg = %+v", first)
	}
	for _, d := range []string{"t![\"a\"]", "t!{\"a\"}"} {
		if n := len(syntax.MacroCalls(parse(t, d))); n != 1 {
			t.Fatalf("%s: calls = %d", d, n)
		}
	}
}

func TestEmptyArguments(t *testing.T) {
	calls := syntax.MacroCalls(parse(t, "t!()"))
	if len(calls) != 1 {
		t.Fatalf("calls = %d", len(calls))
	}
	if _, ok := calls[0].FirstArg(); ok {
		t.Fatal("FirstArg on empty args must report false")
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		input string
		kind  error
		pos   source.Position
	}{
		{"fn main() {", syntax.ErrUnbalanced, source.Position{Line: 1, Column: 10}},
		{"fn main() }", syntax.ErrUnbalanced, source.Position{Line: 1, Column: 10}},
		{"fn main(]", syntax.ErrUnbalanced, source.Position{Line: 1, Column: 8}},
		{"let s =\n  \"open;", syntax.ErrLexical, source.Position{Line: 2, Column: 2}},
	}
	for _, tc := range cases {
		fs := source.NewFileSet()
		_, err := syntax.Parse(fs.Get(fs.AddVirtual("bad.rs", []byte(tc.input))))
		if !errors.Is(err, tc.kind) {
			t.Errorf("%q: err = %v, want %v", tc.input, err, tc.kind)
			continue
		}
		var se *syntax.Error
		if !errors.As(err, &se) {
			t.Errorf("%q: error is not *syntax.Error", tc.input)
			continue
		}
		if se.Pos != tc.pos || se.Path != "bad.rs" {
			t.Errorf("%q: error at %s %+v, want %+v", tc.input, se.Path, se.Pos, tc.pos)
		}
	}
}

func TestSpanInvariants(t *testing.T) {
	inputs := []string{
		"",
		"fn main() { let v = [1, (2)]; }",
		"macro_rules! m { ($x:expr) => { t!($x) }; }",
		"println!(\"{}\", t!(\"k\", a = vec![1, 2]));\n// tail",
		"let s = r#\"raw { ( \"#; t!(\"ключ\");",
	}
	for _, input := range inputs {
		if err := testkit.CheckSpanInvariants(parse(t, input)); err != nil {
			t.Errorf("%q: %v", input, err)
		}
	}
}

package project

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverSources(t *testing.T) {
	dir := t.TempDir()
	for _, p := range []string{
		"src/main.rs",
		"src/b/mod.rs",
		"src/a.rs",
		"src/notes.txt",
		"src/gen/out.rs",
		"src/.hidden/x.rs",
		"build.rs",
	} {
		writeFile(t, filepath.Join(dir, p), "fn main() {}\n")
	}
	if err := os.Symlink(filepath.Join(dir, "build.rs"), filepath.Join(dir, "src", "link.rs")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if err := os.Symlink("build.rs", filepath.Join(dir, "top.rs")); err != nil {
		t.Fatal(err)
	}

	excludes, err := CompileExcludes([]string{"gen/**"})
	if err != nil {
		t.Fatalf("CompileExcludes: %v", err)
	}
	got, err := DiscoverSources([]string{
		filepath.Join(dir, "src"),
		filepath.Join(dir, "src", "notes.txt"),
		filepath.Join(dir, "top.rs"),
		filepath.Join(dir, "src", "a.rs"),
	}, excludes)
	if err != nil {
		t.Fatalf("DiscoverSources: %v", err)
	}
	want := []string{
		filepath.Join(dir, "src", ".hidden", "x.rs"),
		filepath.Join(dir, "src", "a.rs"),
		filepath.Join(dir, "src", "b", "mod.rs"),
		filepath.Join(dir, "src", "main.rs"),
		filepath.Join(dir, "build.rs"),
	}
	if !slices.Equal(got, want) {
		t.Fatalf("sources:\n got %q\nwant %q", got, want)
	}
}

func TestDiscoverSourcesListsFileOnce(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "a.rs"), "fn a() {}\n")
	dotted := dir + string(filepath.Separator) + "." + string(filepath.Separator) + filepath.Join("src", "a.rs")
	got, err := DiscoverSources([]string{
		dotted,
		filepath.Join(dir, "src"),
		filepath.Join(dir, "src", "a.rs"),
	}, nil)
	if err != nil {
		t.Fatalf("DiscoverSources: %v", err)
	}
	if !slices.Equal(got, []string{dotted}) {
		t.Fatalf("sources = %q, want only %q", got, dotted)
	}
}

func TestDiscoverSourcesMissingPath(t *testing.T) {
	_, err := DiscoverSources([]string{filepath.Join(t.TempDir(), "nope")}, nil)
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("err = %v, want ErrSourceNotFound", err)
	}
}

func TestExcludes(t *testing.T) {
	ex, err := CompileExcludes([]string{"**/tests/*.rs", " ", "src/*_gen.rs"})
	if err != nil {
		t.Fatalf("CompileExcludes: %v", err)
	}
	if got := ex.Patterns(); len(got) != 2 {
		t.Fatalf("Patterns = %q", got)
	}
	cases := map[string]bool{
		"crate/tests/it.rs":  true,
		"src/proto_gen.rs":   true,
		"src/deep/x_gen.rs":  false,
		"src/main.rs":        false,
		"crate/tests/a/b.rs": false,
	}
	for path, want := range cases {
		if got := ex.Match(path); got != want {
			t.Errorf("Match(%q) = %v, want %v", path, got, want)
		}
	}
	var none *Excludes
	if none.Match("anything") {
		t.Fatalf("nil excludes matched")
	}
}

func TestLoadNearestConfig(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ConfigFileName), `
[locale]
file = "locales/app.yml"

[sources]
paths = ["src", "/abs/lib.rs"]
exclude = ["**/generated/**"]

[check]
disable = ["KeyEnglishMatches"]

[output]
format = "json"
max_diagnostics = 10

[cache]
enabled = true
`)
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, ok, err := LoadNearestConfig(nested)
	if err != nil || !ok {
		t.Fatalf("LoadNearestConfig = %v, %v", ok, err)
	}
	if cfg.Locale.File != filepath.Join(root, "locales", "app.yml") {
		t.Fatalf("locale file = %q", cfg.Locale.File)
	}
	if !slices.Equal(cfg.Sources.Paths, []string{filepath.Join(root, "src"), "/abs/lib.rs"}) {
		t.Fatalf("paths = %q", cfg.Sources.Paths)
	}
	if cfg.Output.Format != OutputJSON || cfg.Output.MaxDiagnostics != 10 || !cfg.Cache.Enabled {
		t.Fatalf("config = %+v", cfg)
	}
	if !cfg.IsDefined("check", "disable") || cfg.IsDefined("locale", "format") {
		t.Fatalf("IsDefined misreports keys")
	}
	if path, ok, _ := FindConfig(nested); !ok || path != filepath.Join(root, ConfigFileName) {
		t.Fatalf("FindConfig = %q, %v", path, ok)
	}
	if cfg.Dir() != root {
		t.Fatalf("Dir = %q", cfg.Dir())
	}
}

func TestLoadNearestConfigAbsent(t *testing.T) {
	cfg, ok, err := LoadNearestConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadNearestConfig: %v", err)
	}
	// a localecheck.toml above the temp dir would make this test meaningless
	if ok {
		t.Skipf("found a config above the temp dir: %s", cfg.Path)
	}
	if cfg == nil || cfg.Dir() != "" || cfg.IsDefined("locale") {
		t.Fatalf("zero config = %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		err     error
	}{
		{"unknown key", "[locale]\nfiel = \"x\"\n", ErrUnknownConfigKey},
		{"bad format", "[output]\nformat = \"xml\"\n", ErrInvalidConfig},
		{"negative max", "[output]\nmax_diagnostics = -1\n", ErrInvalidConfig},
		{"empty locale", "[locale]\nfile = \"\"\n", ErrInvalidConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ConfigFileName)
			writeFile(t, path, tc.content)
			if _, err := LoadConfig(path); !errors.Is(err, tc.err) {
				t.Fatalf("err = %v, want %v", err, tc.err)
			}
		})
	}
	path := filepath.Join(t.TempDir(), ConfigFileName)
	writeFile(t, path, "[locale\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("malformed TOML accepted")
	}
}

func TestCombine(t *testing.T) {
	a := StringDigest("a")
	if Combine(a) == Combine(a, StringDigest("b")) {
		t.Fatalf("Combine ignores parts")
	}
	if Combine(a, StringDigest("b")) != Combine(a, StringDigest("b")) {
		t.Fatalf("Combine not deterministic")
	}
}

package driver

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"localecheck/internal/checker"
	"localecheck/internal/diag"
	"localecheck/internal/keys"
	"localecheck/internal/locale"
	"localecheck/internal/localedata"
	"localecheck/internal/observ"
	"localecheck/internal/syntax"
)

const sampleLocale = `_version: 2
Restarting {app}:
  en: "Restarting %{app}"
Hello {name}:
  en: "Hello {name}"
Untranslated:
`

const sampleMain = `use rust_i18n::t;

fn main() {
    println!("{}", t!("Restarting {app}", app = "x"));
    let _ = rust_i18n::t!("Removed");
}
`

const sampleLib = `pub fn greet() -> String {
    t!("Hello {name}", name = "you").to_string()
}
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func sampleProject(t *testing.T) (dir string, opts Options) {
	t.Helper()
	dir = t.TempDir()
	writeFile(t, filepath.Join(dir, "locales", "app.yml"), sampleLocale)
	writeFile(t, filepath.Join(dir, "src", "main.rs"), sampleMain)
	writeFile(t, filepath.Join(dir, "src", "lib.rs"), sampleLib)
	return dir, Options{
		LocaleFile: filepath.Join(dir, "locales", "app.yml"),
		Sources:    []string{filepath.Join(dir, "src")},
	}
}

func TestRunPipeline(t *testing.T) {
	dir, opts := sampleProject(t)
	opts.Timer = observ.NewTimer()
	res, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Files) != 2 || len(res.Usages) != 3 {
		t.Fatalf("files = %q, usages = %+v", res.Files, res.Usages)
	}
	if res.Usages[0].Key != "Hello {name}" {
		t.Fatalf("lib.rs should come first: %+v", res.Usages)
	}
	mainPath := filepath.ToSlash(filepath.Join(dir, "src", "main.rs"))
	want := "MissingTranslations\tUntranslated\tMissing English(en) translation\n" +
		"KeyEnglishMatches\tHello {name}\n" +
		"KeyEnglishMatches\tUntranslated\tMissing English translation\n" +
		"UseOfKeysDoNotExist\tfile '" + mainPath + "' / line '5' / column '12' / key 'Removed'"
	if got := diag.FormatGolden(res.Diagnostics); got != want {
		t.Fatalf("diagnostics:\nwant:\n%s\n\ngot:\n%s", want, got)
	}
	if phases := opts.Timer.Report().Phases; len(phases) != 4 {
		t.Fatalf("timed phases = %+v", phases)
	}
}

func TestRunLogsRuleCounts(t *testing.T) {
	_, opts := sampleProject(t)
	var buf bytes.Buffer
	opts.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if _, err := Run(context.Background(), opts); err != nil {
		t.Fatalf("Run: %v", err)
	}
	logs := buf.String()
	for _, want := range []string{
		"rule=MissingTranslations diagnostics=1",
		"rule=KeyEnglishMatches diagnostics=2",
		"rule=UseOfKeysDoNotExist diagnostics=1",
	} {
		if !strings.Contains(logs, want) {
			t.Errorf("log lacks %q:\n%s", want, logs)
		}
	}
}

func TestRunIsIdempotentAcrossJobsAndCache(t *testing.T) {
	_, opts := sampleProject(t)
	opts.Jobs = 1
	first, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	cache, err := OpenDiskCache(t.TempDir(), "localecheck")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	opts.Jobs = 8
	opts.Cache = cache
	cold, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("cold Run: %v", err)
	}
	warm, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("warm Run: %v", err)
	}
	if cold.CacheHits != 0 || warm.CacheHits != 2 {
		t.Fatalf("cache hits cold=%d warm=%d", cold.CacheHits, warm.CacheHits)
	}
	for _, r := range []*Result{cold, warm} {
		if !first.Diagnostics.Equal(r.Diagnostics) {
			t.Fatalf("runs differ:\n%s\n---\n%s", diag.FormatGolden(first.Diagnostics), diag.FormatGolden(r.Diagnostics))
		}
		if len(r.Usages) != len(first.Usages) {
			t.Fatalf("usages differ: %+v vs %+v", r.Usages, first.Usages)
		}
		for i := range r.Usages {
			if r.Usages[i] != first.Usages[i] {
				t.Fatalf("usage %d differs: %+v vs %+v", i, r.Usages[i], first.Usages[i])
			}
		}
	}
}

func TestRunWithDisabledRule(t *testing.T) {
	_, opts := sampleProject(t)
	c := checker.Default()
	if err := c.Disable("MissingTranslations", "KeyEnglishMatches"); err != nil {
		t.Fatal(err)
	}
	opts.Checker = c
	res, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rules := res.Diagnostics.Rules(); len(rules) != 1 || rules[0] != "UseOfKeysDoNotExist" {
		t.Fatalf("rules = %v", rules)
	}
}

func TestRunLocaleErrors(t *testing.T) {
	dir, opts := sampleProject(t)
	writeFile(t, opts.LocaleFile, "_version: 1\n")
	_, err := Run(context.Background(), opts)
	if !errors.Is(err, ErrLocale) || !errors.Is(err, locale.ErrVersionMismatch) {
		t.Fatalf("err = %v, want ErrLocale wrapping ErrVersionMismatch", err)
	}

	writeFile(t, opts.LocaleFile, "a: [\n")
	_, err = Run(context.Background(), opts)
	var de *localedata.Error
	if !errors.Is(err, ErrLocale) || !errors.As(err, &de) {
		t.Fatalf("err = %v, want ErrLocale wrapping *localedata.Error", err)
	}

	opts.LocaleFile = filepath.Join(dir, "missing.yml")
	if _, err := Run(context.Background(), opts); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing locale err = %v", err)
	}
}

func TestRunReportsEarliestBrokenFile(t *testing.T) {
	dir, opts := sampleProject(t)
	writeFile(t, filepath.Join(dir, "src", "a.rs"), "fn f() { t!(KEY); }\n")
	writeFile(t, filepath.Join(dir, "src", "z.rs"), "fn g() {\n")
	for _, jobs := range []int{1, 4} {
		opts.Jobs = jobs
		_, err := Run(context.Background(), opts)
		if !errors.Is(err, ErrSources) || !errors.Is(err, keys.ErrKeyNotLiteral) {
			t.Fatalf("jobs=%d: err = %v, want misuse in a.rs", jobs, err)
		}
		if !strings.Contains(err.Error(), "a.rs:1:10") {
			t.Fatalf("jobs=%d: err = %v, want position a.rs:1:10", jobs, err)
		}
	}
	if err := os.Remove(filepath.Join(dir, "src", "a.rs")); err != nil {
		t.Fatal(err)
	}
	_, err := Run(context.Background(), opts)
	if !errors.Is(err, syntax.ErrUnbalanced) {
		t.Fatalf("err = %v, want ErrUnbalanced", err)
	}
}

func TestRunMissingInputs(t *testing.T) {
	_, opts := sampleProject(t)
	noLocale := opts
	noLocale.LocaleFile = ""
	if _, err := Run(context.Background(), noLocale); !errors.Is(err, ErrNoInput) {
		t.Fatalf("err = %v, want ErrNoInput", err)
	}
	noSources := opts
	noSources.Sources = nil
	if _, err := Run(context.Background(), noSources); !errors.Is(err, ErrNoInput) {
		t.Fatalf("err = %v, want ErrNoInput", err)
	}
}

func TestExtractFilesCancelled(t *testing.T) {
	_, opts := sampleProject(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	paths := []string{filepath.Join(filepath.Dir(opts.LocaleFile), "..", "src", "main.rs")}
	if _, err := ExtractFiles(ctx, paths, ExtractOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestDiskCacheRoundTripAndDrop(t *testing.T) {
	cache, err := OpenDiskCache(filepath.Join(t.TempDir(), "cache"), "")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	_, opts := sampleProject(t)
	opts.Cache = cache
	if _, err := Run(context.Background(), opts); err != nil {
		t.Fatal(err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	res, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheHits != 0 {
		t.Fatalf("cache hits after drop = %d", res.CacheHits)
	}
	var nilCache *DiskCache
	if ok, err := nilCache.Get(cacheKey(res.FileSet.Get(0)), &UsagePayload{}); ok || err != nil {
		t.Fatalf("nil cache Get = %v, %v", ok, err)
	}
}

func TestTokenize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.rs")
	writeFile(t, path, "t!(\"k\");\nlet s = \"open\n")
	res, err := Tokenize(path)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(res.Tokens) == 0 || res.Tokens[0].Text != "t" {
		t.Fatalf("tokens = %+v", res.Tokens)
	}
	if len(res.Issues) != 1 || res.Issues[0].Pos.Line != 2 {
		t.Fatalf("issues = %+v", res.Issues)
	}
	if issue := res.Issues[0]; issue.Line != `let s = "open` || issue.Pos.Column != 8 || issue.End.Line != 3 {
		t.Fatalf("issue = %+v", issue)
	}
}

func TestWriteTimings(t *testing.T) {
	timer := observ.NewTimer()
	timer.Track("extract")("3 files")
	var text, js bytes.Buffer
	if err := WriteTimings(&text, timer, false); err != nil {
		t.Fatal(err)
	}
	if err := WriteTimings(&js, timer, true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text.String(), "extract") || !strings.Contains(js.String(), `"kind":"pipeline"`) {
		t.Fatalf("text=%q json=%q", text.String(), js.String())
	}
	if err := WriteTimings(&text, nil, false); err != nil {
		t.Fatal(err)
	}
}

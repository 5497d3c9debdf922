package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB - ограничение для тестового корпуса

var rustSeeds = []string{
	"",
	"fn main() { println!(\"{}\", t!(\"Hello {name}\", name = \"x\")); }\n",
	"let _ = rust_i18n::t!(\"Removed\");",
	"let _ = ::rust_i18n::t!(r#\"raw \"key\"\"#);",
	"t!(\"outer\", inner = t!(\"inner\"));",
	"macro_rules! tr { ($k:expr) => { t!($k) }; }",
	"t!(KEY);",
	"t!();",
	"let c = 'a'; let l: &'static str = \"x\\\"y\"; /* t!(\"no\") */ // t!(\"no\")",
	"fn f() { { [ ( } ) ] }",
	"let s = \"unterminated",
	"r##\"never closed\"#",
}

var localeSeeds = []string{
	"_version: 2\nHello:\n  en: Hello\n",
	"_version: 2\nMissing:\n",
	"_version: 2\nA: &a\n  en: x\nB: *a\n",
	"_version = 2\n[Hello]\nen = \"Hello\"\n",
	"{\"_version\": 2, \"Hello\": {\"en\": \"Hello\"}}",
	"{\"_version\": 2, \"k\": {\"en\": null}, \"k\": {}}",
	"_version: 1\n",
	"[1, 2, 3]",
}

func addRustSeeds(f *testing.F) {
	for _, s := range rustSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f, ".rs")
}

func addTestdataSeeds(f *testing.F, ext string) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все файлы с расширением ext
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ext {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

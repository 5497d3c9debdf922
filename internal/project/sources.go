package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// RustExt is the extension of the files the extractor reads.
const RustExt = ".rs"

// ErrSourceNotFound is returned for an input path that does not exist.
var ErrSourceNotFound = errors.New("source path not found")

// Excludes is a compiled set of exclude globs. Patterns use `/` as the
// separator, so `*` stays inside one path segment and `**` crosses them.
type Excludes struct {
	patterns []string
	globs    []glob.Glob
}

// CompileExcludes compiles patterns; an invalid pattern is an error.
func CompileExcludes(patterns []string) (*Excludes, error) {
	ex := &Excludes{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(filepath.ToSlash(p), '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		ex.patterns = append(ex.patterns, p)
		ex.globs = append(ex.globs, g)
	}
	return ex, nil
}

// Patterns returns the accepted patterns.
func (e *Excludes) Patterns() []string {
	if e == nil {
		return nil
	}
	return append([]string(nil), e.patterns...)
}

// Match reports whether any pattern matches one of the given paths.
func (e *Excludes) Match(paths ...string) bool {
	if e == nil {
		return false
	}
	for _, g := range e.globs {
		for _, p := range paths {
			if p != "" && g.Match(filepath.ToSlash(p)) {
				return true
			}
		}
	}
	return false
}

// IsRustFile reports whether path has the .rs extension.
func IsRustFile(path string) bool {
	return filepath.Ext(path) == RustExt
}

// DiscoverSources flattens input paths into the Rust files to check, in
// input order:
//   - a regular file is kept when it ends in .rs;
//   - a directory is walked recursively in lexical order, keeping regular
//     .rs files; links inside it are not followed;
//   - a symbolic link given directly is resolved and kept when its target
//     is an .rs file.
//
// Exclude patterns are matched against the file path and against the path
// relative to the walked directory; a matching directory is skipped whole.
// A file reached through several inputs is listed once.
func DiscoverSources(inputs []string, excludes *Excludes) ([]string, error) {
	var (
		out  []string
		seen = make(map[string]struct{})
	)
	add := func(path string) {
		key := filepath.Clean(path)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, path)
	}
	for _, input := range inputs {
		info, err := os.Lstat(input)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, input)
			}
			return nil, fmt.Errorf("cannot get the metadata of %s: %w", input, err)
		}
		switch mode := info.Mode(); {
		case mode.IsRegular():
			if IsRustFile(input) && !excludes.Match(input) {
				add(input)
			}
		case mode.IsDir():
			files, err := walkRustFiles(input, excludes)
			if err != nil {
				return nil, err
			}
			for _, f := range files {
				add(f)
			}
		case mode&fs.ModeSymlink != 0:
			target, err := resolveLink(input)
			if err != nil {
				return nil, err
			}
			if IsRustFile(target) && !excludes.Match(input, target) {
				add(target)
			}
		}
	}
	return out, nil
}

func resolveLink(path string) (string, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", fmt.Errorf("cannot read the link %s: %w", path, err)
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return target, nil
}

func walkRustFiles(root string, excludes *Excludes) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("cannot walk %s: %w", path, err)
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			rel = ""
		}
		if d.IsDir() {
			if path != root && excludes.Match(path, rel) {
				return filepath.SkipDir
			}
			return nil
		}
		// только обычные файлы: ссылки внутри каталогов не разыменовываются
		if !d.Type().IsRegular() || !IsRustFile(path) {
			return nil
		}
		if excludes.Match(path, rel) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Package driver wires the pipeline together: load the locale table,
// discover and scan the sources, run the rules.
package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"localecheck/internal/checker"
	"localecheck/internal/diag"
	"localecheck/internal/keys"
	"localecheck/internal/locale"
	"localecheck/internal/localedata"
	"localecheck/internal/observ"
	"localecheck/internal/project"
	"localecheck/internal/source"
)

var (
	// ErrLocale marks failures to load or validate the locale file.
	ErrLocale = errors.New("invalid locale file")
	// ErrSources marks failures to discover, read or scan source files.
	ErrSources = errors.New("cannot check sources")
	// ErrNoInput is returned when no locale file or no source path is given.
	ErrNoInput = errors.New("missing input")
)

// Options describe one run.
type Options struct {
	LocaleFile   string
	LocaleFormat localedata.Format
	// Sources are files or directories; see project.DiscoverSources.
	Sources  []string
	Excludes *project.Excludes
	// Checker defaults to checker.Default().
	Checker *checker.Checker
	Jobs    int
	Cache   *DiskCache
	Logger  *slog.Logger
	Timer   *observ.Timer
}

// Result holds everything a run produced.
type Result struct {
	Table       *locale.Table
	Files       []string
	FileSet     *source.FileSet
	Usages      []keys.Usage
	CacheHits   int
	Diagnostics *diag.Collector
}

// Collect loads the locale table and extracts key usages without running
// any rule. Any error is fatal for the run.
func Collect(ctx context.Context, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.LocaleFile == "" {
		return nil, fmt.Errorf("%w: no locale file", ErrNoInput)
	}
	if len(opts.Sources) == 0 {
		return nil, fmt.Errorf("%w: no source paths", ErrNoInput)
	}

	end := opts.Timer.Track("load locale")
	table, err := LoadLocale(opts.LocaleFile, opts.LocaleFormat)
	if err != nil {
		end("failed")
		return nil, err
	}
	end(fmt.Sprintf("%d keys", table.Len()))
	logger.Info("locale file loaded", "path", opts.LocaleFile, "keys", table.Len())

	end = opts.Timer.Track("discover")
	files, err := project.DiscoverSources(opts.Sources, opts.Excludes)
	if err != nil {
		end("failed")
		return nil, fmt.Errorf("%w: %w", ErrSources, err)
	}
	end(fmt.Sprintf("%d files", len(files)))
	logger.Info("sources discovered", "files", len(files), "excludes", opts.Excludes.Patterns())

	end = opts.Timer.Track("extract")
	ext, err := ExtractFiles(ctx, files, ExtractOptions{Jobs: opts.Jobs, Cache: opts.Cache, Logger: logger})
	if err != nil {
		end("failed")
		return nil, fmt.Errorf("%w: %w", ErrSources, err)
	}
	end(fmt.Sprintf("%d usages", len(ext.Usages)))
	logger.Info("keys extracted", "usages", len(ext.Usages), "cache_hits", ext.CacheHits)

	return &Result{
		Table:     table,
		Files:     files,
		FileSet:   ext.FileSet,
		Usages:    ext.Usages,
		CacheHits: ext.CacheHits,
	}, nil
}

// Run is Collect followed by the rules.
func Run(ctx context.Context, opts Options) (*Result, error) {
	res, err := Collect(ctx, opts)
	if err != nil {
		return nil, err
	}
	c := opts.Checker
	if c == nil {
		c = checker.Default()
	}
	end := opts.Timer.Track("check")
	res.Diagnostics = diag.NewCollector()
	counter := &diag.CountingReporter{Next: res.Diagnostics}
	c.RunInto(res.Table, res.Usages, counter)
	end(fmt.Sprintf("%d diagnostics", res.Diagnostics.Len()))
	if opts.Logger != nil {
		for _, name := range c.Names() {
			opts.Logger.Debug("rule finished", "rule", name, "diagnostics", counter.Counts[name])
		}
	}
	return res, nil
}

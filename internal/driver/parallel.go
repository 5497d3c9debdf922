package driver

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"localecheck/internal/keys"
	"localecheck/internal/source"
)

// ExtractOptions tune ExtractFiles.
type ExtractOptions struct {
	// Jobs limits concurrent workers; <= 0 means GOMAXPROCS.
	Jobs   int
	Cache  *DiskCache
	Logger *slog.Logger
}

// Extraction is the result of ExtractFiles.
type Extraction struct {
	FileSet *source.FileSet
	// Usages are ordered by input file, then by position in the file.
	Usages    []keys.Usage
	PerFile   [][]keys.Usage
	CacheHits int
}

type loadedFile struct {
	content []byte
	flags   source.FileFlags
}

// ExtractFiles reads and scans files concurrently. Files are added to the
// FileSet in input order, results are joined in input order, and when
// several files fail the error of the earliest one is returned.
func ExtractFiles(ctx context.Context, paths []string, opts ExtractOptions) (*Extraction, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	out := &Extraction{FileSet: source.NewFileSet()}
	if len(paths) == 0 {
		return out, nil
	}
	jobs = min(jobs, len(paths))

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	loaded := make([]loadedFile, len(paths))
	errs := make([]error, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			content, flags, err := source.ReadFile(path)
			if err != nil {
				errs[i] = fmt.Errorf("cannot read %s: %w", path, err)
				return nil
			}
			loaded[i] = loadedFile{content: content, flags: flags}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := firstError(errs); err != nil {
		return nil, err
	}

	ids := make([]source.FileID, len(paths))
	for i, path := range paths {
		ids[i] = out.FileSet.Add(path, loaded[i].content, loaded[i].flags)
	}

	out.PerFile = make([][]keys.Usage, len(paths))
	var hits atomic.Int64
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, id := range ids {
		file := out.FileSet.Get(id)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if opts.Cache != nil {
				usages, ok, err := opts.Cache.lookup(file)
				if err != nil {
					logger.Debug("cache read failed", "file", file.Path, "error", err)
				}
				if ok {
					out.PerFile[i] = usages
					hits.Add(1)
					return nil
				}
			}
			usages, err := keys.Extract(file)
			if err != nil {
				errs[i] = err
				return nil
			}
			out.PerFile[i] = usages
			if opts.Cache != nil {
				if err := opts.Cache.store(file, usages); err != nil {
					logger.Debug("cache write failed", "file", file.Path, "error", err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := firstError(errs); err != nil {
		return nil, err
	}

	total := 0
	for _, us := range out.PerFile {
		total += len(us)
	}
	out.Usages = make([]keys.Usage, 0, total)
	for _, us := range out.PerFile {
		out.Usages = append(out.Usages, us...)
	}
	out.CacheHits = int(hits.Load())
	return out, nil
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"localecheck/internal/checker"
	"localecheck/internal/driver"
	"localecheck/internal/localedata"
	"localecheck/internal/logging"
	"localecheck/internal/observ"
	"localecheck/internal/project"
)

const appName = "localecheck"

// settings is the merged view of localecheck.toml and the command line.
// Flags win over the config file.
type settings struct {
	configPath     string
	localeFile     string
	localeFormat   localedata.Format
	sources        []string
	excludes       []string
	disable        []string
	format         string
	maxDiagnostics int
	width          int
	jobs           int
	cache          bool
	cacheDir       string
	timings        bool
	quiet          bool
	verbose        bool
}

// loadConfig picks the config file according to --config and --no-config.
func loadConfig(cmd *cobra.Command) (*project.Config, error) {
	flags := cmd.Root().PersistentFlags()
	noConfig, err := flags.GetBool("no-config")
	if err != nil {
		return nil, fmt.Errorf("failed to get no-config flag: %w", err)
	}
	explicit, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if noConfig {
		if explicit != "" {
			return nil, fmt.Errorf("--config and --no-config cannot be used together")
		}
		return &project.Config{}, nil
	}
	if explicit != "" {
		return project.LoadConfig(explicit)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, _, err := project.LoadNearestConfig(wd)
	return cfg, err
}

// loadSettings merges config and flags of cmd.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	persistent := cmd.Root().PersistentFlags()

	s := &settings{
		configPath:     cfg.Path,
		localeFile:     cfg.Locale.File,
		sources:        cfg.Sources.Paths,
		excludes:       cfg.Sources.Exclude,
		disable:        cfg.Check.Disable,
		format:         cfg.Output.Format,
		maxDiagnostics: cfg.Output.MaxDiagnostics,
		cache:          cfg.Cache.Enabled,
		cacheDir:       cfg.Cache.Dir,
	}
	formatName := cfg.Locale.Format

	if flags.Changed("locale-file") {
		if s.localeFile, err = flags.GetString("locale-file"); err != nil {
			return nil, fmt.Errorf("failed to get locale-file flag: %w", err)
		}
	}
	if flags.Changed("locale-format") {
		if formatName, err = flags.GetString("locale-format"); err != nil {
			return nil, fmt.Errorf("failed to get locale-format flag: %w", err)
		}
	}
	if s.localeFormat, err = localedata.ParseFormat(formatName); err != nil {
		return nil, err
	}
	if flags.Changed("rust-src-to-check") {
		if s.sources, err = flags.GetStringArray("rust-src-to-check"); err != nil {
			return nil, fmt.Errorf("failed to get rust-src-to-check flag: %w", err)
		}
	}
	if flags.Changed("exclude") {
		if s.excludes, err = flags.GetStringArray("exclude"); err != nil {
			return nil, fmt.Errorf("failed to get exclude flag: %w", err)
		}
	}
	if flags.Lookup("disable-rule") != nil && flags.Changed("disable-rule") {
		// флаг дополняет список из конфига, а не заменяет его
		extra, err := flags.GetStringArray("disable-rule")
		if err != nil {
			return nil, fmt.Errorf("failed to get disable-rule flag: %w", err)
		}
		s.disable = append(append([]string(nil), s.disable...), extra...)
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		if s.format, err = flags.GetString("format"); err != nil {
			return nil, fmt.Errorf("failed to get format flag: %w", err)
		}
	}
	s.format = strings.ToLower(strings.TrimSpace(s.format))
	switch s.format {
	case "":
		s.format = project.OutputPretty
	case project.OutputPretty, project.OutputJSON:
	default:
		return nil, fmt.Errorf("unknown format: %s", s.format)
	}
	if flags.Changed("max-diagnostics") {
		if s.maxDiagnostics, err = persistent.GetInt("max-diagnostics"); err != nil {
			return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if s.maxDiagnostics < 0 {
		return nil, fmt.Errorf("--max-diagnostics must not be negative")
	}
	if flags.Changed("cache") {
		if s.cache, err = flags.GetBool("cache"); err != nil {
			return nil, fmt.Errorf("failed to get cache flag: %w", err)
		}
	}
	if flags.Changed("cache-dir") {
		if s.cacheDir, err = flags.GetString("cache-dir"); err != nil {
			return nil, fmt.Errorf("failed to get cache-dir flag: %w", err)
		}
	}
	if s.jobs, err = flags.GetInt("jobs"); err != nil {
		return nil, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if s.width, err = persistent.GetInt("width"); err != nil {
		return nil, fmt.Errorf("failed to get width flag: %w", err)
	}
	if s.timings, err = persistent.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if s.quiet, err = persistent.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.verbose, err = persistent.GetBool("verbose"); err != nil {
		return nil, fmt.Errorf("failed to get verbose flag: %w", err)
	}
	return s, nil
}

func (s *settings) logger(cmd *cobra.Command) (*slog.Logger, error) {
	level := "warn"
	switch {
	case s.verbose:
		level = "debug"
	case s.quiet:
		level = "error"
	}
	color, err := useColor(cmd, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return logging.New(cmd.ErrOrStderr(), logging.Options{Level: level, NoColor: !color}), nil
}

// driverOptions builds the pipeline options; the checker has the disabled
// rules removed already.
func (s *settings) driverOptions(cmd *cobra.Command, timer *observ.Timer) (driver.Options, error) {
	logger, err := s.logger(cmd)
	if err != nil {
		return driver.Options{}, err
	}
	if s.configPath != "" {
		logger.Debug("config loaded", "path", s.configPath)
	}

	excludes, err := project.CompileExcludes(s.excludes)
	if err != nil {
		return driver.Options{}, err
	}
	c := checker.Default()
	if err := c.Disable(s.disable...); err != nil {
		return driver.Options{}, err
	}

	var cache *driver.DiskCache
	if s.cache {
		if cache, err = driver.OpenDiskCache(s.cacheDir, appName); err != nil {
			return driver.Options{}, fmt.Errorf("failed to open cache: %w", err)
		}
		logger.Debug("disk cache enabled", "dir", cache.Dir())
	}

	return driver.Options{
		LocaleFile:   s.localeFile,
		LocaleFormat: s.localeFormat,
		Sources:      s.sources,
		Excludes:     excludes,
		Checker:      c,
		Jobs:         s.jobs,
		Cache:        cache,
		Logger:       logger,
		Timer:        timer,
	}, nil
}

// newTimer returns nil when timings are off; a nil Timer ignores calls.
func (s *settings) newTimer() *observ.Timer {
	if !s.timings {
		return nil
	}
	return observ.NewTimer()
}

package project

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the optional per-project configuration file.
const ConfigFileName = "localecheck.toml"

// Output formats accepted by [output].format and --format.
const (
	OutputPretty = "pretty"
	OutputJSON   = "json"
)

var (
	// ErrUnknownConfigKey indicates a key that localecheck.toml does not define.
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	// ErrInvalidConfig indicates a value outside its allowed range.
	ErrInvalidConfig = errors.New("invalid configuration value")
)

// Config is the decoded localecheck.toml. Relative paths are resolved
// against the directory of the file by LoadConfig.
type Config struct {
	Locale  LocaleConfig  `toml:"locale"`
	Sources SourcesConfig `toml:"sources"`
	Check   CheckConfig   `toml:"check"`
	Output  OutputConfig  `toml:"output"`
	Cache   CacheConfig   `toml:"cache"`

	// Path is the file the config was read from; empty for the zero config.
	Path string `toml:"-"`

	meta toml.MetaData
}

type LocaleConfig struct {
	File   string `toml:"file"`
	Format string `toml:"format"`
}

type SourcesConfig struct {
	Paths   []string `toml:"paths"`
	Exclude []string `toml:"exclude"`
}

type CheckConfig struct {
	Disable []string `toml:"disable"`
}

type OutputConfig struct {
	Format         string `toml:"format"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// IsDefined reports whether the key path was present in the file.
func (c *Config) IsDefined(key ...string) bool {
	if c == nil || c.Path == "" {
		return false
	}
	return c.meta.IsDefined(key...)
}

// Dir is the directory holding the config file, or "" without one.
func (c *Config) Dir() string {
	if c == nil || c.Path == "" {
		return ""
	}
	return filepath.Dir(c.Path)
}

// LoadConfig parses localecheck.toml at path.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		names := make([]string, len(undecoded))
		for i, k := range undecoded {
			names[i] = k.String()
		}
		sort.Strings(names)
		return nil, fmt.Errorf("%s: %w: %s", path, ErrUnknownConfigKey, strings.Join(names, ", "))
	}
	cfg.Path = path
	cfg.meta = meta
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.resolvePaths()
	return &cfg, nil
}

// FindConfig returns the localecheck.toml closest to startDir, looking in
// startDir and then in each parent up to the filesystem root.
func FindConfig(startDir string) (path string, ok bool, err error) {
	dir, err := filepath.Abs(cmp.Or(startDir, "."))
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for prev := ""; dir != prev; prev, dir = dir, filepath.Dir(dir) {
		candidate := filepath.Join(dir, ConfigFileName)
		info, err := os.Stat(candidate)
		switch {
		case err == nil && !info.IsDir():
			return candidate, true, nil
		case err != nil && !errors.Is(err, os.ErrNotExist):
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
	}
	return "", false, nil
}

// LoadNearestConfig finds and loads the config above startDir. A missing
// file is not an error: the zero Config is returned with ok == false.
func LoadNearestConfig(startDir string) (cfg *Config, ok bool, err error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return &Config{}, false, nil
	}
	cfg, err = LoadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

func (c *Config) validate() error {
	switch strings.TrimSpace(c.Output.Format) {
	case "", OutputPretty, OutputJSON:
	default:
		return fmt.Errorf("%w: [output].format %q (want %s or %s)", ErrInvalidConfig, c.Output.Format, OutputPretty, OutputJSON)
	}
	if c.Output.MaxDiagnostics < 0 {
		return fmt.Errorf("%w: [output].max_diagnostics must not be negative", ErrInvalidConfig)
	}
	if c.IsDefined("locale", "file") && strings.TrimSpace(c.Locale.File) == "" {
		return fmt.Errorf("%w: [locale].file is empty", ErrInvalidConfig)
	}
	for _, p := range c.Sources.Paths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: empty entry in [sources].paths", ErrInvalidConfig)
		}
	}
	return nil
}

func (c *Config) resolvePaths() {
	dir := c.Dir()
	c.Locale.File = resolveAgainst(dir, c.Locale.File)
	for i, p := range c.Sources.Paths {
		c.Sources.Paths[i] = resolveAgainst(dir, p)
	}
	c.Cache.Dir = resolveAgainst(dir, c.Cache.Dir)
}

func resolveAgainst(dir, p string) string {
	p = strings.TrimSpace(p)
	if p == "" || dir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, filepath.FromSlash(p))
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"localecheck/internal/project"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter localecheck.toml",
		Long: `Initialize a project by creating localecheck.toml in [path] (default: the
current directory). The locale file and source paths can be preset with
--locale-file and --rust-src-to-check.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
	cmd.Flags().String("locale-file", "locales/app.yml", "locale file written into the config")
	cmd.Flags().StringArray("rust-src-to-check", []string{"src"}, "source path written into the config (repeatable)")
	return cmd
}

// runInit creates localecheck.toml in the target directory, creating the
// directory when needed. An existing config is never overwritten.
func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 && args[0] != "" {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err = os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	configPath := filepath.Join(target, project.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", configPath)
	}

	localeFile, err := cmd.Flags().GetString("locale-file")
	if err != nil {
		return fmt.Errorf("failed to get locale-file flag: %w", err)
	}
	sources, err := cmd.Flags().GetStringArray("rust-src-to-check")
	if err != nil {
		return fmt.Errorf("failed to get rust-src-to-check flag: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(buildDefaultConfig(localeFile, sources)), 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Initialized localecheck in %s\n", rel)
	fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", project.ConfigFileName)
	return nil
}

// buildDefaultConfig returns a config that LoadConfig accepts as is.
func buildDefaultConfig(localeFile string, sources []string) string {
	quoted := make([]string, len(sources))
	for i, s := range sources {
		quoted[i] = fmt.Sprintf("%q", filepath.ToSlash(s))
	}
	paths := "[" + strings.Join(quoted, ", ") + "]"
	return fmt.Sprintf(`# localecheck configuration
[locale]
file = %q

[sources]
paths = %s
exclude = []

[check]
disable = []

[output]
format = "pretty"
`, filepath.ToSlash(localeFile), paths)
}

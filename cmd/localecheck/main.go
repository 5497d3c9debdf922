package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"localecheck/internal/logging"
	"localecheck/internal/version"
)

// Коды выхода: 0 - чисто, 1 - найдены диагностики, 2 - фатальная ошибка.
const (
	exitClean       = 0
	exitDiagnostics = 1
	exitFatal       = 2
)

// exitError carries a status code without a message; the output was
// already written by the command.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "localecheck",
		Short: "Check rust-i18n locale files against the Rust sources using them",
		Long: `localecheck loads a versioned locale file (YAML, TOML or JSON, _version 2),
collects every t!("key") usage from the Rust sources and reports missing
translations, keys whose English text does not match the key, and usages of
keys the locale file does not define.`,
		Args:              cobra.NoArgs,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupProfiling,
		RunE:              runCheck,
	}

	addInputFlags(root)
	root.Flags().String("format", "", "output format (pretty|json)")
	root.Flags().StringArray("disable-rule", nil, "rule to skip (repeatable)")

	// Глобальные флаги
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	root.PersistentFlags().Bool("verbose", false, "log pipeline progress to stderr")
	root.PersistentFlags().Bool("timings", false, "show timing information")
	root.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to show (0 = all)")
	root.PersistentFlags().Int("width", 0, "truncate subjects to this many columns (0 = no limit)")
	root.PersistentFlags().String("config", "", "path to localecheck.toml")
	root.PersistentFlags().Bool("no-config", false, "do not look for localecheck.toml")
	root.PersistentFlags().String("cpu-profile", "", "write CPU profile to file")
	root.PersistentFlags().String("mem-profile", "", "write heap profile to file")
	root.PersistentFlags().String("runtime-trace", "", "write runtime trace to file")

	root.AddCommand(newKeysCmd())
	root.AddCommand(newTokenizeCmd())
	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newCleanCmd())
	return root
}

// addInputFlags registers the flags naming what to check.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("locale-file", "", "locale file to check (YAML, TOML or JSON)")
	cmd.Flags().String("locale-format", "", "locale file format (auto|yaml|toml|json)")
	cmd.Flags().StringArray("rust-src-to-check", nil, "Rust file or directory to scan (repeatable)")
	cmd.Flags().StringArray("exclude", nil, "glob of source paths to skip (repeatable)")
	cmd.Flags().Int("jobs", 0, "max parallel workers for source files (0=auto)")
	cmd.Flags().Bool("cache", false, "reuse extracted keys from the disk cache")
	cmd.Flags().String("cache-dir", "", "disk cache directory (default: user cache dir)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, newRootCmd(), os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command tree and maps the outcome to an exit status.
func execute(ctx context.Context, root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if stopErr := stopProfiling(); stopErr != nil && err == nil {
		err = stopErr
	}
	if err == nil {
		return exitClean
	}
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	fmt.Fprintf(stderr, "localecheck: %v\n", err)
	return exitFatal
}

// useColor resolves --color for the given writer.
func useColor(cmd *cobra.Command, w io.Writer) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return logging.IsTerminal(w), nil
	default:
		return false, fmt.Errorf("unknown color mode %q (must be auto, on or off)", mode)
	}
}

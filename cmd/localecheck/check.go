package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"localecheck/internal/diagfmt"
	"localecheck/internal/driver"
	"localecheck/internal/project"
)

// runCheck executes the root command: load the locale file, scan the
// sources, run every enabled rule and print the report. Diagnostics turn
// into exit status 1; any failure before the report is fatal.
func runCheck(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	timer := s.newTimer()
	opts, err := s.driverOptions(cmd, timer)
	if err != nil {
		return err
	}

	result, err := driver.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	end := timer.Track("report")
	switch s.format {
	case project.OutputJSON:
		err = diagfmt.JSON(out, result.Diagnostics, diagfmt.JSONOpts{Max: s.maxDiagnostics, Indent: true})
	default:
		if s.quiet && !result.Diagnostics.HasErrors() {
			break
		}
		color, cerr := useColor(cmd, out)
		if cerr != nil {
			return cerr
		}
		err = diagfmt.Pretty(out, result.Diagnostics, diagfmt.PrettyOpts{
			Color: color,
			Width: s.width,
			Max:   s.maxDiagnostics,
		})
	}
	end(fmt.Sprintf("%d diagnostics", result.Diagnostics.Len()))
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if s.timings {
		if err := driver.WriteTimings(cmd.ErrOrStderr(), timer, s.format == project.OutputJSON); err != nil {
			return err
		}
	}

	if result.Diagnostics.HasErrors() {
		return &exitError{code: exitDiagnostics}
	}
	return nil
}

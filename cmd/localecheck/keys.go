package main

import (
	"github.com/spf13/cobra"

	"localecheck/internal/diagfmt"
	"localecheck/internal/driver"
	"localecheck/internal/project"
)

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List every translation key used by the Rust sources",
		Long: `keys prints the t!("key") usages found in the sources together with their
position and whether the locale file defines the key. No rule is run.`,
		Args: cobra.NoArgs,
		RunE: runKeys,
	}
	addInputFlags(cmd)
	cmd.Flags().String("format", "", "output format (pretty|json)")
	return cmd
}

func runKeys(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	timer := s.newTimer()
	opts, err := s.driverOptions(cmd, timer)
	if err != nil {
		return err
	}
	result, err := driver.Collect(cmd.Context(), opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if s.format == project.OutputJSON {
		err = diagfmt.KeysJSON(out, result.Usages, result.Table.Has)
	} else {
		color, cerr := useColor(cmd, out)
		if cerr != nil {
			return cerr
		}
		err = diagfmt.KeysTable(out, result.Usages, result.Table.Has, diagfmt.KeysOpts{Color: color, KeyWidth: s.width})
	}
	if err != nil {
		return err
	}
	if s.timings {
		return driver.WriteTimings(cmd.ErrOrStderr(), timer, s.format == project.OutputJSON)
	}
	return nil
}

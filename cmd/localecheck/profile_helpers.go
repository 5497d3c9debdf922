package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"localecheck/internal/prof"
)

// activeProfile is the profiler session of the running command, stopped
// by execute once the command returns.
var activeProfile *prof.Session

// setupProfiling inspects persistent profiling flags and enables the
// corresponding profilers.
func setupProfiling(cmd *cobra.Command, _ []string) error {
	root := cmd.Root()

	cpuProfile, err := root.PersistentFlags().GetString("cpu-profile")
	if err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	memProfile, err := root.PersistentFlags().GetString("mem-profile")
	if err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	tracePath, err := root.PersistentFlags().GetString("runtime-trace")
	if err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}

	activeProfile, err = prof.Start(prof.Options{CPUProfile: cpuProfile, MemProfile: memProfile, Trace: tracePath})
	return err
}

func stopProfiling() error {
	s := activeProfile
	activeProfile = nil
	if err := s.Stop(); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

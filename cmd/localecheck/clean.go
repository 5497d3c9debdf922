package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"localecheck/internal/driver"
)

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the localecheck disk cache",
		Long:  "Remove every cached key extraction from the disk cache directory.",
		Args:  cobra.NoArgs,
		RunE:  runClean,
	}
	cmd.Flags().String("cache-dir", "", "disk cache directory (default: config or user cache dir)")
	return cmd
}

func runClean(cmd *cobra.Command, _ []string) error {
	dir, err := cmd.Flags().GetString("cache-dir")
	if err != nil {
		return fmt.Errorf("failed to get cache-dir flag: %w", err)
	}
	if !cmd.Flags().Changed("cache-dir") {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dir = cfg.Cache.Dir
	}
	if dir == "" {
		if dir, err = driver.DefaultCacheDir(appName); err != nil {
			return err
		}
	}

	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(cmd.OutOrStdout(), "cache directory not found")
			return nil
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}
	cache, err := driver.OpenDiskCache(dir, appName)
	if err != nil {
		return err
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to clean %q: %w", dir, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed cached keys in %s\n", dir)
	return nil
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage cached registry responses",
		Long: `Manage the local cache of PyPI and GitHub responses.

Fetched package metadata and readmes are cached on disk so repeated
lookups of the same package skip the network. Entries expire on their
own; clear the cache to force fresh fetches for everything.`,
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached registry responses",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.cacheDirOrDefault()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}

			count, bytes, err := sweepCacheDir(dir)
			if os.IsNotExist(err) {
				printInfo("Cache is empty")
				return nil
			}
			if err != nil {
				return err
			}

			printSuccess("Cleared %d cached entries (%.1f KB)", count, float64(bytes)/1024)
			printDetail("Directory: %s", dir)
			return nil
		},
	}
}

// sweepCacheDir deletes every entry under the cache directory and its
// fan-out subdirectories, returning how many files went and their total
// size. The directory itself stays so the next fetch can reuse it.
func sweepCacheDir(dir string) (count int, bytes int64, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, 0, err
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if !entry.IsDir() {
			if info, err := entry.Info(); err == nil {
				bytes += info.Size()
			}
			if os.Remove(path) == nil {
				count++
			}
			continue
		}

		files, err := os.ReadDir(path)
		if err != nil {
			continue
		}
		for _, f := range files {
			if info, err := f.Info(); err == nil {
				bytes += info.Size()
			}
			if os.Remove(filepath.Join(path, f.Name())) == nil {
				count++
			}
		}
		_ = os.Remove(path)
	}
	return count, bytes, nil
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.cacheDirOrDefault()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}

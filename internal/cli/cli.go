// Package cli implements the pydex command-line interface.
//
// This package provides commands for fetching Python package metadata and
// mining usage examples from documentation, running the pipeline over local
// files, serving the results over HTTP, and managing the response cache.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - fetch: Fetch a package from PyPI and mine its documentation
//   - mine: Run the mining pipeline over a local markdown file or stdin
//   - serve: Expose the pipeline as a JSON HTTP API
//   - cache: Manage the HTTP response cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pydex/pydex/pkg/buildinfo"
	"github.com/pydex/pydex/pkg/cache"
	"github.com/pydex/pydex/pkg/metadata"
)

// appName is the application name used for directories and display.
const appName = "pydex"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cfg        Config
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Pydex mines usage examples from Python package documentation",
		Long:         `Pydex fetches Python package metadata from PyPI (falling back to the GitHub README) and mines the documentation for ready-to-run usage examples.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			cfg.applyEnv()
			c.cfg = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/pydex/config.toml)")

	root.AddCommand(c.fetchCommand())
	root.AddCommand(c.mineCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newService builds the metadata service for a command invocation.
// backendName overrides the configured cache backend when non-empty.
func (c *CLI) newService(ctx context.Context, backendName string, noFallback bool) (*metadata.Service, error) {
	backend, err := c.newCacheBackend(ctx, backendName)
	if err != nil {
		return nil, err
	}
	opts := c.cfg.metadataOptions(c.Logger)
	opts.DisableFallback = noFallback
	return metadata.NewService(backend, opts), nil
}

func (c *CLI) newCacheBackend(ctx context.Context, name string) (cache.Cache, error) {
	if name == "" {
		name = c.cfg.Cache.Backend
	}
	switch name {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, c.cfg.Cache.RedisURL)
	case "", "file":
		dir, err := c.cacheDirOrDefault()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	default:
		return nil, fmt.Errorf("unknown cache backend %q (want file, redis, or none)", name)
	}
}

func (c *CLI) cacheDirOrDefault() (string, error) {
	if c.cfg.Cache.Dir != "" {
		return c.cfg.Cache.Dir, nil
	}
	return cacheDir()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/pydex/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/pydex/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

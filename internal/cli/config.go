package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/pydex/pydex/pkg/metadata"
	"github.com/pydex/pydex/pkg/readme"
)

// Config holds the pydex configuration, loaded from a TOML file with
// environment overrides on top.
type Config struct {
	Cache  CacheConfig  `toml:"cache"`
	GitHub GitHubConfig `toml:"github"`
	Mining MiningConfig `toml:"mining"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig selects and tunes the HTTP response cache.
type CacheConfig struct {
	Backend  string `toml:"backend"` // "file", "redis", or "none"
	Dir      string `toml:"dir"`     // file backend directory (default ~/.cache/pydex)
	RedisURL string `toml:"redis_url"`
	TTLHours int    `toml:"ttl_hours"`
}

type GitHubConfig struct {
	Token string `toml:"token"`
}

// MiningConfig exposes the pipeline thresholds worth tuning from a config
// file. Zero values fall back to the pipeline defaults.
type MiningConfig struct {
	MinSnippetLen     int `toml:"min_snippet_len"`
	MaxSnippetLen     int `toml:"max_snippet_len"`
	IdealSnippetLen   int `toml:"ideal_snippet_len"`
	MaxExamples       int `toml:"max_examples"`
	MinDescriptionLen int `toml:"min_description_len"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

func defaultConfig() Config {
	return Config{
		Cache:  CacheConfig{Backend: "file", TTLHours: 24},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// defaultConfigPath returns ~/.config/pydex/config.toml (XDG-aware).
func defaultConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// loadConfig reads the TOML config at path, or the default location when
// path is empty. A missing file at the default location is not an error; an
// explicitly requested file must exist.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto the config. Environment wins
// over the file.
func (c *Config) applyEnv() {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		c.GitHub.Token = token
	}
	if url := os.Getenv("PYDEX_REDIS_URL"); url != "" {
		c.Cache.RedisURL = url
	}
	if dir := os.Getenv("PYDEX_CACHE_DIR"); dir != "" {
		c.Cache.Dir = dir
	}
}

// minerConfig converts the mining section into pipeline configuration,
// keeping pipeline defaults for unset fields.
func (c Config) minerConfig() readme.Config {
	mc := readme.DefaultConfig()
	if c.Mining.MinSnippetLen > 0 {
		mc.MinSnippetLen = c.Mining.MinSnippetLen
	}
	if c.Mining.MaxSnippetLen > 0 {
		mc.MaxSnippetLen = c.Mining.MaxSnippetLen
	}
	if c.Mining.IdealSnippetLen > 0 {
		mc.IdealSnippetLen = c.Mining.IdealSnippetLen
	}
	if c.Mining.MaxExamples > 0 {
		mc.MaxExamples = c.Mining.MaxExamples
	}
	return mc
}

func (c Config) cacheTTL() time.Duration {
	if c.Cache.TTLHours <= 0 {
		return metadata.DefaultCacheTTL
	}
	return time.Duration(c.Cache.TTLHours) * time.Hour
}

func (c Config) metadataOptions(logger *log.Logger) metadata.Options {
	return metadata.Options{
		CacheTTL:          c.cacheTTL(),
		GitHubToken:       c.GitHub.Token,
		MinDescriptionLen: c.Mining.MinDescriptionLen,
		Miner:             c.minerConfig(),
		Logger:            logger,
	}
}

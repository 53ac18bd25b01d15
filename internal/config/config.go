// Package config loads ghprofile settings from a YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/naka-gawa/ghprofile/internal/cache"
)

// Config holds all ghprofile configuration.
type Config struct {
	GitHub GitHubConfig `yaml:"github"`
	Server ServerConfig `yaml:"server"`
	Cache  CacheConfig  `yaml:"cache"`
}

// GitHubConfig configures the API gateway.
type GitHubConfig struct {
	Token         string `yaml:"token"`
	BaseURL       string `yaml:"base_url"`
	GraphQLURL    string `yaml:"graphql_url"`
	PerPage       int    `yaml:"per_page"`
	Timeout       string `yaml:"timeout"`
	Contributions bool   `yaml:"contributions"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// CacheConfig configures the profile cache used by the HTTP API.
type CacheConfig struct {
	Backend   string `yaml:"backend"` // none, memory, redis
	TTL       string `yaml:"ttl"`
	RedisAddr string `yaml:"redis_addr"`
	RedisDB   int    `yaml:"redis_db"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			PerPage: 100,
			Timeout: "30s",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: "10s",
		},
		Cache: CacheConfig{
			Backend: cache.BackendMemory,
			TTL:     "10m",
		},
	}
}

// DefaultPath returns ~/.config/ghprofile/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "ghprofile.yaml"
	}
	return filepath.Join(dir, "ghprofile", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment variables override file values in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	// GH_TOKEN wins over GITHUB_TOKEN, matching the gh CLI.
	if tok := strings.TrimSpace(os.Getenv("GITHUB_TOKEN")); tok != "" {
		c.GitHub.Token = tok
	}
	if tok := strings.TrimSpace(os.Getenv("GH_TOKEN")); tok != "" {
		c.GitHub.Token = tok
	}
	if addr := os.Getenv("GHPROFILE_REDIS_ADDR"); addr != "" {
		c.Cache.RedisAddr = addr
		c.Cache.Backend = cache.BackendRedis
	}
	if addr := os.Getenv("GHPROFILE_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
}

// GetTimeout returns the per-request GitHub timeout.
func (c *Config) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.GitHub.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// GetCacheTTL returns how long a cached profile stays fresh.
func (c *Config) GetCacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return 10 * time.Minute
	}
	return d
}

// GetShutdownTimeout returns how long the server waits for in-flight requests.
func (c *Config) GetShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// ValidBackends lists the supported cache backends.
var ValidBackends = []string{cache.BackendNone, cache.BackendMemory, cache.BackendRedis}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.GitHub.PerPage < 1 || c.GitHub.PerPage > 100 {
		return fmt.Errorf("github.per_page must be between 1 and 100, got %d", c.GitHub.PerPage)
	}

	validBackend := false
	for _, b := range ValidBackends {
		if strings.EqualFold(c.Cache.Backend, b) {
			validBackend = true
			break
		}
	}
	if !validBackend {
		return fmt.Errorf("invalid cache backend: %s (valid: %v)", c.Cache.Backend, ValidBackends)
	}
	if strings.EqualFold(c.Cache.Backend, cache.BackendRedis) && c.Cache.RedisAddr == "" {
		return fmt.Errorf("cache.redis_addr is required for the redis backend")
	}
	return nil
}

// CacheOptions converts the cache section for cache.New.
func (c *Config) CacheOptions() cache.Options {
	return cache.Options{
		Backend:   c.Cache.Backend,
		RedisAddr: c.Cache.RedisAddr,
		RedisDB:   c.Cache.RedisDB,
		Prefix:    "ghprofile:",
	}
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration. Every field has a default, so a
// missing file is not an error.
type Config struct {
	API        APIConfig        `yaml:"api"`
	Collection CollectionConfig `yaml:"collection"`
	Cache      CacheConfig      `yaml:"cache"`
	Cry        CryConfig        `yaml:"cry"`
	Theme      ThemeConfig      `yaml:"theme"`
	Log        LogConfig        `yaml:"log"`
}

// APIConfig holds PokeAPI client settings.
type APIConfig struct {
	BaseURL     string `yaml:"base_url"`    // API root, must end with /
	TimeoutMs   int    `yaml:"timeout_ms"`  // Per-request timeout
	Concurrency int    `yaml:"concurrency"` // Parallel detail fetches during the initial load
}

// CollectionConfig controls the initial load.
type CollectionConfig struct {
	Count int `yaml:"count"` // Records fetched at startup
}

// CacheConfig controls the persisted collection blob.
type CacheConfig struct {
	Enabled  bool `yaml:"enabled"`
	TTLHours int  `yaml:"ttl_hours"`
}

// CryConfig names the external audio player.
type CryConfig struct {
	Player string `yaml:"player"` // e.g. "mpv --really-quiet"; the cry URL is appended
}

// ThemeConfig sets the theme used when no preference has been saved.
type ThemeConfig struct {
	Default string `yaml:"default"` // dark or light
}

// LogConfig configures zap.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file path (overrides default)
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL:     "https://pokeapi.co/api/v2/",
			TimeoutMs:   15000,
			Concurrency: 8,
		},
		Collection: CollectionConfig{Count: 50},
		Cache:      CacheConfig{Enabled: true, TTLHours: 24},
		Theme:      ThemeConfig{Default: "dark"},
		Log:        LogConfig{Level: "info"},
	}
}

// Timeout returns the API timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutMs) * time.Millisecond
}

// CacheTTL returns the collection cache validity window.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLHours) * time.Hour
}

// Load reads the config file at path (or ConfigPath when empty) over the
// defaults, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML to path.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate rejects values the rest of the program cannot work with.
func (c Config) Validate() error {
	if c.Collection.Count <= 0 {
		return fmt.Errorf("collection.count must be positive, got %d", c.Collection.Count)
	}
	if c.API.Concurrency <= 0 {
		return fmt.Errorf("api.concurrency must be positive, got %d", c.API.Concurrency)
	}
	if c.API.TimeoutMs <= 0 {
		return fmt.Errorf("api.timeout_ms must be positive, got %d", c.API.TimeoutMs)
	}
	if c.Cache.Enabled && c.Cache.TTLHours <= 0 {
		return fmt.Errorf("cache.ttl_hours must be positive, got %d", c.Cache.TTLHours)
	}
	switch strings.ToLower(c.Theme.Default) {
	case "dark", "light":
	default:
		return fmt.Errorf("theme.default must be dark or light, got %q", c.Theme.Default)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("POKEDEX_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("POKEDEX_CRY_PLAYER"); v != "" {
		cfg.Cry.Player = v
	}
	if os.Getenv("POKEDEX_DEBUG") == "1" {
		cfg.Log.Level = "debug"
	}
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Config represents the mcpsync configuration.
type Config struct {
	Client     string      `json:"client"`
	GistAPIURL string      `json:"gistApiUrl,omitempty"`
	Format     string      `json:"format"`
	Cache      CacheConfig `json:"cache"`

	// Token is the Gist API bearer token. Environment-only, never persisted.
	Token string `json:"-"`
}

// CacheConfig controls download caching behavior.
type CacheConfig struct {
	Enabled       bool   `json:"enabled"`
	Dir           string `json:"dir,omitempty"`
	MaxAgeSeconds int    `json:"maxAgeSeconds"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Client:     "claude",
		GistAPIURL: "https://api.github.com",
		Format:     "text",
		Cache: CacheConfig{
			Enabled:       true,
			MaxAgeSeconds: 3600,
		},
	}
}

// ConfigDir returns the platform-appropriate config directory for mcpsync.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mcpsync"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "mcpsync"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "mcpsync"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "mcpsync"), nil
	default:
		return filepath.Join(home, ".config", "mcpsync"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Client != "" {
		dst.Client = src.Client
	}
	if src.GistAPIURL != "" {
		dst.GistAPIURL = src.GistAPIURL
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.Cache.Dir != "" {
		dst.Cache.Dir = src.Cache.Dir
	}
	if src.Cache.MaxAgeSeconds > 0 {
		dst.Cache.MaxAgeSeconds = src.Cache.MaxAgeSeconds
	}
	dst.Cache.Enabled = src.Cache.Enabled || dst.Cache.Enabled
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("MCPSYNC_CLIENT"); v != "" {
		cfg.Client = v
	}
	if v := os.Getenv("MCPSYNC_CACHE_DIR"); v != "" {
		cfg.Cache.Dir = v
	}
	if v := os.Getenv("MCPSYNC_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("GITHUB_API_URL"); v != "" {
		cfg.GistAPIURL = v
	}
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		cfg.Token = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["client"]; ok && v != "" {
		cfg.Client = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["cacheDir"]; ok && v != "" {
		cfg.Cache.Dir = v
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "client":
		cfg.Client = value
	case "gistApiUrl":
		cfg.GistAPIURL = value
	case "format":
		cfg.Format = value
	case "cache.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("cache.enabled must be a boolean: %w", err)
		}
		cfg.Cache.Enabled = b
	case "cache.dir":
		cfg.Cache.Dir = value
	case "cache.maxAgeSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("cache.maxAgeSeconds must be an integer: %w", err)
		}
		cfg.Cache.MaxAgeSeconds = n
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

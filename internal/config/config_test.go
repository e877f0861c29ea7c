package config

import (
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Client != "claude" {
		t.Errorf("Default client = %q, want %q", cfg.Client, "claude")
	}
	if cfg.GistAPIURL != "https://api.github.com" {
		t.Errorf("Default gistApiUrl = %q", cfg.GistAPIURL)
	}
	if cfg.Format != "text" {
		t.Errorf("Default format = %q, want %q", cfg.Format, "text")
	}
	if !cfg.Cache.Enabled {
		t.Error("Default cache should be enabled")
	}
	if cfg.Cache.MaxAgeSeconds != 3600 {
		t.Errorf("Default cache maxAgeSeconds = %d, want 3600", cfg.Cache.MaxAgeSeconds)
	}
}

func TestMergeEnv(t *testing.T) {
	t.Setenv("MCPSYNC_CLIENT", "cursor")
	t.Setenv("MCPSYNC_CACHE_DIR", "/tmp/mcpsync-cache")
	t.Setenv("MCPSYNC_FORMAT", "json")
	t.Setenv("GITHUB_API_URL", "https://github.example.com/api/v3")
	t.Setenv("GITHUB_TOKEN", "env-token")

	cfg := Default()
	mergeEnv(&cfg)

	if cfg.Client != "cursor" {
		t.Errorf("Client = %q, want %q", cfg.Client, "cursor")
	}
	if cfg.Cache.Dir != "/tmp/mcpsync-cache" {
		t.Errorf("Cache.Dir = %q", cfg.Cache.Dir)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want %q", cfg.Format, "json")
	}
	if cfg.GistAPIURL != "https://github.example.com/api/v3" {
		t.Errorf("GistAPIURL = %q", cfg.GistAPIURL)
	}
	if cfg.Token != "env-token" {
		t.Errorf("Token = %q, want %q", cfg.Token, "env-token")
	}
}

func TestMergeFile(t *testing.T) {
	dst := Default()
	src := Config{
		Client: "cursor",
		Cache:  CacheConfig{Dir: "/custom", MaxAgeSeconds: 600},
	}
	mergeFile(&dst, src)

	if dst.Client != "cursor" {
		t.Errorf("Client = %q, want %q", dst.Client, "cursor")
	}
	if dst.Cache.Dir != "/custom" {
		t.Errorf("Cache.Dir = %q, want %q", dst.Cache.Dir, "/custom")
	}
	if dst.Cache.MaxAgeSeconds != 600 {
		t.Errorf("Cache.MaxAgeSeconds = %d, want 600", dst.Cache.MaxAgeSeconds)
	}
	// Unset file fields keep defaults
	if dst.GistAPIURL != "https://api.github.com" {
		t.Errorf("GistAPIURL = %q", dst.GistAPIURL)
	}
}

func TestMergeOverrides(t *testing.T) {
	cfg := Default()
	mergeOverrides(&cfg, map[string]string{
		"client":   "cursor",
		"format":   "json",
		"cacheDir": "/override",
	})

	if cfg.Client != "cursor" {
		t.Errorf("Client = %q, want %q", cfg.Client, "cursor")
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want %q", cfg.Format, "json")
	}
	if cfg.Cache.Dir != "/override" {
		t.Errorf("Cache.Dir = %q, want %q", cfg.Cache.Dir, "/override")
	}
}

func TestSetField(t *testing.T) {
	cfg := Default()

	if err := SetField(&cfg, "client", "cursor"); err != nil {
		t.Fatalf("SetField error: %v", err)
	}
	if cfg.Client != "cursor" {
		t.Errorf("Client = %q, want %q", cfg.Client, "cursor")
	}

	if err := SetField(&cfg, "cache.enabled", "false"); err != nil {
		t.Fatalf("SetField error: %v", err)
	}
	if cfg.Cache.Enabled {
		t.Error("Cache.Enabled should be false")
	}

	if err := SetField(&cfg, "cache.maxAgeSeconds", "7200"); err != nil {
		t.Fatalf("SetField error: %v", err)
	}
	if cfg.Cache.MaxAgeSeconds != 7200 {
		t.Errorf("Cache.MaxAgeSeconds = %d, want 7200", cfg.Cache.MaxAgeSeconds)
	}

	if err := SetField(&cfg, "cache.maxAgeSeconds", "abc"); err == nil {
		t.Error("Expected error for non-integer maxAgeSeconds")
	}
	if err := SetField(&cfg, "nope", "x"); err == nil {
		t.Error("Expected error for unknown key")
	}
}

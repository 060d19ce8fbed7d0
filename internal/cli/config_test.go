package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `log_level = "warn"

[catalog]
backend = "redis"
url = "redis://localhost:6379/0"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.Catalog.Backend != BackendRedis {
		t.Errorf("Backend = %q, want %q", cfg.Catalog.Backend, BackendRedis)
	}
	if cfg.Catalog.URL != "redis://localhost:6379/0" {
		t.Errorf("URL = %q, want the configured redis URL", cfg.Catalog.URL)
	}
	if cfg.Catalog.Dir != "" {
		t.Errorf("Dir = %q, want empty", cfg.Catalog.Dir)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[catalog\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig should fail on malformed TOML")
	}
}

func TestLoadConfigOrDefaultMissingFile(t *testing.T) {
	cfg := LoadConfigOrDefault(filepath.Join(t.TempDir(), "nope.toml"))
	if cfg != (Config{}) {
		t.Errorf("missing file should yield zero config, got %+v", cfg)
	}
}

func TestConfigPathXDG(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	path, err := configPath()
	if err != nil {
		t.Fatalf("configPath() error: %v", err)
	}
	want := filepath.Join(tmp, appName, "config.toml")
	if path != want {
		t.Errorf("configPath() = %q, want %q", path, want)
	}
}

func TestConfigPathDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	path, err := configPath()
	if err != nil {
		t.Fatalf("configPath() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(path, home) {
		t.Errorf("configPath() = %q, should be under home %q", path, home)
	}
	if !strings.Contains(path, ".config") {
		t.Errorf("configPath() = %q, should contain '.config'", path)
	}
	if !strings.HasSuffix(path, "config.toml") {
		t.Errorf("configPath() = %q, should end with 'config.toml'", path)
	}
}

func TestCatalogDirXDG(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	dir, err := catalogDir()
	if err != nil {
		t.Fatalf("catalogDir() error: %v", err)
	}
	want := filepath.Join(tmp, appName, "catalog")
	if dir != want {
		t.Errorf("catalogDir() = %q, want %q", dir, want)
	}
}

func TestCatalogDirDefault(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")

	dir, err := catalogDir()
	if err != nil {
		t.Fatalf("catalogDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".local", "share", appName, "catalog")
	if dir != expected {
		t.Errorf("catalogDir() = %q, want %q", dir, expected)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func withTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "vitadash")
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	withTempConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DaysBefore != 2 || cfg.General.DaysAfter != 2 {
		t.Fatalf("default window = %d/%d, want 2/2", cfg.General.DaysBefore, cfg.General.DaysAfter)
	}
	if cfg.Store.Backend != "rest" {
		t.Fatalf("default backend = %q, want rest", cfg.Store.Backend)
	}
	if cfg.Appearance.Theme != "dark" {
		t.Fatalf("default theme = %q, want dark", cfg.Appearance.Theme)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	withTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.General.User = "491701234"
	cfg.Store.BaseURL = "https://records.example.com"
	cfg.Store.APIKey = "secret"
	cfg.Appearance.Theme = "light"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.General.User != "491701234" {
		t.Fatalf("user = %q", loaded.General.User)
	}
	if loaded.Store.BaseURL != "https://records.example.com" {
		t.Fatalf("base_url = %q", loaded.Store.BaseURL)
	}
	if loaded.Appearance.Theme != "light" {
		t.Fatalf("theme = %q", loaded.Appearance.Theme)
	}
}

func TestGetAPIKeyPrefersEnv(t *testing.T) {
	withTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.Store.APIKey = "from-config"

	t.Setenv("VITADASH_API_KEY", "from-env")
	if got := GetAPIKey(cfg); got != "from-env" {
		t.Fatalf("GetAPIKey = %q, want env value", got)
	}

	os.Unsetenv("VITADASH_API_KEY")
	if got := GetAPIKey(cfg); got != "from-config" {
		t.Fatalf("GetAPIKey = %q, want config value", got)
	}
}

package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig(absent) error = %v", err)
	}
	if cfg.Currency != "USD" || cfg.DripYears != 5 || !cfg.DripEnabled() {
		t.Errorf("defaults = %+v, want USD/5/drip on", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dcast.yaml")
	content := "currency: GBP\ndrip: false\ndrip_years: 10\neodhd_api_key: demo\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Currency != "GBP" {
		t.Errorf("Currency = %q, want GBP", cfg.Currency)
	}
	if cfg.DripEnabled() {
		t.Error("DripEnabled() = true, want false")
	}
	if cfg.DripYears != 10 {
		t.Errorf("DripYears = %d, want 10", cfg.DripYears)
	}
	if cfg.EodhdAPIKey != "demo" {
		t.Errorf("EodhdAPIKey = %q, want demo", cfg.EodhdAPIKey)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dcast.yaml")
	if err := os.WriteFile(path, []byte("currency: EUR\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", cfg.Currency)
	}
	// unset keys keep their defaults
	if cfg.DripYears != 5 || !cfg.DripEnabled() {
		t.Errorf("partial config lost defaults: %+v", cfg)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dcast.yaml")
	if err := os.WriteFile(path, []byte("currency: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig(invalid) = nil, want parse error")
	}
}

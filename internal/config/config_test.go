package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "exclude_alpha_tokens: true\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.ExcludeAlphaTokens {
		t.Error("expected exclude_alpha_tokens to be set")
	}
	if cfg.DayCutoffHour != 8 {
		t.Errorf("expected default cutoff hour 8, got %d", cfg.DayCutoffHour)
	}
	if cfg.FeeRate != 0.0001 {
		t.Errorf("expected default fee rate 0.0001, got %g", cfg.FeeRate)
	}
	if cfg.Scrape.MaxPages != 1000 {
		t.Errorf("expected default max pages 1000, got %d", cfg.Scrape.MaxPages)
	}
	if cfg.Export.Dir != "exports" {
		t.Errorf("expected default export dir 'exports', got %q", cfg.Export.Dir)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	cases := map[string]string{
		"bad cutoff":   "day_cutoff_hour: 25\n",
		"bad fee":      "fee_rate: 1.5\n",
		"bad timezone": "timezone: Mars/Olympus\n",
	}
	for name, body := range cases {
		if _, err := LoadConfig(writeConfig(t, body)); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
	if cfg.Location() == nil {
		t.Error("expected a resolvable location")
	}
}

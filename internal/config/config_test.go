package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestModuleEnabled(t *testing.T) {
	var nilCfg *Config
	if !nilCfg.ModuleEnabled("search") {
		t.Error("nil config should enable every module")
	}

	cfg := &Config{}
	if !cfg.ModuleEnabled("search") {
		t.Error("nil modules map should enable every module")
	}

	cfg.Modules = map[string]Module{
		"search":    {Enabled: false},
		"inflation": {Enabled: true},
	}
	if cfg.ModuleEnabled("search") {
		t.Error("explicitly disabled module reported enabled")
	}
	if !cfg.ModuleEnabled("inflation") {
		t.Error("explicitly enabled module reported disabled")
	}
	if !cfg.ModuleEnabled("historical") {
		t.Error("module absent from the mapping should stay enabled")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Currency != DefaultCurrency {
		t.Errorf("Currency = %q, want %q", cfg.Currency, DefaultCurrency)
	}
	if len(cfg.Modules) != len(ModuleNames) {
		t.Errorf("Modules = %d, want %d", len(cfg.Modules), len(ModuleNames))
	}
	for _, name := range ModuleNames {
		if !cfg.ModuleEnabled(name) {
			t.Errorf("module %q disabled by default", name)
		}
	}
	if cfg.Output.Width != DefaultOutput.Width {
		t.Errorf("Output = %+v", cfg.Output)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Currency != DefaultCurrency {
		t.Errorf("Currency = %q", cfg.Currency)
	}
	for _, name := range ModuleNames {
		if !cfg.ModuleEnabled(name) {
			t.Errorf("module %q should default to enabled", name)
		}
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"currency": "USD",
		"seed": 42,
		"modules": {
			"inflation": {"enabled": false}
		},
		"output": {"color": false, "width": 120}
	}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", cfg.Currency)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.ModuleEnabled("inflation") {
		t.Error("inflation disabled in file but reported enabled")
	}
	if !cfg.ModuleEnabled("search") {
		t.Error("search not mentioned in file, should stay enabled")
	}
	if cfg.Output.Width != 120 || cfg.Output.Color {
		t.Errorf("Output = %+v", cfg.Output)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandPath("~/x.json"); got != filepath.Join(home, "x.json") {
		t.Errorf("expandPath = %q", got)
	}
	if got := expandPath("/abs/x.json"); got != "/abs/x.json" {
		t.Errorf("absolute path changed: %q", got)
	}
}

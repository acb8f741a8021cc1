package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWritesDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Alias.Name != "filipec" {
		t.Fatalf("default alias name = %q", cfg.Alias.Name)
	}
	if cfg.REPL.Prompt != ">> " {
		t.Fatalf("default prompt = %q", cfg.REPL.Prompt)
	}
	if !cfg.History.Enabled || cfg.History.MaxEntries != 1000 {
		t.Fatalf("default history settings = %+v", cfg.History)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("defaults not persisted: %v", err)
	}
}

func TestLoadHydratesPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "alias:\n  script_path: /opt/filipeX/scripts/filipec\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Alias.ScriptPath != "/opt/filipeX/scripts/filipec" {
		t.Fatalf("script path = %q", cfg.Alias.ScriptPath)
	}
	if cfg.Alias.Name != "filipec" || cfg.REPL.Prompt != ">> " {
		t.Fatalf("hydration missed defaults: %+v", cfg)
	}
}

func TestLoadHonorsEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	raw := "alias:\n  name: fx\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("seed config: %v", err)
	}
	t.Setenv("FILIPEC_CONFIG", path)

	cfg, err := NewFileLoader("").Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Alias.Name != "fx" {
		t.Fatalf("alias name = %q, want fx", cfg.Alias.Name)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("alias: [broken"), 0o600); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("expected parse error")
	}
}

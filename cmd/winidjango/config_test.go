package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCLIConfigDefaultsAndOverrides(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "config.toml")
	content := `
section = "winirig"
manifest = "projects/app/pyproject.toml"
output = "fragment.toml"
	`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadCLIConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Section != "winirig" {
		t.Fatalf("unexpected section: %q", cfg.Section)
	}
	if cfg.Manifest != "projects/app/pyproject.toml" {
		t.Fatalf("unexpected manifest: %q", cfg.Manifest)
	}
	if cfg.Output != "fragment.toml" {
		t.Fatalf("unexpected output: %q", cfg.Output)
	}
}

func TestLoadCLIConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("output = \"out.toml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadCLIConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Section != "rig" {
		t.Fatalf("unexpected section default: %q", cfg.Section)
	}
	if cfg.Manifest != "pyproject.toml" {
		t.Fatalf("unexpected manifest default: %q", cfg.Manifest)
	}
	if cfg.Output != "out.toml" {
		t.Fatalf("unexpected output: %q", cfg.Output)
	}
}

func TestLoadCLIConfigMissingFile(t *testing.T) {
	if _, err := loadCLIConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

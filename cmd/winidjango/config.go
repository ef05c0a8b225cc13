package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// cliConfig holds the resolved command configuration.
type cliConfig struct {
	Section  string
	Manifest string
	Output   string
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		Section:  "rig",
		Manifest: "pyproject.toml",
	}
}

// winidjango config.toml key mapping to command settings.
type fileConfig struct {
	Section  string `toml:"section"`
	Manifest string `toml:"manifest"`
	Output   string `toml:"output"`
}

func loadCLIConfig(path string) (cliConfig, error) {
	cfg := defaultCLIConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cliConfig{}, fmt.Errorf("load winidjango config: %w", err)
	}

	if meta.IsDefined("section") {
		section := strings.TrimSpace(raw.Section)
		if section != "" {
			cfg.Section = section
		}
	}

	if meta.IsDefined("manifest") {
		manifest := strings.TrimSpace(raw.Manifest)
		if manifest != "" {
			cfg.Manifest = manifest
		}
	}

	if meta.IsDefined("output") {
		cfg.Output = strings.TrimSpace(raw.Output)
	}

	return cfg, nil
}

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/Winipedia/winidjango/internal/django"
	"github.com/Winipedia/winidjango/internal/logging"
	"github.com/Winipedia/winidjango/internal/pyproject"
	"github.com/Winipedia/winidjango/internal/rig"
)

func main() {
	logging.ConfigureRuntime()

	configPath := flag.String("config", "", "optional command config file")
	section := flag.String("section", "", "manifest section name")
	output := flag.String("output", "", "output path for the generated fragment (default stdout)")
	validate := flag.Bool("validate", false, "validate an existing manifest instead of generating")
	input := flag.String("input", "", "manifest path for validation")
	force := flag.Bool("force", false, "overwrite an existing output file")
	flag.Parse()

	cfg := defaultCLIConfig()
	if *configPath != "" {
		loaded, err := loadCLIConfig(*configPath)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
	}
	if *section != "" {
		cfg.Section = *section
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *input != "" {
		cfg.Manifest = *input
	}

	if err := run(cfg, *validate, *force); err != nil {
		fatal(err)
	}
}

func run(cfg cliConfig, validate, force bool) error {
	registry := rig.NewRegistry()
	if err := django.RegisterInto(registry); err != nil {
		return err
	}
	res, err := registry.Resolve()
	if err != nil {
		return err
	}

	if validate {
		m, err := pyproject.ReadManifest(cfg.Manifest)
		if err != nil {
			return err
		}
		if err := rig.ValidateManifest(m, cfg.Section, res); err != nil {
			return err
		}
		log.Info().Str("manifest", cfg.Manifest).Str("section", cfg.Section).Msg("manifest up to date")
		return nil
	}

	data, err := res.RenderFragment(cfg.Section)
	if err != nil {
		return err
	}
	if cfg.Output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if !force {
		if _, err := os.Stat(cfg.Output); err == nil {
			return fmt.Errorf("output already exists: %s", cfg.Output)
		}
	}
	if err := os.WriteFile(cfg.Output, data, 0o600); err != nil {
		return err
	}
	log.Info().Str("output", cfg.Output).Str("section", cfg.Section).Msg("wrote manifest fragment")
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "winidjango: %v\n", err)
	os.Exit(1)
}

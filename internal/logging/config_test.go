package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		raw   string
		level zerolog.Level
		ok    bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, true},
		{" WARN ", zerolog.WarnLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"bogus", zerolog.InfoLevel, false},
	}
	for _, tc := range cases {
		level, ok := parseLevel(tc.raw)
		if level != tc.level || ok != tc.ok {
			t.Fatalf("parseLevel(%q) = %v,%v want %v,%v", tc.raw, level, ok, tc.level, tc.ok)
		}
	}
}

func TestParseBool(t *testing.T) {
	cases := []struct {
		raw string
		v   bool
		ok  bool
	}{
		{"", false, false},
		{"true", true, true},
		{" 1 ", true, true},
		{"false", false, true},
		{"maybe", false, false},
	}
	for _, tc := range cases {
		v, ok := parseBool(tc.raw)
		if v != tc.v || ok != tc.ok {
			t.Fatalf("parseBool(%q) = %v,%v want %v,%v", tc.raw, v, ok, tc.v, tc.ok)
		}
	}
}

func TestDefaultConfigPerProfile(t *testing.T) {
	runtime := defaultConfig(ProfileRuntime)
	if runtime.Level != zerolog.InfoLevel || !runtime.Timestamp {
		t.Fatalf("unexpected runtime config: %+v", runtime)
	}
	test := defaultConfig(ProfileTest)
	if test.Level != zerolog.DebugLevel || test.Timestamp {
		t.Fatalf("unexpected test config: %+v", test)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "true")

	cfg := defaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)
	if cfg.Level != zerolog.ErrorLevel || cfg.Timestamp || !cfg.NoColor {
		t.Fatalf("unexpected config after overrides: %+v", cfg)
	}
}

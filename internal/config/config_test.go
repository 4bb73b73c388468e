package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults drifted:\n got %+v\nwant %+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "ball:\n  move_duration: 0s\nsession:\n  timer: strict\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Ball.MoveDuration != 0 {
		t.Errorf("expected instant moves, got %s", cfg.Ball.MoveDuration)
	}
	if cfg.Session.Timer != TimerStrict {
		t.Errorf("expected strict timer, got %s", cfg.Session.Timer)
	}
	// Unset keys keep their defaults.
	if cfg.Analyzer.MaxStates != 120000 || cfg.Session.WinDelay != 500*time.Millisecond {
		t.Errorf("expected defaults for unset keys, got %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(bad, []byte("ball: [oops"), 0o600)
	os.WriteFile(invalid, []byte("pool:\n  prewarm: -1\n"), 0o600)

	testCases := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read config"},
		{"bad yaml", bad, "failed to parse config"},
		{"invalid value", invalid, "pool.prewarm"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative move", func(c *Config) { c.Ball.MoveDuration = -time.Second }, "ball.move_duration"},
		{"negative delay", func(c *Config) { c.Session.WinDelay = -1 }, "session.win_delay"},
		{"negative time", func(c *Config) { c.Session.DefaultLevelTime = -1 }, "default_level_time"},
		{"unknown timer", func(c *Config) { c.Session.Timer = "turbo" }, "session.timer"},
		{"negative states", func(c *Config) { c.Analyzer.MaxStates = -1 }, "analyzer.max_states"},
		{"unknown theme", func(c *Config) { c.UI.Theme = "sepia" }, "ui.theme"},
		{"negative swipe", func(c *Config) { c.UI.SwipeDistance = -1 }, "swipe"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLevelTime(t *testing.T) {
	testCases := []struct {
		preset   TimerPreset
		level    int
		expected time.Duration
	}{
		{TimerNormal, 40, 40 * time.Second},
		{TimerNormal, 0, 60 * time.Second},
		{TimerStrict, 40, 30 * time.Second},
		{TimerRelaxed, 40, 0},
	}

	for _, tc := range testCases {
		cfg := DefaultConfig()
		cfg.Session.Timer = tc.preset
		if got := cfg.LevelTime(tc.level); got != tc.expected {
			t.Errorf("%s/%d: expected %s, got %s", tc.preset, tc.level, tc.expected, got)
		}
	}
}

func TestParseTimerPreset(t *testing.T) {
	if p, ok := ParseTimerPreset("relaxed"); !ok || p != TimerRelaxed {
		t.Errorf("expected relaxed, got %s/%v", p, ok)
	}
	if p, ok := ParseTimerPreset("bogus"); ok || p != TimerNormal {
		t.Errorf("expected fallback to normal, got %s/%v", p, ok)
	}
}

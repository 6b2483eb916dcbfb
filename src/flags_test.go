package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"lifegrid/src/config"
)

func parse(t *testing.T, args ...string) *EnvOptions {
	t.Helper()
	eo := newEnvOptions()
	if err := newParser(eo).ParseArgs(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return eo
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigFileForms(t *testing.T) {
	path := writeConfig(t, `{"width": 16, "height": 8, "max_steps": 7, "interval": "20ms"}`)
	for _, args := range [][]string{
		{"-c", path},
		{"--config", path},
		{"--config=" + path},
	} {
		cfg, err := parse(t, args...).config()
		if err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		if cfg.Width != 16 || cfg.Height != 8 || cfg.MaxSteps != 7 || cfg.Interval != 20*time.Millisecond {
			t.Errorf("%v: config = %+v", args, cfg)
		}
	}
}

func TestFlagsOverrideOnlyWhenGiven(t *testing.T) {
	path := writeConfig(t, `{"width": 16, "height": 8, "max_steps": 7, "workers": 3, "template": "block"}`)
	cfg, err := parse(t, "--config="+path, "--width", "32", "-s", "0", "--blank").config()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 32 || cfg.MaxSteps != 0 || cfg.Pattern {
		t.Errorf("given flags not applied: %+v", cfg)
	}
	if cfg.Height != 8 || cfg.Workers != 3 || cfg.Template != "block" {
		t.Errorf("config values lost: %+v", cfg)
	}
}

func TestFlagsWithoutConfig(t *testing.T) {
	cfg, err := parse(t).config()
	if err != nil {
		t.Fatal(err)
	}
	if cfg != config.DefaultConfig() {
		t.Errorf("no flags: %+v, want defaults", cfg)
	}

	if _, err := parse(t, "-y", "0").config(); err == nil {
		t.Error("zero height accepted")
	}

	eo := newEnvOptions()
	eo.width = -4
	var cfg2 config.Config
	if err := eo.apply(&cfg2); err == nil {
		t.Error("negative width accepted")
	}
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/speclab/rspeclint/internal/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := Default()
	if cfg.EnforcedStyle != model.StyleSymbolic {
		t.Errorf("default style = %s, want symbolic", cfg.EnforcedStyle)
	}
	if len(cfg.Exclude) != 0 {
		t.Errorf("default exclude = %v, want empty", cfg.Exclude)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "enforced_style: numeric\nexclude:\n  - \"spec/fixtures/**\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EnforcedStyle != model.StyleNumeric {
		t.Errorf("style = %s, want numeric", cfg.EnforcedStyle)
	}
	if len(cfg.Exclude) != 1 || cfg.Exclude[0] != "spec/fixtures/**" {
		t.Errorf("exclude = %v", cfg.Exclude)
	}
}

func TestLoadPartial(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "exclude: []\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EnforcedStyle != model.StyleSymbolic {
		t.Errorf("style = %s, want symbolic default", cfg.EnforcedStyle)
	}
}

func TestLoadUnknownStyle(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "enforced_style: fancy\n")

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "unknown enforced style") {
		t.Errorf("err = %v, want unknown enforced style", err)
	}
}

func TestLoadInvalidPattern(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "exclude:\n  - \"spec/[\"\n")

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "invalid exclude pattern") {
		t.Errorf("err = %v, want invalid exclude pattern", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	if !os.IsNotExist(err) {
		t.Errorf("err = %v, want not-exist", err)
	}
}

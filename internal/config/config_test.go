package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TEAKIT_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !strings.HasSuffix(cfg.Store.Path, filepath.Join("teakit", "recollections.db")) {
		t.Errorf("store path = %q, want default location", cfg.Store.Path)
	}
	if cfg.UI.AccentColor != "#89b4fa" {
		t.Errorf("accent = %q, want default", cfg.UI.AccentColor)
	}
	if !cfg.UI.RememberLayout {
		t.Error("remember_layout should default to true")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[store]
path = "/tmp/elsewhere.db"

[ui]
accent_color = "#a6e3a1"
remember_layout = false
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TEAKIT_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.Path != "/tmp/elsewhere.db" {
		t.Errorf("store path = %q, want file value", cfg.Store.Path)
	}
	if cfg.UI.AccentColor != "#a6e3a1" {
		t.Errorf("accent = %q, want file value", cfg.UI.AccentColor)
	}
	if cfg.UI.RememberLayout {
		t.Error("remember_layout should come from file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("TEAKIT_CONFIG", path)

	want := Config{
		Store: StoreConfig{Path: "/tmp/rt.db"},
		UI:    UIConfig{AccentColor: "#f38ba8", RememberLayout: true},
	}
	if err := Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

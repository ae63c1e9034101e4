// ABOUTME: Tests for config loading, saving, and path handling.
// ABOUTME: Uses XDG_CONFIG_HOME overrides to keep everything in temp dirs.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingConfigIsEmpty(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataDir != "" || cfg.Username != "" {
		t.Errorf("Load() = %+v, want zero config", cfg)
	}
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{DataDir: "/tmp/liftlog-data", Username: "aggelos"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.DataDir != cfg.DataDir || loaded.Username != cfg.Username {
		t.Errorf("Load() = %+v, want %+v", loaded, cfg)
	}
}

func TestGetConfigPathHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	want := filepath.Join(dir, "liftlog", "config.json")
	if got := GetConfigPath(); got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/liftlog", filepath.Join(home, "liftlog")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpenStorageUsesDataDir(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{DataDir: dir}

	db, err := cfg.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage() error = %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Join(dir, "liftlog.db")); err != nil {
		t.Errorf("database not created in configured dir: %v", err)
	}
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := &Config{
		TableWidth:   60,
		Arrangement:  "column-major",
		ValueType:    "float",
		OutputFormat: "json",
		ErrorFormat:  "yaml",
	}

	if err := want.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("config permissions = %o, want 600", perm)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	badYAML := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badYAML, []byte("table_width: [oops"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(badYAML); err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("expected parsing error, got %v", err)
	}

	negative := filepath.Join(dir, "negative.yaml")
	if err := os.WriteFile(negative, []byte("table_width: -3\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(negative); err == nil {
		t.Error("expected error for negative table_width")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join(".config", "plotter", "config.yaml")) {
		t.Errorf("unexpected path %q", path)
	}
}

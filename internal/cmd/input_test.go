package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadInputSourceStdin(t *testing.T) {
	data, err := readInputSource("-", strings.NewReader("[1, 2]\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "[1, 2]\n" {
		t.Errorf("got %q", data)
	}
}

func TestReadInputSourceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.json")
	if err := os.WriteFile(path, []byte(`[3]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := readInputSource("  "+path+"  ", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "[3]" {
		t.Errorf("got %q", data)
	}
}

func TestReadInputSourceErrors(t *testing.T) {
	if _, err := readInputSource("   ", nil); err == nil || err.Error() != "empty input source" {
		t.Errorf("expected empty input source error, got %v", err)
	}

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := readInputSource(missing, nil)
	if err == nil || !strings.HasPrefix(err.Error(), "failed to read "+missing) {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestInputHasData(t *testing.T) {
	if !inputHasData(&bytes.Buffer{}) {
		t.Error("non-file readers should be treated as having data")
	}

	path := filepath.Join(t.TempDir(), "values.json")
	if err := os.WriteFile(path, []byte(`[1]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	if !inputHasData(f) {
		t.Error("regular files should be treated as having data")
	}
}

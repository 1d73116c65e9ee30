package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestChecksum(t *testing.T) {
	got, err := Checksum(strings.NewReader("hello world"))
	if err != nil {
		t.Fatalf("Checksum failed: %v", err)
	}
	if got != "5eb63bbbe01eeed093cb22bb8f5acdc3" {
		t.Errorf("Checksum = %q", got)
	}
}

func TestFileChecksum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte("hello world"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := FileChecksum(path)
	if err != nil {
		t.Fatalf("FileChecksum failed: %v", err)
	}
	if got != "5eb63bbbe01eeed093cb22bb8f5acdc3" {
		t.Errorf("FileChecksum = %q", got)
	}
	if _, err := FileChecksum(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("missing file should be an error")
	}
}

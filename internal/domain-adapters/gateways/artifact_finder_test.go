package gateways

import (
	"os"
	"path/filepath"
	"testing"
)

func TestArtifactFinder_FindRecursive(t *testing.T) {
	tmpDir := t.TempDir()

	// Artifacts spread across nested per-platform directories, the way
	// a download step leaves them
	files := []string{
		"linux/Xray-linux-amd64.zip",
		"linux/Xray-linux-amd64.zip.dgst",
		"linux/Xray-linux-armv7.zip",
		"windows/Xray-windows-386.zip",
		"windows/notes.txt",
		"kubectl-1.28.0-linux-amd64.tar.gz",
		"Xray-sources.tar.gz",
	}
	for _, f := range files {
		path := filepath.Join(tmpDir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			t.Fatalf("Failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
			t.Fatalf("Failed to create file: %v", err)
		}
	}

	finder := NewArtifactFinder()
	artifacts, err := finder.FindRecursive(tmpDir)
	if err != nil {
		t.Fatalf("FindRecursive() error = %v", err)
	}

	if len(artifacts) != 4 {
		t.Errorf("FindRecursive() found %d artifacts, want 4: %v", len(artifacts), artifacts)
	}

	for _, a := range artifacts {
		base := filepath.Base(a)
		switch base {
		case "Xray-linux-amd64.zip", "Xray-linux-amd64.zip.dgst",
			"Xray-linux-armv7.zip", "Xray-windows-386.zip":
		default:
			t.Errorf("FindRecursive() picked up unexpected file %s", base)
		}
	}
}

func TestArtifactFinder_FindRecursive_MissingDir(t *testing.T) {
	finder := NewArtifactFinder()
	_, err := finder.FindRecursive(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Error("FindRecursive() should fail for missing directory")
	}
}

func TestArtifactFinder_FindByGlob(t *testing.T) {
	tmpDir := t.TempDir()

	files := []string{
		"Xray-darwin-arm64.zip",
		"Xray-darwin-arm64.zip.dgst",
		"Xray-darwin-arm64.zip.asc",
		"unrelated.zip",
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(tmpDir, f), []byte("x"), 0600); err != nil {
			t.Fatalf("Failed to create file: %v", err)
		}
	}

	finder := NewArtifactFinder()
	artifacts, err := finder.FindByGlob(tmpDir)
	if err != nil {
		t.Fatalf("FindByGlob() error = %v", err)
	}

	if len(artifacts) != 2 {
		t.Errorf("FindByGlob() found %d artifacts, want 2: %v", len(artifacts), artifacts)
	}
}

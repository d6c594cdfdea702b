package yaml

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestMatrixRepository_Load(t *testing.T) {
	tmpDir := t.TempDir()
	matrixPath := filepath.Join(tmpDir, "release.yml")

	content := []byte(`project: Xray
targets:
  - os: linux
    arch: amd64
  - os: linux
    arm: "7"
`)
	if err := os.WriteFile(matrixPath, content, 0600); err != nil {
		t.Fatalf("Failed to write matrix file: %v", err)
	}

	repo := NewMatrixRepository(matrixPath)
	matrix, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(matrix.Targets) != 2 {
		t.Errorf("Targets count = %d, want 2", len(matrix.Targets))
	}
}

func TestMatrixRepository_Load_NotFound(t *testing.T) {
	repo := NewMatrixRepository(filepath.Join(t.TempDir(), "missing.yml"))

	_, err := repo.Load(context.Background())
	if err == nil {
		t.Error("Load() should return error for missing matrix file")
	}
}

func TestMatrixRepository_Load_DuplicateAssetNames(t *testing.T) {
	tmpDir := t.TempDir()
	matrixPath := filepath.Join(tmpDir, "release.yml")

	// Two ARM targets with the same version collapse to one asset name
	content := []byte(`targets:
  - os: linux
    arch: arm
    arm: "7"
  - os: linux
    arch: arm64
    arm: "7"
`)
	if err := os.WriteFile(matrixPath, content, 0600); err != nil {
		t.Fatalf("Failed to write matrix file: %v", err)
	}

	repo := NewMatrixRepository(matrixPath)
	_, err := repo.Load(context.Background())
	if err == nil {
		t.Error("Load() should reject matrices with duplicate asset names")
	}
}

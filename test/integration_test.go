package test_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/xtls/xrelease/internal/domain-adapters/gateways"
	"github.com/xtls/xrelease/internal/domain/services"
	"github.com/xtls/xrelease/internal/external-adapters/yaml"
)

// TestEndToEnd_ReleasePipeline drives the full in-process flow a CI release
// job runs: load the matrix, lay out artifacts, generate digest companions,
// discover everything, and validate coverage.
func TestEndToEnd_ReleasePipeline(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	matrixPath := filepath.Join(tmpDir, "release.yml")
	matrixYAML := []byte(`project: Xray
targets:
  - os: linux
    arch: amd64
  - os: linux
    arm: "7"
  - os: linux
    arch: mips32le
    variant: softfloat
`)
	if err := os.WriteFile(matrixPath, matrixYAML, 0600); err != nil {
		t.Fatalf("Failed to write matrix: %v", err)
	}

	matrix, err := yaml.NewMatrixRepository(matrixPath).Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Lay out one archive per target, nested the way a download step leaves them
	distDir := filepath.Join(tmpDir, "dist")
	digester := gateways.NewDigester()
	for _, target := range matrix.Targets {
		name := services.TargetAssetName(target)
		dir := filepath.Join(distDir, name)
		if err := os.MkdirAll(dir, 0750); err != nil {
			t.Fatalf("Failed to create dir: %v", err)
		}

		archive := filepath.Join(dir, name+services.ArchiveExt)
		if err := os.WriteFile(archive, []byte("payload for "+name), 0600); err != nil {
			t.Fatalf("Failed to write archive: %v", err)
		}

		digestPath, err := digester.WriteDigest(ctx, archive)
		if err != nil {
			t.Fatalf("WriteDigest() error = %v", err)
		}
		if err := digester.CheckDigest(ctx, archive, digestPath); err != nil {
			t.Fatalf("CheckDigest() error = %v", err)
		}
	}

	artifacts, err := gateways.NewArtifactFinder().FindRecursive(distDir)
	if err != nil {
		t.Fatalf("FindRecursive() error = %v", err)
	}
	if len(artifacts) != 2*len(matrix.Targets) {
		t.Fatalf("Found %d artifacts, want %d", len(artifacts), 2*len(matrix.Targets))
	}

	validation := services.NewReleaseService().ValidateRelease(matrix, artifacts)
	if !validation.IsReady() {
		t.Fatalf("ValidateRelease() status = %v: %s", validation.Status, validation.ErrorMessage())
	}

	// Dropping one digest companion flips the release to not-ready
	victim := services.TargetAssetName(matrix.Targets[0])
	digestFile := filepath.Join(distDir, victim, victim+services.ArchiveExt+services.DigestExt)
	if err := os.Remove(digestFile); err != nil {
		t.Fatalf("Failed to remove digest: %v", err)
	}

	artifacts, err = gateways.NewArtifactFinder().FindRecursive(distDir)
	if err != nil {
		t.Fatalf("FindRecursive() error = %v", err)
	}

	validation = services.NewReleaseService().ValidateRelease(matrix, artifacts)
	if validation.Status != services.StatusMissingDigests {
		t.Errorf("Status = %v, want %v", validation.Status, services.StatusMissingDigests)
	}
}

// Package gateways provides filesystem-facing adapters for release tooling.
package gateways

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xtls/xrelease/internal/domain/services"
)

// ArtifactFinder provides utilities for locating release artifacts
type ArtifactFinder struct{}

// NewArtifactFinder creates a new artifact finder
func NewArtifactFinder() *ArtifactFinder {
	return &ArtifactFinder{}
}

// FindRecursive searches recursively for release artifacts.
// Finds: .zip archives and their .zip.dgst companions carrying the
// release name prefix.
func (f *ArtifactFinder) FindRecursive(artifactsDir string) ([]string, error) {
	// Check if directory exists
	if _, err := os.Stat(artifactsDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("artifacts directory does not exist: %s", artifactsDir)
	}

	var artifacts []string

	err := filepath.Walk(artifactsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		basename := filepath.Base(path)
		if !strings.HasPrefix(basename, services.AssetPrefix+"-") {
			return nil
		}

		if strings.HasSuffix(basename, services.ArchiveExt) ||
			strings.HasSuffix(basename, services.ArchiveExt+services.DigestExt) {
			artifacts = append(artifacts, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return artifacts, nil
}

// FindByGlob searches the top level of binariesDir for release artifacts
func (f *ArtifactFinder) FindByGlob(binariesDir string) ([]string, error) {
	var artifacts []string

	patterns := []string{
		fmt.Sprintf("%s-*%s", services.AssetPrefix, services.ArchiveExt),
		fmt.Sprintf("%s-*%s%s", services.AssetPrefix, services.ArchiveExt, services.DigestExt),
	}

	for _, pattern := range patterns {
		fullPattern := filepath.Join(binariesDir, pattern)
		matches, err := filepath.Glob(fullPattern)
		if err != nil {
			return nil, fmt.Errorf("failed to glob pattern %s: %w", pattern, err)
		}
		artifacts = append(artifacts, matches...)
	}

	return artifacts, nil
}

package services

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xtls/xrelease/internal/domain/entities"
)

// ReleaseStatus represents the readiness status of a release
type ReleaseStatus string

// Release validation statuses
const (
	StatusReady            ReleaseStatus = "ready"
	StatusNoAssets         ReleaseStatus = "no_assets"
	StatusCoverageMismatch ReleaseStatus = "coverage_mismatch"
	StatusUnexpectedAssets ReleaseStatus = "unexpected_assets"
	StatusMissingDigests   ReleaseStatus = "missing_digests"
)

// ReleaseValidation contains the validation result for a release
type ReleaseValidation struct {
	Status           ReleaseStatus
	ExpectedAssets   []string
	AvailableAssets  []string
	MissingAssets    []string
	UnexpectedAssets []string
	MissingDigests   []string
	ExpectedCount    int
	AvailableCount   int
}

// IsReady returns true if the release has full platform coverage
func (rv *ReleaseValidation) IsReady() bool {
	return rv.Status == StatusReady
}

// ErrorMessage returns a human-readable error message if not ready
func (rv *ReleaseValidation) ErrorMessage() string {
	switch rv.Status {
	case StatusReady:
		return ""
	case StatusNoAssets:
		return fmt.Sprintf("No assets found (expected: %d targets)", rv.ExpectedCount)
	case StatusCoverageMismatch:
		msg := fmt.Sprintf("Asset count mismatch (expected: %d, have: %d)", rv.ExpectedCount, rv.AvailableCount)
		if len(rv.MissingAssets) > 0 {
			msg += fmt.Sprintf("\n   Missing: %s", strings.Join(rv.MissingAssets, ", "))
		}
		if len(rv.UnexpectedAssets) > 0 {
			msg += fmt.Sprintf("\n   Unexpected: %s", strings.Join(rv.UnexpectedAssets, ", "))
		}
		return msg
	case StatusUnexpectedAssets:
		return fmt.Sprintf("Unexpected assets found: %s", strings.Join(rv.UnexpectedAssets, ", "))
	case StatusMissingDigests:
		return fmt.Sprintf("Archives without digest companions: %s", strings.Join(rv.MissingDigests, ", "))
	default:
		return "Unknown status"
	}
}

// ReleaseService handles release coverage validation
type ReleaseService struct{}

// NewReleaseService creates a new release service
func NewReleaseService() *ReleaseService {
	return &ReleaseService{}
}

// ValidateRelease checks discovered artifact paths against the release matrix.
// Coverage counts archives only; digest companions are matched to their
// archive and reported separately when absent.
func (s *ReleaseService) ValidateRelease(matrix *entities.Matrix, assetPaths []string) *ReleaseValidation {
	validation := &ReleaseValidation{}

	validation.ExpectedAssets = s.expectedAssetNames(matrix)
	validation.ExpectedCount = len(validation.ExpectedAssets)

	available, digests := s.extractAvailableAssets(assetPaths)
	validation.AvailableAssets = available
	validation.AvailableCount = len(available)

	validation.MissingAssets = subtract(validation.ExpectedAssets, available)
	validation.UnexpectedAssets = subtract(available, validation.ExpectedAssets)

	for _, name := range available {
		if !digests[name] {
			validation.MissingDigests = append(validation.MissingDigests, name+ArchiveExt)
		}
	}

	switch {
	case validation.AvailableCount == 0:
		validation.Status = StatusNoAssets
	case validation.AvailableCount != validation.ExpectedCount:
		validation.Status = StatusCoverageMismatch
	case len(validation.UnexpectedAssets) > 0:
		validation.Status = StatusUnexpectedAssets
	case len(validation.MissingDigests) > 0:
		validation.Status = StatusMissingDigests
	default:
		validation.Status = StatusReady
	}

	return validation
}

// expectedAssetNames formats every matrix target, preserving file order
func (s *ReleaseService) expectedAssetNames(matrix *entities.Matrix) []string {
	names := make([]string, 0, len(matrix.Targets))
	for _, t := range matrix.Targets {
		names = append(names, TargetAssetName(t))
	}
	return names
}

// extractAvailableAssets collects asset base names from artifact paths.
// Only archives count toward coverage; the returned digest set records
// which archives have a .dgst companion next to them.
func (s *ReleaseService) extractAvailableAssets(assetPaths []string) ([]string, map[string]bool) {
	archiveSet := make(map[string]bool)
	digests := make(map[string]bool)
	var ordered []string

	for _, path := range assetPaths {
		basename := filepath.Base(path)

		if strings.HasSuffix(basename, ArchiveExt+DigestExt) {
			name := strings.TrimSuffix(basename, ArchiveExt+DigestExt)
			digests[name] = true
			continue
		}

		if !strings.HasSuffix(basename, ArchiveExt) {
			continue
		}

		name := strings.TrimSuffix(basename, ArchiveExt)
		if _, ok := ParseAssetName(name); !ok {
			continue
		}
		if !archiveSet[name] {
			archiveSet[name] = true
			ordered = append(ordered, name)
		}
	}

	return ordered, digests
}

// subtract returns the elements of a that are not present in b
func subtract(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, s := range b {
		set[s] = true
	}

	var out []string
	for _, s := range a {
		if !set[s] {
			out = append(out, s)
		}
	}
	return out
}

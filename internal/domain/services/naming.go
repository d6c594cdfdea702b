// Package services contains the release naming and validation logic.
package services

import (
	"fmt"
	"strings"

	"github.com/xtls/xrelease/internal/domain/entities"
)

// AssetPrefix is the leading component of every release asset name
const AssetPrefix = "Xray"

// Archive suffixes recognized when parsing discovered artifact filenames
const (
	ArchiveExt = ".zip"
	DigestExt  = ".dgst"
)

// FormatAssetName builds the release asset base name for a platform.
// Precedence: an ARM version wins over everything else and drops the arch
// component entirely; a variant suffix applies only to non-ARM targets.
func FormatAssetName(os, arch, arm, variant string) string {
	if arm != "" {
		return AssetPrefix + "-" + os + "-armv" + arm
	}
	if variant != "" {
		return AssetPrefix + "-" + os + "-" + arch + "-" + variant
	}
	return AssetPrefix + "-" + os + "-" + arch
}

// TargetAssetName formats the asset base name for a matrix target
func TargetAssetName(t entities.Target) string {
	return FormatAssetName(t.OS, t.Arch, t.ARM, t.Variant)
}

// ParseAssetName recovers the target platform from an asset filename.
// Accepts bare names as well as names carrying the archive and digest
// suffixes (Xray-linux-amd64, Xray-linux-amd64.zip, Xray-linux-amd64.zip.dgst).
// Returns false for names that do not follow the release naming scheme.
func ParseAssetName(name string) (entities.Target, bool) {
	name = strings.TrimSuffix(name, DigestExt)
	name = strings.TrimSuffix(name, ArchiveExt)

	rest, ok := strings.CutPrefix(name, AssetPrefix+"-")
	if !ok {
		return entities.Target{}, false
	}

	parts := strings.Split(rest, "-")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return entities.Target{}, false
	}

	// ARM form: Xray-{os}-armv{version}
	if len(parts) == 2 {
		if ver, isARM := strings.CutPrefix(parts[1], "armv"); isARM && ver != "" {
			return entities.Target{OS: parts[0], ARM: ver}, true
		}
		return entities.Target{OS: parts[0], Arch: parts[1]}, true
	}

	// Variant form: Xray-{os}-{arch}-{variant}; variants may themselves
	// contain dashes, so everything after the arch joins back together.
	variant := strings.Join(parts[2:], "-")
	if variant == "" {
		return entities.Target{}, false
	}
	return entities.Target{OS: parts[0], Arch: parts[1], Variant: variant}, true
}

// ExpandAssets formats every matrix target into its expected release
// uploads, preserving file order.
func ExpandAssets(matrix *entities.Matrix) []entities.Asset {
	assets := make([]entities.Asset, 0, len(matrix.Targets))
	for _, t := range matrix.Targets {
		name := TargetAssetName(t)
		assets = append(assets, entities.Asset{
			Name:    name,
			Archive: name + ArchiveExt,
			Digest:  name + ArchiveExt + DigestExt,
		})
	}
	return assets
}

// ValidateMatrix checks a parsed matrix for entries the formatter cannot
// distinguish: two targets that produce the same asset name would overwrite
// each other's artifacts in the release.
func ValidateMatrix(matrix *entities.Matrix) error {
	seen := make(map[string]entities.Target, len(matrix.Targets))
	for _, t := range matrix.Targets {
		name := TargetAssetName(t)
		if _, dup := seen[name]; dup {
			return fmt.Errorf("duplicate asset name in matrix: %s", name)
		}
		seen[name] = t
	}
	return nil
}

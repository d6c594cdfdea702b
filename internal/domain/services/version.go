package services

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// NormalizeTag ensures a release tag carries the "v" prefix semver expects
func NormalizeTag(tag string) string {
	if tag != "" && tag[0] != 'v' {
		return "v" + tag
	}
	return tag
}

// ValidateTag checks that a release tag is a well-formed semantic version.
// Tags are accepted with or without the "v" prefix.
func ValidateTag(tag string) error {
	if tag == "" {
		return fmt.Errorf("release tag is empty")
	}
	if !semver.IsValid(NormalizeTag(tag)) {
		return fmt.Errorf("invalid release tag: %s", tag)
	}
	return nil
}

// IsNewerTag reports whether candidate is a strictly newer release than
// current. Both tags must be valid semantic versions.
func IsNewerTag(current, candidate string) (bool, error) {
	cur := NormalizeTag(current)
	cand := NormalizeTag(candidate)

	if !semver.IsValid(cur) {
		return false, fmt.Errorf("invalid current tag: %s", current)
	}
	if !semver.IsValid(cand) {
		return false, fmt.Errorf("invalid candidate tag: %s", candidate)
	}

	return semver.Compare(cand, cur) > 0, nil
}

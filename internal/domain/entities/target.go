// Package entities defines core domain models and data structures.
package entities

// Target represents one platform entry in the release matrix
type Target struct {
	OS      string
	Arch    string
	ARM     string // ARM instruction-set version (e.g. "7"); empty for non-ARM targets
	Variant string // secondary qualifier appended to disambiguate builds (e.g. "softfloat")
	Note    string
}

// IsARM returns true when the target selects the ARM naming branch
func (t Target) IsARM() bool {
	return t.ARM != ""
}

// Matrix represents the full set of targets a release must cover
type Matrix struct {
	Project string
	Targets []Target
}

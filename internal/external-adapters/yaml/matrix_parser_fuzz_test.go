package yaml

import (
	"testing"
)

// FuzzMatrixParser tests the YAML parser against random/malformed inputs
// to detect crashes, panics, or unexpected behavior.
//
// Run with: go test -fuzz=FuzzMatrixParser -fuzztime=30s
func FuzzMatrixParser(f *testing.F) {
	// Seed corpus with valid YAML examples
	f.Add([]byte(`project: Xray
targets:
  - os: linux
    arch: amd64
`))

	f.Add([]byte(`project: Xray
targets:
  - os: linux
    arm: "7"
  - os: linux
    arch: mips32
    variant: softfloat
  - os: windows
    arch: "386"
`))

	// Seed with edge cases
	f.Add([]byte(``))                          // Empty input
	f.Add([]byte(`targets: []` + "\n"))        // Empty targets
	f.Add([]byte(`{}`))                        // Empty JSON-style YAML
	f.Add([]byte(`[]`))                        // Array instead of object
	f.Add([]byte(`targets: notalist`))         // Wrong type
	f.Add([]byte(`targets:\n  bad indent`))    // Invalid indentation
	f.Add([]byte(`project: a` + "\nproject: b")) // Duplicate keys

	parser := NewMatrixParser()

	f.Fuzz(func(_ *testing.T, data []byte) {
		// The parser should handle any input without crashing
		// We don't care if it returns an error - just that it doesn't panic
		_, _ = parser.Parse(data)
	})
}

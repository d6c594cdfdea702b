package gateways

import (
	"bufio"
	"context"
	//nolint:gosec // G501/G505: MD5 and SHA1 lines are kept for compatibility with published .dgst files
	"crypto/md5"
	//nolint:gosec // see above
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"
)

// digestAlgos lists the digest lines written to .dgst files, in output order
var digestAlgos = []string{"MD5", "SHA1", "SHA2-256", "SHA2-512"}

// Digester generates and verifies .dgst companion files for release archives
type Digester struct{}

// NewDigester creates a new digester
func NewDigester() *Digester {
	return &Digester{}
}

// WriteDigest computes all digest lines for a file and writes them to a
// .dgst companion next to it. Returns the companion path.
func (d *Digester) WriteDigest(_ context.Context, filePath string) (string, error) {
	sums, err := d.computeDigests(filePath)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, algo := range digestAlgos {
		fmt.Fprintf(&b, "%s= %s\n", algo, sums[algo])
	}

	digestPath := filePath + ".dgst"
	if err := os.WriteFile(digestPath, []byte(b.String()), 0600); err != nil {
		return "", fmt.Errorf("failed to write digest file: %w", err)
	}

	return digestPath, nil
}

// CheckDigest verifies a file against its .dgst companion. Every recognized
// digest line must match; unrecognized lines are ignored so the format can
// grow new algorithms without breaking old verifiers.
func (d *Digester) CheckDigest(_ context.Context, filePath, digestPath string) error {
	expected, err := d.parseDigestFile(digestPath)
	if err != nil {
		return err
	}
	if len(expected) == 0 {
		return fmt.Errorf("no digest lines found in %s", digestPath)
	}

	actual, err := d.computeDigests(filePath)
	if err != nil {
		return err
	}

	for algo, want := range expected {
		got, ok := actual[algo]
		if !ok {
			continue
		}
		if !strings.EqualFold(got, want) {
			return fmt.Errorf("%s mismatch: expected %s, got %s", algo, want, got)
		}
	}

	return nil
}

// computeDigests hashes the file once, feeding all algorithms in parallel
func (d *Digester) computeDigests(filePath string) (map[string]string, error) {
	//nolint:gosec // G304: filePath is user-provided for digest generation
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	hashes := map[string]hash.Hash{
		//nolint:gosec // G401: compatibility digest lines
		"MD5": md5.New(),
		//nolint:gosec // G401: compatibility digest lines
		"SHA1":     sha1.New(),
		"SHA2-256": sha256.New(),
		"SHA2-512": sha512.New(),
	}

	writers := make([]io.Writer, 0, len(hashes))
	for _, algo := range digestAlgos {
		writers = append(writers, hashes[algo])
	}

	if _, err := io.Copy(io.MultiWriter(writers...), f); err != nil {
		return nil, fmt.Errorf("failed to hash file: %w", err)
	}

	sums := make(map[string]string, len(hashes))
	for algo, h := range hashes {
		sums[algo] = hex.EncodeToString(h.Sum(nil))
	}

	return sums, nil
}

// parseDigestFile reads "NAME= hex" lines from a .dgst file
func (d *Digester) parseDigestFile(digestPath string) (map[string]string, error) {
	//nolint:gosec // G304: digestPath is user-provided for verification
	f, err := os.Open(digestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open digest file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	known := make(map[string]bool, len(digestAlgos))
	for _, algo := range digestAlgos {
		known[algo] = true
	}

	expected := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		algo, sum, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		algo = strings.TrimSpace(algo)
		sum = strings.TrimSpace(sum)
		if known[algo] && sum != "" {
			expected[algo] = sum
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read digest file: %w", err)
	}

	return expected, nil
}

// Package gpg provides GPG signature verification capabilities.
package gpg

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
)

// Verifier implements GPG signature verification using ProtonMail's go-crypto
// A maintained, modern fork of golang.org/x/crypto/openpgp
// This is in external-adapters to isolate the external dependency
type Verifier struct {
	keyring openpgp.EntityList
}

// NewVerifier creates a new GPG verifier
func NewVerifier() *Verifier {
	return &Verifier{
		keyring: make(openpgp.EntityList, 0),
	}
}

// ImportKeyFromFile imports a GPG public key from a file, armored or binary
func (v *Verifier) ImportKeyFromFile(keyPath string) error {
	//nolint:gosec // G304: keyPath is user-provided for GPG key import
	f, err := os.Open(keyPath)
	if err != nil {
		return fmt.Errorf("failed to open key file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer f.Close()

	entities, err := openpgp.ReadArmoredKeyRing(f)
	if err != nil {
		// Try reading as binary
		if _, seekErr := f.Seek(0, 0); seekErr != nil {
			return fmt.Errorf("failed to reset file: %w", seekErr)
		}
		entities, err = openpgp.ReadKeyRing(f)
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}
	}

	if len(entities) == 0 {
		return fmt.Errorf("no keys found in file")
	}

	v.keyring = append(v.keyring, entities...)
	return nil
}

// VerifyDetached verifies a detached GPG signature file against an artifact.
// The signature may be armored (.asc) or binary (.sig).
func (v *Verifier) VerifyDetached(_ context.Context, filePath, sigPath string) error {
	if len(v.keyring) == 0 {
		return fmt.Errorf("no GPG keys imported, call ImportKeyFromFile first")
	}

	sigData, err := os.ReadFile(sigPath) //nolint:gosec // G304: sigPath is user-provided
	if err != nil {
		return fmt.Errorf("failed to read signature: %w", err)
	}

	// Basic format validation
	if len(sigData) < 10 {
		return fmt.Errorf("signature file too small to be valid GPG signature")
	}

	// Open the file to verify
	//nolint:gosec // G304: filePath is user-provided for GPG verification
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer f.Close()

	// Armored signatures start with -----BEGIN PGP SIGNATURE-----
	isArmored := len(sigData) > 27 && string(sigData[:27]) == "-----BEGIN PGP SIGNATURE---"

	var verifyErr error
	if isArmored {
		sigReader := &sigReader{data: sigData}
		_, verifyErr = openpgp.CheckArmoredDetachedSignature(v.keyring, f, sigReader, nil)
	} else {
		sigReader := &sigReader{data: sigData}
		_, verifyErr = openpgp.CheckDetachedSignature(v.keyring, f, sigReader, nil)
	}

	if verifyErr != nil {
		return fmt.Errorf("signature verification failed: %w", verifyErr)
	}

	return nil
}

// KeyCount returns the number of imported keys
func (v *Verifier) KeyCount() int {
	return len(v.keyring)
}

// sigReader wraps signature bytes as an io.Reader
type sigReader struct {
	data []byte
	pos  int
}

func (r *sigReader) Read(p []byte) (n int, err error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	n = copy(p, r.data[r.pos:])
	r.pos += n

	if r.pos >= len(r.data) {
		return n, io.EOF
	}

	return n, nil
}

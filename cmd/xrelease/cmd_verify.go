package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/xtls/xrelease/internal/external-adapters/gpg"
)

func runVerify(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	var (
		sigPath = fs.String("sig", "", "Detached signature file (.asc or .sig)")
		keyPath = fs.String("key", "", "GPG public key file, armored or binary")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: xrelease verify --sig <signature> --key <pubkey> <file>

Verify a detached GPG signature on a release artifact. The signing key is
read from a local file; no keyserver access is performed.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  xrelease verify --sig Xray-linux-amd64.zip.asc --key release-key.asc Xray-linux-amd64.zip
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(2)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: file path is required\n\n")
		fs.Usage()
		os.Exit(2)
	}
	if *sigPath == "" || *keyPath == "" {
		fmt.Fprintf(os.Stderr, "Error: --sig and --key are required\n\n")
		fs.Usage()
		os.Exit(2)
	}

	filePath := fs.Arg(0)

	verifier := gpg.NewVerifier()
	if err := verifier.ImportKeyFromFile(*keyPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing key: %v\n", err)
		os.Exit(1)
	}

	if err := verifier.VerifyDetached(ctx, filePath, *sigPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Good signature: %s\n", filePath)
}

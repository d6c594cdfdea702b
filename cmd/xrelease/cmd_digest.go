package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xtls/xrelease/internal/domain-adapters/gateways"
)

func runDigest(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("digest", flag.ExitOnError)
	var (
		check = fs.Bool("check", false, "Verify existing .dgst companions instead of writing them")
		quiet = fs.Bool("quiet", false, "Quiet mode - minimal output")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: xrelease digest <file>... [options]

Generate a .dgst companion for each artifact, containing MD5, SHA1,
SHA2-256 and SHA2-512 lines. With --check, verify each artifact against
its existing companion instead.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  xrelease digest dist/Xray-linux-amd64.zip
  xrelease digest --check dist/*.zip
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(2)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: at least one file is required\n\n")
		fs.Usage()
		os.Exit(2)
	}

	digester := gateways.NewDigester()
	failed := 0

	for _, path := range fs.Args() {
		if *check {
			err := digester.CheckDigest(ctx, path, path+".dgst")
			if err != nil {
				fmt.Fprintf(os.Stderr, "FAILED %s: %v\n", filepath.Base(path), err)
				failed++
				continue
			}
			if !*quiet {
				fmt.Printf("OK %s\n", filepath.Base(path))
			}
			continue
		}

		digestPath, err := digester.WriteDigest(ctx, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAILED %s: %v\n", filepath.Base(path), err)
			failed++
			continue
		}
		if !*quiet {
			fmt.Printf("Wrote %s\n", digestPath)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

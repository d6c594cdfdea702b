// Package main provides the xrelease CLI for naming and validating release assets.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/xtls/xrelease/internal/domain/services"
)

func runName(_ context.Context, args []string) {
	fs := flag.NewFlagSet("name", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: xrelease name <os> <arch> <arm> <variant>

Format the release asset name for one target platform. All four arguments
are positional; pass "" for arm and variant when they do not apply.

Precedence:
  arm non-empty      -> Xray-{os}-armv{arm}
  variant non-empty  -> Xray-{os}-{arch}-{variant}
  otherwise          -> Xray-{os}-{arch}

Examples:
  xrelease name linux amd64 "" ""       # Xray-linux-amd64
  xrelease name linux "" 7 ""           # Xray-linux-armv7
  xrelease name linux mips32 "" softfloat
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(2)
	}

	if fs.NArg() < 4 {
		fmt.Fprintf(os.Stderr, "Error: four positional arguments required (os, arch, arm, variant)\n\n")
		fs.Usage()
		os.Exit(2)
	}

	fmt.Println(services.FormatAssetName(fs.Arg(0), fs.Arg(1), fs.Arg(2), fs.Arg(3)))
}

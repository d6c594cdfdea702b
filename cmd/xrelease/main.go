package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	command := os.Args[1]

	// Dispatch to subcommand
	switch command {
	case "name":
		runName(ctx, os.Args[2:])
	case "list":
		runList(ctx, os.Args[2:])
	case "assets":
		runAssets(ctx, os.Args[2:])
	case "digest":
		runDigest(ctx, os.Args[2:])
	case "verify":
		runVerify(ctx, os.Args[2:])
	case "validate-release":
		runValidateRelease(ctx, os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`xrelease - Release asset naming and validation toolkit

Usage:
  xrelease <command> [options]

Commands:
  name              Format the asset name for one target platform
  list              List release matrix targets and their asset names
  assets            Expand the matrix into the expected asset set for a tag
  digest            Generate or check .dgst companions for artifacts
  verify            Verify detached GPG signatures on artifacts
  validate-release  Validate platform coverage of built artifacts

Use "xrelease <command> --help" for more information about a command.`)
}

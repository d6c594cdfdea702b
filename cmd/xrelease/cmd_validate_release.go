package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/xtls/xrelease/internal/domain-adapters/gateways"
	"github.com/xtls/xrelease/internal/domain/services"
	"github.com/xtls/xrelease/internal/external-adapters/yaml"
)

func runValidateRelease(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("validate-release", flag.ExitOnError)
	var (
		artifactsDir = fs.String("artifacts", "dist", "Directory containing built artifacts")
		matrixPath   = fs.String("matrix", "release.yml", "Path to release matrix file")
		quiet        = fs.Bool("quiet", false, "Only output errors (exit code indicates success/failure)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: xrelease validate-release <version> [options]

Validate that the artifacts directory covers every target in the release
matrix, and that each archive has its .dgst companion.

Arguments:
  version    Release tag to validate (required)

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Exit Codes:
  0  All expected targets present (ready for release)
  1  Validation failed (coverage mismatch, missing digests, etc.)
  2  Usage error or system error

Examples:
  xrelease validate-release v1.8.4
  xrelease validate-release --artifacts ./dist v1.8.4
  xrelease validate-release --quiet v1.8.4
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(2)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: release tag is required\n\n")
		fs.Usage()
		os.Exit(2)
	}

	tag := fs.Arg(0)
	if err := services.ValidateTag(tag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := executeValidateRelease(ctx, tag, *artifactsDir, *matrixPath, *quiet); err != nil {
		if !*quiet {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func executeValidateRelease(ctx context.Context, tag, artifactsDir, matrixPath string, quiet bool) error {
	if !quiet {
		fmt.Printf("Validating release %s\n", services.NormalizeTag(tag))
	}

	// Load matrix
	matrixRepo := yaml.NewMatrixRepository(matrixPath)
	matrix, err := matrixRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load matrix: %w", err)
	}

	// Find all artifacts
	artifactFinder := gateways.NewArtifactFinder()
	artifacts, err := artifactFinder.FindRecursive(artifactsDir)
	if err != nil {
		return fmt.Errorf("failed to find artifacts: %w", err)
	}

	if !quiet {
		fmt.Printf("Found %d artifact files\n", len(artifacts))
	}

	// Validate
	releaseService := services.NewReleaseService()
	validation := releaseService.ValidateRelease(matrix, artifacts)

	if !quiet {
		fmt.Printf("\nCoverage:\n")
		fmt.Printf("  Expected: %d targets\n", validation.ExpectedCount)
		fmt.Printf("  Available: %d archives\n", validation.AvailableCount)

		if len(validation.MissingAssets) > 0 {
			fmt.Printf("  Missing: %s\n", strings.Join(validation.MissingAssets, ", "))
		}
		if len(validation.UnexpectedAssets) > 0 {
			fmt.Printf("  Unexpected: %s\n", strings.Join(validation.UnexpectedAssets, ", "))
		}
		if len(validation.MissingDigests) > 0 {
			fmt.Printf("  Missing digests: %s\n", strings.Join(validation.MissingDigests, ", "))
		}

		fmt.Println()
	}

	if !validation.IsReady() {
		errMsg := validation.ErrorMessage()
		if !quiet {
			fmt.Printf("FAILED: %s\n", errMsg)
		}
		return fmt.Errorf("%s", errMsg)
	}

	if !quiet {
		fmt.Println("READY: All expected targets present")
	}

	return nil
}

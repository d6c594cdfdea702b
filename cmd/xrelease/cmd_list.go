package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/xtls/xrelease/internal/domain/entities"
	"github.com/xtls/xrelease/internal/domain/services"
	"github.com/xtls/xrelease/internal/external-adapters/yaml"
)

func runList(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	var (
		matrixPath = fs.String("matrix", "release.yml", "Path to release matrix file")
		osFilter   = fs.String("os", "", "Filter targets by operating system (e.g. linux)")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: xrelease list [options]

List all release matrix targets with their computed asset names.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  xrelease list
  xrelease list --os linux
  xrelease list --matrix .github/release.yml
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(2)
	}

	// Load matrix
	matrixRepo := yaml.NewMatrixRepository(*matrixPath)
	matrix, err := matrixRepo.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading matrix: %v\n", err)
		os.Exit(1)
	}

	targets := matrix.Targets
	if *osFilter != "" {
		filtered := make([]entities.Target, 0)
		for _, t := range targets {
			if t.OS == *osFilter {
				filtered = append(filtered, t)
			}
		}
		targets = filtered
	}

	if *osFilter != "" {
		fmt.Printf("Targets for %s (%d total):\n\n", *osFilter, len(targets))
	} else {
		fmt.Printf("Release targets (%d total):\n\n", len(targets))
	}

	for _, t := range targets {
		name := services.TargetAssetName(t)
		fmt.Printf("  %-32s os=%s", name, t.OS)
		if t.IsARM() {
			fmt.Printf(" armv%s", t.ARM)
		} else {
			fmt.Printf(" arch=%s", t.Arch)
		}
		if t.Variant != "" {
			fmt.Printf(" variant=%s", t.Variant)
		}
		if t.Note != "" {
			fmt.Printf("  (%s)", t.Note)
		}
		fmt.Println()
	}
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/xtls/xrelease/internal/domain/services"
	"github.com/xtls/xrelease/internal/external-adapters/yaml"
)

// AssetManifest is the machine-readable output of the assets command
type AssetManifest struct {
	Tag    string      `json:"tag"`
	Assets []AssetItem `json:"assets"`
}

// AssetItem is one expected release upload
type AssetItem struct {
	Name    string `json:"name"`
	Archive string `json:"archive"`
	Digest  string `json:"digest"`
	OS      string `json:"os"`
	Arch    string `json:"arch,omitempty"`
	ARM     string `json:"arm,omitempty"`
	Variant string `json:"variant,omitempty"`
}

func runAssets(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("assets", flag.ExitOnError)
	var (
		matrixPath = fs.String("matrix", "release.yml", "Path to release matrix file")
		jsonOut    = fs.Bool("json", false, "Emit a JSON manifest instead of plain names")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: xrelease assets <version> [options]

Expand the release matrix into the full expected asset set for a release
tag. Each target contributes its archive and a .dgst companion. The tag is
validated as a semantic version (with or without the "v" prefix).

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  xrelease assets v1.8.4
  xrelease assets --json 1.8.4 > assets.json
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

	// Load matrix
	matrixRepo := yaml.NewMatrixRepository(*matrixPath)
	matrix, err := matrixRepo.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading matrix: %v\n", err)
		os.Exit(1)
	}

	manifest := AssetManifest{Tag: services.NormalizeTag(tag)}
	for i, asset := range services.ExpandAssets(matrix) {
		t := matrix.Targets[i]
		manifest.Assets = append(manifest.Assets, AssetItem{
			Name:    asset.Name,
			Archive: asset.Archive,
			Digest:  asset.Digest,
			OS:      t.OS,
			Arch:    t.Arch,
			ARM:     t.ARM,
			Variant: t.Variant,
		})
	}

	if *jsonOut {
		data, err := json.MarshalIndent(manifest, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error marshaling manifest: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	for _, a := range manifest.Assets {
		fmt.Println(a.Archive)
		fmt.Println(a.Digest)
	}
}

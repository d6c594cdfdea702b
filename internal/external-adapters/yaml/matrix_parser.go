// Package yaml provides YAML-based release matrix parsing and repository implementations.
package yaml

import (
	"fmt"
	"os"

	"github.com/xtls/xrelease/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlMatrix represents the raw YAML structure
type yamlMatrix struct {
	Project string       `yaml:"project"`
	Targets []yamlTarget `yaml:"targets"`
}

type yamlTarget struct {
	OS      string `yaml:"os"`
	Arch    string `yaml:"arch"`
	ARM     string `yaml:"arm"`
	Variant string `yaml:"variant"`
	Note    string `yaml:"note"`
}

// MatrixParser parses YAML release matrix files
type MatrixParser struct{}

// NewMatrixParser creates a new YAML parser
func NewMatrixParser() *MatrixParser {
	return &MatrixParser{}
}

// ParseFile parses a YAML matrix file into a Matrix entity
func (p *MatrixParser) ParseFile(filePath string) (*entities.Matrix, error) {
	//nolint:gosec // G304: filePath is the matrix path supplied by the caller
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses YAML bytes into a Matrix entity
func (p *MatrixParser) Parse(data []byte) (*entities.Matrix, error) {
	var yamlDef yamlMatrix
	if err := yaml.Unmarshal(data, &yamlDef); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate required fields
	if len(yamlDef.Targets) == 0 {
		return nil, fmt.Errorf("matrix must define at least one target")
	}

	matrix := &entities.Matrix{
		Project: yamlDef.Project,
		Targets: make([]entities.Target, 0, len(yamlDef.Targets)),
	}

	for i, yt := range yamlDef.Targets {
		if yt.OS == "" {
			return nil, fmt.Errorf("target %d: os is required", i)
		}
		if yt.Arch == "" && yt.ARM == "" {
			return nil, fmt.Errorf("target %d (%s): either arch or arm is required", i, yt.OS)
		}

		matrix.Targets = append(matrix.Targets, entities.Target{
			OS:      yt.OS,
			Arch:    yt.Arch,
			ARM:     yt.ARM,
			Variant: yt.Variant,
			Note:    yt.Note,
		})
	}

	return matrix, nil
}

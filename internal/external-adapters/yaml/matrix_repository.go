package yaml

import (
	"context"
	"fmt"
	"os"

	"github.com/xtls/xrelease/internal/domain/entities"
	"github.com/xtls/xrelease/internal/domain/interfaces/repositories"
	"github.com/xtls/xrelease/internal/domain/services"
)

var _ repositories.MatrixRepository = (*MatrixRepository)(nil)

// MatrixRepository implements repositories.MatrixRepository using a YAML file
type MatrixRepository struct {
	matrixPath string
	parser     *MatrixParser
}

// NewMatrixRepository creates a new YAML-based matrix repository
func NewMatrixRepository(matrixPath string) *MatrixRepository {
	return &MatrixRepository{
		matrixPath: matrixPath,
		parser:     NewMatrixParser(),
	}
}

// Load retrieves and validates the release matrix
func (r *MatrixRepository) Load(_ context.Context) (*entities.Matrix, error) {
	// Check if file exists
	if _, err := os.Stat(r.matrixPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("matrix file not found: %s", r.matrixPath)
	}

	matrix, err := r.parser.ParseFile(r.matrixPath)
	if err != nil {
		return nil, err
	}

	if err := services.ValidateMatrix(matrix); err != nil {
		return nil, err
	}

	return matrix, nil
}

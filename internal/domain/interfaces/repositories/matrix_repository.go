// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"github.com/xtls/xrelease/internal/domain/entities"
)

// MatrixRepository defines the interface for accessing the release matrix
type MatrixRepository interface {
	// Load retrieves and validates the release matrix
	Load(ctx context.Context) (*entities.Matrix, error)
}

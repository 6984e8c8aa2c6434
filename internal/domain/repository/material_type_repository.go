package repository

import (
	"context"
	"errors"

	"ecopoint/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMaterialTypeNotFound is returned when no material matches an ID or code.
var ErrMaterialTypeNotFound = errors.New("material type not found")

// MaterialTypeRepository defines the operations for the material catalog.
// Material types are append-only: there is no update or delete.
type MaterialTypeRepository interface {
	// FindByID retrieves a single material type by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MaterialType, error)

	// FindByCode retrieves a single material type by its identifier code.
	FindByCode(ctx context.Context, code string) (*entity.MaterialType, error)

	// Create persists a new material type. The code carries a database
	// unique constraint.
	Create(ctx context.Context, materialType *entity.MaterialType) error

	// List returns all material types in insertion order.
	List(ctx context.Context) ([]*entity.MaterialType, error)
}

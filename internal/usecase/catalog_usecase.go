package usecase

import (
	"context"

	"ecopoint/internal/domain/entity"

	"github.com/google/uuid"
)

// DefineMaterialTypeInput defines the data required to add a material to the
// catalog. The identifier code is generated server-side.
type DefineMaterialTypeInput struct {
	Name        string
	Description string
	PointValue  int
}

// CatalogUsecase defines the interface for material catalog operations.
// The catalog is append-only; a material's point value never changes once
// defined, so historical collection events stay explainable.
type CatalogUsecase interface {
	// DefineMaterialType registers a new material with its per-item point
	// value and returns it with the generated identifier code.
	DefineMaterialType(ctx context.Context, adminID uuid.UUID, input DefineMaterialTypeInput) (*entity.MaterialType, error)

	// GetMaterialType retrieves a single material by ID.
	GetMaterialType(ctx context.Context, id uuid.UUID) (*entity.MaterialType, error)

	// GetMaterialTypeByCode resolves a scanned identifier code to its material.
	GetMaterialTypeByCode(ctx context.Context, code string) (*entity.MaterialType, error)

	// ListMaterialTypes returns the full catalog.
	ListMaterialTypes(ctx context.Context) ([]*entity.MaterialType, error)

	// MaterialLabelPNG renders the printable QR label for a material.
	MaterialLabelPNG(ctx context.Context, id uuid.UUID) ([]byte, error)
}

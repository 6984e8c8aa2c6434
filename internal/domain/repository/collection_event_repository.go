package repository

import (
	"context"

	"ecopoint/internal/domain/entity"

	"github.com/google/uuid"
)

// CollectionEventRepository defines the operations for the append-only
// collection log. Events are never updated or deleted.
type CollectionEventRepository interface {
	// Create appends a new collection event.
	Create(ctx context.Context, event *entity.CollectionEvent) error

	// ListByAccount returns the events crediting an account, newest first.
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.CollectionEvent, error)

	// ListByCollector returns the events a collector processed, newest first.
	ListByCollector(ctx context.Context, collectorID uuid.UUID, limit int) ([]*entity.CollectionEvent, error)
}

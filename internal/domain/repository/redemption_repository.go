package repository

import (
	"context"
	"errors"

	"ecopoint/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRedemptionNotFound is returned when no redemption matches an ID.
var ErrRedemptionNotFound = errors.New("redemption not found")

// RedemptionRepository defines the operations for redemption persistence.
type RedemptionRepository interface {
	// FindByID retrieves a single redemption by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Redemption, error)

	// Create persists a new redemption request.
	Create(ctx context.Context, redemption *entity.Redemption) error

	// UpdateStatus transitions a redemption to a new status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RedemptionStatus) error

	// ListByAccount returns an account's redemptions, newest first.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Redemption, error)

	// ListByStatus returns all redemptions in the given status, oldest first,
	// so the payout collaborator drains them in request order.
	ListByStatus(ctx context.Context, status entity.RedemptionStatus) ([]*entity.Redemption, error)
}

package usecase

import (
	"context"

	"ecopoint/internal/domain/entity"
	"ecopoint/internal/domain/service"

	"github.com/google/uuid"
)

// ProcessScanInput defines the data from a collector scanning a labeled item.
type ProcessScanInput struct {
	AccountID    uuid.UUID
	MaterialCode string
}

// ProcessWeightInput defines the data from a weighed, unlabeled drop-off.
type ProcessWeightInput struct {
	AccountID uuid.UUID
	WeightKg  float64
}

// CollectionUsecase defines the interface for recording recycling drop-offs.
// Both modes credit the participant and append an immutable event in one
// transaction; the balance and the event log never diverge.
type CollectionUsecase interface {
	// ProcessScan credits an account with the scanned material's point value.
	ProcessScan(ctx context.Context, collectorID uuid.UUID, input ProcessScanInput) (*entity.CollectionEvent, error)

	// ProcessWeight credits an account proportionally to the weighed mass.
	// Zero weight is accepted and credits zero points.
	ProcessWeight(ctx context.Context, collectorID uuid.UUID, input ProcessWeightInput) (*entity.CollectionEvent, error)

	// CurrentScaleReading returns the latest sampled weight from the scale
	// gateway, for collectors to confirm before submitting.
	CurrentScaleReading(ctx context.Context) (*service.WeightReading, error)

	// ListAccountHistory returns the events crediting an account, newest first.
	ListAccountHistory(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.CollectionEvent, error)

	// ListCollectorHistory returns the events a collector processed, newest first.
	ListCollectorHistory(ctx context.Context, collectorID uuid.UUID, limit int) ([]*entity.CollectionEvent, error)
}

package usecase

import (
	"context"

	"ecopoint/internal/domain/entity"

	"github.com/google/uuid"
)

// RequestRedemptionInput defines the data for a payout request. The
// destination is resolved from the account's stored payout settings.
type RequestRedemptionInput struct {
	Points int
	Method entity.RedemptionMethod
}

// RedemptionUsecase defines the interface for converting points to payouts.
// Points are debited the moment a request is accepted; Complete and Fail are
// invoked by the payout collaborator to settle the pending request.
type RedemptionUsecase interface {
	// RequestRedemption validates, debits the balance and records a pending
	// redemption in one transaction.
	RequestRedemption(ctx context.Context, accountID uuid.UUID, input RequestRedemptionInput) (*entity.Redemption, error)

	// CompleteRedemption marks a pending redemption as paid out.
	CompleteRedemption(ctx context.Context, redemptionID uuid.UUID) error

	// FailRedemption marks a pending redemption as failed and credits the
	// debited points back in the same transaction.
	FailRedemption(ctx context.Context, redemptionID uuid.UUID) error

	// GetRedemption retrieves a single redemption by ID.
	GetRedemption(ctx context.Context, redemptionID uuid.UUID) (*entity.Redemption, error)

	// ListAccountRedemptions returns an account's redemptions, newest first.
	ListAccountRedemptions(ctx context.Context, accountID uuid.UUID) ([]*entity.Redemption, error)

	// ListPendingRedemptions returns pending redemptions oldest first for the
	// payout collaborator to drain.
	ListPendingRedemptions(ctx context.Context) ([]*entity.Redemption, error)
}

package usecase

import (
	"context"

	"ecopoint/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdatePayoutSettingsInput defines the payout destinations an account can
// configure ahead of redeeming. Nil fields are left untouched.
type UpdatePayoutSettingsInput struct {
	WalletAddress *string
	BankDetails   *entity.BankDetails
}

// ProfileUsecase defines the interface for account profile operations.
type ProfileUsecase interface {
	// GetProfile retrieves an account including its current point balance.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdatePayoutSettings stores the wallet address and/or bank details used
	// as redemption destinations.
	UpdatePayoutSettings(ctx context.Context, userID uuid.UUID, input *UpdatePayoutSettingsInput) (*entity.User, error)
}

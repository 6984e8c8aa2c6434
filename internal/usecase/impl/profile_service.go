package impl

import (
	"context"
	"log/slog"

	deliverycontext "ecopoint/internal/delivery/context"
	"ecopoint/internal/domain/entity"
	domainerrors "ecopoint/internal/domain/errors"
	"ecopoint/internal/domain/repository"
	"ecopoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves an account including its current point balance.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.log(ctx).Debug("Getting profile", slog.Any("userID", userID))

	// Single read - use direct repository instance.
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMissingAccount, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdatePayoutSettings stores the wallet address and/or bank details used as
// redemption destinations.
func (srv *profileService) UpdatePayoutSettings(ctx context.Context, userID uuid.UUID, input *usecase.UpdatePayoutSettingsInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating payout settings", slog.Any("userID", userID))

	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrMissingAccount, "account not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.WalletAddress != nil {
			user.WalletAddress = *input.WalletAddress
		}
		if input.BankDetails != nil {
			if !input.BankDetails.Complete() {
				return errors.Wrap(domainerrors.ErrValidationFailed, "bank details require bank name and account number")
			}
			user.BankDetails = input.BankDetails
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update payout settings")
		}
		updated = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update payout settings", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute payout settings transaction")
	}

	return updated, nil
}

package impl

import (
	"context"
	"fmt"
	"log/slog"

	"ecopoint/config"
	deliverycontext "ecopoint/internal/delivery/context"
	"ecopoint/internal/domain/entity"
	domainerrors "ecopoint/internal/domain/errors"
	"ecopoint/internal/domain/repository"
	"ecopoint/internal/domain/service"
	"ecopoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// redemptionService implements the RedemptionUsecase interface. This is the
// debit side of the ledger: points leave the balance the moment a request is
// accepted, and only a failed payout puts them back.
type redemptionService struct {
	txManager      repository.TransactionManager
	redemptionRepo repository.RedemptionRepository
	eventPublisher service.EventPublisher
	minimumPoints  int
	pointsPerUnit  int
	logger         *slog.Logger
}

// RedemptionServiceParams holds dependencies for RedemptionService, injected by Fx.
type RedemptionServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	RedemptionRepo repository.RedemptionRepository
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewRedemptionService is the constructor for redemptionService.
func NewRedemptionService(params RedemptionServiceParams) usecase.RedemptionUsecase {
	return &redemptionService{
		txManager:      params.TxManager,
		redemptionRepo: params.RedemptionRepo,
		eventPublisher: params.EventPublisher,
		minimumPoints:  params.Config.Ledger.MinimumRedemptionPoints,
		pointsPerUnit:  params.Config.Ledger.PointsPerUnit,
		logger:         params.Logger,
	}
}

func (srv *redemptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestRedemption validates, debits the balance and records a pending
// redemption in one transaction. The balance check and the debit run under
// the same transaction, so two concurrent requests cannot both spend the
// same points.
func (srv *redemptionService) RequestRedemption(ctx context.Context, accountID uuid.UUID, input usecase.RequestRedemptionInput) (*entity.Redemption, error) {
	srv.log(ctx).Info("Requesting redemption",
		slog.Any("accountID", accountID),
		slog.Int("points", input.Points),
		slog.String("method", input.Method.String()),
	)

	if !input.Method.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "redemption method must be bank or wallet")
	}
	if input.Points < srv.minimumPoints {
		return nil, errors.Wrapf(domainerrors.ErrInsufficientBalance, "minimum redemption is %d points", srv.minimumPoints)
	}

	var redemption *entity.Redemption

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		account, err := userRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrMissingAccount, "account not found")
			}

			return errors.Wrap(err, "failed to find account")
		}

		if account.Points < input.Points {
			return errors.Wrapf(domainerrors.ErrInsufficientBalance,
				"balance %d is below requested %d points", account.Points, input.Points)
		}

		destination, err := resolveDestination(account, input.Method)
		if err != nil {
			return err
		}

		// Immediate debit: the pending redemption owns these points now.
		account.Points -= input.Points
		if err := userRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to debit account")
		}

		redemption = &entity.Redemption{
			AccountID:   accountID,
			Points:      input.Points,
			Method:      input.Method,
			Destination: destination,
			Amount:      float64(input.Points) / float64(srv.pointsPerUnit),
			Status:      entity.RedemptionStatusPending,
		}

		if err := repoFactory.RedemptionRepo().Create(ctx, redemption); err != nil {
			return errors.Wrap(err, "failed to create redemption")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Redemption request failed", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute redemption transaction")
	}

	srv.publishRedemptionEvent(ctx, redemption, service.EventRedemptionRequested,
		"Redemption requested",
		fmt.Sprintf("Your request to redeem %d points is being processed", redemption.Points),
		service.SeveritySuccess,
	)

	return redemption, nil
}

// resolveDestination composes the payout destination from the account's
// stored settings, or reports what is missing.
func resolveDestination(account *entity.User, method entity.RedemptionMethod) (string, error) {
	switch method {
	case entity.RedemptionMethodBank:
		if !account.BankDetails.Complete() {
			return "", errors.Wrap(domainerrors.ErrMissingDestination, "bank redemption requires bank name and account number")
		}

		return fmt.Sprintf("%s - %s", account.BankDetails.BankName, account.BankDetails.AccountNumber), nil
	case entity.RedemptionMethodWallet:
		if account.WalletAddress == "" {
			return "", errors.Wrap(domainerrors.ErrMissingDestination, "wallet redemption requires a wallet address")
		}

		return account.WalletAddress, nil
	default:
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "unknown redemption method")
	}
}

// CompleteRedemption marks a pending redemption as paid out.
func (srv *redemptionService) CompleteRedemption(ctx context.Context, redemptionID uuid.UUID) error {
	srv.log(ctx).Info("Completing redemption", slog.Any("redemptionID", redemptionID))

	var redemption *entity.Redemption

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		redemptionRepo := repoFactory.RedemptionRepo()

		found, err := srv.loadPendingRedemption(ctx, redemptionRepo, redemptionID)
		if err != nil {
			return err
		}
		redemption = found

		return redemptionRepo.UpdateStatus(ctx, redemptionID, entity.RedemptionStatusCompleted)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to complete redemption", slog.Any("redemptionID", redemptionID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute redemption completion transaction")
	}

	srv.publishRedemptionEvent(ctx, redemption, service.EventRedemptionCompleted,
		"Redemption completed",
		fmt.Sprintf("Your payout of %d points was sent to %s", redemption.Points, redemption.Destination),
		service.SeveritySuccess,
	)

	return nil
}

// FailRedemption marks a pending redemption as failed and credits the
// debited points back in the same transaction, so no balance is ever lost
// between the two writes.
func (srv *redemptionService) FailRedemption(ctx context.Context, redemptionID uuid.UUID) error {
	srv.log(ctx).Info("Failing redemption", slog.Any("redemptionID", redemptionID))

	var redemption *entity.Redemption

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		redemptionRepo := repoFactory.RedemptionRepo()
		userRepo := repoFactory.UserRepo()

		found, err := srv.loadPendingRedemption(ctx, redemptionRepo, redemptionID)
		if err != nil {
			return err
		}
		redemption = found

		if err := redemptionRepo.UpdateStatus(ctx, redemptionID, entity.RedemptionStatusFailed); err != nil {
			return errors.Wrap(err, "failed to mark redemption failed")
		}

		// Compensating credit.
		account, err := userRepo.FindByID(ctx, redemption.AccountID)
		if err != nil {
			return errors.Wrap(err, "failed to find account for compensating credit")
		}
		account.Points += redemption.Points

		return errors.Wrap(userRepo.Update(ctx, account), "failed to restore account balance")
	})

	if err != nil {
		srv.log(ctx).Error("Failed to fail redemption", slog.Any("redemptionID", redemptionID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute redemption failure transaction")
	}

	srv.publishRedemptionEvent(ctx, redemption, service.EventRedemptionFailed,
		"Redemption failed",
		fmt.Sprintf("Your payout failed; %d points were returned to your balance", redemption.Points),
		service.SeverityError,
	)

	return nil
}

func (srv *redemptionService) loadPendingRedemption(ctx context.Context, redemptionRepo repository.RedemptionRepository, redemptionID uuid.UUID) (*entity.Redemption, error) {
	redemption, err := redemptionRepo.FindByID(ctx, redemptionID)
	if err != nil {
		if errors.Is(err, repository.ErrRedemptionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "redemption not found")
		}

		return nil, errors.Wrap(err, "failed to find redemption")
	}
	if redemption.Status != entity.RedemptionStatusPending {
		return nil, errors.Wrapf(domainerrors.ErrRedemptionNotPending,
			"redemption is already %s", redemption.Status)
	}

	return redemption, nil
}

// GetRedemption retrieves a single redemption by ID.
func (srv *redemptionService) GetRedemption(ctx context.Context, redemptionID uuid.UUID) (*entity.Redemption, error) {
	redemption, err := srv.redemptionRepo.FindByID(ctx, redemptionID)
	if err != nil {
		if errors.Is(err, repository.ErrRedemptionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "redemption not found")
		}

		return nil, errors.Wrap(err, "failed to find redemption")
	}

	return redemption, nil
}

// ListAccountRedemptions returns an account's redemptions, newest first.
func (srv *redemptionService) ListAccountRedemptions(ctx context.Context, accountID uuid.UUID) ([]*entity.Redemption, error) {
	redemptions, err := srv.redemptionRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list account redemptions")
	}

	return redemptions, nil
}

// ListPendingRedemptions returns pending redemptions oldest first.
func (srv *redemptionService) ListPendingRedemptions(ctx context.Context) ([]*entity.Redemption, error) {
	redemptions, err := srv.redemptionRepo.ListByStatus(ctx, entity.RedemptionStatusPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending redemptions")
	}

	return redemptions, nil
}

func (srv *redemptionService) publishRedemptionEvent(ctx context.Context, redemption *entity.Redemption, eventType, title, description, severity string) {
	ledgerEvent := &service.LedgerEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     redemption.ID.String(),
		Type:        eventType,
		AccountID:   redemption.AccountID.String(),
		Points:      redemption.Points,
		Title:       title,
		Description: description,
		Severity:    severity,
	}

	if err := srv.eventPublisher.PublishLedgerEvent(ctx, ledgerEvent); err != nil {
		srv.log(ctx).Warn("Failed to publish redemption event",
			slog.String("eventID", ledgerEvent.EventID),
			slog.String("type", eventType),
			slog.Any("error", err),
		)
	}
}

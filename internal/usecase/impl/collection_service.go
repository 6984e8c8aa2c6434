package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

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

// collectionService implements the CollectionUsecase interface. This is the
// credit side of the ledger: every successful call increments a participant's
// balance and appends exactly one immutable collection event, atomically.
type collectionService struct {
	txManager           repository.TransactionManager
	collectionEventRepo repository.CollectionEventRepository
	eventPublisher      service.EventPublisher
	weightSource        service.WeightSource
	pointsPerKg         int
	logger              *slog.Logger
}

// CollectionServiceParams holds dependencies for CollectionService, injected by Fx.
type CollectionServiceParams struct {
	fx.In

	TxManager           repository.TransactionManager
	CollectionEventRepo repository.CollectionEventRepository
	EventPublisher      service.EventPublisher
	WeightSource        service.WeightSource
	Config              *config.Config
	Logger              *slog.Logger
}

// NewCollectionService is the constructor for collectionService.
func NewCollectionService(params CollectionServiceParams) usecase.CollectionUsecase {
	return &collectionService{
		txManager:           params.TxManager,
		collectionEventRepo: params.CollectionEventRepo,
		eventPublisher:      params.EventPublisher,
		weightSource:        params.WeightSource,
		pointsPerKg:         params.Config.Ledger.PointsPerKg,
		logger:              params.Logger,
	}
}

func (srv *collectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProcessScan credits an account with the scanned material's point value.
func (srv *collectionService) ProcessScan(ctx context.Context, collectorID uuid.UUID, input usecase.ProcessScanInput) (*entity.CollectionEvent, error) {
	srv.log(ctx).Info("Processing scan collection",
		slog.Any("collectorID", collectorID),
		slog.Any("accountID", input.AccountID),
		slog.String("materialCode", input.MaterialCode),
	)

	var event *entity.CollectionEvent

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		materialType, err := repoFactory.MaterialTypeRepo().FindByCode(ctx, input.MaterialCode)
		if err != nil {
			if errors.Is(err, repository.ErrMaterialTypeNotFound) {
				return errors.Wrap(domainerrors.ErrUnknownMaterial, "material code not in catalog")
			}

			return errors.Wrap(err, "failed to find material type")
		}

		created, err := srv.creditAccount(ctx, repoFactory, input.AccountID, collectorID, materialType.PointValue, func(e *entity.CollectionEvent) {
			e.MaterialTypeID = &materialType.ID
		})
		if err != nil {
			return err
		}
		event = created

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Scan collection failed", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute scan collection transaction")
	}

	srv.publishCollectionEvent(ctx, event)

	return event, nil
}

// ProcessWeight credits an account proportionally to the weighed mass.
// The credit is round(weightKg * pointsPerKg), half away from zero. Zero
// weight is accepted and credits zero points.
func (srv *collectionService) ProcessWeight(ctx context.Context, collectorID uuid.UUID, input usecase.ProcessWeightInput) (*entity.CollectionEvent, error) {
	srv.log(ctx).Info("Processing weight collection",
		slog.Any("collectorID", collectorID),
		slog.Any("accountID", input.AccountID),
		slog.Float64("weightKg", input.WeightKg),
	)

	if input.WeightKg < 0 || math.IsNaN(input.WeightKg) || math.IsInf(input.WeightKg, 0) {
		return nil, errors.Wrap(domainerrors.ErrInvalidWeight, "weight must be a non-negative number")
	}

	points := PointsForWeight(input.WeightKg, srv.pointsPerKg)
	weightKg := input.WeightKg

	var event *entity.CollectionEvent

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		created, err := srv.creditAccount(ctx, repoFactory, input.AccountID, collectorID, points, func(e *entity.CollectionEvent) {
			e.WeightKg = &weightKg
		})
		if err != nil {
			return err
		}
		event = created

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Weight collection failed", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute weight collection transaction")
	}

	srv.publishCollectionEvent(ctx, event)

	return event, nil
}

// creditAccount performs the shared credit-and-append step for both modes.
// Runs inside the caller's transaction so balance and event log move together.
func (srv *collectionService) creditAccount(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	accountID, collectorID uuid.UUID,
	points int,
	decorate func(*entity.CollectionEvent),
) (*entity.CollectionEvent, error) {
	userRepo := repoFactory.UserRepo()

	account, err := userRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMissingAccount, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}
	if account.Role != entity.RoleUser {
		return nil, errors.Wrap(domainerrors.ErrMissingAccount, "points can only be credited to participant accounts")
	}

	account.Points += points
	if err := userRepo.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to credit account")
	}

	event := &entity.CollectionEvent{
		AccountID:    accountID,
		CollectorID:  collectorID,
		PointsEarned: points,
		OccurredAt:   time.Now().UTC(),
	}
	decorate(event)

	if err := repoFactory.CollectionEventRepo().Create(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to append collection event")
	}

	return event, nil
}

// CurrentScaleReading returns the latest sampled weight from the scale gateway.
func (srv *collectionService) CurrentScaleReading(_ context.Context) (*service.WeightReading, error) {
	reading, ok := srv.weightSource.Current()
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrNoScaleReading, "no scale reading available")
	}

	return &reading, nil
}

// ListAccountHistory returns the events crediting an account, newest first.
func (srv *collectionService) ListAccountHistory(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.CollectionEvent, error) {
	events, err := srv.collectionEventRepo.ListByAccount(ctx, accountID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list account history")
	}

	return events, nil
}

// ListCollectorHistory returns the events a collector processed, newest first.
func (srv *collectionService) ListCollectorHistory(ctx context.Context, collectorID uuid.UUID, limit int) ([]*entity.CollectionEvent, error) {
	events, err := srv.collectionEventRepo.ListByCollector(ctx, collectorID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collector history")
	}

	return events, nil
}

// publishCollectionEvent emits the notification-sink event after commit.
// Publishing is observational; a publish failure never rolls back the credit.
func (srv *collectionService) publishCollectionEvent(ctx context.Context, event *entity.CollectionEvent) {
	ledgerEvent := &service.LedgerEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     event.ID.String(),
		Type:        service.EventCollectionRecorded,
		AccountID:   event.AccountID.String(),
		Points:      event.PointsEarned,
		Title:       "Points earned",
		Description: fmt.Sprintf("You earned %d points for recycling", event.PointsEarned),
		Severity:    service.SeveritySuccess,
	}

	if err := srv.eventPublisher.PublishLedgerEvent(ctx, ledgerEvent); err != nil {
		srv.log(ctx).Warn("Failed to publish collection event",
			slog.String("eventID", ledgerEvent.EventID),
			slog.Any("error", err),
		)
	}
}

// PointsForWeight converts a weighed mass into points, rounding half away
// from zero.
func PointsForWeight(weightKg float64, pointsPerKg int) int {
	return int(math.Round(weightKg * float64(pointsPerKg)))
}

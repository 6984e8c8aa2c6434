package postgres

import (
	"context"

	"ecopoint/internal/domain/entity"
	domainerrors "ecopoint/internal/domain/errors"
	"ecopoint/internal/domain/repository"
	"ecopoint/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// collectionEventRepository implements the domain.CollectionEventRepository
// interface using GORM. The table is append-only.
type collectionEventRepository struct {
	db *gorm.DB
}

// NewCollectionEventRepository is the constructor for collectionEventRepository.
func NewCollectionEventRepository(db *gorm.DB) repository.CollectionEventRepository {
	return &collectionEventRepository{db: db}
}

// Create appends a new collection event.
func (repo *collectionEventRepository) Create(ctx context.Context, event *entity.CollectionEvent) error {
	eventM := fromCollectionEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUnknownMaterial.WrapMessage("material type does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("points earned cannot be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create collection event")
	}

	event.ID = eventM.ID

	return nil
}

// ListByAccount returns the events crediting an account, newest first.
func (repo *collectionEventRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.CollectionEvent, error) {
	return repo.list(ctx, "account_id = ?", accountID, limit)
}

// ListByCollector returns the events a collector processed, newest first.
func (repo *collectionEventRepository) ListByCollector(ctx context.Context, collectorID uuid.UUID, limit int) ([]*entity.CollectionEvent, error) {
	return repo.list(ctx, "collector_id = ?", collectorID, limit)
}

func (repo *collectionEventRepository) list(ctx context.Context, cond string, id uuid.UUID, limit int) ([]*entity.CollectionEvent, error) {
	query := repo.db.WithContext(ctx).
		Where(cond, id).
		Order("occurred_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var events []*model.CollectionEventModel
	if err := query.Find(&events).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list collection events")
	}

	result := make([]*entity.CollectionEvent, 0, len(events))
	for _, eventM := range events {
		result = append(result, toCollectionEventDomain(eventM))
	}

	return result, nil
}

// toCollectionEventDomain converts a GORM CollectionEventModel to a domain CollectionEvent entity.
func toCollectionEventDomain(data *model.CollectionEventModel) *entity.CollectionEvent {
	if data == nil {
		return nil
	}

	return &entity.CollectionEvent{
		ID:             data.ID,
		MaterialTypeID: data.MaterialTypeID,
		WeightKg:       data.WeightKg,
		AccountID:      data.AccountID,
		CollectorID:    data.CollectorID,
		PointsEarned:   data.PointsEarned,
		OccurredAt:     data.OccurredAt,
	}
}

// fromCollectionEventDomain converts a domain CollectionEvent entity to a GORM CollectionEventModel.
func fromCollectionEventDomain(data *entity.CollectionEvent) *model.CollectionEventModel {
	if data == nil {
		return nil
	}

	return &model.CollectionEventModel{
		ID:             data.ID,
		MaterialTypeID: data.MaterialTypeID,
		WeightKg:       data.WeightKg,
		AccountID:      data.AccountID,
		CollectorID:    data.CollectorID,
		PointsEarned:   data.PointsEarned,
		OccurredAt:     data.OccurredAt,
	}
}

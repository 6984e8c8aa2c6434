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

// redemptionRepository implements the domain.RedemptionRepository interface using GORM.
type redemptionRepository struct {
	db *gorm.DB
}

// NewRedemptionRepository is the constructor for redemptionRepository.
func NewRedemptionRepository(db *gorm.DB) repository.RedemptionRepository {
	return &redemptionRepository{db: db}
}

// FindByID retrieves a single redemption by its unique ID.
func (repo *redemptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Redemption, error) {
	var redemptionM model.RedemptionModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&redemptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRedemptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find redemption by id")
	}

	return toRedemptionDomain(&redemptionM), nil
}

// Create persists a new redemption request.
func (repo *redemptionRepository) Create(ctx context.Context, redemption *entity.Redemption) error {
	redemptionM := fromRedemptionDomain(redemption)

	if err := repo.db.WithContext(ctx).Create(redemptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMissingAccount.WrapMessage("account does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("redeemed points must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create redemption")
	}

	redemption.ID = redemptionM.ID
	redemption.CreatedAt = redemptionM.CreatedAt
	redemption.UpdatedAt = redemptionM.UpdatedAt

	return nil
}

// UpdateStatus transitions a redemption to a new status.
func (repo *redemptionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RedemptionStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RedemptionModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update redemption status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRedemptionNotFound
	}

	return nil
}

// ListByAccount returns an account's redemptions, newest first.
func (repo *redemptionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Redemption, error) {
	var redemptions []*model.RedemptionModel
	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&redemptions).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list redemptions by account")
	}

	return toRedemptionDomainSlice(redemptions), nil
}

// ListByStatus returns all redemptions in the given status, oldest first.
func (repo *redemptionRepository) ListByStatus(ctx context.Context, status entity.RedemptionStatus) ([]*entity.Redemption, error) {
	var redemptions []*model.RedemptionModel
	if err := repo.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("created_at ASC").
		Find(&redemptions).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list redemptions by status")
	}

	return toRedemptionDomainSlice(redemptions), nil
}

func toRedemptionDomainSlice(data []*model.RedemptionModel) []*entity.Redemption {
	result := make([]*entity.Redemption, 0, len(data))
	for _, redemptionM := range data {
		result = append(result, toRedemptionDomain(redemptionM))
	}

	return result
}

// toRedemptionDomain converts a GORM RedemptionModel to a domain Redemption entity.
func toRedemptionDomain(data *model.RedemptionModel) *entity.Redemption {
	if data == nil {
		return nil
	}

	return &entity.Redemption{
		ID:          data.ID,
		AccountID:   data.AccountID,
		Points:      data.Points,
		Method:      entity.RedemptionMethod(data.Method),
		Destination: data.Destination,
		Amount:      data.Amount,
		Status:      entity.RedemptionStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromRedemptionDomain converts a domain Redemption entity to a GORM RedemptionModel.
func fromRedemptionDomain(data *entity.Redemption) *model.RedemptionModel {
	if data == nil {
		return nil
	}

	return &model.RedemptionModel{
		ID:          data.ID,
		AccountID:   data.AccountID,
		Points:      data.Points,
		Method:      data.Method.String(),
		Destination: data.Destination,
		Amount:      data.Amount,
		Status:      data.Status.String(),
	}
}

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

// materialTypeRepository implements the domain.MaterialTypeRepository interface using GORM.
type materialTypeRepository struct {
	db *gorm.DB
}

// NewMaterialTypeRepository is the constructor for materialTypeRepository.
func NewMaterialTypeRepository(db *gorm.DB) repository.MaterialTypeRepository {
	return &materialTypeRepository{db: db}
}

// FindByID retrieves a single material type by its unique ID.
func (repo *materialTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MaterialType, error) {
	var materialM model.MaterialTypeModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&materialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMaterialTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find material type by id")
	}

	return toMaterialTypeDomain(&materialM), nil
}

// FindByCode retrieves a single material type by its identifier code.
func (repo *materialTypeRepository) FindByCode(ctx context.Context, code string) (*entity.MaterialType, error) {
	var materialM model.MaterialTypeModel
	if err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&materialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMaterialTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find material type by code")
	}

	return toMaterialTypeDomain(&materialM), nil
}

// Create persists a new material type.
func (repo *materialTypeRepository) Create(ctx context.Context, materialType *entity.MaterialType) error {
	materialM := fromMaterialTypeDomain(materialType)

	if err := repo.db.WithContext(ctx).Create(materialM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrMaterialCodeConflict.WrapMessage("material code already exists")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("point value must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create material type")
	}

	materialType.ID = materialM.ID
	materialType.CreatedAt = materialM.CreatedAt

	return nil
}

// List returns all material types in insertion order.
func (repo *materialTypeRepository) List(ctx context.Context) ([]*entity.MaterialType, error) {
	var materials []*model.MaterialTypeModel
	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&materials).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list material types")
	}

	result := make([]*entity.MaterialType, 0, len(materials))
	for _, materialM := range materials {
		result = append(result, toMaterialTypeDomain(materialM))
	}

	return result, nil
}

// toMaterialTypeDomain converts a GORM MaterialTypeModel to a domain MaterialType entity.
func toMaterialTypeDomain(data *model.MaterialTypeModel) *entity.MaterialType {
	if data == nil {
		return nil
	}

	return &entity.MaterialType{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		PointValue:  data.PointValue,
		Code:        data.Code,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
	}
}

// fromMaterialTypeDomain converts a domain MaterialType entity to a GORM MaterialTypeModel.
func fromMaterialTypeDomain(data *entity.MaterialType) *model.MaterialTypeModel {
	if data == nil {
		return nil
	}

	return &model.MaterialTypeModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		PointValue:  data.PointValue,
		Code:        data.Code,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
	}
}

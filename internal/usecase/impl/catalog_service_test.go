package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ecopoint/internal/domain/entity"
	domainerrors "ecopoint/internal/domain/errors"
	"ecopoint/internal/domain/repository"
	mockRepo "ecopoint/internal/mocks/repository"
	mockService "ecopoint/internal/mocks/service"
	"ecopoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service          usecase.CatalogUsecase
	factory          *mockRepo.MockRepositoryFactory
	materialTypeRepo *mockRepo.MockMaterialTypeRepository
	qrcodeService    *mockService.MockQRCodeService
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	factory := mockRepo.NewMockRepositoryFactory(t)
	materialTypeRepo := mockRepo.NewMockMaterialTypeRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)

	svc := &catalogService{
		txManager:        &stubTxManager{factory: factory},
		materialTypeRepo: materialTypeRepo,
		qrcodeService:    qrcodeService,
		logger:           testLogger(),
	}

	return catalogServiceFixtures{
		service:          svc,
		factory:          factory,
		materialTypeRepo: materialTypeRepo,
		qrcodeService:    qrcodeService,
	}
}

func TestCatalogService_DefineMaterialType(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	adminID := uuid.New()

	fx.factory.On("MaterialTypeRepo").Return(fx.materialTypeRepo)
	fx.materialTypeRepo.On("Create", ctx, mock.AnythingOfType("*entity.MaterialType")).Return(nil)

	materialType, err := fx.service.DefineMaterialType(ctx, adminID, usecase.DefineMaterialTypeInput{
		Name:        "  PET Bottle  ",
		Description: "Clear plastic bottles",
		PointValue:  10,
	})

	require.NoError(t, err)
	assert.Equal(t, "PET Bottle", materialType.Name)
	assert.Equal(t, 10, materialType.PointValue)
	assert.Equal(t, adminID, materialType.CreatedBy)
	assert.Regexp(t, `^QR_PET_BOTTLE_\d+$`, materialType.Code)
}

func TestCatalogService_DefineMaterialType_Validation(t *testing.T) {
	testCases := []struct {
		name  string
		input usecase.DefineMaterialTypeInput
	}{
		{name: "empty name", input: usecase.DefineMaterialTypeInput{Name: "   ", PointValue: 10}},
		{name: "zero point value", input: usecase.DefineMaterialTypeInput{Name: "Glass", PointValue: 0}},
		{name: "negative point value", input: usecase.DefineMaterialTypeInput{Name: "Glass", PointValue: -5}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestCatalogService(t)

			_, err := fx.service.DefineMaterialType(context.Background(), uuid.New(), tc.input)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestCatalogService_DefineMaterialType_CodeConflict(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.factory.On("MaterialTypeRepo").Return(fx.materialTypeRepo)
	fx.materialTypeRepo.On("Create", ctx, mock.AnythingOfType("*entity.MaterialType")).
		Return(domainerrors.ErrMaterialCodeConflict)

	_, err := fx.service.DefineMaterialType(ctx, uuid.New(), usecase.DefineMaterialTypeInput{
		Name:       "Aluminum Can",
		PointValue: 15,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMaterialCodeConflict))
}

func TestCatalogService_GetMaterialTypeByCode(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	material := &entity.MaterialType{
		ID:         uuid.New(),
		Name:       "PET Bottle",
		PointValue: 10,
		Code:       "QR_PET_BOTTLE_1718000000000",
	}

	fx.materialTypeRepo.On("FindByCode", ctx, material.Code).Return(material, nil)

	found, err := fx.service.GetMaterialTypeByCode(ctx, material.Code)

	require.NoError(t, err)
	assert.Equal(t, material.ID, found.ID)
}

func TestCatalogService_GetMaterialTypeByCode_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.materialTypeRepo.On("FindByCode", ctx, "QR_BOGUS_1").Return(nil, repository.ErrMaterialTypeNotFound)

	_, err := fx.service.GetMaterialTypeByCode(ctx, "QR_BOGUS_1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownMaterial))
}

func TestCatalogService_GetMaterialType_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	materialID := uuid.New()

	fx.materialTypeRepo.On("FindByID", ctx, materialID).Return(nil, repository.ErrMaterialTypeNotFound)

	_, err := fx.service.GetMaterialType(ctx, materialID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownMaterial))
}

func TestCatalogService_ListMaterialTypes(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	catalog := []*entity.MaterialType{
		{ID: uuid.New(), Name: "PET Bottle", Code: "QR_PET_BOTTLE_1", PointValue: 10},
		{ID: uuid.New(), Name: "Glass", Code: "QR_GLASS_1", PointValue: 8},
	}

	fx.materialTypeRepo.On("List", ctx).Return(catalog, nil)

	result, err := fx.service.ListMaterialTypes(ctx)

	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "PET Bottle", result[0].Name)
}

func TestCatalogService_MaterialLabelPNG(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	materialType := &entity.MaterialType{
		ID:         uuid.New(),
		Name:       "PET Bottle",
		Code:       "QR_PET_BOTTLE_1718000000000",
		PointValue: 10,
	}
	pngBytes := []byte{0x89, 'P', 'N', 'G'}

	fx.materialTypeRepo.On("FindByID", ctx, materialType.ID).Return(materialType, nil)
	fx.qrcodeService.On("GenerateMaterialLabel", materialType.Code).Return(pngBytes, nil)

	png, err := fx.service.MaterialLabelPNG(ctx, materialType.ID)

	require.NoError(t, err)
	assert.Equal(t, pngBytes, png)
}

func TestCatalogService_MaterialLabelPNG_GenerateFails(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	materialType := &entity.MaterialType{ID: uuid.New(), Code: "QR_GLASS_1"}

	fx.materialTypeRepo.On("FindByID", ctx, materialType.ID).Return(materialType, nil)
	fx.qrcodeService.On("GenerateMaterialLabel", materialType.Code).
		Return(nil, fmt.Errorf("encode failed"))

	_, err := fx.service.MaterialLabelPNG(ctx, materialType.ID)

	require.Error(t, err)
}

func TestGenerateMaterialCode(t *testing.T) {
	now := time.UnixMilli(1718000000000)

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple", input: "Glass", expected: "QR_GLASS_1718000000000"},
		{name: "spaces collapse", input: "PET  Bottle", expected: "QR_PET_BOTTLE_1718000000000"},
		{name: "punctuation collapses", input: "E-Waste (small)", expected: "QR_E_WASTE_SMALL_1718000000000"},
		{name: "symbols only", input: "!!!", expected: "QR_MATERIAL_1718000000000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, generateMaterialCode(tc.input, now))
		})
	}
}

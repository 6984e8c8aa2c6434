package impl

import (
	"context"
	"testing"

	"ecopoint/internal/domain/entity"
	domainerrors "ecopoint/internal/domain/errors"
	"ecopoint/internal/domain/repository"
	"ecopoint/internal/domain/service"
	mockRepo "ecopoint/internal/mocks/repository"
	mockService "ecopoint/internal/mocks/service"
	"ecopoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// collectionServiceFixtures holds all test dependencies for collection service tests.
type collectionServiceFixtures struct {
	service      usecase.CollectionUsecase
	factory      *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	materialRepo *mockRepo.MockMaterialTypeRepository
	eventRepo    *mockRepo.MockCollectionEventRepository
	publisher    *mockService.MockEventPublisher
	weightSource *mockService.MockWeightSource
}

func createTestCollectionService(t *testing.T) collectionServiceFixtures {
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	materialRepo := mockRepo.NewMockMaterialTypeRepository(t)
	eventRepo := mockRepo.NewMockCollectionEventRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	weightSource := mockService.NewMockWeightSource(t)

	svc := &collectionService{
		txManager:           &stubTxManager{factory: factory},
		collectionEventRepo: eventRepo,
		eventPublisher:      publisher,
		weightSource:        weightSource,
		pointsPerKg:         10,
		logger:              testLogger(),
	}

	return collectionServiceFixtures{
		service:      svc,
		factory:      factory,
		userRepo:     userRepo,
		materialRepo: materialRepo,
		eventRepo:    eventRepo,
		publisher:    publisher,
		weightSource: weightSource,
	}
}

func TestCollectionService_ProcessScan_CreditsMaterialPointValue(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	collectorID := uuid.New()
	accountID := uuid.New()
	materialID := uuid.New()

	material := &entity.MaterialType{
		ID:         materialID,
		Name:       "PET Bottle",
		PointValue: 10,
		Code:       "QR_PET_BOTTLE_1717000000000",
	}
	account := &entity.User{
		ID:     accountID,
		Role:   entity.RoleUser,
		Points: 0,
	}

	fx.factory.On("MaterialTypeRepo").Return(fx.materialRepo)
	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.factory.On("CollectionEventRepo").Return(fx.eventRepo)

	fx.materialRepo.On("FindByCode", ctx, material.Code).Return(material, nil)
	fx.userRepo.On("FindByID", ctx, accountID).Return(account, nil)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.eventRepo.On("Create", ctx, mock.AnythingOfType("*entity.CollectionEvent")).Return(nil)
	fx.publisher.On("PublishLedgerEvent", ctx, mock.AnythingOfType("*service.LedgerEvent")).Return(nil)

	event, err := fx.service.ProcessScan(ctx, collectorID, usecase.ProcessScanInput{
		AccountID:    accountID,
		MaterialCode: material.Code,
	})

	require.NoError(t, err)
	assert.Equal(t, 10, event.PointsEarned)
	assert.Equal(t, 10, account.Points)
	require.NotNil(t, event.MaterialTypeID)
	assert.Equal(t, materialID, *event.MaterialTypeID)
	assert.Nil(t, event.WeightKg)
	assert.Equal(t, entity.CollectionModeScan, event.Mode())
}

func TestCollectionService_ProcessScan_UnknownMaterial(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()

	fx.factory.On("MaterialTypeRepo").Return(fx.materialRepo)
	fx.materialRepo.On("FindByCode", ctx, "QR_BOGUS_1").Return(nil, repository.ErrMaterialTypeNotFound)

	_, err := fx.service.ProcessScan(ctx, uuid.New(), usecase.ProcessScanInput{
		AccountID:    uuid.New(),
		MaterialCode: "QR_BOGUS_1",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownMaterial))
}

func TestCollectionService_ProcessScan_MissingAccount(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	accountID := uuid.New()
	material := &entity.MaterialType{ID: uuid.New(), PointValue: 5, Code: "QR_GLASS_1"}

	fx.factory.On("MaterialTypeRepo").Return(fx.materialRepo)
	fx.factory.On("UserRepo").Return(fx.userRepo)

	fx.materialRepo.On("FindByCode", ctx, material.Code).Return(material, nil)
	fx.userRepo.On("FindByID", ctx, accountID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.ProcessScan(ctx, uuid.New(), usecase.ProcessScanInput{
		AccountID:    accountID,
		MaterialCode: material.Code,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingAccount))
}

func TestCollectionService_ProcessScan_RejectsNonParticipant(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	accountID := uuid.New()
	material := &entity.MaterialType{ID: uuid.New(), PointValue: 5, Code: "QR_GLASS_1"}
	collector := &entity.User{ID: accountID, Role: entity.RoleCollector}

	fx.factory.On("MaterialTypeRepo").Return(fx.materialRepo)
	fx.factory.On("UserRepo").Return(fx.userRepo)

	fx.materialRepo.On("FindByCode", ctx, material.Code).Return(material, nil)
	fx.userRepo.On("FindByID", ctx, accountID).Return(collector, nil)

	_, err := fx.service.ProcessScan(ctx, uuid.New(), usecase.ProcessScanInput{
		AccountID:    accountID,
		MaterialCode: material.Code,
	})

	require.Error(t, err)
	// A collector account is not a creditable participant account.
	assert.True(t, errors.Is(err, domainerrors.ErrMissingAccount))
}

func TestCollectionService_ProcessWeight_RoundsToNearestPoint(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.User{ID: accountID, Role: entity.RoleUser, Points: 3}

	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.factory.On("CollectionEventRepo").Return(fx.eventRepo)

	fx.userRepo.On("FindByID", ctx, accountID).Return(account, nil)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.eventRepo.On("Create", ctx, mock.AnythingOfType("*entity.CollectionEvent")).Return(nil)
	fx.publisher.On("PublishLedgerEvent", ctx, mock.AnythingOfType("*service.LedgerEvent")).Return(nil)

	event, err := fx.service.ProcessWeight(ctx, uuid.New(), usecase.ProcessWeightInput{
		AccountID: accountID,
		WeightKg:  1.5,
	})

	require.NoError(t, err)
	assert.Equal(t, 15, event.PointsEarned)
	assert.Equal(t, 18, account.Points)
	require.NotNil(t, event.WeightKg)
	assert.InDelta(t, 1.5, *event.WeightKg, 1e-9)
	assert.Nil(t, event.MaterialTypeID)
	assert.Equal(t, entity.CollectionModeWeight, event.Mode())
}

func TestCollectionService_ProcessWeight_ZeroWeightCreditsZero(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.User{ID: accountID, Role: entity.RoleUser, Points: 7}

	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.factory.On("CollectionEventRepo").Return(fx.eventRepo)

	fx.userRepo.On("FindByID", ctx, accountID).Return(account, nil)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.eventRepo.On("Create", ctx, mock.AnythingOfType("*entity.CollectionEvent")).Return(nil)
	fx.publisher.On("PublishLedgerEvent", ctx, mock.AnythingOfType("*service.LedgerEvent")).Return(nil)

	event, err := fx.service.ProcessWeight(ctx, uuid.New(), usecase.ProcessWeightInput{
		AccountID: accountID,
		WeightKg:  0,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, event.PointsEarned)
	assert.Equal(t, 7, account.Points)
}

func TestCollectionService_ProcessWeight_NegativeWeight(t *testing.T) {
	fx := createTestCollectionService(t)

	_, err := fx.service.ProcessWeight(context.Background(), uuid.New(), usecase.ProcessWeightInput{
		AccountID: uuid.New(),
		WeightKg:  -0.5,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidWeight))
}

func TestCollectionService_ProcessWeight_PublishFailureDoesNotFailCredit(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.User{ID: accountID, Role: entity.RoleUser}

	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.factory.On("CollectionEventRepo").Return(fx.eventRepo)

	fx.userRepo.On("FindByID", ctx, accountID).Return(account, nil)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.eventRepo.On("Create", ctx, mock.AnythingOfType("*entity.CollectionEvent")).Return(nil)
	fx.publisher.On("PublishLedgerEvent", ctx, mock.AnythingOfType("*service.LedgerEvent")).
		Return(errors.New("broker unavailable"))

	event, err := fx.service.ProcessWeight(ctx, uuid.New(), usecase.ProcessWeightInput{
		AccountID: accountID,
		WeightKg:  2.0,
	})

	require.NoError(t, err)
	assert.Equal(t, 20, event.PointsEarned)
}

func TestCollectionService_CurrentScaleReading(t *testing.T) {
	fx := createTestCollectionService(t)

	expected := service.WeightReading{WeightKg: 4.2}
	fx.weightSource.On("Current").Return(expected, true)

	reading, err := fx.service.CurrentScaleReading(context.Background())

	require.NoError(t, err)
	assert.InDelta(t, 4.2, reading.WeightKg, 1e-9)
}

func TestCollectionService_CurrentScaleReading_NoReading(t *testing.T) {
	fx := createTestCollectionService(t)

	fx.weightSource.On("Current").Return(service.WeightReading{}, false)

	_, err := fx.service.CurrentScaleReading(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNoScaleReading))
}

func TestPointsForWeight(t *testing.T) {
	tests := []struct {
		name        string
		weightKg    float64
		pointsPerKg int
		expected    int
	}{
		{"whole kilograms", 2.0, 10, 20},
		{"half kilogram rounds up", 1.5, 10, 15},
		{"just below half rounds down", 0.04, 10, 0},
		{"half point rounds away from zero", 0.05, 10, 1},
		{"zero weight", 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PointsForWeight(tt.weightKg, tt.pointsPerKg))
		})
	}
}

package impl

import (
	"context"
	"testing"

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

// redemptionServiceFixtures holds all test dependencies for redemption service tests.
type redemptionServiceFixtures struct {
	service        usecase.RedemptionUsecase
	factory        *mockRepo.MockRepositoryFactory
	userRepo       *mockRepo.MockUserRepository
	redemptionRepo *mockRepo.MockRedemptionRepository
	publisher      *mockService.MockEventPublisher
}

func createTestRedemptionService(t *testing.T) redemptionServiceFixtures {
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	redemptionRepo := mockRepo.NewMockRedemptionRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := &redemptionService{
		txManager:      &stubTxManager{factory: factory},
		redemptionRepo: redemptionRepo,
		eventPublisher: publisher,
		minimumPoints:  100,
		pointsPerUnit:  100,
		logger:         testLogger(),
	}

	return redemptionServiceFixtures{
		service:        svc,
		factory:        factory,
		userRepo:       userRepo,
		redemptionRepo: redemptionRepo,
		publisher:      publisher,
	}
}

func bankAccount(points int) *entity.User {
	return &entity.User{
		ID:     uuid.New(),
		Role:   entity.RoleUser,
		Points: points,
		BankDetails: &entity.BankDetails{
			BankName:      "First Bank",
			AccountNumber: "0123456789",
			AccountName:   "Ada Participant",
		},
	}
}

func TestRedemptionService_RequestRedemption_BankPayout(t *testing.T) {
	fx := createTestRedemptionService(t)

	ctx := context.Background()
	account := bankAccount(150)

	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.factory.On("RedemptionRepo").Return(fx.redemptionRepo)

	fx.userRepo.On("FindByID", ctx, account.ID).Return(account, nil)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.redemptionRepo.On("Create", ctx, mock.AnythingOfType("*entity.Redemption")).Return(nil)
	fx.publisher.On("PublishLedgerEvent", ctx, mock.AnythingOfType("*service.LedgerEvent")).Return(nil)

	redemption, err := fx.service.RequestRedemption(ctx, account.ID, usecase.RequestRedemptionInput{
		Points: 150,
		Method: entity.RedemptionMethodBank,
	})

	require.NoError(t, err)
	assert.Equal(t, 150, redemption.Points)
	assert.InDelta(t, 1.5, redemption.Amount, 1e-9)
	assert.Equal(t, entity.RedemptionStatusPending, redemption.Status)
	assert.Equal(t, "First Bank - 0123456789", redemption.Destination)
	assert.Equal(t, 0, account.Points)
}

func TestRedemptionService_RequestRedemption_WalletPayout(t *testing.T) {
	fx := createTestRedemptionService(t)

	ctx := context.Background()
	account := &entity.User{
		ID:            uuid.New(),
		Role:          entity.RoleUser,
		Points:        300,
		WalletAddress: "0xabc123",
	}

	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.factory.On("RedemptionRepo").Return(fx.redemptionRepo)

	fx.userRepo.On("FindByID", ctx, account.ID).Return(account, nil)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.redemptionRepo.On("Create", ctx, mock.AnythingOfType("*entity.Redemption")).Return(nil)
	fx.publisher.On("PublishLedgerEvent", ctx, mock.AnythingOfType("*service.LedgerEvent")).Return(nil)

	redemption, err := fx.service.RequestRedemption(ctx, account.ID, usecase.RequestRedemptionInput{
		Points: 200,
		Method: entity.RedemptionMethodWallet,
	})

	require.NoError(t, err)
	assert.InDelta(t, 2.0, redemption.Amount, 1e-9)
	assert.Equal(t, "0xabc123", redemption.Destination)
	assert.Equal(t, 100, account.Points)
}

func TestRedemptionService_RequestRedemption_BelowMinimum(t *testing.T) {
	fx := createTestRedemptionService(t)

	// Below the minimum fails with an insufficient balance error before any
	// balance is even read, no matter how many points the account holds.
	_, err := fx.service.RequestRedemption(context.Background(), uuid.New(), usecase.RequestRedemptionInput{
		Points: 50,
		Method: entity.RedemptionMethodBank,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientBalance))
	fx.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestRedemptionService_RequestRedemption_InsufficientBalance(t *testing.T) {
	fx := createTestRedemptionService(t)

	ctx := context.Background()
	account := bankAccount(80)

	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.userRepo.On("FindByID", ctx, account.ID).Return(account, nil)

	_, err := fx.service.RequestRedemption(ctx, account.ID, usecase.RequestRedemptionInput{
		Points: 100,
		Method: entity.RedemptionMethodBank,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientBalance))
	// The failed request must not touch the balance.
	assert.Equal(t, 80, account.Points)
}

func TestRedemptionService_RequestRedemption_MissingBankDetails(t *testing.T) {
	fx := createTestRedemptionService(t)

	ctx := context.Background()
	account := &entity.User{ID: uuid.New(), Role: entity.RoleUser, Points: 500}

	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.userRepo.On("FindByID", ctx, account.ID).Return(account, nil)

	_, err := fx.service.RequestRedemption(ctx, account.ID, usecase.RequestRedemptionInput{
		Points: 100,
		Method: entity.RedemptionMethodBank,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingDestination))
	assert.Equal(t, 500, account.Points)
}

func TestRedemptionService_RequestRedemption_MissingWalletAddress(t *testing.T) {
	fx := createTestRedemptionService(t)

	ctx := context.Background()
	account := bankAccount(500)

	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.userRepo.On("FindByID", ctx, account.ID).Return(account, nil)

	_, err := fx.service.RequestRedemption(ctx, account.ID, usecase.RequestRedemptionInput{
		Points: 100,
		Method: entity.RedemptionMethodWallet,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingDestination))
}

func TestRedemptionService_RequestRedemption_InvalidMethod(t *testing.T) {
	fx := createTestRedemptionService(t)

	_, err := fx.service.RequestRedemption(context.Background(), uuid.New(), usecase.RequestRedemptionInput{
		Points: 100,
		Method: entity.RedemptionMethod("cheque"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRedemptionService_CompleteRedemption(t *testing.T) {
	fx := createTestRedemptionService(t)

	ctx := context.Background()
	redemptionID := uuid.New()
	redemption := &entity.Redemption{
		ID:        redemptionID,
		AccountID: uuid.New(),
		Points:    150,
		Status:    entity.RedemptionStatusPending,
	}

	fx.factory.On("RedemptionRepo").Return(fx.redemptionRepo)

	fx.redemptionRepo.On("FindByID", ctx, redemptionID).Return(redemption, nil)
	fx.redemptionRepo.On("UpdateStatus", ctx, redemptionID, entity.RedemptionStatusCompleted).Return(nil)
	fx.publisher.On("PublishLedgerEvent", ctx, mock.AnythingOfType("*service.LedgerEvent")).Return(nil)

	require.NoError(t, fx.service.CompleteRedemption(ctx, redemptionID))
}

func TestRedemptionService_CompleteRedemption_NotPending(t *testing.T) {
	fx := createTestRedemptionService(t)

	ctx := context.Background()
	redemptionID := uuid.New()
	redemption := &entity.Redemption{
		ID:     redemptionID,
		Status: entity.RedemptionStatusCompleted,
	}

	fx.factory.On("RedemptionRepo").Return(fx.redemptionRepo)
	fx.redemptionRepo.On("FindByID", ctx, redemptionID).Return(redemption, nil)

	err := fx.service.CompleteRedemption(ctx, redemptionID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRedemptionNotPending))
}

func TestRedemptionService_FailRedemption_RestoresBalance(t *testing.T) {
	fx := createTestRedemptionService(t)

	ctx := context.Background()
	redemptionID := uuid.New()
	account := bankAccount(0)
	redemption := &entity.Redemption{
		ID:        redemptionID,
		AccountID: account.ID,
		Points:    150,
		Status:    entity.RedemptionStatusPending,
	}

	fx.factory.On("RedemptionRepo").Return(fx.redemptionRepo)
	fx.factory.On("UserRepo").Return(fx.userRepo)

	fx.redemptionRepo.On("FindByID", ctx, redemptionID).Return(redemption, nil)
	fx.redemptionRepo.On("UpdateStatus", ctx, redemptionID, entity.RedemptionStatusFailed).Return(nil)
	fx.userRepo.On("FindByID", ctx, account.ID).Return(account, nil)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.publisher.On("PublishLedgerEvent", ctx, mock.AnythingOfType("*service.LedgerEvent")).Return(nil)

	require.NoError(t, fx.service.FailRedemption(ctx, redemptionID))
	assert.Equal(t, 150, account.Points)
}

func TestRedemptionService_GetRedemption_NotFound(t *testing.T) {
	fx := createTestRedemptionService(t)

	ctx := context.Background()
	redemptionID := uuid.New()

	fx.redemptionRepo.On("FindByID", ctx, redemptionID).Return(nil, repository.ErrRedemptionNotFound)

	_, err := fx.service.GetRedemption(ctx, redemptionID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestRedemptionService_ListPendingRedemptions(t *testing.T) {
	fx := createTestRedemptionService(t)

	ctx := context.Background()
	pending := []*entity.Redemption{
		{ID: uuid.New(), Status: entity.RedemptionStatusPending},
		{ID: uuid.New(), Status: entity.RedemptionStatusPending},
	}

	fx.redemptionRepo.On("ListByStatus", ctx, entity.RedemptionStatusPending).Return(pending, nil)

	result, err := fx.service.ListPendingRedemptions(ctx)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

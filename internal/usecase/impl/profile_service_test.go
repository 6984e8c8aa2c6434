package impl

import (
	"context"
	"testing"

	"ecopoint/internal/domain/entity"
	domainerrors "ecopoint/internal/domain/errors"
	"ecopoint/internal/domain/repository"
	mockRepo "ecopoint/internal/mocks/repository"
	"ecopoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service  usecase.ProfileUsecase
	factory  *mockRepo.MockRepositoryFactory
	userRepo *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	svc := &profileService{
		txManager: &stubTxManager{factory: factory},
		userRepo:  userRepo,
		logger:    testLogger(),
	}

	return profileServiceFixtures{service: svc, factory: factory, userRepo: userRepo}
}

func TestProfileService_GetProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Ada", Points: 250}

	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	profile, err := fx.service.GetProfile(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, 250, profile.Points)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingAccount))
}

func TestProfileService_UpdatePayoutSettings_Wallet(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := &entity.User{
		ID: uuid.New(),
		BankDetails: &entity.BankDetails{
			BankName:      "First Bank",
			AccountNumber: "0123456789",
		},
	}
	wallet := "0xabc123"

	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	updated, err := fx.service.UpdatePayoutSettings(ctx, user.ID, &usecase.UpdatePayoutSettingsInput{
		WalletAddress: &wallet,
	})

	require.NoError(t, err)
	assert.Equal(t, "0xabc123", updated.WalletAddress)
	// Bank details stay untouched when the input leaves them nil.
	require.NotNil(t, updated.BankDetails)
	assert.Equal(t, "First Bank", updated.BankDetails.BankName)
}

func TestProfileService_UpdatePayoutSettings_IncompleteBankDetails(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}

	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	_, err := fx.service.UpdatePayoutSettings(ctx, user.ID, &usecase.UpdatePayoutSettingsInput{
		BankDetails: &entity.BankDetails{BankName: "First Bank"},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

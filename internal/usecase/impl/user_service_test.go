package impl

import (
	"context"
	"testing"
	"time"

	"ecopoint/internal/domain/entity"
	domainerrors "ecopoint/internal/domain/errors"
	"ecopoint/internal/domain/repository"
	mockRepo "ecopoint/internal/mocks/repository"
	mockService "ecopoint/internal/mocks/service"
	"ecopoint/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testRefreshSecret = "refresh-secret"

type userServiceFixtures struct {
	service          usecase.UserUsecase
	factory          *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockService.MockPasswordHasher
	tokenService     *mockService.MockTokenService
}

func createTestUserService(t *testing.T, maxActiveSessions int) userServiceFixtures {
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	svc := &userService{
		txManager:         &stubTxManager{factory: factory},
		refreshTokenRepo:  refreshTokenRepo,
		hasher:            hasher,
		tokenService:      tokenService,
		refreshSecret:     testRefreshSecret,
		maxActiveSessions: maxActiveSessions,
		logger:            testLogger(),
	}

	return userServiceFixtures{
		service:          svc,
		factory:          factory,
		userRepo:         userRepo,
		authRepo:         authRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func TestUserService_Register(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := usecase.RegisterUserInput{
		Name:     "Ada Participant",
		Email:    "ada@example.com",
		Password: "hunter22",
		Role:     entity.RoleUser,
	}

	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.factory.On("AuthRepo").Return(fx.authRepo)

	fx.hasher.On("Hash", input.Password).Return("hashed-password", nil)
	fx.authRepo.On("FindAuthentication", ctx, entity.ProviderTypeEmail, input.Email).
		Return(nil, repository.ErrAuthNotFound)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.authRepo.On("Create", ctx, mock.AnythingOfType("*entity.Authentication")).Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.Equal(t, 0, output.User.Points)
}

func TestUserService_Register_AdminRoleRejected(t *testing.T) {
	fx := createTestUserService(t, 0)

	_, err := fx.service.Register(context.Background(), usecase.RegisterUserInput{
		Name:     "Mallory",
		Email:    "mallory@example.com",
		Password: "hunter22",
		Role:     entity.RoleAdmin,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	existing := &entity.Authentication{UserID: uuid.New(), Provider: entity.ProviderTypeEmail}

	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.factory.On("AuthRepo").Return(fx.authRepo)

	fx.hasher.On("Hash", "hunter22").Return("hashed-password", nil)
	fx.authRepo.On("FindAuthentication", ctx, entity.ProviderTypeEmail, "ada@example.com").
		Return(existing, nil)

	_, err := fx.service.Register(ctx, usecase.RegisterUserInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter22",
		Role:     entity.RoleUser,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Login(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleUser}
	authRecord := &entity.Authentication{UserID: user.ID, PasswordHash: "hashed-password"}

	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.factory.On("AuthRepo").Return(fx.authRepo)
	fx.factory.On("RefreshTokenRepo").Return(fx.refreshTokenRepo)

	fx.authRepo.On("FindAuthentication", ctx, entity.ProviderTypeEmail, user.Email).Return(authRecord, nil)
	fx.hasher.On("Check", "hunter22", "hashed-password").Return(true)
	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	fx.tokenService.On("GenerateTokens", user.ID, []string{"user"}).Return("access-token", "refresh-token", nil)
	fx.tokenService.On("HashToken", "refresh-token").Return("refresh-token-hash")
	fx.tokenService.On("GetRefreshTokenDuration").Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.On("Create", ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "hunter22"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	authRecord := &entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed-password"}

	fx.factory.On("AuthRepo").Return(fx.authRepo)
	fx.authRepo.On("FindAuthentication", ctx, entity.ProviderTypeEmail, "ada@example.com").Return(authRecord, nil)
	fx.hasher.On("Check", "wrong", "hashed-password").Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()

	fx.factory.On("AuthRepo").Return(fx.authRepo)
	fx.authRepo.On("FindAuthentication", ctx, entity.ProviderTypeEmail, "ghost@example.com").
		Return(nil, repository.ErrAuthNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "hunter22"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_EvictsOldestSession(t *testing.T) {
	fx := createTestUserService(t, 2)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleUser}
	authRecord := &entity.Authentication{UserID: user.ID, PasswordHash: "hashed-password"}
	oldest := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID}
	newer := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID}

	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.factory.On("AuthRepo").Return(fx.authRepo)
	fx.factory.On("RefreshTokenRepo").Return(fx.refreshTokenRepo)

	fx.authRepo.On("FindAuthentication", ctx, entity.ProviderTypeEmail, user.Email).Return(authRecord, nil)
	fx.hasher.On("Check", "hunter22", "hashed-password").Return(true)
	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	fx.tokenService.On("GenerateTokens", user.ID, []string{"user"}).Return("access-token", "refresh-token", nil)
	fx.tokenService.On("HashToken", "refresh-token").Return("refresh-token-hash")
	fx.tokenService.On("GetRefreshTokenDuration").Return(7 * 24 * time.Hour)

	fx.refreshTokenRepo.On("ListByUser", ctx, user.ID).
		Return([]*entity.RefreshToken{oldest, newer}, nil)
	fx.refreshTokenRepo.On("DeleteByID", ctx, oldest.ID).Return(nil)
	fx.refreshTokenRepo.On("Create", ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "hunter22"})

	require.NoError(t, err)
	fx.refreshTokenRepo.AssertNotCalled(t, "DeleteByID", ctx, newer.ID)
}

func validRefreshJWT(userID uuid.UUID) *jwt.Token {
	return &jwt.Token{Valid: true, Claims: jwt.MapClaims{"sub": userID.String()}}
}

func TestUserService_RefreshTokens_Rotates(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	stored := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: "old-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.factory.On("UserRepo").Return(fx.userRepo)
	fx.factory.On("RefreshTokenRepo").Return(fx.refreshTokenRepo)

	fx.tokenService.On("ValidateToken", "old-refresh", testRefreshSecret).
		Return(validRefreshJWT(user.ID), nil)
	fx.tokenService.On("HashToken", "old-refresh").Return("old-hash")
	fx.refreshTokenRepo.On("FindByTokenHash", ctx, "old-hash").Return(stored, nil)
	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	fx.tokenService.On("GenerateTokens", user.ID, []string{"user"}).Return("new-access", "new-refresh", nil)
	fx.refreshTokenRepo.On("DeleteByID", ctx, stored.ID).Return(nil)
	fx.tokenService.On("HashToken", "new-refresh").Return("new-hash")
	fx.tokenService.On("GetRefreshTokenDuration").Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.On("Create", ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	output, err := fx.service.RefreshTokens(ctx, "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestUserService_RefreshTokens_Expired(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: "old-hash",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.factory.On("RefreshTokenRepo").Return(fx.refreshTokenRepo)

	fx.tokenService.On("ValidateToken", "old-refresh", testRefreshSecret).
		Return(validRefreshJWT(userID), nil)
	fx.tokenService.On("HashToken", "old-refresh").Return("old-hash")
	fx.refreshTokenRepo.On("FindByTokenHash", ctx, "old-hash").Return(stored, nil)

	_, err := fx.service.RefreshTokens(ctx, "old-refresh")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_RefreshTokens_BadSignature(t *testing.T) {
	fx := createTestUserService(t, 0)

	fx.tokenService.On("ValidateToken", "forged", testRefreshSecret).
		Return(nil, jwt.ErrSignatureInvalid)

	_, err := fx.service.RefreshTokens(context.Background(), "forged")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Logout(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()

	fx.tokenService.On("HashToken", "refresh-token").Return("refresh-token-hash")
	fx.refreshTokenRepo.On("DeleteByTokenHash", ctx, "refresh-token-hash").Return(nil)

	require.NoError(t, fx.service.Logout(ctx, "refresh-token"))
}

func TestUserService_Logout_AlreadyLoggedOut(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()

	fx.tokenService.On("HashToken", "refresh-token").Return("refresh-token-hash")
	fx.refreshTokenRepo.On("DeleteByTokenHash", ctx, "refresh-token-hash").
		Return(repository.ErrRefreshTokenNotFound)

	require.NoError(t, fx.service.Logout(ctx, "refresh-token"))
}

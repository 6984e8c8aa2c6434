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

func createTestDeviceService(t *testing.T) (usecase.DeviceUsecase, *mockRepo.MockDeviceRepository) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return &deviceService{deviceRepo: deviceRepo, logger: testLogger()}, deviceRepo
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	svc, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.On("Upsert", ctx, mock.AnythingOfType("*entity.UserDevice")).Return(nil)

	device, err := svc.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "fcm-token-1",
		DeviceID: "device-1",
		Platform: "android",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_MissingFields(t *testing.T) {
	svc, _ := createTestDeviceService(t)

	_, err := svc.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{
		DeviceID: "device-1",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	svc, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{
		{UserID: userID, DeviceID: "device-1", IsActive: true},
	}

	deviceRepo.On("ListActiveByUser", ctx, userID).Return(devices, nil)

	result, err := svc.GetUserDevices(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestDeviceService_DeactivateDevice_NotFound(t *testing.T) {
	svc, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.On("Deactivate", ctx, userID, "device-1").Return(repository.ErrDeviceNotFound)

	err := svc.DeactivateDevice(ctx, userID, "device-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

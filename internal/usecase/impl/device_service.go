package impl

import (
	"context"
	"log/slog"

	deliverycontext "ecopoint/internal/delivery/context"
	"ecopoint/internal/domain/entity"
	domainerrors "ecopoint/internal/domain/errors"
	"ecopoint/internal/domain/repository"
	"ecopoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(deviceRepo repository.DeviceRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice registers a new device or refreshes an existing one.
func (srv *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	srv.log(ctx).Info("Registering device", slog.Any("userID", userID), slog.String("deviceID", deviceInfo.DeviceID))

	if deviceInfo.FCMToken == "" || deviceInfo.DeviceID == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "fcm token and device id are required")
	}

	device := &entity.UserDevice{
		UserID:   userID,
		FCMToken: deviceInfo.FCMToken,
		DeviceID: deviceInfo.DeviceID,
		Platform: deviceInfo.Platform,
		IsActive: true,
	}

	if err := srv.deviceRepo.Upsert(ctx, device); err != nil {
		srv.log(ctx).Error("Failed to register device", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register device")
	}

	return device, nil
}

// GetUserDevices retrieves all active devices for a user.
func (srv *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := srv.deviceRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user devices")
	}

	return devices, nil
}

// DeactivateDevice deactivates a device.
func (srv *deviceService) DeactivateDevice(ctx context.Context, userID uuid.UUID, deviceID string) error {
	srv.log(ctx).Info("Deactivating device", slog.Any("userID", userID), slog.String("deviceID", deviceID))

	if err := srv.deviceRepo.Deactivate(ctx, userID, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "device not found")
		}

		return errors.Wrap(err, "failed to deactivate device")
	}

	return nil
}

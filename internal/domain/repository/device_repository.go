package repository

import (
	"context"
	"errors"

	"ecopoint/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when no device matches an identifier.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the operations for push-notification devices.
type DeviceRepository interface {
	// Upsert registers a device or refreshes the FCM token of an existing one
	// (matched by user ID + device ID).
	Upsert(ctx context.Context, device *entity.UserDevice) error

	// ListActiveByUser returns a user's active devices.
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// Deactivate marks a device inactive; its token is no longer pushed to.
	Deactivate(ctx context.Context, userID uuid.UUID, deviceID string) error

	// DeactivateByTokens marks every device carrying one of the given FCM
	// tokens inactive (token invalidation feedback from FCM).
	DeactivateByTokens(ctx context.Context, tokens []string) error
}

package repository

import (
	"context"
	"errors"

	"ecopoint/internal/domain/entity"
)

// ErrAuthNotFound is returned when no credential matches a provider identity.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository defines the operations for credential persistence.
type AuthRepository interface {
	// FindAuthentication retrieves a credential by provider and provider user ID.
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)

	// Create persists a new credential.
	Create(ctx context.Context, auth *entity.Authentication) error
}

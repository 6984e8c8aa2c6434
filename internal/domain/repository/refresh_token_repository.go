package repository

import (
	"context"
	"errors"

	"ecopoint/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when no session matches a token hash.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the operations for session persistence.
type RefreshTokenRepository interface {
	// FindByTokenHash retrieves a session by the SHA-256 hash of the raw token.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// Create persists a new session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// DeleteByTokenHash removes a single session (logout).
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// ListByUser returns a user's sessions ordered oldest first, so the
	// caller can evict from the front when the session cap is reached.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error)

	// DeleteByID removes a single session by record ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

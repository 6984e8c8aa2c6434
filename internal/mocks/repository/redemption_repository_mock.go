package repository

import (
	"context"
	"testing"

	"ecopoint/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRedemptionRepository is a mock implementation of repository.RedemptionRepository.
type MockRedemptionRepository struct {
	mock.Mock
}

// NewMockRedemptionRepository creates a new mock and registers cleanup assertions.
func NewMockRedemptionRepository(t *testing.T) *MockRedemptionRepository {
	m := &MockRedemptionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRedemptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Redemption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Redemption), args.Error(1)
}

func (m *MockRedemptionRepository) Create(ctx context.Context, redemption *entity.Redemption) error {
	args := m.Called(ctx, redemption)

	return args.Error(0)
}

func (m *MockRedemptionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RedemptionStatus) error {
	args := m.Called(ctx, id, status)

	return args.Error(0)
}

func (m *MockRedemptionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Redemption, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Redemption), args.Error(1)
}

func (m *MockRedemptionRepository) ListByStatus(ctx context.Context, status entity.RedemptionStatus) ([]*entity.Redemption, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Redemption), args.Error(1)
}

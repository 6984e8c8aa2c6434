// Package usecase contains mock implementations of the usecase interfaces.
package usecase

import (
	"context"
	"testing"

	"ecopoint/internal/domain/entity"
	"ecopoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRedemptionUsecase is a mock implementation of usecase.RedemptionUsecase.
type MockRedemptionUsecase struct {
	mock.Mock
}

// NewMockRedemptionUsecase creates a new mock and registers cleanup assertions.
func NewMockRedemptionUsecase(t *testing.T) *MockRedemptionUsecase {
	m := &MockRedemptionUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRedemptionUsecase) RequestRedemption(ctx context.Context, accountID uuid.UUID, input usecase.RequestRedemptionInput) (*entity.Redemption, error) {
	args := m.Called(ctx, accountID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Redemption), args.Error(1)
}

func (m *MockRedemptionUsecase) CompleteRedemption(ctx context.Context, redemptionID uuid.UUID) error {
	args := m.Called(ctx, redemptionID)

	return args.Error(0)
}

func (m *MockRedemptionUsecase) FailRedemption(ctx context.Context, redemptionID uuid.UUID) error {
	args := m.Called(ctx, redemptionID)

	return args.Error(0)
}

func (m *MockRedemptionUsecase) GetRedemption(ctx context.Context, redemptionID uuid.UUID) (*entity.Redemption, error) {
	args := m.Called(ctx, redemptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Redemption), args.Error(1)
}

func (m *MockRedemptionUsecase) ListAccountRedemptions(ctx context.Context, accountID uuid.UUID) ([]*entity.Redemption, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Redemption), args.Error(1)
}

func (m *MockRedemptionUsecase) ListPendingRedemptions(ctx context.Context) ([]*entity.Redemption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Redemption), args.Error(1)
}

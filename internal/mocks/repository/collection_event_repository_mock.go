package repository

import (
	"context"
	"testing"

	"ecopoint/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCollectionEventRepository is a mock implementation of repository.CollectionEventRepository.
type MockCollectionEventRepository struct {
	mock.Mock
}

// NewMockCollectionEventRepository creates a new mock and registers cleanup assertions.
func NewMockCollectionEventRepository(t *testing.T) *MockCollectionEventRepository {
	m := &MockCollectionEventRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCollectionEventRepository) Create(ctx context.Context, event *entity.CollectionEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *MockCollectionEventRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.CollectionEvent, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.CollectionEvent), args.Error(1)
}

func (m *MockCollectionEventRepository) ListByCollector(ctx context.Context, collectorID uuid.UUID, limit int) ([]*entity.CollectionEvent, error) {
	args := m.Called(ctx, collectorID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.CollectionEvent), args.Error(1)
}

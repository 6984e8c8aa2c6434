package repository

import (
	"context"
	"testing"

	"ecopoint/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMaterialTypeRepository is a mock implementation of repository.MaterialTypeRepository.
type MockMaterialTypeRepository struct {
	mock.Mock
}

// NewMockMaterialTypeRepository creates a new mock and registers cleanup assertions.
func NewMockMaterialTypeRepository(t *testing.T) *MockMaterialTypeRepository {
	m := &MockMaterialTypeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMaterialTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MaterialType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.MaterialType), args.Error(1)
}

func (m *MockMaterialTypeRepository) FindByCode(ctx context.Context, code string) (*entity.MaterialType, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.MaterialType), args.Error(1)
}

func (m *MockMaterialTypeRepository) Create(ctx context.Context, materialType *entity.MaterialType) error {
	args := m.Called(ctx, materialType)

	return args.Error(0)
}

func (m *MockMaterialTypeRepository) List(ctx context.Context) ([]*entity.MaterialType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.MaterialType), args.Error(1)
}

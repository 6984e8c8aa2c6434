// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"
	"testing"

	"ecopoint/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock implementation of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a new mock and registers cleanup assertions.
func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// MockRepositoryFactory is a mock implementation of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a new mock and registers cleanup assertions.
func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	args := m.Called()

	return args.Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) MaterialTypeRepo() repository.MaterialTypeRepository {
	args := m.Called()

	return args.Get(0).(repository.MaterialTypeRepository)
}

func (m *MockRepositoryFactory) CollectionEventRepo() repository.CollectionEventRepository {
	args := m.Called()

	return args.Get(0).(repository.CollectionEventRepository)
}

func (m *MockRepositoryFactory) RedemptionRepo() repository.RedemptionRepository {
	args := m.Called()

	return args.Get(0).(repository.RedemptionRepository)
}

func (m *MockRepositoryFactory) AuthRepo() repository.AuthRepository {
	args := m.Called()

	return args.Get(0).(repository.AuthRepository)
}

func (m *MockRepositoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	args := m.Called()

	return args.Get(0).(repository.RefreshTokenRepository)
}

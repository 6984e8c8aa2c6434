package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
// Every balance mutation in the ledger runs through Execute so that
// check-then-act sequences (balance check before debit, lookup before credit)
// are serialized by the database and never race against a stale balance.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// MaterialTypeRepo returns a MaterialTypeRepository bound to the current transaction.
	MaterialTypeRepo() MaterialTypeRepository

	// CollectionEventRepo returns a CollectionEventRepository bound to the current transaction.
	CollectionEventRepo() CollectionEventRepository

	// RedemptionRepo returns a RedemptionRepository bound to the current transaction.
	RedemptionRepo() RedemptionRepository

	// AuthRepo returns an AuthRepository bound to the current transaction.
	AuthRepo() AuthRepository

	// RefreshTokenRepo returns a RefreshTokenRepository bound to the current transaction.
	RefreshTokenRepo() RefreshTokenRepository
}

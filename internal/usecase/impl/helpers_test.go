package impl

import (
	"context"
	"io"
	"log/slog"

	"ecopoint/internal/domain/repository"
)

// stubTxManager executes the callback against a fixed repository factory,
// propagating the callback's error exactly as a committed or rolled-back
// transaction would.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (s *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s.factory)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

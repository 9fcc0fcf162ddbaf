package impl

import (
	"context"
	"io"
	"log/slog"

	"mandoob/config"
	"mandoob/internal/domain/repository"
	mockRepo "mandoob/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(pendingLimit int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
		},
		Combination: &config.CombinationConfig{
			PendingLimit: pendingLimit,
		},
	}
}

// runInTx makes the transaction manager mock invoke the callback with factory.
func runInTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

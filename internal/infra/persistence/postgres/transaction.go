// Package postgres implements the domain repositories on GORM and PostgreSQL.
package postgres

import (
	"context"

	"mandoob/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

// txRepositories hands out repositories that share one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewNotificationRepository() repository.NotificationRepository {
	return NewNotificationRepository(r.tx)
}

func (r txRepositories) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(r.tx)
}

func (r txRepositories) NewCombinationRepository() repository.CombinationRepository {
	return NewCombinationRepository(r.tx)
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &txManager{db: db}
}

// Execute commits when fn returns nil and rolls back on an error or panic.
// Errors from fn are returned unwrapped so callers can match domain sentinels.
func (m *txManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})

	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	default:
		return errors.Wrap(err, "transaction")
	}
}

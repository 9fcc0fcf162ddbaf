package repository

import (
	"context"
	"errors"

	"mandoob/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCombinationNotFound is returned when a combination does not exist or belongs to another user.
var ErrCombinationNotFound = errors.New("combination not found")

// CombinationRepository defines order combination persistence.
type CombinationRepository interface {
	// CreateCombination persists a new combination.
	CreateCombination(ctx context.Context, combination *entity.OrderCombination) error

	// FindCombinationByID retrieves a combination owned by userID.
	FindCombinationByID(ctx context.Context, userID, id uuid.UUID) (*entity.OrderCombination, error)

	// FindCombinationsByUser returns the newest combinations of a user.
	FindCombinationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.OrderCombination, error)

	// MarkAccepted sets accepted=true. Accepting twice is not an error.
	MarkAccepted(ctx context.Context, userID, id uuid.UUID) error
}

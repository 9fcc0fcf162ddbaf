package usecase

import (
	"context"

	"mandoob/internal/domain/entity"

	"github.com/google/uuid"
)

// CombinationUsecase suggests and accepts batched deliveries.
type CombinationUsecase interface {
	ListCombinations(ctx context.Context, userID uuid.UUID) ([]*entity.OrderCombination, error)

	// GenerateCombinations pairs the courier's pending orders and stores every admitted pair.
	GenerateCombinations(ctx context.Context, userID uuid.UUID) ([]*entity.OrderCombination, error)

	// AcceptCombination marks the combination accepted and its orders as accepted in one transaction.
	AcceptCombination(ctx context.Context, userID, combinationID uuid.UUID) (*entity.OrderCombination, error)
}

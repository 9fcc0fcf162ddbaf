package repository

import (
	"context"
	"errors"

	"mandoob/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist or belongs to another user.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines order persistence. Every lookup is scoped by user.
type OrderRepository interface {
	// CreateOrder persists a new order.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order owned by userID.
	FindOrderByID(ctx context.Context, userID, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByUser returns the newest orders of a user, optionally filtered by status.
	FindOrdersByUser(ctx context.Context, userID uuid.UUID, status *entity.OrderStatus, limit int) ([]*entity.Order, error)

	// UpdateOrderStatus sets the status of one order owned by userID.
	UpdateOrderStatus(ctx context.Context, userID, id uuid.UUID, status entity.OrderStatus) error

	// UpdateOrdersStatus sets the status of every listed order owned by userID and
	// returns the number of rows matched.
	UpdateOrdersStatus(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, status entity.OrderStatus) (int64, error)
}

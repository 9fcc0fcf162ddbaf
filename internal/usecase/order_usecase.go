package usecase

import (
	"context"

	"mandoob/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationInput is a trip end supplied by the courier.
type LocationInput struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
	Address   string  `json:"address" validate:"required"`
}

// CreateOrderInput describes an order entered by hand instead of extracted from a notification.
type CreateOrderInput struct {
	AppName       string        `json:"app_name" validate:"required"`
	CustomerName  *string       `json:"customer_name,omitempty"`
	Pickup        LocationInput `json:"pickup_location"`
	Dropoff       LocationInput `json:"dropoff_location"`
	PaymentAmount *float64      `json:"payment_amount,omitempty" validate:"omitempty,gt=0"`
}

// OrderUsecase manages a courier's orders.
type OrderUsecase interface {
	// ListOrders returns the newest orders, optionally filtered by status.
	ListOrders(ctx context.Context, userID uuid.UUID, status string) ([]*entity.Order, error)

	CreateOrder(ctx context.Context, userID uuid.UUID, input *CreateOrderInput) (*entity.Order, error)

	// UpdateOrderStatus sets any valid status and returns the stored order.
	UpdateOrderStatus(ctx context.Context, userID, orderID uuid.UUID, status string) (*entity.Order, error)

	// AcceptOrder moves a pending order to accepted.
	AcceptOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// GenerateHandoffQR renders the PNG QR shown to the restaurant at pickup.
	GenerateHandoffQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error)

	// ConfirmHandoff moves the scanned order to in_progress.
	ConfirmHandoff(ctx context.Context, userID uuid.UUID, qrData string) (*entity.Order, error)
}

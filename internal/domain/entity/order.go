package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an Order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusAccepted   OrderStatus = "accepted"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid reports whether s belongs to the fixed status vocabulary.
// Transitions are not restricted: any valid status may follow any other.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}

	return false
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	status := OrderStatus(raw)

	return status, status.IsValid()
}

// Order is a delivery task, either extracted from a Notification or created manually.
type Order struct {
	ID             uuid.UUID   `json:"id"`
	UserID         uuid.UUID   `json:"user_id"`
	AppID          uuid.UUID   `json:"app_id"`
	AppName        string      `json:"app_name"`
	NotificationID *uuid.UUID  `json:"notification_id,omitempty"` // Nil for manually created orders.
	OrderReference string      `json:"order_reference"`           // Human-readable "ORDER-xxxxxxxx".
	CustomerName   *string     `json:"customer_name,omitempty"`
	Pickup         Location    `json:"pickup_location"`
	Dropoff        Location    `json:"dropoff_location"`
	PaymentAmount  *float64    `json:"payment_amount,omitempty"`
	Status         OrderStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// NewOrderReference builds a short human-readable reference for an order.
func NewOrderReference() string {
	return "ORDER-" + uuid.NewString()[:8]
}

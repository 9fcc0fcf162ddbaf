package service

import (
	"context"
)

// OrderEvent announces order activity to the notifier worker.
type OrderEvent struct {
	RequestID      string   `json:"request_id,omitempty"` // For distributed tracing
	EventID        string   `json:"event_id"`
	Type           string   `json:"type"` // constants.EventOrderExtracted or constants.EventCombinationsGenerated
	UserID         string   `json:"user_id"`
	OrderIDs       []string `json:"order_ids,omitempty"`
	CombinationIDs []string `json:"combination_ids,omitempty"`
	OrderReference string   `json:"order_reference,omitempty"`
	AppName        string   `json:"app_name,omitempty"`
	PickupAddress  string   `json:"pickup_address,omitempty"`
	DropoffAddress string   `json:"dropoff_address,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

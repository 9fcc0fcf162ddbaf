package usecase

import (
	"context"

	"mandoob/internal/domain/entity"

	"github.com/google/uuid"
)

// SimulateNotificationInput is a delivery-app notification as received on the courier's phone.
type SimulateNotificationInput struct {
	AppName string `json:"app_name" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// SimulateNotificationOutput carries the stored notification and the order derived from it, if any.
type SimulateNotificationOutput struct {
	Notification *entity.Notification `json:"notification"`
	Order        *entity.Order        `json:"order,omitempty"`
}

// NotificationUsecase ingests delivery-app notifications.
type NotificationUsecase interface {
	SimulateNotification(ctx context.Context, userID uuid.UUID, input *SimulateNotificationInput) (*SimulateNotificationOutput, error)
	ListNotifications(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)
}

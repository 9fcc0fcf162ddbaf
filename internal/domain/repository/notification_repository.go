package repository

import (
	"context"
	"errors"

	"mandoob/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found for the user.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotification persists a new notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// MarkProcessed sets is_processed on a notification owned by userID.
	MarkProcessed(ctx context.Context, userID, id uuid.UUID) error

	// FindNotificationsByUser returns the newest notifications of a user.
	FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error)
}

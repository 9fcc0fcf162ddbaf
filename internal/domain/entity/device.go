package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is a courier device registered for order push notifications.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the device.
	UserID    uuid.UUID `json:"user_id"`    // The courier who owns this device.
	FCMToken  string    `json:"fcm_token"`  // Firebase Cloud Messaging token.
	DeviceID  string    `json:"device_id"`  // Client-side device identifier.
	Platform  string    `json:"platform"`   // ios or android.
	IsActive  bool      `json:"is_active"`  // Inactive devices receive no pushes.
	CreatedAt time.Time `json:"created_at"` // Timestamp of registration.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

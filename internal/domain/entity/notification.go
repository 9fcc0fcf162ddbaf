package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a raw message attributed to a partner delivery app, awaiting extraction.
// Only IsProcessed and IsRead change after creation.
type Notification struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	AppID       uuid.UUID `json:"app_id"`
	AppName     string    `json:"app_name"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ReceivedAt  time.Time `json:"received_at"`
	IsRead      bool      `json:"is_read"`
	IsProcessed bool      `json:"is_processed"` // Set once an Order was derived; never reset.
}

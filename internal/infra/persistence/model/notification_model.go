package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table holding raw partner-app messages.
type NotificationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_user_received,priority:1"`
	AppID       uuid.UUID `gorm:"type:uuid;not null"`
	AppName     string    `gorm:"type:varchar(100);not null"`
	Title       string    `gorm:"type:varchar(255)"`
	Content     string    `gorm:"type:text;not null"`
	ReceivedAt  time.Time `gorm:"not null;index:idx_notifications_user_received,priority:2,sort:desc"`
	IsRead      bool      `gorm:"not null;default:false"`
	IsProcessed bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

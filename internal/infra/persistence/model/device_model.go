package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDeviceModel maps the 'user_devices' table: the phones a courier receives order pushes on.
// Deactivated devices are soft-deleted so the same phone can register again later.
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_user_devices_user_device,priority:1"`
	FCMToken  string    `gorm:"type:varchar(512);not null"`
	DeviceID  string    `gorm:"type:varchar(255);not null;index:idx_user_devices_user_device,priority:2"`
	Platform  string    `gorm:"type:varchar(16);not null;check:chk_user_devices_platform,platform IN ('ios','android')"`
	IsActive  bool      `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (UserDeviceModel) TableName() string {
	return "user_devices"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryAppModel mirrors the 'delivery_apps' catalog table.
type DeliveryAppModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	LogoURL   string    `gorm:"type:varchar(500)"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryAppModel) TableName() string {
	return "delivery_apps"
}

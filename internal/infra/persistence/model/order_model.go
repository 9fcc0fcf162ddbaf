package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Pickup and dropoff locations are flattened into columns.
type OrderModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index:idx_orders_user_status,priority:1"`
	AppID            uuid.UUID  `gorm:"type:uuid;not null"`
	AppName          string     `gorm:"type:varchar(100);not null"`
	NotificationID   *uuid.UUID `gorm:"type:uuid;index"`
	OrderReference   string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	CustomerName     *string    `gorm:"type:varchar(100)"`
	PickupAddress    string     `gorm:"type:text;not null"`
	PickupLatitude   float64    `gorm:"type:double precision;not null"`
	PickupLongitude  float64    `gorm:"type:double precision;not null"`
	DropoffAddress   string     `gorm:"type:text;not null"`
	DropoffLatitude  float64    `gorm:"type:double precision;not null"`
	DropoffLongitude float64    `gorm:"type:double precision;not null"`
	PaymentAmount    *float64   `gorm:"type:numeric(10,2)"`
	Status           string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_orders_user_status,priority:2"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

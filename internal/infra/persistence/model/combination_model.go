package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderCombinationModel mirrors the 'order_combinations' table.
// OrderIDs is stored as a JSON array of order UUIDs.
type OrderCombinationModel struct {
	ID                   uuid.UUID                      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID               uuid.UUID                      `gorm:"type:uuid;not null;index"`
	OrderIDs             datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb;not null"`
	TotalDistanceKm      float64                        `gorm:"type:double precision;not null"`
	EstimatedTimeMinutes int                            `gorm:"not null"`
	SavingsPercentage    float64                        `gorm:"type:double precision;not null"`
	Accepted             bool                           `gorm:"not null;default:false"`
	CreatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderCombinationModel) TableName() string {
	return "order_combinations"
}

// AllModels lists every persisted model, in dependency order, for migration and code generation.
func AllModels() []any {
	return []any{
		&UserModel{},
		&DeliveryAppModel{},
		&NotificationModel{},
		&OrderModel{},
		&OrderCombinationModel{},
		&UserDeviceModel{},
	}
}

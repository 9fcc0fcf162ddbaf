package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderCombination proposes servicing several pending orders of one user together.
// The generator only produces pairs, but OrderIDs holds any number of references.
type OrderCombination struct {
	ID                   uuid.UUID   `json:"id"`
	UserID               uuid.UUID   `json:"user_id"`
	OrderIDs             []uuid.UUID `json:"order_ids"`
	TotalDistanceKm      float64     `json:"total_distance"`
	EstimatedTimeMinutes int         `json:"estimated_time"`
	SavingsPercentage    float64     `json:"savings_percentage"`
	Accepted             bool        `json:"is_accepted"` // One-way false to true.
	CreatedAt            time.Time   `json:"created_at"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryApp is a partner application that surfaces delivery notifications.
type DeliveryApp struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`     // Display name, also the key used for cue-table lookup.
	LogoURL   string    `json:"logo_url"` // Optional logo shown by clients.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// DefaultDeliveryApps returns the catalog seeded into an empty store.
func DefaultDeliveryApps() []*DeliveryApp {
	return []*DeliveryApp{
		{Name: "Talabat", LogoURL: "https://play-lh.googleusercontent.com/HN9-_FL6v4AwKslcCKD9BB0rsmbK_BLJdzjFTKPaHRQr7-xM3xkJl2E0M4TjRH1__Ps"},
		{Name: "Careem", LogoURL: "https://play-lh.googleusercontent.com/uf19YZxHI1RdHhvDGbwPrMupvYF2BxLVvheEPolXsHFRjGfnZJQJg-9qoCLMJVE54Q"},
		{Name: "InDrive", LogoURL: "https://play-lh.googleusercontent.com/Q6oi2-y7Mega_8VYu-UvdE9PBgHfBZTb-KnFPXHxjDgWbkgnJqMzwlMxhW9or6P12KDU"},
		{Name: "Uber Eats", LogoURL: "https://play-lh.googleusercontent.com/kDzXOuJzWFNJNwWH45Ck3ZjhIK3UCxNXmOqYJcLb8wEJ2QXRzQ-BXgbD7q9LlJmeoa0"},
		{Name: "Instashop", LogoURL: "https://play-lh.googleusercontent.com/BYpbl6-tIYf4VGzvsb5dhPP6Lq8Ql-FEyxNYgO6v-3RQbTIPU85oRFQvGk8QxLQvqA"},
	}
}

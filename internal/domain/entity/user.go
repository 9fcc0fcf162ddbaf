// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a courier account. Every other entity is owned by exactly one User.
type User struct {
	ID           uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Username     string    `json:"username"`   // Login identifier, unique across the system.
	Email        string    `json:"email"`      // Contact email, unique across the system.
	FullName     string    `json:"full_name"`  // Display name.
	PasswordHash string    `json:"-"`          // bcrypt hash, never serialized.
	Disabled     bool      `json:"disabled"`   // Disabled accounts cannot obtain tokens.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updated_at"` // Timestamp of the last modification.
}

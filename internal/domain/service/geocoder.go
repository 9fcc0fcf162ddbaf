package service

import (
	"context"

	"mandoob/internal/domain/entity"
)

// LocationRole tells a Geocoder which side of the trip an address belongs to.
type LocationRole string

const (
	LocationRolePickup  LocationRole = "pickup"
	LocationRoleDropoff LocationRole = "dropoff"
)

// Geocoder resolves a free-text address into coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, address string, role LocationRole) (entity.Location, error)
}

// Package geocode resolves extracted address text into coordinates.
package geocode

import (
	"context"
	"math/rand/v2"
	"strings"

	"mandoob/config"
	"mandoob/internal/domain/entity"
	"mandoob/internal/domain/service"
)

// RandomSource yields uniformly distributed values in [0, 1).
type RandomSource interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// simulatedGeocoder places addresses at a jittered point around a fixed base per role.
// It never fails.
type simulatedGeocoder struct {
	pickup  entity.Location
	dropoff entity.Location
	jitter  float64
	random  RandomSource
}

// NewSimulatedGeocoder builds the geocoder from extraction.geocoder using math/rand/v2.
func NewSimulatedGeocoder(cfg *config.Config) service.Geocoder {
	return NewSimulatedGeocoderWithSource(cfg.Extraction.Geocoder, globalRand{})
}

// NewSimulatedGeocoderWithSource builds the geocoder with an explicit random source.
func NewSimulatedGeocoderWithSource(cfg config.GeocoderConfig, random RandomSource) service.Geocoder {
	return &simulatedGeocoder{
		pickup:  entity.Location{Latitude: cfg.PickupLatitude, Longitude: cfg.PickupLongitude},
		dropoff: entity.Location{Latitude: cfg.DropoffLatitude, Longitude: cfg.DropoffLongitude},
		jitter:  cfg.JitterDegrees,
		random:  random,
	}
}

// Resolve draws latitude then longitude offsets in [-jitter, +jitter) around the role's base.
func (g *simulatedGeocoder) Resolve(_ context.Context, address string, role service.LocationRole) (entity.Location, error) {
	base := g.pickup
	if role == service.LocationRoleDropoff {
		base = g.dropoff
	}

	latitude := base.Latitude + g.offset()
	longitude := base.Longitude + g.offset()

	return entity.Location{
		Latitude:  latitude,
		Longitude: longitude,
		Address:   strings.TrimSpace(address),
	}, nil
}

func (g *simulatedGeocoder) offset() float64 {
	return (g.random.Float64()*2 - 1) * g.jitter
}

package geocode

import (
	"context"
	"testing"

	"mandoob/config"
	"mandoob/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sequence struct {
	values []float64
	next   int
}

func (s *sequence) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++

	return v
}

var testGeocoderConfig = config.GeocoderConfig{
	PickupLatitude:   30.0444,
	PickupLongitude:  31.2357,
	DropoffLatitude:  30.0566,
	DropoffLongitude: 31.2394,
	JitterDegrees:    0.05,
}

func TestSimulatedGeocoder_DrawOrder(t *testing.T) {
	source := &sequence{values: []float64{1.0, 0.0, 0.5, 0.75}}
	geocoder := NewSimulatedGeocoderWithSource(testGeocoderConfig, source)

	pickup, err := geocoder.Resolve(context.Background(), " restaurant a ", service.LocationRolePickup)
	require.NoError(t, err)
	assert.InDelta(t, 30.0444+0.05, pickup.Latitude, 1e-9)
	assert.InDelta(t, 31.2357-0.05, pickup.Longitude, 1e-9)
	assert.Equal(t, "restaurant a", pickup.Address)

	dropoff, err := geocoder.Resolve(context.Background(), "customer address b", service.LocationRoleDropoff)
	require.NoError(t, err)
	assert.InDelta(t, 30.0566, dropoff.Latitude, 1e-9)
	assert.InDelta(t, 31.2394+0.025, dropoff.Longitude, 1e-9)
	assert.Equal(t, 4, source.next)
}

func TestSimulatedGeocoder_StaysWithinJitter(t *testing.T) {
	cfg := &config.Config{Extraction: &config.ExtractionConfig{Geocoder: testGeocoderConfig}}
	geocoder := NewSimulatedGeocoder(cfg)

	for range 200 {
		loc, err := geocoder.Resolve(context.Background(), "somewhere in cairo", service.LocationRolePickup)
		require.NoError(t, err)
		assert.InDelta(t, 30.0444, loc.Latitude, 0.05)
		assert.InDelta(t, 31.2357, loc.Longitude, 0.05)
	}
}

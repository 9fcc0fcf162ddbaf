package entity

import "github.com/paulmach/orb"

// Location is a coordinate pair with a free-text address label.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// Point returns the location as an orb.Point (lng, lat).
func (l Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

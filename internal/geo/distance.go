// Package geo provides geographic primitives shared across the service.
package geo

import (
	"fmt"
	"math"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// Coordinate represents a geographic point.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Validate checks that the coordinate is within valid ranges.
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %f out of range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %f out of range [-180, 180]", c.Lon)
	}
	return nil
}

// DistanceKm returns the great-circle distance between two coordinates in
// kilometers, using the haversine formula. Inputs are not validated; callers
// must check coordinates with Validate before invoking.
func DistanceKm(a, b Coordinate) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*
			math.Pow(math.Sin(dLon/2), 2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

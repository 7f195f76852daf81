package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/snackradar/snackradar/internal/geo"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	p := geo.Coordinate{Lat: -36.8485, Lon: 174.7633}
	assert.Zero(t, geo.DistanceKm(p, p))
}

func TestDistanceKm_ShortHop(t *testing.T) {
	// Auckland CBD to Mt Eden, roughly 1.3 km apart.
	a := geo.Coordinate{Lat: -36.8485, Lon: 174.7633}
	b := geo.Coordinate{Lat: -36.8567, Lon: 174.7649}

	d := geo.DistanceKm(a, b)
	assert.InDelta(t, 1.3, d, 0.1)
}

func TestDistanceKm_OneDegreeLongitudeAtEquator(t *testing.T) {
	a := geo.Coordinate{Lat: 0, Lon: 0}
	b := geo.Coordinate{Lat: 0, Lon: 1}

	d := geo.DistanceKm(a, b)
	assert.InDelta(t, 111.19, d, 0.1)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := geo.Coordinate{Lat: 35.6895, Lon: 139.6917}
	b := geo.Coordinate{Lat: 34.6937, Lon: 135.5023}

	assert.Equal(t, geo.DistanceKm(a, b), geo.DistanceKm(b, a))
}

func TestCoordinate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		c       geo.Coordinate
		wantErr bool
	}{
		{name: "valid", c: geo.Coordinate{Lat: -36.8485, Lon: 174.7633}},
		{name: "zero is valid", c: geo.Coordinate{}},
		{name: "lat too high", c: geo.Coordinate{Lat: 90.01}, wantErr: true},
		{name: "lat too low", c: geo.Coordinate{Lat: -90.01}, wantErr: true},
		{name: "lon too high", c: geo.Coordinate{Lon: 180.01}, wantErr: true},
		{name: "lon too low", c: geo.Coordinate{Lon: -180.01}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Package navlink builds deep links into third-party navigation apps from a
// single coordinate and name.
package navlink

import (
	"fmt"
	"net/url"
	"strconv"
)

// Links holds the supported navigation deep links for one destination.
type Links struct {
	GoogleMaps string `json:"googleMaps"`
	OsmAnd     string `json:"osmAnd"`
	AppleMaps  string `json:"appleMaps"`
}

// Build constructs deep links for the given destination.
func Build(lat, lon float64, name string) Links {
	latLon := formatCoord(lat) + "," + formatCoord(lon)
	encodedName := url.QueryEscape(name)

	return Links{
		GoogleMaps: fmt.Sprintf(
			"https://www.google.com/maps/dir/?api=1&destination=%s&travelmode=driving&avoid=tolls,highways&query=%s",
			latLon, encodedName),
		OsmAnd: fmt.Sprintf(
			"osmand://navigate?lat=%s&lon=%s&z=16&title=%s",
			formatCoord(lat), formatCoord(lon), encodedName),
		AppleMaps: fmt.Sprintf(
			"maps://maps.apple.com/?daddr=%s&dirflg=d",
			latLon),
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

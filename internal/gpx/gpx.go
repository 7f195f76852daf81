// Package gpx serializes search results into GPX 1.1 waypoint files for
// GPS devices and navigation apps.
package gpx

import (
	"encoding/xml"
	"strings"

	"github.com/snackradar/snackradar/internal/geo"
	"github.com/snackradar/snackradar/internal/poi"
)

const (
	// Creator identifies this application in exported files.
	Creator = "Snack Radar"

	xmlns   = "http://www.topografix.com/GPX/1/1"
	version = "1.1"
)

// Document is the root GPX element.
type Document struct {
	XMLName   xml.Name   `xml:"gpx"`
	Version   string     `xml:"version,attr"`
	Creator   string     `xml:"creator,attr"`
	Xmlns     string     `xml:"xmlns,attr"`
	Metadata  Metadata   `xml:"metadata"`
	Waypoints []Waypoint `xml:"wpt"`
}

// Metadata holds the export name.
type Metadata struct {
	Name string `xml:"name"`
}

// Waypoint is one exported point.
type Waypoint struct {
	Lat  float64 `xml:"lat,attr"`
	Lon  float64 `xml:"lon,attr"`
	Name string  `xml:"name"`
	Desc string  `xml:"desc,omitempty"`
	Type string  `xml:"type,omitempty"`
}

// Export serializes spots and the search center into a GPX document. Each
// spot becomes a waypoint carrying its display name and a short description
// built from the shop tag and the 24/7 marker; the center, when present,
// becomes a "You are here" start waypoint.
func Export(spots []poi.Spot, center *geo.Coordinate) ([]byte, error) {
	doc := Document{
		Version: version,
		Creator: Creator,
		Xmlns:   xmlns,
		Metadata: Metadata{
			Name: "Snack Radar Export",
		},
		Waypoints: make([]Waypoint, 0, len(spots)+1),
	}

	for _, s := range spots {
		name := s.Name
		if name == "" {
			name = "Snack Spot"
		}
		doc.Waypoints = append(doc.Waypoints, Waypoint{
			Lat:  s.Coordinate.Lat,
			Lon:  s.Coordinate.Lon,
			Name: name,
			Desc: describe(s),
			Type: "snack",
		})
	}

	if center != nil {
		doc.Waypoints = append(doc.Waypoints, Waypoint{
			Lat:  center.Lat,
			Lon:  center.Lon,
			Name: "You are here",
			Type: "start",
		})
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// describe builds the waypoint description from the shop tag and the 24/7
// marker.
func describe(s poi.Spot) string {
	parts := make([]string, 0, 2)
	if shop := s.Tags["shop"]; shop != "" {
		parts = append(parts, shop)
	}
	if s.Is24h {
		parts = append(parts, "24/7")
	}
	return strings.Join(parts, " ")
}

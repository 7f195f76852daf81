package poi

import (
	"fmt"
	"time"

	"github.com/snackradar/snackradar/internal/geo"
	"github.com/snackradar/snackradar/internal/openinghours"
)

// placeholderName is used when a record carries no usable name.
const placeholderName = "Snack Spot"

// Normalize transforms one raw element into a Spot. It never fails: missing
// or malformed fields degrade to safe defaults, so one bad record cannot
// abort a batch. The timestamp parameterizes open-now evaluation.
func Normalize(el RawElement, at time.Time) Spot {
	tags := el.Tags
	if tags == nil {
		tags = map[string]string{}
	}

	spot := Spot{
		ID:         fmt.Sprintf("%s/%d", el.Type, el.ID),
		Coordinate: resolveCoordinate(el),
		Name:       resolveName(tags),
		Brand:      resolveBrand(tags),
		Tags:       tags,

		Is24h:           tags["opening_hours"] == "24/7",
		HasToilet:       tags["toilets"] == "yes",
		AcceptsCard:     tags["payment:credit_cards"] == "yes",
		HasParking:      tags["parking"] == "yes",
		Wheelchair:      tags["wheelchair"] == "yes",
		IsVending:       tags["vending"] != "",
		OutdoorSeating:  tags["outdoor_seating"] == "yes",
		HasHotFood:      tags["takeaway"] == "yes",
		HasLottery:      tags["lottery"] == "yes" || tags["shop"] == "lottery",
		SellsCigarettes: tags["tobacco"] == "yes" || tags["shop"] == "tobacco" || tags["vending"] == "cigarettes",
		HasAtm:          tags["atm"] == "yes",
		HasMicrowave:    tags["microwave"] == "yes",

		OpeningHours: tags["opening_hours"],
	}

	// Any evaluator failure is treated as "unknown": closed, no summary.
	if raw := tags["opening_hours"]; raw != "" {
		if hours, err := openinghours.Parse(raw); err == nil {
			spot.IsOpenNow = hours.IsOpen(at)
			spot.OpeningHoursHuman = hours.Prettify()
		}
	}

	return spot
}

// resolveCoordinate prefers a computed center point (way/relation geometries)
// over direct point coordinates.
func resolveCoordinate(el RawElement) geo.Coordinate {
	if el.Center != nil {
		return *el.Center
	}
	var c geo.Coordinate
	if el.Lat != nil {
		c.Lat = *el.Lat
	}
	if el.Lon != nil {
		c.Lon = *el.Lon
	}
	return c
}

// resolveName applies the display-name fallback chain: explicit name, brand,
// operator, vending-type label, generic placeholder.
func resolveName(tags map[string]string) string {
	if v := tags["name"]; v != "" {
		return v
	}
	if v := tags["brand"]; v != "" {
		return v
	}
	if v := tags["operator"]; v != "" {
		return v
	}
	if v := tags["vending"]; v != "" {
		return "Vending: " + v
	}
	return placeholderName
}

// resolveBrand applies the brand fallback chain: brand tag, localized brand
// tag, name.
func resolveBrand(tags map[string]string) string {
	if v := tags["brand"]; v != "" {
		return v
	}
	if v := tags["brand:en"]; v != "" {
		return v
	}
	return tags["name"]
}

// FilterOpenNow removes every spot that is not currently open, preserving
// the order of the remainder. Open/closed state cannot be expressed in the
// compiled query, so this runs after normalization.
func FilterOpenNow(spots []Spot) []Spot {
	open := make([]Spot, 0, len(spots))
	for _, s := range spots {
		if s.IsOpenNow {
			open = append(open, s)
		}
	}
	return open
}

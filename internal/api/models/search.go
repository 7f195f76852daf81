package models

// SearchRequest is the request body for POST /v1/spots:search.
type SearchRequest struct {
	// Center is the search origin. Required.
	Center *Point `json:"center"`

	// RadiusMeters bounds the search. Clamped to [500, 10000]; defaults
	// to 2000 when omitted.
	RadiusMeters int `json:"radiusMeters,omitempty"`

	// Categories selects snack categories by registry id. Mutually
	// exclusive with Mode.
	Categories []string `json:"categories,omitempty"`

	// Mode selects an exclusive search mode: "vending_only" or
	// "chain_only". Mutually exclusive with Categories.
	Mode string `json:"mode,omitempty"`

	// Amenities activates amenity filters by id.
	Amenities []string `json:"amenities,omitempty"`
}

// SearchResponse is the response body for POST /v1/spots:search.
type SearchResponse struct {
	Spots []SpotResult `json:"spots"`
	Count int          `json:"count"`
	Query QueryEcho    `json:"query"`
}

// QueryEcho echoes the effective query parameters back to the client.
type QueryEcho struct {
	Center       Point  `json:"center"`
	RadiusMeters int    `json:"radiusMeters"`
	Provider     string `json:"provider"`
}

// SpotResult is one normalized search result.
type SpotResult struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Brand      string  `json:"brand,omitempty"`
	Point      Point   `json:"point"`
	DistanceKm float64 `json:"distanceKm"`

	Is24h           bool `json:"is24h"`
	HasToilet       bool `json:"hasToilet"`
	AcceptsCard     bool `json:"acceptsCard"`
	HasParking      bool `json:"hasParking"`
	Wheelchair      bool `json:"wheelchair"`
	IsVending       bool `json:"isVending"`
	OutdoorSeating  bool `json:"outdoorSeating"`
	HasHotFood      bool `json:"hasHotFood"`
	HasLottery      bool `json:"hasLottery"`
	SellsCigarettes bool `json:"sellsCigarettes"`
	HasAtm          bool `json:"hasAtm"`
	HasMicrowave    bool `json:"hasMicrowave"`

	OpeningHours      string `json:"openingHours,omitempty"`
	OpeningHoursHuman string `json:"openingHoursHuman,omitempty"`
	IsOpenNow         bool   `json:"isOpenNow"`

	NavLinks NavLinks `json:"navLinks"`
}

// NavLinks holds deep links into navigation apps for one spot.
type NavLinks struct {
	GoogleMaps string `json:"googleMaps"`
	OsmAnd     string `json:"osmAnd"`
	AppleMaps  string `json:"appleMaps"`
}

// ExportRequest is the request body for POST /v1/spots:export. It reuses the
// search parameters; the response is a GPX attachment instead of JSON.
type ExportRequest = SearchRequest

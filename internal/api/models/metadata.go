package models

// CategoryInfo describes one selectable snack category.
type CategoryInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Tag   string `json:"tag"`
}

// AmenityInfo describes one amenity filter.
type AmenityInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`

	// Clause is the tag-match text the filter compiles to; empty for
	// client-side filters.
	Clause string `json:"clause,omitempty"`

	// ClientSide marks filters that are applied after normalization rather
	// than compiled into the provider query.
	ClientSide bool `json:"clientSide"`
}

// FilterMetadata lists the filter vocabulary: categories, amenity filters,
// exclusive modes, and the recognized chain names.
type FilterMetadata struct {
	Categories          []CategoryInfo `json:"categories"`
	Amenities           []AmenityInfo  `json:"amenities"`
	Modes               []string       `json:"modes"`
	Chains              []string       `json:"chains"`
	RadiusMinMeters     int            `json:"radiusMinMeters"`
	RadiusMaxMeters     int            `json:"radiusMaxMeters"`
	RadiusDefaultMeters int            `json:"radiusDefaultMeters"`
}

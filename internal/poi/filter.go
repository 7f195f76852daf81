package poi

import (
	"fmt"

	"github.com/snackradar/snackradar/internal/geo"
)

// Radius bounds and default in meters.
const (
	MinRadiusMeters     = 500
	MaxRadiusMeters     = 10000
	DefaultRadiusMeters = 2000
)

// Mode is an exclusive search mode that supersedes category selection.
type Mode string

const (
	// ModeNone means categories drive the search.
	ModeNone Mode = ""
	// ModeVendingOnly restricts results to vending machines.
	ModeVendingOnly Mode = "vending_only"
	// ModeChainOnly restricts results to known convenience chains.
	ModeChainOnly Mode = "chain_only"
)

// Filter holds one session's search selection. It is mutated through its
// setters, which maintain the category/mode exclusivity invariant; the zero
// value is an empty, non-searchable filter.
type Filter struct {
	center       *geo.Coordinate
	radiusMeters int
	categories   []string // category IDs, kept in registry declaration order
	mode         Mode
	amenities    map[AmenityID]bool
}

// NewFilter returns an empty filter with the default search radius.
func NewFilter() *Filter {
	return &Filter{
		radiusMeters: DefaultRadiusMeters,
		amenities:    make(map[AmenityID]bool),
	}
}

// SetCenter sets the search center.
func (f *Filter) SetCenter(c geo.Coordinate) error {
	if err := c.Validate(); err != nil {
		return err
	}
	f.center = &c
	return nil
}

// ClearCenter removes the search center, making the filter non-searchable.
func (f *Filter) ClearCenter() {
	f.center = nil
}

// Center returns the search center, or nil when none is set.
func (f *Filter) Center() *geo.Coordinate {
	return f.center
}

// SetRadiusMeters sets the search radius, bounded to [500, 10000].
func (f *Filter) SetRadiusMeters(m int) error {
	if m < MinRadiusMeters || m > MaxRadiusMeters {
		return fmt.Errorf("radius %d out of range [%d, %d]", m, MinRadiusMeters, MaxRadiusMeters)
	}
	f.radiusMeters = m
	return nil
}

// RadiusMeters returns the current search radius.
func (f *Filter) RadiusMeters() int {
	return f.radiusMeters
}

// AddCategory selects a category by registry ID. Selecting a category while
// an exclusive mode is set clears the mode.
func (f *Filter) AddCategory(id string) error {
	if _, ok := CategoryByID(id); !ok {
		return fmt.Errorf("unknown category %q", id)
	}
	f.mode = ModeNone
	for _, existing := range f.categories {
		if existing == id {
			return nil
		}
	}
	f.categories = append(f.categories, id)
	f.sortCategories()
	return nil
}

// RemoveCategory deselects a category. Unknown or unselected IDs are ignored.
func (f *Filter) RemoveCategory(id string) {
	for i, existing := range f.categories {
		if existing == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return
		}
	}
}

// Categories returns the selected category IDs in registry order.
func (f *Filter) Categories() []string {
	out := make([]string, len(f.categories))
	copy(out, f.categories)
	return out
}

// SetMode switches to an exclusive mode. Setting a mode clears the category
// selection; setting ModeNone only clears the mode.
func (f *Filter) SetMode(m Mode) error {
	switch m {
	case ModeNone, ModeVendingOnly, ModeChainOnly:
	default:
		return fmt.Errorf("unknown mode %q", m)
	}
	f.mode = m
	if m != ModeNone {
		f.categories = nil
	}
	return nil
}

// Mode returns the active exclusive mode.
func (f *Filter) Mode() Mode {
	return f.mode
}

// SetAmenity toggles an amenity filter by registry ID.
func (f *Filter) SetAmenity(id AmenityID, on bool) error {
	if _, ok := AmenityFilterByID(id); !ok {
		return fmt.Errorf("unknown amenity filter %q", id)
	}
	if on {
		f.amenities[id] = true
	} else {
		delete(f.amenities, id)
	}
	return nil
}

// AmenityActive reports whether an amenity filter is enabled.
func (f *Filter) AmenityActive(id AmenityID) bool {
	return f.amenities[id]
}

// ActiveAmenities returns the enabled amenity filters in registry declaration
// order.
func (f *Filter) ActiveAmenities() []AmenityFilter {
	var active []AmenityFilter
	for _, af := range AmenityFilters {
		if f.amenities[af.ID] {
			active = append(active, af)
		}
	}
	return active
}

// IsSearchable reports whether a query may be compiled: a center is set and
// either categories are selected or an exclusive mode is active.
func (f *Filter) IsSearchable() bool {
	if f.center == nil {
		return false
	}
	return len(f.categories) > 0 || f.mode != ModeNone
}

// sortCategories keeps the selection in registry declaration order so that
// compilation is deterministic regardless of selection order.
func (f *Filter) sortCategories() {
	ordered := make([]string, 0, len(f.categories))
	for _, c := range Categories {
		for _, selected := range f.categories {
			if selected == c.ID {
				ordered = append(ordered, c.ID)
				break
			}
		}
	}
	f.categories = ordered
}

// Package poi provides the snack point-of-interest search core: the filter
// model, the Overpass query compiler, and the result normalizer.
package poi

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/snackradar/snackradar/internal/geo"
)

// Sentinel errors for search operations.
var (
	// ErrNotSearchable indicates a query was compiled from a filter without a
	// center or without any category/mode selection.
	ErrNotSearchable = errors.New("filter is not searchable")
	// ErrServiceUnavailable indicates the geodata provider is down or the
	// circuit breaker is open.
	ErrServiceUnavailable = errors.New("geodata service unavailable")
	// ErrQueryRejected indicates the provider rejected the compiled query.
	ErrQueryRejected = errors.New("geodata service rejected the query")
	// ErrQueryTooLarge indicates the query timed out or exceeded provider
	// resource limits; a smaller radius usually resolves it.
	ErrQueryTooLarge = errors.New("query too large, try a smaller radius")
	// ErrRateLimited indicates the provider quota has been exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// GeoData is the boundary to the external geodata service. Implementations
// execute a compiled query and return raw, loosely-typed elements.
type GeoData interface {
	Execute(ctx context.Context, q QuerySpec) ([]RawElement, error)
	Name() string
}

// QuerySpec is the compiled, bounded representation of a search request.
// It is immutable; a new one is created per search invocation.
type QuerySpec struct {
	// TagExpression is the combined base + amenity clause expression that is
	// inserted into each geometry statement.
	TagExpression string

	Center       geo.Coordinate
	RadiusMeters int
}

// OverpassQL renders the full Overpass query: the tag expression wrapped for
// the three geometry kinds over the same bounding radius, with center-point
// resolution for non-point geometries.
func (q QuerySpec) OverpassQL() string {
	around := fmt.Sprintf("(around:%d,%s,%s)",
		q.RadiusMeters, formatCoord(q.Center.Lat), formatCoord(q.Center.Lon))

	var b strings.Builder
	b.WriteString("[out:json][timeout:30];\n(\n")
	for _, kind := range []string{"node", "way", "relation"} {
		b.WriteString("  ")
		b.WriteString(kind)
		b.WriteByte('[')
		b.WriteString(q.TagExpression)
		b.WriteByte(']')
		b.WriteString(around)
		b.WriteString(";\n")
	}
	b.WriteString(");\nout center;\n")
	return b.String()
}

// formatCoord renders a coordinate component without trailing zeros.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RawElement is one raw record from the geodata service: an identifier, a
// point or center coordinate, and a loose tag mapping.
type RawElement struct {
	Type   string
	ID     int64
	Lat    *float64
	Lon    *float64
	Center *geo.Coordinate
	Tags   map[string]string
}

// Spot is the canonical, normalized representation of one search result.
// Spots are immutable; a new search replaces the whole result set.
type Spot struct {
	ID         string
	Coordinate geo.Coordinate
	Name       string
	Brand      string
	Tags       map[string]string

	Is24h           bool
	HasToilet       bool
	AcceptsCard     bool
	HasParking      bool
	Wheelchair      bool
	IsVending       bool
	OutdoorSeating  bool
	HasHotFood      bool
	HasLottery      bool
	SellsCigarettes bool
	HasAtm          bool
	HasMicrowave    bool

	OpeningHours      string
	IsOpenNow         bool
	OpeningHoursHuman string
}

// Error provides detailed error information from the geodata provider.
type Error struct {
	Provider string // Provider that generated the error
	Code     string // Error code from the provider
	Message  string // Human-readable error message
	Err      error  // Underlying sentinel error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsRetryable returns true if the error is transient and the request can be
// retried.
func (e *Error) IsRetryable() bool {
	return errors.Is(e.Err, ErrServiceUnavailable) || errors.Is(e.Err, ErrRateLimited)
}

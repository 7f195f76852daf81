package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/snackradar/snackradar/internal/api/middleware"
	"github.com/snackradar/snackradar/internal/api/models"
	"github.com/snackradar/snackradar/internal/api/response"
	"github.com/snackradar/snackradar/internal/geo"
	"github.com/snackradar/snackradar/internal/navlink"
	"github.com/snackradar/snackradar/internal/poi"
)

// SearchHandler handles snack spot search endpoints.
type SearchHandler struct {
	svc     *poi.Service
	metrics *middleware.ProviderMetrics
	logger  zerolog.Logger
}

// NewSearchHandler creates a new SearchHandler. metrics may be nil.
func NewSearchHandler(svc *poi.Service, metrics *middleware.ProviderMetrics, logger zerolog.Logger) *SearchHandler {
	return &SearchHandler{
		svc:     svc,
		metrics: metrics,
		logger:  logger,
	}
}

// Search handles POST /v1/spots:search - compile the filter, query the
// geodata provider, and return normalized spots.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var input models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	filter, ok := buildFilter(w, r, &input)
	if !ok {
		return
	}

	spots, ok := h.runSearch(w, r, filter)
	if !ok {
		return
	}

	center := *filter.Center()
	resp := models.SearchResponse{
		Spots: make([]models.SpotResult, 0, len(spots)),
		Count: len(spots),
		Query: models.QueryEcho{
			Center:       models.Point{Lat: center.Lat, Lon: center.Lon},
			RadiusMeters: filter.RadiusMeters(),
			Provider:     h.svc.ProviderName(),
		},
	}
	for _, s := range spots {
		resp.Spots = append(resp.Spots, toSpotResult(s, center))
	}

	response.JSON(w, r, http.StatusOK, resp)
}

// runSearch executes the search and writes the error response on failure.
func (h *SearchHandler) runSearch(w http.ResponseWriter, r *http.Request, filter *poi.Filter) ([]poi.Spot, bool) {
	start := time.Now()
	spots, err := h.svc.Search(r.Context(), filter)
	if h.metrics != nil {
		h.metrics.RecordRequest(h.svc.ProviderName(), "search", time.Since(start), err)
	}
	if err != nil {
		h.writeSearchError(w, r, err)
		return nil, false
	}
	return spots, true
}

// writeSearchError maps domain errors to problem responses.
func (h *SearchHandler) writeSearchError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, poi.ErrNotSearchable):
		response.BadRequest(w, r, "select at least one category or an exclusive mode", nil)
	case errors.Is(err, poi.ErrQueryRejected):
		response.BadGateway(w, r, "geodata provider rejected the query")
	case errors.Is(err, poi.ErrQueryTooLarge):
		response.BadGateway(w, r, "query too large for the geodata provider, try a smaller radius")
	case errors.Is(err, poi.ErrRateLimited):
		response.ServiceUnavailable(w, r, "geodata provider rate limit exceeded, try again later")
	case errors.Is(err, poi.ErrServiceUnavailable):
		response.ServiceUnavailable(w, r, "geodata provider is unavailable")
	default:
		h.logger.Error().Err(err).Msg("search failed")
		response.InternalError(w, r, "search failed")
	}
}

// buildFilter validates the request and assembles the domain filter. On
// validation failure it writes the 400 response and returns false.
func buildFilter(w http.ResponseWriter, r *http.Request, input *models.SearchRequest) (*poi.Filter, bool) {
	if input.Center == nil {
		response.BadRequest(w, r, "center is required", []models.FieldError{
			{Field: "center", Message: "required", Code: "REQUIRED"},
		})
		return nil, false
	}
	if len(input.Categories) > 0 && input.Mode != "" {
		response.BadRequest(w, r, "categories and mode are mutually exclusive", []models.FieldError{
			{Field: "mode", Message: "cannot be combined with categories", Code: "EXCLUSIVE"},
		})
		return nil, false
	}

	filter := poi.NewFilter()

	if err := filter.SetCenter(geo.Coordinate{Lat: input.Center.Lat, Lon: input.Center.Lon}); err != nil {
		response.BadRequest(w, r, err.Error(), []models.FieldError{
			{Field: "center", Message: err.Error(), Code: "OUT_OF_RANGE"},
		})
		return nil, false
	}
	if input.RadiusMeters != 0 {
		if err := filter.SetRadiusMeters(input.RadiusMeters); err != nil {
			response.BadRequest(w, r, err.Error(), []models.FieldError{
				{Field: "radiusMeters", Message: err.Error(), Code: "OUT_OF_RANGE"},
			})
			return nil, false
		}
	}
	if input.Mode != "" {
		if err := filter.SetMode(poi.Mode(input.Mode)); err != nil {
			response.BadRequest(w, r, err.Error(), []models.FieldError{
				{Field: "mode", Message: err.Error(), Code: "UNKNOWN"},
			})
			return nil, false
		}
	}
	for _, id := range input.Categories {
		if err := filter.AddCategory(id); err != nil {
			response.BadRequest(w, r, err.Error(), []models.FieldError{
				{Field: "categories", Message: err.Error(), Code: "UNKNOWN"},
			})
			return nil, false
		}
	}
	for _, id := range input.Amenities {
		if err := filter.SetAmenity(poi.AmenityID(id), true); err != nil {
			response.BadRequest(w, r, err.Error(), []models.FieldError{
				{Field: "amenities", Message: err.Error(), Code: "UNKNOWN"},
			})
			return nil, false
		}
	}
	if !filter.IsSearchable() {
		response.BadRequest(w, r, "select at least one category or an exclusive mode", nil)
		return nil, false
	}

	return filter, true
}

// toSpotResult converts a domain spot to its API representation.
func toSpotResult(s poi.Spot, center geo.Coordinate) models.SpotResult {
	links := navlink.Build(s.Coordinate.Lat, s.Coordinate.Lon, s.Name)
	return models.SpotResult{
		ID:         s.ID,
		Name:       s.Name,
		Brand:      s.Brand,
		Point:      models.Point{Lat: s.Coordinate.Lat, Lon: s.Coordinate.Lon},
		DistanceKm: geo.DistanceKm(center, s.Coordinate),

		Is24h:           s.Is24h,
		HasToilet:       s.HasToilet,
		AcceptsCard:     s.AcceptsCard,
		HasParking:      s.HasParking,
		Wheelchair:      s.Wheelchair,
		IsVending:       s.IsVending,
		OutdoorSeating:  s.OutdoorSeating,
		HasHotFood:      s.HasHotFood,
		HasLottery:      s.HasLottery,
		SellsCigarettes: s.SellsCigarettes,
		HasAtm:          s.HasAtm,
		HasMicrowave:    s.HasMicrowave,

		OpeningHours:      s.OpeningHours,
		OpeningHoursHuman: s.OpeningHoursHuman,
		IsOpenNow:         s.IsOpenNow,

		NavLinks: models.NavLinks{
			GoogleMaps: links.GoogleMaps,
			OsmAnd:     links.OsmAnd,
			AppleMaps:  links.AppleMaps,
		},
	}
}

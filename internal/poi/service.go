package poi

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// ServiceConfig holds configuration for the search service.
type ServiceConfig struct {
	// Client is the geodata boundary that executes compiled queries.
	Client GeoData

	// Logger for service operations.
	Logger zerolog.Logger

	// Now supplies the current time for open-now evaluation (optional,
	// defaults to time.Now).
	Now func() time.Time
}

// Service runs one search invocation end to end: compile, execute, normalize
// and post-filter. Results are never cached; each search replaces the
// previous result set wholesale.
type Service struct {
	client GeoData
	logger zerolog.Logger
	now    func() time.Time
}

// NewService creates a new search service.
func NewService(cfg ServiceConfig) *Service {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		client: cfg.Client,
		logger: cfg.Logger,
		now:    now,
	}
}

// ProviderName returns the name of the backing geodata provider.
func (s *Service) ProviderName() string {
	return s.client.Name()
}

// Search compiles the filter, executes it against the geodata service, and
// normalizes every returned element. When the open-now filter is active,
// closed spots are dropped after normalization.
func (s *Service) Search(ctx context.Context, f *Filter) ([]Spot, error) {
	spec, err := Compile(f)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Float64("lat", spec.Center.Lat).
		Float64("lon", spec.Center.Lon).
		Int("radius_m", spec.RadiusMeters).
		Str("provider", s.client.Name()).
		Msg("executing geodata query")

	elements, err := s.client.Execute(ctx, spec)
	if err != nil {
		s.logger.Error().Err(err).
			Int("radius_m", spec.RadiusMeters).
			Msg("geodata query failed")
		return nil, err
	}

	at := s.now()
	spots := make([]Spot, 0, len(elements))
	for _, el := range elements {
		spots = append(spots, Normalize(el, at))
	}

	if f.AmenityActive(AmenityOpenNow) {
		before := len(spots)
		spots = FilterOpenNow(spots)
		s.logger.Debug().
			Int("before", before).
			Int("after", len(spots)).
			Msg("applied open-now post-filter")
	}

	s.logger.Info().
		Int("result_count", len(spots)).
		Str("provider", s.client.Name()).
		Msg("search completed")

	return spots, nil
}

// Package overpass provides a client for Overpass-style geodata endpoints.
package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/snackradar/snackradar/internal/geo"
	"github.com/snackradar/snackradar/internal/poi"
	"github.com/snackradar/snackradar/internal/provider/resilience"
)

const (
	// ProviderName identifies this geodata provider.
	ProviderName = "overpass"

	// DefaultBaseURL is the public Overpass API base URL.
	DefaultBaseURL = "https://overpass-api.de"

	// DefaultTimeout is the default request timeout. Overpass evaluates the
	// query server-side, so this is deliberately generous.
	DefaultTimeout = 40 * time.Second
)

// HTTPDoer is an interface for executing HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the Overpass client.
type ClientConfig struct {
	// BaseURL is the API base URL (optional, defaults to overpass-api.de).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient HTTPDoer

	// Timeout is the request timeout (optional, defaults to 40s).
	Timeout time.Duration

	// Registry is the provider registry for health tracking (optional).
	Registry *resilience.Registry

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an Overpass API client.
type Client struct {
	baseURL    string
	httpClient HTTPDoer
	registry   *resilience.Registry
	logger     zerolog.Logger
}

// NewClient creates a new Overpass client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		clientCfg := resilience.DefaultClientConfig(ProviderName)
		clientCfg.Timeout = timeout
		clientCfg.Registry = cfg.Registry
		httpClient = resilience.NewClient(clientCfg)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		registry:   cfg.Registry,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Execute runs a compiled query against the Overpass interpreter and returns
// the raw elements. Elements are passed through untyped; normalization is the
// caller's concern.
func (c *Client) Execute(ctx context.Context, q poi.QuerySpec) ([]poi.RawElement, error) {
	endpoint := fmt.Sprintf("%s/api/interpreter?data=%s", c.baseURL, url.QueryEscape(q.OverpassQL()))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Float64("lat", q.Center.Lat).
		Float64("lon", q.Center.Lon).
		Int("radius_m", q.RadiusMeters).
		Msg("executing overpass query")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.recordFailure(err)
		return nil, &poi.Error{
			Provider: ProviderName,
			Code:     "REQUEST_FAILED",
			Message:  "failed to reach geodata provider",
			Err:      poi.ErrServiceUnavailable,
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.recordFailure(err)
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		mapped := c.handleErrorResponse(resp.StatusCode)
		c.recordFailure(mapped)
		return nil, mapped
	}

	var overpassResp interpreterResponse
	if err := json.Unmarshal(respBody, &overpassResp); err != nil {
		c.recordFailure(err)
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	elements := toRawElements(overpassResp.Elements)

	if c.registry != nil {
		c.registry.RecordSuccess(ProviderName)
	}
	c.logger.Debug().
		Int("element_count", len(elements)).
		Msg("received overpass elements")

	return elements, nil
}

// handleErrorResponse maps Overpass error statuses to domain errors.
func (c *Client) handleErrorResponse(statusCode int) error {
	switch statusCode {
	case http.StatusBadRequest:
		return &poi.Error{
			Provider: ProviderName,
			Code:     "BAD_QUERY",
			Message:  "geodata provider rejected the query",
			Err:      poi.ErrQueryRejected,
		}
	case http.StatusTooManyRequests:
		return &poi.Error{
			Provider: ProviderName,
			Code:     "RATE_LIMIT",
			Message:  "geodata provider rate limit exceeded",
			Err:      poi.ErrRateLimited,
		}
	case http.StatusGatewayTimeout:
		// The interpreter ran out of time or memory for this bounding radius.
		return &poi.Error{
			Provider: ProviderName,
			Code:     "QUERY_TIMEOUT",
			Message:  "geodata query timed out",
			Err:      poi.ErrQueryTooLarge,
		}
	default:
		return &poi.Error{
			Provider: ProviderName,
			Code:     fmt.Sprintf("HTTP_%d", statusCode),
			Message:  fmt.Sprintf("geodata provider returned status %d", statusCode),
			Err:      poi.ErrServiceUnavailable,
		}
	}
}

// toRawElements converts wire elements to domain raw records.
func toRawElements(elements []element) []poi.RawElement {
	out := make([]poi.RawElement, 0, len(elements))
	for _, el := range elements {
		raw := poi.RawElement{
			Type: el.Type,
			ID:   el.ID,
			Lat:  el.Lat,
			Lon:  el.Lon,
			Tags: el.Tags,
		}
		if el.Center != nil {
			raw.Center = &geo.Coordinate{Lat: el.Center.Lat, Lon: el.Center.Lon}
		}
		out = append(out, raw)
	}
	return out
}

func (c *Client) recordFailure(err error) {
	if c.registry != nil {
		c.registry.RecordFailure(ProviderName, err)
	}
}

package overpass_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snackradar/snackradar/internal/geo"
	"github.com/snackradar/snackradar/internal/poi"
	"github.com/snackradar/snackradar/internal/poi/overpass"
	"github.com/snackradar/snackradar/internal/provider/resilience"
)

func testSpec() poi.QuerySpec {
	return poi.QuerySpec{
		TagExpression: `"shop=convenience"`,
		Center:        geo.Coordinate{Lat: -36.8485, Lon: 174.7633},
		RadiusMeters:  2000,
	}
}

func newTestClient(server *httptest.Server) *overpass.Client {
	return overpass.NewClient(overpass.ClientConfig{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
		Logger:     zerolog.New(io.Discard),
	})
}

func TestClient_Name(t *testing.T) {
	client := overpass.NewClient(overpass.ClientConfig{Logger: zerolog.New(io.Discard)})
	assert.Equal(t, "overpass", client.Name())
}

func TestClient_Execute(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("data")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"elements": [
				{
					"type": "node",
					"id": 101,
					"lat": -36.8490,
					"lon": 174.7640,
					"tags": {"name": "Night Owl Dairy", "shop": "convenience"}
				},
				{
					"type": "way",
					"id": 202,
					"center": {"lat": -36.8500, "lon": 174.7650},
					"tags": {"shop": "supermarket"}
				}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	elements, err := client.Execute(context.Background(), testSpec())
	require.NoError(t, err)

	assert.Equal(t, "/api/interpreter", gotPath)
	assert.Contains(t, gotQuery, "[out:json][timeout:30];")
	assert.Contains(t, gotQuery, `"shop=convenience"`)
	assert.Contains(t, gotQuery, "around:2000,-36.8485,174.7633")

	require.Len(t, elements, 2)

	node := elements[0]
	assert.Equal(t, "node", node.Type)
	assert.Equal(t, int64(101), node.ID)
	require.NotNil(t, node.Lat)
	assert.InDelta(t, -36.8490, *node.Lat, 1e-9)
	assert.Equal(t, "Night Owl Dairy", node.Tags["name"])
	assert.Nil(t, node.Center)

	way := elements[1]
	assert.Equal(t, "way", way.Type)
	require.NotNil(t, way.Center)
	assert.InDelta(t, -36.8500, way.Center.Lat, 1e-9)
	assert.InDelta(t, 174.7650, way.Center.Lon, 1e-9)
}

func TestClient_Execute_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"elements": []}`))
	}))
	defer server.Close()

	elements, err := newTestClient(server).Execute(context.Background(), testSpec())
	require.NoError(t, err)
	assert.Empty(t, elements)
}

func TestClient_Execute_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantErr  error
		wantCode string
	}{
		{name: "bad query", status: http.StatusBadRequest, wantErr: poi.ErrQueryRejected, wantCode: "BAD_QUERY"},
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: poi.ErrRateLimited, wantCode: "RATE_LIMIT"},
		{name: "query timeout", status: http.StatusGatewayTimeout, wantErr: poi.ErrQueryTooLarge, wantCode: "QUERY_TIMEOUT"},
		{name: "server error", status: http.StatusInternalServerError, wantErr: poi.ErrServiceUnavailable, wantCode: "HTTP_500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			_, err := newTestClient(server).Execute(context.Background(), testSpec())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var provErr *poi.Error
			require.ErrorAs(t, err, &provErr)
			assert.Equal(t, "overpass", provErr.Provider)
			assert.Equal(t, tt.wantCode, provErr.Code)
		})
	}
}

func TestClient_Execute_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	httpClient := server.Client()
	server.Close()

	client := overpass.NewClient(overpass.ClientConfig{
		BaseURL:    server.URL,
		HTTPClient: httpClient,
		Logger:     zerolog.New(io.Discard),
	})

	_, err := client.Execute(context.Background(), testSpec())
	assert.ErrorIs(t, err, poi.ErrServiceUnavailable)
}

func TestClient_Execute_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := newTestClient(server).Execute(context.Background(), testSpec())
	assert.Error(t, err)
}

func TestClient_Execute_RecordsHealth(t *testing.T) {
	registry := resilience.NewRegistry()
	cfg := resilience.DefaultClientConfig(overpass.ProviderName)
	cfg.Registry = registry
	_ = resilience.NewClient(cfg)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"elements": []}`))
	}))
	defer server.Close()

	client := overpass.NewClient(overpass.ClientConfig{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
		Registry:   registry,
		Logger:     zerolog.New(io.Discard),
	})

	_, err := client.Execute(context.Background(), testSpec())
	require.NoError(t, err)

	health := registry.GetHealth(overpass.ProviderName)
	require.NotNil(t, health)
	assert.True(t, health.IsHealthy())
	assert.NotNil(t, health.LastSuccessAt)
}

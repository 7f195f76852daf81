package navlink_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snackradar/snackradar/internal/navlink"
)

func TestBuild(t *testing.T) {
	links := navlink.Build(-36.8490, 174.7640, "Night Owl Dairy")

	assert.Equal(t,
		"https://www.google.com/maps/dir/?api=1&destination=-36.849,174.764&travelmode=driving&avoid=tolls,highways&query=Night+Owl+Dairy",
		links.GoogleMaps)
	assert.Equal(t,
		"osmand://navigate?lat=-36.849&lon=174.764&z=16&title=Night+Owl+Dairy",
		links.OsmAnd)
	assert.Equal(t,
		"maps://maps.apple.com/?daddr=-36.849,174.764&dirflg=d",
		links.AppleMaps)
}

func TestBuild_EscapesName(t *testing.T) {
	links := navlink.Build(35.6895, 139.6917, "セブン-イレブン 渋谷店")

	parsed, err := url.Parse(links.GoogleMaps)
	require.NoError(t, err)
	assert.Equal(t, "セブン-イレブン 渋谷店", parsed.Query().Get("query"))

	parsed, err = url.Parse(links.OsmAnd)
	require.NoError(t, err)
	assert.Equal(t, "セブン-イレブン 渋谷店", parsed.Query().Get("title"))
}

func TestBuild_CoordinateFormatting(t *testing.T) {
	// Whole-number coordinates render without trailing zeros.
	links := navlink.Build(35, 139, "Spot")

	assert.Contains(t, links.GoogleMaps, "destination=35,139")
	assert.Contains(t, links.AppleMaps, "daddr=35,139")
}

package poi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snackradar/snackradar/internal/geo"
	"github.com/snackradar/snackradar/internal/poi"
)

var testCenter = geo.Coordinate{Lat: -36.8485, Lon: 174.7633}

func TestFilter_Defaults(t *testing.T) {
	f := poi.NewFilter()

	assert.Nil(t, f.Center())
	assert.Equal(t, 2000, f.RadiusMeters())
	assert.Empty(t, f.Categories())
	assert.Equal(t, poi.ModeNone, f.Mode())
	assert.False(t, f.IsSearchable())
}

func TestFilter_SetCenter(t *testing.T) {
	f := poi.NewFilter()

	require.NoError(t, f.SetCenter(testCenter))
	require.NotNil(t, f.Center())
	assert.Equal(t, testCenter, *f.Center())

	assert.Error(t, f.SetCenter(geo.Coordinate{Lat: 91}))
	// Failed set leaves the previous center in place.
	assert.Equal(t, testCenter, *f.Center())

	f.ClearCenter()
	assert.Nil(t, f.Center())
}

func TestFilter_SetRadiusMeters(t *testing.T) {
	f := poi.NewFilter()

	require.NoError(t, f.SetRadiusMeters(500))
	require.NoError(t, f.SetRadiusMeters(10000))
	assert.Error(t, f.SetRadiusMeters(499))
	assert.Error(t, f.SetRadiusMeters(10001))
	assert.Equal(t, 10000, f.RadiusMeters())
}

func TestFilter_AddCategory(t *testing.T) {
	f := poi.NewFilter()

	require.NoError(t, f.AddCategory("supermarket"))
	require.NoError(t, f.AddCategory("convenience"))
	// Duplicates are ignored.
	require.NoError(t, f.AddCategory("supermarket"))

	// Selection is kept in registry declaration order, not insertion order.
	assert.Equal(t, []string{"convenience", "supermarket"}, f.Categories())

	assert.Error(t, f.AddCategory("petrol_station"))
}

func TestFilter_RemoveCategory(t *testing.T) {
	f := poi.NewFilter()
	require.NoError(t, f.AddCategory("convenience"))
	require.NoError(t, f.AddCategory("bakery"))

	f.RemoveCategory("convenience")
	assert.Equal(t, []string{"bakery"}, f.Categories())

	// Unknown and unselected IDs are no-ops.
	f.RemoveCategory("convenience")
	f.RemoveCategory("nonsense")
	assert.Equal(t, []string{"bakery"}, f.Categories())
}

func TestFilter_ModeClearsCategories(t *testing.T) {
	f := poi.NewFilter()
	require.NoError(t, f.AddCategory("convenience"))
	require.NoError(t, f.AddCategory("supermarket"))

	require.NoError(t, f.SetMode(poi.ModeVendingOnly))

	assert.Equal(t, poi.ModeVendingOnly, f.Mode())
	assert.Empty(t, f.Categories())
}

func TestFilter_CategoryClearsMode(t *testing.T) {
	f := poi.NewFilter()
	require.NoError(t, f.SetMode(poi.ModeChainOnly))

	require.NoError(t, f.AddCategory("bakery"))

	assert.Equal(t, poi.ModeNone, f.Mode())
	assert.Equal(t, []string{"bakery"}, f.Categories())
}

func TestFilter_SetModeNoneKeepsCategories(t *testing.T) {
	f := poi.NewFilter()
	require.NoError(t, f.AddCategory("bakery"))

	require.NoError(t, f.SetMode(poi.ModeNone))

	assert.Equal(t, []string{"bakery"}, f.Categories())
	assert.Error(t, f.SetMode(poi.Mode("drive_through_only")))
}

func TestFilter_Amenities(t *testing.T) {
	f := poi.NewFilter()

	require.NoError(t, f.SetAmenity(poi.AmenityLottery, true))
	require.NoError(t, f.SetAmenity(poi.AmenityToilet, true))
	require.NoError(t, f.SetAmenity(poi.Amenity24h, true))
	assert.Error(t, f.SetAmenity(poi.AmenityID("car_wash"), true))

	assert.True(t, f.AmenityActive(poi.AmenityToilet))
	assert.False(t, f.AmenityActive(poi.AmenityAtm))

	// Active filters come back in registry declaration order.
	active := f.ActiveAmenities()
	require.Len(t, active, 3)
	assert.Equal(t, poi.Amenity24h, active[0].ID)
	assert.Equal(t, poi.AmenityToilet, active[1].ID)
	assert.Equal(t, poi.AmenityLottery, active[2].ID)

	require.NoError(t, f.SetAmenity(poi.AmenityToilet, false))
	assert.False(t, f.AmenityActive(poi.AmenityToilet))
}

func TestFilter_IsSearchable(t *testing.T) {
	f := poi.NewFilter()
	assert.False(t, f.IsSearchable())

	// Center alone is not enough.
	require.NoError(t, f.SetCenter(testCenter))
	assert.False(t, f.IsSearchable())

	// Categories alone are not enough either.
	g := poi.NewFilter()
	require.NoError(t, g.AddCategory("convenience"))
	assert.False(t, g.IsSearchable())

	require.NoError(t, f.AddCategory("convenience"))
	assert.True(t, f.IsSearchable())

	// A mode also satisfies the selection requirement.
	require.NoError(t, f.SetMode(poi.ModeVendingOnly))
	assert.True(t, f.IsSearchable())

	f.ClearCenter()
	assert.False(t, f.IsSearchable())
}

package handler

import (
	"net/http"

	"github.com/snackradar/snackradar/internal/api/models"
	"github.com/snackradar/snackradar/internal/api/response"
	"github.com/snackradar/snackradar/internal/poi"
)

// MetadataHandler serves the filter vocabulary.
type MetadataHandler struct{}

// NewMetadataHandler creates a new MetadataHandler.
func NewMetadataHandler() *MetadataHandler {
	return &MetadataHandler{}
}

// Filters handles GET /v1/metadata/filters - the selectable categories,
// amenity filters, modes, and recognized chain names.
func (h *MetadataHandler) Filters(w http.ResponseWriter, r *http.Request) {
	meta := models.FilterMetadata{
		Categories:          make([]models.CategoryInfo, 0, len(poi.Categories)),
		Amenities:           make([]models.AmenityInfo, 0, len(poi.AmenityFilters)),
		Modes:               []string{string(poi.ModeVendingOnly), string(poi.ModeChainOnly)},
		Chains:              poi.ConvenienceChains,
		RadiusMinMeters:     poi.MinRadiusMeters,
		RadiusMaxMeters:     poi.MaxRadiusMeters,
		RadiusDefaultMeters: poi.DefaultRadiusMeters,
	}

	for _, c := range poi.Categories {
		meta.Categories = append(meta.Categories, models.CategoryInfo{
			ID:    c.ID,
			Label: c.Label,
			Tag:   c.Tag,
		})
	}
	for _, af := range poi.AmenityFilters {
		meta.Amenities = append(meta.Amenities, models.AmenityInfo{
			ID:         string(af.ID),
			Label:      af.Label,
			Clause:     af.Clause,
			ClientSide: af.ClientSide(),
		})
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	response.JSON(w, r, http.StatusOK, meta)
}

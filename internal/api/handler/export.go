package handler

import (
	"encoding/json"
	"net/http"

	"github.com/snackradar/snackradar/internal/api/models"
	"github.com/snackradar/snackradar/internal/api/response"
	"github.com/snackradar/snackradar/internal/gpx"
)

// Export handles POST /v1/spots:export - run the same search and return the
// result set as a GPX waypoint file.
func (h *SearchHandler) Export(w http.ResponseWriter, r *http.Request) {
	var input models.ExportRequest
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

	body, err := gpx.Export(spots, filter.Center())
	if err != nil {
		h.logger.Error().Err(err).Msg("gpx export failed")
		response.InternalError(w, r, "export failed")
		return
	}

	response.Attachment(w, r, "application/gpx+xml", "snack-radar.gpx", body)
}

// Package handler provides HTTP handlers for the Snack Radar API.
package handler

import (
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/snackradar/snackradar/internal/api/models"
	"github.com/snackradar/snackradar/internal/api/response"
	"github.com/snackradar/snackradar/internal/provider/resilience"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	registry  *resilience.Registry
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, registry *resilience.Registry) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		registry:  registry,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check. The service is
// ready once the geodata client is registered and its circuit is not open.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	status := models.HealthStatusOK
	httpStatus := http.StatusOK

	if h.registry == nil || h.registry.ProviderCount() == 0 {
		status = models.HealthStatusFail
		httpStatus = http.StatusServiceUnavailable
	} else {
		for _, ph := range h.registry.GetAllHealth() {
			if ph.IsUnhealthy() {
				status = models.HealthStatusDegraded
			}
		}
	}

	health := models.Health{
		Status: status,
		Time:   models.Timestamp(time.Now()),
	}
	response.JSON(w, r, httpStatus, health)
}

// SystemStatus handles GET /v1/ops/status - provider and subsystem status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	now := models.Timestamp(time.Now())

	overall := models.HealthStatusOK
	var providers []models.ProviderStatus
	if h.registry != nil {
		for _, ph := range h.registry.GetAllHealth() {
			ps := models.ProviderStatus{
				Provider: ph.Name,
				Status:   circuitToHealth(ph.CircuitState),
			}
			if ph.LastSuccessAt != nil {
				ts := models.Timestamp(*ph.LastSuccessAt)
				ps.LastSuccessAt = &ts
			}
			if ph.LastFailureAt != nil {
				ts := models.Timestamp(*ph.LastFailureAt)
				ps.LastFailureAt = &ts
			}
			if ph.LastError != "" {
				msg := ph.LastError
				ps.Message = &msg
			}
			if ps.Status != models.HealthStatusOK {
				overall = models.HealthStatusDegraded
			}
			providers = append(providers, ps)
		}
	}

	status := models.SystemStatus{
		Status:    overall,
		Time:      now,
		Providers: providers,
		Subsystems: []models.SubsystemStatus{
			{Name: "query-compiler", Status: models.HealthStatusOK},
		},
	}
	response.JSON(w, r, http.StatusOK, status)
}

// circuitToHealth maps a circuit breaker state to an API health status.
func circuitToHealth(state gobreaker.State) models.HealthStatus {
	switch state {
	case gobreaker.StateClosed:
		return models.HealthStatusOK
	case gobreaker.StateHalfOpen:
		return models.HealthStatusDegraded
	default:
		return models.HealthStatusFail
	}
}

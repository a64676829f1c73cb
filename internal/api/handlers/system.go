package handlers

import (
	"net/http"

	"github.com/finledger/networth-backend/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Health checks the health of the system and database connectivity
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.systemService.CheckHealth(); err != nil {
		response := HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		}
		respondJSON(w, http.StatusServiceUnavailable, response)
		return
	}

	response := HealthResponse{
		Status:   "healthy",
		Database: "connected",
	}
	respondJSON(w, http.StatusOK, response)
}

// VersionResponse represents the version check response.
type VersionResponse struct {
	AppVersion string `json:"app_version"`
}

// Version handles GET requests to retrieve the application version.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with VersionResponse
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	response := VersionResponse{
		AppVersion: h.systemService.CheckVersion(),
	}
	respondJSON(w, http.StatusOK, response)
}

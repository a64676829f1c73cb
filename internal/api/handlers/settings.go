package handlers

import (
	"errors"
	"net/http"

	"github.com/finledger/networth-backend/internal/api/request"
	"github.com/finledger/networth-backend/internal/api/response"
	apperrors "github.com/finledger/networth-backend/internal/errors"
	"github.com/finledger/networth-backend/internal/service"
	"github.com/finledger/networth-backend/internal/validation"
)

// SettingsHandler handles HTTP requests for user settings.
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler with the provided service dependency.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// Settings handles GET requests for the reporting preferences.
// The stored price-API key is never returned; only whether one is set.
//
// Endpoint: GET /api/settings
// Response: 200 OK with Settings
// Error: 500 Internal Server Error if retrieval fails
func (h *SettingsHandler) Settings(w http.ResponseWriter, _ *http.Request) {
	settings, err := h.settingsService.GetSettings()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve settings", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, settings)
}

// UpdateSettings handles PUT requests to change the base currency and the
// GBP to USD rate. A zero rate is accepted and means "unknown".
//
// Endpoint: PUT /api/settings
// Request Body: UpdateSettingsRequest (baseCurrency, fxRate)
// Response: 200 OK with the stored values
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if the update fails
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateSettingsRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSettingsRequest(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if err := h.settingsService.UpdateSettings(r.Context(), req.BaseCurrency, req.FXRate); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to update settings", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, req)
}

// SetPriceAPIKey handles PUT requests to store the external price-API
// credential. The key is encrypted at rest and never readable back through
// the API.
//
// Endpoint: PUT /api/settings/price-api-key
// Request Body: SetPriceAPIKeyRequest (apiKey)
// Response: 204 No Content
// Error: 400 Bad Request if the key is empty or the body is invalid
// Error: 500 Internal Server Error if no secret key is configured or storage fails
func (h *SettingsHandler) SetPriceAPIKey(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SetPriceAPIKeyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.APIKey == "" {
		response.RespondError(w, http.StatusBadRequest, "validation failed", "apiKey is required")
		return
	}

	if err := h.settingsService.SetPriceAPIKey(r.Context(), req.APIKey); err != nil {
		if errors.Is(err, apperrors.ErrNoSecretKey) {
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrNoSecretKey.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to store price API key", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

package handlers

import (
	"net/http"

	"github.com/finledger/networth-backend/internal/api/response"
	"github.com/finledger/networth-backend/internal/service"
)

// PriceHandler handles HTTP requests for the price store.
type PriceHandler struct {
	priceService *service.PriceService
}

// NewPriceHandler creates a new PriceHandler with the provided service dependency.
func NewPriceHandler(priceService *service.PriceService) *PriceHandler {
	return &PriceHandler{
		priceService: priceService,
	}
}

// RefreshResponse reports the outcome of a manual price refresh.
type RefreshResponse struct {
	Status string `json:"status"`
}

// Refresh handles POST requests to re-fetch daily close series for every
// symbol present in the ledger. The scheduled job runs the same operation
// nightly; this endpoint exists for on-demand refreshes.
//
// Endpoint: POST /api/prices/refresh
// Response: 200 OK with RefreshResponse
// Error: 500 Internal Server Error if the refresh fails
func (h *PriceHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.priceService.RefreshAll(r.Context()); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to refresh prices", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, RefreshResponse{Status: "refreshed"})
}

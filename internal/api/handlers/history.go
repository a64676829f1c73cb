package handlers

import (
	"errors"
	"net/http"

	"github.com/finledger/networth-backend/internal/api/response"
	apperrors "github.com/finledger/networth-backend/internal/errors"
	"github.com/finledger/networth-backend/internal/model"
	"github.com/finledger/networth-backend/internal/service"
)

// HistoryHandler handles HTTP requests for the net-worth history chart.
type HistoryHandler struct {
	historyService *service.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler with the provided service dependency.
func NewHistoryHandler(historyService *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
	}
}

// History handles GET requests for the reconstructed net-worth trajectory.
// The range query parameter selects the window; it defaults to 1M.
//
// Endpoint: GET /api/history?range=1W|1M|3M|6M|1Y|all
// Response: 200 OK with array of HistoryPoint
// Error: 400 Bad Request if the range value is not recognized
// Error: 500 Internal Server Error if computation fails
func (h *HistoryHandler) History(w http.ResponseWriter, r *http.Request) {
	rng := r.URL.Query().Get("range")
	if rng == "" {
		rng = model.Range1M
	}

	points, err := h.historyService.GetHistory(r.Context(), rng)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidRange) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidRange.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to compute history", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, points)
}

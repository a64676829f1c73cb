package handlers

import (
	"net/http"

	"github.com/finledger/networth-backend/internal/api/response"
	"github.com/finledger/networth-backend/internal/service"
)

// BalanceHandler handles HTTP requests for current balances.
type BalanceHandler struct {
	balanceService *service.BalanceService
}

// NewBalanceHandler creates a new BalanceHandler with the provided service dependency.
func NewBalanceHandler(balanceService *service.BalanceService) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// Balances handles GET requests for the current balance of every account and
// debt plus the derived totals. Values are in the user's base currency.
//
// Endpoint: GET /api/balances
// Response: 200 OK with Balances
// Error: 500 Internal Server Error if computation fails
func (h *BalanceHandler) Balances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.balanceService.GetBalances(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to compute balances", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, balances)
}

package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/finledger/networth-backend/internal/api/request"
	"github.com/finledger/networth-backend/internal/api/response"
	apperrors "github.com/finledger/networth-backend/internal/errors"
	"github.com/finledger/networth-backend/internal/model"
	"github.com/finledger/networth-backend/internal/service"
	"github.com/finledger/networth-backend/internal/validation"
)

// DebtHandler handles HTTP requests for debt endpoints.
type DebtHandler struct {
	debtService *service.DebtService
}

// NewDebtHandler creates a new DebtHandler with the provided service dependency.
func NewDebtHandler(debtService *service.DebtService) *DebtHandler {
	return &DebtHandler{
		debtService: debtService,
	}
}

// Debts handles GET requests to retrieve all debts.
//
// Endpoint: GET /api/debts
// Response: 200 OK with array of Debt
// Error: 500 Internal Server Error if retrieval fails
func (h *DebtHandler) Debts(w http.ResponseWriter, _ *http.Request) {
	debts, err := h.debtService.GetDebts()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve debts", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, debts)
}

// GetDebt handles GET requests to retrieve a single debt by ID.
//
// Endpoint: GET /api/debts/{uuid}
// Response: 200 OK with Debt
// Error: 400 Bad Request if debt ID is invalid (validated by middleware)
// Error: 404 Not Found if debt not found
// Error: 500 Internal Server Error if retrieval fails
func (h *DebtHandler) GetDebt(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "uuid")

	debt, err := h.debtService.GetDebt(debtID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDebtNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrDebtNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve debt", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, debt)
}

// CreateDebt handles POST requests to create a new debt.
//
// Endpoint: POST /api/debts
// Request Body: CreateDebtRequest (name, limit, apr, minPaymentType, minPaymentValue, startingValue, optional promo pair)
// Response: 201 Created with Debt
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *DebtHandler) CreateDebt(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateDebtRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateDebtRequest(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	debt, err := debtFromRequest(req, "")
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	created, err := h.debtService.CreateDebt(r.Context(), debt)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create debt", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, created)
}

// UpdateDebt handles PUT requests to update an existing debt.
//
// Endpoint: PUT /api/debts/{uuid}
// Request Body: UpdateDebtRequest
// Response: 200 OK with updated Debt
// Error: 400 Bad Request if debt ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if debt not found
// Error: 500 Internal Server Error if update fails
func (h *DebtHandler) UpdateDebt(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateDebtRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateDebtRequest(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	debt, err := debtFromRequest(req, debtID)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if err := h.debtService.UpdateDebt(r.Context(), debt); err != nil {
		if errors.Is(err, apperrors.ErrDebtNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrDebtNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update debt", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, debt)
}

// DeleteDebt handles DELETE requests to remove a debt.
//
// Endpoint: DELETE /api/debts/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if debt ID is invalid (validated by middleware)
// Error: 404 Not Found if debt not found
// Error: 500 Internal Server Error if deletion fails
func (h *DebtHandler) DeleteDebt(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "uuid")

	if err := h.debtService.DeleteDebt(r.Context(), debtID); err != nil {
		if errors.Is(err, apperrors.ErrDebtNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrDebtNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete debt", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// Projection handles GET requests for a debt's payoff outlook.
//
// Endpoint: GET /api/debts/{uuid}/projection
// Response: 200 OK with DebtProjection
// Error: 400 Bad Request if debt ID is invalid (validated by middleware)
// Error: 404 Not Found if debt not found
// Error: 500 Internal Server Error if the projection cannot be computed
func (h *DebtHandler) Projection(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "uuid")

	projection, err := h.debtService.GetProjection(debtID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDebtNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrDebtNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to compute debt projection", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, projection)
}

// debtFromRequest maps a validated debt payload onto the model, parsing the
// promo end date. Validation guarantees the promo fields arrive as a pair.
func debtFromRequest(req request.CreateDebtRequest, id string) (model.Debt, error) {
	debt := model.Debt{
		ID:              id,
		Name:            req.Name,
		Limit:           req.Limit,
		APR:             req.APR,
		MinPaymentType:  req.MinPaymentType,
		MinPaymentValue: req.MinPaymentValue,
		StartingValue:   req.StartingValue,
	}

	if req.PromoAPR != nil {
		endDate, err := time.Parse("2006-01-02", req.PromoEndDate)
		if err != nil {
			return model.Debt{}, err
		}
		debt.Promo = &model.Promo{
			PromoAPR:     *req.PromoAPR,
			PromoEndDate: endDate,
		}
	}

	return debt, nil
}

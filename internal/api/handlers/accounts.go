package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finledger/networth-backend/internal/api/request"
	"github.com/finledger/networth-backend/internal/api/response"
	apperrors "github.com/finledger/networth-backend/internal/errors"
	"github.com/finledger/networth-backend/internal/model"
	"github.com/finledger/networth-backend/internal/service"
	"github.com/finledger/networth-backend/internal/validation"
)

// AccountHandler handles HTTP requests for account endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the accountService.
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler with the provided service dependency.
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// Accounts handles GET requests to retrieve all asset accounts.
//
// Endpoint: GET /api/accounts
// Response: 200 OK with array of Account
// Error: 500 Internal Server Error if retrieval fails
func (h *AccountHandler) Accounts(w http.ResponseWriter, _ *http.Request) {
	accounts, err := h.accountService.GetAccounts()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve accounts", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, accounts)
}

// GetAccount handles GET requests to retrieve a single account by ID.
//
// Endpoint: GET /api/accounts/{uuid}
// Response: 200 OK with Account
// Error: 400 Bad Request if account ID is invalid (validated by middleware)
// Error: 404 Not Found if account not found
// Error: 500 Internal Server Error if retrieval fails
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "uuid")

	account, err := h.accountService.GetAccount(accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve account", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, account)
}

// CreateAccount handles POST requests to create a new asset account.
//
// Endpoint: POST /api/accounts
// Request Body: CreateAccountRequest (name, type, currency, startingValue)
// Response: 201 Created with Account
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateAccountRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateAccountRequest(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	account, err := h.accountService.CreateAccount(r.Context(), model.Account{
		Name:          req.Name,
		Type:          req.Type,
		Currency:      req.Currency,
		StartingValue: req.StartingValue,
	})
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create account", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, account)
}

// UpdateAccount handles PUT requests to update an existing account.
//
// Endpoint: PUT /api/accounts/{uuid}
// Request Body: UpdateAccountRequest
// Response: 200 OK with updated Account
// Error: 400 Bad Request if account ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if account not found
// Error: 500 Internal Server Error if update fails
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateAccountRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateAccountRequest(request.CreateAccountRequest(req)); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	account := model.Account{
		ID:            accountID,
		Name:          req.Name,
		Type:          req.Type,
		Currency:      req.Currency,
		StartingValue: req.StartingValue,
	}
	if err := h.accountService.UpdateAccount(r.Context(), account); err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update account", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, account)
}

// DeleteAccount handles DELETE requests to remove an account.
//
// Endpoint: DELETE /api/accounts/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if account ID is invalid (validated by middleware)
// Error: 404 Not Found if account not found
// Error: 500 Internal Server Error if deletion fails
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "uuid")

	if err := h.accountService.DeleteAccount(r.Context(), accountID); err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete account", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

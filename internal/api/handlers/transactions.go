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

// TransactionHandler handles HTTP requests for ledger entry endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the transactionService.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// Transactions handles GET requests to retrieve ledger entries, ordered by
// date ascending. An optional accountId query parameter restricts the result
// to entries touching that account as source or destination.
//
// Endpoint: GET /api/transactions?accountId={uuid}
// Response: 200 OK with array of Transaction
// Error: 400 Bad Request if accountId is present but not a valid UUID
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("accountId")
	if accountID != "" {
		if err := validation.ValidateUUID(accountID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid accountId", err.Error())
			return
		}
	}

	transactions, err := h.transactionService.GetTransactions(accountID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve transactions", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transactions)
}

// GetTransaction handles GET requests to retrieve a single ledger entry by ID.
//
// Endpoint: GET /api/transactions/{uuid}
// Response: 200 OK with Transaction
// Error: 400 Bad Request if transaction ID is invalid (validated by middleware)
// Error: 404 Not Found if transaction not found
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	transaction, err := h.transactionService.GetTransaction(transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transaction)
}

// CreateTransaction handles POST requests to record a new ledger entry.
//
// Endpoint: POST /api/transactions
// Request Body: CreateTransactionRequest (date, amount, type, accountId, ...)
// Response: 201 Created with Transaction
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateTransactionRequest(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	tx, err := transactionFromRequest(req, "")
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	created, err := h.transactionService.CreateTransaction(r.Context(), tx)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, created)
}

// UpdateTransaction handles PUT requests to update an existing ledger entry.
//
// Endpoint: PUT /api/transactions/{uuid}
// Request Body: UpdateTransactionRequest
// Response: 200 OK with updated Transaction
// Error: 400 Bad Request if transaction ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if transaction not found
// Error: 500 Internal Server Error if update fails
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateTransactionRequest(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	tx, err := transactionFromRequest(req, transactionID)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if err := h.transactionService.UpdateTransaction(r.Context(), tx); err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, tx)
}

// DeleteTransaction handles DELETE requests to remove a ledger entry.
//
// Endpoint: DELETE /api/transactions/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if transaction ID is invalid (validated by middleware)
// Error: 404 Not Found if transaction not found
// Error: 500 Internal Server Error if deletion fails
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	if err := h.transactionService.DeleteTransaction(r.Context(), transactionID); err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// transactionFromRequest maps a validated payload onto the model, parsing the
// entry date.
func transactionFromRequest(req request.CreateTransactionRequest, id string) (model.Transaction, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		ID:          id,
		Date:        date,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		AccountID:   req.AccountID,
		AccountToID: req.AccountToID,
		Symbol:      req.Symbol,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Currency:    req.Currency,
	}, nil
}

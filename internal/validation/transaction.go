package validation

import (
	"fmt"
	"time"

	"github.com/finledger/networth-backend/internal/api/request"
	"github.com/finledger/networth-backend/internal/model"
)

// ValidateTransactionRequest validates a transaction create/update payload.
func ValidateTransactionRequest(req request.CreateTransactionRequest) error {
	if req.AccountID == "" {
		return fmt.Errorf("accountId is required")
	}
	if err := ValidateUUID(req.AccountID); err != nil {
		return err
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}

	switch req.Type {
	case model.TypeIncome, model.TypeExpense, model.TypeInvesting, model.TypeDebtPayment, model.TypeTransfer:
	default:
		return fmt.Errorf("unknown transaction type %q", req.Type)
	}

	if req.Type == model.TypeTransfer && req.AccountToID != "" {
		if err := ValidateUUID(req.AccountToID); err != nil {
			return err
		}
	}

	if req.Type == model.TypeInvesting {
		if req.Symbol == "" {
			return fmt.Errorf("symbol is required for investing transactions")
		}
		if req.Category == model.CategorySell && req.Quantity > 0 {
			return fmt.Errorf("sell quantity must be negative")
		}
	}

	return nil
}

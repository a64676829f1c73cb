package validation

import (
	"fmt"

	"github.com/finledger/networth-backend/internal/api/request"
	"github.com/finledger/networth-backend/internal/model"
)

// ValidateAccountRequest validates an account create/update payload.
func ValidateAccountRequest(req request.CreateAccountRequest) error {
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}

	switch req.Type {
	case model.AccountChecking, model.AccountSavings, model.AccountInvestment:
	default:
		return fmt.Errorf("type must be one of checking, savings, investment")
	}

	switch req.Currency {
	case "", "GBP", "USD", "EUR", "GBX":
	default:
		return fmt.Errorf("unsupported currency %q", req.Currency)
	}

	return nil
}

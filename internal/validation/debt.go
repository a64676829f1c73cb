package validation

import (
	"fmt"
	"time"

	"github.com/finledger/networth-backend/internal/api/request"
	"github.com/finledger/networth-backend/internal/model"
)

// ValidateDebtRequest validates a debt create/update payload.
func ValidateDebtRequest(req request.CreateDebtRequest) error {
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if req.APR < 0 {
		return fmt.Errorf("apr cannot be negative")
	}

	switch req.MinPaymentType {
	case "", model.MinPaymentFixed, model.MinPaymentPercentage:
	default:
		return fmt.Errorf("minPaymentType must be fixed or percentage")
	}
	if req.MinPaymentValue < 0 {
		return fmt.Errorf("minPaymentValue cannot be negative")
	}

	hasPromoAPR := req.PromoAPR != nil
	hasPromoEnd := req.PromoEndDate != ""
	if hasPromoAPR != hasPromoEnd {
		return fmt.Errorf("promoApr and promoEndDate must be provided together")
	}
	if hasPromoEnd {
		if _, err := time.Parse("2006-01-02", req.PromoEndDate); err != nil {
			return fmt.Errorf("promoEndDate must be YYYY-MM-DD: %w", err)
		}
		if *req.PromoAPR < 0 {
			return fmt.Errorf("promoApr cannot be negative")
		}
	}

	return nil
}

package validation

import (
	"fmt"

	"github.com/finledger/networth-backend/internal/api/request"
)

// ValidateSettingsRequest validates a settings update payload. GBX is a
// quote convention, not a reporting currency, so it is not accepted here.
func ValidateSettingsRequest(req request.UpdateSettingsRequest) error {
	switch req.BaseCurrency {
	case "GBP", "USD", "EUR":
	default:
		return fmt.Errorf("baseCurrency must be one of GBP, USD, EUR")
	}

	if req.FXRate < 0 {
		return fmt.Errorf("fxRate must not be negative")
	}

	return nil
}

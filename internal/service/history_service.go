package service

import (
	"context"

	apperrors "github.com/finledger/networth-backend/internal/errors"
	"github.com/finledger/networth-backend/internal/ledger"
	"github.com/finledger/networth-backend/internal/model"
)

// HistoryService produces the reconstructed net-worth time series. It
// shares its data loading with BalanceService so the history's final point
// always agrees with the balances page.
type HistoryService struct {
	balanceService *BalanceService
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(balanceService *BalanceService) *HistoryService {
	return &HistoryService{balanceService: balanceService}
}

// GetHistory reconstructs the net-worth trajectory over a named range.
// The series is ordered ascending by date and ends on today's live point.
func (s *HistoryService) GetHistory(ctx context.Context, rng string) ([]model.HistoryPoint, error) {
	switch rng {
	case model.Range1W, model.Range1M, model.Range3M, model.Range6M, model.Range1Y, model.RangeAll:
	default:
		return nil, apperrors.ErrInvalidRange
	}

	input, err := s.balanceService.loadValuationInputs(ctx)
	if err != nil {
		return nil, err
	}

	return ledger.NetWorthHistory(input, rng), nil
}

package service

import (
	"time"

	"cafe-inventory/internal/repository"
	"cafe-inventory/pkg/timestamp"
)

// StockView is a StockRow with its last update rendered for display.
type StockView struct {
	repository.StockRow
	LastUpdatedDisplay string `json:"last_updated_display"`
}

type StockService interface {
	CurrentStock() ([]StockView, error)
	StockFor(productID uint) (int64, error)
}

type stockService struct {
	stockRepo        repository.StockRepository
	loc              *time.Location
	includeDeletedTx bool
}

// NewStockService builds the stock view. With excludeDeletedTx false the sums
// include soft-deleted transactions, matching the historical behavior.
func NewStockService(stockRepo repository.StockRepository, loc *time.Location, excludeDeletedTx bool) StockService {
	return &stockService{
		stockRepo:        stockRepo,
		loc:              loc,
		includeDeletedTx: !excludeDeletedTx,
	}
}

func (s *stockService) CurrentStock() ([]StockView, error) {
	rows, err := s.stockRepo.CurrentStock(s.includeDeletedTx)
	if err != nil {
		return nil, err
	}

	views := make([]StockView, len(rows))
	for i, row := range rows {
		views[i] = StockView{
			StockRow:           row,
			LastUpdatedDisplay: timestamp.Display(row.LastUpdated, s.loc),
		}
	}
	return views, nil
}

func (s *stockService) StockFor(productID uint) (int64, error) {
	return s.stockRepo.NetQuantity(productID, s.includeDeletedTx)
}

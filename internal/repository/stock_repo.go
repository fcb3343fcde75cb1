package repository

import (
	"cafe-inventory/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockRow is one line of the current stock view
type StockRow struct {
	ProductID   uint            `json:"product_id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	NetQuantity int64           `json:"net_quantity"`
	LastUpdated *string         `json:"last_updated"` // raw MAX(transaction_date), nil without transactions
}

// HistoryRow is one transaction joined with its product and user names
type HistoryRow struct {
	ID                 uint                  `json:"id"`
	ProductID          uint                  `json:"product_id"`
	ProductName        string                `json:"product_name"`
	ProductDeleted     bool                  `json:"product_deleted"`
	UserID             uint                  `json:"user_id"`
	Username           string                `json:"username"`
	Quantity           int                   `json:"quantity"`
	Type               model.TransactionType `json:"type"`
	TransactionDate    string                `json:"transaction_date"`
	Notes              string                `json:"notes"`
	TransactionDeleted bool                  `json:"transaction_deleted"`
}

type StockRepository interface {
	CurrentStock(includeDeletedTx bool) ([]StockRow, error)
	NetQuantity(productID uint, includeDeletedTx bool) (int64, error)
	History() ([]HistoryRow, error)
}

type stockRepo struct {
	db *gorm.DB
}

func NewStockRepo(db *gorm.DB) StockRepository {
	return &stockRepo{db}
}

const netQuantityExpr = `COALESCE(SUM(CASE WHEN t.type = 'IN' THEN t.quantity WHEN t.type = 'OUT' THEN -t.quantity ELSE 0 END), 0)`

// joinTransactions builds the LEFT JOIN clause. The deleted filter has to sit
// in the ON clause so products without live transactions still appear.
func joinTransactions(includeDeletedTx bool) string {
	join := "LEFT JOIN stock_transactions t ON t.product_id = p.id"
	if !includeDeletedTx {
		join += " AND t.deleted = false"
	}
	return join
}

// CurrentStock aggregates IN minus OUT per non-deleted product, ordered by id.
func (r *stockRepo) CurrentStock(includeDeletedTx bool) ([]StockRow, error) {
	var rows []StockRow
	err := r.db.Table("products AS p").
		Select(`p.id AS product_id, p.name, p.category, p.unit_price,
			` + netQuantityExpr + ` AS net_quantity,
			MAX(t.transaction_date) AS last_updated`).
		Joins(joinTransactions(includeDeletedTx)).
		Where("p.deleted = ?", false).
		Group("p.id, p.name, p.category, p.unit_price").
		Order("p.id ASC").
		Scan(&rows).Error
	return rows, err
}

// NetQuantity is the same sum for a single product, deleted or not.
func (r *stockRepo) NetQuantity(productID uint, includeDeletedTx bool) (int64, error) {
	var net int64
	err := r.db.Table("products AS p").
		Select(netQuantityExpr).
		Joins(joinTransactions(includeDeletedTx)).
		Where("p.id = ?", productID).
		Scan(&net).Error
	return net, err
}

// History lists every transaction, most recent first, ties by id.
// Soft-deleted products and transactions are flagged, not filtered.
func (r *stockRepo) History() ([]HistoryRow, error) {
	var rows []HistoryRow
	err := r.db.Table("stock_transactions AS t").
		Select(`t.id, t.product_id, p.name AS product_name, p.deleted AS product_deleted,
			t.user_id, u.username, t.quantity, t.type, t.transaction_date, t.notes,
			t.deleted AS transaction_deleted`).
		Joins("JOIN products p ON p.id = t.product_id").
		Joins("JOIN users u ON u.id = t.user_id").
		Order("t.transaction_date DESC, t.id ASC").
		Scan(&rows).Error
	return rows, err
}

package model

import "strings"

type TransactionType string

const (
	TxIn  TransactionType = "IN"
	TxOut TransactionType = "OUT"
)

// ParseTransactionType normalizes a form label into IN or OUT.
// Unknown labels are rejected instead of falling back to OUT.
func ParseTransactionType(label string) (TransactionType, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "in", "inbound", "入庫":
		return TxIn, true
	case "out", "outbound", "出庫":
		return TxOut, true
	}
	return "", false
}

// Sign is the effect one unit of this type has on stock.
func (t TransactionType) Sign() int {
	if t == TxOut {
		return -1
	}
	return 1
}

// Label is the form label shown for this type.
func (t TransactionType) Label() string {
	if t == TxOut {
		return "出庫"
	}
	return "入庫"
}

type StockTransaction struct {
	BaseModel
	ProductID       uint            `gorm:"not null;index" json:"product_id"`
	Product         Product         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	User            User            `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	Quantity        int             `gorm:"not null" json:"quantity"` // always > 0, sign comes from Type
	Type            TransactionType `gorm:"type:varchar(10);not null" json:"type"`
	TransactionDate string          `gorm:"type:varchar(19);not null;index" json:"transaction_date"` // local time, YYYY-MM-DD HH:MM:SS
	Notes           string          `gorm:"type:varchar(200)" json:"notes"`
	SoftDelete
}

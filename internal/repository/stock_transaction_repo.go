package repository

import (
	"cafe-inventory/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockTransactionRepository interface {
	Create(tx *model.StockTransaction) error
	FindByID(id uint) (*model.StockTransaction, error)
	Update(tx *model.StockTransaction) error
	SoftDelete(id uint) error
}

type stockTransactionRepo struct {
	db *gorm.DB
}

func NewStockTransactionRepo(db *gorm.DB) StockTransactionRepository {
	return &stockTransactionRepo{db}
}

// Create never touches the Product/User associations; only the ids are written.
func (r *stockTransactionRepo) Create(tx *model.StockTransaction) error {
	return r.db.Omit(clause.Associations).Create(tx).Error
}

func (r *stockTransactionRepo) FindByID(id uint) (*model.StockTransaction, error) {
	var transaction model.StockTransaction
	if err := r.db.First(&transaction, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *stockTransactionRepo) Update(tx *model.StockTransaction) error {
	return r.db.Omit(clause.Associations).Save(tx).Error
}

func (r *stockTransactionRepo) SoftDelete(id uint) error {
	return r.db.Model(&model.StockTransaction{}).Where("id = ?", id).Update("deleted", true).Error
}

package repository

import (
	"cafe-inventory/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindActive() ([]model.Product, error)
	FindAll() ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	Exists(id uint) (bool, error)
	Update(product *model.Product) error
	SoftDelete(id uint) error
}

type productRepo struct {
	db *gorm.DB
}

// NewProductRepo accepts either the root handle or a transaction handle.
func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindActive() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("deleted = ?", false).Order("id ASC").Find(&products).Error
	return products, err
}

// FindAll includes soft-deleted products; transaction forms still reference them.
func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("id ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) SoftDelete(id uint) error {
	return r.db.Model(&model.Product{}).Where("id = ?", id).Update("deleted", true).Error
}

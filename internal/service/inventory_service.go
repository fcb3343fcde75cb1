package service

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"cafe-inventory/internal/apperror"
	"cafe-inventory/internal/model"
	"cafe-inventory/internal/repository"
	"cafe-inventory/pkg/timestamp"
	"cafe-inventory/pkg/validator"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductInput is the product form as submitted. UnitPrice is parsed here so
// that bad input becomes a validation error rather than a bind error.
type ProductInput struct {
	Name        string `form:"name" validate:"notblank,max=100"`
	Description string `form:"description" validate:"max=200"`
	Category    string `form:"category" validate:"max=50"`
	UnitPrice   string `form:"unit_price" validate:"notblank"`
}

// TransactionInput is the stock movement form as submitted.
type TransactionInput struct {
	ProductID string `form:"product_id" validate:"notblank"`
	UserID    string `form:"user_id" validate:"notblank"`
	Quantity  string `form:"quantity" validate:"notblank"`
	Type      string `form:"type" validate:"notblank"`
	Notes     string `form:"notes" validate:"max=200"`
}

type InventoryService interface {
	CreateProduct(req *ProductInput) (*model.Product, error)
	UpdateProduct(id uint, req *ProductInput) (*model.Product, error)
	SoftDeleteProduct(id uint) error
	GetProduct(id uint) (*model.Product, error)
	ListActiveProducts() ([]model.Product, error)
	ListAllProducts() ([]model.Product, error)

	RecordTransaction(req *TransactionInput) (*model.StockTransaction, error)
	UpdateTransaction(id uint, req *TransactionInput) (*model.StockTransaction, error)
	SoftDeleteTransaction(id uint) error
	GetTransaction(id uint) (*model.StockTransaction, error)
	ListTransactions() ([]repository.HistoryRow, error)

	ListUsers() ([]model.UserOption, error)
}

type inventoryService struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
	userRepo    repository.UserRepository
	db          *gorm.DB
	loc         *time.Location
	now         func() time.Time
}

func NewInventoryService(pRepo repository.ProductRepository, sRepo repository.StockRepository, uRepo repository.UserRepository, db *gorm.DB, loc *time.Location) InventoryService {
	return &inventoryService{
		productRepo: pRepo,
		stockRepo:   sRepo,
		userRepo:    uRepo,
		db:          db,
		loc:         loc,
		now:         time.Now,
	}
}

func validationError(req interface{}) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return apperror.Validation("%s", errs[0].Message())
	}
	return nil
}

func parseUnitPrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || price.IsNegative() {
		return decimal.Decimal{}, apperror.Validation("unit price must be a non-negative number")
	}
	return price, nil
}

func (s *inventoryService) buildProduct(dst *model.Product, req *ProductInput) error {
	if err := validationError(req); err != nil {
		return err
	}
	price, err := parseUnitPrice(req.UnitPrice)
	if err != nil {
		return err
	}
	dst.Name = strings.TrimSpace(req.Name)
	dst.Description = strings.TrimSpace(req.Description)
	dst.Category = strings.TrimSpace(req.Category)
	dst.UnitPrice = price
	return nil
}

func (s *inventoryService) CreateProduct(req *ProductInput) (*model.Product, error) {
	var product model.Product
	if err := s.buildProduct(&product, req); err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(&product); err != nil {
		return nil, fmt.Errorf("create product: %w", apperror.FromDB(err, "product"))
	}

	log.Printf("product %d created: %s", product.ID, product.Name)
	return &product, nil
}

func (s *inventoryService) UpdateProduct(id uint, req *ProductInput) (*model.Product, error) {
	var updated model.Product
	if err := s.buildProduct(&updated, req); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewProductRepo(tx)
		existing, err := repo.FindByID(id)
		if err != nil {
			return apperror.FromDB(err, "product")
		}

		existing.Name = updated.Name
		existing.Description = updated.Description
		existing.Category = updated.Category
		existing.UnitPrice = updated.UnitPrice

		if err := repo.Update(existing); err != nil {
			return apperror.FromDB(err, "product")
		}
		updated = *existing
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}

	return &updated, nil
}

// SoftDeleteProduct hides the product; its transactions stay untouched.
func (s *inventoryService) SoftDeleteProduct(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewProductRepo(tx)
		if _, err := repo.FindByID(id); err != nil {
			return apperror.FromDB(err, "product")
		}
		return repo.SoftDelete(id)
	})
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	log.Printf("product %d soft-deleted", id)
	return nil
}

func (s *inventoryService) GetProduct(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, apperror.FromDB(err, "product")
	}
	return product, nil
}

func (s *inventoryService) ListActiveProducts() ([]model.Product, error) {
	return s.productRepo.FindActive()
}

func (s *inventoryService) ListAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

// MaxQuantity bounds a single movement so stock sums stay within int64.
const MaxQuantity = math.MaxInt32

type parsedTransaction struct {
	productID uint
	userID    uint
	quantity  int
	txType    model.TransactionType
	notes     string
}

func parseID(raw, field string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.Validation("%s is invalid", field)
	}
	return uint(id), nil
}

func parseTransaction(req *TransactionInput) (*parsedTransaction, error) {
	if err := validationError(req); err != nil {
		return nil, err
	}

	productID, err := parseID(req.ProductID, "product")
	if err != nil {
		return nil, err
	}
	userID, err := parseID(req.UserID, "user")
	if err != nil {
		return nil, err
	}

	qty, err := strconv.Atoi(strings.TrimSpace(req.Quantity))
	if err != nil || qty <= 0 {
		return nil, apperror.Validation("quantity must be a positive integer")
	}
	if qty > MaxQuantity {
		return nil, apperror.Validation("quantity must be at most %d", MaxQuantity)
	}

	txType, ok := model.ParseTransactionType(req.Type)
	if !ok {
		return nil, apperror.Validation("unknown transaction type %q", req.Type)
	}

	return &parsedTransaction{
		productID: productID,
		userID:    userID,
		quantity:  qty,
		txType:    txType,
		notes:     strings.TrimSpace(req.Notes),
	}, nil
}

// checkReferences runs inside the write transaction so the rows cannot vanish
// between the check and the insert. Soft-deleted products are valid targets.
func checkReferences(tx *gorm.DB, p *parsedTransaction) error {
	ok, err := repository.NewProductRepo(tx).Exists(p.productID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.ForeignKey("product %d does not exist", p.productID)
	}

	ok, err = repository.NewUserRepo(tx).Exists(p.userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.ForeignKey("user %d does not exist", p.userID)
	}
	return nil
}

func (s *inventoryService) RecordTransaction(req *TransactionInput) (*model.StockTransaction, error) {
	p, err := parseTransaction(req)
	if err != nil {
		return nil, err
	}

	record := &model.StockTransaction{
		ProductID:       p.productID,
		UserID:          p.userID,
		Quantity:        p.quantity,
		Type:            p.txType,
		Notes:           p.notes,
		TransactionDate: timestamp.Format(s.now(), s.loc),
	}

	// Gunakan Transaction Block (Atomic Operation)
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := checkReferences(tx, p); err != nil {
			return err
		}
		if err := repository.NewStockTransactionRepo(tx).Create(record); err != nil {
			return apperror.FromDB(err, "stock transaction")
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("record transaction: %w", err)
	}

	log.Printf("stock transaction %d recorded: product=%d %s %d", record.ID, record.ProductID, record.Type, record.Quantity)
	return record, nil
}

// UpdateTransaction may change any field; the original transaction date is kept.
func (s *inventoryService) UpdateTransaction(id uint, req *TransactionInput) (*model.StockTransaction, error) {
	p, err := parseTransaction(req)
	if err != nil {
		return nil, err
	}

	var updated *model.StockTransaction
	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewStockTransactionRepo(tx)
		existing, err := repo.FindByID(id)
		if err != nil {
			return apperror.FromDB(err, "stock transaction")
		}
		if err := checkReferences(tx, p); err != nil {
			return err
		}

		existing.ProductID = p.productID
		existing.UserID = p.userID
		existing.Quantity = p.quantity
		existing.Type = p.txType
		existing.Notes = p.notes

		if err := repo.Update(existing); err != nil {
			return apperror.FromDB(err, "stock transaction")
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update transaction %d: %w", id, err)
	}

	return updated, nil
}

func (s *inventoryService) SoftDeleteTransaction(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewStockTransactionRepo(tx)
		if _, err := repo.FindByID(id); err != nil {
			return apperror.FromDB(err, "stock transaction")
		}
		return repo.SoftDelete(id)
	})
	if err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}

	log.Printf("stock transaction %d soft-deleted", id)
	return nil
}

func (s *inventoryService) GetTransaction(id uint) (*model.StockTransaction, error) {
	transaction, err := repository.NewStockTransactionRepo(s.db).FindByID(id)
	if err != nil {
		return nil, apperror.FromDB(err, "stock transaction")
	}
	return transaction, nil
}

func (s *inventoryService) ListTransactions() ([]repository.HistoryRow, error) {
	return s.stockRepo.History()
}

func (s *inventoryService) ListUsers() ([]model.UserOption, error) {
	return s.userRepo.FindOptions()
}

package repository

import (
	"testing"

	"cafe-inventory/internal/apperror"
	"cafe-inventory/internal/model"
	"cafe-inventory/internal/testhelpers"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	products ProductRepository
	users    UserRepository
	txs      StockTransactionRepository
	stock    StockRepository
}

func newFixture(t *testing.T) *fixture {
	db := testhelpers.NewTestDB(t)
	return &fixture{
		db:       db,
		products: NewProductRepo(db),
		users:    NewUserRepo(db),
		txs:      NewStockTransactionRepo(db),
		stock:    NewStockRepo(db),
	}
}

func (f *fixture) product(t *testing.T, name string, price string) *model.Product {
	p := &model.Product{Name: name, UnitPrice: decimal.RequireFromString(price)}
	require.NoError(t, f.products.Create(p))
	return p
}

func (f *fixture) user(t *testing.T, name string) *model.User {
	u := &model.User{Username: name, Password: "x", Role: "staff", CreatedOn: "2024-01-01 00:00:00"}
	require.NoError(t, f.users.Create(u))
	return u
}

func (f *fixture) move(t *testing.T, p *model.Product, u *model.User, qty int, typ model.TransactionType, at string) *model.StockTransaction {
	tx := &model.StockTransaction{ProductID: p.ID, UserID: u.ID, Quantity: qty, Type: typ, TransactionDate: at}
	require.NoError(t, f.txs.Create(tx))
	return tx
}

func TestCurrentStock(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "alice")
	espresso := f.product(t, "Espresso", "3.50")
	latte := f.product(t, "Latte", "4.20")
	beans := f.product(t, "Beans", "12.00")

	f.move(t, espresso, u, 10, model.TxIn, "2024-01-01 09:00:00")
	f.move(t, espresso, u, 4, model.TxOut, "2024-01-02 09:00:00")
	f.move(t, beans, u, 3, model.TxIn, "2024-01-03 09:00:00")
	require.NoError(t, f.products.SoftDelete(beans.ID))

	rows, err := f.stock.CurrentStock(true)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, espresso.ID, rows[0].ProductID)
	assert.Equal(t, int64(6), rows[0].NetQuantity)
	require.NotNil(t, rows[0].LastUpdated)
	assert.Equal(t, "2024-01-02 09:00:00", *rows[0].LastUpdated)
	assert.True(t, decimal.RequireFromString("3.5").Equal(rows[0].UnitPrice))

	assert.Equal(t, latte.ID, rows[1].ProductID)
	assert.Equal(t, int64(0), rows[1].NetQuantity)
	assert.Nil(t, rows[1].LastUpdated)
}

func TestCurrentStockDeletedTransactions(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "alice")
	p := f.product(t, "Espresso", "3.50")

	f.move(t, p, u, 10, model.TxIn, "2024-01-01 09:00:00")
	gone := f.move(t, p, u, 4, model.TxOut, "2024-01-02 09:00:00")
	require.NoError(t, f.txs.SoftDelete(gone.ID))

	withDeleted, err := f.stock.CurrentStock(true)
	require.NoError(t, err)
	assert.Equal(t, int64(6), withDeleted[0].NetQuantity)

	withoutDeleted, err := f.stock.CurrentStock(false)
	require.NoError(t, err)
	require.Len(t, withoutDeleted, 1)
	assert.Equal(t, int64(10), withoutDeleted[0].NetQuantity)

	net, err := f.stock.NetQuantity(p.ID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(10), net)
}

func TestNetQuantityWithoutTransactions(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Mocha", "4.00")

	net, err := f.stock.NetQuantity(p.ID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(0), net)
}

func TestHistoryOrderingAndMarkers(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	p := f.product(t, "Espresso", "3.50")
	q := f.product(t, "Latte", "4.20")

	first := f.move(t, p, alice, 10, model.TxIn, "2024-01-01 09:00:00")
	tieA := f.move(t, q, bob, 2, model.TxIn, "2024-01-02 09:00:00")
	tieB := f.move(t, p, alice, 1, model.TxOut, "2024-01-02 09:00:00")
	require.NoError(t, f.products.SoftDelete(p.ID))
	require.NoError(t, f.txs.SoftDelete(tieA.ID))

	rows, err := f.stock.History()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []uint{tieA.ID, tieB.ID, first.ID}, []uint{rows[0].ID, rows[1].ID, rows[2].ID})

	assert.Equal(t, "Latte", rows[0].ProductName)
	assert.Equal(t, "bob", rows[0].Username)
	assert.False(t, rows[0].ProductDeleted)
	assert.True(t, rows[0].TransactionDeleted)

	assert.Equal(t, "Espresso", rows[1].ProductName)
	assert.True(t, rows[1].ProductDeleted)
	assert.False(t, rows[1].TransactionDeleted)
	assert.Equal(t, model.TxOut, rows[1].Type)
}

func TestProductVisibility(t *testing.T) {
	f := newFixture(t)
	a := f.product(t, "Espresso", "3.50")
	b := f.product(t, "Latte", "4.20")
	require.NoError(t, f.products.SoftDelete(a.ID))

	active, err := f.products.FindActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, b.ID, active[0].ID)

	all, err := f.products.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	ok, err := f.products.Exists(a.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.products.Exists(999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserRepo(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "alice")
	f.user(t, "bob")

	dup := &model.User{Username: "alice", Password: "x", CreatedOn: "2024-01-01 00:00:00"}
	assert.Error(t, f.users.Create(dup))

	found, err := f.users.FindByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = f.users.FindByUsername("carol")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, f.users.UpdatePassword(u.ID, "hash", "v2"))
	found, err = f.users.FindByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash", found.Password)
	assert.Equal(t, "v2", found.TokenVersion)

	opts, err := f.users.FindOptions()
	require.NoError(t, err)
	require.Len(t, opts, 2)
	assert.Equal(t, "alice", opts[0].Username)
	assert.Equal(t, "bob", opts[1].Username)
}

func TestUserRepoDuplicateUsernameIsConstraint(t *testing.T) {
	f := newFixture(t)
	f.user(t, "alice")

	err := f.users.Create(&model.User{Username: "alice", Password: "y", CreatedOn: "2024-01-02 00:00:00"})
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, apperror.FromDB(err, "username"), apperror.ErrConstraint)
}

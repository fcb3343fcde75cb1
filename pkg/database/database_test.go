package database

import (
	"path/filepath"
	"testing"

	"cafe-inventory/internal/config"
	"cafe-inventory/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "cafe_app.db?_pragma=foreign_keys(1)", SQLiteDSN("cafe_app.db"))
	assert.Equal(t, "file:x?mode=memory&_pragma=foreign_keys(1)", SQLiteDSN("file:x?mode=memory"))
}

func TestConnectSQLiteFile(t *testing.T) {
	cfg := &config.Config{
		DBDriver:   "sqlite",
		DBPath:     filepath.Join(t.TempDir(), "cafe.db"),
		DBLogLevel: "silent",
	}

	db, err := Connect(cfg)
	require.NoError(t, err)
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	for _, m := range []any{&model.Product{}, &model.User{}, &model.StockTransaction{}} {
		assert.True(t, db.Migrator().HasTable(m))
	}

	// Running the migration again is a no-op.
	assert.NoError(t, Migrate(db))
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	_, err := Connect(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)

	_, err = Connect(&config.Config{DBDriver: "postgres"})
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestForeignKeysEnforced(t *testing.T) {
	db, err := Connect(&config.Config{
		DBDriver:   "sqlite",
		DBPath:     filepath.Join(t.TempDir(), "fk.db"),
		DBLogLevel: "silent",
	})
	require.NoError(t, err)
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	err = db.Create(&model.StockTransaction{
		ProductID:       42,
		UserID:          7,
		Quantity:        1,
		Type:            model.TxIn,
		TransactionDate: "2024-01-01 00:00:00",
	}).Error
	assert.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, logLevel("silent"))
	assert.Equal(t, logger.Info, logLevel("info"))
	assert.Equal(t, logger.Warn, logLevel("whatever"))
}

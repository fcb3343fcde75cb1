// Package app builds the application context once at startup: the storage
// handle plus every repository, service and handler that depends on it.
package app

import (
	"time"

	"cafe-inventory/internal/config"
	"cafe-inventory/internal/handler"
	"cafe-inventory/internal/repository"
	"cafe-inventory/internal/router"
	"cafe-inventory/internal/service"
	"cafe-inventory/pkg/jwt"
	"cafe-inventory/pkg/timestamp"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	DB       *gorm.DB
	Location *time.Location

	Inventory service.InventoryService
	Stock     service.StockService
	Auth      service.AuthService
}

func New(cfg *config.Config, db *gorm.DB) *App {
	loc := timestamp.LoadLocation(cfg.Timezone)

	productRepo := repository.NewProductRepo(db)
	stockRepo := repository.NewStockRepo(db)
	userRepo := repository.NewUserRepo(db)

	signer := jwt.NewSigner(cfg.SessionSecret, cfg.SessionTTL)

	return &App{
		Config:    cfg,
		DB:        db,
		Location:  loc,
		Inventory: service.NewInventoryService(productRepo, stockRepo, userRepo, db, loc),
		Stock:     service.NewStockService(stockRepo, loc, cfg.StockExcludeDeletedTx),
		Auth:      service.NewAuthService(userRepo, signer, loc),
	}
}

// Server returns the fiber app with every route registered.
func (a *App) Server() *fiber.App {
	server := router.New(a.Config.AppName)
	router.Register(server, &router.Handlers{
		Product:     handler.NewProductHandler(a.Inventory),
		Transaction: handler.NewTransactionHandler(a.Inventory),
		Stock:       handler.NewStockHandler(a.Stock),
		Auth:        handler.NewAuthHandler(a.Auth, a.Config.CookieSecure),
		AuthService: a.Auth,
	})
	return server
}

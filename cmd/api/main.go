package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"cafe-inventory/internal/app"
	"cafe-inventory/internal/config"
	"cafe-inventory/pkg/database"
)

func main() {
	// 1. Load Env
	cfg := config.Load()

	// 2. Setup Database (schema is created if absent)
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// 3. Wiring
	application := app.New(cfg, db)
	server := application.Server()

	// 4. Graceful Shutdown
	go func() {
		log.Printf("%s listening on :%s (tz %s)", cfg.AppName, cfg.Port, application.Location)
		if err := server.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := server.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Println("Server exited")
}

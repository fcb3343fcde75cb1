// Command reset-password sets a new password for an existing user and
// revokes that user's open sessions.
package main

import (
	"flag"
	"log"

	"cafe-inventory/internal/app"
	"cafe-inventory/internal/config"
	"cafe-inventory/pkg/database"
)

func main() {
	username := flag.String("username", "", "user whose password is reset")
	password := flag.String("password", "", "new password")
	flag.Parse()

	if *username == "" || *password == "" {
		flag.Usage()
		log.Fatal("both -username and -password are required")
	}

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := app.New(cfg, db).Auth.ResetPassword(*username, *password); err != nil {
		log.Fatalf("Failed to reset password for %s: %v", *username, err)
	}

	log.Printf("Password for %s has been reset; existing sessions are revoked", *username)
}

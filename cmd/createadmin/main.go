// Command createadmin seeds an administrator account. Run once against
// a fresh database:
//
//	ADMIN_EMAIL=admin@bake.lk ADMIN_PASSWORD=... go run ./cmd/createadmin
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bakelk/cake_shop/internal/config"
	"github.com/bakelk/cake_shop/internal/db"
	"github.com/bakelk/cake_shop/internal/hash"
	"github.com/bakelk/cake_shop/internal/models"
	"github.com/bakelk/cake_shop/internal/repo"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	email := config.EnvDefault("ADMIN_EMAIL", "")
	password := config.EnvDefault("ADMIN_PASSWORD", "")
	name := config.EnvDefault("ADMIN_NAME", "Administrator")
	config.MustNonEmpty(email, "ADMIN_EMAIL")
	config.MustNonEmpty(password, "ADMIN_PASSWORD")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := database.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("db migration error: %v", err)
	}

	gormRepo := &repo.GormRepo{DB: database}

	if _, err := gormRepo.GetUserByEmail(ctx, email); err == nil {
		log.Fatalf("user %s already exists", email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("lookup error: %v", err)
	}

	passwordHash, err := hash.HashPassword(password)
	if err != nil {
		log.Fatalf("hash error: %v", err)
	}

	admin := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         "admin",
	}
	if err := gormRepo.CreateUser(ctx, admin); err != nil {
		log.Fatalf("create admin error: %v", err)
	}

	log.Printf("admin %s created (id %s)", email, admin.ID)
}

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"autohub/internal/config"
	"autohub/internal/database"
	"autohub/internal/domain"
	"autohub/internal/pkg/password"
	"autohub/internal/repository"
)

// seed creates the initial admin account. Running it against a database that
// already has the user is a no-op.
func main() {
	_ = godotenv.Load()

	username := flag.String("username", envOr("SEED_ADMIN_USERNAME", "admin"), "admin username")
	email := flag.String("email", envOr("SEED_ADMIN_EMAIL", "admin@localhost"), "admin email")
	pass := flag.String("password", os.Getenv("SEED_ADMIN_PASSWORD"), "admin password")
	flag.Parse()

	if *pass == "" {
		log.Fatal("admin password required: set SEED_ADMIN_PASSWORD or pass -password")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Disconnect(context.Background(), db)

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal(err)
	}

	users := repository.NewUserRepository(db)

	if _, err := users.GetByUsername(ctx, *username); err == nil {
		log.Printf("admin %q already exists, nothing to do", *username)
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		log.Fatal(err)
	}

	salt, err := password.NewSalt()
	if err != nil {
		log.Fatal(err)
	}

	admin := &domain.User{
		Username:       *username,
		Email:          *email,
		HashedPassword: password.Hash(*pass, salt),
		Salt:           salt,
		Role:           domain.RoleAdmin,
		IsActive:       true,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal(err)
	}
	log.Printf("created admin %q (%s)", admin.Username, admin.ID.Hex())
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

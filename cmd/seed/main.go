package main

import (
	"context"
	"os"

	"threadapp/internal/auth"
	"threadapp/internal/config"
	"threadapp/internal/database"
	"threadapp/internal/middleware"
	"threadapp/internal/seed"
	"threadapp/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		middleware.Logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if cfg.Env == "production" || cfg.Env == "prod" {
		middleware.Logger.Error("refusing to seed a production database")
		os.Exit(1)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		middleware.Logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	authService := service.NewAuthService(db, auth.NewPasswordHasher())
	if err := seed.Run(context.Background(), db, authService); err != nil {
		middleware.Logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"log"
	"os"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

// Usage: migrate [up|down]
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	arg := string(database.Up)
	if len(os.Args) > 1 {
		arg = os.Args[1]
	}
	dir, err := database.ParseDirection(arg)
	if err != nil {
		l.Fatal("Invalid arguments", zap.Error(err))
	}

	db, err := database.Open(context.Background(), cfg.DB)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db, cfg.DB.Driver, dir); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Migrations applied", zap.String("driver", cfg.DB.Driver), zap.String("direction", string(dir)))
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"trivia-api/internal/adapter"
	"trivia-api/internal/cache"
	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"
	"trivia-api/internal/repository"
	"trivia-api/internal/seed"
	"trivia-api/internal/service"

	"go.uber.org/zap"
)

const defaultSeedFile = "configs/seed_data/trivia.json"

func main() {
	seedFile := flag.String("file", defaultSeedFile, "seed data file (.json or .xlsx)")
	migrateFirst := flag.Bool("migrate", false, "apply migrations before seeding")
	flag.Parse()
	if flag.NArg() > 0 {
		*seedFile = flag.Arg(0)
	}

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if *migrateFirst {
		if err := database.RunMigrations(db, cfg.DB.Driver, database.Up); err != nil {
			log.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	log.Info("Loading seed data from file", zap.String("path", *seedFile))
	ds, err := seed.LoadFile(*seedFile)
	if err != nil {
		log.Fatal("Failed to load seed file", zap.String("path", *seedFile), zap.Error(err))
	}

	categoryRepo := repository.NewCategoryDatabaseAdapter(db)
	questionRepo := repository.NewQuestionDatabaseAdapter(db)

	var invalidator seed.CacheInvalidator
	if cfg.CacheEnabled() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn("Redis unavailable, cached categories will expire on their own", zap.Error(err))
		} else {
			defer redisClient.Close()
			invalidator = service.NewCategoryService(categoryRepo, adapter.NewRedisCacheAdapter(redisClient), cfg.Cache.CategoryTTL)
		}
	}

	seeder := seed.NewSeeder(repository.NewTransactionManagerAdapter(db), categoryRepo, questionRepo, invalidator)
	result, err := seeder.Seed(ctx, ds)
	if err != nil {
		log.Fatal("Seeding failed, transaction rolled back", zap.Error(err))
	}

	log.Info("Initial data seeding process completed.",
		zap.Int("categories_created", result.CategoriesCreated),
		zap.Int("categories_reused", result.CategoriesReused),
		zap.Int("questions_created", result.QuestionsCreated))
}

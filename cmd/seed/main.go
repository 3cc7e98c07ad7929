package main

import (
	"log"

	"github.com/fara3/fara3-backend/config"
	"github.com/fara3/fara3-backend/internal/db"
	"github.com/fara3/fara3-backend/pkg/logger"
)

// Seeds the catalog into the configured database. Safe to run more than
// once: seeding is skipped when collections already exist.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.Initialize(logger.Config{
		Level:       "info",
		Format:      "console",
		EnableColor: true,
	})

	database, err := db.Connect(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	if err := db.Migrate(database); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	if err := db.Seed(database); err != nil {
		logger.Fatal("Failed to seed database", err)
	}

	logger.Info("Seeding finished")
}

// Command seed wipes and repopulates the jobs table with the bundled
// dataset. Intended for local development and fresh deployments.
package main

import (
	"context"
	"log"

	"go-career-backend/config"
	"go-career-backend/internal/repository/postgres"
	"go-career-backend/internal/seed"
	"go-career-backend/pkg/database"
	"go-career-backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		return
	}
	defer dbPool.Close()

	ctx := context.Background()

	if _, err := dbPool.Exec(ctx, "TRUNCATE jobs RESTART IDENTITY"); err != nil {
		logger.Log.Error("Failed to clear jobs table", "error", err)
		return
	}

	jobs, err := seed.Jobs()
	if err != nil {
		logger.Log.Error("Failed to load seed data", "error", err)
		return
	}

	jobRepo := postgres.NewJobRepository(dbPool)
	if err := jobRepo.CreateMany(ctx, jobs); err != nil {
		logger.Log.Error("Failed to insert seed jobs", "error", err)
		return
	}

	logger.Log.Info("Seeded jobs", "count", len(jobs))
}

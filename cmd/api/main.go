package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-career-backend/config"
	v1 "go-career-backend/internal/delivery/http/v1"
	"go-career-backend/internal/matching"
	"go-career-backend/internal/repository/postgres"
	"go-career-backend/internal/usecase"
	"go-career-backend/pkg/auth"
	"go-career-backend/pkg/database"
	"go-career-backend/pkg/logger"
	"go-career-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Career Guidance Backend API
// @version         1.0
// @description     Job matching, recommendations and career roadmaps using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting career backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; middleware falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	jobRepo := postgres.NewJobRepository(dbPool)
	userRepo := postgres.NewUserRepository(dbPool)
	roadmapRepo := postgres.NewRoadmapRepository(dbPool)

	// 6. Setup UseCases
	scorer := matching.NewDefaultScorer()
	jobUC := usecase.NewJobUsecase(jobRepo, userRepo, scorer)
	roadmapUC := usecase.NewRoadmapUsecase(roadmapRepo, jobRepo, userRepo, scorer)
	userUC := usecase.NewUserUsecase(userRepo, validator.New())

	// 7. Setup Auth Provider (Clerk JWKS)
	jwksProvider := auth.NewProvider(cfg.ClerkIssuerURL + "/.well-known/jwks.json")

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		JobUC:        jobUC,
		RoadmapUC:    roadmapUC,
		UserUC:       userUC,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

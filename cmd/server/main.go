package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/casting-agency/internal/config"
	"github.com/iliyamo/casting-agency/internal/database"
	"github.com/iliyamo/casting-agency/internal/handler"
	"github.com/iliyamo/casting-agency/internal/repository"
	"github.com/iliyamo/casting-agency/internal/router"
	queue_publisher "github.com/iliyamo/casting-agency/internal/service"
)

func main() {
	_ = godotenv.Load() // load .env when present; real env wins
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database open failed: %v", err)
	}
	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("database migrate failed: %v", err)
	}

	// Redis is optional; a nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, cache and rate limiting disabled")
	}

	h := handler.New(
		repository.NewActorRepo(db),
		repository.NewMovieRepo(db),
		repository.NewPerformanceRepo(db),
		queue_publisher.New(cfg.AMQPURL),
	)

	e := echo.New()
	router.RegisterRoutes(e, h, cfg.JWTSecret, rdb, config.LoadCacheConfig(), config.LoadRateLimitConfig())

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

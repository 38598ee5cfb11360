package main

import (
	"context"
	"log"
	"log/slog"
	"newscheck/db"
	"newscheck/internal/app"
	"newscheck/internal/config"
	"newscheck/internal/repository"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	err = db.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	err = db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatalf("error migrating DB: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	analysisRepository := repository.NewAnalysisRepository(db.DB)
	cache := repository.NewResultCache(db.Redis, cfg.CacheTTL)

	checker, err := app.NewChecker(ctx, cfg, analysisRepository, cache)
	if err != nil {
		log.Fatalf("error building checker: %v", err)
	}

	w := &worker{
		articles: repository.NewArticleRepository(db.DB),
		checker:  checker,
		queue:    redisQueue{},
		pause:    retryPause,
	}

	if err := w.run(ctx); err != nil {
		slog.Error("error popping from Redis queue", "error", err)
	}

	slog.Info("analyzer stopped")
}

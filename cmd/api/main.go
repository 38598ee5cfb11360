package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"newscheck/db"
	"newscheck/internal/app"
	"newscheck/internal/config"
	"newscheck/internal/handler"
	"newscheck/internal/metrics"
	"newscheck/internal/repository"
	"newscheck/internal/samples"
	"newscheck/internal/service"
	"newscheck/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	var analysisRepo *repository.AnalysisRepository
	var historyStore handler.AnalysisStore
	var articleStore handler.ArticleStore
	var analysisStore service.AnalysisStore
	var cache service.ResultCache
	checks := map[string]handler.Pinger{}

	err = db.Connect(cfg.DatabaseURL)
	switch {
	case errors.Is(err, db.ErrNoDatabaseURL):
		slog.Info("DATABASE_URL not set, analysis history disabled")
	case err != nil:
		log.Fatalf("error connecting to DB: %v", err)
	default:
		defer db.Close()
		if err := db.Migrate(); err != nil {
			log.Fatalf("error migrating DB: %v", err)
		}
		analysisRepo = repository.NewAnalysisRepository(db.DB)
		historyStore = analysisRepo
		analysisStore = analysisRepo
		articleStore = repository.NewArticleRepository(db.DB)
		checks["database"] = db.DB.PingContext
	}

	err = db.ConnectRedis(cfg.RedisURL)
	switch {
	case errors.Is(err, db.ErrNoRedisURL):
		slog.Info("REDIS_URL not set, result cache disabled")
	case err != nil:
		log.Fatalf("error connecting to Redis: %v", err)
	default:
		defer db.CloseRedis()
		cache = repository.NewResultCache(db.Redis, cfg.CacheTTL)
		checks["redis"] = func(ctx context.Context) error { return db.Redis.Ping(ctx).Err() }
	}

	checker, err := app.NewChecker(context.Background(), cfg, analysisStore, cache)
	if err != nil {
		log.Fatalf("error building checker: %v", err)
	}

	catalog, err := samples.Default()
	if err != nil {
		log.Fatalf("error loading samples: %v", err)
	}

	tmpl, err := web.Templates()
	if err != nil {
		log.Fatalf("error loading templates: %v", err)
	}

	sampleHandler := handler.NewSampleHandler(catalog, articleStore)
	pageHandler := handler.NewPageHandler(checker, sampleHandler)
	analyzeHandler := handler.NewAnalyzeHandler(checker)
	historyHandler := handler.NewHistoryHandler(historyStore)
	healthHandler := handler.NewHealthHandler(checks)

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	r.Use(handler.RequestID())

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
	}))

	r.GET("/", pageHandler.GetIndex)
	r.POST("/", pageHandler.PostIndex)
	r.POST("/api/analyze", analyzeHandler.PostAnalyze)
	r.GET("/api/samples", sampleHandler.GetSamples)
	r.GET("/api/analyses", historyHandler.GetAnalyses)
	r.GET("/api/analyses/:id", historyHandler.GetAnalysis)
	r.GET("/health", healthHandler.GetHealth)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	slog.Info("starting server", "port", cfg.Port, "llm_provider", cfg.LLMProvider, "endpoint", cfg.SageMakerEndpoint)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

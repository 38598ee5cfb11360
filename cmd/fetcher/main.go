package main

import (
	"context"
	"log"
	"log/slog"
	"newscheck/db"
	"newscheck/internal/config"
	"newscheck/internal/model"
	"newscheck/internal/repository"
	"newscheck/pkg/news"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	err = db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatalf("error migrating DB: %v", err)
	}

	err = db.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	var clients []news.NewsClient
	if cfg.FinnhubAPIKey != "" {
		clients = append(clients, news.NewFinnHubClient(cfg.FinnhubAPIKey))
	}
	if cfg.AlphaVantageAPIKey != "" {
		clients = append(clients, news.NewAlphaVantageClient(cfg.AlphaVantageAPIKey))
	}
	if cfg.MassiveAPIKey != "" {
		clients = append(clients, news.NewMassiveClient(cfg.MassiveAPIKey))
	}

	if len(clients) == 0 {
		slog.Error("no news source API keys configured")
		return
	}

	repo := repository.NewArticleRepository(db.DB)

	for _, client := range clients {
		source := client.Name()

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		fetchedArticles, err := client.Fetch(ctx, cfg.FetchLimit)
		cancel()
		if err != nil {
			slog.Error("error fetching articles", "source", source, "error", err)
			continue
		}

		var saved, duplicated, errors int

		for _, a := range fetchedArticles {
			article := model.Article{
				Headline:    a.Headline,
				Body:        a.Body,
				URL:         a.URL,
				Source:      a.Source,
				Publisher:   a.Publisher,
				PublishedAt: a.PublishedAt,
				ExternalID:  a.ExternalID,
			}

			success, err := repo.SaveArticle(&article)
			if err != nil {
				slog.Error("error saving article", "source", source, "error", err)
				errors++
				continue
			}

			if !success {
				slog.Info("duplicate article skipped", "source", source, "url", a.URL)
				duplicated++
				continue
			}

			saved++

			err = db.PushToQueue(db.AnalyzeQueueKey, strconv.FormatInt(article.ID, 10))
			if err != nil {
				slog.Error("error pushing to Redis queue", "source", source, "error", err, "article_id", article.ID)
				errors++
			}
		}

		slog.Info("fetch complete", "source", source, "saved", saved, "duplicated", duplicated, "errors", errors)
	}
}

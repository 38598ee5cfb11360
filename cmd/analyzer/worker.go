package main

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"newscheck/db"
	"newscheck/internal/metrics"
	"newscheck/internal/model"
	"newscheck/internal/service"
)

const (
	maxRetries  = 3
	popTimeout  = 5 * time.Second
	retryPause  = 5 * time.Second
	errTypeLLM  = "analysis_error"
	errTypeData = "empty_article"
)

type articleStore interface {
	GetArticleByID(id int64) (*model.Article, error)
	GetErrorCount(id int64) (int, error)
	UpdateStatus(id int64, status string) error
	SaveError(articleID int64, errMsg string, errType string) error
}

type analyzer interface {
	Analyze(ctx context.Context, req service.Request) (*service.Result, error)
}

type queue interface {
	Push(key, data string) error
	Pop(key string, timeout time.Duration) (string, error)
	Len(key string) (int64, error)
}

type redisQueue struct{}

func (redisQueue) Push(key, data string) error { return db.PushToQueue(key, data) }

func (redisQueue) Pop(key string, timeout time.Duration) (string, error) {
	return db.PopFromQueue(key, timeout)
}

func (redisQueue) Len(key string) (int64, error) { return db.GetQueueLength(key) }

type outcome int

const (
	outcomeSkipped outcome = iota
	outcomeCompleted
	outcomeRetry
	outcomeFailed
)

type worker struct {
	articles articleStore
	checker  analyzer
	queue    queue
	pause    time.Duration
}

func (w *worker) run(ctx context.Context) error {
	for ctx.Err() == nil {
		w.reportDepth()

		id, err := w.queue.Pop(db.AnalyzeQueueKey, popTimeout)
		if errors.Is(err, db.ErrQueueEmpty) {
			continue
		}
		if err != nil {
			return err
		}

		if w.process(ctx, id) == outcomeRetry {
			select {
			case <-ctx.Done():
			case <-time.After(w.pause):
			}
		}
	}
	return nil
}

func (w *worker) reportDepth() {
	for _, key := range []string{db.AnalyzeQueueKey, db.DeadLetterKey} {
		n, err := w.queue.Len(key)
		if err != nil {
			slog.Warn("error reading queue length", "queue", key, "error", err)
			continue
		}
		metrics.QueueDepth.WithLabelValues(key).Set(float64(n))
	}
}

func (w *worker) process(ctx context.Context, id string) outcome {
	articleId, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		slog.Error("invalid article id in queue", "id", id, "error", err)
		return outcomeSkipped
	}

	errorCount, err := w.articles.GetErrorCount(articleId)
	if err != nil {
		slog.Error("error getting error count", "error", err, "article_id", articleId)
		return outcomeSkipped
	}

	if errorCount >= maxRetries {
		slog.Warn("article exceeded max retries, marking as failed", "article_id", articleId, "error_count", errorCount)
		w.articles.UpdateStatus(articleId, model.StatusFailed)
		w.queue.Push(db.DeadLetterKey, id)
		return outcomeFailed
	}

	article, err := w.articles.GetArticleByID(articleId)
	if err != nil {
		slog.Error("error getting article from DB", "error", err, "article_id", articleId)
		return outcomeSkipped
	}

	if article == nil {
		slog.Warn("article not found in DB", "article_id", articleId)
		return outcomeSkipped
	}

	w.articles.UpdateStatus(articleId, model.StatusProcessing)

	result, err := w.checker.Analyze(ctx, service.Request{
		Title:     article.Headline,
		Text:      article.Body,
		ArticleID: &article.ID,
	})
	if errors.Is(err, service.ErrEmptyArticle) {
		slog.Warn("article has no body, marking as failed", "article_id", articleId)
		w.articles.SaveError(articleId, err.Error(), errTypeData)
		w.articles.UpdateStatus(articleId, model.StatusFailed)
		return outcomeFailed
	}
	if err != nil {
		slog.Error("error analyzing article", "error", err, "article_id", articleId)
		return w.requeue(articleId, err.Error())
	}

	if result.Retryable() {
		reason := retryReason(result)
		slog.Warn("analysis incomplete, requeueing", "article_id", articleId, "reason", reason)
		return w.requeue(articleId, reason)
	}

	err = w.articles.UpdateStatus(articleId, model.StatusCompleted)
	if err != nil {
		slog.Error("error updating article status", "error", err, "article_id", articleId)
		return outcomeSkipped
	}

	slog.Info("article analyzed successfully",
		"article_id", article.ID,
		"analysis_id", result.AnalysisID,
		"label", result.Prediction.Label,
		"prob", result.Prediction.Probability,
		"verdict", result.Verdict.Status,
	)
	return outcomeCompleted
}

func (w *worker) requeue(articleId int64, reason string) outcome {
	w.articles.SaveError(articleId, reason, errTypeLLM)
	w.articles.UpdateStatus(articleId, model.StatusPending)

	if err := w.queue.Push(db.AnalyzeQueueKey, strconv.FormatInt(articleId, 10)); err != nil {
		slog.Error("error pushing to Redis queue", "error", err, "article_id", articleId)
	}
	return outcomeRetry
}

func retryReason(res *service.Result) string {
	if res.Prediction.Fallback {
		return "classifier unavailable"
	}
	if res.Verdict.ResponseError != 0 {
		return "LLM API response issue: response: " + strconv.Itoa(res.Verdict.ResponseError)
	}
	return "LLM explanation unavailable: " + res.Verdict.Explanation
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"newscheck/internal/metrics"
	"newscheck/internal/model"
	"newscheck/pkg/classifier"
	"newscheck/pkg/llm"
)

type Request struct {
	Title     string
	Text      string
	ArticleID *int64
}

type Result struct {
	Text       string
	Prediction classifier.Prediction
	Verdict    llm.Verdict
	Warnings   []string
	Cached     bool
	AnalysisID int64
}

// Retryable reports whether either upstream failed and the result only
// carries a placeholder.
func (r *Result) Retryable() bool {
	if r.Prediction.Fallback {
		return true
	}
	return r.Verdict.Status == llm.StatusError || r.Verdict.Status == llm.StatusResponseError
}

type AnalysisStore interface {
	SaveAnalysis(ctx context.Context, analysis *model.Analysis) error
}

// ResultCache returns nil, nil on a miss.
type ResultCache interface {
	Get(ctx context.Context, key string) (*model.Analysis, error)
	Set(ctx context.Context, key string, analysis *model.Analysis) error
}

type Checker struct {
	classifier classifier.Classifier
	explainer  llm.Explainer
	store      AnalysisStore
	cache      ResultCache
	cacheScope string
}

// NewChecker wires the pipeline. store and cache may be nil.
func NewChecker(c classifier.Classifier, e llm.Explainer, store AnalysisStore, cache ResultCache) *Checker {
	return &Checker{
		classifier: c,
		explainer:  e,
		store:      store,
		cache:      cache,
	}
}

// WithCacheScope separates cached results of different explainers, so a
// provider or model change does not replay the previous model's verdicts.
func (c *Checker) WithCacheScope(scope string) *Checker {
	c.cacheScope = scope
	return c
}

func (c *Checker) Analyze(ctx context.Context, req Request) (*Result, error) {
	text, err := Normalize(req.Title, req.Text)
	if err != nil {
		return nil, err
	}

	hash := TextHash(text)
	key := CacheKey(c.cacheScope, text)

	if cached := c.lookup(ctx, key); cached != nil {
		res := resultFromAnalysis(cached)
		res.Cached = true

		// Queued articles need their own row even when the text was seen before.
		if req.ArticleID != nil && c.store != nil {
			linked := *cached
			linked.ArticleID = req.ArticleID
			linked.Title = req.Title
			if err := c.store.SaveAnalysis(ctx, &linked); err != nil {
				slog.Error("error saving cached analysis", "error", err, "article_id", *req.ArticleID)
			} else {
				res.AnalysisID = linked.ID
			}
		}
		return res, nil
	}

	res := &Result{Text: text}

	start := time.Now()
	prediction, err := c.classifier.Predict(ctx, text)
	metrics.UpstreamDuration.WithLabelValues("classifier").Observe(time.Since(start).Seconds())
	if err != nil {
		slog.Error("prediction failed, using example prediction", "classifier", c.classifier.Name(), "error", err)
		metrics.PredictionFallbacks.Inc()

		prediction = classifier.FallbackPrediction()
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("Something went wrong: %v", err),
			fmt.Sprintf("proceeding with example prediction: label %s, probability %v", prediction.Label, prediction.Probability),
		)
	}
	res.Prediction = *prediction

	start = time.Now()
	verdict, err := c.explainer.Explain(ctx, llm.ExplainInput{Text: text, Prediction: *prediction})
	metrics.UpstreamDuration.WithLabelValues("llm").Observe(time.Since(start).Seconds())
	if err != nil {
		slog.Error("explanation failed", "error", err)
		res.Warnings = append(res.Warnings, fmt.Sprintf("Something went wrong: %v", err))
		verdict = &llm.Verdict{
			AgreeOrNot:  "Unavailable",
			Explanation: "No explanation returned.",
			Status:      llm.StatusError,
		}
	}
	if verdict.Status == llm.StatusResponseError {
		slog.Warn("LLM API response issue", "status_code", verdict.ResponseError, "model", verdict.ModelUsed)
	}
	res.Verdict = *verdict

	metrics.Analyses.WithLabelValues(string(prediction.Label)).Inc()
	metrics.Verdicts.WithLabelValues(string(verdict.Status)).Inc()

	analysis := toAnalysis(req, res, hash)

	// Queued articles are retried instead; a placeholder row would outlive
	// the retry.
	if c.store != nil && !(req.ArticleID != nil && res.Retryable()) {
		if err := c.store.SaveAnalysis(ctx, analysis); err != nil {
			slog.Error("error saving analysis", "error", err)
		} else {
			res.AnalysisID = analysis.ID
		}
	}

	// Only complete answers are replayed from cache.
	if c.cache != nil && !prediction.Fallback && verdict.Status == llm.StatusOK {
		if err := c.cache.Set(ctx, key, analysis); err != nil {
			slog.Warn("error caching analysis", "error", err)
		}
	}

	return res, nil
}

func (c *Checker) lookup(ctx context.Context, key string) *model.Analysis {
	if c.cache == nil {
		return nil
	}

	cached, err := c.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("cache lookup failed", "error", err)
		metrics.CacheLookups.WithLabelValues("error").Inc()
		return nil
	}
	if cached == nil {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return nil
	}

	metrics.CacheLookups.WithLabelValues("hit").Inc()
	return cached
}

func toAnalysis(req Request, res *Result, hash string) *model.Analysis {
	return &model.Analysis{
		ArticleID:          req.ArticleID,
		Title:              req.Title,
		Text:               res.Text,
		TextHash:           hash,
		Label:              string(res.Prediction.Label),
		Probability:        res.Prediction.Probability,
		PredictionFallback: res.Prediction.Fallback,
		AgreeOrNot:         res.Verdict.AgreeOrNot,
		Explanation:        res.Verdict.Explanation,
		VerdictStatus:      string(res.Verdict.Status),
		ResponseError:      res.Verdict.ResponseError,
		ModelUsed:          res.Verdict.ModelUsed,
		Warnings:           res.Warnings,
		CreatedAt:          time.Now(),
	}
}

func resultFromAnalysis(a *model.Analysis) *Result {
	return &Result{
		Text: a.Text,
		Prediction: classifier.Prediction{
			Label:       classifier.Label(a.Label),
			Probability: a.Probability,
			Fallback:    a.PredictionFallback,
		},
		Verdict: llm.Verdict{
			AgreeOrNot:    a.AgreeOrNot,
			Explanation:   a.Explanation,
			Status:        llm.VerdictStatus(a.VerdictStatus),
			ResponseError: a.ResponseError,
			ModelUsed:     a.ModelUsed,
		},
		Warnings:   a.Warnings,
		AnalysisID: a.ID,
	}
}

package handler

import (
	"context"
	"errors"
	"testing"
	"time"

	"newscheck/internal/model"
	"newscheck/internal/samples"
	"newscheck/internal/service"
	"newscheck/pkg/classifier"
	"newscheck/pkg/llm"
	"newscheck/web"

	"github.com/gin-gonic/gin"
)

type fakeAnalyzer struct {
	result *service.Result
	err    error
	req    service.Request
	calls  int
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, req service.Request) (*service.Result, error) {
	f.calls++
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	// Mirror the real checker's input validation.
	if _, err := service.Normalize(req.Title, req.Text); err != nil {
		return nil, err
	}
	return f.result, nil
}

type fakeAnalysisStore struct {
	analyses []model.Analysis
	total    int
	analysis *model.Analysis
	err      error
}

func (f *fakeAnalysisStore) GetAnalyses(ctx context.Context, limit, offset int) ([]model.Analysis, error) {
	return f.analyses, f.err
}

func (f *fakeAnalysisStore) GetAnalysisTotal(ctx context.Context) (int, error) {
	return f.total, f.err
}

func (f *fakeAnalysisStore) GetAnalysisByID(ctx context.Context, id int64) (*model.Analysis, error) {
	return f.analysis, f.err
}

type fakeArticleStore struct {
	articles []model.Article
	article  *model.Article
	err      error
}

func (f *fakeArticleStore) GetRecentArticles(limit int) ([]model.Article, error) {
	return f.articles, f.err
}

func (f *fakeArticleStore) GetArticleByID(id int64) (*model.Article, error) {
	return f.article, f.err
}

func fakeResult() *service.Result {
	return &service.Result{
		Text:       "Government to Ban Rain on Weekends A leaked memo.",
		Prediction: classifier.Prediction{Label: classifier.LabelFake, Probability: 0.964},
		Verdict: llm.Verdict{
			AgreeOrNot:  "I agree with the prediction.",
			Explanation: "Weather cannot be banned.",
			Status:      llm.StatusOK,
			ModelUsed:   "deepseek/deepseek-r1:free",
		},
		AnalysisID: 7,
	}
}

type routerDeps struct {
	analyzer *fakeAnalyzer
	history  AnalysisStore
	articles ArticleStore
}

func newTestRouter(t *testing.T, deps routerDeps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := samples.Default()
	if err != nil {
		t.Fatalf("loading samples: %v", err)
	}
	tmpl, err := web.Templates()
	if err != nil {
		t.Fatalf("loading templates: %v", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(RequestID())

	sampleHandler := NewSampleHandler(catalog, deps.articles)
	pageHandler := NewPageHandler(deps.analyzer, sampleHandler)
	analyzeHandler := NewAnalyzeHandler(deps.analyzer)
	historyHandler := NewHistoryHandler(deps.history)
	healthHandler := NewHealthHandler(map[string]Pinger{
		"database": func(ctx context.Context) error { return nil },
	})

	r.GET("/", pageHandler.GetIndex)
	r.POST("/", pageHandler.PostIndex)
	r.POST("/api/analyze", analyzeHandler.PostAnalyze)
	r.GET("/api/samples", sampleHandler.GetSamples)
	r.GET("/api/analyses", historyHandler.GetAnalyses)
	r.GET("/api/analyses/:id", historyHandler.GetAnalysis)
	r.GET("/health", healthHandler.GetHealth)
	return r
}

func storedAnalysis(id int64) model.Analysis {
	return model.Analysis{
		ID:            id,
		Title:         "Miracle Cure Found for Baldness",
		Text:          "Miracle Cure Found for Baldness Scientists claim...",
		Label:         "fake",
		Probability:   0.9,
		AgreeOrNot:    "Agree",
		Explanation:   "No trials.",
		VerdictStatus: "ok",
		CreatedAt:     time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

var errDBDown = errors.New("DB down")

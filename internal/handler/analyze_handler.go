package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"newscheck/internal/service"

	"github.com/gin-gonic/gin"
)

type Analyzer interface {
	Analyze(ctx context.Context, req service.Request) (*service.Result, error)
}

type AnalyzeHandler struct {
	checker Analyzer
}

func NewAnalyzeHandler(checker Analyzer) *AnalyzeHandler {
	return &AnalyzeHandler{checker: checker}
}

func (h *AnalyzeHandler) PostAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	res, err := h.checker.Analyze(c.Request.Context(), service.Request{
		Title:     req.Title,
		Text:      req.Text,
		ArticleID: req.ArticleID,
	})
	if errors.Is(err, service.ErrEmptyArticle) {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.EmptyArticleMessage})
		return
	}
	if err != nil {
		slog.Error("error analyzing article", "error", err, "request_id", requestID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis failed"})
		return
	}

	slog.Info("article analyzed",
		"request_id", requestID(c),
		"label", res.Prediction.Label,
		"prob", res.Prediction.Probability,
		"verdict", res.Verdict.Status,
		"cached", res.Cached,
	)

	c.JSON(http.StatusOK, toAnalysisResponse(req.Title, req.ArticleID, res))
}

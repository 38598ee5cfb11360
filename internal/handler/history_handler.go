package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"newscheck/internal/model"

	"github.com/gin-gonic/gin"
)

type AnalysisStore interface {
	GetAnalyses(ctx context.Context, limit, offset int) ([]model.Analysis, error)
	GetAnalysisTotal(ctx context.Context) (int, error)
	GetAnalysisByID(ctx context.Context, id int64) (*model.Analysis, error)
}

type HistoryHandler struct {
	repository AnalysisStore
}

// NewHistoryHandler accepts a nil store; the endpoints then answer 503.
func NewHistoryHandler(repository AnalysisStore) *HistoryHandler {
	return &HistoryHandler{repository: repository}
}

func (h *HistoryHandler) available(c *gin.Context) bool {
	if h.repository == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "History is not configured"})
		return false
	}
	return true
}

func (h *HistoryHandler) GetAnalyses(c *gin.Context) {
	if !h.available(c) {
		return
	}

	limit := getQueryLimit(c)
	offset := getQueryOffset(c)
	ctx := c.Request.Context()

	analyses, err := h.repository.GetAnalyses(ctx, limit, offset)
	if err != nil {
		slog.Error("error fetching analyses", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetAnalysisTotal(ctx)
	if err != nil {
		slog.Error("error fetching analysis total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := AnalysesResponse{
		Analyses: make([]AnalysisResponse, 0, len(analyses)),
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}
	for _, a := range analyses {
		res.Analyses = append(res.Analyses, analysisToResponse(a))
	}

	c.JSON(http.StatusOK, res)
}

func (h *HistoryHandler) GetAnalysis(c *gin.Context) {
	if !h.available(c) {
		return
	}

	id := c.Param("id")

	analysisID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		slog.Error("invalid analysis id", "id", id, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid analysis id"})
		return
	}

	analysis, err := h.repository.GetAnalysisByID(c.Request.Context(), analysisID)
	if err != nil {
		slog.Error("error fetching analysis", "error", err, "analysis_id", analysisID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if analysis == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}

	c.JSON(http.StatusOK, analysisToResponse(*analysis))
}

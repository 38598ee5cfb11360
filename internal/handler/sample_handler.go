package handler

import (
	"log/slog"
	"net/http"

	"newscheck/internal/model"
	"newscheck/internal/samples"

	"github.com/gin-gonic/gin"
)

const recentArticleLimit = 10

// ArticleStore is optional; without it only the built-in samples are offered.
type ArticleStore interface {
	GetRecentArticles(limit int) ([]model.Article, error)
	GetArticleByID(id int64) (*model.Article, error)
}

type SampleHandler struct {
	catalog  *samples.Catalog
	articles ArticleStore
}

func NewSampleHandler(catalog *samples.Catalog, articles ArticleStore) *SampleHandler {
	return &SampleHandler{catalog: catalog, articles: articles}
}

func (h *SampleHandler) GetSamples(c *gin.Context) {
	res := SamplesResponse{
		Samples:  []SampleResponse{},
		Articles: []ArticleResponse{},
	}

	for _, s := range h.catalog.List() {
		res.Samples = append(res.Samples, SampleResponse{Title: s.Title, Body: s.Body})
	}

	for _, a := range h.recentArticles() {
		res.Articles = append(res.Articles, toArticleResponse(a))
	}

	c.JSON(http.StatusOK, res)
}

// recentArticles never fails the request; the live feed is a convenience.
func (h *SampleHandler) recentArticles() []model.Article {
	if h.articles == nil {
		return nil
	}

	articles, err := h.articles.GetRecentArticles(recentArticleLimit)
	if err != nil {
		slog.Error("error fetching recent articles", "error", err)
		return nil
	}
	return articles
}

package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"newscheck/internal/model"
	"newscheck/internal/samples"
	"newscheck/internal/service"

	"github.com/gin-gonic/gin"
)

const pageTemplate = "index.html"

type PageHandler struct {
	checker Analyzer
	samples *SampleHandler
}

func NewPageHandler(checker Analyzer, sampleHandler *SampleHandler) *PageHandler {
	return &PageHandler{checker: checker, samples: sampleHandler}
}

type pageData struct {
	Placeholder string
	Samples     []samples.Sample
	Articles    []model.Article
	Title       string
	Text        string
	ArticleID   int64
	Warning     string
	Result      *AnalysisResponse
}

func (h *PageHandler) baseData() pageData {
	return pageData{
		Placeholder: samples.Placeholder,
		Samples:     h.samples.catalog.List(),
		Articles:    h.samples.recentArticles(),
	}
}

func (h *PageHandler) GetIndex(c *gin.Context) {
	data := h.baseData()

	if title := c.Query("sample"); title != "" {
		if s, ok := h.samples.catalog.Get(title); ok {
			data.Title = s.Title
			data.Text = s.Body
		}
	} else if raw := c.Query("article"); raw != "" && h.samples.articles != nil {
		id, err := parseOptionalID(raw)
		if err != nil {
			data.Warning = "Invalid article id"
			c.HTML(http.StatusBadRequest, pageTemplate, data)
			return
		}

		article, err := h.samples.articles.GetArticleByID(*id)
		if err != nil {
			slog.Error("error fetching article", "error", err, "article_id", *id)
		}
		if article != nil {
			data.Title = article.Headline
			data.Text = article.Body
			data.ArticleID = article.ID
		}
	}

	c.HTML(http.StatusOK, pageTemplate, data)
}

func (h *PageHandler) PostIndex(c *gin.Context) {
	data := h.baseData()
	data.Title = c.PostForm("title")
	data.Text = c.PostForm("text")

	articleID, err := parseOptionalID(c.PostForm("article_id"))
	if err != nil {
		data.Warning = "Invalid article id"
		c.HTML(http.StatusBadRequest, pageTemplate, data)
		return
	}
	if articleID != nil {
		data.ArticleID = *articleID
	}

	res, err := h.checker.Analyze(c.Request.Context(), service.Request{
		Title:     data.Title,
		Text:      data.Text,
		ArticleID: articleID,
	})
	if errors.Is(err, service.ErrEmptyArticle) {
		data.Warning = service.EmptyArticleMessage
		c.HTML(http.StatusOK, pageTemplate, data)
		return
	}
	if err != nil {
		slog.Error("error analyzing article", "error", err, "request_id", requestID(c))
		data.Warning = fmt.Sprintf("Something went wrong: %v", err)
		c.HTML(http.StatusInternalServerError, pageTemplate, data)
		return
	}

	result := toAnalysisResponse(data.Title, articleID, res)
	data.Result = &result

	c.HTML(http.StatusOK, pageTemplate, data)
}

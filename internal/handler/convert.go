package handler

import (
	"time"

	"newscheck/internal/model"
	"newscheck/internal/service"
)

func toAnalysisResponse(title string, articleID *int64, res *service.Result) AnalysisResponse {
	warnings := res.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return AnalysisResponse{
		ID:        res.AnalysisID,
		ArticleID: articleID,
		Title:     title,
		Text:      res.Text,
		Prediction: PredictionResponse{
			Label:       string(res.Prediction.Label),
			Probability: res.Prediction.Probability,
			Fallback:    res.Prediction.Fallback,
		},
		Explainability: ExplainabilityResponse{
			AgreeOrNot:    res.Verdict.AgreeOrNot,
			Explanation:   res.Verdict.Explanation,
			Status:        string(res.Verdict.Status),
			ResponseError: res.Verdict.ResponseError,
			ModelUsed:     res.Verdict.ModelUsed,
		},
		Warnings: warnings,
		Cached:   res.Cached,
	}
}

func analysisToResponse(a model.Analysis) AnalysisResponse {
	warnings := a.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return AnalysisResponse{
		ID:        a.ID,
		ArticleID: a.ArticleID,
		Title:     a.Title,
		Text:      a.Text,
		Prediction: PredictionResponse{
			Label:       a.Label,
			Probability: a.Probability,
			Fallback:    a.PredictionFallback,
		},
		Explainability: ExplainabilityResponse{
			AgreeOrNot:    a.AgreeOrNot,
			Explanation:   a.Explanation,
			Status:        a.VerdictStatus,
			ResponseError: a.ResponseError,
			ModelUsed:     a.ModelUsed,
		},
		Warnings:  warnings,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func toArticleResponse(a model.Article) ArticleResponse {
	res := ArticleResponse{
		ID:        a.ID,
		Headline:  a.Headline,
		Body:      a.Body,
		URL:       a.URL,
		Source:    a.Source,
		Publisher: a.Publisher,
		Status:    a.Status,
	}
	if !a.PublishedAt.IsZero() {
		res.PublishedAt = a.PublishedAt.Format(time.RFC3339)
	}
	return res
}

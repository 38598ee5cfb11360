package handler

type AnalyzeRequest struct {
	Title     string `json:"title"`
	Text      string `json:"text"`
	ArticleID *int64 `json:"article_id,omitempty"`
}

type PredictionResponse struct {
	Label       string  `json:"label"`
	Probability float64 `json:"prob"`
	Fallback    bool    `json:"fallback"`
}

type ExplainabilityResponse struct {
	AgreeOrNot    string `json:"agreeOrNot"`
	Explanation   string `json:"explanation"`
	Status        string `json:"status"`
	ResponseError int    `json:"response_error,omitempty"`
	ModelUsed     string `json:"model_used,omitempty"`
}

type AnalysisResponse struct {
	ID             int64                  `json:"id,omitempty"`
	ArticleID      *int64                 `json:"article_id,omitempty"`
	Title          string                 `json:"title,omitempty"`
	Text           string                 `json:"text"`
	Prediction     PredictionResponse     `json:"prediction"`
	Explainability ExplainabilityResponse `json:"explainability"`
	Warnings       []string               `json:"warnings"`
	Cached         bool                   `json:"cached"`
	CreatedAt      string                 `json:"created_at,omitempty"`
}

type AnalysesResponse struct {
	Analyses []AnalysisResponse `json:"analyses"`
	Total    int                `json:"total"`
	Limit    int                `json:"limit"`
	Offset   int                `json:"offset"`
}

type SampleResponse struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type ArticleResponse struct {
	ID          int64  `json:"id"`
	Headline    string `json:"headline"`
	Body        string `json:"body"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Publisher   string `json:"publisher"`
	PublishedAt string `json:"published_at,omitempty"`
	Status      string `json:"status"`
}

type SamplesResponse struct {
	Samples  []SampleResponse  `json:"samples"`
	Articles []ArticleResponse `json:"articles"`
}

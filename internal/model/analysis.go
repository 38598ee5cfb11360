package model

import "time"

// Analysis is one completed check: the classifier prediction and the LLM's
// judgment of it.
type Analysis struct {
	ID                 int64
	ArticleID          *int64
	Title              string
	Text               string
	TextHash           string
	Label              string
	Probability        float64
	PredictionFallback bool
	AgreeOrNot         string
	Explanation        string
	VerdictStatus      string
	ResponseError      int
	ModelUsed          string
	Warnings           []string
	CreatedAt          time.Time
}

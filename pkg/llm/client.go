package llm

import (
	"context"

	"newscheck/pkg/classifier"
)

type VerdictStatus string

const (
	StatusOK            VerdictStatus = "ok"
	StatusUnavailable   VerdictStatus = "unavailable"
	StatusError         VerdictStatus = "error"
	StatusResponseError VerdictStatus = "response_error"
)

// Verdict is the LLM's independent judgment of a prediction. Malformed model
// output still produces a Verdict; only transport failures are errors.
type Verdict struct {
	AgreeOrNot    string
	Explanation   string
	Status        VerdictStatus
	ResponseError int
	ModelUsed     string
}

type ExplainInput struct {
	Text       string
	Prediction classifier.Prediction
}

type Explainer interface {
	Explain(ctx context.Context, input ExplainInput) (*Verdict, error)
}

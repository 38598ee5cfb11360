package classifier

import (
	"context"
	"errors"
	"math"
)

type Label string

const (
	LabelReal Label = "real"
	LabelFake Label = "fake"
)

// fakeThreshold applies to bare probability responses, which score the fake class.
const fakeThreshold = 0.5

var (
	ErrUnexpectedResponse    = errors.New("unexpected classifier response")
	ErrEndpointNotConfigured = errors.New("classifier endpoint not configured")
	ErrCircuitOpen           = errors.New("classifier circuit open")
)

type Prediction struct {
	Label       Label   `json:"label"`
	Probability float64 `json:"prob"`
	Fallback    bool    `json:"-"`
}

type Classifier interface {
	Predict(ctx context.Context, text string) (*Prediction, error)
	Name() string
}

// FallbackPrediction is shown when the endpoint cannot be reached, so the
// explanation step still has something to judge.
func FallbackPrediction() *Prediction {
	return &Prediction{
		Label:       LabelReal,
		Probability: 0.51,
		Fallback:    true,
	}
}

func roundProbability(p float64) float64 {
	return math.Round(p*1000) / 1000
}

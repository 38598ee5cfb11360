package classifier

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParsePrediction decodes the endpoint body. Hugging Face style endpoints
// return [{"label": ..., "score": ...}] (sometimes wrapped in another list for
// batches); plain models return [probability].
func ParsePrediction(body []byte) (*Prediction, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	return predictionFrom(raw)
}

func predictionFrom(raw any) (*Prediction, error) {
	switch v := raw.(type) {
	case []any:
		if len(v) == 0 {
			return nil, fmt.Errorf("%w: empty result", ErrUnexpectedResponse)
		}
		switch first := v[0].(type) {
		case map[string]any, []any:
			return predictionFrom(first)
		case float64:
			return fromProbability(first), nil
		}
		return nil, fmt.Errorf("%w: result element is %T", ErrUnexpectedResponse, v[0])

	case map[string]any:
		label, ok := v["label"].(string)
		if !ok || strings.TrimSpace(label) == "" {
			return nil, fmt.Errorf("%w: missing label", ErrUnexpectedResponse)
		}
		score, _ := v["score"].(float64)
		return &Prediction{
			Label:       Label(strings.ToLower(strings.TrimSpace(label))),
			Probability: roundProbability(score),
		}, nil
	}

	return nil, fmt.Errorf("%w: result is %T", ErrUnexpectedResponse, raw)
}

func fromProbability(p float64) *Prediction {
	label := LabelReal
	if p > fakeThreshold {
		label = LabelFake
	}
	return &Prediction{Label: label, Probability: roundProbability(p)}
}

package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/openai/openai-go/option"

	"newscheck/pkg/classifier"
)

func chatCompletion(content string) map[string]interface{} {
	return map[string]interface{}{
		"id":      "gen-1",
		"object":  "chat.completion",
		"created": 1760000000,
		"model":   "deepseek/deepseek-r1:free",
		"choices": []map[string]interface{}{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	}
}

func TestOpenRouterExplain(t *testing.T) {
	var gotHeaders http.Header
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion(
			"<think>hamster wheel, coast guard</think>{\"agreeOrNot\": \"I disagree.\", \"explanation\": \"This was widely reported.\"}",
		))
	}))
	defer srv.Close()

	client := NewOpenRouterClient(OpenRouterConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL + "/",
		Referer: "https://newscheck.example",
	}, option.WithMaxRetries(0))

	v, err := client.Explain(context.Background(), ExplainInput{
		Text:       "Florida Man Arrested",
		Prediction: classifier.Prediction{Label: classifier.LabelFake, Probability: 0.8},
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, StatusOK, v.Status)
	assert.Equal(t, "I disagree.", v.AgreeOrNot)
	assert.Equal(t, "This was widely reported.", v.Explanation)
	assert.Equal(t, DefaultOpenRouterModel, v.ModelUsed)

	assert.Equal(t, "Bearer test-key", gotHeaders.Get("Authorization"))
	assert.Equal(t, DefaultAppTitle, gotHeaders.Get("X-Title"))
	assert.Equal(t, "https://newscheck.example", gotHeaders.Get("HTTP-Referer"))
	assert.Equal(t, DefaultOpenRouterModel, gotBody["model"])
	assert.Equal(t, 0.7, gotBody["temperature"])
	assert.Equal(t, 2, len(gotBody["messages"].([]interface{})))
}

func TestOpenRouterExplain_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limited", "code": 429}}`))
	}))
	defer srv.Close()

	client := NewOpenRouterClient(OpenRouterConfig{APIKey: "k", BaseURL: srv.URL + "/"}, option.WithMaxRetries(0))

	v, err := client.Explain(context.Background(), ExplainInput{Text: "text"})

	assert.Equal(t, nil, err)
	assert.Equal(t, StatusResponseError, v.Status)
	assert.Equal(t, http.StatusTooManyRequests, v.ResponseError)
}

func TestOpenRouterExplain_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "gen-2", "object": "chat.completion", "choices": []}`))
	}))
	defer srv.Close()

	client := NewOpenRouterClient(OpenRouterConfig{APIKey: "k", BaseURL: srv.URL + "/"}, option.WithMaxRetries(0))

	v, err := client.Explain(context.Background(), ExplainInput{Text: "text"})

	assert.NotEqual(t, nil, err)
	assert.Equal(t, true, v == nil)
}

func TestOpenRouterExplain_Unparseable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion("<think>hmm</think>It is probably fake."))
	}))
	defer srv.Close()

	client := NewOpenRouterClient(OpenRouterConfig{APIKey: "k", BaseURL: srv.URL + "/"}, option.WithMaxRetries(0))

	v, err := client.Explain(context.Background(), ExplainInput{Text: "text"})

	assert.Equal(t, nil, err)
	assert.Equal(t, StatusError, v.Status)
	assert.Equal(t, true, strings.HasPrefix(v.Explanation, "Failed to parse openrouter response: "))
}

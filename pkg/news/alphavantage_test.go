package news

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func newTestAlphaVantage(srv *httptest.Server) *AlphaVantageClient {
	return &AlphaVantageClient{
		apiKey:     "test-key",
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}
}

func TestParseTimePublished(t *testing.T) {
	input := "20260226T075324"
	got, err := time.Parse("20060102T150405", input)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.February, got.Month())
	assert.Equal(t, 26, got.Day())
	assert.Equal(t, 7, got.Hour())
}

func TestAlphaVantageFetch(t *testing.T) {
	payload := map[string]interface{}{
		"feed": []map[string]interface{}{
			{
				"title":          "Fed Holds Rates Steady",
				"summary":        "The Federal Reserve kept interest rates unchanged.",
				"url":            "https://example.com/fed-rates",
				"source":         "Reuters",
				"time_published": "20260226T120000",
			},
		},
	}

	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	articles, err := newTestAlphaVantage(srv).Fetch(context.Background(), 5)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, []string{"NEWS_SENTIMENT"}, gotQuery["function"])
	assert.Equal(t, []string{"5"}, gotQuery["limit"])
	assert.Equal(t, []string{"test-key"}, gotQuery["apikey"])

	a := articles[0]
	assert.Equal(t, "Fed Holds Rates Steady", a.Headline)
	assert.Equal(t, "The Federal Reserve kept interest rates unchanged.", a.Body)
	assert.Equal(t, "https://example.com/fed-rates", a.URL)
	assert.Equal(t, "Reuters", a.Publisher)
	assert.Equal(t, "AlphaVantage", a.Source)
	assert.Equal(t, generateExternalID("https://example.com/fed-rates"), a.ExternalID)
	assert.NotEqual(t, time.Time{}, a.PublishedAt)
}

func TestAlphaVantageFetch_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Information": "API rate limit reached"}`))
	}))
	defer srv.Close()

	articles, err := newTestAlphaVantage(srv).Fetch(context.Background(), 5)

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, len(articles))
}

func TestAlphaVantageFetch_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestAlphaVantage(srv).Fetch(context.Background(), 5)

	assert.NotEqual(t, nil, err)
}

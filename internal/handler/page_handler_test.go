package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"newscheck/internal/model"
	"newscheck/pkg/llm"

	"github.com/go-playground/assert/v2"
)

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest("POST", "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestGetIndex_Empty(t *testing.T) {
	r := newTestRouter(t, routerDeps{analyzer: &fakeAnalyzer{}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, true, strings.Contains(body, "Fake News Detector"))
	assert.Equal(t, true, strings.Contains(body, "-- Select an example --"))
	assert.Equal(t, true, strings.Contains(body, "Government to Ban Rain on Weekends"))
	assert.Equal(t, false, strings.Contains(body, "Latest headlines"))
}

func TestGetIndex_SelectSample(t *testing.T) {
	r := newTestRouter(t, routerDeps{analyzer: &fakeAnalyzer{}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/?sample="+url.QueryEscape("Miracle Cure Found for Baldness"), nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, strings.Contains(w.Body.String(), "two glasses of pineapple juice"))
}

func TestGetIndex_SelectArticle(t *testing.T) {
	articles := &fakeArticleStore{
		articles: []model.Article{{ID: 3, Headline: "Fed Holds Rates Steady", Publisher: "Reuters"}},
		article:  &model.Article{ID: 3, Headline: "Fed Holds Rates Steady", Body: "The Federal Reserve kept rates unchanged."},
	}
	r := newTestRouter(t, routerDeps{analyzer: &fakeAnalyzer{}, articles: articles})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/?article=3", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, true, strings.Contains(body, "Latest headlines"))
	assert.Equal(t, true, strings.Contains(body, "The Federal Reserve kept rates unchanged."))
	assert.Equal(t, true, strings.Contains(body, `name="article_id" value="3"`))
}

func TestPostIndex_ShowsResult(t *testing.T) {
	analyzer := &fakeAnalyzer{result: fakeResult()}
	r := newTestRouter(t, routerDeps{analyzer: analyzer})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm(url.Values{
		"title":      {"Government to Ban Rain on Weekends"},
		"text":       {"A leaked memo."},
		"article_id": {"12"},
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(12), *analyzer.req.ArticleID)

	body := w.Body.String()
	assert.Equal(t, true, strings.Contains(body, "<strong>Label:</strong> fake"))
	assert.Equal(t, true, strings.Contains(body, "<strong>Probability:</strong> 0.964"))
	assert.Equal(t, true, strings.Contains(body, "I agree with the prediction."))
}

func TestPostIndex_EmptyArticleWarns(t *testing.T) {
	analyzer := &fakeAnalyzer{result: fakeResult()}
	r := newTestRouter(t, routerDeps{analyzer: analyzer})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm(url.Values{"title": {""}, "text": {"  "}}))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, true, strings.Contains(body, "Please select a sample headline or paste an article to analyze."))
	assert.Equal(t, false, strings.Contains(body, "<h2>Prediction</h2>"))
}

func TestPostIndex_ResponseErrorAndWarnings(t *testing.T) {
	res := fakeResult()
	res.Prediction.Fallback = true
	res.Warnings = []string{"Something went wrong: endpoint down"}
	res.Verdict = llm.Verdict{Status: llm.StatusResponseError, ResponseError: 429}
	r := newTestRouter(t, routerDeps{analyzer: &fakeAnalyzer{result: res}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm(url.Values{"text": {"Body"}}))

	body := w.Body.String()
	assert.Equal(t, true, strings.Contains(body, "Something went wrong: endpoint down"))
	assert.Equal(t, true, strings.Contains(body, "LLM API response issue: response: 429"))
}

func TestPostIndex_InvalidArticleID(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	r := newTestRouter(t, routerDeps{analyzer: analyzer})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postForm(url.Values{"text": {"Body"}, "article_id": {"x"}}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, analyzer.calls)
}

func TestGetSamples(t *testing.T) {
	articles := &fakeArticleStore{err: errDBDown}
	r := newTestRouter(t, routerDeps{analyzer: &fakeAnalyzer{}, articles: articles})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/samples", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var res SamplesResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 3, len(res.Samples))
	assert.Equal(t, "Florida Man Arrested for Attempting to Run to London in a Hamster Wheel", res.Samples[0].Title)
	assert.Equal(t, 0, len(res.Articles))
}

func TestGetHealth_Healthy(t *testing.T) {
	r := newTestRouter(t, routerDeps{analyzer: &fakeAnalyzer{}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "healthy", res["status"])
	assert.Equal(t, "connected", res["database"])
}


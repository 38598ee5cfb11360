package config

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(lookupFrom(nil))

	assert.Equal(t, nil, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, ProviderOpenRouter, cfg.LLMProvider)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, uint32(3), cfg.BreakerFailures)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(lookupFrom(map[string]string{
		"PORT":               "9000",
		"SAGEMAKER_ENDPOINT": "fake-news-detector",
		"LLM_PROVIDER":       "anthropic",
		"CACHE_TTL":          "15m",
		"BREAKER_FAILURES":   "5",
		"FETCH_LIMIT":        "50",
		"AWS_REGION":         "",
		"MASSIVE_API_KEY":    "mk",
	}))

	assert.Equal(t, nil, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "fake-news-detector", cfg.SageMakerEndpoint)
	assert.Equal(t, ProviderAnthropic, cfg.LLMProvider)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, uint32(5), cfg.BreakerFailures)
	assert.Equal(t, 50, cfg.FetchLimit)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, "mk", cfg.MassiveAPIKey)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"CACHE_TTL":        "soon",
		"BREAKER_FAILURES": "0",
		"FETCH_LIMIT":      "-1",
		"LLM_PROVIDER":     "gemini",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			_, err := load(lookupFrom(map[string]string{key: value}))
			assert.NotEqual(t, nil, err)
		})
	}
}

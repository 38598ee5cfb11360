// Package config collects the environment settings shared by the binaries.
// Callers load .env with godotenv before calling Load.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderAnthropic  = "anthropic"
)

type Config struct {
	Port        string
	FrontendURL string

	AWSRegion         string
	SageMakerEndpoint string
	BreakerFailures   uint32
	BreakerOpenFor    time.Duration

	LLMProvider       string
	LLMModel          string
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	AnthropicAPIKey   string
	AppReferer        string
	AppTitle          string

	RequestTimeout time.Duration

	DatabaseURL string
	RedisURL    string
	CacheTTL    time.Duration

	FinnhubAPIKey      string
	AlphaVantageAPIKey string
	MassiveAPIKey      string
	FetchLimit         int
}

func Default() *Config {
	return &Config{
		Port:            "8080",
		AWSRegion:       "us-east-1",
		BreakerFailures: 3,
		BreakerOpenFor:  30 * time.Second,
		LLMProvider:     ProviderOpenRouter,
		AppTitle:        "Fake News Checker",
		RequestTimeout:  90 * time.Second,
		CacheTTL:        24 * time.Hour,
		FetchLimit:      20,
	}
}

// Load starts from Default and applies environment overrides.
func Load() (*Config, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("PORT", &cfg.Port)
	str("FRONTEND_URL", &cfg.FrontendURL)
	str("AWS_REGION", &cfg.AWSRegion)
	str("SAGEMAKER_ENDPOINT", &cfg.SageMakerEndpoint)
	str("LLM_PROVIDER", &cfg.LLMProvider)
	str("LLM_MODEL", &cfg.LLMModel)
	str("OPENROUTER_API_KEY", &cfg.OpenRouterAPIKey)
	str("OPENROUTER_BASE_URL", &cfg.OpenRouterBaseURL)
	str("ANTHROPIC_API_KEY", &cfg.AnthropicAPIKey)
	str("APP_REFERER", &cfg.AppReferer)
	str("APP_TITLE", &cfg.AppTitle)
	str("DATABASE_URL", &cfg.DatabaseURL)
	str("REDIS_URL", &cfg.RedisURL)
	str("FINNHUB_API_KEY", &cfg.FinnhubAPIKey)
	str("ALPHA_VANTAGE_API_KEY", &cfg.AlphaVantageAPIKey)
	str("MASSIVE_API_KEY", &cfg.MassiveAPIKey)

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"CACHE_TTL", &cfg.CacheTTL},
		{"REQUEST_TIMEOUT", &cfg.RequestTimeout},
		{"BREAKER_OPEN_FOR", &cfg.BreakerOpenFor},
	}
	for _, d := range durations {
		v, ok := lookup(d.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", d.key, v, err)
		}
		*d.dst = parsed
	}

	if v, ok := lookup("BREAKER_FAILURES"); ok && v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil || n == 0 {
			return nil, fmt.Errorf("invalid BREAKER_FAILURES %q", v)
		}
		cfg.BreakerFailures = uint32(n)
	}

	if v, ok := lookup("FETCH_LIMIT"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid FETCH_LIMIT %q", v)
		}
		cfg.FetchLimit = n
	}

	switch cfg.LLMProvider {
	case ProviderOpenRouter, ProviderAnthropic:
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}

	return cfg, nil
}

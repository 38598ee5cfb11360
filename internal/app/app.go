// Package app builds the analysis pipeline from configuration. It is shared
// by the API server, the queue worker and the CLI.
package app

import (
	"context"
	"fmt"

	"newscheck/internal/config"
	"newscheck/internal/service"
	"newscheck/pkg/classifier"
	"newscheck/pkg/llm"

	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	openaioption "github.com/openai/openai-go/option"
)

func NewClassifier(ctx context.Context, cfg *config.Config) (classifier.Classifier, error) {
	sm, err := classifier.NewSageMakerClient(ctx, cfg.AWSRegion, cfg.SageMakerEndpoint, cfg.RequestTimeout)
	if err != nil {
		return nil, err
	}
	return classifier.NewBreaker(sm, cfg.BreakerFailures, cfg.BreakerOpenFor), nil
}

func NewExplainer(cfg *config.Config) (llm.Explainer, error) {
	switch cfg.LLMProvider {
	case config.ProviderAnthropic:
		return llm.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.LLMModel,
			anthropicoption.WithRequestTimeout(cfg.RequestTimeout),
		), nil
	case config.ProviderOpenRouter:
		return llm.NewOpenRouterClient(llm.OpenRouterConfig{
			APIKey:  cfg.OpenRouterAPIKey,
			BaseURL: cfg.OpenRouterBaseURL,
			Model:   cfg.LLMModel,
			Referer: cfg.AppReferer,
			Title:   cfg.AppTitle,
		}, openaioption.WithRequestTimeout(cfg.RequestTimeout)), nil
	}
	return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
}

// NewChecker wires classifier and explainer; store and cache may be nil.
func NewChecker(ctx context.Context, cfg *config.Config, store service.AnalysisStore, cache service.ResultCache) (*service.Checker, error) {
	cls, err := NewClassifier(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("building classifier: %w", err)
	}

	explainer, err := NewExplainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("building explainer: %w", err)
	}

	scope := cfg.LLMProvider + "/" + cfg.LLMModel
	return service.NewChecker(cls, explainer, store, cache).WithCacheScope(scope), nil
}

package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1/"
	DefaultOpenRouterModel   = "deepseek/deepseek-r1:free"
	DefaultTemperature       = 0.7
	DefaultAppTitle          = "Fake News Checker"

	openRouterProvider = "openrouter"
)

type OpenRouterConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Referer     string
	Title       string
	Temperature float64
}

// OpenRouterClient talks to any OpenAI-compatible chat completions API.
// OpenRouter is the default; the Referer and Title headers identify the app
// on its dashboard.
type OpenRouterClient struct {
	client      *openai.Client
	model       openai.ChatModel
	modelName   string
	temperature float64
}

func NewOpenRouterClient(cfg OpenRouterConfig, extra ...option.RequestOption) *OpenRouterClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOpenRouterBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultOpenRouterModel
	}
	if cfg.Title == "" {
		cfg.Title = DefaultAppTitle
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithHeader("X-Title", cfg.Title),
	}
	if cfg.Referer != "" {
		opts = append(opts, option.WithHeader("HTTP-Referer", cfg.Referer))
	}
	opts = append(opts, extra...)

	client := openai.NewClient(opts...)
	return &OpenRouterClient{
		client:      &client,
		model:       openai.ChatModel(cfg.Model),
		modelName:   cfg.Model,
		temperature: cfg.Temperature,
	}
}

func (c *OpenRouterClient) Explain(ctx context.Context, input ExplainInput) (*Verdict, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildUserPrompt(input)),
		},
		Temperature: openai.Float(c.temperature),
	})

	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			v := responseErrorVerdict(apiErr.StatusCode, apiErr.Message)
			v.ModelUsed = c.modelName
			return v, nil
		}
		return nil, fmt.Errorf("%s API error: %w", openRouterProvider, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from %s", openRouterProvider)
	}

	v := ParseVerdict(openRouterProvider, resp.Choices[0].Message.Content)
	v.ModelUsed = c.modelName
	return v, nil
}

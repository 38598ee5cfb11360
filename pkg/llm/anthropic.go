package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicProvider = "anthropic"

type AnthropicClient struct {
	client      *anthropic.Client
	model       anthropic.Model
	modelName   string
	temperature float64
}

func NewAnthropicClient(apiKey, model string, extra ...option.RequestOption) *AnthropicClient {
	opts := append([]option.RequestOption{option.WithAPIKey(apiKey)}, extra...)
	client := anthropic.NewClient(opts...)

	m := anthropic.ModelClaudeHaiku4_5
	if model != "" {
		m = anthropic.Model(model)
	}

	return &AnthropicClient{
		client:      &client,
		model:       m,
		modelName:   string(m),
		temperature: DefaultTemperature,
	}
}

func (c *AnthropicClient) Explain(ctx context.Context, input ExplainInput) (*Verdict, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   1024,
		Temperature: anthropic.Float(c.temperature),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildUserPrompt(input))),
		},
	})

	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			v := responseErrorVerdict(apiErr.StatusCode, apiErr.Error())
			v.ModelUsed = c.modelName
			return v, nil
		}
		return nil, fmt.Errorf("%s API error: %w", anthropicProvider, err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("no response from %s", anthropicProvider)
	}

	v := ParseVerdict(anthropicProvider, resp.Content[0].Text)
	v.ModelUsed = c.modelName
	return v, nil
}

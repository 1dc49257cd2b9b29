package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// GeminiClient calls the Gemini generation API through its OpenAI-compatible
// chat completions surface.
type GeminiClient struct {
	model       openai.ChatModel
	temperature float64
	client      *openai.Client
}

const (
	defaultChatTimeout = 60 * time.Second
	defaultTemperature = 0.2
	defaultBaseURL     = "https://generativelanguage.googleapis.com/v1beta/openai/"
)

// NewGeminiClient builds a client for the given API key and model.
// baseURL and temperature fall back to defaults when zero.
func NewGeminiClient(apiKey, baseURL string, model openai.ChatModel, temperature float64) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if temperature == 0 {
		temperature = defaultTemperature
	}
	// One best-effort call per turn: the SDK's internal retries are off.
	cli := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)
	return &GeminiClient{
		model:       model,
		temperature: temperature,
		client:      &cli,
	}, nil
}

// Generate makes a single best-effort completion call. There is no retry;
// the caller decides what a failed turn looks like to the user.
func (c *GeminiClient) Generate(ctx context.Context, system, user string) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("nil gemini client")
	}
	reqCtx, cancel := context.WithTimeout(ctx, defaultChatTimeout)
	defer cancel()
	resp, err := c.client.Chat.Completions.New(reqCtx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    buildMessages(system, user),
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("gemini: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

func buildMessages(system, user string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: openai.String(system),
				},
			},
		},
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: openai.String(user),
				},
			},
		},
	}
}

package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const openAIModel = "gpt-4.1-mini"

type openAIBackend struct {
	client *openai.Client
}

func newOpenAIBackend(apiKey string) (*openAIBackend, error) {
	if apiKey == "" {
		return nil, &ConfigError{msg: "OPENAI_API_KEY not set"}
	}
	return &openAIBackend{client: openai.NewClient(apiKey)}, nil
}

func (b *openAIBackend) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openAIModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", classifyOpenAIError(err)
	}

	return openAIResponseText(resp)
}

func classifyOpenAIError(err error) *ProviderError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return &ProviderError{Provider: ProviderOpenAI, Kind: KindRateLimited, Err: err}
	}
	return &ProviderError{Provider: ProviderOpenAI, Kind: KindTransport, Err: err}
}

// openAIResponseText extracts the trimmed completion text. A successful
// call with no usable content is an error, never an empty string.
func openAIResponseText(resp openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", &ProviderError{Provider: ProviderOpenAI, Kind: KindEmptyResponse}
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", &ProviderError{Provider: ProviderOpenAI, Kind: KindEmptyResponse}
	}
	return text, nil
}

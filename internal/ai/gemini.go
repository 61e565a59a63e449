package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.5-flash"

type geminiBackend struct {
	client *genai.Client
}

func newGeminiBackend(ctx context.Context, apiKey string) (*geminiBackend, error) {
	if apiKey == "" {
		return nil, &ConfigError{msg: "GEMINI_API_KEY not set"}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, &ConfigError{msg: fmt.Sprintf("failed to create genai client: %v", err)}
	}

	return &geminiBackend{client: client}, nil
}

func (b *geminiBackend) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := b.client.Models.GenerateContent(ctx, geminiModel, []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: strings.TrimSpace(prompt)}},
		},
	}, nil)
	if err != nil {
		return "", classifyGeminiError(err)
	}

	return geminiResponseText(resp)
}

func classifyGeminiError(err error) *ProviderError {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return &ProviderError{Provider: ProviderGemini, Kind: KindRateLimited, Err: err}
	}
	return &ProviderError{Provider: ProviderGemini, Kind: KindTransport, Err: err}
}

// geminiResponseText extracts the first non-empty text part of the first
// candidate. A successful call with no usable content is an error.
func geminiResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part == nil {
				continue
			}
			if text := strings.TrimSpace(part.Text); text != "" {
				return text, nil
			}
		}
	}

	return "", &ProviderError{Provider: ProviderGemini, Kind: KindEmptyResponse}
}

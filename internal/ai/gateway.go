// Package ai routes text generation requests to a configured external
// provider and normalizes its failures into a small error taxonomy.
//
// The provider is chosen once, when the gateway is built; there is no
// per-call dispatch and no retry. Every call is a single best-effort
// attempt whose failure surfaces to the caller.
package ai

import (
	"context"
	"fmt"
	"strings"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Generator produces text from a prompt. Both provider backends
// implement it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	Provider     string
	OpenAIAPIKey string
	GeminiAPIKey string
}

type Gateway struct {
	gen Generator
}

// New builds a gateway for the configured provider. Unsupported provider
// names and missing credentials fail here with a ConfigError, before any
// network traffic.
func New(ctx context.Context, cfg Config) (*Gateway, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderOpenAI:
		gen, err := newOpenAIBackend(cfg.OpenAIAPIKey)
		if err != nil {
			return nil, err
		}
		return &Gateway{gen: gen}, nil
	case ProviderGemini:
		gen, err := newGeminiBackend(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return nil, err
		}
		return &Gateway{gen: gen}, nil
	default:
		return nil, &ConfigError{msg: fmt.Sprintf("unsupported AI provider %q", cfg.Provider)}
	}
}

func (g *Gateway) Generate(ctx context.Context, prompt string) (string, error) {
	return g.gen.Generate(ctx, prompt)
}

// Summarize asks the provider for a short summary of the given book.
func (g *Gateway) Summarize(ctx context.Context, title, author string) (string, error) {
	return g.gen.Generate(ctx, summaryPrompt(title, author))
}

// Chat answers a free-form user message in the context of the given book.
func (g *Gateway) Chat(ctx context.Context, title, author, message string) (string, error) {
	return g.gen.Generate(ctx, chatPrompt(title, author, message))
}

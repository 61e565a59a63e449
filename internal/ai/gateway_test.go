package ai

import (
	"context"
	"strings"
	"testing"
)

type stubGenerator struct {
	reply  string
	err    error
	prompt string
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.reply, s.err
}

func TestNew_UnsupportedProvider(t *testing.T) {
	_, err := New(context.Background(), Config{Provider: "carrierpigeon"})
	if err == nil {
		t.Fatal("expected error for unsupported provider")
	}
	if !IsConfig(err) {
		t.Fatalf("expected a config error, got %v", err)
	}
	if !strings.Contains(err.Error(), "unsupported AI provider") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestNew_MissingOpenAIKey(t *testing.T) {
	_, err := New(context.Background(), Config{Provider: "openai"})
	if err == nil {
		t.Fatal("expected error for missing OpenAI key")
	}
	if !IsConfig(err) {
		t.Fatalf("expected a config error, got %v", err)
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestNew_MissingGeminiKey(t *testing.T) {
	_, err := New(context.Background(), Config{Provider: "gemini"})
	if err == nil {
		t.Fatal("expected error for missing Gemini key")
	}
	if !IsConfig(err) {
		t.Fatalf("expected a config error, got %v", err)
	}
	if !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestNew_ProviderNameIsCaseInsensitive(t *testing.T) {
	_, err := New(context.Background(), Config{Provider: "OpenAI"})
	if err == nil {
		t.Fatal("expected missing-key error, got none")
	}
	// The provider name itself must be accepted; only the key is missing.
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestSummarize_BuildsFixedPrompt(t *testing.T) {
	stub := &stubGenerator{reply: "A desert planet epic."}
	g := &Gateway{gen: stub}

	got, err := g.Summarize(context.Background(), "Dune", "Frank Herbert")
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	if got != "A desert planet epic." {
		t.Fatalf("unexpected reply: %q", got)
	}

	want := "Dune by Frank Herbert. Share summary of this book in 3-4 lines."
	if stub.prompt != want {
		t.Fatalf("expected prompt %q, got %q", want, stub.prompt)
	}
}

func TestChat_EmbedsBookContext(t *testing.T) {
	stub := &stubGenerator{reply: "It is about spice."}
	g := &Gateway{gen: stub}

	if _, err := g.Chat(context.Background(), "Dune", "Frank Herbert", "What is it about?"); err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}

	for _, fragment := range []string{
		"Book: Dune",
		"Author: Frank Herbert",
		"User message: What is it about?",
		"Answer clearly and concisely.",
	} {
		if !strings.Contains(stub.prompt, fragment) {
			t.Fatalf("prompt missing %q:\n%s", fragment, stub.prompt)
		}
	}
}

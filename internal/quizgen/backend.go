package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/quantiz/internal/llm"
)

// TextGenerator is the abstract external capability that produces raw,
// untrusted candidate text for one question. Implementations never panic;
// every failure mode is reported through the Outcome.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) Outcome
}

// ProviderBackend adapts an llm.Provider to the TextGenerator capability.
// Additional backends plug in behind the same interface without touching
// the pipeline.
type ProviderBackend struct {
	provider    llm.Provider
	maxTokens   int
	temperature float64
}

// NewProviderBackend wraps an LLM provider as a TextGenerator.
func NewProviderBackend(p llm.Provider) *ProviderBackend {
	return &ProviderBackend{
		provider:    p,
		maxTokens:   768,
		temperature: 0.5,
	}
}

func (b *ProviderBackend) Generate(ctx context.Context, prompt string) Outcome {
	ctx = llm.WithPurpose(ctx, "item-gen")

	resp, err := b.provider.Generate(ctx, llm.Request{
		Prompt:      prompt,
		Schema:      ItemSchema,
		MaxTokens:   b.maxTokens,
		Temperature: b.temperature,
	})
	if err != nil {
		return Outcome{Err: err.Error()}
	}

	var data map[string]any
	if err := json.Unmarshal(resp.Content, &data); err != nil {
		return Outcome{Err: fmt.Sprintf("parse response object: %v", err)}
	}

	return Outcome{OK: true, Data: data}
}

package quizgen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ayaka/kotoba/internal/llm"
	"github.com/ayaka/kotoba/internal/taxonomy"
)

// LLMGenerator implements Generator using the LLM provider.
//
// The provider is asked for free text and the structured payload is
// extracted from it, rather than using native structured output: the
// prompt and extraction mirror the wire contract of the tutoring
// backend this engine serves, and keep the generator swappable across
// providers that lack structured output support.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// GenerateSet produces one correct sentence and two flawed variants for
// the given topic and error category.
func (g *LLMGenerator) GenerateSet(ctx context.Context, topic taxonomy.Topic, cat taxonomy.ErrorCategory) (*SentenceSet, error) {
	ctx = llm.WithPurpose(ctx, "sentence-gen")

	text, err := g.callWithRetry(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSetMessage(topic, cat)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	fragment, err := extractJSONFragment(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	obj, err := validateFragment(fragment)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	// Schema validation guarantees the three keys are non-empty strings.
	set := &SentenceSet{
		Correct: obj["correct"].(string),
		Flawed: [2]string{
			obj["error1"].(string),
			obj["error2"].(string),
		},
	}
	return set, nil
}

// Explain describes why wrong is incorrect in terms of the error category.
func (g *LLMGenerator) Explain(ctx context.Context, wrong, correct string, cat taxonomy.ErrorCategory) (string, error) {
	ctx = llm.WithPurpose(ctx, "explanation")

	text, err := g.callWithRetry(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExplainMessage(wrong, correct, cat)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	explanation := strings.TrimSpace(text)
	if explanation == "" {
		return "", fmt.Errorf("%w: empty explanation", ErrGenerationFailed)
	}
	return explanation, nil
}

// callWithRetry issues the request with a bounded attempt loop: each
// attempt gets its own timeout, and a fixed delay separates attempts.
// Caller cancellation stops the loop immediately.
func (g *LLMGenerator) callWithRetry(ctx context.Context, req llm.Request) (string, error) {
	var lastErr error

	for attempt := 0; attempt < g.config.MaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(g.config.RetryDelay):
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, g.config.Timeout)
		resp, err := g.provider.Generate(attemptCtx, req)
		cancel()

		if err == nil {
			return string(resp.Content), nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}

	return "", fmt.Errorf("after %d attempts: %w", g.config.MaxAttempts, lastErr)
}

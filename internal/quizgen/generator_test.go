package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ayaka/kotoba/internal/llm"
	"github.com/ayaka/kotoba/internal/taxonomy"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.RetryDelay = time.Millisecond
	cfg.Timeout = time.Second
	return cfg
}

func testTopic() taxonomy.Topic {
	topic, _ := taxonomy.TopicByID("travel")
	return topic
}

func testCategory() taxonomy.ErrorCategory {
	cat, _ := taxonomy.CategoryByID("tense")
	return cat
}

func validSetJSON() json.RawMessage {
	return json.RawMessage(`{
		"correct": "I went to Kyoto last year.",
		"error1": "I go to Kyoto last year.",
		"error2": "I have gone to Kyoto last year.",
		"explanation": "Past events need the simple past."
	}`)
}

func TestGenerateSet(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSetJSON()})
	gen := New(mock, testConfig())

	set, err := gen.GenerateSet(context.Background(), testTopic(), testCategory())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Correct != "I went to Kyoto last year." {
		t.Errorf("unexpected correct sentence: %q", set.Correct)
	}
	if set.Flawed[0] != "I go to Kyoto last year." {
		t.Errorf("unexpected first flawed sentence: %q", set.Flawed[0])
	}
	if !set.Distinct() {
		t.Error("expected distinct sentences")
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 provider call, got %d", mock.CallCount())
	}
}

func TestGenerateSet_PromptMentionsTopicAndCategory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSetJSON()})
	gen := New(mock, testConfig())

	_, err := gen.GenerateSet(context.Background(), testTopic(), testCategory())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, testTopic().Name) {
		t.Errorf("expected prompt to mention topic %q", testTopic().Name)
	}
	if !strings.Contains(userMsg, testCategory().Name) {
		t.Errorf("expected prompt to mention category %q", testCategory().Name)
	}
}

func TestGenerateSet_ExtractsFromProse(t *testing.T) {
	wrapped := "Here's your exercise!\n```json\n" + string(validSetJSON()) + "\n```\nGood luck!"
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(wrapped)})
	gen := New(mock, testConfig())

	set, err := gen.GenerateSet(context.Background(), testTopic(), testCategory())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Correct != "I went to Kyoto last year." {
		t.Errorf("unexpected correct sentence: %q", set.Correct)
	}
}

func TestGenerateSet_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("I'm sorry, I can't produce that right now."),
	})
	gen := New(mock, testConfig())

	_, err := gen.GenerateSet(context.Background(), testTopic(), testCategory())
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}

func TestGenerateSet_MissingField(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"correct": "a", "error1": "b"}`),
	})
	gen := New(mock, testConfig())

	_, err := gen.GenerateSet(context.Background(), testTopic(), testCategory())
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}

func TestGenerateSet_RetriesTransportErrors(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: errors.New("connection reset")},
		llm.MockResponse{Err: errors.New("connection reset")},
		llm.MockResponse{Content: validSetJSON()},
	)
	gen := New(mock, testConfig())

	set, err := gen.GenerateSet(context.Background(), testTopic(), testCategory())
	if err != nil {
		t.Fatalf("expected success on third attempt: %v", err)
	}
	if set.Correct == "" {
		t.Error("expected a sentence set")
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected 3 provider calls, got %d", mock.CallCount())
	}
}

func TestGenerateSet_FailsAfterMaxAttempts(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: errors.New("boom")},
		llm.MockResponse{Err: errors.New("boom")},
		llm.MockResponse{Err: errors.New("boom")},
	)
	cfg := testConfig()
	cfg.MaxAttempts = 3
	gen := New(mock, cfg)

	_, err := gen.GenerateSet(context.Background(), testTopic(), testCategory())
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected exactly 3 attempts, got %d", mock.CallCount())
	}
}

func TestGenerateSet_NoRetryOnParseFailure(t *testing.T) {
	// A well-transported but malformed response fails immediately
	// rather than burning retry attempts.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("no json here")},
		llm.MockResponse{Content: validSetJSON()},
	)
	gen := New(mock, testConfig())

	_, err := gen.GenerateSet(context.Background(), testTopic(), testCategory())
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 call (no retry on parse failure), got %d", mock.CallCount())
	}
}

func TestGenerateSet_CancelledContext(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: errors.New("boom")},
		llm.MockResponse{Content: validSetJSON()},
	)
	gen := New(mock, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.GenerateSet(ctx, testTopic(), testCategory())
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}

func TestExplain(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("The simple past is needed for finished events."),
	})
	gen := New(mock, testConfig())

	text, err := gen.Explain(context.Background(), "I go yesterday.", "I went yesterday.", testCategory())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "The simple past is needed for finished events." {
		t.Errorf("unexpected explanation: %q", text)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, "I go yesterday.") {
		t.Error("expected prompt to contain the wrong sentence")
	}
	if !strings.Contains(userMsg, "I went yesterday.") {
		t.Error("expected prompt to contain the correct sentence")
	}
}

func TestExplain_EmptyResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("   \n"),
	})
	gen := New(mock, testConfig())

	_, err := gen.Explain(context.Background(), "wrong", "right", testCategory())
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}

func TestGenerateSet_ConfigOverrides(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSetJSON()})
	cfg := testConfig()
	cfg.MaxTokens = 256
	cfg.Temperature = 0.4
	gen := New(mock, cfg)

	_, err := gen.GenerateSet(context.Background(), testTopic(), testCategory())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.Calls[0].MaxTokens != 256 {
		t.Errorf("expected MaxTokens 256, got %d", mock.Calls[0].MaxTokens)
	}
	if mock.Calls[0].Temperature != 0.4 {
		t.Errorf("expected Temperature 0.4, got %f", mock.Calls[0].Temperature)
	}
}

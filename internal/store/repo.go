package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int   // max results (0 = unlimited)
	After  int64 // sequence > After
	Before int64 // sequence < Before
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a recorded LLM request, as returned by queries.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// RoundEventData records one produced practice round.
type RoundEventData struct {
	SessionID string
	Topic     string
	Category  string
	// Source is "generator" when the sentences came from the LLM,
	// "fallback" when the template bank was used.
	Source string
}

// AnswerEventData records one graded selection.
type AnswerEventData struct {
	SessionID   string
	Topic       string
	Category    string
	ChosenIndex int
	Correct     bool
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recorded LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single LLM event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// AppendRound records a produced practice round.
	AppendRound(ctx context.Context, data RoundEventData) error

	// AppendAnswer records a graded selection.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// LLMUsageByPurpose aggregates LLM calls per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates LLM calls per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// AnswersByTopic aggregates graded selections per topic ID.
	AnswersByTopic(ctx context.Context) ([]AnswerStat, error)

	// AnswersByCategory aggregates graded selections per error-category ID.
	AnswersByCategory(ctx context.Context) ([]AnswerStat, error)

	// RoundsBySource counts produced rounds per sentence source.
	RoundsBySource(ctx context.Context) ([]RoundSourceStat, error)
}

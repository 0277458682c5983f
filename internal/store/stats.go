package store

import (
	"context"
	"fmt"

	"github.com/ayaka/kotoba/ent"
	"github.com/ayaka/kotoba/ent/llmrequestevent"
	"github.com/ayaka/kotoba/ent/roundevent"
)

// LLMUsageStat aggregates LLM calls for one purpose label.
type LLMUsageStat struct {
	Purpose      string  `json:"purpose"`
	Calls        int     `json:"calls"`
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	AvgLatencyMs float64 `json:"avg_latency_ms"`
}

// LLMModelUsage aggregates LLM calls for one model.
type LLMModelUsage struct {
	Model        string `json:"model"`
	Calls        int    `json:"calls"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}

// AnswerStat aggregates graded selections for one taxonomy entry.
type AnswerStat struct {
	Key     string `json:"key"`
	Answers int    `json:"answers"`
	Correct int    `json:"correct"`
}

// RoundSourceStat counts produced rounds per sentence source.
type RoundSourceStat struct {
	Source string `json:"source"`
	Rounds int    `json:"rounds"`
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error) {
	var rows []LLMUsageStat
	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldPurpose).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "output_tokens"),
			ent.As(ent.Mean(llmrequestevent.FieldLatencyMs), "avg_latency_ms"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM usage by purpose: %w", err)
	}
	return rows, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	var rows []LLMModelUsage
	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldModel).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "output_tokens"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM usage by model: %w", err)
	}
	return rows, nil
}

// AnswersByTopic aggregates graded selections per topic ID.
func (r *eventRepo) AnswersByTopic(ctx context.Context) ([]AnswerStat, error) {
	rows, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	return answerStats(rows, func(row *ent.AnswerEvent) string { return row.Topic }), nil
}

// AnswersByCategory aggregates graded selections per error-category ID.
func (r *eventRepo) AnswersByCategory(ctx context.Context) ([]AnswerStat, error) {
	rows, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	return answerStats(rows, func(row *ent.AnswerEvent) string { return row.Category }), nil
}

// answerStats folds answer rows into per-key counts. Aggregation is
// done in memory because correct counts need a conditional sum that
// does not map onto the generated group-by helpers.
func answerStats(rows []*ent.AnswerEvent, key func(*ent.AnswerEvent) string) []AnswerStat {
	byKey := make(map[string]*AnswerStat)
	var order []string
	for _, row := range rows {
		k := key(row)
		st, ok := byKey[k]
		if !ok {
			st = &AnswerStat{Key: k}
			byKey[k] = st
			order = append(order, k)
		}
		st.Answers++
		if row.Correct {
			st.Correct++
		}
	}

	stats := make([]AnswerStat, 0, len(order))
	for _, k := range order {
		stats = append(stats, *byKey[k])
	}
	return stats
}

// RoundsBySource counts produced rounds per sentence source, showing how
// often the template bank stood in for the generator.
func (r *eventRepo) RoundsBySource(ctx context.Context) ([]RoundSourceStat, error) {
	var rows []RoundSourceStat
	err := r.client.RoundEvent.Query().
		GroupBy(roundevent.FieldSource).
		Aggregate(ent.As(ent.Count(), "rounds")).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate rounds by source: %w", err)
	}
	return rows, nil
}

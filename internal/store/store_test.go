package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesEventTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"round_events", "answer_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendRound(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendRound(ctx, RoundEventData{
		SessionID: "s1",
		Topic:     "food",
		Category:  "tense",
		Source:    "generator",
	})
	if err != nil {
		t.Fatalf("append round: %v", err)
	}

	row, err := s.Client().RoundEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query round event: %v", err)
	}
	if row.SessionID != "s1" || row.Topic != "food" || row.Category != "tense" {
		t.Errorf("unexpected round event: %+v", row)
	}
	if row.Source != "generator" {
		t.Errorf("source = %q, want generator", row.Source)
	}
	if row.Sequence != 1 {
		t.Errorf("sequence = %d, want 1", row.Sequence)
	}
}

func TestAppendAnswer(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAnswer(ctx, AnswerEventData{
		SessionID:   "s1",
		Topic:       "travel",
		Category:    "agreement",
		ChosenIndex: 2,
		Correct:     true,
	})
	if err != nil {
		t.Fatalf("append answer: %v", err)
	}

	row, err := s.Client().AnswerEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query answer event: %v", err)
	}
	if row.Topic != "travel" || row.Category != "agreement" {
		t.Errorf("unexpected answer event: %+v", row)
	}
	if row.ChosenIndex != 2 || !row.Correct {
		t.Errorf("chosen_index = %d correct = %v, want 2 true", row.ChosenIndex, row.Correct)
	}
}

func TestCrossTypeSequenceOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendRound(ctx, RoundEventData{SessionID: "s1", Topic: "food", Category: "tense", Source: "fallback"}); err != nil {
		t.Fatalf("append round: %v", err)
	}
	if err := repo.AppendAnswer(ctx, AnswerEventData{SessionID: "s1", Topic: "food", Category: "tense", ChosenIndex: 0, Correct: false}); err != nil {
		t.Fatalf("append answer: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "explanation", Success: true}); err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	round, err := s.Client().RoundEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query round: %v", err)
	}
	answer, err := s.Client().AnswerEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query answer: %v", err)
	}
	request, err := s.Client().LLMRequestEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query llm event: %v", err)
	}

	if !(round.Sequence < answer.Sequence && answer.Sequence < request.Sequence) {
		t.Errorf("sequences not increasing across tables: round=%d answer=%d llm=%d",
			round.Sequence, answer.Sequence, request.Sequence)
	}
}

func TestLLMEventQueryAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"sentence-gen", "sentence-gen", "explanation"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    int64(10 * (i + 1)),
			Success:      true,
			RequestBody:  "Create a grammar exercise.",
			ResponseBody: `{"correct":"She reads a lot."}`,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	// Newest first.
	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].Purpose != "explanation" {
		t.Errorf("newest event purpose = %q, want explanation", events[0].Purpose)
	}
	for i := 1; i < len(events); i++ {
		if events[i].Sequence >= events[i-1].Sequence {
			t.Errorf("events not in descending sequence order at %d", i)
		}
	}

	// Limit.
	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 events with limit, got %d", len(limited))
	}

	// After excludes the oldest.
	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: events[len(events)-1].Sequence})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 2 {
		t.Errorf("expected 2 events after oldest, got %d", len(after))
	}

	// Get by ID round-trips the bodies.
	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected event, got nil")
	}
	if got.RequestBody != "Create a grammar exercise." {
		t.Errorf("request body = %q", got.RequestBody)
	}

	// Missing ID is nil, not an error.
	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}
}

func TestRoundsBySource(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, source := range []string{"generator", "generator", "fallback"} {
		err := repo.AppendRound(ctx, RoundEventData{
			SessionID: "s1", Topic: "music", Category: "article", Source: source,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.RoundsBySource(ctx)
	if err != nil {
		t.Fatalf("rounds by source: %v", err)
	}

	counts := make(map[string]int)
	for _, st := range stats {
		counts[st.Source] = st.Rounds
	}
	if counts["generator"] != 2 || counts["fallback"] != 1 {
		t.Errorf("counts = %v, want generator:2 fallback:1", counts)
	}
}

func TestAnswerAggregations(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", Topic: "food", Category: "tense", ChosenIndex: 0, Correct: true},
		{SessionID: "s1", Topic: "food", Category: "agreement", ChosenIndex: 1, Correct: false},
		{SessionID: "s2", Topic: "sports", Category: "tense", ChosenIndex: 2, Correct: true},
	}
	for i, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byTopic, err := repo.AnswersByTopic(ctx)
	if err != nil {
		t.Fatalf("answers by topic: %v", err)
	}
	topics := make(map[string]AnswerStat)
	for _, st := range byTopic {
		topics[st.Key] = st
	}
	if st := topics["food"]; st.Answers != 2 || st.Correct != 1 {
		t.Errorf("food = %+v, want 2 answers 1 correct", st)
	}
	if st := topics["sports"]; st.Answers != 1 || st.Correct != 1 {
		t.Errorf("sports = %+v, want 1 answer 1 correct", st)
	}

	byCategory, err := repo.AnswersByCategory(ctx)
	if err != nil {
		t.Fatalf("answers by category: %v", err)
	}
	cats := make(map[string]AnswerStat)
	for _, st := range byCategory {
		cats[st.Key] = st
	}
	if st := cats["tense"]; st.Answers != 2 || st.Correct != 2 {
		t.Errorf("tense = %+v, want 2 answers 2 correct", st)
	}
	if st := cats["agreement"]; st.Answers != 1 || st.Correct != 0 {
		t.Errorf("agreement = %+v, want 1 answer 0 correct", st)
	}
}

func TestLLMUsageAggregations(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "mock", Model: "model-a", Purpose: "sentence-gen", InputTokens: 100, OutputTokens: 40, LatencyMs: 20, Success: true},
		{Provider: "mock", Model: "model-a", Purpose: "sentence-gen", InputTokens: 120, OutputTokens: 60, LatencyMs: 40, Success: true},
		{Provider: "mock", Model: "model-b", Purpose: "explanation", InputTokens: 30, OutputTokens: 10, LatencyMs: 10, Success: true},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	purposes := make(map[string]LLMUsageStat)
	for _, st := range byPurpose {
		purposes[st.Purpose] = st
	}
	gen := purposes["sentence-gen"]
	if gen.Calls != 2 || gen.InputTokens != 220 || gen.OutputTokens != 100 {
		t.Errorf("sentence-gen = %+v, want 2 calls, 220 in, 100 out", gen)
	}
	if gen.AvgLatencyMs != 30 {
		t.Errorf("sentence-gen avg latency = %v, want 30", gen.AvgLatencyMs)
	}
	if exp := purposes["explanation"]; exp.Calls != 1 || exp.InputTokens != 30 {
		t.Errorf("explanation = %+v, want 1 call, 30 in", exp)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	models := make(map[string]LLMModelUsage)
	for _, st := range byModel {
		models[st.Model] = st
	}
	if a := models["model-a"]; a.Calls != 2 || a.InputTokens != 220 {
		t.Errorf("model-a = %+v, want 2 calls, 220 in", a)
	}
	if b := models["model-b"]; b.Calls != 1 || b.OutputTokens != 10 {
		t.Errorf("model-b = %+v, want 1 call, 10 out", b)
	}
}

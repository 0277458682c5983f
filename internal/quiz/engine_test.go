package quiz

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ayaka/kotoba/internal/quizgen"
	"github.com/ayaka/kotoba/internal/taxonomy"
)

// stubGenerator is a deterministic quizgen.Generator for engine tests.
type stubGenerator struct {
	mu         sync.Mutex
	set        quizgen.SentenceSet
	setErr     error
	explainTxt string
	explainErr error
	genCalls   int
}

func (g *stubGenerator) GenerateSet(_ context.Context, _ taxonomy.Topic, _ taxonomy.ErrorCategory) (*quizgen.SentenceSet, error) {
	g.mu.Lock()
	g.genCalls++
	g.mu.Unlock()
	if g.setErr != nil {
		return nil, g.setErr
	}
	set := g.set
	return &set, nil
}

func (g *stubGenerator) Explain(_ context.Context, _, _ string, _ taxonomy.ErrorCategory) (string, error) {
	if g.explainErr != nil {
		return "", g.explainErr
	}
	return g.explainTxt, nil
}

func workingGenerator() *stubGenerator {
	return &stubGenerator{
		set: quizgen.SentenceSet{
			Correct: "She goes home every day.",
			Flawed:  [2]string{"She go home every day.", "She going home every day."},
		},
		explainTxt: "The verb must agree with the subject.",
	}
}

func newTestEngine(gen quizgen.Generator) *Engine {
	return NewEngine(gen, NewSessionStore(), nil)
}

// currentRound reads a session's round directly for assertions.
func currentRound(t *testing.T, e *Engine, sessionID string) *Round {
	t.Helper()
	sess, release, ok := e.sessions.Acquire(sessionID, false)
	if !ok {
		t.Fatalf("session %q not found", sessionID)
	}
	defer release()
	return sess.Round
}

func TestStartOrContinueRound(t *testing.T) {
	gen := workingGenerator()
	e := newTestEngine(gen)

	view, err := e.StartOrContinueRound(context.Background(), "s1", "let's talk about food", "mia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.Topic.ID != "food" {
		t.Errorf("expected keyword-selected topic food, got %q", view.Topic.ID)
	}

	seen := make(map[string]bool)
	for _, opt := range view.Options {
		if opt == "" {
			t.Error("empty option")
		}
		if seen[opt] {
			t.Errorf("duplicate option %q", opt)
		}
		seen[opt] = true
	}

	round := currentRound(t, e, "s1")
	if round == nil {
		t.Fatal("expected a stored round")
	}
	if round.Options[round.CorrectIndex] != gen.set.Correct {
		t.Errorf("stored correct index points at %q", round.Options[round.CorrectIndex])
	}
	if round.FromFallback {
		t.Error("expected generator-sourced round")
	}
}

func TestStartOrContinueRound_KeywordOverridesOnContinue(t *testing.T) {
	e := newTestEngine(workingGenerator())
	ctx := context.Background()

	// First contact mentions travel, so the round starts there.
	view, err := e.StartOrContinueRound(ctx, "s1", "we went on a trip", "mia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Topic.ID != "travel" {
		t.Fatalf("expected initial topic travel, got %q", view.Topic.ID)
	}

	// New user text with a food keyword overrides the random pick.
	view, err = e.StartOrContinueRound(ctx, "s1", "I love cooking", "mia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Topic.ID != "food" {
		t.Errorf("expected keyword to pick food, got %q", view.Topic.ID)
	}
}

func TestStartOrContinueRound_GeneratorFailure(t *testing.T) {
	gen := &stubGenerator{setErr: quizgen.ErrGenerationFailed}
	e := newTestEngine(gen)

	view, err := e.StartOrContinueRound(context.Background(), "s1", "hello", "mia")
	if err != nil {
		t.Fatalf("generation failure must not surface: %v", err)
	}

	seen := make(map[string]bool)
	for _, opt := range view.Options {
		if opt == "" {
			t.Error("empty option from fallback")
		}
		seen[opt] = true
	}
	if len(seen) != OptionCount {
		t.Errorf("expected %d distinct options, got %d", OptionCount, len(seen))
	}

	if !currentRound(t, e, "s1").FromFallback {
		t.Error("expected fallback-sourced round")
	}
}

func TestStartOrContinueRound_DuplicateSentencesUseFallback(t *testing.T) {
	gen := &stubGenerator{
		set: quizgen.SentenceSet{
			Correct: "same sentence",
			Flawed:  [2]string{"same sentence", "other"},
		},
	}
	e := newTestEngine(gen)

	_, err := e.StartOrContinueRound(context.Background(), "s1", "hello", "mia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	round := currentRound(t, e, "s1")
	if !round.FromFallback {
		t.Error("expected duplicate set to be discarded for fallback")
	}
	seen := make(map[string]bool)
	for _, opt := range round.Options {
		seen[opt] = true
	}
	if len(seen) != OptionCount {
		t.Errorf("expected %d distinct options, got %d", OptionCount, len(seen))
	}
}

func TestStartOrContinueRound_NilGenerator(t *testing.T) {
	e := newTestEngine(nil)

	view, err := e.StartOrContinueRound(context.Background(), "s1", "hello", "mia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, opt := range view.Options {
		if opt == "" {
			t.Error("empty option without generator")
		}
	}
}

func TestGradeSelection_Correct(t *testing.T) {
	e := newTestEngine(workingGenerator())
	ctx := context.Background()

	_, err := e.StartOrContinueRound(ctx, "s1", "hello", "mia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	correctIndex := currentRound(t, e, "s1").CorrectIndex

	result, err := e.GradeSelection(ctx, "s1", correctIndex)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Correct {
		t.Error("expected correct grade")
	}
	if result.Explanation != "" {
		t.Errorf("correct answers carry no explanation, got %q", result.Explanation)
	}
	for _, opt := range result.Next.Options {
		if opt == "" {
			t.Error("expected next round options")
		}
	}
}

func TestGradeSelection_Incorrect(t *testing.T) {
	gen := workingGenerator()
	e := newTestEngine(gen)
	ctx := context.Background()

	_, err := e.StartOrContinueRound(ctx, "s1", "hello", "mia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wrongIndex := (currentRound(t, e, "s1").CorrectIndex + 1) % OptionCount

	result, err := e.GradeSelection(ctx, "s1", wrongIndex)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Correct {
		t.Error("expected incorrect grade")
	}
	if result.Explanation != gen.explainTxt {
		t.Errorf("expected generator explanation, got %q", result.Explanation)
	}
}

func TestGradeSelection_ExplainFailureFallsBack(t *testing.T) {
	gen := workingGenerator()
	gen.explainErr = errors.New("provider down")
	e := newTestEngine(gen)
	ctx := context.Background()

	_, err := e.StartOrContinueRound(ctx, "s1", "hello", "mia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wrongIndex := (currentRound(t, e, "s1").CorrectIndex + 1) % OptionCount

	result, err := e.GradeSelection(ctx, "s1", wrongIndex)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Explanation == "" {
		t.Error("expected synthesized explanation")
	}
}

func TestGradeSelection_AntiRepeat(t *testing.T) {
	e := newTestEngine(workingGenerator())
	ctx := context.Background()

	_, err := e.StartOrContinueRound(ctx, "s1", "hello", "mia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prev := currentRound(t, e, "s1")
	for i := 0; i < 100; i++ {
		_, err := e.GradeSelection(ctx, "s1", 0)
		if err != nil {
			t.Fatalf("round %d: unexpected error: %v", i, err)
		}
		round := currentRound(t, e, "s1")
		if round.Topic.ID == prev.Topic.ID {
			t.Fatalf("round %d: topic %q repeated", i, round.Topic.ID)
		}
		if round.Category.ID == prev.Category.ID {
			t.Fatalf("round %d: category %q repeated", i, round.Category.ID)
		}
		prev = round
	}
}

func TestGradeSelection_UnknownSession(t *testing.T) {
	e := newTestEngine(workingGenerator())

	_, err := e.GradeSelection(context.Background(), "does-not-exist", 0)
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestGradeSelection_InvalidChoice(t *testing.T) {
	e := newTestEngine(workingGenerator())
	ctx := context.Background()

	_, err := e.StartOrContinueRound(ctx, "s1", "hello", "mia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, choice := range []int{-1, 3, 100} {
		_, err := e.GradeSelection(ctx, "s1", choice)
		if !errors.Is(err, ErrInvalidChoice) {
			t.Errorf("choice %d: expected ErrInvalidChoice, got %v", choice, err)
		}
	}
}

func TestGradeSelection_Concurrent(t *testing.T) {
	gen := workingGenerator()
	e := newTestEngine(gen)
	ctx := context.Background()

	_, err := e.StartOrContinueRound(ctx, "s1", "hello", "mia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const goroutines = 50
	var wg sync.WaitGroup
	errs := make([]error, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = e.GradeSelection(ctx, "s1", i%OptionCount)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("goroutine %d: %v", i, err)
		}
	}

	// The surviving round must be fully consistent, not interleaved.
	round := currentRound(t, e, "s1")
	if round == nil {
		t.Fatal("expected a final round")
	}
	if round.CorrectIndex < 0 || round.CorrectIndex >= OptionCount {
		t.Fatalf("correct index %d out of range", round.CorrectIndex)
	}
	if round.Options[round.CorrectIndex] != gen.set.Correct {
		t.Errorf("final round's correct index points at %q", round.Options[round.CorrectIndex])
	}
	if round.Topic.ID == "" || round.Category.ID == "" {
		t.Error("final round missing topic or category")
	}
}

func TestEndSession(t *testing.T) {
	e := newTestEngine(workingGenerator())
	ctx := context.Background()

	_, err := e.StartOrContinueRound(ctx, "s1", "hello", "mia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e.EndSession("s1")
	e.EndSession("s1")

	_, err = e.GradeSelection(ctx, "s1", 0)
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after end, got %v", err)
	}
}

func TestPersona(t *testing.T) {
	e := newTestEngine(workingGenerator())
	ctx := context.Background()

	_, err := e.StartOrContinueRound(ctx, "s1", "hello", "rin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The persona is fixed at first contact.
	_, err = e.StartOrContinueRound(ctx, "s1", "hello again", "mia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := e.Persona("s1")
	if !ok {
		t.Fatal("expected session to exist")
	}
	if got != "rin" {
		t.Errorf("expected persona rin, got %q", got)
	}
}

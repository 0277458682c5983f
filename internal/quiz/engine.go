package quiz

import (
	"context"
	"fmt"
	"os"

	"github.com/ayaka/kotoba/internal/quizgen"
	"github.com/ayaka/kotoba/internal/store"
	"github.com/ayaka/kotoba/internal/taxonomy"
)

// RoundView is what a round looks like to the presentation layer. The
// correct index is never included.
type RoundView struct {
	Options [OptionCount]string
	Topic   taxonomy.Topic
}

// GradeResult is the outcome of grading one selection.
type GradeResult struct {
	Correct bool

	// Explanation is set only for wrong answers.
	Explanation string

	// Next is the round that replaces the graded one.
	Next RoundView
}

// Engine orchestrates selection, generation, option building and the
// session store across the two quiz operations. Generation failures
// are absorbed by the template bank and never reach the caller; once a
// session exists, starting a round cannot fail.
type Engine struct {
	generator quizgen.Generator
	sessions  *SessionStore
	events    store.EventRepo // optional, nil disables event logging
}

// NewEngine creates a quiz engine. generator may be nil, in which case
// every round is served from the template bank. events may be nil.
func NewEngine(generator quizgen.Generator, sessions *SessionStore, events store.EventRepo) *Engine {
	return &Engine{
		generator: generator,
		sessions:  sessions,
		events:    events,
	}
}

// StartOrContinueRound looks up or creates the session, advances it to
// a fresh round and returns the shuffled options for presentation.
// The persona label is recorded on first contact only.
func (e *Engine) StartOrContinueRound(ctx context.Context, sessionID, userText, persona string) (*RoundView, error) {
	sess, release, _ := e.sessions.Acquire(sessionID, true)
	defer release()

	if sess.Persona == "" {
		sess.Persona = persona
	}

	round := e.advance(ctx, sess, userText)
	return &RoundView{Options: round.Options, Topic: round.Topic}, nil
}

// GradeSelection grades the chosen index against the session's current
// round, then immediately advances the session to the next round.
func (e *Engine) GradeSelection(ctx context.Context, sessionID string, chosenIndex int) (*GradeResult, error) {
	if chosenIndex < 0 || chosenIndex >= OptionCount {
		return nil, fmt.Errorf("%w: index %d", ErrInvalidChoice, chosenIndex)
	}

	sess, release, ok := e.sessions.Acquire(sessionID, false)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSessionNotFound, sessionID)
	}
	defer release()

	round := sess.Round
	if round == nil {
		return nil, fmt.Errorf("%w: %q has no active round", ErrSessionNotFound, sessionID)
	}

	result := &GradeResult{Correct: chosenIndex == round.CorrectIndex}
	if !result.Correct {
		result.Explanation = e.explain(ctx, round.Options[chosenIndex], round.Options[round.CorrectIndex], round.Category)
	}

	e.logAnswer(ctx, sessionID, round, chosenIndex, result.Correct)

	next := e.advance(ctx, sess, round.UserText)
	result.Next = RoundView{Options: next.Options, Topic: next.Topic}
	return result, nil
}

// Persona returns the persona label recorded for the session, if any.
func (e *Engine) Persona(sessionID string) (string, bool) {
	sess, release, ok := e.sessions.Acquire(sessionID, false)
	if !ok {
		return "", false
	}
	defer release()
	return sess.Persona, true
}

// EndSession discards a session's state. Safe to call at any time.
func (e *Engine) EndSession(sessionID string) {
	e.sessions.Delete(sessionID)
}

// advance builds the next round for the session and installs it as the
// current one. The caller holds the session lock.
func (e *Engine) advance(ctx context.Context, sess *Session, userText string) *Round {
	var topic taxonomy.Topic
	var category taxonomy.ErrorCategory
	if prev := sess.Round; prev != nil {
		topic = nextTopic(prev.Topic, userText)
		category = nextCategory(prev.Category)
	} else {
		if t, ok := taxonomy.TopicFromText(userText); ok {
			topic = t
		} else {
			topic = randomTopic()
		}
		category = randomCategory()
	}

	set, fromFallback := e.sentences(ctx, topic, category)
	options, correctIndex := buildOptions(set)

	round := &Round{
		Topic:        topic,
		Category:     category,
		Options:      options,
		CorrectIndex: correctIndex,
		UserText:     userText,
		FromFallback: fromFallback,
	}
	sess.Round = round

	e.logRound(ctx, sess.ID, round)
	return round
}

// sentences asks the generator for a sentence set and falls back to
// the template bank on any failure, including duplicate sentences in
// an otherwise well-formed response.
func (e *Engine) sentences(ctx context.Context, topic taxonomy.Topic, category taxonomy.ErrorCategory) (quizgen.SentenceSet, bool) {
	if e.generator == nil {
		return quizgen.Fallback(topic, category), true
	}
	set, err := e.generator.GenerateSet(ctx, topic, category)
	if err == nil && set.Distinct() {
		return *set, false
	}
	return quizgen.Fallback(topic, category), true
}

// explain fetches an explanation for a wrong choice, synthesizing a
// deterministic one when the generator fails. Total.
func (e *Engine) explain(ctx context.Context, wrong, correct string, category taxonomy.ErrorCategory) string {
	if e.generator == nil {
		return quizgen.FallbackExplanation(wrong, correct, category)
	}
	text, err := e.generator.Explain(ctx, wrong, correct, category)
	if err != nil {
		return quizgen.FallbackExplanation(wrong, correct, category)
	}
	return text
}

func (e *Engine) logRound(ctx context.Context, sessionID string, round *Round) {
	if e.events == nil {
		return
	}
	source := "generator"
	if round.FromFallback {
		source = "fallback"
	}
	err := e.events.AppendRound(ctx, store.RoundEventData{
		SessionID: sessionID,
		Topic:     round.Topic.ID,
		Category:  round.Category.ID,
		Source:    source,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log round event: %v\n", err)
	}
}

func (e *Engine) logAnswer(ctx context.Context, sessionID string, round *Round, chosenIndex int, correct bool) {
	if e.events == nil {
		return
	}
	err := e.events.AppendAnswer(ctx, store.AnswerEventData{
		SessionID:   sessionID,
		Topic:       round.Topic.ID,
		Category:    round.Category.ID,
		ChosenIndex: chosenIndex,
		Correct:     correct,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log answer event: %v\n", err)
	}
}

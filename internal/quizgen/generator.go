package quizgen

import (
	"context"

	"github.com/ayaka/kotoba/internal/taxonomy"
)

// Generator produces grammar practice sentences for a topic and error
// category, and explanations for wrong choices.
type Generator interface {
	// GenerateSet produces one correct sentence and two flawed variants.
	// Returns ErrGenerationFailed (wrapped) on any transport, parse, or
	// validation failure; callers substitute the fallback bank. There is
	// no partial success: the set is either fully valid or absent.
	GenerateSet(ctx context.Context, topic taxonomy.Topic, cat taxonomy.ErrorCategory) (*SentenceSet, error)

	// Explain describes why wrong is incorrect and correct is not,
	// in terms of the given error category. Returns ErrGenerationFailed
	// (wrapped) on failure; callers substitute FallbackExplanation.
	Explain(ctx context.Context, wrong, correct string, cat taxonomy.ErrorCategory) (string, error)
}

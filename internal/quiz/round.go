package quiz

import "github.com/ayaka/kotoba/internal/taxonomy"

// OptionCount is the fixed number of candidate sentences per round.
const OptionCount = 3

// Round is the state of one quiz turn. Rounds are immutable once built;
// advancing a session replaces its Round rather than mutating it.
type Round struct {
	// Topic and Category the sentences were generated for.
	Topic    taxonomy.Topic
	Category taxonomy.ErrorCategory

	// Options are the shuffled candidate sentences.
	Options [OptionCount]string

	// CorrectIndex is the position of the correct sentence in Options.
	CorrectIndex int

	// UserText is the learner message that triggered this round. It
	// seeds topic selection for the following round.
	UserText string

	// FromFallback records whether the sentences came from the template
	// bank rather than the generator.
	FromFallback bool
}

// Session holds the current round for one caller-identified conversation.
type Session struct {
	ID string

	// Persona is the presentation character label chosen at first
	// contact. Not used by the engine itself.
	Persona string

	// Round is the current round. Nil only before the first round is
	// built, which callers never observe.
	Round *Round
}

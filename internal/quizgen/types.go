package quizgen

// SentenceSet is one round's worth of candidate sentences before
// shuffling: the unique grammatically correct variant plus exactly two
// flawed variants built around the same topic and error category.
type SentenceSet struct {
	// Correct is the grammatically correct sentence.
	Correct string

	// Flawed holds the two sentences that each contain the target
	// grammar mistake.
	Flawed [2]string
}

// Distinct reports whether the three sentences are pairwise distinct.
// Duplicate sentences would make a round unanswerable, so callers must
// discard any set that fails this check.
func (s SentenceSet) Distinct() bool {
	return s.Correct != s.Flawed[0] &&
		s.Correct != s.Flawed[1] &&
		s.Flawed[0] != s.Flawed[1]
}

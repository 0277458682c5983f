package quiz

import (
	"math/rand/v2"

	"github.com/ayaka/kotoba/internal/quizgen"
)

// buildOptions shuffles the correct sentence and the two flawed ones
// into a fixed-size option list and returns the post-shuffle index of
// the correct sentence. The index is found by value match against the
// known correct string, not by tracking positions through the shuffle.
//
// Precondition: the three sentences are pairwise distinct. The engine
// checks SentenceSet.Distinct before calling and routes duplicates to
// the fallback bank.
func buildOptions(set quizgen.SentenceSet) (options [OptionCount]string, correctIndex int) {
	options = [OptionCount]string{set.Correct, set.Flawed[0], set.Flawed[1]}

	rand.Shuffle(OptionCount, func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	for i, opt := range options {
		if opt == set.Correct {
			return options, i
		}
	}
	// Unreachable: the correct sentence is always one of the three.
	return options, 0
}

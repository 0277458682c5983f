package quizgen

import (
	"fmt"

	"github.com/ayaka/kotoba/internal/taxonomy"
)

// fallbackSets holds the curated template triples, indexed by topic ID.
// One triple per topic so repeated calls with the same arguments return
// the same sentences.
var fallbackSets = map[string]SentenceSet{
	"school": {
		Correct: "I study English at school every day.",
		Flawed: [2]string{
			"I studying English at school every day.",
			"I studies English at school every day.",
		},
	},
	"daily-life": {
		Correct: "I usually wake up at 7 o'clock in the morning.",
		Flawed: [2]string{
			"I usual wake up at 7 o'clock in the morning.",
			"I usually waking up at 7 o'clock in the morning.",
		},
	},
	"travel": {
		Correct: "I went to Japan last summer.",
		Flawed: [2]string{
			"I go to Japan last summer.",
			"I have been to Japan last summer.",
		},
	},
	"movies": {
		Correct: "The movie was directed by a famous director.",
		Flawed: [2]string{
			"The movie was direct by a famous director.",
			"The movie directed by a famous director.",
		},
	},
	"music": {
		Correct: "I enjoy listening to classical music.",
		Flawed: [2]string{
			"I enjoy to listen to classical music.",
			"I enjoy listen to classical music.",
		},
	},
	"food": {
		Correct: "She cooks dinner for her family every evening.",
		Flawed: [2]string{
			"She cook dinner for her family every evening.",
			"She cooking dinner for her family every evening.",
		},
	},
	"sports": {
		Correct: "He plays basketball better than his brother.",
		Flawed: [2]string{
			"He plays basketball more better than his brother.",
			"He play basketball better than his brother.",
		},
	},
	"technology": {
		Correct: "My new phone is much faster than the old one.",
		Flawed: [2]string{
			"My new phone is much more faster than the old one.",
			"My new phone are much faster than the old one.",
		},
	},
	"reading": {
		Correct: "I have read three books this month.",
		Flawed: [2]string{
			"I have readed three books this month.",
			"I has read three books this month.",
		},
	},
}

// defaultFallbackSet is the terminal fallback used when a topic has no
// curated templates.
var defaultFallbackSet = SentenceSet{
	Correct: "This sentence is grammatically correct.",
	Flawed: [2]string{
		"This sentence have a grammar error.",
		"This sentence containing a grammar error.",
	},
}

// Fallback returns a deterministic sentence set for the topic. It is
// total: topics without curated templates get the generic default, so
// the caller always receives a usable triple regardless of the error
// category requested.
func Fallback(topic taxonomy.Topic, _ taxonomy.ErrorCategory) SentenceSet {
	if set, ok := fallbackSets[topic.ID]; ok {
		return set
	}
	return defaultFallbackSet
}

// FallbackExplanation builds a deterministic explanation for a wrong
// choice, used when the generator cannot supply one. Always succeeds.
func FallbackExplanation(wrong, correct string, cat taxonomy.ErrorCategory) string {
	return fmt.Sprintf(
		"Grammar error: %q contains a %s. The correct expression is %q.",
		wrong, cat.Name, correct,
	)
}

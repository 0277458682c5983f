package quiz

import (
	"math/rand/v2"

	"github.com/ayaka/kotoba/internal/taxonomy"
)

// nextTopic picks the topic for the next round. A keyword found in the
// learner's text wins if it names a different topic than the current
// one; otherwise a random topic excluding the current one is chosen.
func nextTopic(current taxonomy.Topic, userText string) taxonomy.Topic {
	if t, ok := taxonomy.TopicFromText(userText); ok && t.ID != current.ID {
		return t
	}

	candidates := make([]taxonomy.Topic, 0, len(taxonomy.Topics()))
	for _, t := range taxonomy.Topics() {
		if t.ID != current.ID {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		// Single-topic catalog: repetition is permitted.
		return current
	}
	return candidates[rand.IntN(len(candidates))]
}

// nextCategory picks a random error category excluding the current one.
// The previous round's category is always excluded, also after a wrong
// answer.
func nextCategory(current taxonomy.ErrorCategory) taxonomy.ErrorCategory {
	candidates := make([]taxonomy.ErrorCategory, 0, len(taxonomy.Categories()))
	for _, c := range taxonomy.Categories() {
		if c.ID != current.ID {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return current
	}
	return candidates[rand.IntN(len(candidates))]
}

// randomTopic picks the initial topic for a brand-new session.
func randomTopic() taxonomy.Topic {
	all := taxonomy.Topics()
	return all[rand.IntN(len(all))]
}

// randomCategory picks the initial error category for a brand-new session.
func randomCategory() taxonomy.ErrorCategory {
	all := taxonomy.Categories()
	return all[rand.IntN(len(all))]
}

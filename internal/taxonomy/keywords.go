package taxonomy

import "strings"

// keywordEntry maps a keyword found in learner text to a topic ID.
// Entries are matched in declaration order; the first hit wins.
type keywordEntry struct {
	keyword string
	topicID string
}

var keywordTable = []keywordEntry{
	{"school", "school"},
	{"class", "school"},
	{"teacher", "school"},
	{"study", "school"},
	{"daily", "daily-life"},
	{"life", "daily-life"},
	{"travel", "travel"},
	{"trip", "travel"},
	{"movie", "movies"},
	{"music", "music"},
	{"food", "food"},
	{"cook", "food"},
	{"sport", "sports"},
	{"tech", "technology"},
	{"computer", "technology"},
	{"phone", "technology"},
	{"environment", "environment"},
	{"job", "career"},
	{"work", "career"},
	{"anime", "anime"},
	{"game", "gaming"},
	{"book", "reading"},
	{"fashion", "fashion"},
	{"health", "health"},
}

// TopicFromText scans learner free text for a topic keyword.
// Matching is a case-insensitive substring check against the keyword
// table in declaration order. Returns (Topic{}, false) when no keyword
// is present.
func TopicFromText(text string) (Topic, bool) {
	lower := strings.ToLower(text)
	for _, e := range keywordTable {
		if strings.Contains(lower, e.keyword) {
			return topicByID[e.topicID], true
		}
	}
	return Topic{}, false
}

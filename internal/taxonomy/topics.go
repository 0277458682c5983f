package taxonomy

// Topic is a conversation topic that grammar practice sentences are
// generated around. The catalog is fixed at process start.
type Topic struct {
	// ID is the stable identifier used in session state and event logs.
	ID string

	// Name is the human-readable label shown to the learner.
	Name string
}

// topics is the full topic catalog, in declaration order.
var topics = []Topic{
	{ID: "school", Name: "school life"},
	{ID: "daily-life", Name: "daily activities"},
	{ID: "travel", Name: "travel experiences"},
	{ID: "movies", Name: "movie reviews"},
	{ID: "music", Name: "music hobbies"},
	{ID: "food", Name: "food and cooking"},
	{ID: "sports", Name: "sports"},
	{ID: "technology", Name: "technology"},
	{ID: "environment", Name: "environmental protection"},
	{ID: "career", Name: "career planning"},
	{ID: "anime", Name: "anime and manga"},
	{ID: "gaming", Name: "video games"},
	{ID: "reading", Name: "books and reading"},
	{ID: "fashion", Name: "fashion trends"},
	{ID: "health", Name: "healthy living"},
}

var topicByID = func() map[string]Topic {
	m := make(map[string]Topic, len(topics))
	for _, t := range topics {
		m[t.ID] = t
	}
	return m
}()

// Topics returns the full topic catalog in declaration order.
// The returned slice is a copy and safe to modify.
func Topics() []Topic {
	out := make([]Topic, len(topics))
	copy(out, topics)
	return out
}

// TopicByID looks up a topic by its identifier.
func TopicByID(id string) (Topic, bool) {
	t, ok := topicByID[id]
	return t, ok
}

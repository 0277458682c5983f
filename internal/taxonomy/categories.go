package taxonomy

// ErrorCategory is a class of grammar mistake that flawed practice
// sentences are built around. The catalog is fixed at process start.
type ErrorCategory struct {
	// ID is the stable identifier used in session state and event logs.
	ID string

	// Name is the label used in prompts and explanations,
	// e.g. "tense error", "subject-verb agreement".
	Name string
}

// categories is the full error-category catalog, in declaration order.
var categories = []ErrorCategory{
	{ID: "tense", Name: "tense error"},
	{ID: "agreement", Name: "subject-verb agreement"},
	{ID: "article", Name: "article usage"},
	{ID: "preposition", Name: "preposition usage"},
	{ID: "comparative", Name: "comparative form"},
	{ID: "modal", Name: "modal verb usage"},
	{ID: "infinitive", Name: "infinitive form"},
	{ID: "passive", Name: "passive voice"},
	{ID: "conditional", Name: "conditional clause"},
	{ID: "pronoun", Name: "pronoun usage"},
	{ID: "gerund", Name: "gerund form"},
	{ID: "quantifier", Name: "quantifier usage"},
	{ID: "adjective-adverb", Name: "adjective vs adverb"},
	{ID: "conjunction", Name: "conjunction usage"},
	{ID: "plural", Name: "singular vs plural"},
}

var categoryByID = func() map[string]ErrorCategory {
	m := make(map[string]ErrorCategory, len(categories))
	for _, c := range categories {
		m[c.ID] = c
	}
	return m
}()

// Categories returns the full error-category catalog in declaration order.
// The returned slice is a copy and safe to modify.
func Categories() []ErrorCategory {
	out := make([]ErrorCategory, len(categories))
	copy(out, categories)
	return out
}

// CategoryByID looks up an error category by its identifier.
func CategoryByID(id string) (ErrorCategory, bool) {
	c, ok := categoryByID[id]
	return c, ok
}

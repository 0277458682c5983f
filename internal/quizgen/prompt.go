package quizgen

import (
	"fmt"
	"strings"

	"github.com/ayaka/kotoba/internal/taxonomy"
)

const systemPrompt = `You are a professional English teacher who creates grammar practice exercises for learners.

Rules:
- Sentences must be natural, everyday English at an intermediate level.
- Flawed sentences must each contain exactly the requested kind of mistake and no other mistakes.
- All three sentences must relate to the given topic and be similar in length.
- Never repeat the same sentence twice.`

// buildSetMessage constructs the user message asking for one correct
// sentence and two flawed variants.
func buildSetMessage(topic taxonomy.Topic, cat taxonomy.ErrorCategory) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a grammar multiple-choice exercise about %q.\n", topic.Name)
	fmt.Fprintf(&b, "Target mistake: %s.\n\n", cat.Name)
	b.WriteString("Produce three sentences: one grammatically correct sentence and two\n")
	fmt.Fprintf(&b, "sentences that each contain a %s mistake.\n\n", cat.Name)
	b.WriteString("Return ONLY a JSON object in exactly this format:\n")
	b.WriteString(`{"correct": "the correct sentence", "error1": "first flawed sentence", "error2": "second flawed sentence", "explanation": "why the correct sentence is right"}`)
	b.WriteString("\nDo not include any other text.")

	return b.String()
}

// buildExplainMessage constructs the user message asking why a chosen
// sentence is wrong.
func buildExplainMessage(wrong, correct string, cat taxonomy.ErrorCategory) string {
	var b strings.Builder

	b.WriteString("Analyze the grammar mistake in the following sentence and explain it.\n\n")
	fmt.Fprintf(&b, "Wrong sentence: %q\n", wrong)
	fmt.Fprintf(&b, "Correct sentence: %q\n", correct)
	fmt.Fprintf(&b, "Mistake type: %s\n\n", cat.Name)
	b.WriteString("Explain what is wrong in the wrong sentence and why the correct\n")
	b.WriteString("sentence is right. Keep it clear and short, suitable for an English\n")
	b.WriteString("learner. Return only the explanation text.")

	return b.String()
}

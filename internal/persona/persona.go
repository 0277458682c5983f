// Package persona holds the presentation characters a learner chats
// with. Personas only color the reply text around a round; they never
// influence topic or sentence selection.
package persona

import "math/rand/v2"

// Character is one selectable chat persona.
type Character struct {
	// ID is the stable identifier clients send when opening a session.
	ID string

	// Name is the display name.
	Name string

	// Tagline is a short self-description shown on the character list.
	Tagline string

	// Greeting opens a brand-new conversation.
	Greeting string

	// CorrectLines are reactions to a right answer, picked at random.
	CorrectLines []string

	// IncorrectLines are reactions to a wrong answer, picked at random.
	IncorrectLines []string

	// Prompt introduces the next set of options.
	Prompt string
}

var characters = []Character{
	{
		ID:      "mia",
		Name:    "Mia",
		Tagline: "a cheerful study buddy who celebrates every win",
		Greeting: "Hi! I'm Mia. Let's practice some English together. " +
			"Pick the sentence you think is correct!",
		CorrectLines: []string{
			"Yes! That's exactly right!",
			"Perfect! You nailed it!",
			"Great job, that's the correct one!",
		},
		IncorrectLines: []string{
			"Oops, not quite. Let me explain.",
			"Almost! Here's what went wrong.",
		},
		Prompt: "Ready for the next one? Which sentence is correct?",
	},
	{
		ID:      "rin",
		Name:    "Rin",
		Tagline: "a sharp-tongued rival who secretly wants you to win",
		Greeting: "Hmph, so you want to practice with me? Fine. " +
			"Don't pick the wrong sentence, okay?",
		CorrectLines: []string{
			"W-well, obviously that's correct. Anyone could see that.",
			"Correct. Don't let it go to your head.",
		},
		IncorrectLines: []string{
			"Wrong! Honestly, pay attention. Here's why.",
			"No no no. Listen carefully this time.",
		},
		Prompt: "Next question. Try not to embarrass yourself.",
	},
	{
		ID:      "professor",
		Name:    "Professor Okada",
		Tagline: "a patient grammarian with a fondness for detail",
		Greeting: "Welcome. We shall examine some sentences together. " +
			"Please select the grammatically correct one.",
		CorrectLines: []string{
			"Correct. Your analysis was sound.",
			"Precisely right. Well reasoned.",
		},
		IncorrectLines: []string{
			"Not quite. Observe the following.",
			"Incorrect, though a common mistake. Consider this.",
		},
		Prompt: "Let us proceed to the next exercise.",
	},
	{
		ID:      "kota",
		Name:    "Kota",
		Tagline: "an energetic teammate who treats grammar like a sport",
		Greeting: "Hey hey! Grammar training time! " +
			"Spot the correct sentence and let's GO!",
		CorrectLines: []string{
			"GOAL! That's the one!",
			"Boom! Correct! You're on fire!",
		},
		IncorrectLines: []string{
			"Ahh, swing and a miss! Check this out.",
			"So close! Here's the play-by-play.",
		},
		Prompt: "Next round! Eyes on the sentences!",
	},
	{
		ID:      "yuki",
		Name:    "Yuki",
		Tagline: "a soft-spoken friend who practices alongside you",
		Greeting: "Um, hi... I'm Yuki. Maybe we could practice together? " +
			"Which sentence looks correct to you?",
		CorrectLines: []string{
			"Oh... you got it right. That's really good.",
			"Yes, that's the one. I thought so too.",
		},
		IncorrectLines: []string{
			"Ah, um, that one had a mistake... here, look.",
			"It's okay, I get that wrong too. Let me show you.",
		},
		Prompt: "Shall we... try the next one?",
	},
}

var characterByID = func() map[string]Character {
	m := make(map[string]Character, len(characters))
	for _, c := range characters {
		m[c.ID] = c
	}
	return m
}()

// Characters returns the full catalog in declaration order.
// The returned slice is a copy and safe to modify.
func Characters() []Character {
	out := make([]Character, len(characters))
	copy(out, characters)
	return out
}

// ByID looks up a character, falling back to the default when the ID
// is unknown or empty.
func ByID(id string) Character {
	if c, ok := characterByID[id]; ok {
		return c
	}
	return characters[0]
}

// CorrectReply picks a reaction line for a right answer.
func (c Character) CorrectReply() string {
	return c.CorrectLines[rand.IntN(len(c.CorrectLines))]
}

// IncorrectReply picks a reaction line for a wrong answer.
func (c Character) IncorrectReply() string {
	return c.IncorrectLines[rand.IntN(len(c.IncorrectLines))]
}

package quiz

import (
	"testing"

	"github.com/ayaka/kotoba/internal/quizgen"
)

func TestBuildOptions(t *testing.T) {
	set := quizgen.SentenceSet{
		Correct: "She goes home.",
		Flawed:  [2]string{"She go home.", "She going home."},
	}

	for i := 0; i < 200; i++ {
		options, correctIndex := buildOptions(set)

		if correctIndex < 0 || correctIndex >= OptionCount {
			t.Fatalf("correct index %d out of range", correctIndex)
		}
		if options[correctIndex] != set.Correct {
			t.Fatalf("options[%d] = %q, want %q", correctIndex, options[correctIndex], set.Correct)
		}

		seen := make(map[string]bool, OptionCount)
		for _, opt := range options {
			if seen[opt] {
				t.Fatalf("duplicate option %q", opt)
			}
			seen[opt] = true
		}
		for _, want := range []string{set.Correct, set.Flawed[0], set.Flawed[1]} {
			if !seen[want] {
				t.Fatalf("missing sentence %q in options", want)
			}
		}
	}
}

func TestBuildOptions_ShufflesPositions(t *testing.T) {
	set := quizgen.SentenceSet{
		Correct: "a",
		Flawed:  [2]string{"b", "c"},
	}

	positions := make(map[int]bool)
	for i := 0; i < 500; i++ {
		_, correctIndex := buildOptions(set)
		positions[correctIndex] = true
	}

	// With 500 uniform shuffles, every slot should have hosted the
	// correct sentence at least once.
	for i := 0; i < OptionCount; i++ {
		if !positions[i] {
			t.Errorf("correct sentence never landed at index %d", i)
		}
	}
}

package quizgen

import (
	"strings"
	"testing"

	"github.com/ayaka/kotoba/internal/taxonomy"
)

func TestFallback_TotalAndDistinct(t *testing.T) {
	for _, topic := range taxonomy.Topics() {
		for _, cat := range taxonomy.Categories() {
			set := Fallback(topic, cat)
			if set.Correct == "" || set.Flawed[0] == "" || set.Flawed[1] == "" {
				t.Fatalf("empty sentence for topic %q category %q", topic.ID, cat.ID)
			}
			if !set.Distinct() {
				t.Fatalf("duplicate sentences for topic %q category %q", topic.ID, cat.ID)
			}
		}
	}
}

func TestFallback_Deterministic(t *testing.T) {
	topic, _ := taxonomy.TopicByID("travel")
	cat, _ := taxonomy.CategoryByID("tense")

	first := Fallback(topic, cat)
	second := Fallback(topic, cat)
	if first != second {
		t.Errorf("fallback not deterministic: %+v vs %+v", first, second)
	}
}

func TestFallback_UnknownTopicUsesDefault(t *testing.T) {
	cat, _ := taxonomy.CategoryByID("tense")
	set := Fallback(taxonomy.Topic{ID: "unknown", Name: "unknown"}, cat)
	if set != defaultFallbackSet {
		t.Errorf("expected default set for unknown topic, got %+v", set)
	}
}

func TestFallbackExplanation(t *testing.T) {
	cat, _ := taxonomy.CategoryByID("agreement")
	got := FallbackExplanation("She go home.", "She goes home.", cat)

	if got == "" {
		t.Fatal("expected non-empty explanation")
	}
	for _, want := range []string{"She go home.", "She goes home.", cat.Name} {
		if !strings.Contains(got, want) {
			t.Errorf("explanation missing %q: %s", want, got)
		}
	}
}

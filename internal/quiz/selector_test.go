package quiz

import (
	"testing"

	"github.com/ayaka/kotoba/internal/taxonomy"
)

func TestNextTopic_KeywordOverride(t *testing.T) {
	travel, _ := taxonomy.TopicByID("travel")

	got := nextTopic(travel, "I love cooking")
	if got.ID != "food" {
		t.Errorf("expected keyword to pick food, got %q", got.ID)
	}
}

func TestNextTopic_KeywordMatchesCurrent(t *testing.T) {
	food, _ := taxonomy.TopicByID("food")

	// The keyword resolves to the current topic, so a random different
	// one must be chosen instead.
	for i := 0; i < 100; i++ {
		got := nextTopic(food, "I love cooking")
		if got.ID == "food" {
			t.Fatalf("round %d: topic repeated despite alternatives", i)
		}
	}
}

func TestNextTopic_NoKeyword(t *testing.T) {
	travel, _ := taxonomy.TopicByID("travel")

	for i := 0; i < 100; i++ {
		got := nextTopic(travel, "zzz nothing matches")
		if got.ID == "travel" {
			t.Fatalf("round %d: topic repeated despite alternatives", i)
		}
	}
}

func TestAntiRepeat(t *testing.T) {
	topic := randomTopic()
	category := randomCategory()

	for i := 0; i < 1000; i++ {
		nt := nextTopic(topic, "")
		nc := nextCategory(category)

		if nt.ID == topic.ID {
			t.Fatalf("round %d: topic %q repeated", i, nt.ID)
		}
		if nc.ID == category.ID {
			t.Fatalf("round %d: category %q repeated", i, nc.ID)
		}

		topic, category = nt, nc
	}
}

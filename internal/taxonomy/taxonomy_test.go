package taxonomy

import "testing"

func TestTopics_Catalog(t *testing.T) {
	all := Topics()
	if len(all) != 15 {
		t.Fatalf("expected 15 topics, got %d", len(all))
	}

	seen := make(map[string]bool)
	for _, topic := range all {
		if topic.ID == "" || topic.Name == "" {
			t.Errorf("topic with empty ID or name: %+v", topic)
		}
		if seen[topic.ID] {
			t.Errorf("duplicate topic ID %q", topic.ID)
		}
		seen[topic.ID] = true
	}
}

func TestCategories_Catalog(t *testing.T) {
	all := Categories()
	if len(all) != 15 {
		t.Fatalf("expected 15 categories, got %d", len(all))
	}

	seen := make(map[string]bool)
	for _, cat := range all {
		if cat.ID == "" || cat.Name == "" {
			t.Errorf("category with empty ID or name: %+v", cat)
		}
		if seen[cat.ID] {
			t.Errorf("duplicate category ID %q", cat.ID)
		}
		seen[cat.ID] = true
	}
}

func TestTopicByID(t *testing.T) {
	topic, ok := TopicByID("travel")
	if !ok {
		t.Fatal("expected travel topic to exist")
	}
	if topic.ID != "travel" {
		t.Errorf("expected ID travel, got %q", topic.ID)
	}

	if _, ok := TopicByID("nope"); ok {
		t.Error("expected lookup miss for unknown ID")
	}
}

func TestCategoryByID(t *testing.T) {
	cat, ok := CategoryByID("tense")
	if !ok {
		t.Fatal("expected tense category to exist")
	}
	if cat.ID != "tense" {
		t.Errorf("expected ID tense, got %q", cat.ID)
	}

	if _, ok := CategoryByID("nope"); ok {
		t.Error("expected lookup miss for unknown ID")
	}
}

func TestTopics_ReturnsCopy(t *testing.T) {
	all := Topics()
	all[0].ID = "mutated"

	fresh := Topics()
	if fresh[0].ID == "mutated" {
		t.Error("Topics() must return a copy")
	}
}

func TestTopicFromText(t *testing.T) {
	tests := []struct {
		text    string
		topicID string
		found   bool
	}{
		{"I love cooking", "food", true},
		{"I LOVE COOKING", "food", true},
		{"my teacher said so", "school", true},
		{"we went on a trip", "travel", true},
		{"just watched a great movie", "movies", true},
		{"my phone broke again", "technology", true},
		{"looking for a new job", "career", true},
		{"zzz nothing here", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		topic, found := TopicFromText(tt.text)
		if found != tt.found {
			t.Errorf("TopicFromText(%q): found=%v, want %v", tt.text, found, tt.found)
			continue
		}
		if found && topic.ID != tt.topicID {
			t.Errorf("TopicFromText(%q): got topic %q, want %q", tt.text, topic.ID, tt.topicID)
		}
	}
}

func TestTopicFromText_FirstMatchWins(t *testing.T) {
	// "school" precedes "trip" in the keyword table, so a text with
	// both keywords resolves to school.
	topic, found := TopicFromText("our school trip")
	if !found {
		t.Fatal("expected a match")
	}
	if topic.ID != "school" {
		t.Errorf("expected school (declaration order), got %q", topic.ID)
	}
}

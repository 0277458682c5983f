package persona

import "testing"

func TestCharacters_Catalog(t *testing.T) {
	all := Characters()
	if len(all) != 5 {
		t.Fatalf("expected 5 characters, got %d", len(all))
	}

	seen := make(map[string]bool)
	for _, c := range all {
		if c.ID == "" || c.Name == "" || c.Greeting == "" || c.Prompt == "" {
			t.Errorf("character %q has empty fields", c.ID)
		}
		if len(c.CorrectLines) == 0 || len(c.IncorrectLines) == 0 {
			t.Errorf("character %q has no reaction lines", c.ID)
		}
		if seen[c.ID] {
			t.Errorf("duplicate character ID %q", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestByID(t *testing.T) {
	c := ByID("rin")
	if c.ID != "rin" {
		t.Errorf("expected rin, got %q", c.ID)
	}

	// Unknown and empty IDs fall back to the default character.
	def := Characters()[0]
	if got := ByID("nope"); got.ID != def.ID {
		t.Errorf("expected default %q for unknown ID, got %q", def.ID, got.ID)
	}
	if got := ByID(""); got.ID != def.ID {
		t.Errorf("expected default %q for empty ID, got %q", def.ID, got.ID)
	}
}

func TestReplies(t *testing.T) {
	c := ByID("mia")

	inSet := func(line string, set []string) bool {
		for _, s := range set {
			if s == line {
				return true
			}
		}
		return false
	}

	for i := 0; i < 20; i++ {
		if line := c.CorrectReply(); !inSet(line, c.CorrectLines) {
			t.Fatalf("unexpected correct reply %q", line)
		}
		if line := c.IncorrectReply(); !inSet(line, c.IncorrectLines) {
			t.Fatalf("unexpected incorrect reply %q", line)
		}
	}
}

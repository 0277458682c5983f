package quizgen

import "testing"

func TestExtractJSONFragment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{
			name: "bare object",
			text: `{"correct": "a"}`,
			want: `{"correct": "a"}`,
			ok:   true,
		},
		{
			name: "wrapped in prose",
			text: `Sure! Here is your exercise: {"correct": "a"} Hope it helps!`,
			want: `{"correct": "a"}`,
			ok:   true,
		},
		{
			name: "code fence",
			text: "```json\n{\"correct\": \"a\"}\n```",
			want: `{"correct": "a"}`,
			ok:   true,
		},
		{
			name: "braces inside string",
			text: `{"correct": "use {curly} braces"}`,
			want: `{"correct": "use {curly} braces"}`,
			ok:   true,
		},
		{
			name: "escaped quote inside string",
			text: `{"correct": "she said \"hi\""} trailing`,
			want: `{"correct": "she said \"hi\""}`,
			ok:   true,
		},
		{
			name: "nested object",
			text: `{"a": {"b": 1}, "c": 2} extra`,
			want: `{"a": {"b": 1}, "c": 2}`,
			ok:   true,
		},
		{
			name: "first of two objects",
			text: `{"a": 1} {"b": 2}`,
			want: `{"a": 1}`,
			ok:   true,
		},
		{
			name: "no object",
			text: "sorry, I cannot do that",
			ok:   false,
		},
		{
			name: "unterminated object",
			text: `{"correct": "a"`,
			ok:   false,
		},
		{
			name: "empty input",
			text: "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSONFragment(tt.text)
			if tt.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("got %q, want %q", got, tt.want)
				}
				return
			}
			if err == nil {
				t.Errorf("expected error, got %q", got)
			}
		})
	}
}

func TestValidateFragment(t *testing.T) {
	valid := `{"correct": "a", "error1": "b", "error2": "c"}`
	obj, err := validateFragment(valid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj["correct"] != "a" {
		t.Errorf("expected correct=a, got %v", obj["correct"])
	}

	// Missing field, empty string, wrong type, not an object, invalid JSON.
	bad := []string{
		`{"correct": "a", "error1": "b"}`,
		`{"correct": "", "error1": "b", "error2": "c"}`,
		`{"correct": 1, "error1": "b", "error2": "c"}`,
		`["a", "b", "c"]`,
		`{"correct": "a", "error1": "b", "error2":`,
	}
	for _, fragment := range bad {
		if _, err := validateFragment(fragment); err == nil {
			t.Errorf("expected validation failure for %s", fragment)
		}
	}
}

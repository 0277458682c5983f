package quizgen

import (
	"errors"
	"strings"
)

var errNoFragment = errors.New("no balanced JSON object in response")

// extractJSONFragment locates the first balanced JSON object embedded
// in free text. Models asked for "only JSON" still tend to wrap the
// object in prose or code fences, so the scan starts at the first '{'
// and tracks brace depth until it closes, ignoring braces inside string
// literals and their escapes.
func extractJSONFragment(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", errNoFragment
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", errNoFragment
}

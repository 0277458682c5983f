package quizgen

import "time"

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxAttempts is how many times a failed external call is tried
	// before ErrGenerationFailed is surfaced.
	MaxAttempts int

	// RetryDelay is the fixed wait between attempts.
	RetryDelay time.Duration

	// Timeout bounds each individual attempt.
	Timeout time.Duration

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		RetryDelay:  2 * time.Second,
		Timeout:     5 * time.Second,
		MaxTokens:   512,
		Temperature: 0.7,
	}
}

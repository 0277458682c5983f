package quizgen

import "errors"

// ErrGenerationFailed indicates the external generator could not
// produce a usable result: transport failure, timeout, missing or
// unbalanced JSON fragment, or schema validation failure. All causes
// are deliberately collapsed into this one sentinel; the session engine
// reacts the same way to each (use the fallback bank) and must never
// see a raw provider error.
var ErrGenerationFailed = errors.New("sentence generation failed")

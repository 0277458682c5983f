package quizgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// sentenceSetDefinition is the JSON Schema the extracted fragment must
// satisfy. The keys mirror what the generation prompt asks for; the
// explanation is requested but optional since the engine fetches
// explanations separately when grading.
var sentenceSetDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"correct": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"error1": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"error2": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"explanation": map[string]any{
			"type": "string",
		},
	},
	"required": []any{"correct", "error1", "error2"},
}

var (
	sentenceSetSchemaOnce sync.Once
	sentenceSetSchema     *jsonschema.Schema
	sentenceSetSchemaErr  error
)

// compiledSentenceSetSchema compiles the sentence-set schema once.
func compiledSentenceSetSchema() (*jsonschema.Schema, error) {
	sentenceSetSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any).
		defBytes, err := json.Marshal(sentenceSetDefinition)
		if err != nil {
			sentenceSetSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			sentenceSetSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://sentence-set.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			sentenceSetSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		sentenceSetSchema, sentenceSetSchemaErr = c.Compile(schemaURL)
	})
	return sentenceSetSchema, sentenceSetSchemaErr
}

// validateFragment parses the extracted fragment and checks it against
// the sentence-set schema.
func validateFragment(fragment string) (map[string]any, error) {
	var parsed any
	if err := json.Unmarshal([]byte(fragment), &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledSentenceSetSchema()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("fragment is not a JSON object")
	}
	return obj, nil
}

package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://learncode-catalog.json"

var nonEmptyString = map[string]any{"type": "string", "minLength": 1}

// fileSchema describes the catalog document. Structural rules that span
// fields (unique IDs, answer index range) live in validateFile.
var fileSchema = map[string]any{
	"type":     "object",
	"required": []any{"version", "courses"},
	"properties": map[string]any{
		"version": nonEmptyString,
		"courses": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "title", "difficulty", "track", "lessons"},
				"properties": map[string]any{
					"id":            nonEmptyString,
					"title":         nonEmptyString,
					"description":   map[string]any{"type": "string"},
					"icon":          map[string]any{"type": "string"},
					"estimatedTime": map[string]any{"type": "string"},
					"cheatSheet":    map[string]any{"type": "string"},
					"difficulty": map[string]any{
						"type": "string",
						"enum": []any{"Beginner", "Intermediate", "Advanced"},
					},
					"track": map[string]any{
						"type": "string",
						"enum": []any{"javascript", "python", "markup"},
					},
					"lessons": map[string]any{
						"type":  "array",
						"items": lessonSchema,
					},
				},
			},
		},
		"resources": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "title", "content"},
				"properties": map[string]any{
					"id":          nonEmptyString,
					"title":       nonEmptyString,
					"description": map[string]any{"type": "string"},
					"category":    map[string]any{"type": "string"},
					"type":        map[string]any{"type": "string", "enum": []any{"reference", "guide"}},
					"content":     map[string]any{"type": "string"},
				},
			},
		},
	},
}

var lessonSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "title", "content"},
	"properties": map[string]any{
		"id":          nonEmptyString,
		"title":       nonEmptyString,
		"content":     map[string]any{"type": "string"},
		"codeExample": map[string]any{"type": "string"},
		"exercise": map[string]any{
			"type":     "object",
			"required": []any{"instructions", "starterCode", "solution"},
			"properties": map[string]any{
				"instructions": map[string]any{"type": "string"},
				"starterCode":  map[string]any{"type": "string"},
				"solution":     map[string]any{"type": "string"},
				"tests": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
		},
		"quiz": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"question", "options", "correctAnswer"},
				"properties": map[string]any{
					"question": nonEmptyString,
					"options": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"correctAnswer": map[string]any{"type": "integer", "minimum": 0},
					"explanation":   map[string]any{"type": "string"},
				},
			},
		},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles fileSchema once per process.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a plain decoded JSON value, not Go maps with
		// typed slices, so round-trip the definition.
		defBytes, err := json.Marshal(fileSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateSchema checks a decoded JSON document against the catalog schema.
func validateSchema(doc any) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

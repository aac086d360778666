package simulation

import "github.com/marqos/signmentor/internal/llm"

// ReactionSchema defines the JSON schema for simulated learner reactions.
var ReactionSchema = &llm.Schema{
	Name:        "student-reaction",
	Description: "A simulated sign-language student's reaction to one taught concept",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reaction": map[string]any{
				"type":        "string",
				"description": "First-person reaction of the student, 1-3 sentences, in character",
			},
			"comprehension": map[string]any{
				"type":        "number",
				"description": "How well the student understood the explanation, 0.0-1.0",
			},
			"confusion_points": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "0-3 specific aspects the student found unclear",
			},
		},
		"required":             []any{"reaction", "comprehension"},
		"additionalProperties": false,
	},
}

package quizgen

import "github.com/abhisek/quantiz/internal/llm"

// ItemSchema defines the JSON shape requested from the text generator.
// Providers with native structured output use it directly; the repairer
// still re-checks every field, since backend-declared types are untrusted.
var ItemSchema = &llm.Schema{
	Name:        "assessment-item",
	Description: "A single multiple-choice quantitative math question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question body. LaTeX math markup is allowed.",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 5 unique answer options",
			},
			"correct_index": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     4,
				"description": "Index of the correct option",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Step-by-step worked solution. LaTeX allowed.",
			},
		},
		"required":             []any{"question", "options", "correct_index", "explanation"},
		"additionalProperties": false,
	},
}

package curriculum

// courseSchema is the JSON Schema every content file must satisfy before
// the semantic checks in ValidateCourse run.
var courseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title": map[string]any{"type": "string", "minLength": 1},
		"lang":  map[string]any{"type": "string", "minLength": 2},
		"units": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "minLength": 1},
					"title": map[string]any{"type": "string", "minLength": 1},
					"lessons": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":     map[string]any{"type": "string", "minLength": 1},
								"title":  map[string]any{"type": "string", "minLength": 1},
								"locked": map[string]any{"type": "boolean"},
								"challenges": map[string]any{
									"type":     "array",
									"minItems": 1,
									"items": map[string]any{
										"type": "object",
										"properties": map[string]any{
											"id": map[string]any{"type": "string", "minLength": 1},
											"type": map[string]any{
												"type": "string",
												"enum": []any{"multiple_choice", "true_false", "fill_blank"},
											},
											"question":      map[string]any{"type": "string", "minLength": 1},
											"image":         map[string]any{"type": "string"},
											"correctAnswer": map[string]any{"type": "string", "minLength": 1},
											"explanation":   map[string]any{"type": "string"},
											"options": map[string]any{
												"type": "array",
												"items": map[string]any{
													"type": "object",
													"properties": map[string]any{
														"id":   map[string]any{"type": "string", "minLength": 1},
														"text": map[string]any{"type": "string", "minLength": 1},
													},
													"required":             []any{"id", "text"},
													"additionalProperties": false,
												},
											},
										},
										"required":             []any{"id", "type", "question", "correctAnswer"},
										"additionalProperties": false,
									},
								},
							},
							"required":             []any{"id", "title", "challenges"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "title", "lessons"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"title", "lang", "units"},
	"additionalProperties": false,
}

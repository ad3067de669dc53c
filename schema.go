package main

var addExpenseInputSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"cost": map[string]any{
			"type":        "string",
			"description": "Total cost of the expense as a decimal string (e.g. \"25.50\")",
			"pattern":     `^\d+(\.\d{1,2})?$`,
		},
		"description": map[string]any{
			"type":        "string",
			"description": "Description of the expense",
			"minLength":   1,
		},
		"group_id": map[string]any{
			"type":        "integer",
			"description": "Group to add the expense to; omit for a groupless expense",
		},
		"users": map[string]any{
			"type":        "array",
			"description": "Per-user shares. Each entry may carry user_id, paid_share and owed_share; shares are decimal strings.",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"user_id": map[string]any{
						"type":        "integer",
						"description": "Splitwise user id of the participant",
					},
					"paid_share": map[string]any{
						"type":        "string",
						"description": "Amount this user paid, as a decimal string",
					},
					"owed_share": map[string]any{
						"type":        "string",
						"description": "Amount this user owes, as a decimal string",
					},
				},
			},
		},
		"currency_code": map[string]any{
			"type":        "string",
			"description": "Currency code. If omitted, defaults to 'USD'.",
			"default":     "USD",
		},
		"date": map[string]any{
			"type":        "string",
			"description": "Date of the expense in YYYY-MM-DD format",
		},
		"details": map[string]any{
			"type":        "string",
			"description": "Additional details about the expense",
		},
		"payment": map[string]any{
			"type":        "boolean",
			"description": "True when this is a settlement payment rather than an expense",
			"default":     false,
		},
		"category_id": map[string]any{
			"type":        "integer",
			"description": "Category for the expense",
		},
	},
	"required": []any{"cost", "description"},
}

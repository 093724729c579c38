package extract

// BuildPayloadJSONSchema returns a JSON-Schema (draft 2020-12 subset) as
// a generic map. It constrains the collaborator's payload before we
// decode it; doc_type stays a free string here because classifier labels
// are canonicalized separately.
func BuildPayloadJSONSchema() map[string]any {
	props := map[string]any{
		"doc_type":        map[string]any{"type": "string", "minLength": 1},
		"confidence":      map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		"amount":          moneyProp(),
		"vat_amount":      moneyProp(),
		"contact_name":    map[string]any{"type": "string"},
		"document_date":   map[string]any{"type": "string"},
		"document_number": map[string]any{"type": "string"},
		"tax_id":          map[string]any{"type": "string"},
		"description":     map[string]any{"type": "string"},
	}
	required := []string{"doc_type", "confidence"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

// moneyProp accepts either a JSON number or the raw string the reader
// saw on the page ("฿1,070.00"); sanitizing happens in DecodePayload.
func moneyProp() map[string]any {
	return map[string]any{
		"anyOf": []any{
			map[string]any{"type": "number"},
			map[string]any{"type": "string"},
		},
	}
}

package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func itemSchema() *Schema {
	return &Schema{
		Name:        "test-item",
		Description: "A multiple-choice item",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 5,
					"maxItems": 5,
				},
				"correct_index": map[string]any{"type": "integer", "minimum": 0, "maximum": 4},
			},
			"required": []any{"question", "options", "correct_index"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"question":"What is $2+2$?","options":["3","4","5","6","7"],"correct_index":1}`)
	if err := validateResponse(itemSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"question":"What is $2+2$?"}`)
	err := validateResponse(itemSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required fields")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"question":"Q","options":["a","b","c","d","e"],"correct_index":"one"}`)
	err := validateResponse(itemSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongOptionCount(t *testing.T) {
	raw := json.RawMessage(`{"question":"Q","options":["a","b"],"correct_index":0}`)
	if err := validateResponse(itemSchema(), raw); err == nil {
		t.Fatal("expected error for too few options")
	}
}

func TestValidateResponse_IndexOutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"question":"Q","options":["a","b","c","d","e"],"correct_index":7}`)
	if err := validateResponse(itemSchema(), raw); err == nil {
		t.Fatal("expected error for out-of-range index")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(itemSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	if err := validateResponse(itemSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_SchemaCacheReuse(t *testing.T) {
	raw := json.RawMessage(`{"question":"Q","options":["a","b","c","d","e"],"correct_index":0}`)
	for range 3 {
		if err := validateResponse(itemSchema(), raw); err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
	}
}

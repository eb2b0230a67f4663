package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extractObject locates the structured object in raw model output by
// scanning from the first opening brace to the last closing brace. Models
// routinely wrap JSON in prose or code fences even when asked not to, and
// even when a native JSON output mode is in effect.
func extractObject(text string) (json.RawMessage, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, &ErrInvalidResponse{
			Content: json.RawMessage(text),
			Err:     fmt.Errorf("no JSON object found in model output"),
		}
	}
	return json.RawMessage(text[start : end+1]), nil
}

// finishContent converts raw model text into the Response content per the
// request: brace-scanned and schema-validated when a Schema was set,
// otherwise the text wrapped as a JSON string.
func finishContent(req Request, text string) (json.RawMessage, error) {
	if req.Schema == nil {
		wrapped, err := json.Marshal(text)
		if err != nil {
			return nil, fmt.Errorf("wrap text content: %w", err)
		}
		return wrapped, nil
	}

	content, err := extractObject(text)
	if err != nil {
		return nil, err
	}
	if err := validateResponse(req.Schema, content); err != nil {
		return nil, err
	}
	return content, nil
}

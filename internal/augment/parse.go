package augment

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseItems extracts the question array from a provider reply and splits
// it into raw per-item messages. The contract asks for the batch envelope
// object, but replies routinely arrive as a bare array, wrapped in code
// fences, or surrounded by prose, so the array boundaries are located
// defensively rather than assumed.
func parseItems(raw json.RawMessage) ([]json.RawMessage, error) {
	body := stripFences(string(raw))

	start := strings.Index(body, "[")
	end := strings.LastIndex(body, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array in reply")
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(body[start:end+1]), &items); err != nil {
		return nil, fmt.Errorf("decode array: %w", err)
	}
	return items, nil
}

// stripFences removes markdown code fence wrappers, with or without a
// language tag.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if nl := strings.Index(s, "\n"); nl != -1 {
		// Drop the language tag line ("json", "JSON", or empty).
		first := strings.TrimSpace(s[:nl])
		if len(first) <= 8 {
			s = s[nl+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

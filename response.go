package bibliofind

import (
	"encoding/json"
	"strings"
)

// StripFences removes leading/trailing markdown code-fence markers
// (```json and ```) around a payload and trims surrounding whitespace.
// Unfenced input is returned trimmed.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ParseTitles parses a model response into the list of titles it names.
// The response must be a JSON array of strings, optionally wrapped in
// markdown fences. Anything else returns EINVALID; callers treat that as
// "no results", not a fault.
func ParseTitles(raw string) ([]string, error) {
	payload := StripFences(raw)
	if payload == "" {
		return nil, Errorf(EINVALID, "empty model response")
	}

	var titles []string
	if err := json.Unmarshal([]byte(payload), &titles); err != nil {
		return nil, Errorf(EINVALID, "model response is not a JSON array of titles: %v", err)
	}
	return titles, nil
}

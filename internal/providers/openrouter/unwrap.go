package openrouter

import (
	"encoding/json"
	"strings"
)

// unwrapEmbeddedJSON guards against the backend occasionally wrapping its
// answer in a JSON object inside the text reply. If the text contains a
// {...} span that parses as JSON with a non-empty "response" field, that
// field is the true answer; otherwise the text is returned as-is. This is
// deliberately a narrow post-processing step, not a general parser.
func unwrapEmbeddedJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return text
	}

	var embedded struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &embedded); err != nil {
		return text
	}
	if embedded.Response == "" {
		return text
	}
	return embedded.Response
}

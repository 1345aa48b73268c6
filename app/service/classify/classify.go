// Package classify disambiguates free-text assistant replies into a
// structured summary-plus-suggestions shape or plain text. Attempt and
// check is the contract here; a reply that does not match the shape is
// not an error.
package classify

import (
	"strings"

	"github.com/goccy/go-json"
)

// Reply is the classified form of an assistant answer. Exactly one of
// the two branches applies: Structured carries Summary/Suggestions,
// otherwise Text holds the original answer untouched.
type Reply struct {
	Structured  bool
	Summary     string
	Suggestions []string
	Text        string
}

// Classify is a pure, total function over the answer string. Any parse
// failure or shape mismatch degrades silently to a plain reply.
func Classify(answer string) Reply {
	stripped := stripFence(answer)

	var parsed map[string]any
	if err := json.Unmarshal([]byte(stripped), &parsed); err != nil {
		return Reply{Text: answer}
	}

	summary, ok := parsed["summary"].(string)
	if !ok {
		return Reply{Text: answer}
	}

	rawSuggestions, ok := parsed["suggestions"].([]any)
	if !ok {
		return Reply{Text: answer}
	}

	suggestions := make([]string, 0, len(rawSuggestions))
	for _, item := range rawSuggestions {
		if s, ok := item.(string); ok {
			suggestions = append(suggestions, s)
		}
	}

	return Reply{
		Structured:  true,
		Summary:     summary,
		Suggestions: suggestions,
	}
}

// stripFence removes a surrounding fenced block, optionally tagged
// "json", and a leading bare "json" marker.
func stripFence(answer string) string {
	result := strings.TrimSpace(answer)

	if strings.HasPrefix(result, "```") {
		result = strings.TrimPrefix(result, "```")
		result = strings.TrimSpace(result)
		result = strings.TrimSuffix(result, "```")
		result = strings.TrimSpace(result)
	}

	result = strings.TrimPrefix(result, "json")

	return strings.TrimSpace(result)
}

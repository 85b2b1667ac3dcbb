package llmclient

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// TryParse decodes response text into T, walking a fixed ladder of
// candidates: the trimmed raw text, the extracted JSON span, the first
// aggressively extracted candidate, and finally a repaired rendition of the
// raw text. Per-candidate failures are aggregated into the returned
// ParseError when nothing decodes.
func TryParse[T any](text string) (T, error) {
	var zero T

	candidates := make([]string, 0, 4)
	present := make([]bool, 0, 4)

	push := func(candidate string, ok bool) {
		candidates = append(candidates, candidate)
		present = append(present, ok)
	}

	push(strings.TrimSpace(text), true)

	extracted, ok := ExtractJSON(text)
	push(extracted, ok)

	aggressive := ExtractJSONCandidates(text)
	if len(aggressive) > 0 {
		push(aggressive[0], true)
	} else {
		push("", false)
	}

	repaired, err := jsonrepair.JSONRepair(strings.TrimSpace(text))
	push(repaired, err == nil)

	var failures []string
	for i, candidate := range candidates {
		strategy := i + 1
		if !present[i] {
			failures = append(failures, fmt.Sprintf("Strategy %d: No JSON candidate found", strategy))
			continue
		}

		var parsed T
		if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
			slog.Debug("parse strategy failed", "strategy", strategy, "error", err)
			failures = append(failures, fmt.Sprintf("Strategy %d: %v", strategy, err))
			continue
		}
		return parsed, nil
	}

	summary := fmt.Sprintf("failed to parse JSON with all %d strategies:\n%s",
		len(candidates), strings.Join(failures, "\n"))
	return zero, &ParseError{LLMError{Message: summary}}
}

package llmclient

import (
	"regexp"
	"sort"
	"strings"
)

var (
	jsonCodeBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	jsonObject    = regexp.MustCompile(`(?s)\{.*\}`)
)

// ExtractJSON pulls the most likely JSON object out of free-form response
// text: a fenced code block if present, otherwise the widest brace-delimited
// span. The boolean is false when neither is found.
func ExtractJSON(text string) (string, bool) {
	if m := jsonCodeBlock.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := jsonObject.FindString(text); m != "" {
		return m, true
	}
	return "", false
}

// ExtractJSONCandidates gathers every plausible JSON object span in text:
// all fenced code blocks, all greedy brace spans, and a balanced-brace scan
// from the first opening brace. The result is sorted and deduplicated.
func ExtractJSONCandidates(text string) []string {
	var candidates []string

	for _, m := range jsonCodeBlock.FindAllStringSubmatch(text, -1) {
		candidates = append(candidates, m[1])
	}

	candidates = append(candidates, jsonObject.FindAllString(text, -1)...)

	if span, ok := balancedBraceSpan(text); ok {
		candidates = append(candidates, span)
	}

	sort.Strings(candidates)
	return dedupSorted(candidates)
}

// balancedBraceSpan scans from the first '{' counting brace depth and
// returns the span up to the matching '}'.
func balancedBraceSpan(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return "", false
	}

	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

func dedupSorted(values []string) []string {
	out := values[:0]
	for i, v := range values {
		if i == 0 || values[i-1] != v {
			out = append(out, v)
		}
	}
	return out
}

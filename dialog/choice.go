package dialog

import (
	"strconv"
	"strings"
)

// Choice is one selectable option: a label plus accepted synonym tokens.
// Choices are static configuration, immutable at runtime.
type Choice struct {
	Label    string   `json:"label"`
	Synonyms []string `json:"synonyms,omitempty"`
}

// FoundChoice is the result of recognizing user input against a choice list.
type FoundChoice struct {
	Value string `json:"value"`
	Index int    `json:"index"`
}

// RecognizeChoice matches free-text input against choices. Matching is
// case-insensitive on trimmed input and accepts the label, any synonym,
// or a 1-based numeric index into the list.
func RecognizeChoice(input string, choices []Choice) (FoundChoice, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return FoundChoice{}, false
	}

	for i, choice := range choices {
		if strings.ToLower(choice.Label) == normalized {
			return FoundChoice{Value: choice.Label, Index: i}, true
		}
		for _, syn := range choice.Synonyms {
			if strings.ToLower(strings.TrimSpace(syn)) == normalized {
				return FoundChoice{Value: choice.Label, Index: i}, true
			}
		}
	}

	if n, err := strconv.Atoi(normalized); err == nil {
		if n >= 1 && n <= len(choices) {
			return FoundChoice{Value: choices[n-1].Label, Index: n - 1}, true
		}
	}

	return FoundChoice{}, false
}

// Labels extracts the choice labels in order, for suggested actions.
func Labels(choices []Choice) []string {
	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.Label
	}
	return labels
}

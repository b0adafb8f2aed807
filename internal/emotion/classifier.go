package emotion

import "strings"

// Classify maps free text to an emotion label by keyword lookup.
//
// The input is lower-cased and scanned against each emotion's keyword list
// in priority order; the first emotion with any keyword appearing as a
// substring of the text wins. Texts matching no keyword classify as
// Neutral. Pure function, safe for concurrent use.
func Classify(text string, lang Language) Emotion {
	lower := strings.ToLower(text)

	table, ok := keywords[lang]
	if !ok {
		table = keywords[English]
	}

	for _, e := range priority {
		list, ok := table[e]
		if !ok {
			list = keywords[English][e]
		}
		for _, kw := range list {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return e
			}
		}
	}

	return Neutral
}

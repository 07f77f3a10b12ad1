package normalize

import (
	"strings"
)

var labelPrefixes = []string{"ingredients:", "ingredient:", "contains:"}

// Name folds an ingredient or profile value into its lookup form.
// Lookups are exact on this form: no stemming, no plural handling.
func Name(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Names applies Name to every element and drops values that normalize to "".
func Names(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if n := Name(v); n != "" {
			result = append(result, n)
		}
	}
	return result
}

// SplitLabel turns raw label text ("Ingredients: Sugar, Peanuts (roasted), Salt.")
// into display strings. Separators inside parentheses do not split.
func SplitLabel(text string) []string {
	text = strings.TrimSpace(text)
	lower := strings.ToLower(text)
	for _, prefix := range labelPrefixes {
		if strings.HasPrefix(lower, prefix) {
			text = strings.TrimSpace(text[len(prefix):])
			break
		}
	}

	var parts []string
	var current strings.Builder
	depth := 0

	flush := func() {
		item := strings.TrimSpace(current.String())
		item = strings.TrimSpace(strings.TrimSuffix(item, "."))
		if item != "" {
			parts = append(parts, item)
		}
		current.Reset()
	}

	for _, r := range text {
		switch {
		case r == '(' || r == '[':
			depth++
		case (r == ')' || r == ']') && depth > 0:
			depth--
		case (r == ',' || r == ';' || r == '\n') && depth == 0:
			flush()
			continue
		}
		current.WriteRune(r)
	}
	flush()

	return parts
}

// UniqueStrings removes duplicates, keeping first-seen order.
func UniqueStrings(input []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(input))
	for _, s := range input {
		if !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	return result
}

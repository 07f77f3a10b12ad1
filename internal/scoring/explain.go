package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gzhole/labelshield/internal/normalize"
)

// Per-ingredient severity label thresholds. These work on the 0-1 weight
// scale and are tuned separately from the score tiers.
const (
	HighSeverityMin   = 0.7
	MediumSeverityMin = 0.4
)

// Explanation is the human-facing part of a result.
type Explanation struct {
	Flagged []FlaggedIngredient
	Unknown []string
	Summary string
}

// SeverityLabel maps a 0-1 weight to a display label.
func SeverityLabel(weight float64) RiskLevel {
	switch {
	case weight >= HighSeverityMin:
		return HighRisk
	case weight >= MediumSeverityMin:
		return MediumRisk
	default:
		return LowRisk
	}
}

// Explain groups conflicts by ingredient, ranks them by severity and writes
// the summary sentence.
func Explain(conflicts []Conflict, severities map[string]float64, totalIngredients int) Explanation {
	var order []string
	reasons := make(map[string][]string)
	var unknown []string

	for _, c := range conflicts {
		if c.IsUnknown() {
			unknown = append(unknown, c.Ingredient)
			continue
		}
		if _, seen := reasons[c.Ingredient]; !seen {
			order = append(order, c.Ingredient)
			reasons[c.Ingredient] = []string{}
		}
		if c.Reason != "" {
			reasons[c.Ingredient] = appendUnique(reasons[c.Ingredient], c.Reason)
		}
	}

	flagged := make([]FlaggedIngredient, 0, len(order))
	for _, name := range order {
		severity := severities[name]
		flagged = append(flagged, FlaggedIngredient{
			Ingredient: name,
			RiskLevel:  SeverityLabel(severity),
			Reasons:    reasons[name],
			Severity:   math.Round(severity*100) / 100,
		})
	}
	sort.SliceStable(flagged, func(i, j int) bool {
		return flagged[i].Severity > flagged[j].Severity
	})

	exp := Explanation{
		Flagged: flagged,
		Unknown: normalize.UniqueStrings(unknown),
	}
	exp.Summary = summarize(exp.Flagged, exp.Unknown, totalIngredients)
	return exp
}

func summarize(flagged []FlaggedIngredient, unknown []string, total int) string {
	if total == 0 {
		return "No ingredients were provided for analysis."
	}
	if len(flagged) == 0 && len(unknown) == 0 {
		return fmt.Sprintf("All %d ingredient(s) appear compatible with your profile.", total)
	}

	var parts []string

	compatible := total - len(flagged) - len(unknown)
	if compatible > 0 {
		parts = append(parts, fmt.Sprintf("%d of %d ingredient(s) are compatible with your profile.", compatible, total))
	} else {
		parts = append(parts, fmt.Sprintf("None of the %d ingredient(s) are fully compatible with your profile.", total))
	}

	var high []string
	for _, f := range flagged {
		if f.RiskLevel == HighRisk {
			high = append(high, f.Ingredient)
		}
	}
	if len(high) > 0 {
		parts = append(parts, fmt.Sprintf("High risk: %s.", strings.Join(high, ", ")))
	} else if len(flagged) > 0 {
		parts = append(parts, fmt.Sprintf("%d ingredient(s) flagged.", len(flagged)))
	}

	if len(unknown) > 0 {
		parts = append(parts, fmt.Sprintf("%d ingredient(s) not recognized in our database.", len(unknown)))
	}

	return strings.Join(parts, " ")
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}

package scoring

import "math"

// Score tier boundaries. Each is the inclusive lower bound of its tier.
const (
	LowRiskMinScore    = 70
	MediumRiskMinScore = 40
)

// Risk is the aggregate produced by Calculate.
type Risk struct {
	Score            int
	Classification   RiskLevel
	Severities       map[string]float64 // max weight per display name
	TotalPenalty     float64
	ConflictCount    int
	TotalIngredients int
}

// Calculate aggregates conflict records into a score. Unknown records are
// ignored. The penalty is the sum of weight × dimension points over every
// record with no per-ingredient cap; only the final score is clamped.
func Calculate(conflicts []Conflict, totalIngredients int, penalties PenaltyTable) Risk {
	risk := Risk{
		Severities:       make(map[string]float64),
		TotalIngredients: totalIngredients,
	}

	for _, c := range conflicts {
		if c.IsUnknown() {
			continue
		}
		risk.ConflictCount++
		risk.TotalPenalty += c.Weight * penalties.PenaltyPoints(c.Dimension)

		if prev, ok := risk.Severities[c.Ingredient]; !ok || c.Weight > prev {
			risk.Severities[c.Ingredient] = c.Weight
		}
	}

	risk.Score = clampScore(math.RoundToEven(100 - risk.TotalPenalty))
	risk.Classification = Classify(risk.Score)
	return risk
}

// Classify maps a 0-100 score to its tier.
func Classify(score int) RiskLevel {
	switch {
	case score >= LowRiskMinScore:
		return LowRisk
	case score >= MediumRiskMinScore:
		return MediumRisk
	default:
		return HighRisk
	}
}

func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}

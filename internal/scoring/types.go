// Package scoring turns an ingredient list and a user profile into a health
// alignment score, a risk tier and an explained list of conflicts.
//
// The pipeline is detect → calculate → explain. Every stage is a pure
// function of its inputs and the injected catalog, so an Engine can be
// shared by any number of goroutines.
package scoring

import (
	"github.com/gzhole/labelshield/internal/catalog"
)

// RiskLevel is a three-tier label. It is used both for the overall score
// classification and for per-ingredient severity labels, which are derived
// from different thresholds.
type RiskLevel string

const (
	LowRisk    RiskLevel = "Low Risk"
	MediumRisk RiskLevel = "Medium Risk"
	HighRisk   RiskLevel = "High Risk"
)

// Catalog is what the engine needs from the knowledge base and rule table.
// *catalog.Catalog satisfies it.
type Catalog interface {
	Lookup(name string) (catalog.Ingredient, bool)
	ConflictsForTag(tag string) []catalog.ConflictRule
	PenaltyTable
}

// PenaltyTable maps a dimension to its base penalty points.
type PenaltyTable interface {
	PenaltyPoints(dim catalog.Dimension) float64
}

// Conflict is one detected mismatch between an ingredient's tag and a
// declared profile value, or an unknown-ingredient marker.
type Conflict struct {
	Ingredient   string            `json:"ingredient"` // display string as given
	Dimension    catalog.Dimension `json:"dimension"`
	ProfileValue string            `json:"profile_value,omitempty"`
	Tag          string            `json:"tag,omitempty"`
	Weight       float64           `json:"weight"`
	Reason       string            `json:"reason"`
}

// IsUnknown reports whether the record marks an ingredient missing from the
// knowledge base.
func (c Conflict) IsUnknown() bool {
	return c.Dimension == catalog.DimensionUnknown
}

// FlaggedIngredient is one entry in the ranked explanation list.
type FlaggedIngredient struct {
	Ingredient string    `json:"ingredient"`
	RiskLevel  RiskLevel `json:"risk_level"`
	Reasons    []string  `json:"reasons"`
	Severity   float64   `json:"severity"`
}

// Result is the engine output. Field order and names are the wire format.
type Result struct {
	Score              int                 `json:"score"`
	RiskClassification RiskLevel           `json:"risk_classification"`
	FlaggedIngredients []FlaggedIngredient `json:"flagged_ingredients"`
	UnknownIngredients []string            `json:"unknown_ingredients"`
	Summary            string              `json:"summary"`
	TotalIngredients   int                 `json:"total_ingredients"`
	ConflictCount      int                 `json:"conflict_count"`
}

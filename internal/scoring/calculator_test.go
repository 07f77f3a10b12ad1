package scoring

import (
	"testing"

	"github.com/gzhole/labelshield/internal/catalog"
)

type fixedPenalties map[catalog.Dimension]float64

func (f fixedPenalties) PenaltyPoints(dim catalog.Dimension) float64 {
	if p, ok := f[dim]; ok {
		return p
	}
	return catalog.DefaultPenaltyPoints
}

func TestCalculate_NoCapPerIngredient(t *testing.T) {
	conflicts := []Conflict{
		{Ingredient: "x", Dimension: catalog.DimensionAllergy, Weight: 1.0},
		{Ingredient: "x", Dimension: catalog.DimensionHealthGoal, Weight: 0.5},
		{Ingredient: "y", Dimension: catalog.DimensionUnknown, Weight: 0},
	}

	risk := Calculate(conflicts, 2, catalog.Default())
	if risk.TotalPenalty != 45 {
		t.Errorf("expected penalty 45, got %.2f", risk.TotalPenalty)
	}
	if risk.Score != 55 {
		t.Errorf("expected score 55, got %d", risk.Score)
	}
	if risk.ConflictCount != 2 {
		t.Errorf("expected 2 conflicts, got %d", risk.ConflictCount)
	}
	if risk.Severities["x"] != 1.0 {
		t.Errorf("expected severity 1.0 for x, got %.2f", risk.Severities["x"])
	}
	if _, ok := risk.Severities["y"]; ok {
		t.Error("unknown ingredient must not get a severity")
	}
}

func TestCalculate_RoundsHalfToEven(t *testing.T) {
	tests := []struct {
		points float64
		want   int
	}{
		{5, 98}, // 100 - 2.5 = 97.5
		{7, 96}, // 100 - 3.5 = 96.5
		{3, 98}, // 100 - 1.5 = 98.5
	}

	for _, tt := range tests {
		conflicts := []Conflict{{Ingredient: "x", Dimension: catalog.DimensionHealthGoal, Weight: 0.5}}
		risk := Calculate(conflicts, 1, fixedPenalties{catalog.DimensionHealthGoal: tt.points})
		if risk.Score != tt.want {
			t.Errorf("penalty points %.0f: expected score %d, got %d", tt.points, tt.want, risk.Score)
		}
	}
}

func TestCalculate_ClampsAtZero(t *testing.T) {
	var conflicts []Conflict
	for i := 0; i < 5; i++ {
		conflicts = append(conflicts, Conflict{Ingredient: "peanuts", Dimension: catalog.DimensionAllergy, Weight: 1.0})
	}

	risk := Calculate(conflicts, 5, catalog.Default())
	if risk.Score != 0 {
		t.Errorf("expected score clamped to 0, got %d", risk.Score)
	}
	if risk.Classification != HighRisk {
		t.Errorf("expected High Risk, got %s", risk.Classification)
	}
}

func TestCalculate_UnknownDimensionUsesDefaultPenalty(t *testing.T) {
	conflicts := []Conflict{{Ingredient: "x", Dimension: "lifestyle", Weight: 1.0}}

	risk := Calculate(conflicts, 1, catalog.Default())
	if risk.Score != 90 {
		t.Errorf("expected score 90, got %d", risk.Score)
	}
}

func TestExplain_StableSortAndDedup(t *testing.T) {
	conflicts := []Conflict{
		{Ingredient: "a", Dimension: catalog.DimensionHealthGoal, Weight: 0.3, Reason: "r1"},
		{Ingredient: "b", Dimension: catalog.DimensionAllergy, Weight: 1.0, Reason: "r2"},
		{Ingredient: "c", Dimension: catalog.DimensionHealthGoal, Weight: 0.3, Reason: "r3"},
		{Ingredient: "a", Dimension: catalog.DimensionHealthGoal, Weight: 0.3, Reason: "r1"},
		{Ingredient: "zzz", Dimension: catalog.DimensionUnknown, Reason: "unknown"},
		{Ingredient: "zzz", Dimension: catalog.DimensionUnknown, Reason: "unknown"},
	}
	risk := Calculate(conflicts, 5, catalog.Default())

	exp := Explain(conflicts, risk.Severities, 5)

	var order []string
	for _, f := range exp.Flagged {
		order = append(order, f.Ingredient)
	}
	if len(order) != 3 || order[0] != "b" || order[1] != "a" || order[2] != "c" {
		t.Errorf("expected order [b a c], got %v", order)
	}
	if len(exp.Flagged[1].Reasons) != 1 {
		t.Errorf("expected deduplicated reasons, got %v", exp.Flagged[1].Reasons)
	}
	if exp.Flagged[1].RiskLevel != LowRisk {
		t.Errorf("expected Low Risk label for 0.3, got %s", exp.Flagged[1].RiskLevel)
	}
	if len(exp.Unknown) != 1 || exp.Unknown[0] != "zzz" {
		t.Errorf("expected unknown [zzz], got %v", exp.Unknown)
	}

	want := "1 of 5 ingredient(s) are compatible with your profile. High risk: b. 1 ingredient(s) not recognized in our database."
	if exp.Summary != want {
		t.Errorf("expected summary %q, got %q", want, exp.Summary)
	}
}

func TestExplain_SkipsEmptyReasons(t *testing.T) {
	conflicts := []Conflict{
		{Ingredient: "sulfur dioxide", Dimension: catalog.DimensionAllergy, Weight: 1.0, Reason: ""},
		{Ingredient: "sulfur dioxide", Dimension: catalog.DimensionHealthCondition, Weight: 0.6, Reason: "Sulfites can trigger asthma symptoms"},
		{Ingredient: "gelatin", Dimension: catalog.DimensionDietaryRestriction, Weight: 1.0, Reason: ""},
	}
	risk := Calculate(conflicts, 2, catalog.Default())

	exp := Explain(conflicts, risk.Severities, 2)

	if len(exp.Flagged) != 2 {
		t.Fatalf("expected 2 flagged ingredients, got %d", len(exp.Flagged))
	}
	for _, f := range exp.Flagged {
		for _, r := range f.Reasons {
			if r == "" {
				t.Errorf("%s: empty reason in %q", f.Ingredient, f.Reasons)
			}
		}
		if f.Reasons == nil {
			t.Errorf("%s: expected non-nil reasons", f.Ingredient)
		}
	}
	byName := map[string]FlaggedIngredient{}
	for _, f := range exp.Flagged {
		byName[f.Ingredient] = f
	}
	if got := byName["sulfur dioxide"].Reasons; len(got) != 1 || got[0] != "Sulfites can trigger asthma symptoms" {
		t.Errorf("unexpected sulfur dioxide reasons %q", got)
	}
	if got := byName["gelatin"].Reasons; len(got) != 0 {
		t.Errorf("expected no gelatin reasons, got %q", got)
	}
}

func TestExplain_NoIngredients(t *testing.T) {
	exp := Explain(nil, nil, 0)
	if exp.Summary != "No ingredients were provided for analysis." {
		t.Errorf("unexpected summary: %q", exp.Summary)
	}
	if exp.Flagged == nil || exp.Unknown == nil {
		t.Error("expected empty, non-nil lists")
	}
}

package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLookup_NormalizesName(t *testing.T) {
	c := Default()

	tests := []struct {
		name     string
		found    bool
		category string
	}{
		{"peanuts", true, "allergen"},
		{"  PEANUTS ", true, "allergen"},
		{"High Fructose Corn Syrup", true, "sweetener"},
		{"peanut", false, ""},          // no plural handling
		{"roasted peanuts", false, ""}, // no substring matching
		{"nonexistentium", false, ""},
	}

	for _, tt := range tests {
		ing, ok := c.Lookup(tt.name)
		if ok != tt.found {
			t.Errorf("Lookup(%q): expected found=%v, got %v", tt.name, tt.found, ok)
			continue
		}
		if ok && ing.Category != tt.category {
			t.Errorf("Lookup(%q): expected category %q, got %q", tt.name, tt.category, ing.Category)
		}
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	c := Default()
	ing, _ := c.Lookup("milk")
	ing.RiskTags[0] = "mutated"

	again, _ := c.Lookup("milk")
	if again.RiskTags[0] != "allergen_milk" {
		t.Errorf("catalog was mutated through Lookup result: %v", again.RiskTags)
	}
}

func TestConflictsForTag(t *testing.T) {
	c := Default()

	animal := c.ConflictsForTag("animal_derived")
	if len(animal) != 2 {
		t.Fatalf("expected 2 rules for animal_derived, got %d", len(animal))
	}
	if animal[0].ProfileValue != "vegan" || animal[0].Weight != 0.8 {
		t.Errorf("unexpected first animal_derived rule: %+v", animal[0])
	}
	if animal[1].ProfileValue != "vegetarian" || animal[1].Weight != 0.7 {
		t.Errorf("unexpected second animal_derived rule: %+v", animal[1])
	}

	if rules := c.ConflictsForTag("no_such_tag"); len(rules) != 0 {
		t.Errorf("expected no rules for unknown tag, got %v", rules)
	}
}

func TestPenaltyPoints(t *testing.T) {
	c := Default()

	tests := []struct {
		dim      Dimension
		expected float64
	}{
		{DimensionAllergy, 40},
		{DimensionDietaryRestriction, 25},
		{DimensionHealthCondition, 20},
		{DimensionHealthGoal, 10},
		{Dimension("lifestyle"), 10},
		{DimensionUnknown, 10},
	}

	for _, tt := range tests {
		if got := c.PenaltyPoints(tt.dim); got != tt.expected {
			t.Errorf("PenaltyPoints(%s): expected %.1f, got %.1f", tt.dim, tt.expected, got)
		}
	}
}

func TestDefault_EveryTagIsKnownOrInformational(t *testing.T) {
	c := Default()
	tags := map[string]bool{}
	for _, tag := range c.KnownTags() {
		tags[tag] = true
	}

	for _, name := range c.KnownIngredients() {
		ing, _ := c.Lookup(name)
		for _, tag := range ing.RiskTags {
			if !tags[tag] {
				t.Errorf("ingredient %q carries tag %q with no rules", name, tag)
			}
		}
	}
}

func TestNew_RejectsBadWeight(t *testing.T) {
	_, err := New(File{
		Rules: map[string][]ConflictRule{
			"bad": {{Dimension: DimensionAllergy, ProfileValue: "x", Weight: 1.5, Reason: "r"}},
		},
	})
	if err == nil {
		t.Fatal("expected error for weight > 1")
	}
}

func TestNew_AcceptsUnknownDimension(t *testing.T) {
	c, err := New(File{
		Rules: map[string][]ConflictRule{
			"odd": {{Dimension: "lifestyle", ProfileValue: "x", Weight: 0.5, Reason: "r"}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.ConflictsForTag("odd")) != 1 {
		t.Errorf("expected rule with unknown dimension to be kept")
	}
}

func TestLoad_MissingFileUsesDefault(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.Lookup("peanuts"); !ok {
		t.Error("expected built-in catalog when file is missing")
	}
}

func TestLoad_CustomCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
version: "2"
ingredients:
  "Kelp Extract":
    category: seaweed
    risk_tags: [high_iodine]
rules:
  high_iodine:
    - dimension: health_condition
      profile_value: hyperthyroidism
      weight: 0.6
      reason: "High iodine: may aggravate hyperthyroidism"
penalties:
  health_condition: 30
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	if c.Version() != "2" {
		t.Errorf("expected version 2, got %q", c.Version())
	}
	if _, ok := c.Lookup("kelp extract"); !ok {
		t.Error("expected normalized key 'kelp extract'")
	}
	if _, ok := c.Lookup("peanuts"); ok {
		t.Error("custom catalog should replace the built-in table")
	}
	if got := c.PenaltyPoints(DimensionHealthCondition); got != 30 {
		t.Errorf("expected overridden penalty 30, got %.1f", got)
	}
	if got := c.PenaltyPoints(DimensionAllergy); got != 40 {
		t.Errorf("expected default allergy penalty 40, got %.1f", got)
	}
}

func TestMarshal_RoundTripsThroughLoad(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	c, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(c.KnownIngredients()) != len(Default().KnownIngredients()) {
		t.Errorf("ingredient count changed across marshal/parse")
	}
}

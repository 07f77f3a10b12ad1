package scoring

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/gzhole/labelshield/internal/catalog"
	"github.com/gzhole/labelshield/internal/profile"
)

func newTestEngine() *Engine {
	return New(catalog.Default())
}

func TestAnalyze_NoRiskTagsScoresFull(t *testing.T) {
	e := newTestEngine()
	p := profile.Profile{
		Allergies:           []string{"peanuts"},
		DietaryRestrictions: []string{"vegan"},
		HealthConditions:    []string{"diabetes"},
	}

	result, err := e.Analyze([]string{"water", "Olive Oil", "rice", "vitamin c"}, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 100 {
		t.Errorf("expected score 100, got %d", result.Score)
	}
	if result.RiskClassification != LowRisk {
		t.Errorf("expected Low Risk, got %s", result.RiskClassification)
	}
	if result.Summary != "All 4 ingredient(s) appear compatible with your profile." {
		t.Errorf("unexpected summary: %q", result.Summary)
	}
}

func TestAnalyze_UnknownWithEmptyProfile(t *testing.T) {
	e := newTestEngine()

	result, err := e.Analyze([]string{"nonexistentium", "unobtainium"}, profile.Profile{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 100 || result.RiskClassification != LowRisk {
		t.Errorf("expected 100/Low Risk, got %d/%s", result.Score, result.RiskClassification)
	}
	if result.ConflictCount != 0 {
		t.Errorf("unknown records must not count as conflicts, got %d", result.ConflictCount)
	}
	want := "None of the 2 ingredient(s) are fully compatible with your profile. 2 ingredient(s) not recognized in our database."
	if result.Summary != want {
		t.Errorf("expected summary %q, got %q", want, result.Summary)
	}
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  RiskLevel
	}{
		{100, LowRisk},
		{70, LowRisk},
		{69, MediumRisk},
		{40, MediumRisk},
		{39, HighRisk},
		{0, HighRisk},
	}

	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%d): expected %s, got %s", tt.score, tt.want, got)
		}
	}
}

func TestSeverityLabel_Boundaries(t *testing.T) {
	tests := []struct {
		weight float64
		want   RiskLevel
	}{
		{1.0, HighRisk},
		{0.7, HighRisk},
		{0.69, MediumRisk},
		{0.4, MediumRisk},
		{0.39, LowRisk},
		{0, LowRisk},
	}

	for _, tt := range tests {
		if got := SeverityLabel(tt.weight); got != tt.want {
			t.Errorf("SeverityLabel(%.2f): expected %s, got %s", tt.weight, tt.want, got)
		}
	}
}

func TestAnalyze_PeanutAllergy(t *testing.T) {
	e := newTestEngine()

	result, err := e.Analyze([]string{"peanuts"}, profile.Profile{Allergies: []string{"peanuts"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.FlaggedIngredients) != 1 {
		t.Fatalf("expected 1 flagged ingredient, got %d", len(result.FlaggedIngredients))
	}
	f := result.FlaggedIngredients[0]
	if f.Ingredient != "peanuts" || f.Severity != 1.0 || f.RiskLevel != HighRisk {
		t.Errorf("unexpected flagged ingredient: %+v", f)
	}
	if result.Score != 60 || result.RiskClassification != MediumRisk {
		t.Errorf("expected 60/Medium Risk, got %d/%s", result.Score, result.RiskClassification)
	}
	want := "None of the 1 ingredient(s) are fully compatible with your profile. High risk: peanuts."
	if result.Summary != want {
		t.Errorf("expected summary %q, got %q", want, result.Summary)
	}
}

func TestDetect_VeganGelatin(t *testing.T) {
	d := NewDetector(catalog.Default())

	conflicts := d.Detect([]string{"gelatin"}, profile.Profile{DietaryRestrictions: []string{"vegan"}})
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d: %+v", len(conflicts), conflicts)
	}
	c := conflicts[0]
	if c.ProfileValue != "vegan" || c.Tag != "animal_derived" || c.Dimension != catalog.DimensionDietaryRestriction {
		t.Errorf("unexpected conflict: %+v", c)
	}
}

func TestDetect_DuplicatesAreIndependent(t *testing.T) {
	d := NewDetector(catalog.Default())

	conflicts := d.Detect([]string{"peanuts", "peanuts"}, profile.Profile{Allergies: []string{"peanuts"}})
	allergy := 0
	for _, c := range conflicts {
		if c.Dimension == catalog.DimensionAllergy {
			allergy++
		}
	}
	if allergy < 2 {
		t.Errorf("expected at least 2 allergy records, got %d", allergy)
	}
}

func TestDetect_KeepsDisplayString(t *testing.T) {
	d := NewDetector(catalog.Default())

	conflicts := d.Detect([]string{"PEANUTS", "Mystery Powder"}, profile.Profile{Allergies: []string{" Peanuts "}})
	if len(conflicts) != 2 {
		t.Fatalf("expected 2 records, got %d", len(conflicts))
	}
	if conflicts[0].Ingredient != "PEANUTS" {
		t.Errorf("expected display string PEANUTS, got %q", conflicts[0].Ingredient)
	}
	if !conflicts[1].IsUnknown() || conflicts[1].Weight != 0 {
		t.Errorf("expected unknown record, got %+v", conflicts[1])
	}
	if conflicts[1].Reason != "'Mystery Powder' is not in our ingredient database" {
		t.Errorf("unexpected unknown reason: %q", conflicts[1].Reason)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	e := newTestEngine()
	ingredients := []string{"sugar", "milk", "salt", "mystery", "eggs"}
	p := profile.Profile{
		Allergies:           []string{"milk"},
		DietaryRestrictions: []string{"vegan"},
		HealthGoals:         []string{"weight_loss"},
	}

	first, err := e.Analyze(ingredients, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := e.Analyze(ingredients, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("outputs differ:\n%s\n%s", a, b)
	}
}

func TestAnalyze_UnknownDoesNotChangeScore(t *testing.T) {
	e := newTestEngine()
	p := profile.Profile{Allergies: []string{"peanuts"}, HealthGoals: []string{"clean_eating"}}

	result, err := e.Analyze([]string{"nonexistentium"}, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 100 {
		t.Errorf("expected score 100, got %d", result.Score)
	}
	if !reflect.DeepEqual(result.UnknownIngredients, []string{"nonexistentium"}) {
		t.Errorf("unexpected unknown list: %v", result.UnknownIngredients)
	}
	if len(result.FlaggedIngredients) != 0 {
		t.Errorf("unknown ingredient must not be flagged: %+v", result.FlaggedIngredients)
	}
}

func TestAnalyze_WorstCase(t *testing.T) {
	e := newTestEngine()
	p := profile.Profile{
		Allergies:           []string{"peanuts", "shellfish"},
		DietaryRestrictions: []string{"vegan"},
		HealthConditions:    []string{"diabetes", "hypertension"},
		HealthGoals:         []string{"weight_loss", "clean_eating"},
	}

	result, err := e.Analyze([]string{"peanuts", "shrimp", "high fructose corn syrup", "salt", "red 40"}, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score >= 40 {
		t.Errorf("expected score < 40, got %d", result.Score)
	}
	if result.RiskClassification != HighRisk {
		t.Errorf("expected High Risk, got %s", result.RiskClassification)
	}
	if len(result.FlaggedIngredients) != 5 {
		t.Errorf("expected all 5 ingredients flagged, got %d", len(result.FlaggedIngredients))
	}
	for i := 1; i < len(result.FlaggedIngredients); i++ {
		if result.FlaggedIngredients[i].Severity > result.FlaggedIngredients[i-1].Severity {
			t.Errorf("flagged list not sorted by severity: %+v", result.FlaggedIngredients)
		}
	}
}

func TestAnalyze_MediumTierAndSummary(t *testing.T) {
	e := newTestEngine()
	p := profile.Profile{DietaryRestrictions: []string{"vegan"}}

	// gelatin 0.8 x 25 + honey 0.8 x 25 = 40 penalty.
	result, err := e.Analyze([]string{"gelatin", "honey", "water"}, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 60 || result.RiskClassification != MediumRisk {
		t.Errorf("expected 60/Medium Risk, got %d/%s", result.Score, result.RiskClassification)
	}
	want := "1 of 3 ingredient(s) are compatible with your profile. High risk: gelatin, honey."
	if result.Summary != want {
		t.Errorf("expected summary %q, got %q", want, result.Summary)
	}
}

func TestAnalyze_FlaggedCountClause(t *testing.T) {
	e := newTestEngine()
	p := profile.Profile{HealthGoals: []string{"clean_eating"}}

	// red 40: artificial_color 0.4 and artificial_additive 0.5, both Medium.
	result, err := e.Analyze([]string{"red 40", "water"}, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.FlaggedIngredients) != 1 {
		t.Fatalf("expected 1 flagged, got %d", len(result.FlaggedIngredients))
	}
	f := result.FlaggedIngredients[0]
	if f.Severity != 0.5 || f.RiskLevel != MediumRisk || len(f.Reasons) != 2 {
		t.Errorf("unexpected flagged entry: %+v", f)
	}
	want := "1 of 2 ingredient(s) are compatible with your profile. 1 ingredient(s) flagged."
	if result.Summary != want {
		t.Errorf("expected summary %q, got %q", want, result.Summary)
	}
	if result.ConflictCount != 2 {
		t.Errorf("expected 2 conflicts, got %d", result.ConflictCount)
	}
}

func TestAnalyze_TotalCountsPositions(t *testing.T) {
	e := newTestEngine()

	result, err := e.Analyze([]string{"peanuts", "peanuts", "  ", "water"}, profile.Profile{Allergies: []string{"peanuts"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalIngredients != 3 {
		t.Errorf("expected total 3, got %d", result.TotalIngredients)
	}
	if result.ConflictCount != 2 {
		t.Errorf("expected 2 conflicts, got %d", result.ConflictCount)
	}
	if len(result.FlaggedIngredients) != 1 {
		t.Errorf("duplicates should group into one flagged entry, got %d", len(result.FlaggedIngredients))
	}
	if result.Score != 20 {
		t.Errorf("expected score 20 (two uncapped allergen hits), got %d", result.Score)
	}
}

func TestAnalyze_InvalidInput(t *testing.T) {
	e := newTestEngine()

	for _, ingredients := range [][]string{nil, {}, {"", "   "}} {
		_, err := e.Analyze(ingredients, profile.Profile{})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Analyze(%q): expected ErrInvalidInput, got %v", ingredients, err)
		}
	}
}

func TestAnalyzeRaw(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name        string
		ingredients any
		profile     any
		wantErr     error
		wantTotal   int
	}{
		{name: "mixed list", ingredients: []any{"peanuts", 7, nil, "water"}, profile: map[string]any{"allergies": []any{"peanuts", 3}}, wantTotal: 2},
		{name: "nil profile", ingredients: []string{"water"}, profile: nil, wantTotal: 1},
		{name: "not a list", ingredients: "peanuts", profile: nil, wantErr: ErrInvalidInput},
		{name: "nil ingredients", ingredients: nil, profile: nil, wantErr: ErrInvalidInput},
		{name: "only non-strings", ingredients: []any{1, 2}, profile: nil, wantErr: ErrInvalidInput},
		{name: "profile list", ingredients: []string{"water"}, profile: []any{"peanuts"}, wantErr: ErrInvalidProfile},
		{name: "profile string", ingredients: []string{"water"}, profile: "vegan", wantErr: ErrInvalidProfile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := e.AnalyzeRaw(tt.ingredients, tt.profile)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.TotalIngredients != tt.wantTotal {
				t.Errorf("expected total %d, got %d", tt.wantTotal, result.TotalIngredients)
			}
		})
	}
}

func TestResult_JSONShape(t *testing.T) {
	e := newTestEngine()

	result, err := e.Analyze([]string{"water"}, profile.Profile{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"score":100,"risk_classification":"Low Risk","flagged_ingredients":[],"unknown_ingredients":[],` +
		`"summary":"All 1 ingredient(s) appear compatible with your profile.","total_ingredients":1,"conflict_count":0}`
	if string(data) != want {
		t.Errorf("unexpected JSON:\n got %s\nwant %s", data, want)
	}
}

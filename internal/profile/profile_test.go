package profile

import (
	"reflect"
	"testing"

	"github.com/gzhole/labelshield/internal/catalog"
)

func TestNormalized(t *testing.T) {
	p := Profile{
		Allergies:           []string{"  Peanuts ", "", "MILK"},
		DietaryRestrictions: []string{"Vegan"},
	}
	sets := p.Normalized()

	tests := []struct {
		dim   catalog.Dimension
		value string
		want  bool
	}{
		{catalog.DimensionAllergy, "peanuts", true},
		{catalog.DimensionAllergy, "milk", true},
		{catalog.DimensionAllergy, "", false},
		{catalog.DimensionDietaryRestriction, "vegan", true},
		{catalog.DimensionHealthCondition, "diabetes", false},
		{catalog.DimensionUnknown, "peanuts", false},
	}

	for _, tt := range tests {
		if got := sets.Contains(tt.dim, tt.value); got != tt.want {
			t.Errorf("Contains(%s, %q): expected %v, got %v", tt.dim, tt.value, tt.want, got)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    Profile
		wantErr bool
	}{
		{name: "nil", raw: nil, want: Profile{}},
		{
			name: "mapping",
			raw: map[string]any{
				"allergies":            []any{"peanuts", 42, nil, "milk"},
				"health_goals":         "weight_loss", // not a list
				"dietary_restrictions": []string{"vegan"},
				"favourite_colour":     []any{"blue"},
			},
			want: Profile{
				Allergies:           []string{"peanuts", "milk"},
				DietaryRestrictions: []string{"vegan"},
			},
		},
		{name: "struct", raw: Profile{HealthConditions: []string{"diabetes"}}, want: Profile{HealthConditions: []string{"diabetes"}}},
		{name: "list", raw: []any{"peanuts"}, wantErr: true},
		{name: "string", raw: "vegan", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	a := Profile{Allergies: []string{"Peanuts", "peanuts ", " MILK"}}
	b := Profile{Allergies: []string{"peanuts", "milk"}, HealthGoals: []string{""}}

	if !reflect.DeepEqual(a.Canonical(), b.Canonical()) {
		t.Errorf("expected equal canonical forms: %+v vs %+v", a.Canonical(), b.Canonical())
	}
	if a.Canonical().HealthGoals == nil {
		t.Error("canonical lists must not be nil")
	}
}

func TestIsEmpty(t *testing.T) {
	if !(Profile{}).IsEmpty() {
		t.Error("zero profile should be empty")
	}
	if !(Profile{Allergies: []string{" "}}).IsEmpty() {
		t.Error("blank-only profile should be empty")
	}
	if (Profile{HealthGoals: []string{"clean_eating"}}).IsEmpty() {
		t.Error("profile with a goal should not be empty")
	}
}

func TestUpdateApply(t *testing.T) {
	stored := Profile{
		Allergies:           []string{"peanuts"},
		DietaryRestrictions: []string{"vegan"},
	}

	empty := []string{}
	goals := []string{"weight_loss"}
	u := Update{DietaryRestrictions: &empty, HealthGoals: &goals}

	got := u.Apply(stored)
	want := Profile{
		Allergies:           []string{"peanuts"},
		DietaryRestrictions: []string{},
		HealthGoals:         []string{"weight_loss"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	if !(Update{}).IsEmpty() {
		t.Error("zero update should be empty")
	}
	if u.IsEmpty() {
		t.Error("update with fields should not be empty")
	}
}
